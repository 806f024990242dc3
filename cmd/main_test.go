package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jerry-enebeli/saifu/internal/apierror"
	"github.com/jerry-enebeli/saifu/model"
)

type testCLI struct {
	cli    *Saifu
	stdout bytes.Buffer
	stderr bytes.Buffer
	config string
}

func newTestCLI(t *testing.T, stdin string) *testCLI {
	t.Helper()
	var counter atomic.Int64
	tc := &testCLI{
		cli: NewCLI(model.WithIDGenerator(func(prefix string) string {
			return fmt.Sprintf("%s-%010d", prefix, counter.Add(1))
		})),
		config: filepath.Join(t.TempDir(), "saifu.json"),
	}
	tc.cli.cmd.SetOut(&tc.stdout)
	tc.cli.cmd.SetErr(&tc.stderr)
	tc.cli.cmd.SetIn(strings.NewReader(stdin))
	return tc
}

func (tc *testCLI) run(args ...string) int {
	return tc.cli.run(append([]string{"--config", tc.config}, args...))
}

func TestCreateWalletOneShot(t *testing.T) {
	tc := newTestCLI(t, "")

	code := tc.run("create_wallet", "basic", "--currency", "USD")

	assert.Equal(t, apierror.ExitOK, code)
	assert.Contains(t, tc.stdout.String(), "Created a BasicWallet with ID: Basic-0000000002")
	assert.Contains(t, tc.stdout.String(), "Account: Basic-0000000001 (Basic, USD)")
}

func TestExitCodes(t *testing.T) {
	tests := []struct {
		name string
		args []string
		code int
	}{
		{name: "unknown wallet", args: []string{"deposit", "Basic-0000000009", "10", "USD"}, code: apierror.ExitNotFound},
		{name: "missing arguments", args: []string{"deposit", "Basic-0000000009", "10"}, code: apierror.ExitInvalidInput},
		{name: "amount is not a number", args: []string{"withdraw", "Basic-0000000009", "ten", "USD"}, code: apierror.ExitInvalidInput},
		{name: "basic wallet without currency", args: []string{"create_wallet", "basic"}, code: apierror.ExitInvalidInput},
		{name: "unknown flag", args: []string{"create_wallet", "multi", "--colour", "red"}, code: apierror.ExitInvalidInput},
		{name: "overdraft on a basic account", args: []string{"create_account", "MultiCurrency-0000000001", "basic", "USD", "100"}, code: apierror.ExitInvalidInput},
		{name: "overdraft on a basic wallet", args: []string{"create_wallet", "basic", "--currency", "USD", "--overdraft", "5"}, code: apierror.ExitInvalidInput},
		{name: "unknown wallet type", args: []string{"create_wallet", "joint"}, code: apierror.ExitInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tc := newTestCLI(t, "")
			assert.Equal(t, tt.code, tc.run(tt.args...), tc.stderr.String())
		})
	}
}

func TestDomainFailureExitCode(t *testing.T) {
	tc := newTestCLI(t, "")
	require.Equal(t, apierror.ExitOK, tc.run("create_wallet", "basic", "--currency", "USD"))

	code := tc.run("withdraw", "Basic-0000000002", "10", "USD")

	assert.Equal(t, apierror.ExitDomainFailure, code)
	assert.Contains(t, tc.stderr.String(), "DOMAIN_FAILURE: Insufficient funds")
}

func TestCreateAccountOnBasicWalletConflicts(t *testing.T) {
	tc := newTestCLI(t, "")
	require.Equal(t, apierror.ExitOK, tc.run("create_wallet", "basic", "--currency", "USD"))

	code := tc.run("create_account", "Basic-0000000002", "basic", "EUR")

	assert.Equal(t, apierror.ExitConflict, code)
	assert.Contains(t, tc.stderr.String(), "cannot add an account after creation")
}

func TestShellSession(t *testing.T) {
	script := strings.Join([]string{
		"# wallets live for the whole session",
		"create_wallet multi",
		"create_account MultiCurrency-0000000001 basic USD",
		"create_account MultiCurrency-0000000001 premium EUR 50",
		"create_wallet basic --currency USD",
		"deposit Basic-0000000005 100 USD",
		"transfer Basic-0000000005 MultiCurrency-0000000001 40 USD",
		"balance MultiCurrency-0000000001 USD",
		"withdraw MultiCurrency-0000000001 40 EUR",
		"withdraw MultiCurrency-0000000001 20 EUR",
		"deposit MultiCurrency-0000000002 1 USD",
		"show MultiCurrency-0000000001",
		"list",
		"metrics",
		"exit",
		"list",
	}, "\n")
	tc := newTestCLI(t, script)

	code := tc.run("shell")

	assert.Equal(t, apierror.ExitOK, code)
	stdout := tc.stdout.String()
	stderr := tc.stderr.String()
	assert.Contains(t, stdout, "Created a MultiCurrencyWallet with ID: MultiCurrency-0000000001")
	assert.Contains(t, stdout, "Created a Premium account Premium-0000000003 with currency EUR in wallet MultiCurrency-0000000001")
	assert.Contains(t, stdout, "Deposited 100.00 USD into wallet Basic-0000000005, account Basic-0000000004 balance: 100.00")
	assert.Contains(t, stdout, "Transferred 40.00 USD from wallet Basic-0000000005 to wallet MultiCurrency-0000000001")
	assert.Contains(t, stdout, "40.00 USD")
	assert.Contains(t, stdout, "Withdrew 40.00 EUR from wallet MultiCurrency-0000000001, account Premium-0000000003 balance: -40.00")
	assert.Contains(t, stderr, "Overdraft limit exceeded")
	assert.Contains(t, stderr, "did you mean MultiCurrency-0000000001?")
	assert.Contains(t, stdout, "Account 2 Details:")
	assert.Contains(t, stdout, "Overdraft Limit: 50.00")
	assert.Contains(t, stdout, "Basic-0000000005\tBasic\t1 account(s)")
	assert.Contains(t, stdout, `saifu_operations_total{operation="transfer",outcome="success"} 1`)
	assert.Contains(t, stdout, `saifu_operations_total{operation="withdraw",outcome="failure"} 1`)
	assert.Equal(t, 1, strings.Count(stdout, "MultiCurrency-0000000001\tMultiCurrency\t2 account(s)"))
}

func TestJSONOutput(t *testing.T) {
	tc := newTestCLI(t, "")

	code := tc.run("--json", "create_wallet", "multi")
	require.Equal(t, apierror.ExitOK, code)

	var view walletDetails
	require.NoError(t, json.Unmarshal(tc.stdout.Bytes(), &view))
	assert.Equal(t, "MultiCurrency-0000000001", view.WalletID)
	assert.Equal(t, model.WalletTypeMultiCurrency, view.WalletType)
	assert.Empty(t, view.Accounts)
}

func TestConfigCommand(t *testing.T) {
	tc := newTestCLI(t, "")
	t.Setenv("SAIFU_PROJECT_NAME", "CLI Test")

	require.Equal(t, apierror.ExitOK, tc.run("config"))

	var cfg map[string]interface{}
	require.NoError(t, json.Unmarshal(tc.stdout.Bytes(), &cfg))
	assert.Equal(t, "CLI Test", cfg["project_name"])
}

func TestAmountText(t *testing.T) {
	assert.Equal(t, "0.30", amountText(0.1+0.2))
	assert.Equal(t, "-400.00", amountText(-400))
	assert.Equal(t, "100.10", amountText(100.1))
}
