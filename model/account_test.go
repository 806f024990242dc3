/*
Copyright 2024 Blnk Finance Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package model

import (
	"math"
	"sync"
	"testing"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPremium(t *testing.T, currency string, limit float64) *PremiumAccount {
	t.Helper()
	account, err := NewPremiumAccount(currency, limit, WithIDGenerator(sequentialIDs()))
	require.NoError(t, err)
	return account
}

func TestNewAccounts(t *testing.T) {
	basic := NewBasicAccount("USD")
	assert.Equal(t, 0.0, basic.Balance())
	assert.Equal(t, "USD", basic.Currency())
	assert.Equal(t, AccountTypeBasic, basic.AccountType())
	assert.Equal(t, 0.0, basic.OverdraftLimit())
	assert.Regexp(t, `^Basic-[a-zA-Z0-9]{10}$`, basic.AccountNumber())

	premium := newPremium(t, "EUR", 500)
	assert.Equal(t, AccountTypePremium, premium.AccountType())
	assert.Equal(t, 500.0, premium.OverdraftLimit())
	assert.Contains(t, premium.AccountNumber(), "Premium-")
}

func TestNewPremiumAccount_RejectsBadLimit(t *testing.T) {
	for _, limit := range []float64{-1, math.NaN(), math.Inf(1)} {
		account, err := NewPremiumAccount("USD", limit)
		assert.Nil(t, account)
		assert.Equal(t, ErrInvalidOverdraft, KindOf(err))
	}
}

func TestParseAccountType(t *testing.T) {
	tests := []struct {
		in      string
		want    AccountType
		wantErr bool
	}{
		{in: "basic", want: AccountTypeBasic},
		{in: " Premium ", want: AccountTypePremium},
		{in: "gold", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseAccountType(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBasicAccount_DepositThenOverWithdraw(t *testing.T) {
	account := NewBasicAccount("USD")

	resp := account.Deposit(100)
	assert.True(t, resp.IsSuccessful)
	assert.Equal(t, 100.0, resp.Balance)
	assert.Equal(t, account.AccountNumber(), resp.AccountNumber)

	resp = account.Withdraw(150)
	assert.False(t, resp.IsSuccessful)
	assert.Equal(t, ErrInsufficientFunds, resp.ErrorKind)
	assert.Equal(t, "Insufficient funds", resp.ErrorMessage)
	assert.Equal(t, 100.0, resp.Balance)
	assert.Equal(t, 100.0, account.Balance())
}

func TestAccounts_NegativeAmounts(t *testing.T) {
	accounts := []Account{NewBasicAccount("USD"), newPremium(t, "USD", 50)}
	for _, account := range accounts {
		t.Run(account.AccountType().String(), func(t *testing.T) {
			account.Deposit(10)

			resp := account.Deposit(-5)
			assert.False(t, resp.IsSuccessful)
			assert.Equal(t, ErrNegativeAmount, resp.ErrorKind)
			assert.Equal(t, "Cannot deposit a negative amount", resp.ErrorMessage)
			assert.Equal(t, 10.0, resp.Balance)

			resp = account.Withdraw(-5)
			assert.False(t, resp.IsSuccessful)
			assert.Equal(t, ErrNegativeAmount, resp.ErrorKind)
			assert.Equal(t, "Cannot withdraw a negative amount", resp.ErrorMessage)
			assert.Equal(t, 10.0, account.Balance())
		})
	}
}

func TestAccounts_NonFiniteAmounts(t *testing.T) {
	account := NewBasicAccount("USD")
	for _, amount := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		assert.Equal(t, ErrInvalidAmount, account.Deposit(amount).ErrorKind)
		assert.Equal(t, ErrInvalidAmount, account.Withdraw(amount).ErrorKind)
	}
	assert.Equal(t, 0.0, account.Balance())
}

func TestBasicAccount_WithdrawSucceedsIffWithinBalance(t *testing.T) {
	for i := 0; i < 200; i++ {
		account := NewBasicAccount(gofakeit.CurrencyShort())
		balance := float64(gofakeit.IntRange(0, 1000))
		amount := float64(gofakeit.IntRange(0, 1200))
		account.Deposit(balance)

		resp := account.Withdraw(amount)

		if amount <= balance {
			assert.True(t, resp.IsSuccessful, "withdraw %v from %v", amount, balance)
			assert.Equal(t, balance-amount, account.Balance())
		} else {
			assert.False(t, resp.IsSuccessful, "withdraw %v from %v", amount, balance)
			assert.Equal(t, balance, account.Balance())
		}
	}
}

func TestPremiumAccount_WithdrawSucceedsIffWithinOverdraft(t *testing.T) {
	for i := 0; i < 200; i++ {
		limit := float64(gofakeit.IntRange(0, 500))
		account := newPremium(t, gofakeit.CurrencyShort(), limit)
		balance := float64(gofakeit.IntRange(0, 1000))
		amount := float64(gofakeit.IntRange(0, 2000))
		account.Deposit(balance)

		resp := account.Withdraw(amount)

		if amount <= balance+limit {
			assert.True(t, resp.IsSuccessful)
			assert.Equal(t, balance-amount, account.Balance())
			assert.GreaterOrEqual(t, account.Balance(), -limit)
		} else {
			assert.False(t, resp.IsSuccessful)
			assert.Equal(t, ErrOverdraftExceeded, resp.ErrorKind)
			assert.Equal(t, balance, account.Balance())
		}
	}
}

func TestPremiumAccount_OverdraftScenario(t *testing.T) {
	account := newPremium(t, "USD", 500)
	account.Deposit(200)

	resp := account.Withdraw(600)
	assert.True(t, resp.IsSuccessful)
	assert.Equal(t, -400.0, account.Balance())

	resp = account.Withdraw(100.1)
	assert.False(t, resp.IsSuccessful)
	assert.Equal(t, "Overdraft limit exceeded", resp.ErrorMessage)
	assert.Equal(t, -400.0, account.Balance())

	resp = account.Withdraw(100)
	assert.True(t, resp.IsSuccessful)
	assert.Equal(t, -500.0, account.Balance())
}

func TestAccount_DecimalArithmeticIsExact(t *testing.T) {
	account := NewBasicAccount("USD")
	for i := 0; i < 10; i++ {
		account.Deposit(0.1)
	}
	assert.Equal(t, 1.0, account.Balance())
	assert.True(t, account.Withdraw(1).IsSuccessful)
	assert.Equal(t, 0.0, account.Balance())
}

func TestAccount_Transfer(t *testing.T) {
	t.Run("premium to basic", func(t *testing.T) {
		sender := newPremium(t, "USD", 500)
		recipient := NewBasicAccount("USD")
		sender.Deposit(200)
		recipient.Deposit(0)

		resp := sender.Transfer(recipient, 700)

		assert.True(t, resp.IsSuccessful)
		assert.Equal(t, -500.0, resp.Balance)
		assert.Equal(t, sender.AccountNumber(), resp.AccountNumber)
		assert.Equal(t, recipient.AccountNumber(), resp.RecipientAccountNumber)
		assert.Equal(t, AccountTypeBasic, resp.RecipientAccountType)
		assert.Equal(t, -500.0, sender.Balance())
		assert.Equal(t, 700.0, recipient.Balance())
	})

	t.Run("insufficient funds leaves both untouched", func(t *testing.T) {
		sender := NewBasicAccount("USD")
		recipient := NewBasicAccount("USD")
		sender.Deposit(20)

		resp := sender.Transfer(recipient, 50)

		assert.False(t, resp.IsSuccessful)
		assert.Equal(t, "Insufficient funds", resp.ErrorMessage)
		assert.Equal(t, 20.0, sender.Balance())
		assert.Equal(t, 0.0, recipient.Balance())
	})

	t.Run("overdraft exceeded", func(t *testing.T) {
		sender := newPremium(t, "USD", 100)
		recipient := newPremium(t, "USD", 100)

		resp := sender.Transfer(recipient, 100.5)

		assert.False(t, resp.IsSuccessful)
		assert.Equal(t, ErrOverdraftExceeded, resp.ErrorKind)
		assert.Equal(t, 0.0, sender.Balance())
	})

	t.Run("negative amount", func(t *testing.T) {
		sender := NewBasicAccount("USD")
		recipient := NewBasicAccount("USD")
		sender.Deposit(20)

		resp := sender.Transfer(recipient, -5)

		assert.False(t, resp.IsSuccessful)
		assert.Equal(t, ErrNegativeAmount, resp.ErrorKind)
		assert.Equal(t, 20.0, sender.Balance())
		assert.Equal(t, 0.0, recipient.Balance())
	})

	t.Run("currency mismatch", func(t *testing.T) {
		sender := NewBasicAccount("USD")
		recipient := NewBasicAccount("EUR")
		sender.Deposit(100)

		resp := sender.Transfer(recipient, 50)

		assert.False(t, resp.IsSuccessful)
		assert.Equal(t, ErrCurrencyMismatch, resp.ErrorKind)
		assert.Equal(t, "Source account currency: USD, Receiver account currency: EUR, mismatch", resp.ErrorMessage)
		assert.Equal(t, 100.0, sender.Balance())
		assert.Equal(t, 0.0, recipient.Balance())
	})

	t.Run("to itself", func(t *testing.T) {
		account := NewBasicAccount("USD")
		account.Deposit(30)

		resp := account.Transfer(account, 10)

		assert.True(t, resp.IsSuccessful)
		assert.Equal(t, 30.0, resp.Balance)
	})
}

func TestAccount_ConcurrentOppositeTransfersConserveTotal(t *testing.T) {
	a := NewBasicAccount("USD")
	b := NewBasicAccount("USD")
	a.Deposit(1000)
	b.Deposit(1000)

	const n = 200
	var wg sync.WaitGroup
	wg.Add(2 * n)
	for i := 0; i < n; i++ {
		go func() {
			defer wg.Done()
			a.Transfer(b, 1)
		}()
		go func() {
			defer wg.Done()
			b.Transfer(a, 1)
		}()
	}
	wg.Wait()

	assert.Equal(t, 2000.0, a.Balance()+b.Balance())
	assert.GreaterOrEqual(t, a.Balance(), 0.0)
	assert.GreaterOrEqual(t, b.Balance(), 0.0)
}

func TestAccount_TransfersBetweenAccountsSharingANumber(t *testing.T) {
	sameNumber := WithIDGenerator(func(prefix string) string { return prefix + "-0000000001" })
	a := NewBasicAccount("USD", sameNumber)
	b := NewBasicAccount("USD", sameNumber)
	require.Equal(t, a.AccountNumber(), b.AccountNumber())
	a.Deposit(1000)
	b.Deposit(1000)

	const n = 500
	var wg sync.WaitGroup
	wg.Add(3 * n)
	for i := 0; i < n; i++ {
		go func() {
			defer wg.Done()
			assert.True(t, a.Transfer(b, 1).IsSuccessful)
		}()
		go func() {
			defer wg.Done()
			assert.True(t, b.Transfer(a, 1).IsSuccessful)
		}()
		go func() {
			defer wg.Done()
			b.Deposit(1)
		}()
	}
	wg.Wait()

	assert.Equal(t, 1000.0, a.Balance())
	assert.Equal(t, 1500.0, b.Balance())
}

func TestAccount_ConcurrentDeposits(t *testing.T) {
	account := NewBasicAccount("USD")

	var wg sync.WaitGroup
	wg.Add(100)
	for i := 0; i < 100; i++ {
		go func() {
			defer wg.Done()
			account.Deposit(1)
		}()
	}
	wg.Wait()

	assert.Equal(t, 100.0, account.Balance())
}
