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

package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/jerry-enebeli/saifu/model"
)

type accountDetails struct {
	AccountNumber  string            `json:"account_number"`
	AccountType    model.AccountType `json:"account_type"`
	Currency       string            `json:"currency"`
	Balance        float64           `json:"balance"`
	OverdraftLimit float64           `json:"overdraft_limit,omitempty"`
}

type walletDetails struct {
	WalletID   string           `json:"wallet_id"`
	WalletType model.WalletType `json:"wallet_type"`
	Accounts   []accountDetails `json:"accounts"`
}

func walletView(wallet model.Wallet) walletDetails {
	view := walletDetails{
		WalletID:   wallet.WalletID(),
		WalletType: wallet.WalletType(),
		Accounts:   []accountDetails{},
	}
	for _, account := range wallet.Accounts() {
		view.Accounts = append(view.Accounts, accountView(account))
	}
	return view
}

func accountView(account model.Account) accountDetails {
	return accountDetails{
		AccountNumber:  account.AccountNumber(),
		AccountType:    account.AccountType(),
		Currency:       account.Currency(),
		Balance:        account.Balance(),
		OverdraftLimit: account.OverdraftLimit(),
	}
}

// amountText renders an amount with two decimals.
func amountText(amount float64) string {
	return decimal.NewFromFloat(amount).StringFixed(2)
}

type printer struct {
	w   io.Writer
	err error
}

func (p *printer) line(format string, args ...interface{}) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format+"\n", args...)
}

func (p *printer) wallet(wallet model.Wallet) {
	p.line("Wallet ID: %s", wallet.WalletID())
	p.line("Wallet Type: %s", wallet.WalletType())
	p.line("-----------------------------")
	for i, account := range wallet.Accounts() {
		p.line("Account %d Details:", i+1)
		p.line("-----------------------------")
		p.line("Account Number: %s", account.AccountNumber())
		p.line("Account Type: %s", account.AccountType())
		p.line("Currency: %s", account.Currency())
		p.line("Balance: %s", amountText(account.Balance()))
		if account.AccountType() == model.AccountTypePremium {
			p.line("Overdraft Limit: %s", amountText(account.OverdraftLimit()))
		}
		p.line("-----------------------------")
	}
}

// print writes v as indented JSON when --json is set and runs text otherwise.
func (app *saifuInstance) print(cmd *cobra.Command, v interface{}, text func(p *printer)) error {
	if app.jsonOutput {
		data, err := json.MarshalIndent(v, "", "    ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return err
	}
	p := &printer{w: cmd.OutOrStdout()}
	text(p)
	return p.err
}
