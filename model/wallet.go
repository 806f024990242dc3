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
	"fmt"
	"strings"
)

type WalletType string

const (
	WalletTypeBasic         WalletType = "Basic"
	WalletTypeMultiCurrency WalletType = "MultiCurrency"
)

func (t WalletType) String() string {
	return string(t)
}

// ParseWalletType maps "basic" and "multi" (or "multicurrency"), in any letter case, to a
// WalletType.
func ParseWalletType(s string) (WalletType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "basic":
		return WalletTypeBasic, nil
	case "multi", "multicurrency", "multi_currency":
		return WalletTypeMultiCurrency, nil
	}
	return "", fmt.Errorf("unknown wallet type %q: want basic or multi", s)
}

// Wallet exposes currency-keyed operations over the accounts it owns.
type Wallet interface {
	AddAccount(account Account) (Account, error)
	Balance(currency string) (float64, error)
	WalletID() string
	WalletType() WalletType
	FindAccountIndexByCurrency(currency string) (int, bool)
	AccountNumberByIndex(index int) (string, bool)
	AccountByCurrency(currency string) (Account, error)
	// Accounts returns the owned accounts in insertion order. The slice is a copy.
	Accounts() []Account
	Transfer(to Wallet, currency string, amount float64) TransferResponse
	Deposit(currency string, amount float64) AccountResponse
	Withdraw(currency string, amount float64) WithdrawWalletResponse
}

func depositInto(account Account, lookupErr error, currency string, amount float64) AccountResponse {
	if lookupErr != nil {
		return AccountResponse{Currency: currency}.failed(KindOf(lookupErr), lookupErr.Error())
	}
	return account.Deposit(amount)
}

func withdrawFrom(w Wallet, account Account, lookupErr error, currency string, amount float64) WithdrawWalletResponse {
	resp := WithdrawWalletResponse{
		WalletID:   w.WalletID(),
		WalletType: w.WalletType(),
		Currency:   currency,
		Amount:     amount,
	}
	if lookupErr != nil {
		resp.ErrorKind = KindOf(lookupErr)
		resp.ErrorMessage = lookupErr.Error()
		return resp
	}

	withdrawn := account.Withdraw(amount)
	resp.AccountNumber = withdrawn.AccountNumber
	resp.AccountType = withdrawn.AccountType
	resp.Balance = withdrawn.Balance
	resp.IsSuccessful = withdrawn.IsSuccessful
	resp.ErrorKind = withdrawn.ErrorKind
	resp.ErrorMessage = withdrawn.ErrorMessage
	return resp
}

// BasicWallet owns exactly one account, bound when the wallet is created.
type BasicWallet struct {
	walletID string
	account  Account
}

// NewBasicWallet creates a wallet around account. The binding cannot change afterwards.
func NewBasicWallet(account Account, opts ...Option) *BasicWallet {
	o := buildOptions(opts)
	return &BasicWallet{
		walletID: o.generateID(WalletTypeBasic.String()),
		account:  account,
	}
}

func (w *BasicWallet) lookup(currency string) (Account, error) {
	if w.account == nil || w.account.Currency() != currency {
		return nil, newError(ErrCurrencyMismatch, msgCurrencyMismatch)
	}
	return w.account, nil
}

// AddAccount always fails: the account of a basic wallet is bound at construction.
func (w *BasicWallet) AddAccount(Account) (Account, error) {
	return nil, newError(ErrWalletSealed, msgWalletSealed)
}

func (w *BasicWallet) Balance(currency string) (float64, error) {
	account, err := w.lookup(currency)
	if err != nil {
		return 0, err
	}
	return account.Balance(), nil
}

func (w *BasicWallet) WalletID() string {
	return w.walletID
}

func (w *BasicWallet) WalletType() WalletType {
	return WalletTypeBasic
}

func (w *BasicWallet) FindAccountIndexByCurrency(currency string) (int, bool) {
	if _, err := w.lookup(currency); err != nil {
		return 0, false
	}
	return 0, true
}

func (w *BasicWallet) AccountNumberByIndex(index int) (string, bool) {
	if w.account == nil || index != 0 {
		return "", false
	}
	return w.account.AccountNumber(), true
}

func (w *BasicWallet) AccountByCurrency(currency string) (Account, error) {
	return w.lookup(currency)
}

func (w *BasicWallet) Accounts() []Account {
	if w.account == nil {
		return nil
	}
	return []Account{w.account}
}

func (w *BasicWallet) Transfer(to Wallet, currency string, amount float64) TransferResponse {
	return transferBetween(w, to, currency, amount)
}

func (w *BasicWallet) Deposit(currency string, amount float64) AccountResponse {
	account, err := w.lookup(currency)
	return depositInto(account, err, currency, amount)
}

func (w *BasicWallet) Withdraw(currency string, amount float64) WithdrawWalletResponse {
	account, err := w.lookup(currency)
	return withdrawFrom(w, account, err, currency, amount)
}
