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

import "sync"

// MultiCurrencyWallet owns at most one account per currency, kept in insertion order.
// mu guards the slice only; balances are guarded by each account.
type MultiCurrencyWallet struct {
	walletID string
	mu       sync.RWMutex
	accounts []Account
}

func NewMultiCurrencyWallet(opts ...Option) *MultiCurrencyWallet {
	o := buildOptions(opts)
	return &MultiCurrencyWallet{walletID: o.generateID(WalletTypeMultiCurrency.String())}
}

func (w *MultiCurrencyWallet) indexLocked(currency string) (int, bool) {
	for i, account := range w.accounts {
		if account.Currency() == currency {
			return i, true
		}
	}
	return 0, false
}

func (w *MultiCurrencyWallet) lookup(currency string) (Account, error) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	i, ok := w.indexLocked(currency)
	if !ok {
		return nil, newError(ErrCurrencyNotFound, currencyNotFoundMessage(currency))
	}
	return w.accounts[i], nil
}

// AddAccount appends account unless the wallet already holds one in the same currency.
// The check and the insert happen under one write lock.
func (w *MultiCurrencyWallet) AddAccount(account Account) (Account, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if _, exists := w.indexLocked(account.Currency()); exists {
		return nil, newError(ErrDuplicateCurrency, msgDuplicateCurrency)
	}
	w.accounts = append(w.accounts, account)
	return account, nil
}

func (w *MultiCurrencyWallet) Balance(currency string) (float64, error) {
	account, err := w.lookup(currency)
	if err != nil {
		return 0, err
	}
	return account.Balance(), nil
}

func (w *MultiCurrencyWallet) WalletID() string {
	return w.walletID
}

func (w *MultiCurrencyWallet) WalletType() WalletType {
	return WalletTypeMultiCurrency
}

func (w *MultiCurrencyWallet) FindAccountIndexByCurrency(currency string) (int, bool) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.indexLocked(currency)
}

func (w *MultiCurrencyWallet) AccountNumberByIndex(index int) (string, bool) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	if index < 0 || index >= len(w.accounts) {
		return "", false
	}
	return w.accounts[index].AccountNumber(), true
}

func (w *MultiCurrencyWallet) AccountByCurrency(currency string) (Account, error) {
	return w.lookup(currency)
}

func (w *MultiCurrencyWallet) Accounts() []Account {
	w.mu.RLock()
	defer w.mu.RUnlock()
	out := make([]Account, len(w.accounts))
	copy(out, w.accounts)
	return out
}

func (w *MultiCurrencyWallet) Transfer(to Wallet, currency string, amount float64) TransferResponse {
	return transferBetween(w, to, currency, amount)
}

func (w *MultiCurrencyWallet) Deposit(currency string, amount float64) AccountResponse {
	account, err := w.lookup(currency)
	return depositInto(account, err, currency, amount)
}

func (w *MultiCurrencyWallet) Withdraw(currency string, amount float64) WithdrawWalletResponse {
	account, err := w.lookup(currency)
	return withdrawFrom(w, account, err, currency, amount)
}
