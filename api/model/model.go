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
	"errors"
	"math"
	"regexp"
	"strings"

	"github.com/jerry-enebeli/saifu/model"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

var currencyCode = regexp.MustCompile(`^\S+$`)

func finiteAmount(value interface{}) error {
	var amount float64
	switch v := value.(type) {
	case float64:
		amount = v
	case *float64:
		if v == nil {
			return nil
		}
		amount = *v
	}
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return errors.New("must be a finite number")
	}
	return nil
}

func currencyRules() []validation.Rule {
	return []validation.Rule{
		validation.Required.Error("currency is required"),
		validation.Match(currencyCode).Error("currency must not contain spaces"),
	}
}

func overdraftRules(limit *float64, accountType string) []validation.Rule {
	return []validation.Rule{
		validation.When(limit != nil,
			validation.By(finiteAmount),
			validation.Min(0.0).Error("overdraft limit cannot be negative"),
			validation.By(func(value interface{}) error {
				if !isPremium(accountType) {
					return errors.New("overdraft limit only applies to premium accounts")
				}
				return nil
			}),
		),
	}
}

func isPremium(accountType string) bool {
	t, err := model.ParseAccountType(accountType)
	return err == nil && t == model.AccountTypePremium
}

func accountTypeRule(value interface{}) error {
	s, _ := value.(string)
	if s == "" {
		return nil
	}
	_, err := model.ParseAccountType(s)
	return err
}

func walletTypeRule(value interface{}) error {
	s, _ := value.(string)
	_, err := model.ParseWalletType(s)
	return err
}

func (w *CreateWallet) isBasic() bool {
	t, err := model.ParseWalletType(w.WalletType)
	return err == nil && t == model.WalletTypeBasic
}

func (w *CreateWallet) ValidateCreateWallet() error {
	return validation.ValidateStruct(w,
		validation.Field(&w.WalletType, validation.Required, validation.By(walletTypeRule)),
		validation.Field(&w.Currency, validation.When(w.isBasic(), currencyRules()...)),
		validation.Field(&w.AccountType, validation.By(accountTypeRule), validation.By(func(value interface{}) error {
			if !w.isBasic() && (w.AccountType != "" || w.Currency != "" || w.OverdraftLimit != nil) {
				return errors.New("a multi-currency wallet starts empty; add accounts with create_account")
			}
			return nil
		})),
		validation.Field(&w.OverdraftLimit, overdraftRules(w.OverdraftLimit, w.AccountType)...),
	)
}

func (a *CreateAccount) ValidateCreateAccount() error {
	return validation.ValidateStruct(a,
		validation.Field(&a.WalletID, validation.Required),
		validation.Field(&a.AccountType, validation.Required, validation.By(accountTypeRule)),
		validation.Field(&a.Currency, currencyRules()...),
		validation.Field(&a.OverdraftLimit, overdraftRules(a.OverdraftLimit, a.AccountType)...),
	)
}

func (d *Deposit) ValidateDeposit() error {
	return validation.ValidateStruct(d,
		validation.Field(&d.WalletID, validation.Required),
		validation.Field(&d.Amount, validation.By(finiteAmount)),
		validation.Field(&d.Currency, currencyRules()...),
	)
}

func (w *Withdraw) ValidateWithdraw() error {
	return validation.ValidateStruct(w,
		validation.Field(&w.WalletID, validation.Required),
		validation.Field(&w.Amount, validation.By(finiteAmount)),
		validation.Field(&w.Currency, currencyRules()...),
	)
}

func (t *Transfer) ValidateTransfer() error {
	return validation.ValidateStruct(t,
		validation.Field(&t.FromWalletID, validation.Required),
		validation.Field(&t.ToWalletID, validation.Required),
		validation.Field(&t.Amount, validation.By(finiteAmount)),
		validation.Field(&t.Currency, currencyRules()...),
	)
}

func (b *BalanceQuery) ValidateBalanceQuery() error {
	return validation.ValidateStruct(b,
		validation.Field(&b.WalletID, validation.Required),
		validation.Field(&b.Currency, currencyRules()...),
	)
}

// ToAccount builds the account described by the request. A premium account without an
// explicit limit gets defaultOverdraft.
func (a *CreateAccount) ToAccount(defaultOverdraft float64, opts ...model.Option) (model.Account, error) {
	return newAccount(a.AccountType, a.Currency, a.OverdraftLimit, defaultOverdraft, opts...)
}

// ToAccount builds the account bound to a basic wallet. AccountType defaults to basic.
func (w *CreateWallet) ToAccount(defaultOverdraft float64, opts ...model.Option) (model.Account, error) {
	return newAccount(w.AccountType, w.Currency, w.OverdraftLimit, defaultOverdraft, opts...)
}

func (w *CreateWallet) ToWalletType() model.WalletType {
	t, _ := model.ParseWalletType(w.WalletType)
	return t
}

func newAccount(accountType, currency string, limit *float64, defaultOverdraft float64, opts ...model.Option) (model.Account, error) {
	if strings.TrimSpace(accountType) == "" {
		accountType = model.AccountTypeBasic.String()
	}
	t, err := model.ParseAccountType(accountType)
	if err != nil {
		return nil, err
	}
	if t == model.AccountTypeBasic {
		return model.NewBasicAccount(currency, opts...), nil
	}
	overdraft := defaultOverdraft
	if limit != nil {
		overdraft = *limit
	}
	premium, err := model.NewPremiumAccount(currency, overdraft, opts...)
	if err != nil {
		return nil, err
	}
	return premium, nil
}
