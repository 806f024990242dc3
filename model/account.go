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
	"math"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/shopspring/decimal"

	"github.com/jerry-enebeli/saifu/internal/lock"
)

type AccountType string

const (
	AccountTypeBasic   AccountType = "Basic"
	AccountTypePremium AccountType = "Premium"
)

func (t AccountType) String() string {
	return string(t)
}

// ParseAccountType maps "basic" and "premium", in any letter case, to an AccountType.
func ParseAccountType(s string) (AccountType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "basic":
		return AccountTypeBasic, nil
	case "premium":
		return AccountTypePremium, nil
	}
	return "", fmt.Errorf("unknown account type %q: want basic or premium", s)
}

// Account holds a single balance in one currency.
//
// The set of implementations is closed: BasicAccount and PremiumAccount. Every balance read
// or write is serialized on the account's own mutex.
type Account interface {
	Balance() float64
	Deposit(amount float64) AccountResponse
	Withdraw(amount float64) AccountResponse
	Currency() string
	AccountNumber() string
	AccountType() AccountType
	OverdraftLimit() float64
	Transfer(to Account, amount float64) AccountTransferResponse

	lockEntry() lock.Entry
	depositLocked(amount float64) AccountResponse
	withdrawLocked(amount float64) AccountResponse
	balanceLocked() float64
}

// accountSeq orders accounts whose numbers collide when their locks are taken together.
var accountSeq atomic.Uint64

// holding is the state shared by every account variant. Identity fields never change after
// construction; balance is guarded by mu.
type holding struct {
	mu            sync.Mutex
	seq           uint64
	accountNumber string
	accountType   AccountType
	currency      string
	balance       decimal.Decimal
}

func (h *holding) init(accountType AccountType, currency string, o options) {
	h.seq = accountSeq.Add(1)
	h.accountType = accountType
	h.currency = currency
	h.accountNumber = o.generateID(accountType.String())
	h.balance = decimal.Zero
}

func (h *holding) Balance() float64 {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.balanceLocked()
}

func (h *holding) Currency() string {
	return h.currency
}

func (h *holding) AccountNumber() string {
	return h.accountNumber
}

func (h *holding) AccountType() AccountType {
	return h.accountType
}

// Deposit adds amount to the balance. There is no upper bound.
func (h *holding) Deposit(amount float64) AccountResponse {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.depositLocked(amount)
}

func (h *holding) lockEntry() lock.Entry {
	return lock.Entry{Key: h.accountNumber, Seq: h.seq, Locker: &h.mu}
}

func (h *holding) balanceLocked() float64 {
	return h.balance.InexactFloat64()
}

func (h *holding) response() AccountResponse {
	return AccountResponse{
		AccountNumber: h.accountNumber,
		AccountType:   h.accountType,
		Currency:      h.currency,
		Balance:       h.balanceLocked(),
		IsSuccessful:  true,
	}
}

// checkAmount reports a failed response when amount is negative or not a finite number.
func (h *holding) checkAmount(amount float64, negativeMessage string) (AccountResponse, bool) {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return h.response().failed(ErrInvalidAmount, msgInvalidAmount), false
	}
	if amount < 0 {
		return h.response().failed(ErrNegativeAmount, negativeMessage), false
	}
	return AccountResponse{}, true
}

func (h *holding) depositLocked(amount float64) AccountResponse {
	if resp, ok := h.checkAmount(amount, msgNegativeDeposit); !ok {
		return resp
	}
	h.balance = h.balance.Add(decimal.NewFromFloat(amount))
	return h.response()
}

// debitLocked subtracts amount unless the result would fall below floor.
func (h *holding) debitLocked(amount float64, floor decimal.Decimal, shortfall ErrorKind, shortfallMessage string) AccountResponse {
	if resp, ok := h.checkAmount(amount, msgNegativeWithdrawal); !ok {
		return resp
	}
	next := h.balance.Sub(decimal.NewFromFloat(amount))
	if next.LessThan(floor) {
		return h.response().failed(shortfall, shortfallMessage)
	}
	h.balance = next
	return h.response()
}

// BasicAccount never lets its balance go below zero.
type BasicAccount struct {
	holding
}

// NewBasicAccount creates an empty basic account in currency.
func NewBasicAccount(currency string, opts ...Option) *BasicAccount {
	a := &BasicAccount{}
	a.init(AccountTypeBasic, currency, buildOptions(opts))
	return a
}

func (a *BasicAccount) Withdraw(amount float64) AccountResponse {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.withdrawLocked(amount)
}

func (a *BasicAccount) withdrawLocked(amount float64) AccountResponse {
	return a.debitLocked(amount, decimal.Zero, ErrInsufficientFunds, msgInsufficientFunds)
}

// OverdraftLimit is always zero for a basic account.
func (a *BasicAccount) OverdraftLimit() float64 {
	return 0
}

func (a *BasicAccount) Transfer(to Account, amount float64) AccountTransferResponse {
	return transferFunds(a, to, amount)
}

// PremiumAccount may go below zero down to its overdraft limit.
type PremiumAccount struct {
	holding
	overdraftLimit decimal.Decimal
}

// NewPremiumAccount creates an empty premium account. The overdraft limit is fixed for the
// account's lifetime and must be a non-negative finite number.
func NewPremiumAccount(currency string, overdraftLimit float64, opts ...Option) (*PremiumAccount, error) {
	if math.IsNaN(overdraftLimit) || math.IsInf(overdraftLimit, 0) || overdraftLimit < 0 {
		return nil, newError(ErrInvalidOverdraft, msgInvalidOverdraft)
	}
	a := &PremiumAccount{overdraftLimit: decimal.NewFromFloat(overdraftLimit)}
	a.init(AccountTypePremium, currency, buildOptions(opts))
	return a, nil
}

func (a *PremiumAccount) Withdraw(amount float64) AccountResponse {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.withdrawLocked(amount)
}

func (a *PremiumAccount) withdrawLocked(amount float64) AccountResponse {
	return a.debitLocked(amount, a.overdraftLimit.Neg(), ErrOverdraftExceeded, msgOverdraftExceeded)
}

func (a *PremiumAccount) OverdraftLimit() float64 {
	return a.overdraftLimit.InexactFloat64()
}

func (a *PremiumAccount) Transfer(to Account, amount float64) AccountTransferResponse {
	return transferFunds(a, to, amount)
}
