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
	"fmt"
)

// ErrorKind classifies why an account or wallet operation failed.
type ErrorKind string

const (
	ErrNegativeAmount         ErrorKind = "NEGATIVE_AMOUNT"
	ErrInsufficientFunds      ErrorKind = "INSUFFICIENT_FUNDS"
	ErrOverdraftExceeded      ErrorKind = "OVERDRAFT_EXCEEDED"
	ErrCurrencyMismatch       ErrorKind = "CURRENCY_MISMATCH"
	ErrCurrencyNotFound       ErrorKind = "CURRENCY_NOT_FOUND"
	ErrDuplicateCurrency      ErrorKind = "DUPLICATE_CURRENCY"
	ErrPartialTransferFailure ErrorKind = "PARTIAL_TRANSFER_FAILURE"
	ErrWalletSealed           ErrorKind = "WALLET_SEALED"
	ErrInvalidOverdraft       ErrorKind = "INVALID_OVERDRAFT"
	ErrInvalidAmount          ErrorKind = "INVALID_AMOUNT"
)

const (
	msgNegativeDeposit    = "Cannot deposit a negative amount"
	msgNegativeWithdrawal = "Cannot withdraw a negative amount"
	msgInsufficientFunds  = "Insufficient funds"
	msgOverdraftExceeded  = "Overdraft limit exceeded"
	msgCurrencyMismatch   = "Currency mismatch"
	msgDuplicateCurrency  = "Account with this currency already exists"
	msgWalletSealed       = "cannot add an account after creation"
	msgInvalidOverdraft   = "overdraft limit cannot be negative"
	msgInvalidAmount      = "Amount must be a finite number"
)

func currencyNotFoundMessage(currency string) string {
	return fmt.Sprintf("No account found with currency: %s", currency)
}

func transferCurrencyMismatchMessage(source, receiver string) string {
	return fmt.Sprintf("Source account currency: %s, Receiver account currency: %s, mismatch", source, receiver)
}

// Error is returned by the few operations that report failure through a Go error
// rather than a response record.
type Error struct {
	Kind    ErrorKind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func newError(kind ErrorKind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// KindOf returns the ErrorKind carried by err, or "" when err is not an *Error.
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}
