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

import "github.com/jerry-enebeli/saifu/internal/lock"

// transferFunds moves amount from one account to another. Both accounts stay locked from the
// withdrawal until the deposit or its compensating rollback completes.
func transferFunds(from, to Account, amount float64) AccountTransferResponse {
	resp := AccountTransferResponse{
		AccountNumber:          from.AccountNumber(),
		AccountType:            from.AccountType(),
		Currency:               from.Currency(),
		RecipientAccountNumber: to.AccountNumber(),
		RecipientAccountType:   to.AccountType(),
	}
	if from.Currency() != to.Currency() {
		resp.Balance = from.Balance()
		return resp.failed(ErrCurrencyMismatch, transferCurrencyMismatchMessage(from.Currency(), to.Currency()))
	}

	release := lock.Acquire(from.lockEntry(), to.lockEntry())
	defer release()

	withdrawn := from.withdrawLocked(amount)
	if !withdrawn.IsSuccessful {
		resp.Balance = withdrawn.Balance
		return resp.failed(withdrawn.ErrorKind, withdrawn.ErrorMessage)
	}

	deposited := to.depositLocked(amount)
	if !deposited.IsSuccessful {
		from.depositLocked(amount)
		resp.Balance = from.balanceLocked()
		return resp.failed(ErrPartialTransferFailure, deposited.ErrorMessage)
	}

	resp.Balance = from.balanceLocked()
	resp.IsSuccessful = true
	return resp
}

// transferBetween runs the wallet-level protocol: locate the sender's account, withdraw,
// deposit into the recipient wallet's account for the same currency, and re-deposit into
// the sender when that deposit fails.
func transferBetween(from, to Wallet, currency string, amount float64) TransferResponse {
	resp := TransferResponse{
		Currency:            currency,
		Amount:              amount,
		SenderWalletID:      from.WalletID(),
		SenderWalletType:    from.WalletType(),
		RecipientWalletID:   to.WalletID(),
		RecipientWalletType: to.WalletType(),
	}

	sender, err := from.AccountByCurrency(currency)
	if err != nil {
		resp.Amount = 0
		return resp.failed(KindOf(err), err.Error())
	}
	resp.SenderAccountNumber = sender.AccountNumber()

	recipient, recipientErr := to.AccountByCurrency(currency)
	if recipientErr == nil && (recipient == nil || recipient.Currency() != currency) {
		recipientErr = newError(ErrCurrencyMismatch, msgCurrencyMismatch)
	}
	entries := []lock.Entry{sender.lockEntry()}
	if recipientErr == nil {
		resp.RecipientAccountNumber = recipient.AccountNumber()
		entries = append(entries, recipient.lockEntry())
	}

	release := lock.Acquire(entries...)
	defer release()

	withdrawn := sender.withdrawLocked(amount)
	if !withdrawn.IsSuccessful {
		return resp.failed(withdrawn.ErrorKind, withdrawn.ErrorMessage)
	}

	var deposited AccountResponse
	if recipientErr != nil {
		deposited = AccountResponse{Currency: currency}.failed(KindOf(recipientErr), recipientErr.Error())
	} else {
		deposited = recipient.depositLocked(amount)
	}
	if !deposited.IsSuccessful {
		sender.depositLocked(amount)
		return resp.failed(ErrPartialTransferFailure, deposited.ErrorMessage)
	}

	resp.IsSuccessful = true
	return resp
}
