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

// AccountResponse is returned by account deposits and withdrawals and by wallet deposits.
type AccountResponse struct {
	AccountNumber string      `json:"account_number"`
	AccountType   AccountType `json:"account_type"`
	Currency      string      `json:"currency"`
	Balance       float64     `json:"balance"`
	IsSuccessful  bool        `json:"is_successful"`
	ErrorKind     ErrorKind   `json:"error_kind,omitempty"`
	ErrorMessage  string      `json:"error_message,omitempty"`
}

// AccountTransferResponse describes the outcome of Account.Transfer from the sender's side.
type AccountTransferResponse struct {
	AccountNumber          string      `json:"account_number"`
	AccountType            AccountType `json:"account_type"`
	Currency               string      `json:"currency"`
	RecipientAccountNumber string      `json:"recipient_account_number"`
	RecipientAccountType   AccountType `json:"recipient_account_type"`
	Balance                float64     `json:"balance"`
	IsSuccessful           bool        `json:"is_successful"`
	ErrorKind              ErrorKind   `json:"error_kind,omitempty"`
	ErrorMessage           string      `json:"error_message,omitempty"`
}

// TransferResponse describes the outcome of Wallet.Transfer.
type TransferResponse struct {
	Currency               string     `json:"currency"`
	Amount                 float64    `json:"amount"`
	SenderAccountNumber    string     `json:"sender_account_number"`
	SenderWalletID         string     `json:"sender_wallet_id"`
	SenderWalletType       WalletType `json:"sender_wallet_type"`
	RecipientAccountNumber string     `json:"recipient_account_number"`
	RecipientWalletID      string     `json:"recipient_wallet_id"`
	RecipientWalletType    WalletType `json:"recipient_wallet_type"`
	IsSuccessful           bool       `json:"is_successful"`
	ErrorKind              ErrorKind  `json:"error_kind,omitempty"`
	ErrorMessage           string     `json:"error_message,omitempty"`
}

// WithdrawWalletResponse is an account withdrawal re-wrapped with the wallet's identity.
type WithdrawWalletResponse struct {
	WalletID      string      `json:"wallet_id"`
	WalletType    WalletType  `json:"wallet_type"`
	Currency      string      `json:"currency"`
	Amount        float64     `json:"amount"`
	AccountNumber string      `json:"account_number"`
	AccountType   AccountType `json:"account_type"`
	Balance       float64     `json:"balance"`
	IsSuccessful  bool        `json:"is_successful"`
	ErrorKind     ErrorKind   `json:"error_kind,omitempty"`
	ErrorMessage  string      `json:"error_message,omitempty"`
}

func (r AccountResponse) failed(kind ErrorKind, message string) AccountResponse {
	r.IsSuccessful = false
	r.ErrorKind = kind
	r.ErrorMessage = message
	return r
}

func (r AccountTransferResponse) failed(kind ErrorKind, message string) AccountTransferResponse {
	r.IsSuccessful = false
	r.ErrorKind = kind
	r.ErrorMessage = message
	return r
}

func (r TransferResponse) failed(kind ErrorKind, message string) TransferResponse {
	r.IsSuccessful = false
	r.ErrorKind = kind
	r.ErrorMessage = message
	return r
}
