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

package saifu

import (
	"context"

	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	apimodel "github.com/jerry-enebeli/saifu/api/model"
	"github.com/jerry-enebeli/saifu/model"
)

var (
	walletTracer = otel.Tracer("saifu.wallets")
)

func recordError(span trace.Span, err error) error {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	return err
}

// CreateWallet registers a new wallet. A basic wallet is created together with its only
// account; a multi-currency wallet starts empty.
func (s *Saifu) CreateWallet(ctx context.Context, req apimodel.CreateWallet) (model.Wallet, error) {
	_, span := walletTracer.Start(ctx, "CreateWallet")
	defer span.End()

	if err := req.ValidateCreateWallet(); err != nil {
		s.metrics.observe("create_wallet", outcomeError)
		return nil, recordError(span, invalidInput(err))
	}

	var wallet model.Wallet
	switch req.ToWalletType() {
	case model.WalletTypeBasic:
		account, err := req.ToAccount(s.defaultOverdraft, s.opts...)
		if err != nil {
			s.metrics.observe("create_wallet", outcomeError)
			return nil, recordError(span, mapModelError(err))
		}
		wallet = model.NewBasicWallet(account, s.opts...)
	default:
		wallet = model.NewMultiCurrencyWallet(s.opts...)
	}

	s.register(wallet)
	s.metrics.wallets.WithLabelValues(wallet.WalletType().String()).Inc()
	s.metrics.observe("create_wallet", outcomeSuccess)

	span.SetAttributes(attribute.String("wallet.id", wallet.WalletID()), attribute.String("wallet.type", wallet.WalletType().String()))
	logrus.WithFields(logrus.Fields{
		"wallet_id":   wallet.WalletID(),
		"wallet_type": wallet.WalletType(),
	}).Info("wallet created")
	return wallet, nil
}

// CreateAccount opens an account in an existing wallet.
func (s *Saifu) CreateAccount(ctx context.Context, req apimodel.CreateAccount) (model.Account, error) {
	ctx, span := walletTracer.Start(ctx, "CreateAccount")
	defer span.End()

	if err := req.ValidateCreateAccount(); err != nil {
		s.metrics.observe("create_account", outcomeError)
		return nil, recordError(span, invalidInput(err))
	}

	wallet, err := s.GetWallet(ctx, req.WalletID)
	if err != nil {
		s.metrics.observe("create_account", outcomeError)
		return nil, recordError(span, err)
	}

	account, err := req.ToAccount(s.defaultOverdraft, s.opts...)
	if err != nil {
		s.metrics.observe("create_account", outcomeError)
		return nil, recordError(span, mapModelError(err))
	}

	added, err := wallet.AddAccount(account)
	if err != nil {
		s.metrics.observe("create_account", outcomeError)
		logrus.WithFields(logrus.Fields{"wallet_id": req.WalletID, "currency": req.Currency}).Warn(err)
		return nil, recordError(span, mapModelError(err))
	}

	s.metrics.observe("create_account", outcomeSuccess)
	span.AddEvent("Account created", trace.WithAttributes(attribute.String("account.number", added.AccountNumber())))
	logrus.WithFields(logrus.Fields{
		"wallet_id":      req.WalletID,
		"account_number": added.AccountNumber(),
		"account_type":   added.AccountType(),
		"currency":       added.Currency(),
	}).Info("account created")
	return added, nil
}

// GetWallet returns the wallet registered under id. An unknown id yields a NOT_FOUND error
// suggesting the closest registered id.
func (s *Saifu) GetWallet(ctx context.Context, id string) (model.Wallet, error) {
	_, span := walletTracer.Start(ctx, "GetWallet")
	defer span.End()

	wallet, known, ok := s.lookup(id)
	if !ok {
		return nil, recordError(span, walletNotFound(id, known))
	}
	span.SetAttributes(attribute.String("wallet.id", id))
	return wallet, nil
}

// ListWallets returns every wallet in creation order.
func (s *Saifu) ListWallets(ctx context.Context) []model.Wallet {
	_, span := walletTracer.Start(ctx, "ListWallets")
	defer span.End()

	s.mu.RLock()
	defer s.mu.RUnlock()
	wallets := make([]model.Wallet, 0, len(s.order))
	for _, id := range s.order {
		wallets = append(wallets, s.wallets[id])
	}
	span.SetAttributes(attribute.Int("wallet.count", len(wallets)))
	return wallets
}

// Balance reads the balance a wallet holds in currency.
func (s *Saifu) Balance(ctx context.Context, req apimodel.BalanceQuery) (float64, error) {
	ctx, span := walletTracer.Start(ctx, "Balance")
	defer span.End()

	if err := req.ValidateBalanceQuery(); err != nil {
		return 0, recordError(span, invalidInput(err))
	}
	wallet, err := s.GetWallet(ctx, req.WalletID)
	if err != nil {
		return 0, recordError(span, err)
	}
	balance, err := wallet.Balance(req.Currency)
	if err != nil {
		return 0, recordError(span, mapModelError(err))
	}
	return balance, nil
}

// Deposit credits a wallet. Domain failures are reported in the response, not as an error.
func (s *Saifu) Deposit(ctx context.Context, req apimodel.Deposit) (model.AccountResponse, error) {
	ctx, span := walletTracer.Start(ctx, "Deposit")
	defer span.End()

	if err := req.ValidateDeposit(); err != nil {
		s.metrics.observe("deposit", outcomeError)
		return model.AccountResponse{}, recordError(span, invalidInput(err))
	}
	wallet, err := s.GetWallet(ctx, req.WalletID)
	if err != nil {
		s.metrics.observe("deposit", outcomeError)
		return model.AccountResponse{}, recordError(span, err)
	}

	resp := wallet.Deposit(req.Currency, req.Amount)
	s.metrics.observeResult("deposit", resp.IsSuccessful)
	fields := logrus.Fields{
		"wallet_id": req.WalletID,
		"currency":  req.Currency,
		"amount":    req.Amount,
	}
	if !resp.IsSuccessful {
		span.AddEvent("Deposit rejected", trace.WithAttributes(attribute.String("error.kind", string(resp.ErrorKind))))
		logrus.WithFields(fields).Warn(resp.ErrorMessage)
		return resp, nil
	}
	span.AddEvent("Deposit applied", trace.WithAttributes(attribute.String("account.number", resp.AccountNumber)))
	logrus.WithFields(fields).Info("deposit applied")
	return resp, nil
}

// Withdraw debits a wallet. Domain failures are reported in the response, not as an error.
func (s *Saifu) Withdraw(ctx context.Context, req apimodel.Withdraw) (model.WithdrawWalletResponse, error) {
	ctx, span := walletTracer.Start(ctx, "Withdraw")
	defer span.End()

	if err := req.ValidateWithdraw(); err != nil {
		s.metrics.observe("withdraw", outcomeError)
		return model.WithdrawWalletResponse{}, recordError(span, invalidInput(err))
	}
	wallet, err := s.GetWallet(ctx, req.WalletID)
	if err != nil {
		s.metrics.observe("withdraw", outcomeError)
		return model.WithdrawWalletResponse{}, recordError(span, err)
	}

	resp := wallet.Withdraw(req.Currency, req.Amount)
	s.metrics.observeResult("withdraw", resp.IsSuccessful)
	fields := logrus.Fields{
		"wallet_id": req.WalletID,
		"currency":  req.Currency,
		"amount":    req.Amount,
	}
	if !resp.IsSuccessful {
		span.AddEvent("Withdrawal rejected", trace.WithAttributes(attribute.String("error.kind", string(resp.ErrorKind))))
		logrus.WithFields(fields).Warn(resp.ErrorMessage)
		return resp, nil
	}
	span.AddEvent("Withdrawal applied", trace.WithAttributes(attribute.String("account.number", resp.AccountNumber)))
	logrus.WithFields(fields).Info("withdrawal applied")
	return resp, nil
}

// Transfer moves funds between two registered wallets in one currency. A failed deposit
// into the recipient is rolled back and reported as PARTIAL_TRANSFER_FAILURE.
func (s *Saifu) Transfer(ctx context.Context, req apimodel.Transfer) (model.TransferResponse, error) {
	ctx, span := walletTracer.Start(ctx, "Transfer")
	defer span.End()

	if err := req.ValidateTransfer(); err != nil {
		s.metrics.observe("transfer", outcomeError)
		return model.TransferResponse{}, recordError(span, invalidInput(err))
	}
	from, err := s.GetWallet(ctx, req.FromWalletID)
	if err != nil {
		s.metrics.observe("transfer", outcomeError)
		return model.TransferResponse{}, recordError(span, err)
	}
	to, err := s.GetWallet(ctx, req.ToWalletID)
	if err != nil {
		s.metrics.observe("transfer", outcomeError)
		return model.TransferResponse{}, recordError(span, err)
	}

	resp := from.Transfer(to, req.Currency, req.Amount)
	s.metrics.observeResult("transfer", resp.IsSuccessful)
	span.SetAttributes(
		attribute.String("transfer.sender", resp.SenderWalletID),
		attribute.String("transfer.recipient", resp.RecipientWalletID),
		attribute.String("transfer.currency", resp.Currency),
	)
	fields := logrus.Fields{
		"sender":    req.FromWalletID,
		"recipient": req.ToWalletID,
		"currency":  req.Currency,
		"amount":    req.Amount,
	}
	if !resp.IsSuccessful {
		if resp.ErrorKind == model.ErrPartialTransferFailure {
			s.metrics.rollbacks.Inc()
			span.AddEvent("Transfer rolled back")
			logrus.WithFields(fields).Error("transfer rolled back: ", resp.ErrorMessage)
			return resp, nil
		}
		span.AddEvent("Transfer rejected", trace.WithAttributes(attribute.String("error.kind", string(resp.ErrorKind))))
		logrus.WithFields(fields).Warn(resp.ErrorMessage)
		return resp, nil
	}
	span.AddEvent("Transfer applied")
	logrus.WithFields(fields).Info("transfer applied")
	return resp, nil
}
