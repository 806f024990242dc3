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
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/wacul/ptr"

	apimodel "github.com/jerry-enebeli/saifu/api/model"
	"github.com/jerry-enebeli/saifu/internal/apierror"
	"github.com/jerry-enebeli/saifu/model"
)

func argsBetween(lo, hi int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) < lo || len(args) > hi {
			want := strconv.Itoa(lo)
			if hi != lo {
				want = fmt.Sprintf("%d to %d", lo, hi)
			}
			return apierror.NewAPIError(apierror.ErrInvalidInput, fmt.Sprintf("%s takes %s arguments, got %d: usage %s", cmd.Name(), want, len(args), cmd.UseLine()), nil)
		}
		return nil
	}
}

func parseAmount(name, value string) (float64, error) {
	amount, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, apierror.NewAPIError(apierror.ErrInvalidInput, fmt.Sprintf("%s %q is not a number", name, value), nil)
	}
	return amount, nil
}

// domainFailure reports a response that came back unsuccessful.
func domainFailure(kind model.ErrorKind, message string) error {
	return apierror.NewAPIError(apierror.ErrDomain, message, kind)
}

func createWalletCommand(app *saifuInstance) *cobra.Command {
	var (
		currency    string
		accountType string
		overdraft   float64
	)
	cmd := &cobra.Command{
		Use:   "create_wallet <basic|multi>",
		Short: "Creates a new wallet",
		Long:  "Creates a new wallet. A basic wallet holds exactly one account, so its currency is required.",
		Args:  argsBetween(1, 1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := apimodel.CreateWallet{WalletType: args[0], Currency: currency, AccountType: accountType}
			if cmd.Flags().Changed("overdraft") {
				req.OverdraftLimit = ptr.Float64(overdraft)
			}
			wallet, err := app.saifu.CreateWallet(cmd.Context(), req)
			if err != nil {
				return err
			}
			return app.print(cmd, walletView(wallet), func(p *printer) {
				p.line("Created a %sWallet with ID: %s", wallet.WalletType(), wallet.WalletID())
				for _, account := range wallet.Accounts() {
					p.line("Account: %s (%s, %s)", account.AccountNumber(), account.AccountType(), account.Currency())
				}
			})
		},
	}
	cmd.Flags().StringVar(&currency, "currency", "", "Currency of the account bound to a basic wallet")
	cmd.Flags().StringVar(&accountType, "account-type", "", "Type of the account bound to a basic wallet: basic or premium")
	cmd.Flags().Float64Var(&overdraft, "overdraft", 0, "Overdraft limit for a premium account")
	return cmd
}

func createAccountCommand(app *saifuInstance) *cobra.Command {
	return &cobra.Command{
		Use:   "create_account <wallet_id> <basic|premium> <currency> [overdraft]",
		Short: "Creates a new account in a wallet",
		Args:  argsBetween(3, 4),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := apimodel.CreateAccount{WalletID: args[0], AccountType: args[1], Currency: args[2]}
			if len(args) == 4 {
				limit, err := parseAmount("overdraft", args[3])
				if err != nil {
					return err
				}
				req.OverdraftLimit = ptr.Float64(limit)
			}
			account, err := app.saifu.CreateAccount(cmd.Context(), req)
			if err != nil {
				return err
			}
			return app.print(cmd, accountView(account), func(p *printer) {
				p.line("Created a %s account %s with currency %s in wallet %s", account.AccountType(), account.AccountNumber(), account.Currency(), req.WalletID)
			})
		},
	}
}

func depositCommand(app *saifuInstance) *cobra.Command {
	return &cobra.Command{
		Use:   "deposit <wallet_id> <amount> <currency>",
		Short: "Deposits money into an account",
		Args:  argsBetween(3, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := parseAmount("amount", args[1])
			if err != nil {
				return err
			}
			resp, err := app.saifu.Deposit(cmd.Context(), apimodel.Deposit{WalletID: args[0], Amount: amount, Currency: args[2]})
			if err != nil {
				return err
			}
			if err := app.print(cmd, resp, func(p *printer) {
				if resp.IsSuccessful {
					p.line("Deposited %s %s into wallet %s, account %s balance: %s", amountText(amount), resp.Currency, args[0], resp.AccountNumber, amountText(resp.Balance))
				}
			}); err != nil {
				return err
			}
			if !resp.IsSuccessful {
				return domainFailure(resp.ErrorKind, resp.ErrorMessage)
			}
			return nil
		},
	}
}

func withdrawCommand(app *saifuInstance) *cobra.Command {
	return &cobra.Command{
		Use:   "withdraw <wallet_id> <amount> <currency>",
		Short: "Withdraws money from an account",
		Args:  argsBetween(3, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := parseAmount("amount", args[1])
			if err != nil {
				return err
			}
			resp, err := app.saifu.Withdraw(cmd.Context(), apimodel.Withdraw{WalletID: args[0], Amount: amount, Currency: args[2]})
			if err != nil {
				return err
			}
			if err := app.print(cmd, resp, func(p *printer) {
				if resp.IsSuccessful {
					p.line("Withdrew %s %s from wallet %s, account %s balance: %s", amountText(amount), resp.Currency, resp.WalletID, resp.AccountNumber, amountText(resp.Balance))
				}
			}); err != nil {
				return err
			}
			if !resp.IsSuccessful {
				return domainFailure(resp.ErrorKind, resp.ErrorMessage)
			}
			return nil
		},
	}
}

func transferCommand(app *saifuInstance) *cobra.Command {
	return &cobra.Command{
		Use:   "transfer <from_wallet_id> <to_wallet_id> <amount> <currency>",
		Short: "Transfers money between wallets",
		Args:  argsBetween(4, 4),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := parseAmount("amount", args[2])
			if err != nil {
				return err
			}
			resp, err := app.saifu.Transfer(cmd.Context(), apimodel.Transfer{FromWalletID: args[0], ToWalletID: args[1], Amount: amount, Currency: args[3]})
			if err != nil {
				return err
			}
			if err := app.print(cmd, resp, func(p *printer) {
				if resp.IsSuccessful {
					p.line("Transferred %s %s from wallet %s to wallet %s", amountText(resp.Amount), resp.Currency, resp.SenderWalletID, resp.RecipientWalletID)
				}
			}); err != nil {
				return err
			}
			if !resp.IsSuccessful {
				return domainFailure(resp.ErrorKind, resp.ErrorMessage)
			}
			return nil
		},
	}
}

func balanceCommand(app *saifuInstance) *cobra.Command {
	return &cobra.Command{
		Use:   "balance <wallet_id> <currency>",
		Short: "Prints a wallet's balance in one currency",
		Args:  argsBetween(2, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			balance, err := app.saifu.Balance(cmd.Context(), apimodel.BalanceQuery{WalletID: args[0], Currency: args[1]})
			if err != nil {
				return err
			}
			out := map[string]interface{}{"wallet_id": args[0], "currency": args[1], "balance": balance}
			return app.print(cmd, out, func(p *printer) {
				p.line("%s %s", amountText(balance), args[1])
			})
		},
	}
}

func showCommand(app *saifuInstance) *cobra.Command {
	return &cobra.Command{
		Use:   "show <wallet_id>",
		Short: "Displays a wallet and its accounts",
		Args:  argsBetween(1, 1),
		RunE: func(cmd *cobra.Command, args []string) error {
			wallet, err := app.saifu.GetWallet(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return app.print(cmd, walletView(wallet), func(p *printer) {
				p.wallet(wallet)
			})
		},
	}
}

func listCommand(app *saifuInstance) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Lists every wallet",
		Args:  argsBetween(0, 0),
		RunE: func(cmd *cobra.Command, args []string) error {
			wallets := app.saifu.ListWallets(cmd.Context())
			views := make([]walletDetails, 0, len(wallets))
			for _, wallet := range wallets {
				views = append(views, walletView(wallet))
			}
			return app.print(cmd, views, func(p *printer) {
				if len(wallets) == 0 {
					p.line("No wallets")
				}
				for _, wallet := range wallets {
					p.line("%s\t%s\t%d account(s)", wallet.WalletID(), wallet.WalletType(), len(wallet.Accounts()))
				}
			})
		},
	}
}
