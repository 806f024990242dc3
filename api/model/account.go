package model

type CreateWallet struct {
	WalletType     string   `json:"wallet_type"`
	Currency       string   `json:"currency"`
	AccountType    string   `json:"account_type"`
	OverdraftLimit *float64 `json:"overdraft_limit,omitempty"`
}

type CreateAccount struct {
	WalletID       string   `json:"wallet_id"`
	AccountType    string   `json:"account_type"`
	Currency       string   `json:"currency"`
	OverdraftLimit *float64 `json:"overdraft_limit,omitempty"`
}
