package model

type Deposit struct {
	WalletID string  `json:"wallet_id"`
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
}

type Withdraw struct {
	WalletID string  `json:"wallet_id"`
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
}

type Transfer struct {
	FromWalletID string  `json:"from_wallet_id"`
	ToWalletID   string  `json:"to_wallet_id"`
	Amount       float64 `json:"amount"`
	Currency     string  `json:"currency"`
}

type BalanceQuery struct {
	WalletID string `json:"wallet_id"`
	Currency string `json:"currency"`
}
