package entity

import "time"

type LiquidityStats struct {
	ID             string    `json:"id"`
	TotalLiquidity string    `json:"totalLiquidity"`
	LastUpdated    time.Time `json:"lastUpdated"`
}

type TokenBalance struct {
	Symbol  string `json:"symbol"`
	Balance string `json:"balance"`
	Value   string `json:"value"`
}

type BlockchainLiquidity struct {
	WalletAddress string         `json:"walletAddress"`
	EthBalance    string         `json:"ethBalance"`
	TotalValue    string         `json:"totalValue"`
	LastUpdated   time.Time      `json:"lastUpdated"`
	TokenBalances []TokenBalance `json:"tokenBalances"`
}

type WalletBalance struct {
	Address    string `json:"address"`
	Balance    string `json:"balance"`
	BalanceWei string `json:"balanceWei"`
}
