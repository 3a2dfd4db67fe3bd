package models

import "github.com/shopspring/decimal"

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// SamplePortfolio returns the built-in demonstration data.
func SamplePortfolio() *Portfolio {
	return &Portfolio{
		Assets: []Asset{
			{Name: "Bitcoin", Quantity: dec("0.5"), Price: dec("43500.00"), Total: dec("21750.00")},
			{Name: "Ethereum", Quantity: dec("3.2"), Price: dec("2280.00"), Total: dec("7296.00")},
			{Name: "Solana", Quantity: dec("25"), Price: dec("98.50"), Total: dec("2462.50")},
			{Name: "USDT", Quantity: dec("5000"), Price: dec("1.00"), Total: dec("5000.00")},
		},
		Pools: []Pool{
			{
				Protocol: "Uniswap",
				Tokens:   []string{"2.0000 ETH", "4,560.00 USDT"},
				Wallet:   "0x742d...8A3c",
			},
			{
				Protocol: "PancakeSwap",
				Tokens:   []string{"15.0000 BNB", "6,750.00 BUSD"},
				Wallet:   "0x8B91...4F2e",
			},
		},
		Lending: []Lending{
			{Protocol: "Kamino", Deposited: "2.0000 Solana", Borrowed: "500.00 USDT", Wallet: "DsVm...8nKp"},
			{Protocol: "Aave", Deposited: "1.5000 Ethereum", Borrowed: "2800.00 USDC", Wallet: "0x3E7A...9D1b"},
		},
		Staking: []Staking{
			{Protocol: "Lido Finance", Stake: "5.0000 Ethereum", Wallet: "0x6C2F...7E8a"},
			{Protocol: "Marinade Finance", Stake: "50.0000 Solana", Wallet: "8xQv...3mLp"},
		},
	}
}
