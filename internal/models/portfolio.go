package models

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// Asset is one holding row of the summary table.
// Total is stored as given and is never recomputed from Quantity and Price.
type Asset struct {
	Name     string          `yaml:"name" json:"name" validate:"required"`
	Quantity decimal.Decimal `yaml:"qty" json:"qty"`
	Price    decimal.Decimal `yaml:"price" json:"price"`
	Total    decimal.Decimal `yaml:"total" json:"total"`
}

// NewAsset builds an asset whose total is quantity * price at construction time.
func NewAsset(name string, quantity, price decimal.Decimal) Asset {
	return Asset{
		Name:     name,
		Quantity: quantity,
		Price:    price,
		Total:    quantity.Mul(price),
	}
}

// Pool is a liquidity pool position. Tokens are free-form amount strings.
type Pool struct {
	Protocol string   `yaml:"protocol" json:"protocol" validate:"required"`
	Tokens   []string `yaml:"tokens" json:"tokens"`
	Wallet   string   `yaml:"wallet" json:"wallet"`
}

type Lending struct {
	Protocol  string `yaml:"protocol" json:"protocol" validate:"required"`
	Deposited string `yaml:"deposited" json:"deposited"`
	Borrowed  string `yaml:"borrowed" json:"borrowed"`
	Wallet    string `yaml:"wallet" json:"wallet"`
}

type Staking struct {
	Protocol string `yaml:"protocol" json:"protocol" validate:"required"`
	Stake    string `yaml:"stake" json:"stake"`
	Wallet   string `yaml:"wallet" json:"wallet"`
}

// Portfolio holds the four tables rendered into a report.
type Portfolio struct {
	Assets  []Asset   `yaml:"assets" json:"assets" validate:"dive"`
	Pools   []Pool    `yaml:"pools" json:"pools" validate:"dive"`
	Lending []Lending `yaml:"lending" json:"lending" validate:"dive"`
	Staking []Staking `yaml:"staking" json:"staking" validate:"dive"`
}

var validate = validator.New()

// TotalValue sums the stored totals of every asset.
func (p *Portfolio) TotalValue() decimal.Decimal {
	total := decimal.Zero
	for _, a := range p.Assets {
		total = total.Add(a.Total)
	}
	return total
}

// Validate checks that every record carries a name or protocol.
func (p *Portfolio) Validate() error {
	if err := validate.Struct(p); err != nil {
		return fmt.Errorf("invalid portfolio: %w", err)
	}
	return nil
}
