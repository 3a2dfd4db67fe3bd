package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/cryptfolio/cryptfolio-tools/internal/models"
)

// Format is the on-disk encoding of a portfolio file.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// FormatFor picks the encoding from the file extension.
func FormatFor(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("unsupported portfolio file %s: use .yaml, .yml or .json", path)
	}
}

// assetRecord is an asset as written in a data file. A missing total stays
// invalid so it can be told apart from a stated zero.
type assetRecord struct {
	Name     string              `yaml:"name" json:"name"`
	Quantity decimal.Decimal     `yaml:"qty" json:"qty"`
	Price    decimal.Decimal     `yaml:"price" json:"price"`
	Total    decimal.NullDecimal `yaml:"total" json:"total"`
}

type portfolioFile struct {
	Assets  []assetRecord    `yaml:"assets" json:"assets"`
	Pools   []models.Pool    `yaml:"pools" json:"pools"`
	Lending []models.Lending `yaml:"lending" json:"lending"`
	Staking []models.Staking `yaml:"staking" json:"staking"`
}

func (f portfolioFile) portfolio() *models.Portfolio {
	p := &models.Portfolio{
		Pools:   f.Pools,
		Lending: f.Lending,
		Staking: f.Staking,
	}
	for _, a := range f.Assets {
		if a.Total.Valid {
			p.Assets = append(p.Assets, models.Asset{Name: a.Name, Quantity: a.Quantity, Price: a.Price, Total: a.Total.Decimal})
			continue
		}
		p.Assets = append(p.Assets, models.NewAsset(a.Name, a.Quantity, a.Price))
	}
	return p
}

// LoadPortfolio reads and validates a portfolio file.
// Assets without a total get quantity * price, computed once here; a stated
// total, zero included, is kept as given.
func LoadPortfolio(path string) (*models.Portfolio, error) {
	format, err := FormatFor(path)
	if err != nil {
		return nil, err
	}

	fileData, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read portfolio file: %w", err)
	}

	var file portfolioFile
	switch format {
	case FormatJSON:
		err = json.Unmarshal(fileData, &file)
	default:
		err = yaml.Unmarshal(fileData, &file)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal portfolio data: %w", err)
	}

	p := file.portfolio()
	if err := p.Validate(); err != nil {
		return nil, err
	}

	return p, nil
}

// SavePortfolio writes p to path, creating parent directories as needed.
func SavePortfolio(path string, p *models.Portfolio) error {
	format, err := FormatFor(path)
	if err != nil {
		return err
	}

	var data []byte
	switch format {
	case FormatJSON:
		data, err = json.MarshalIndent(p, "", "  ")
	default:
		data, err = yaml.Marshal(p)
	}
	if err != nil {
		return fmt.Errorf("failed to marshal portfolio data: %w", err)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write portfolio file: %w", err)
	}

	return nil
}
