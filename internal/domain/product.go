package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	// ErrProductNotFound indicates that the product does not exist or is not active.
	ErrProductNotFound = errors.New("product not found")
	// ErrInvalidProduct indicates that the product terms are inconsistent.
	ErrInvalidProduct = errors.New("invalid product terms")
	// ErrInvalidRiskLevel indicates an unsupported risk level.
	ErrInvalidRiskLevel = errors.New("invalid risk level")
)

// RiskLevel classifies products and user risk appetite.
type RiskLevel string

// Supported risk levels, in ascending order.
const (
	RiskLow      RiskLevel = "low"
	RiskModerate RiskLevel = "moderate"
	RiskHigh     RiskLevel = "high"
)

// RiskLevels holds all the supported risk levels in ascending order.
var RiskLevels = []RiskLevel{RiskLow, RiskModerate, RiskHigh}

// Valid returns true if r is a supported risk level.
func (r RiskLevel) Valid() bool {
	switch r {
	case RiskLow, RiskModerate, RiskHigh:
		return true
	}

	return false
}

// Rank returns the position of r in RiskLevels, or -1 for unsupported levels.
func (r RiskLevel) Rank() int {
	for i, l := range RiskLevels {
		if l == r {
			return i
		}
	}

	return -1
}

// InvestmentType is the kind of a product.
type InvestmentType string

// Supported investment types.
const (
	TypeBond  InvestmentType = "bond"
	TypeFD    InvestmentType = "fd"
	TypeMF    InvestmentType = "mf"
	TypeETF   InvestmentType = "etf"
	TypeOther InvestmentType = "other"
)

// Valid returns true if t is a supported investment type.
func (t InvestmentType) Valid() bool {
	switch t {
	case TypeBond, TypeFD, TypeMF, TypeETF, TypeOther:
		return true
	}

	return false
}

// Product holds the economic terms of an investable product.
type Product struct {
	ID             uuid.UUID           `json:"id"`
	Name           string              `json:"name"`
	InvestmentType InvestmentType      `json:"investment_type"`
	TenureMonths   int32               `json:"tenure_months"`
	AnnualYield    decimal.Decimal     `json:"annual_yield"`
	RiskLevel      RiskLevel           `json:"risk_level"`
	MinInvestment  decimal.Decimal     `json:"min_investment"`
	MaxInvestment  decimal.NullDecimal `json:"max_investment"`
	IsActive       bool                `json:"is_active"`
	Description    string              `json:"description"`
	CreatedAt      time.Time           `json:"created_at"`
}

// CreateProductParams is the input data to create a product.
type CreateProductParams struct {
	Name           string
	InvestmentType InvestmentType
	TenureMonths   int32
	AnnualYield    decimal.Decimal
	RiskLevel      RiskLevel
	MinInvestment  decimal.Decimal
	MaxInvestment  decimal.NullDecimal
	IsActive       bool
	Description    string
}

// Product sort columns accepted by ListProductsParams.SortBy.
const (
	SortByYield         = "annual_yield"
	SortByTenure        = "tenure_months"
	SortByMinInvestment = "min_investment"
	SortByCreatedAt     = "created_at"
)

// ListProductsParams filters, sorts and paginates active products.
//
// Zero values disable the corresponding filter.
type ListProductsParams struct {
	RiskLevel       RiskLevel
	InvestmentType  InvestmentType
	MinYield        decimal.NullDecimal
	MaxTenureMonths int32
	SortBy          string
	Desc            bool
	Limit           int32
	Offset          int32
}
