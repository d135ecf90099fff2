package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AlertType distinguishes alert sources.
type AlertType string

// Alert types.
const (
	AlertMaturity   AlertType = "maturity"
	AlertNewProduct AlertType = "new_product"
)

// Alert is a notification item derived from the ledger and the catalog.
type Alert struct {
	Type    AlertType `json:"type"`
	Message string    `json:"message"`

	// Maturity alerts.
	InvestmentID   *uuid.UUID          `json:"investment_id,omitempty"`
	Days           *int                `json:"days,omitempty"`
	ExpectedReturn decimal.NullDecimal `json:"expected_return,omitempty"`
	MaturityDate   *time.Time          `json:"maturity_date,omitempty"`

	// New product alerts.
	ProductID   *uuid.UUID          `json:"product_id,omitempty"`
	AnnualYield decimal.NullDecimal `json:"annual_yield,omitempty"`
}
