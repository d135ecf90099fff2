package domain

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	// ErrInvalidAmount indicates that the amount is not a positive number.
	ErrInvalidAmount = errors.New("invalid amount")
	// ErrBelowMinimum indicates that the amount is below the product minimum investment.
	ErrBelowMinimum = errors.New("amount below minimum investment")
	// ErrAboveMaximum indicates that the amount is above the product maximum investment.
	ErrAboveMaximum = errors.New("amount above maximum investment")
	// ErrInsufficientBalance indicates that the wallet balance does not cover the amount.
	ErrInsufficientBalance = errors.New("insufficient balance")
	// ErrInvestmentNotFound indicates that the investment does not exist.
	ErrInvestmentNotFound = errors.New("investment not found")
	// ErrAccessDenied indicates that the investment belongs to another user.
	ErrAccessDenied = errors.New("access denied")
	// ErrUnknownStatus indicates that the status filter is not a known investment status.
	ErrUnknownStatus = errors.New("unknown investment status")
	// ErrInvalidState indicates that the investment status does not allow the operation.
	ErrInvalidState = errors.New("invalid investment state")
	// ErrTransactionFailed indicates that the ledger unit of work was rolled back.
	ErrTransactionFailed = errors.New("transaction failed, wallet balance was not changed, please retry")
)

// SubCentAmountError returns ErrInvalidAmount for an amount with fractions of a cent.
func SubCentAmountError(amount decimal.Decimal) error {
	return fmt.Errorf("%w: %s has more than 2 decimal places", ErrInvalidAmount, amount.String())
}

// BelowMinimumError returns ErrBelowMinimum naming the product minimum.
func BelowMinimumError(min decimal.Decimal) error {
	return fmt.Errorf("%w: minimum is %s", ErrBelowMinimum, min.StringFixed(2))
}

// AboveMaximumError returns ErrAboveMaximum naming the product maximum.
func AboveMaximumError(max decimal.Decimal) error {
	return fmt.Errorf("%w: maximum is %s", ErrAboveMaximum, max.StringFixed(2))
}

// InsufficientBalanceError returns ErrInsufficientBalance naming the available balance.
func InsufficientBalanceError(balance decimal.Decimal) error {
	return fmt.Errorf("%w: available balance is %s", ErrInsufficientBalance, balance.StringFixed(2))
}

// InvalidStateError returns ErrInvalidState naming the current status.
func InvalidStateError(status InvestmentStatus) error {
	return fmt.Errorf("%w: investment is %s", ErrInvalidState, status)
}

// InvestmentStatus is the lifecycle state of an investment.
//
// active may become matured or cancelled; matured and cancelled are terminal.
type InvestmentStatus string

// Investment statuses.
const (
	StatusActive    InvestmentStatus = "active"
	StatusMatured   InvestmentStatus = "matured"
	StatusCancelled InvestmentStatus = "cancelled"
)

// Valid returns true if s is a known status.
func (s InvestmentStatus) Valid() bool {
	switch s {
	case StatusActive, StatusMatured, StatusCancelled:
		return true
	}

	return false
}

// Investment is a principal committed to a product.
type Investment struct {
	ID               uuid.UUID        `json:"id"`
	UserID           uuid.UUID        `json:"user_id"`
	ProductID        uuid.UUID        `json:"product_id"`
	Amount           decimal.Decimal  `json:"amount"`
	ExpectedReturn   decimal.Decimal  `json:"expected_return"`
	InvestedAt       time.Time        `json:"invested_at"`
	MaturityDate     time.Time        `json:"maturity_date"`
	Status           InvestmentStatus `json:"status"`
	NotificationRead bool             `json:"notification_read"`
}

// CreateInvestmentParams is the input data for the create investment transaction.
type CreateInvestmentParams struct {
	UserID         uuid.UUID
	ProductID      uuid.UUID
	Amount         decimal.Decimal
	ExpectedReturn decimal.Decimal
	MaturityDate   time.Time
}

// LedgerResult is the outcome of a committed create or cancel unit of work.
type LedgerResult struct {
	Investment Investment      `json:"investment"`
	Balance    decimal.Decimal `json:"balance"`
}

// ListInvestmentsParams filters a user's investments. An empty Status lists all.
type ListInvestmentsParams struct {
	UserID uuid.UUID
	Status InvestmentStatus
	Limit  int32
	Offset int32
}

// MaturingInvestment is an active investment joined with its product name.
type MaturingInvestment struct {
	Investment
	ProductName string `json:"product_name"`
}

// monthsPercent is 12 months times 100 percent.
var monthsPercent = decimal.NewFromInt(1200)

// ExpectedReturn returns the principal plus simple annual yield prorated over the tenure,
// rounded to cents: amount * (1 + yield/100 * tenure/12).
//
// The division happens last so that whole-cent results are exact.
func ExpectedReturn(amount, annualYield decimal.Decimal, tenureMonths int32) decimal.Decimal {
	factor := monthsPercent.Add(annualYield.Mul(decimal.NewFromInt32(tenureMonths)))
	return amount.Mul(factor).Div(monthsPercent).Round(2)
}

// Date returns t truncated to its UTC calendar day.
func Date(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// AddMonths adds calendar months to the date d.
//
// The day of month is kept when the target month has it and clamped to the target
// month's last day otherwise, so Jan 31 + 1 month is Feb 28 (or 29).
func AddMonths(d time.Time, months int) time.Time {
	d = Date(d)
	y, m, day := d.Date()

	firstOfTarget := time.Date(y, m+time.Month(months), 1, 0, 0, 0, 0, time.UTC)
	lastDay := firstOfTarget.AddDate(0, 1, -1).Day()

	if day > lastDay {
		day = lastDay
	}

	return time.Date(firstOfTarget.Year(), firstOfTarget.Month(), day, 0, 0, 0, 0, time.UTC)
}

// MaturityDate returns the maturity date of an investment made at investedAt.
func MaturityDate(investedAt time.Time, tenureMonths int32) time.Time {
	return AddMonths(investedAt, int(tenureMonths))
}

// DaysBetween returns the number of calendar days from a to b.
func DaysBetween(a, b time.Time) int {
	return int(Date(b).Sub(Date(a)).Hours() / 24)
}
