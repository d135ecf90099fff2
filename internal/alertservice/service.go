// Package alertservice derives maturity and new product alerts for a user.
package alertservice

import (
	"context"
	"fmt"
	"time"

	"github.com/go-petr/pet-invest/internal/domain"
	"github.com/go-petr/pet-invest/pkg/currencypkg"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -source service.go -destination service_mock.go -package alertservice

// InvestmentRepo provides the maturing positions of a user.
type InvestmentRepo interface {
	ListMaturing(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]domain.MaturingInvestment, error)
	CountMaturing(ctx context.Context, userID uuid.UUID, from, to time.Time) (int64, error)
}

// ProductReader provides recently listed products.
type ProductReader interface {
	ActiveByRiskLevel(ctx context.Context, level domain.RiskLevel, createdAfter time.Time, limit int32) ([]domain.Product, error)
	CountActiveByRiskLevel(ctx context.Context, level domain.RiskLevel, createdAfter time.Time) (int64, error)
}

// Alert windows and limits.
const (
	MaturityWindowDays   = 7
	NewProductWindowDays = 7
	NewProductLimit      = 5
)

// Service facilitates alert service layer logic.
type Service struct {
	investments InvestmentRepo
	products    ProductReader
	formatter   currencypkg.Formatter
	now         func() time.Time
}

// New returns alert service formatting amounts with formatter.
func New(investments InvestmentRepo, products ProductReader, formatter currencypkg.Formatter) *Service {
	return &Service{
		investments: investments,
		products:    products,
		formatter:   formatter,
		now:         time.Now,
	}
}

func (s *Service) maturityWindow() (time.Time, time.Time) {
	today := domain.Date(s.now())
	return today, today.AddDate(0, 0, MaturityWindowDays)
}

func (s *Service) newProductsSince() time.Time {
	return s.now().UTC().AddDate(0, 0, -NewProductWindowDays)
}

// Alerts returns the maturity alerts of positions maturing within a week, soonest
// first, followed by up to five products listed during the last week that match
// the caller's risk appetite, newest first.
func (s *Service) Alerts(ctx context.Context, id domain.Identity) ([]domain.Alert, error) {
	from, to := s.maturityWindow()

	maturing, err := s.investments.ListMaturing(ctx, id.UserID, from, to)
	if err != nil {
		return nil, err
	}

	alerts := make([]domain.Alert, 0, len(maturing))

	for i := range maturing {
		alerts = append(alerts, s.maturityAlert(maturing[i], from))
	}

	if id.RiskAppetite == nil {
		return alerts, nil
	}

	products, err := s.products.ActiveByRiskLevel(ctx, *id.RiskAppetite, s.newProductsSince(), NewProductLimit)
	if err != nil {
		return nil, err
	}

	for i := range products {
		alerts = append(alerts, newProductAlert(products[i]))
	}

	return alerts, nil
}

// Count returns the number of alerts Alerts would return without building them.
func (s *Service) Count(ctx context.Context, id domain.Identity) (int64, error) {
	from, to := s.maturityWindow()

	n, err := s.investments.CountMaturing(ctx, id.UserID, from, to)
	if err != nil {
		return 0, err
	}

	if id.RiskAppetite == nil {
		return n, nil
	}

	products, err := s.products.CountActiveByRiskLevel(ctx, *id.RiskAppetite, s.newProductsSince())
	if err != nil {
		return 0, err
	}

	if products > NewProductLimit {
		products = NewProductLimit
	}

	return n + products, nil
}

func (s *Service) maturityAlert(inv domain.MaturingInvestment, today time.Time) domain.Alert {
	days := domain.DaysBetween(today, inv.MaturityDate)

	unit := "days"
	if days == 1 {
		unit = "day"
	}

	investmentID := inv.ID
	maturityDate := inv.MaturityDate

	return domain.Alert{
		Type: domain.AlertMaturity,
		Message: fmt.Sprintf("Your investment in %s matures in %d %s. Expected return: %s",
			inv.ProductName, days, unit, s.formatter.Format(inv.ExpectedReturn)),
		InvestmentID:   &investmentID,
		Days:           &days,
		ExpectedReturn: decimal.NewNullDecimal(inv.ExpectedReturn),
		MaturityDate:   &maturityDate,
	}
}

func newProductAlert(p domain.Product) domain.Alert {
	productID := p.ID

	return domain.Alert{
		Type: domain.AlertNewProduct,
		Message: fmt.Sprintf("New %s risk product matching your profile: %s with %s%% annual yield",
			p.RiskLevel, p.Name, p.AnnualYield.StringFixed(2)),
		ProductID:   &productID,
		AnnualYield: decimal.NewNullDecimal(p.AnnualYield),
	}
}
