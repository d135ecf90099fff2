// Package productservice manages product discovery and recommendations.
package productservice

import (
	"context"
	"fmt"

	"github.com/go-petr/pet-invest/internal/domain"
	"github.com/google/uuid"
)

//go:generate mockgen -source service.go -destination service_mock.go -package productservice

// Catalog provides product storage needed by the product service.
type Catalog interface {
	Create(ctx context.Context, arg domain.CreateProductParams) (domain.Product, error)
	Get(ctx context.Context, id uuid.UUID) (domain.Product, error)
	List(ctx context.Context, arg domain.ListProductsParams) ([]domain.Product, error)
}

// Listing defaults.
const (
	DefaultLimit = 20
	MaxLimit     = 100
)

// Service facilitates product service layer logic.
type Service struct {
	catalog Catalog
}

// New returns product service.
func New(catalog Catalog) *Service {
	return &Service{catalog: catalog}
}

// Create lists a new product. Only administrators may do that.
func (s *Service) Create(ctx context.Context, id domain.Identity, arg domain.CreateProductParams) (domain.Product, error) {
	if !id.IsAdmin {
		return domain.Product{}, domain.ErrAccessDenied
	}

	if err := validateTerms(arg); err != nil {
		return domain.Product{}, err
	}

	return s.catalog.Create(ctx, arg)
}

func validateTerms(arg domain.CreateProductParams) error {
	switch {
	case arg.Name == "":
		return fmt.Errorf("%w: name is empty", domain.ErrInvalidProduct)
	case !arg.InvestmentType.Valid():
		return fmt.Errorf("%w: unsupported investment type %q", domain.ErrInvalidProduct, arg.InvestmentType)
	case !arg.RiskLevel.Valid():
		return fmt.Errorf("%w: unsupported risk level %q", domain.ErrInvalidProduct, arg.RiskLevel)
	case arg.TenureMonths <= 0:
		return fmt.Errorf("%w: tenure must be positive", domain.ErrInvalidProduct)
	case arg.AnnualYield.IsNegative():
		return fmt.Errorf("%w: yield is negative", domain.ErrInvalidProduct)
	case !arg.MinInvestment.IsPositive():
		return fmt.Errorf("%w: minimum investment must be positive", domain.ErrInvalidProduct)
	case arg.MaxInvestment.Valid && arg.MaxInvestment.Decimal.LessThan(arg.MinInvestment):
		return fmt.Errorf("%w: maximum investment is below minimum", domain.ErrInvalidProduct)
	}

	return nil
}

// Get returns the active product with the given id.
func (s *Service) Get(ctx context.Context, productID uuid.UUID) (domain.Product, error) {
	p, err := s.catalog.Get(ctx, productID)
	if err != nil {
		return domain.Product{}, err
	}

	if !p.IsActive {
		return domain.Product{}, domain.ErrProductNotFound
	}

	return p, nil
}

// List returns active products matching arg.
func (s *Service) List(ctx context.Context, arg domain.ListProductsParams) ([]domain.Product, error) {
	arg.Limit = clampLimit(arg.Limit)
	return s.catalog.List(ctx, arg)
}

// Recommend returns up to limit active products matching the caller's risk appetite,
// highest yield first. Without an appetite every active product is a candidate.
func (s *Service) Recommend(ctx context.Context, id domain.Identity, limit int32) ([]domain.Product, error) {
	arg := domain.ListProductsParams{
		SortBy: domain.SortByYield,
		Desc:   true,
		Limit:  clampLimit(limit),
	}

	if id.RiskAppetite != nil {
		arg.RiskLevel = *id.RiskAppetite
	}

	return s.catalog.List(ctx, arg)
}

func clampLimit(limit int32) int32 {
	switch {
	case limit <= 0:
		return DefaultLimit
	case limit > MaxLimit:
		return MaxLimit
	}

	return limit
}
