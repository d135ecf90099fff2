// Package productrepo manages repository layer of the product catalog.
package productrepo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-petr/pet-invest/internal/domain"
	"github.com/go-petr/pet-invest/pkg/dbpkg"
	"github.com/go-petr/pet-invest/pkg/errorspkg"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/rs/zerolog"
)

// RepoPGS facilitates product repository layer logic.
type RepoPGS struct {
	db dbpkg.SQLInterface
}

// NewRepoPGS returns product RepoPGS.
func NewRepoPGS(db dbpkg.SQLInterface) *RepoPGS {
	return &RepoPGS{db: db}
}

const productColumns = `
	id, name, investment_type, tenure_months, annual_yield, risk_level,
	min_investment, max_investment, is_active, description, created_at`

type scanner interface {
	Scan(dest ...any) error
}

func scanProduct(row scanner) (domain.Product, error) {
	var p domain.Product

	err := row.Scan(
		&p.ID,
		&p.Name,
		&p.InvestmentType,
		&p.TenureMonths,
		&p.AnnualYield,
		&p.RiskLevel,
		&p.MinInvestment,
		&p.MaxInvestment,
		&p.IsActive,
		&p.Description,
		&p.CreatedAt,
	)

	return p, err
}

const createQuery = `
INSERT INTO products (
	name, investment_type, tenure_months, annual_yield, risk_level,
	min_investment, max_investment, is_active, description
) VALUES (
	$1, $2, $3, $4, $5, $6, $7, $8, $9
) RETURNING` + productColumns

// Create creates the product and then returns it.
func (r *RepoPGS) Create(ctx context.Context, arg domain.CreateProductParams) (domain.Product, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, createQuery,
		arg.Name,
		arg.InvestmentType,
		arg.TenureMonths,
		arg.AnnualYield,
		arg.RiskLevel,
		arg.MinInvestment,
		arg.MaxInvestment,
		arg.IsActive,
		arg.Description,
	)

	p, err := scanProduct(row)
	if err != nil {
		l.Error().Err(err).Msgf("Create(ctx, %+v)", arg)

		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code.Name() == "check_violation" {
			return p, fmt.Errorf("%w: %s", domain.ErrInvalidProduct, pqErr.Constraint)
		}

		return p, errorspkg.ErrInternal
	}

	return p, nil
}

const getQuery = `
SELECT` + productColumns + `
FROM products
WHERE id = $1
`

// Get returns the product with the given id, whether active or not.
func (r *RepoPGS) Get(ctx context.Context, id uuid.UUID) (domain.Product, error) {
	l := zerolog.Ctx(ctx)

	p, err := scanProduct(r.db.QueryRowContext(ctx, getQuery, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			l.Info().Err(err).Str("product_id", id.String()).Send()
			return p, domain.ErrProductNotFound
		}

		l.Error().Err(err).Send()

		return p, errorspkg.ErrInternal
	}

	return p, nil
}

const activeByRiskLevelQuery = `
SELECT` + productColumns + `
FROM products
WHERE is_active AND risk_level = $1 AND created_at >= $2
ORDER BY created_at DESC, id
LIMIT $3
`

// ActiveByRiskLevel returns up to limit active products of the given risk level
// created at or after createdAfter, newest first.
func (r *RepoPGS) ActiveByRiskLevel(ctx context.Context, level domain.RiskLevel, createdAfter time.Time, limit int32) ([]domain.Product, error) {
	return r.query(ctx, activeByRiskLevelQuery, level, createdAfter, limit)
}

const countActiveByRiskLevelQuery = `
SELECT count(*)
FROM products
WHERE is_active AND risk_level = $1 AND created_at >= $2
`

// CountActiveByRiskLevel counts active products of the given risk level created at or after createdAfter.
func (r *RepoPGS) CountActiveByRiskLevel(ctx context.Context, level domain.RiskLevel, createdAfter time.Time) (int64, error) {
	l := zerolog.Ctx(ctx)

	var n int64

	if err := r.db.QueryRowContext(ctx, countActiveByRiskLevelQuery, level, createdAfter).Scan(&n); err != nil {
		l.Error().Err(err).Send()
		return 0, errorspkg.ErrInternal
	}

	return n, nil
}

var sortColumns = map[string]string{
	domain.SortByYield:         "annual_yield",
	domain.SortByTenure:        "tenure_months",
	domain.SortByMinInvestment: "min_investment",
	domain.SortByCreatedAt:     "created_at",
}

// buildListQuery renders the discovery query for arg.
//
// Only whitelisted columns reach the ORDER BY clause, values are always bound.
func buildListQuery(arg domain.ListProductsParams) (string, []any) {
	var (
		sb    strings.Builder
		args  []any
		where = []string{"is_active"}
	)

	bind := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if arg.RiskLevel != "" {
		where = append(where, "risk_level = "+bind(arg.RiskLevel))
	}

	if arg.InvestmentType != "" {
		where = append(where, "investment_type = "+bind(arg.InvestmentType))
	}

	if arg.MinYield.Valid {
		where = append(where, "annual_yield >= "+bind(arg.MinYield.Decimal))
	}

	if arg.MaxTenureMonths > 0 {
		where = append(where, "tenure_months <= "+bind(arg.MaxTenureMonths))
	}

	column, ok := sortColumns[arg.SortBy]
	if !ok {
		column = "created_at"
	}

	direction := "ASC"
	if arg.Desc {
		direction = "DESC"
	}

	sb.WriteString("SELECT")
	sb.WriteString(productColumns)
	sb.WriteString("\nFROM products\nWHERE ")
	sb.WriteString(strings.Join(where, " AND "))
	sb.WriteString("\nORDER BY " + column + " " + direction + ", id")

	if arg.Limit > 0 {
		sb.WriteString("\nLIMIT " + bind(arg.Limit))
	}

	if arg.Offset > 0 {
		sb.WriteString("\nOFFSET " + bind(arg.Offset))
	}

	return sb.String(), args
}

// List returns active products matching the filter.
func (r *RepoPGS) List(ctx context.Context, arg domain.ListProductsParams) ([]domain.Product, error) {
	query, args := buildListQuery(arg)
	return r.query(ctx, query, args...)
}

func (r *RepoPGS) query(ctx context.Context, query string, args ...any) ([]domain.Product, error) {
	l := zerolog.Ctx(ctx)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}
	defer rows.Close()

	items := []domain.Product{}

	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			l.Error().Err(err).Send()
			return nil, errorspkg.ErrInternal
		}

		items = append(items, p)
	}

	if err := rows.Err(); err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}

	return items, nil
}
