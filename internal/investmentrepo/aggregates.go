package investmentrepo

import (
	"context"
	"time"

	"github.com/go-petr/pet-invest/internal/domain"
	"github.com/go-petr/pet-invest/pkg/errorspkg"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const summaryQuery = `
SELECT
	count(*) FILTER (WHERE status = 'active'),
	COALESCE(sum(amount) FILTER (WHERE status = 'active'), 0),
	COALESCE(sum(expected_return) FILTER (WHERE status = 'active'), 0),
	COALESCE(sum(expected_return - amount) FILTER (WHERE status = 'matured'), 0)
FROM investments
WHERE user_id = $1
`

// Summary aggregates the user's active positions and the profit of matured ones.
func (r *RepoPGS) Summary(ctx context.Context, userID uuid.UUID) (domain.PortfolioSummary, error) {
	l := zerolog.Ctx(ctx)

	var s domain.PortfolioSummary

	err := r.db.QueryRowContext(ctx, summaryQuery, userID).Scan(
		&s.Count,
		&s.TotalInvested,
		&s.TotalExpectedReturn,
		&s.TotalMaturedProfit,
	)
	if err != nil {
		l.Error().Err(err).Send()
		return domain.PortfolioSummary{}, errorspkg.ErrInternal
	}

	s.TotalGains = s.TotalExpectedReturn.Sub(s.TotalInvested)

	return s, nil
}

const riskDistributionQuery = `
SELECT p.risk_level, count(*), sum(i.amount)
FROM investments i
JOIN products p ON p.id = i.product_id
WHERE i.user_id = $1 AND i.status = 'active'
GROUP BY p.risk_level
ORDER BY p.risk_level
`

// RiskDistribution groups the user's active positions by product risk level,
// in ascending risk order.
func (r *RepoPGS) RiskDistribution(ctx context.Context, userID uuid.UUID) ([]domain.RiskBucket, error) {
	l := zerolog.Ctx(ctx)

	rows, err := r.db.QueryContext(ctx, riskDistributionQuery, userID)
	if err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}
	defer rows.Close()

	buckets := []domain.RiskBucket{}

	for rows.Next() {
		var b domain.RiskBucket
		if err := rows.Scan(&b.RiskLevel, &b.Count, &b.TotalAmount); err != nil {
			l.Error().Err(err).Send()
			return nil, errorspkg.ErrInternal
		}

		buckets = append(buckets, b)
	}

	if err := rows.Err(); err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}

	return buckets, nil
}

const listMaturingQuery = `
SELECT
	i.id, i.user_id, i.product_id, i.amount, i.expected_return,
	i.invested_at, i.maturity_date, i.status, i.notification_read, p.name
FROM investments i
JOIN products p ON p.id = i.product_id
WHERE i.user_id = $1 AND i.status = 'active' AND i.maturity_date BETWEEN $2 AND $3
ORDER BY i.maturity_date, i.id
`

// ListMaturing returns the user's active positions maturing within [from, to],
// soonest first.
func (r *RepoPGS) ListMaturing(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]domain.MaturingInvestment, error) {
	l := zerolog.Ctx(ctx)

	rows, err := r.db.QueryContext(ctx, listMaturingQuery, userID, from, to)
	if err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}
	defer rows.Close()

	items := []domain.MaturingInvestment{}

	for rows.Next() {
		var name string

		i, err := scanInvestment(rows, &name)
		if err != nil {
			l.Error().Err(err).Send()
			return nil, errorspkg.ErrInternal
		}

		items = append(items, domain.MaturingInvestment{Investment: i, ProductName: name})
	}

	if err := rows.Err(); err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}

	return items, nil
}

const countMaturingQuery = `
SELECT count(*)
FROM investments
WHERE user_id = $1 AND status = 'active' AND maturity_date BETWEEN $2 AND $3
`

// CountMaturing counts the user's active positions maturing within [from, to].
func (r *RepoPGS) CountMaturing(ctx context.Context, userID uuid.UUID, from, to time.Time) (int64, error) {
	l := zerolog.Ctx(ctx)

	var n int64

	if err := r.db.QueryRowContext(ctx, countMaturingQuery, userID, from, to).Scan(&n); err != nil {
		l.Error().Err(err).Send()
		return 0, errorspkg.ErrInternal
	}

	return n, nil
}
