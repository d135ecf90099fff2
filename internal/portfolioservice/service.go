// Package portfolioservice manages business logic layer of portfolio views.
package portfolioservice

import (
	"context"

	"github.com/go-petr/pet-invest/internal/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -source service.go -destination service_mock.go -package portfolioservice

// Repo provides the ledger aggregates needed by portfolio service layer.
type Repo interface {
	Summary(ctx context.Context, userID uuid.UUID) (domain.PortfolioSummary, error)
	RiskDistribution(ctx context.Context, userID uuid.UUID) ([]domain.RiskBucket, error)
}

// Service facilitates portfolio service layer logic.
type Service struct {
	repo Repo
}

// New returns portfolio service.
func New(repo Repo) *Service {
	return &Service{repo: repo}
}

// Summary returns the caller's portfolio summary. No positions yield zero aggregates.
func (s *Service) Summary(ctx context.Context, id domain.Identity) (domain.PortfolioSummary, error) {
	return s.repo.Summary(ctx, id.UserID)
}

// RiskDistribution returns the caller's active positions grouped by risk level.
func (s *Service) RiskDistribution(ctx context.Context, id domain.Identity) ([]domain.RiskBucket, error) {
	return s.repo.RiskDistribution(ctx, id.UserID)
}

// Overview returns the summary and the risk distribution together with their insights.
func (s *Service) Overview(ctx context.Context, id domain.Identity) (domain.PortfolioOverview, error) {
	summary, err := s.repo.Summary(ctx, id.UserID)
	if err != nil {
		return domain.PortfolioOverview{}, err
	}

	distribution, err := s.repo.RiskDistribution(ctx, id.UserID)
	if err != nil {
		return domain.PortfolioOverview{}, err
	}

	return domain.PortfolioOverview{
		Summary:          summary,
		RiskDistribution: distribution,
		Insights:         domain.Messages(GenerateInsights(summary, distribution)),
	}, nil
}

var (
	hundred        = decimal.NewFromInt(100)
	excellentAbove = decimal.NewFromInt(10)
	onTrackAbove   = decimal.NewFromInt(5)
)

// GenerateInsights derives the ordered insights of a portfolio.
//
// The diversification insight comes first, then the return tier, then one share
// per risk bucket in distribution order. Return and share insights need a non zero
// total invested.
func GenerateInsights(summary domain.PortfolioSummary, distribution []domain.RiskBucket) []domain.Insight {
	insights := []domain.Insight{}

	levels := map[domain.RiskLevel]struct{}{}
	for _, b := range distribution {
		levels[b.RiskLevel] = struct{}{}
	}

	switch {
	case len(levels) == 1:
		insights = append(insights, domain.Insight{Kind: domain.InsightDiversify})
	case len(levels) >= 3:
		insights = append(insights, domain.Insight{Kind: domain.InsightWellDiversified})
	}

	if !summary.TotalInvested.IsPositive() {
		return insights
	}

	returnPct := summary.TotalGains.Div(summary.TotalInvested).Mul(hundred).Round(2)

	tier := domain.InsightExploreHigherYield

	switch {
	case returnPct.GreaterThan(excellentAbove):
		tier = domain.InsightExcellentReturns
	case returnPct.GreaterThan(onTrackAbove):
		tier = domain.InsightOnTrack
	}

	insights = append(insights, domain.Insight{Kind: tier, Percent: returnPct})

	for _, b := range distribution {
		insights = append(insights, domain.Insight{
			Kind:      domain.InsightRiskShare,
			RiskLevel: b.RiskLevel,
			Percent:   b.TotalAmount.Div(summary.TotalInvested).Mul(hundred).Round(1),
		})
	}

	return insights
}
