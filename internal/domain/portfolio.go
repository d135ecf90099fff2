package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// PortfolioSummary aggregates a user's investments.
//
// Count, TotalInvested, TotalExpectedReturn and TotalGains cover active investments only,
// TotalMaturedProfit covers matured ones.
type PortfolioSummary struct {
	Count               int64           `json:"count"`
	TotalInvested       decimal.Decimal `json:"total_invested"`
	TotalExpectedReturn decimal.Decimal `json:"total_expected_return"`
	TotalGains          decimal.Decimal `json:"total_gains"`
	TotalMaturedProfit  decimal.Decimal `json:"total_matured_profit"`
}

// RiskBucket groups active investments by the risk level of their product.
type RiskBucket struct {
	RiskLevel   RiskLevel       `json:"risk_level"`
	Count       int64           `json:"count"`
	TotalAmount decimal.Decimal `json:"total_amount"`
}

// InsightKind enumerates the portfolio insight templates.
type InsightKind int

// Insight kinds.
const (
	InsightDiversify InsightKind = iota + 1
	InsightWellDiversified
	InsightExcellentReturns
	InsightOnTrack
	InsightExploreHigherYield
	InsightRiskShare
)

var insightKindNames = map[InsightKind]string{
	InsightDiversify:          "diversify",
	InsightWellDiversified:    "well_diversified",
	InsightExcellentReturns:   "excellent_returns",
	InsightOnTrack:            "on_track",
	InsightExploreHigherYield: "explore_higher_yield",
	InsightRiskShare:          "risk_share",
}

// String returns the stable name of the kind.
func (k InsightKind) String() string {
	if name, ok := insightKindNames[k]; ok {
		return name
	}

	return fmt.Sprintf("InsightKind(%d)", int(k))
}

// Insight is a rule based observation about a portfolio.
//
// Percent holds the rounded return percentage for the return tier kinds and the
// rounded share of the total for InsightRiskShare. RiskLevel is set for InsightRiskShare only.
type Insight struct {
	Kind      InsightKind
	Percent   decimal.Decimal
	RiskLevel RiskLevel
}

// Message renders the insight template.
func (i Insight) Message() string {
	switch i.Kind {
	case InsightDiversify:
		return "Consider diversifying your portfolio across different risk levels"
	case InsightWellDiversified:
		return "Great job! Your portfolio is well diversified across risk levels"
	case InsightExcellentReturns:
		return fmt.Sprintf("Excellent! Your portfolio is expected to return %s%%", i.Percent.StringFixed(2))
	case InsightOnTrack:
		return fmt.Sprintf("Your portfolio is on track with %s%% expected returns", i.Percent.StringFixed(2))
	case InsightExploreHigherYield:
		return fmt.Sprintf("Your expected return is %s%%, consider exploring higher yield products", i.Percent.StringFixed(2))
	case InsightRiskShare:
		return fmt.Sprintf("%s risk investments make up %s%% of your portfolio", i.RiskLevel, i.Percent.StringFixed(1))
	}

	return ""
}

// Messages renders insights in order.
func Messages(insights []Insight) []string {
	messages := make([]string, len(insights))
	for i := range insights {
		messages[i] = insights[i].Message()
	}

	return messages
}

// PortfolioOverview is the summary, the risk distribution and the insights derived from them.
type PortfolioOverview struct {
	Summary          PortfolioSummary `json:"summary"`
	RiskDistribution []RiskBucket     `json:"risk_distribution"`
	Insights         []string         `json:"insights"`
}
