// Package investmentservice manages business logic layer of investments.
package investmentservice

import (
	"context"
	"errors"
	"time"

	"github.com/go-petr/pet-invest/internal/domain"
	"github.com/go-petr/pet-invest/internal/metrics"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -source service.go -destination service_mock.go -package investmentservice

// Repo provides data access layer interface needed by investment service layer.
type Repo interface {
	Create(ctx context.Context, arg domain.CreateInvestmentParams) (domain.LedgerResult, error)
	Cancel(ctx context.Context, id, userID uuid.UUID) (domain.LedgerResult, error)
	Get(ctx context.Context, id uuid.UUID) (domain.Investment, error)
	List(ctx context.Context, arg domain.ListInvestmentsParams) ([]domain.Investment, error)
	ListMaturedUnread(ctx context.Context, userID uuid.UUID) ([]domain.Investment, error)
	MarkNotificationRead(ctx context.Context, id, userID uuid.UUID) (domain.Investment, error)
}

// ProductReader provides the product terms an investment is validated against.
type ProductReader interface {
	Get(ctx context.Context, id uuid.UUID) (domain.Product, error)
}

// WalletReader provides the current wallet balance.
type WalletReader interface {
	GetBalance(ctx context.Context, userID uuid.UUID) (decimal.Decimal, error)
}

// DefaultListLimit is used when a list request carries no limit.
const DefaultListLimit = 20

// Service facilitates investment service layer logic.
type Service struct {
	repo     Repo
	products ProductReader
	wallet   WalletReader
	metrics  *metrics.Metrics
	now      func() time.Time
}

// New returns investment service struct to manage the investment ledger.
func New(repo Repo, products ProductReader, wallet WalletReader, m *metrics.Metrics) *Service {
	return &Service{
		repo:     repo,
		products: products,
		wallet:   wallet,
		metrics:  m,
		now:      time.Now,
	}
}

// validate checks the request against the product terms and the wallet balance.
// The first failing check wins.
func (s *Service) validate(ctx context.Context, userID, productID uuid.UUID, amount decimal.Decimal) (domain.Product, error) {
	l := zerolog.Ctx(ctx)

	if !amount.IsPositive() {
		l.Info().Str("amount", amount.String()).Msg("non positive amount")
		return domain.Product{}, domain.ErrInvalidAmount
	}

	// Balances and positions are stored in whole cents.
	if !amount.Equal(amount.Round(2)) {
		l.Info().Str("amount", amount.String()).Msg("sub cent amount")
		return domain.Product{}, domain.SubCentAmountError(amount)
	}

	product, err := s.products.Get(ctx, productID)
	if err != nil {
		return domain.Product{}, err
	}

	if !product.IsActive {
		l.Info().Str("product_id", productID.String()).Msg("product is not active")
		return domain.Product{}, domain.ErrProductNotFound
	}

	if amount.LessThan(product.MinInvestment) {
		return domain.Product{}, domain.BelowMinimumError(product.MinInvestment)
	}

	if product.MaxInvestment.Valid && amount.GreaterThan(product.MaxInvestment.Decimal) {
		return domain.Product{}, domain.AboveMaximumError(product.MaxInvestment.Decimal)
	}

	balance, err := s.wallet.GetBalance(ctx, userID)
	if err != nil {
		return domain.Product{}, err
	}

	if balance.LessThan(amount) {
		return domain.Product{}, domain.InsufficientBalanceError(balance)
	}

	return product, nil
}

// Create validates the request, prices the position and commits it together with
// the wallet debit.
func (s *Service) Create(ctx context.Context, id domain.Identity, productID uuid.UUID, amount decimal.Decimal) (domain.LedgerResult, error) {
	product, err := s.validate(ctx, id.UserID, productID, amount)
	if err != nil {
		s.record(metrics.OpCreate, err)
		return domain.LedgerResult{}, err
	}

	today := domain.Date(s.now())

	result, err := s.repo.Create(ctx, domain.CreateInvestmentParams{
		UserID:         id.UserID,
		ProductID:      product.ID,
		Amount:         amount,
		ExpectedReturn: domain.ExpectedReturn(amount, product.AnnualYield, product.TenureMonths),
		MaturityDate:   domain.MaturityDate(today, product.TenureMonths),
	})

	s.record(metrics.OpCreate, err)

	if err != nil {
		return domain.LedgerResult{}, err
	}

	s.metrics.LedgerAmount(metrics.OpCreate, amount.InexactFloat64())

	return result, nil
}

// authorize returns the investment if the caller may read it.
// Owners can always read, admins only when allowAdmin is set.
func (s *Service) authorize(ctx context.Context, id domain.Identity, investmentID uuid.UUID, allowAdmin bool) (domain.Investment, error) {
	inv, err := s.repo.Get(ctx, investmentID)
	if err != nil {
		return domain.Investment{}, err
	}

	if inv.UserID != id.UserID && !(allowAdmin && id.IsAdmin) {
		zerolog.Ctx(ctx).Info().
			Str("investment_id", investmentID.String()).
			Str("user_id", id.UserID.String()).
			Msg("access denied")

		return domain.Investment{}, domain.ErrAccessDenied
	}

	return inv, nil
}

// Get returns the investment to its owner or to an admin.
func (s *Service) Get(ctx context.Context, id domain.Identity, investmentID uuid.UUID) (domain.Investment, error) {
	return s.authorize(ctx, id, investmentID, true)
}

// Cancel terminates the caller's active position and credits its amount back.
// There is no admin override.
func (s *Service) Cancel(ctx context.Context, id domain.Identity, investmentID uuid.UUID) (domain.LedgerResult, error) {
	inv, err := s.authorize(ctx, id, investmentID, false)
	if err != nil {
		s.record(metrics.OpCancel, err)
		return domain.LedgerResult{}, err
	}

	if inv.Status != domain.StatusActive {
		err := domain.InvalidStateError(inv.Status)
		s.record(metrics.OpCancel, err)

		return domain.LedgerResult{}, err
	}

	result, err := s.repo.Cancel(ctx, investmentID, id.UserID)

	s.record(metrics.OpCancel, err)

	if err != nil {
		return domain.LedgerResult{}, err
	}

	s.metrics.LedgerAmount(metrics.OpCancel, inv.Amount.InexactFloat64())

	return result, nil
}

// List returns the caller's investments, optionally filtered by status.
func (s *Service) List(ctx context.Context, id domain.Identity, status domain.InvestmentStatus, limit, offset int32) ([]domain.Investment, error) {
	if status != "" && !status.Valid() {
		return nil, domain.ErrUnknownStatus
	}

	if limit <= 0 {
		limit = DefaultListLimit
	}

	return s.repo.List(ctx, domain.ListInvestmentsParams{
		UserID: id.UserID,
		Status: status,
		Limit:  limit,
		Offset: offset,
	})
}

// Notifications returns the caller's matured positions that were not acknowledged yet.
func (s *Service) Notifications(ctx context.Context, id domain.Identity) ([]domain.Investment, error) {
	return s.repo.ListMaturedUnread(ctx, id.UserID)
}

// MarkRead acknowledges the maturity notification of the caller's position.
func (s *Service) MarkRead(ctx context.Context, id domain.Identity, investmentID uuid.UUID) (domain.Investment, error) {
	inv, err := s.authorize(ctx, id, investmentID, false)
	if err != nil {
		return domain.Investment{}, err
	}

	if inv.Status != domain.StatusMatured {
		return domain.Investment{}, domain.InvalidStateError(inv.Status)
	}

	return s.repo.MarkNotificationRead(ctx, investmentID, id.UserID)
}

func (s *Service) record(op string, err error) {
	switch {
	case err == nil:
		s.metrics.LedgerOperation(op, metrics.OutcomeCommitted)
	case errors.Is(err, domain.ErrTransactionFailed):
		s.metrics.LedgerOperation(op, metrics.OutcomeFailed)
	default:
		s.metrics.LedgerOperation(op, metrics.OutcomeRejected)
	}
}
