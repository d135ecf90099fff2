package investmentservice

import (
	"context"
	"sync"

	"github.com/go-petr/pet-invest/internal/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// memLedger is an in-memory ledger holding one lock across check and mutate,
// the way the Postgres repo holds the users row lock.
type memLedger struct {
	mu          sync.Mutex
	balances    map[uuid.UUID]decimal.Decimal
	products    map[uuid.UUID]domain.Product
	investments map[uuid.UUID]domain.Investment
}

func newMemLedger() *memLedger {
	return &memLedger{
		balances:    map[uuid.UUID]decimal.Decimal{},
		products:    map[uuid.UUID]domain.Product{},
		investments: map[uuid.UUID]domain.Investment{},
	}
}

func (m *memLedger) GetBalance(_ context.Context, userID uuid.UUID) (decimal.Decimal, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	b, ok := m.balances[userID]
	if !ok {
		return decimal.Zero, domain.ErrUserNotFound
	}

	return b, nil
}

func (m *memLedger) Create(_ context.Context, arg domain.CreateInvestmentParams) (domain.LedgerResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	balance := m.balances[arg.UserID]
	if balance.LessThan(arg.Amount) {
		return domain.LedgerResult{}, domain.InsufficientBalanceError(balance)
	}

	inv := domain.Investment{
		ID:             uuid.New(),
		UserID:         arg.UserID,
		ProductID:      arg.ProductID,
		Amount:         arg.Amount,
		ExpectedReturn: arg.ExpectedReturn,
		MaturityDate:   arg.MaturityDate,
		Status:         domain.StatusActive,
	}

	m.investments[inv.ID] = inv
	m.balances[arg.UserID] = balance.Sub(arg.Amount)

	return domain.LedgerResult{Investment: inv, Balance: m.balances[arg.UserID]}, nil
}

func (m *memLedger) Cancel(_ context.Context, id, userID uuid.UUID) (domain.LedgerResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	inv, ok := m.investments[id]
	if !ok {
		return domain.LedgerResult{}, domain.ErrInvestmentNotFound
	}

	if inv.Status != domain.StatusActive {
		return domain.LedgerResult{}, domain.InvalidStateError(inv.Status)
	}

	inv.Status = domain.StatusCancelled
	m.investments[id] = inv
	m.balances[userID] = m.balances[userID].Add(inv.Amount)

	return domain.LedgerResult{Investment: inv, Balance: m.balances[userID]}, nil
}

func (m *memLedger) Get(_ context.Context, id uuid.UUID) (domain.Investment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	inv, ok := m.investments[id]
	if !ok {
		return domain.Investment{}, domain.ErrInvestmentNotFound
	}

	return inv, nil
}

func (m *memLedger) List(_ context.Context, arg domain.ListInvestmentsParams) ([]domain.Investment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	items := []domain.Investment{}

	for _, inv := range m.investments {
		if inv.UserID == arg.UserID && (arg.Status == "" || inv.Status == arg.Status) {
			items = append(items, inv)
		}
	}

	return items, nil
}

func (m *memLedger) ListMaturedUnread(context.Context, uuid.UUID) ([]domain.Investment, error) {
	return []domain.Investment{}, nil
}

func (m *memLedger) MarkNotificationRead(_ context.Context, id, _ uuid.UUID) (domain.Investment, error) {
	return m.Get(context.Background(), id)
}

// productReader exposes the ledger's products as a ProductReader.
type productReader struct{ *memLedger }

func (p productReader) Get(_ context.Context, id uuid.UUID) (domain.Product, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	product, ok := p.products[id]
	if !ok {
		return domain.Product{}, domain.ErrProductNotFound
	}

	return product, nil
}
