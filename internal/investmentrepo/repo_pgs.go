// Package investmentrepo manages repository layer of investments.
package investmentrepo

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/go-petr/pet-invest/internal/domain"
	"github.com/go-petr/pet-invest/internal/walletrepo"
	"github.com/go-petr/pet-invest/pkg/dbpkg"
	"github.com/go-petr/pet-invest/pkg/errorspkg"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// RepoPGS facilitates investment repository layer logic.
type RepoPGS struct {
	db   dbpkg.SQLInterface
	conn *sql.DB
}

// NewTxRepoPGS returns investment RepoPGS bound to a transaction.
func NewTxRepoPGS(db dbpkg.SQLInterface) *RepoPGS {
	return &RepoPGS{
		db: db,
	}
}

// NewRepoPGS returns investment RepoPGS with connection to start transactions.
func NewRepoPGS(db *sql.DB) *RepoPGS {
	return &RepoPGS{
		db:   db,
		conn: db,
	}
}

const investmentColumns = `
	id, user_id, product_id, amount, expected_return,
	invested_at, maturity_date, status, notification_read`

type scanner interface {
	Scan(dest ...any) error
}

func scanInvestment(row scanner, extra ...any) (domain.Investment, error) {
	var i domain.Investment

	dest := append([]any{
		&i.ID,
		&i.UserID,
		&i.ProductID,
		&i.Amount,
		&i.ExpectedReturn,
		&i.InvestedAt,
		&i.MaturityDate,
		&i.Status,
		&i.NotificationRead,
	}, extra...)

	err := row.Scan(dest...)

	return i, err
}

const insertQuery = `
INSERT INTO investments (
	user_id, product_id, amount, expected_return, maturity_date
) VALUES (
	$1, $2, $3, $4, $5
) RETURNING` + investmentColumns

func (r *RepoPGS) insert(ctx context.Context, arg domain.CreateInvestmentParams) (domain.Investment, error) {
	row := r.db.QueryRowContext(ctx, insertQuery,
		arg.UserID,
		arg.ProductID,
		arg.Amount,
		arg.ExpectedReturn,
		arg.MaturityDate,
	)

	return scanInvestment(row)
}

const getQuery = `
SELECT` + investmentColumns + `
FROM investments
WHERE id = $1
`

// Get returns the investment with the given id.
func (r *RepoPGS) Get(ctx context.Context, id uuid.UUID) (domain.Investment, error) {
	return r.get(ctx, getQuery, id)
}

const lockQuery = getQuery + "FOR UPDATE\n"

func (r *RepoPGS) get(ctx context.Context, query string, id uuid.UUID) (domain.Investment, error) {
	l := zerolog.Ctx(ctx)

	i, err := scanInvestment(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			l.Info().Err(err).Str("investment_id", id.String()).Send()
			return i, domain.ErrInvestmentNotFound
		}

		l.Error().Err(err).Send()

		return i, errorspkg.ErrInternal
	}

	return i, nil
}

const setStatusQuery = `
UPDATE investments
SET status = $2
WHERE id = $1
RETURNING` + investmentColumns

func (r *RepoPGS) setStatus(ctx context.Context, id uuid.UUID, status domain.InvestmentStatus) (domain.Investment, error) {
	return scanInvestment(r.db.QueryRowContext(ctx, setStatusQuery, id, status))
}

// Create runs the create investment unit of work.
//
// It locks the owner's balance row, checks the balance covers the amount, inserts
// the position and debits the wallet within a single db transaction. Domain errors
// found before any write are returned as is. Any failure after that rolls the
// transaction back and is reported as domain.ErrTransactionFailed.
func (r *RepoPGS) Create(ctx context.Context, arg domain.CreateInvestmentParams) (domain.LedgerResult, error) {
	l := zerolog.Ctx(ctx)

	var result domain.LedgerResult

	tx, err := r.conn.BeginTx(ctx, nil)
	if err != nil {
		l.Error().Err(err).Send()
		return result, domain.ErrTransactionFailed
	}

	defer func() {
		if err := dbpkg.Rollback(tx); err != nil {
			l.Error().Err(err).Send()
		}
	}()

	wallet := walletrepo.NewRepoPGS(tx)
	ledger := NewTxRepoPGS(tx)

	balance, err := wallet.LockBalance(ctx, arg.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return result, err
		}

		return result, domain.ErrTransactionFailed
	}

	if balance.LessThan(arg.Amount) {
		l.Info().Str("balance", balance.String()).Str("amount", arg.Amount.String()).Msg("insufficient balance")
		return result, domain.InsufficientBalanceError(balance)
	}

	inv, err := ledger.insert(ctx, arg)
	if err != nil {
		l.Error().Err(err).Msgf("insert(ctx, %+v)", arg)
		return result, domain.ErrTransactionFailed
	}

	balance, err = wallet.AdjustBalance(ctx, arg.UserID, arg.Amount.Neg())
	if err != nil {
		return result, domain.ErrTransactionFailed
	}

	if err := tx.Commit(); err != nil {
		l.Error().Err(err).Send()
		return result, domain.ErrTransactionFailed
	}

	result.Investment = inv
	result.Balance = balance

	return result, nil
}

// Cancel runs the cancel investment unit of work.
//
// Lock order is the owner's balance row, then the investment row, the same as in
// Create. Ownership and status are checked on the locked row. The position is set
// to cancelled and its amount is credited back within a single db transaction.
func (r *RepoPGS) Cancel(ctx context.Context, id, userID uuid.UUID) (domain.LedgerResult, error) {
	l := zerolog.Ctx(ctx)

	var result domain.LedgerResult

	tx, err := r.conn.BeginTx(ctx, nil)
	if err != nil {
		l.Error().Err(err).Send()
		return result, domain.ErrTransactionFailed
	}

	defer func() {
		if err := dbpkg.Rollback(tx); err != nil {
			l.Error().Err(err).Send()
		}
	}()

	wallet := walletrepo.NewRepoPGS(tx)
	ledger := NewTxRepoPGS(tx)

	if _, err := wallet.LockBalance(ctx, userID); err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return result, err
		}

		return result, domain.ErrTransactionFailed
	}

	inv, err := ledger.get(ctx, lockQuery, id)
	if err != nil {
		if errors.Is(err, domain.ErrInvestmentNotFound) {
			return result, err
		}

		return result, domain.ErrTransactionFailed
	}

	if inv.UserID != userID {
		l.Info().Str("investment_id", id.String()).Msg("investment belongs to another user")
		return result, domain.ErrAccessDenied
	}

	if inv.Status != domain.StatusActive {
		l.Info().Str("investment_id", id.String()).Str("status", string(inv.Status)).Send()
		return result, domain.InvalidStateError(inv.Status)
	}

	cancelled, err := ledger.setStatus(ctx, id, domain.StatusCancelled)
	if err != nil {
		l.Error().Err(err).Send()
		return result, domain.ErrTransactionFailed
	}

	balance, err := wallet.AdjustBalance(ctx, userID, inv.Amount)
	if err != nil {
		return result, domain.ErrTransactionFailed
	}

	if err := tx.Commit(); err != nil {
		l.Error().Err(err).Send()
		return result, domain.ErrTransactionFailed
	}

	result.Investment = cancelled
	result.Balance = balance

	return result, nil
}

const listQuery = `
SELECT` + investmentColumns + `
FROM investments
WHERE user_id = $1 AND ($2::text = '' OR status::text = $2)
ORDER BY invested_at DESC, id
LIMIT $3 OFFSET $4
`

// List returns the user's investments, newest first. An empty status lists all of them.
func (r *RepoPGS) List(ctx context.Context, arg domain.ListInvestmentsParams) ([]domain.Investment, error) {
	return r.list(ctx, listQuery, arg.UserID, string(arg.Status), arg.Limit, arg.Offset)
}

const listMaturedUnreadQuery = `
SELECT` + investmentColumns + `
FROM investments
WHERE user_id = $1 AND status = 'matured' AND NOT notification_read
ORDER BY maturity_date DESC, id
`

// ListMaturedUnread returns the user's matured positions not yet acknowledged.
func (r *RepoPGS) ListMaturedUnread(ctx context.Context, userID uuid.UUID) ([]domain.Investment, error) {
	return r.list(ctx, listMaturedUnreadQuery, userID)
}

func (r *RepoPGS) list(ctx context.Context, query string, args ...any) ([]domain.Investment, error) {
	l := zerolog.Ctx(ctx)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}
	defer rows.Close()

	items := []domain.Investment{}

	for rows.Next() {
		i, err := scanInvestment(rows)
		if err != nil {
			l.Error().Err(err).Send()
			return nil, errorspkg.ErrInternal
		}

		items = append(items, i)
	}

	if err := rows.Err(); err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}

	return items, nil
}

const markNotificationReadQuery = `
UPDATE investments
SET notification_read = true
WHERE id = $1 AND user_id = $2 AND status = 'matured'
RETURNING` + investmentColumns

// MarkNotificationRead acknowledges the maturity notification of the user's matured position.
func (r *RepoPGS) MarkNotificationRead(ctx context.Context, id, userID uuid.UUID) (domain.Investment, error) {
	l := zerolog.Ctx(ctx)

	i, err := scanInvestment(r.db.QueryRowContext(ctx, markNotificationReadQuery, id, userID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			l.Info().Err(err).Str("investment_id", id.String()).Send()
			return i, domain.ErrInvestmentNotFound
		}

		l.Error().Err(err).Send()

		return i, errorspkg.ErrInternal
	}

	return i, nil
}

const markMaturedQuery = `
UPDATE investments
SET status = 'matured', notification_read = false
WHERE status = 'active' AND maturity_date < $1
`

// MarkMatured flips every active position that matured before today to matured
// and returns how many were flipped. Balances are not touched.
func (r *RepoPGS) MarkMatured(ctx context.Context, today time.Time) (int64, error) {
	l := zerolog.Ctx(ctx)

	res, err := r.db.ExecContext(ctx, markMaturedQuery, today)
	if err != nil {
		l.Error().Err(err).Send()
		return 0, errorspkg.ErrInternal
	}

	n, err := res.RowsAffected()
	if err != nil {
		l.Error().Err(err).Send()
		return 0, errorspkg.ErrInternal
	}

	return n, nil
}
