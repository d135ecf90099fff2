// Package walletrepo manages the wallet balance stored on users.
package walletrepo

import (
	"context"
	"database/sql"
	"errors"

	"github.com/go-petr/pet-invest/internal/domain"
	"github.com/go-petr/pet-invest/pkg/dbpkg"
	"github.com/go-petr/pet-invest/pkg/errorspkg"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// RepoPGS facilitates wallet repository layer logic.
//
// Built over a *sql.Tx its writes join the caller's unit of work.
type RepoPGS struct {
	db dbpkg.SQLInterface
}

// NewRepoPGS returns wallet RepoPGS.
func NewRepoPGS(db dbpkg.SQLInterface) *RepoPGS {
	return &RepoPGS{db: db}
}

const getBalanceQuery = `
SELECT balance
FROM users
WHERE id = $1
`

// GetBalance returns the user's current balance.
func (r *RepoPGS) GetBalance(ctx context.Context, userID uuid.UUID) (decimal.Decimal, error) {
	return r.balance(ctx, getBalanceQuery, userID)
}

const lockBalanceQuery = `
SELECT balance
FROM users
WHERE id = $1
FOR UPDATE
`

// LockBalance returns the user's balance and locks the row until the surrounding
// transaction ends. Concurrent ledger operations of the same user wait on this lock.
func (r *RepoPGS) LockBalance(ctx context.Context, userID uuid.UUID) (decimal.Decimal, error) {
	return r.balance(ctx, lockBalanceQuery, userID)
}

func (r *RepoPGS) balance(ctx context.Context, query string, userID uuid.UUID) (decimal.Decimal, error) {
	l := zerolog.Ctx(ctx)

	var balance decimal.Decimal

	err := r.db.QueryRowContext(ctx, query, userID).Scan(&balance)
	if err != nil {
		l.Error().Err(err).Send()

		if errors.Is(err, sql.ErrNoRows) {
			return balance, domain.ErrUserNotFound
		}

		return balance, errorspkg.ErrInternal
	}

	return balance, nil
}

const adjustBalanceQuery = `
UPDATE users
SET balance = balance + $1
WHERE id = $2
RETURNING balance
`

// AdjustBalance adds delta to the user's balance and returns the new balance.
//
// delta may be negative. The users_balance_check constraint rejects overdrafts.
func (r *RepoPGS) AdjustBalance(ctx context.Context, userID uuid.UUID, delta decimal.Decimal) (decimal.Decimal, error) {
	l := zerolog.Ctx(ctx)

	var balance decimal.Decimal

	err := r.db.QueryRowContext(ctx, adjustBalanceQuery, delta, userID).Scan(&balance)
	if err != nil {
		l.Error().Err(err).Msgf("AdjustBalance(ctx, %v, %v)", userID, delta)

		if errors.Is(err, sql.ErrNoRows) {
			return balance, domain.ErrUserNotFound
		}

		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Constraint == "users_balance_check" {
			return balance, domain.ErrInsufficientBalance
		}

		return balance, errorspkg.ErrInternal
	}

	return balance, nil
}
