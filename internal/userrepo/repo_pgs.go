// Package userrepo manages repository layer of users.
package userrepo

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
)

// RepoPGS facilitates user repository layer logic.
type RepoPGS struct {
	db dbpkg.SQLInterface
}

// NewRepoPGS returns user RepoPGS.
func NewRepoPGS(db dbpkg.SQLInterface) *RepoPGS {
	return &RepoPGS{
		db: db,
	}
}

const userColumns = `
	id,
	username,
	hashed_password,
	full_name,
	email,
	balance,
	risk_appetite,
	is_admin,
	password_changed_at,
	created_at
`

func scanUser(row *sql.Row) (domain.User, error) {
	var u domain.User

	err := row.Scan(
		&u.ID,
		&u.Username,
		&u.HashedPassword,
		&u.FullName,
		&u.Email,
		&u.Balance,
		&u.RiskAppetite,
		&u.IsAdmin,
		&u.PasswordChangedAt,
		&u.CreatedAt,
	)

	return u, err
}

// CreateQuery inserts into users table.
const CreateQuery = `
INSERT INTO users (
    username,
    hashed_password,
    full_name,
    email,
    balance,
    risk_appetite
) VALUES (
    $1, $2, $3, $4, $5, $6
) RETURNING` + userColumns

// Create creates the user and then returns it.
func (r *RepoPGS) Create(ctx context.Context, arg domain.CreateUserParams) (domain.User, error) {
	l := zerolog.Ctx(ctx)

	u, err := scanUser(r.db.QueryRowContext(ctx, CreateQuery,
		arg.Username,
		arg.HashedPassword,
		arg.FullName,
		arg.Email,
		arg.Balance,
		arg.RiskAppetite,
	))
	if err != nil {
		l.Error().Err(err).Send()

		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code.Name() == "unique_violation" {
			switch pqErr.Constraint {
			case "users_username_key":
				return domain.User{}, domain.ErrUsernameAlreadyExists
			case "users_email_key":
				return domain.User{}, domain.ErrEmailALreadyExists
			}
		}

		return domain.User{}, errorspkg.ErrInternal
	}

	return u, nil
}

const getByIDQuery = `
SELECT` + userColumns + `
FROM users
WHERE id = $1
`

// GetByID returns the user with the given id.
func (r *RepoPGS) GetByID(ctx context.Context, id uuid.UUID) (domain.User, error) {
	return r.get(ctx, getByIDQuery, id)
}

const getByUsernameQuery = `
SELECT` + userColumns + `
FROM users
WHERE username = $1
`

// GetByUsername returns the user with the given username.
func (r *RepoPGS) GetByUsername(ctx context.Context, username string) (domain.User, error) {
	return r.get(ctx, getByUsernameQuery, username)
}

func (r *RepoPGS) get(ctx context.Context, query string, args ...any) (domain.User, error) {
	l := zerolog.Ctx(ctx)

	u, err := scanUser(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			l.Info().Err(err).Interface("key", args[0]).Send()
			return domain.User{}, domain.ErrUserNotFound
		}

		l.Error().Err(err).Send()

		return domain.User{}, errorspkg.ErrInternal
	}

	return u, nil
}

const updateRiskAppetiteQuery = `
UPDATE users
SET risk_appetite = $2
WHERE id = $1
RETURNING` + userColumns

// UpdateRiskAppetite sets the user's risk appetite. A nil level clears it.
func (r *RepoPGS) UpdateRiskAppetite(ctx context.Context, id uuid.UUID, level *domain.RiskLevel) (domain.User, error) {
	return r.get(ctx, updateRiskAppetiteQuery, id, level)
}
