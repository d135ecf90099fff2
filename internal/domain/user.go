// Package domain provides definitions of all entities.
package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	// ErrUsernameAlreadyExists indicates the the user with the given username already exists.
	ErrUsernameAlreadyExists = errors.New("username already exists")
	// ErrEmailALreadyExists indicates the the user with the given email already exists.
	ErrEmailALreadyExists = errors.New("email already exists")
	// ErrUserNotFound indicates the the user is not found.
	ErrUserNotFound = errors.New("user not found")
	// ErrWrongPassword indicates the wrong password for the given user.
	ErrWrongPassword = errors.New("wrong password")
)

// User holds user data.
type User struct {
	ID                uuid.UUID       `json:"id"`
	Username          string          `json:"username"`
	HashedPassword    string          `json:"-"`
	FullName          string          `json:"full_name"`
	Email             string          `json:"email"`
	Balance           decimal.Decimal `json:"balance"`
	RiskAppetite      *RiskLevel      `json:"risk_appetite"`
	IsAdmin           bool            `json:"is_admin"`
	PasswordChangedAt time.Time       `json:"password_changed_at,omitempty"`
	CreatedAt         time.Time       `json:"created_at,omitempty"`
}

// CreateUserParams is the input data to create a user.
type CreateUserParams struct {
	Username       string          `json:"username"`
	HashedPassword string          `json:"hashed_password"`
	FullName       string          `json:"full_name"`
	Email          string          `json:"email"`
	Balance        decimal.Decimal `json:"balance"`
	RiskAppetite   *RiskLevel      `json:"risk_appetite"`
}

// Identity is the authenticated caller of a request.
//
// It is resolved once per request and trusted by the ledger without further checks.
type Identity struct {
	UserID       uuid.UUID
	Username     string
	RiskAppetite *RiskLevel
	Balance      decimal.Decimal
	IsAdmin      bool
}

// NewIdentity returns the identity of the given user.
func NewIdentity(u User) Identity {
	return Identity{
		UserID:       u.ID,
		Username:     u.Username,
		RiskAppetite: u.RiskAppetite,
		Balance:      u.Balance,
		IsAdmin:      u.IsAdmin,
	}
}

// Wallet is the cash balance of a user.
type Wallet struct {
	Balance   decimal.Decimal `json:"balance"`
	Currency  string          `json:"currency"`
	Formatted string          `json:"formatted"`
}
