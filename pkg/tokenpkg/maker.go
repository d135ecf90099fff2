// Package tokenpkg issues and verifies access and refresh tokens.
package tokenpkg

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Maker is an interface for managing tokens.
type Maker interface {
	// CreateToken creates a new token for a specific user and duration.
	CreateToken(userID uuid.UUID, duration time.Duration) (string, *Payload, error)

	// VerifyToken checks if the token is valid or not.
	VerifyToken(token string) (*Payload, error)
}

// NewMaker returns the maker for tokenType, "paseto" or "jwt". An empty type selects paseto.
func NewMaker(tokenType, key string) (Maker, error) {
	switch tokenType {
	case "", "paseto":
		return NewPasetoMaker(key)
	case "jwt":
		return NewJWTMaker(key)
	}

	return nil, fmt.Errorf("unsupported token type %q", tokenType)
}
