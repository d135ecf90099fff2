// Package web defines common components for a web application.
package web

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
)

// Response holds the common response type for all APIs.
type Response struct {
	AccessToken           string    `json:"access_token,omitempty"`
	AccessTokenExpiresAt  time.Time `json:"access_token_expires_at,omitempty"`
	RefreshToken          string    `json:"refresh_token,omitempty"`
	RefreshTokenExpiresAt time.Time `json:"refresh_token_expires_at,omitempty"`
	Data                  any       `json:"data,omitempty"`
	Error                 string    `json:"error,omitempty"`
}

// Error wraps a given err into json friendly struct.
func Error(err error) Response {
	return Response{Error: err.Error()}
}

// BindError wraps a request binding error, replacing validator errors with a
// human readable message.
func BindError(err error) Response {
	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		return Response{Error: GetErrorMsg(ve)}
	}

	return Error(err)
}

// GetErrorMsg returns a human readable message for the first failed validation.
func GetErrorMsg(ve validator.ValidationErrors) string {
	if len(ve) == 0 {
		return ""
	}

	fe := ve[0]

	switch fe.Tag() {
	case "required":
		return fe.Field() + " field is required"
	case "min":
		return fe.Field() + " must be at least " + fe.Param()
	case "max":
		return fe.Field() + " must be at most " + fe.Param()
	case "oneof":
		return fe.Field() + " must be one of: " + fe.Param()
	case "email":
		return fe.Field() + " must be a valid email"
	case "alphanum":
		return fe.Field() + " must contain only letters and digits"
	case "uuid":
		return fe.Field() + " must be a valid uuid"
	case "risklevel":
		return fe.Field() + " is not a supported risk level"
	}

	return fe.Field() + " is invalid"
}
