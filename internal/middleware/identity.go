package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-petr/pet-invest/internal/domain"
	"github.com/go-petr/pet-invest/pkg/errorspkg"
	"github.com/go-petr/pet-invest/pkg/tokenpkg"
	"github.com/go-petr/pet-invest/pkg/web"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// IdentityKey is the gin context key of the resolved domain.Identity.
const IdentityKey = "identity"

// UserGetter loads the authenticated user.
//
//go:generate mockgen -source identity.go -destination identity_mock.go -package middleware
type UserGetter interface {
	GetByID(ctx context.Context, id uuid.UUID) (domain.User, error)
}

// Identity resolves the token payload set by AuthMiddleware into a domain.Identity
// carrying the user's current balance and risk appetite.
func Identity(users UserGetter) gin.HandlerFunc {
	return func(gctx *gin.Context) {
		ctx := gctx.Request.Context()
		l := zerolog.Ctx(ctx)

		payload, ok := gctx.MustGet(AuthPayloadKey).(*tokenpkg.Payload)
		if !ok {
			gctx.AbortWithStatusJSON(http.StatusUnauthorized, web.Error(tokenpkg.ErrInvalidToken))
			return
		}

		user, err := users.GetByID(ctx, payload.UserID)
		if err != nil {
			if errors.Is(err, domain.ErrUserNotFound) {
				l.Info().Err(err).Str("user_id", payload.UserID.String()).Send()
				gctx.AbortWithStatusJSON(http.StatusUnauthorized, web.Error(err))

				return
			}

			gctx.AbortWithStatusJSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

			return
		}

		gctx.Set(IdentityKey, domain.NewIdentity(user))
		gctx.Next()
	}
}

// GetIdentity returns the identity stored by the Identity middleware.
func GetIdentity(gctx *gin.Context) domain.Identity {
	return gctx.MustGet(IdentityKey).(domain.Identity)
}
