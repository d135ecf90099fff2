// Package userdelivery manages delivery layer of users.
package userdelivery

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-petr/pet-invest/internal/domain"
	"github.com/go-petr/pet-invest/internal/middleware"
	"github.com/go-petr/pet-invest/pkg/errorspkg"
	"github.com/go-petr/pet-invest/pkg/web"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Service provides service layer interface needed by user delivery layer.
//
//go:generate mockgen -source http.go -destination http_mock.go -package userdelivery
type Service interface {
	Create(ctx context.Context, username, password, fullname, email string, riskAppetite *domain.RiskLevel) (domain.User, error)
	CheckPassword(ctx context.Context, username, password string) (domain.User, error)
	Get(ctx context.Context, id uuid.UUID) (domain.User, error)
	UpdateRiskAppetite(ctx context.Context, id uuid.UUID, level *domain.RiskLevel) (domain.User, error)
	Wallet(ctx context.Context, id uuid.UUID) (domain.Wallet, error)
}

// SessionMaker facilitates session creation.
type SessionMaker interface {
	Create(ctx context.Context, arg domain.CreateSessionParams) (string, time.Time, domain.Session, error)
}

// Handler facilitates user delivery layer logic.
type Handler struct {
	service      Service
	sessionMaker SessionMaker
}

// NewHandler returns user handler.
func NewHandler(us Service, sm SessionMaker) *Handler {
	return &Handler{
		service:      us,
		sessionMaker: sm,
	}
}

type userResponse struct {
	User domain.User `json:"user"`
}

func riskLevel(s *string) *domain.RiskLevel {
	if s == nil {
		return nil
	}

	level := domain.RiskLevel(*s)

	return &level
}

type createRequest struct {
	Username     string  `json:"username" binding:"required,alphanum"`
	Password     string  `json:"password" binding:"required,min=6"`
	FullName     string  `json:"fullname" binding:"required"`
	Email        string  `json:"email" binding:"required,email"`
	RiskAppetite *string `json:"risk_appetite" binding:"omitempty,risklevel"`
}

// Create handles http request to create user.
func (h *Handler) Create(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var req createRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.BindError(err))

		return
	}

	createdUser, err := h.service.Create(ctx, req.Username, req.Password, req.FullName, req.Email, riskLevel(req.RiskAppetite))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUsernameAlreadyExists),
			errors.Is(err, domain.ErrEmailALreadyExists):
			gctx.JSON(http.StatusConflict, web.Error(err))
		default:
			gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))
		}

		return
	}

	h.startSession(gctx, createdUser, http.StatusCreated)
}

type loginRequest struct {
	Username string `json:"username" binding:"required,alphanum"`
	Password string `json:"password" binding:"required,min=6"`
}

// Login handles http login request and returns user and session data.
func (h *Handler) Login(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var req loginRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.BindError(err))

		return
	}

	user, err := h.service.CheckPassword(ctx, req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUserNotFound):
			gctx.JSON(http.StatusNotFound, web.Error(err))
		case errors.Is(err, domain.ErrWrongPassword):
			gctx.JSON(http.StatusUnauthorized, web.Error(err))
		default:
			gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))
		}

		return
	}

	h.startSession(gctx, user, http.StatusOK)
}

func (h *Handler) startSession(gctx *gin.Context, user domain.User, status int) {
	ctx := gctx.Request.Context()

	arg := domain.CreateSessionParams{
		UserID:    user.ID,
		UserAgent: gctx.Request.UserAgent(),
		ClientIP:  gctx.ClientIP(),
	}

	accessToken, accessTokenExpiresAt, session, err := h.sessionMaker.Create(ctx, arg)
	if err != nil {
		zerolog.Ctx(ctx).Warn().Err(err).Send()
		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	gctx.JSON(status, web.Response{
		AccessToken:           accessToken,
		AccessTokenExpiresAt:  accessTokenExpiresAt,
		RefreshToken:          session.RefreshToken,
		RefreshTokenExpiresAt: session.ExpiresAt,
		Data:                  userResponse{User: user},
	})
}

// Me handles http request to get the caller's profile.
func (h *Handler) Me(gctx *gin.Context) {
	ctx := gctx.Request.Context()

	user, err := h.service.Get(ctx, middleware.GetIdentity(gctx).UserID)
	if err != nil {
		respondError(gctx, err)
		return
	}

	gctx.JSON(http.StatusOK, web.Response{Data: userResponse{User: user}})
}

type riskAppetiteRequest struct {
	RiskAppetite *string `json:"risk_appetite" binding:"omitempty,risklevel"`
}

// UpdateRiskAppetite handles http request to set or clear the caller's risk appetite.
func (h *Handler) UpdateRiskAppetite(gctx *gin.Context) {
	ctx := gctx.Request.Context()

	var req riskAppetiteRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		zerolog.Ctx(ctx).Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.BindError(err))

		return
	}

	user, err := h.service.UpdateRiskAppetite(ctx, middleware.GetIdentity(gctx).UserID, riskLevel(req.RiskAppetite))
	if err != nil {
		respondError(gctx, err)
		return
	}

	gctx.JSON(http.StatusOK, web.Response{Data: userResponse{User: user}})
}

// Wallet handles http request to get the caller's wallet balance.
func (h *Handler) Wallet(gctx *gin.Context) {
	ctx := gctx.Request.Context()

	wallet, err := h.service.Wallet(ctx, middleware.GetIdentity(gctx).UserID)
	if err != nil {
		respondError(gctx, err)
		return
	}

	gctx.JSON(http.StatusOK, web.Response{Data: wallet})
}

func respondError(gctx *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrUserNotFound):
		gctx.JSON(http.StatusNotFound, web.Error(err))
	case errors.Is(err, domain.ErrInvalidRiskLevel):
		gctx.JSON(http.StatusBadRequest, web.Error(err))
	default:
		zerolog.Ctx(gctx.Request.Context()).Error().Err(err).Send()
		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))
	}
}
