// Package investmentdelivery manages delivery layer of investments.
package investmentdelivery

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-petr/pet-invest/internal/domain"
	"github.com/go-petr/pet-invest/internal/middleware"
	"github.com/go-petr/pet-invest/pkg/errorspkg"
	"github.com/go-petr/pet-invest/pkg/web"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -source http.go -destination http_mock.go -package investmentdelivery

// Service provides service layer interface needed by investment delivery layer.
type Service interface {
	Create(ctx context.Context, id domain.Identity, productID uuid.UUID, amount decimal.Decimal) (domain.LedgerResult, error)
	Get(ctx context.Context, id domain.Identity, investmentID uuid.UUID) (domain.Investment, error)
	Cancel(ctx context.Context, id domain.Identity, investmentID uuid.UUID) (domain.LedgerResult, error)
	List(ctx context.Context, id domain.Identity, status domain.InvestmentStatus, limit, offset int32) ([]domain.Investment, error)
	Notifications(ctx context.Context, id domain.Identity) ([]domain.Investment, error)
	MarkRead(ctx context.Context, id domain.Identity, investmentID uuid.UUID) (domain.Investment, error)
}

// Handler facilitates investment delivery layer logic.
type Handler struct {
	service Service
}

// NewHandler returns investment handler.
func NewHandler(s Service) *Handler {
	return &Handler{
		service: s,
	}
}

// StatusCode maps ledger errors to http status codes.
func StatusCode(err error) int {
	switch {
	case errors.Is(err, domain.ErrInvalidAmount),
		errors.Is(err, domain.ErrBelowMinimum),
		errors.Is(err, domain.ErrAboveMaximum),
		errors.Is(err, domain.ErrInsufficientBalance),
		errors.Is(err, domain.ErrUnknownStatus):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrProductNotFound),
		errors.Is(err, domain.ErrInvestmentNotFound),
		errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrAccessDenied):
		return http.StatusForbidden
	case errors.Is(err, domain.ErrInvalidState):
		return http.StatusConflict
	case errors.Is(err, domain.ErrTransactionFailed):
		return http.StatusServiceUnavailable
	}

	return http.StatusInternalServerError
}

func respondError(gctx *gin.Context, err error) {
	zerolog.Ctx(gctx.Request.Context()).Info().Err(err).Send()

	code := StatusCode(err)
	if code == http.StatusInternalServerError {
		err = errorspkg.ErrInternal
	}

	gctx.JSON(code, web.Error(err))
}

type createRequest struct {
	ProductID string `json:"product_id" binding:"required,uuid"`
	Amount    string `json:"amount" binding:"required"`
}

// Create handles http request to invest into a product.
func (h *Handler) Create(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var req createRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.BindError(err))

		return
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Error(domain.ErrInvalidAmount))

		return
	}

	result, err := h.service.Create(ctx, middleware.GetIdentity(gctx), uuid.MustParse(req.ProductID), amount)
	if err != nil {
		respondError(gctx, err)
		return
	}

	gctx.JSON(http.StatusCreated, web.Response{Data: result})
}

type uriRequest struct {
	ID string `uri:"id" binding:"required,uuid"`
}

func bindID(gctx *gin.Context) (uuid.UUID, bool) {
	var req uriRequest
	if err := gctx.ShouldBindUri(&req); err != nil {
		zerolog.Ctx(gctx.Request.Context()).Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.BindError(err))

		return uuid.Nil, false
	}

	return uuid.MustParse(req.ID), true
}

// Get handles http request to get an investment.
func (h *Handler) Get(gctx *gin.Context) {
	id, ok := bindID(gctx)
	if !ok {
		return
	}

	inv, err := h.service.Get(gctx.Request.Context(), middleware.GetIdentity(gctx), id)
	if err != nil {
		respondError(gctx, err)
		return
	}

	gctx.JSON(http.StatusOK, web.Response{Data: inv})
}

// Cancel handles http request to cancel an active investment.
func (h *Handler) Cancel(gctx *gin.Context) {
	id, ok := bindID(gctx)
	if !ok {
		return
	}

	result, err := h.service.Cancel(gctx.Request.Context(), middleware.GetIdentity(gctx), id)
	if err != nil {
		respondError(gctx, err)
		return
	}

	gctx.JSON(http.StatusOK, web.Response{Data: result})
}

type listRequest struct {
	Status string `form:"status" binding:"omitempty,oneof=active matured cancelled"`
	Limit  int32  `form:"limit" binding:"omitempty,min=1,max=100"`
	Offset int32  `form:"offset" binding:"omitempty,min=0"`
}

// List handles http request to list the caller's investments.
func (h *Handler) List(gctx *gin.Context) {
	ctx := gctx.Request.Context()

	var req listRequest
	if err := gctx.ShouldBindQuery(&req); err != nil {
		zerolog.Ctx(ctx).Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.BindError(err))

		return
	}

	items, err := h.service.List(ctx, middleware.GetIdentity(gctx), domain.InvestmentStatus(req.Status), req.Limit, req.Offset)
	if err != nil {
		respondError(gctx, err)
		return
	}

	gctx.JSON(http.StatusOK, web.Response{Data: items})
}

// Notifications handles http request to list matured investments not yet acknowledged.
func (h *Handler) Notifications(gctx *gin.Context) {
	items, err := h.service.Notifications(gctx.Request.Context(), middleware.GetIdentity(gctx))
	if err != nil {
		respondError(gctx, err)
		return
	}

	gctx.JSON(http.StatusOK, web.Response{Data: items})
}

// MarkRead handles http request to acknowledge a maturity notification.
func (h *Handler) MarkRead(gctx *gin.Context) {
	id, ok := bindID(gctx)
	if !ok {
		return
	}

	inv, err := h.service.MarkRead(gctx.Request.Context(), middleware.GetIdentity(gctx), id)
	if err != nil {
		respondError(gctx, err)
		return
	}

	gctx.JSON(http.StatusOK, web.Response{Data: inv})
}
