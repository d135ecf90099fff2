// Package alertdelivery manages delivery layer of user alerts.
package alertdelivery

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-petr/pet-invest/internal/domain"
	"github.com/go-petr/pet-invest/internal/middleware"
	"github.com/go-petr/pet-invest/pkg/errorspkg"
	"github.com/go-petr/pet-invest/pkg/web"
	"github.com/rs/zerolog"
)

//go:generate mockgen -source http.go -destination http_mock.go -package alertdelivery

// Service provides service layer interface needed by alert delivery layer.
type Service interface {
	Alerts(ctx context.Context, id domain.Identity) ([]domain.Alert, error)
	Count(ctx context.Context, id domain.Identity) (int64, error)
}

// Handler facilitates alert delivery layer logic.
type Handler struct {
	service Service
}

// NewHandler returns alert handler.
func NewHandler(s Service) *Handler {
	return &Handler{service: s}
}

type countResponse struct {
	Count int64 `json:"count"`
}

// List handles http request to get the alerts of the caller.
func (h *Handler) List(gctx *gin.Context) {
	ctx := gctx.Request.Context()

	alerts, err := h.service.Alerts(ctx, middleware.GetIdentity(gctx))
	if err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Send()
		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	gctx.JSON(http.StatusOK, web.Response{Data: alerts})
}

// Count handles http request to get the number of alerts of the caller.
func (h *Handler) Count(gctx *gin.Context) {
	ctx := gctx.Request.Context()

	n, err := h.service.Count(ctx, middleware.GetIdentity(gctx))
	if err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Send()
		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	gctx.JSON(http.StatusOK, web.Response{Data: countResponse{Count: n}})
}
