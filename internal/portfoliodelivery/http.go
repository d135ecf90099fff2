// Package portfoliodelivery manages delivery layer of portfolio views.
package portfoliodelivery

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

//go:generate mockgen -source http.go -destination http_mock.go -package portfoliodelivery

// Service provides service layer interface needed by portfolio delivery layer.
type Service interface {
	Overview(ctx context.Context, id domain.Identity) (domain.PortfolioOverview, error)
	RiskDistribution(ctx context.Context, id domain.Identity) ([]domain.RiskBucket, error)
}

// Handler facilitates portfolio delivery layer logic.
type Handler struct {
	service Service
}

// NewHandler returns portfolio handler.
func NewHandler(s Service) *Handler {
	return &Handler{service: s}
}

// Summary handles http request to get the portfolio summary with its insights.
func (h *Handler) Summary(gctx *gin.Context) {
	ctx := gctx.Request.Context()

	overview, err := h.service.Overview(ctx, middleware.GetIdentity(gctx))
	if err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Send()
		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	gctx.JSON(http.StatusOK, web.Response{Data: overview})
}

// RiskDistribution handles http request to get the risk distribution of active positions.
func (h *Handler) RiskDistribution(gctx *gin.Context) {
	ctx := gctx.Request.Context()

	buckets, err := h.service.RiskDistribution(ctx, middleware.GetIdentity(gctx))
	if err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Send()
		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))

		return
	}

	gctx.JSON(http.StatusOK, web.Response{Data: buckets})
}
