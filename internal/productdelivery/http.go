// Package productdelivery manages delivery layer of the product catalog.
package productdelivery

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

//go:generate mockgen -source http.go -destination http_mock.go -package productdelivery

// Service provides service layer interface needed by product delivery layer.
type Service interface {
	Create(ctx context.Context, id domain.Identity, arg domain.CreateProductParams) (domain.Product, error)
	Get(ctx context.Context, productID uuid.UUID) (domain.Product, error)
	List(ctx context.Context, arg domain.ListProductsParams) ([]domain.Product, error)
	Recommend(ctx context.Context, id domain.Identity, limit int32) ([]domain.Product, error)
}

// Handler facilitates product delivery layer logic.
type Handler struct {
	service Service
}

// NewHandler returns product handler.
func NewHandler(s Service) *Handler {
	return &Handler{service: s}
}

func respondError(gctx *gin.Context, err error) {
	ctx := gctx.Request.Context()

	switch {
	case errors.Is(err, domain.ErrProductNotFound):
		gctx.JSON(http.StatusNotFound, web.Error(err))
	case errors.Is(err, domain.ErrInvalidProduct):
		gctx.JSON(http.StatusBadRequest, web.Error(err))
	case errors.Is(err, domain.ErrAccessDenied):
		gctx.JSON(http.StatusForbidden, web.Error(err))
	default:
		zerolog.Ctx(ctx).Error().Err(err).Send()
		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))
	}
}

type createRequest struct {
	Name           string  `json:"name" binding:"required"`
	InvestmentType string  `json:"investment_type" binding:"required,oneof=bond fd mf etf other"`
	TenureMonths   int32   `json:"tenure_months" binding:"required,min=1"`
	AnnualYield    string  `json:"annual_yield" binding:"required"`
	RiskLevel      string  `json:"risk_level" binding:"required,risklevel"`
	MinInvestment  string  `json:"min_investment" binding:"required"`
	MaxInvestment  *string `json:"max_investment"`
	Description    string  `json:"description"`
}

func (r createRequest) params() (domain.CreateProductParams, error) {
	arg := domain.CreateProductParams{
		Name:           r.Name,
		InvestmentType: domain.InvestmentType(r.InvestmentType),
		TenureMonths:   r.TenureMonths,
		RiskLevel:      domain.RiskLevel(r.RiskLevel),
		IsActive:       true,
		Description:    r.Description,
	}

	var err error

	if arg.AnnualYield, err = decimal.NewFromString(r.AnnualYield); err != nil {
		return arg, errors.New("annual_yield must be a decimal number")
	}

	if arg.MinInvestment, err = decimal.NewFromString(r.MinInvestment); err != nil {
		return arg, errors.New("min_investment must be a decimal number")
	}

	if r.MaxInvestment != nil {
		maxAmount, err := decimal.NewFromString(*r.MaxInvestment)
		if err != nil {
			return arg, errors.New("max_investment must be a decimal number")
		}

		arg.MaxInvestment = decimal.NewNullDecimal(maxAmount)
	}

	return arg, nil
}

// Create handles http request to list a new product.
func (h *Handler) Create(gctx *gin.Context) {
	ctx := gctx.Request.Context()

	var req createRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		zerolog.Ctx(ctx).Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.BindError(err))

		return
	}

	arg, err := req.params()
	if err != nil {
		zerolog.Ctx(ctx).Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Error(err))

		return
	}

	p, err := h.service.Create(ctx, middleware.GetIdentity(gctx), arg)
	if err != nil {
		respondError(gctx, err)
		return
	}

	gctx.JSON(http.StatusCreated, web.Response{Data: p})
}

type getRequest struct {
	ID string `uri:"id" binding:"required,uuid"`
}

// Get handles http request to get an active product.
func (h *Handler) Get(gctx *gin.Context) {
	ctx := gctx.Request.Context()

	var req getRequest
	if err := gctx.ShouldBindUri(&req); err != nil {
		zerolog.Ctx(ctx).Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.BindError(err))

		return
	}

	p, err := h.service.Get(ctx, uuid.MustParse(req.ID))
	if err != nil {
		respondError(gctx, err)
		return
	}

	gctx.JSON(http.StatusOK, web.Response{Data: p})
}

type listRequest struct {
	RiskLevel      string `form:"risk_level" binding:"omitempty,risklevel"`
	InvestmentType string `form:"investment_type" binding:"omitempty,oneof=bond fd mf etf other"`
	MinYield       string `form:"min_yield"`
	MaxTenure      int32  `form:"max_tenure" binding:"omitempty,min=1"`
	SortBy         string `form:"sort_by" binding:"omitempty,oneof=annual_yield tenure_months min_investment created_at"`
	Order          string `form:"order" binding:"omitempty,oneof=asc desc"`
	Limit          int32  `form:"limit" binding:"omitempty,min=1,max=100"`
	Offset         int32  `form:"offset" binding:"omitempty,min=0"`
}

// List handles http request to browse active products.
func (h *Handler) List(gctx *gin.Context) {
	ctx := gctx.Request.Context()

	var req listRequest
	if err := gctx.ShouldBindQuery(&req); err != nil {
		zerolog.Ctx(ctx).Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.BindError(err))

		return
	}

	arg := domain.ListProductsParams{
		RiskLevel:       domain.RiskLevel(req.RiskLevel),
		InvestmentType:  domain.InvestmentType(req.InvestmentType),
		MaxTenureMonths: req.MaxTenure,
		SortBy:          req.SortBy,
		Desc:            req.Order == "desc",
		Limit:           req.Limit,
		Offset:          req.Offset,
	}

	if req.MinYield != "" {
		y, err := decimal.NewFromString(req.MinYield)
		if err != nil {
			gctx.JSON(http.StatusBadRequest, web.Error(errors.New("min_yield must be a decimal number")))
			return
		}

		arg.MinYield = decimal.NewNullDecimal(y)
	}

	items, err := h.service.List(ctx, arg)
	if err != nil {
		respondError(gctx, err)
		return
	}

	gctx.JSON(http.StatusOK, web.Response{Data: items})
}

type recommendRequest struct {
	Limit int32 `form:"limit" binding:"omitempty,min=1,max=100"`
}

// Recommend handles http request to get products suited to the caller's risk appetite.
func (h *Handler) Recommend(gctx *gin.Context) {
	ctx := gctx.Request.Context()

	var req recommendRequest
	if err := gctx.ShouldBindQuery(&req); err != nil {
		zerolog.Ctx(ctx).Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.BindError(err))

		return
	}

	items, err := h.service.Recommend(ctx, middleware.GetIdentity(gctx), req.Limit)
	if err != nil {
		respondError(gctx, err)
		return
	}

	gctx.JSON(http.StatusOK, web.Response{Data: items})
}
