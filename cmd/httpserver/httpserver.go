// Package httpserver manages server creation and api routing.
package httpserver

import (
	"database/sql"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/go-petr/pet-invest/internal/alertdelivery"
	"github.com/go-petr/pet-invest/internal/alertservice"
	"github.com/go-petr/pet-invest/internal/investmentdelivery"
	"github.com/go-petr/pet-invest/internal/investmentrepo"
	"github.com/go-petr/pet-invest/internal/investmentservice"
	"github.com/go-petr/pet-invest/internal/maturityjob"
	"github.com/go-petr/pet-invest/internal/metrics"
	"github.com/go-petr/pet-invest/internal/middleware"
	"github.com/go-petr/pet-invest/internal/portfoliodelivery"
	"github.com/go-petr/pet-invest/internal/portfolioservice"
	"github.com/go-petr/pet-invest/internal/productcache"
	"github.com/go-petr/pet-invest/internal/productdelivery"
	"github.com/go-petr/pet-invest/internal/productrepo"
	"github.com/go-petr/pet-invest/internal/productservice"
	"github.com/go-petr/pet-invest/internal/sessiondelivery"
	"github.com/go-petr/pet-invest/internal/sessionrepo"
	"github.com/go-petr/pet-invest/internal/sessionservice"
	"github.com/go-petr/pet-invest/internal/userdelivery"
	"github.com/go-petr/pet-invest/internal/userrepo"
	"github.com/go-petr/pet-invest/internal/userservice"
	"github.com/go-petr/pet-invest/internal/walletrepo"
	"github.com/go-petr/pet-invest/pkg/configpkg"
	"github.com/go-petr/pet-invest/pkg/currencypkg"
	"github.com/go-petr/pet-invest/pkg/tokenpkg"
	"github.com/go-petr/pet-invest/pkg/web"
)

// Server holds db connection, handlers router and configuration.
type Server struct {
	DB         *sql.DB
	Engine     *gin.Engine
	Config     configpkg.Config
	TokenMaker tokenpkg.Maker
	Metrics    *metrics.Metrics
	Sweeper    *maturityjob.Sweeper
}

// ServeHTTP implements the http.Handler interface for the Server type.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Engine.ServeHTTP(w, r)
}

// New creates Server type with instantiated domains and routes.
//
// rdb is optional. When set, product lookups for discovery and alerts are
// cached in redis.
func New(conn *sql.DB, rdb *redis.Client, logger zerolog.Logger, config configpkg.Config) (*Server, error) {
	signupBalance, err := decimal.NewFromString(config.SignupBalance)
	if err != nil {
		return nil, fmt.Errorf("invalid SIGNUP_BALANCE %q: %w", config.SignupBalance, err)
	}

	tokenMaker, err := tokenpkg.NewMaker(config.TokenType, config.TokenSymmetricKey)
	if err != nil {
		return nil, fmt.Errorf("cannot create token maker: %w", err)
	}

	if err := web.RegisterValidators(); err != nil {
		return nil, fmt.Errorf("cannot register validators: %w", err)
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(reg)

	formatter := currencypkg.NewFormatter(config.WalletCurrency)

	userRepo := userrepo.NewRepoPGS(conn)
	sessionRepo := sessionrepo.NewRepoPGS(conn)
	walletRepo := walletrepo.NewRepoPGS(conn)
	productRepo := productrepo.NewRepoPGS(conn)
	investmentRepo := investmentrepo.NewRepoPGS(conn)

	var catalog productcache.Catalog = productRepo
	if rdb != nil {
		catalog = productcache.New(productRepo, rdb, config.ProductCacheTTL)
	}

	userService := userservice.New(userRepo, walletRepo, formatter, signupBalance)
	sessionService, err := sessionservice.New(sessionRepo, config, tokenMaker)
	if err != nil {
		return nil, fmt.Errorf("cannot initialize session service: %w", err)
	}

	productService := productservice.New(catalog)
	// The ledger reads products uncached so deactivation takes effect immediately.
	investmentService := investmentservice.New(investmentRepo, productRepo, walletRepo, m)
	portfolioService := portfolioservice.New(investmentRepo)
	alertService := alertservice.New(investmentRepo, catalog, formatter)

	userHandler := userdelivery.NewHandler(userService, sessionService)
	sessionHandler := sessiondelivery.NewHandler(sessionService)
	productHandler := productdelivery.NewHandler(productService)
	investmentHandler := investmentdelivery.NewHandler(investmentService)
	portfolioHandler := portfoliodelivery.NewHandler(portfolioService)
	alertHandler := alertdelivery.NewHandler(alertService)

	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.Metrics(m))
	engine.Use(gin.Recovery())

	engine.GET("/metrics", gin.WrapH(m.Handler()))

	engine.POST("/users", userHandler.Create)
	engine.POST("/users/login", userHandler.Login)
	engine.POST("/sessions", sessionHandler.RenewAccessToken)

	authRoutes := engine.Group("/").Use(
		middleware.AuthMiddleware(tokenMaker),
		middleware.Identity(userRepo),
	)

	authRoutes.GET("/users/me", userHandler.Me)
	authRoutes.PUT("/users/me/risk-appetite", userHandler.UpdateRiskAppetite)
	authRoutes.GET("/wallet", userHandler.Wallet)

	authRoutes.POST("/products", productHandler.Create)
	authRoutes.GET("/products", productHandler.List)
	authRoutes.GET("/products/recommendations", productHandler.Recommend)
	authRoutes.GET("/products/:id", productHandler.Get)

	authRoutes.POST("/investments", investmentHandler.Create)
	authRoutes.GET("/investments", investmentHandler.List)
	authRoutes.GET("/investments/notifications", investmentHandler.Notifications)
	authRoutes.GET("/investments/:id", investmentHandler.Get)
	authRoutes.POST("/investments/:id/cancel", investmentHandler.Cancel)
	authRoutes.POST("/investments/:id/read", investmentHandler.MarkRead)

	authRoutes.GET("/portfolio/summary", portfolioHandler.Summary)
	authRoutes.GET("/portfolio/risk-distribution", portfolioHandler.RiskDistribution)

	authRoutes.GET("/alerts", alertHandler.List)
	authRoutes.GET("/alerts/count", alertHandler.Count)

	server := &Server{
		DB:         conn,
		Engine:     engine,
		Config:     config,
		TokenMaker: tokenMaker,
		Metrics:    m,
		Sweeper:    maturityjob.NewSweeper(investmentRepo, m),
	}

	return server, nil
}
