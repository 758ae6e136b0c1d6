package handler

import (
	"creator-settlement/internal/adapter/http/middleware"
	redisStore "creator-settlement/internal/adapter/storage/redis"
	"creator-settlement/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	DepositSvc     ports.DepositAddressService
	WithdrawalSvc  ports.WithdrawalService
	ReconcilerSvc  ports.ReconcilerService
	TokenSvc       ports.TokenService
	RateLimitStore *redisStore.RateLimitStore // nil = rate limiting disabled
	HealthCheckers []ports.HealthChecker
	Logger         zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize(1 << 20)) // 1 MB request body limit

	// Health check (deep — verifies PostgreSQL + Redis)
	r.GET("/health", HealthCheck(deps.HealthCheckers...))

	// Rate limit rules
	rules := middleware.DefaultRateLimitRules()

	// Helper: return rate limiter middleware if store is available, else noop.
	rl := func(group string) gin.HandlerFunc {
		if deps.RateLimitStore == nil {
			return func(c *gin.Context) { c.Next() }
		}
		rule, ok := rules[group]
		if !ok {
			return func(c *gin.Context) { c.Next() }
		}
		return middleware.RateLimiter(deps.RateLimitStore, group, rule, deps.Logger)
	}

	// API v1 routes (all JWT-authenticated)
	jwtAuth := middleware.JWTAuth(deps.TokenSvc, deps.Logger)
	v1 := r.Group("/api/v1", jwtAuth)

	depositHandler := NewDepositHandler(deps.DepositSvc)
	deposits := v1.Group("/deposit-addresses")
	{
		deposits.POST("", rl("deposit_addresses"), depositHandler.CreateDepositAddress)
	}

	withdrawalHandler := NewWithdrawalHandler(deps.WithdrawalSvc)
	withdrawals := v1.Group("/withdrawals")
	{
		withdrawals.POST("", rl("withdrawals"), withdrawalHandler.RequestWithdrawal)
		withdrawals.GET("", rl("wallet"), withdrawalHandler.ListWithdrawals)
	}

	wallet := v1.Group("/wallet")
	{
		wallet.GET("", rl("wallet"), withdrawalHandler.GetWallet)
	}

	earningsHandler := NewEarningsHandler(deps.ReconcilerSvc)
	earnings := v1.Group("/earnings")
	{
		earnings.GET("", rl("wallet"), earningsHandler.ListEarnings)
	}

	// --- Operator routes (admin role required) ---
	adminHandler := NewAdminHandler(deps.ReconcilerSvc)
	admin := v1.Group("/admin", middleware.RequireRole("admin"))
	{
		admin.POST("/reconcile", rl("reconcile"), adminHandler.Reconcile)
	}

	return r
}
