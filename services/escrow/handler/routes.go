package handler

import (
	"github.com/go-redis/redis/v8"
	"github.com/labstack/echo/v4"
	"github.com/piresc/escrow/internal/pkg/middleware"
	"github.com/piresc/escrow/internal/pkg/models"
	"github.com/piresc/escrow/services/escrow"
	httpHandler "github.com/piresc/escrow/services/escrow/handler/http"
)

// Handler wires the escrow HTTP handlers to their routes
type Handler struct {
	escrowHTTP  *httpHandler.EscrowHandler
	cfg         *models.Config
	redisClient *redis.Client
}

// NewHandler creates a new combined handler. redisClient backs the per-user
// limiter on pickup confirmation and may be nil.
func NewHandler(escrowUC escrow.EscrowUC, cfg *models.Config, redisClient *redis.Client) *Handler {
	return &Handler{
		escrowHTTP:  httpHandler.NewEscrowHandler(escrowUC),
		cfg:         cfg,
		redisClient: redisClient,
	}
}

// RegisterRoutes registers all HTTP routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	// Machine callers authenticate with an API key
	e.POST("/webhooks/payment", h.escrowHTTP.PaymentWebhook,
		middleware.ValidateAPIKey(h.cfg.APIKeys.PaymentWebhook))
	e.POST("/internal/reconciliation/sweep", h.escrowHTTP.RunReconciliationSweep,
		middleware.ValidateAPIKey(h.cfg.APIKeys.Reconciler))

	v1 := e.Group("/v1", middleware.JWTAuthMiddleware(h.cfg.JWT))

	tx := v1.Group("/transactions")
	tx.POST("", h.escrowHTTP.CreateTransaction)
	tx.GET("/:id", h.escrowHTTP.GetTransaction)
	tx.POST("/:id/events", h.escrowHTTP.ApplyEvent)
	tx.POST("/:id/payment", h.escrowHTTP.InitiatePayment)
	tx.POST("/:id/cancel", h.escrowHTTP.CancelTransaction)
	tx.POST("/:id/pickup", h.escrowHTTP.GeneratePickupCode)
	tx.GET("/:id/pickup", h.escrowHTTP.GetPickup)
	tx.POST("/:id/disputes", h.escrowHTTP.OpenDispute)

	if h.redisClient != nil {
		tx.POST("/:id/pickup/confirm", h.escrowHTTP.ConfirmPickup,
			middleware.UserRateLimiter(h.cfg.Escrow.ConfirmRateLimit, h.cfg.Escrow.ConfirmRatePeriod, h.redisClient))
	} else {
		tx.POST("/:id/pickup/confirm", h.escrowHTTP.ConfirmPickup)
	}

	v1.GET("/disputes/:id", h.escrowHTTP.GetDispute)

	admin := v1.Group("/admin", middleware.RequireRole(models.RoleAdmin))
	admin.POST("/disputes/:id/resolve", h.escrowHTTP.ResolveDispute)
	admin.GET("/disputes/:id/actions", h.escrowHTTP.ListAdminActions)
}
