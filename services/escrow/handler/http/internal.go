package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/piresc/escrow/internal/pkg/logger"
	"github.com/piresc/escrow/internal/pkg/models"
	"github.com/piresc/escrow/internal/utils"
)

// PaymentWebhook receives capture notifications from the payment gateway.
// Replays of an applied capture answer 200 so the gateway stops retrying.
func (h *EscrowHandler) PaymentWebhook(c echo.Context) error {
	var n models.PaymentNotification
	if err := utils.BindAndValidate(c, &n); err != nil {
		return utils.AppErrorResponse(c, err)
	}

	tx, err := h.escrowUC.HandlePaymentNotification(c.Request().Context(), n)
	if err != nil {
		logger.WarnCtx(c.Request().Context(), "Payment notification rejected",
			logger.String("order_reference", n.OrderReference),
			logger.String("reference_id", n.ReferenceID),
			logger.String("payment_status", n.Status),
			logger.Err(err))
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Notification processed", tx)
}

// RunReconciliationSweep triggers one sweep on demand
func (h *EscrowHandler) RunReconciliationSweep(c echo.Context) error {
	result, err := h.escrowUC.RunReconciliationSweep(c.Request().Context())
	if err != nil {
		return utils.InternalServerErrorResponse(c, "reconciliation sweep failed")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Sweep finished", result)
}
