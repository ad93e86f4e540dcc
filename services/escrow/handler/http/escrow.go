package http

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/piresc/escrow/internal/pkg/apperror"
	"github.com/piresc/escrow/internal/pkg/middleware"
	"github.com/piresc/escrow/internal/pkg/models"
	"github.com/piresc/escrow/internal/utils"
	"github.com/piresc/escrow/services/escrow"
)

var errUnauthenticated = apperror.New("UNAUTHORIZED", "authentication required", http.StatusUnauthorized, nil)

// EscrowHandler handles HTTP requests for the escrow service
type EscrowHandler struct {
	escrowUC escrow.EscrowUC
}

// NewEscrowHandler creates a new escrow HTTP handler
func NewEscrowHandler(escrowUC escrow.EscrowUC) *EscrowHandler {
	return &EscrowHandler{
		escrowUC: escrowUC,
	}
}

// CreateTransaction opens a transaction for the authenticated buyer
func (h *EscrowHandler) CreateTransaction(c echo.Context) error {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var req models.CreateTransactionRequest
	if err := utils.BindAndValidate(c, &req); err != nil {
		return utils.AppErrorResponse(c, err)
	}

	tx, err := h.escrowUC.CreateTransaction(c.Request().Context(), actor, req)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	middleware.SetTransactionID(c, tx.ID.String())
	return utils.SuccessResponse(c, http.StatusCreated, "Transaction created", tx)
}

// GetTransaction returns a transaction to one of its parties or an admin
func (h *EscrowHandler) GetTransaction(c echo.Context) error {
	actor, id, err := h.actorAndID(c)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	tx, err := h.escrowUC.GetTransaction(c.Request().Context(), id, actor)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "", tx)
}

// ApplyEvent drives the lifecycle with an explicit event name
func (h *EscrowHandler) ApplyEvent(c echo.Context) error {
	actor, id, err := h.actorAndID(c)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	var req models.ApplyEventRequest
	if err := utils.BindAndValidate(c, &req); err != nil {
		return utils.AppErrorResponse(c, err)
	}

	tx, err := h.escrowUC.ApplyEvent(c.Request().Context(), id, req.Event, actor, req.Payload)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Event applied", tx)
}

// InitiatePayment opens a gateway order for the buyer
func (h *EscrowHandler) InitiatePayment(c echo.Context) error {
	actor, id, err := h.actorAndID(c)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	initiation, err := h.escrowUC.InitiatePayment(c.Request().Context(), id, actor)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Payment order created", initiation)
}

// CancelTransaction withdraws an unpaid transaction
func (h *EscrowHandler) CancelTransaction(c echo.Context) error {
	actor, id, err := h.actorAndID(c)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	tx, err := h.escrowUC.CancelTransaction(c.Request().Context(), id, actor)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Transaction cancelled", tx)
}

// GeneratePickupCode issues or returns the buyer's handoff code
func (h *EscrowHandler) GeneratePickupCode(c echo.Context) error {
	actor, id, err := h.actorAndID(c)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	pickup, err := h.escrowUC.GeneratePickupCode(c.Request().Context(), id, actor)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Pickup code ready", pickup)
}

// GetPickup shows the pickup record; the code is only returned to the buyer
func (h *EscrowHandler) GetPickup(c echo.Context) error {
	actor, id, err := h.actorAndID(c)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	pickup, err := h.escrowUC.GetPickup(c.Request().Context(), id, actor)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Pickup retrieved", pickup)
}

// ConfirmPickup completes the handoff with the code shown by the buyer
func (h *EscrowHandler) ConfirmPickup(c echo.Context) error {
	actor, id, err := h.actorAndID(c)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	var req models.ConfirmPickupRequest
	if err := utils.BindAndValidate(c, &req); err != nil {
		return utils.AppErrorResponse(c, err)
	}

	tx, err := h.escrowUC.ConfirmPickup(c.Request().Context(), id, actor, req.Code)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Pickup confirmed", tx)
}

// actorAndID reads the caller and the :id path parameter
func (h *EscrowHandler) actorAndID(c echo.Context) (models.Actor, uuid.UUID, error) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return models.Actor{}, uuid.Nil, errUnauthenticated
	}

	id, err := parseID(c, "id")
	if err != nil {
		return models.Actor{}, uuid.Nil, err
	}
	middleware.SetTransactionID(c, id.String())
	return actor, id, nil
}

func parseID(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, apperror.Validation(name + " must be a valid UUID")
	}
	return id, nil
}
