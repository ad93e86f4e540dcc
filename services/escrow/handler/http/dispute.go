package http

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/piresc/escrow/internal/pkg/middleware"
	"github.com/piresc/escrow/internal/pkg/models"
	"github.com/piresc/escrow/internal/utils"
)

// OpenDispute escalates a paid or completed transaction
func (h *EscrowHandler) OpenDispute(c echo.Context) error {
	actor, id, err := h.actorAndID(c)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	var req models.OpenDisputeRequest
	if err := utils.BindAndValidate(c, &req); err != nil {
		return utils.AppErrorResponse(c, err)
	}

	dispute, err := h.escrowUC.OpenDispute(c.Request().Context(), id, actor, req.Subject, req.Description)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusCreated, "Dispute opened", dispute)
}

// GetDispute returns a dispute to a party or an admin
func (h *EscrowHandler) GetDispute(c echo.Context) error {
	actor, id, err := h.actorAndDisputeID(c)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	dispute, err := h.escrowUC.GetDispute(c.Request().Context(), id, actor)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "", dispute)
}

// ResolveDispute records an admin decision on an open dispute
func (h *EscrowHandler) ResolveDispute(c echo.Context) error {
	admin, id, err := h.actorAndDisputeID(c)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	var req models.ResolveDisputeRequest
	if err := utils.BindAndValidate(c, &req); err != nil {
		return utils.AppErrorResponse(c, err)
	}

	dispute, err := h.escrowUC.ResolveDispute(c.Request().Context(), id, admin, req.Action, req.Resolution)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Dispute closed", dispute)
}

// ListAdminActions returns the audit trail of a dispute
func (h *EscrowHandler) ListAdminActions(c echo.Context) error {
	admin, id, err := h.actorAndDisputeID(c)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	actions, err := h.escrowUC.ListAdminActions(c.Request().Context(), id, admin)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}
	if actions == nil {
		actions = []*models.AdminAction{}
	}
	return utils.SuccessResponse(c, http.StatusOK, "", actions)
}

func (h *EscrowHandler) actorAndDisputeID(c echo.Context) (models.Actor, uuid.UUID, error) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		return models.Actor{}, uuid.Nil, errUnauthenticated
	}
	id, err := parseID(c, "id")
	if err != nil {
		return models.Actor{}, uuid.Nil, err
	}
	middleware.AddAttribute(c, "dispute_id", id.String())
	return actor, id, nil
}
