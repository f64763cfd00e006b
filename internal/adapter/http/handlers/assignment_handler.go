package handlers

import (
	"context"
	"errors"
	"net/http"

	request "printshop_billing/internal/adapter/http/dto/request"
	response "printshop_billing/internal/adapter/http/dto/response"
	"printshop_billing/internal/domain/entities"
	"printshop_billing/internal/usecase"
	"printshop_billing/pkg"

	"github.com/gin-gonic/gin"
)

// AssignmentHandler handles HTTP requests for maker assignments and the
// model-file download gate.

type AssignmentHandler struct {
	usecase usecase.IAssignmentUseCase
}

func NewAssignmentHandler(uc usecase.IAssignmentUseCase) *AssignmentHandler {
	return &AssignmentHandler{usecase: uc}
}

// AssignMaker assigns (or reassigns) a paid order to a maker. The previous
// active assignment, if any, is superseded and kept as history.
func (h *AssignmentHandler) AssignMaker(c *gin.Context) {
	var payload request.AssignMakerRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest).ToHTTPError())
		return
	}

	assignment, err := h.usecase.AssignMaker(
		c.Request.Context(),
		c.Param("order_id"),
		payload.ResolveMakerID(),
		payload.Reason,
		payload.ActorID,
	)
	if err != nil {
		appErr := mapAssignmentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromAssignment(assignment))
}

func (h *AssignmentHandler) AcceptAssignment(c *gin.Context) {
	h.respond(c, h.usecase.AcceptAssignment)
}

func (h *AssignmentHandler) DeclineAssignment(c *gin.Context) {
	h.respond(c, h.usecase.DeclineAssignment)
}

// DownloadAccess reports whether the requesting maker may download the
// order's model files. Access opens only after an explicit accept.
func (h *AssignmentHandler) DownloadAccess(c *gin.Context) {
	assignment, err := h.usecase.GetAssignment(c.Request.Context(), c.Param("assignment_id"))
	if err != nil {
		appErr := mapAssignmentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromDownloadAccess(assignment))
}

func (h *AssignmentHandler) respond(
	c *gin.Context,
	action func(ctx context.Context, assignmentID, makerID string) (entities.MakerAssignment, error),
) {
	var payload request.AssignmentResponseRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest).ToHTTPError())
		return
	}

	assignment, err := action(c.Request.Context(), c.Param("assignment_id"), payload.ResolveMakerID())
	if err != nil {
		appErr := mapAssignmentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromAssignment(assignment))
}

func mapAssignmentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidAssignmentID),
		errors.Is(err, usecase.ErrInvalidMakerID),
		errors.Is(err, usecase.ErrInvalidOrderID),
		errors.Is(err, usecase.ErrInvalidActorID),
		errors.Is(err, usecase.ErrMissingReason):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrAssignmentNotFound):
		return pkg.NewDomainErrorSimple("ASSIGNMENT_NOT_FOUND", "Assignment not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Order not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrOrderNotPaid):
		return pkg.NewDomainErrorSimple("ORDER_NOT_PAID", "Order is not paid yet", http.StatusConflict)
	case errors.Is(err, usecase.ErrAssignmentNotPending):
		return pkg.NewDomainErrorSimple("ASSIGNMENT_NOT_PENDING", "Assignment is no longer pending", http.StatusConflict)
	case errors.Is(err, usecase.ErrMakerMismatch):
		return pkg.NewDomainErrorSimple("MAKER_MISMATCH", "Assignment belongs to another maker", http.StatusForbidden)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
