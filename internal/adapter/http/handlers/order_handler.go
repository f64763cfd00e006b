package handlers

import (
	"errors"
	"net/http"

	request "printshop_billing/internal/adapter/http/dto/request"
	response "printshop_billing/internal/adapter/http/dto/response"
	"printshop_billing/internal/usecase"
	"printshop_billing/pkg"

	"github.com/gin-gonic/gin"
)

// OrderHandler handles HTTP requests for order lookup and guarded status
// transitions.

type OrderHandler struct {
	usecase usecase.IOrderUseCase
}

func NewOrderHandler(uc usecase.IOrderUseCase) *OrderHandler {
	return &OrderHandler{usecase: uc}
}

func (h *OrderHandler) GetOrder(c *gin.Context) {
	order, err := h.usecase.GetOrder(c.Request.Context(), c.Param("order_id"))
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromOrder(order))
}

func (h *OrderHandler) GetAudit(c *gin.Context) {
	orderID := c.Param("order_id")
	records, err := h.usecase.ListAudit(c.Request.Context(), orderID)
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromAuditTrail(orderID, records))
}

// TransitionOrder moves an order along the status machine. Replayed requests
// answer 200 with the unchanged order; conflicting ones answer 409 naming the
// order's actual status.
func (h *OrderHandler) TransitionOrder(c *gin.Context) {
	var payload request.OrderTransitionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest).ToHTTPError())
		return
	}

	order, err := h.usecase.TransitionOrder(
		c.Request.Context(),
		c.Param("order_id"),
		payload.TargetStatus,
		payload.Reason,
		payload.ResolveActorID(),
		payload.PaymentRef,
	)
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromOrder(order))
}

func mapOrderError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidOrderID), errors.Is(err, usecase.ErrInvalidActorID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrMissingReason):
		return pkg.NewDomainErrorSimple("MISSING_REASON", "A reason is required for this transition", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Order not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrIllegalTransition):
		return pkg.NewDomainErrorSimple("ILLEGAL_TRANSITION", err.Error(), http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
