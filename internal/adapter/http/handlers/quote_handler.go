package handlers

import (
	"errors"
	"net/http"

	request "printshop_billing/internal/adapter/http/dto/request"
	response "printshop_billing/internal/adapter/http/dto/response"
	"printshop_billing/internal/domain/pricing"
	"printshop_billing/internal/usecase"
	"printshop_billing/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidQuotePayload = pkg.NewDomainErrorSimple("INVALID_QUOTE_INPUT", "Invalid quote payload", http.StatusBadRequest)
)

// QuoteHandler handles HTTP requests for quote pricing and lifecycle.

type QuoteHandler struct {
	usecase usecase.IQuoteUseCase
}

func NewQuoteHandler(uc usecase.IQuoteUseCase) *QuoteHandler {
	return &QuoteHandler{usecase: uc}
}

// PreviewQuote prices a print job without persisting anything. Preview and
// save share the same calculator, so a previewed price never drifts from the
// price a saved quote freezes.
func (h *QuoteHandler) PreviewQuote(c *gin.Context) {
	var payload request.QuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	breakdown, err := h.usecase.ComputeQuote(c.Request.Context(), payload.ToEntity())
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromBreakdown(breakdown))
}

// CreateQuote prices and saves a quote with a validity window.
func (h *QuoteHandler) CreateQuote(c *gin.Context) {
	var payload request.QuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	quote, err := h.usecase.SaveQuote(c.Request.Context(), payload.ToEntity(), payload.ResolveTTL())
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromQuote(quote))
}

func (h *QuoteHandler) GetQuote(c *gin.Context) {
	quote, err := h.usecase.GetQuote(c.Request.Context(), c.Param("quote_id"))
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuote(quote))
}

// CheckoutQuote converts a saved quote into an order at its frozen price.
func (h *QuoteHandler) CheckoutQuote(c *gin.Context) {
	var payload request.CheckoutRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest).ToHTTPError())
		return
	}

	order, err := h.usecase.ConvertQuoteToOrder(c.Request.Context(), c.Param("quote_id"), payload.ResolveActorID())
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromOrder(order))
}

func mapQuoteError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, pricing.ErrInvalidQuantity), errors.Is(err, pricing.ErrInvalidConfiguration):
		return pkg.NewDomainErrorSimple("INVALID_QUOTE_INPUT", err.Error(), http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidQuoteID), errors.Is(err, usecase.ErrInvalidActorID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrQuoteNotFound):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_FOUND", "Quote not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrQuoteExpired):
		return pkg.NewDomainErrorSimple("QUOTE_EXPIRED", "Quote expired", http.StatusGone)
	case errors.Is(err, usecase.ErrQuoteAlreadyConverted):
		return pkg.NewDomainErrorSimple("QUOTE_ALREADY_CONVERTED", "Quote already converted to an order", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
