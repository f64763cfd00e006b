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

// RateHandler exposes the rate table: the current version for quoting UIs
// and an admin publish route for new versions.

type RateHandler struct {
	usecase usecase.IRateUseCase
}

func NewRateHandler(uc usecase.IRateUseCase) *RateHandler {
	return &RateHandler{usecase: uc}
}

func (h *RateHandler) GetCurrentRates(c *gin.Context) {
	rc, err := h.usecase.GetCurrent(c.Request.Context())
	if err != nil {
		appErr := mapRateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromRateConfig(rc, true))
}

// GetRatesByVersion resolves a specific published version, e.g. the version a
// saved quote was frozen against.
func (h *RateHandler) GetRatesByVersion(c *gin.Context) {
	rc, err := h.usecase.GetByVersion(c.Request.Context(), c.Param("version"))
	if err != nil {
		appErr := mapRateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	current, err := h.usecase.GetCurrent(c.Request.Context())
	if err != nil {
		appErr := mapRateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromRateConfig(rc, rc.Version == current.Version))
}

// PublishRates stores a new immutable rate version and optionally makes it
// the version new quotes price against. Existing quotes keep their frozen
// version either way.
func (h *RateHandler) PublishRates(c *gin.Context) {
	var payload request.PublishRatesRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest).ToHTTPError())
		return
	}

	rc, err := h.usecase.Publish(c.Request.Context(), payload.Config, payload.MakeCurrent)
	if err != nil {
		appErr := mapRateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromRateConfig(rc, payload.MakeCurrent))
}

func mapRateError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidRateVersion):
		return pkg.NewDomainErrorSimple("INVALID_RATE_VERSION", "Invalid rate version", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrRatesNotFound):
		return pkg.NewDomainErrorSimple("RATES_NOT_FOUND", "Rate config not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrRateVersionExists):
		return pkg.NewDomainErrorSimple("RATE_VERSION_EXISTS", "Rate version already published", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
