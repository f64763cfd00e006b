package routes

import (
	"printshop_billing/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathQuotes      = "/quotes"
	PathOrders      = "/orders"
	PathAssignments = "/assignments"
	PathRates       = "/rates"
)

func addQuotingRoutes(
	rg *gin.RouterGroup,
	quoteHandler *handlers.QuoteHandler,
	orderHandler *handlers.OrderHandler,
	assignmentHandler *handlers.AssignmentHandler,
	rateHandler *handlers.RateHandler,
) {
	quotes := rg.Group(PathQuotes)
	{
		quotes.POST("/preview", quoteHandler.PreviewQuote)
		quotes.POST("", quoteHandler.CreateQuote)
		quotes.GET("/:quote_id", quoteHandler.GetQuote)
		quotes.POST("/:quote_id/checkout", quoteHandler.CheckoutQuote)
	}

	orders := rg.Group(PathOrders)
	{
		orders.GET("/:order_id", orderHandler.GetOrder)
		orders.GET("/:order_id/audit", orderHandler.GetAudit)
		orders.PATCH("/:order_id/status", orderHandler.TransitionOrder)
		orders.POST("/:order_id/assignment", assignmentHandler.AssignMaker)
	}

	assignments := rg.Group(PathAssignments)
	{
		assignments.PATCH("/:assignment_id/accept", assignmentHandler.AcceptAssignment)
		assignments.PATCH("/:assignment_id/decline", assignmentHandler.DeclineAssignment)
		assignments.GET("/:assignment_id/download-access", assignmentHandler.DownloadAccess)
	}

	rates := rg.Group(PathRates)
	{
		rates.GET("/current", rateHandler.GetCurrentRates)
		rates.GET("/:version", rateHandler.GetRatesByVersion)
		rates.POST("", rateHandler.PublishRates)
	}
}
