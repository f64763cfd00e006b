package routes

import (
	"log"
	"os"
	"strconv"
	"time"

	_ "printshop_billing/docs" // This will be auto-generated
	"printshop_billing/internal/adapter/http/handlers"
	repository2 "printshop_billing/internal/adapter/persistence/repository"
	"printshop_billing/internal/infrastructure/database"
	"printshop_billing/internal/usecase"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	quoteRepo := repository2.NewQuoteDynamoRepository(ddb)
	orderRepo := repository2.NewOrderDynamoRepository(ddb)
	assignmentRepo := repository2.NewMakerAssignmentDynamoRepository(ddb)
	rateRepo := repository2.NewRateConfigDynamoRepository(ddb)

	quoteUseCase := usecase.NewQuoteUseCase(quoteRepo, rateRepo, quoteTTLFromEnv())
	orderUseCase := usecase.NewOrderUseCase(orderRepo)
	assignmentUseCase := usecase.NewAssignmentUseCase(assignmentRepo, orderRepo)
	rateUseCase := usecase.NewRateUseCase(rateRepo)

	quoteHandler := handlers.NewQuoteHandler(quoteUseCase)
	orderHandler := handlers.NewOrderHandler(orderUseCase)
	assignmentHandler := handlers.NewAssignmentHandler(assignmentUseCase)
	rateHandler := handlers.NewRateHandler(rateUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addQuotingRoutes(v1, quoteHandler, orderHandler, assignmentHandler, rateHandler)
}

// quoteTTLFromEnv reads QUOTE_TTL_HOURS; zero lets the use case apply its
// default window.
func quoteTTLFromEnv() time.Duration {
	raw := os.Getenv("QUOTE_TTL_HOURS")
	if raw == "" {
		return 0
	}
	hours, err := strconv.Atoi(raw)
	if err != nil || hours <= 0 {
		log.Printf("[config][routes] ignoring invalid QUOTE_TTL_HOURS=%q", raw)
		return 0
	}
	return time.Duration(hours) * time.Hour
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
