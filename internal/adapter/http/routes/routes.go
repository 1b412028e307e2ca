package routes

import (
	_ "goplan-erp/docs" // This will be auto-generated
	"goplan-erp/internal/adapter/http/handlers"
	repository2 "goplan-erp/internal/adapter/persistence/repository"
	"goplan-erp/internal/infrastructure/assistant"
	"goplan-erp/internal/infrastructure/database"
	"goplan-erp/internal/usecase"
	"goplan-erp/internal/usecase/interfaces"
	"log"
	"os"
	"strconv"

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
	db := database.Connect()

	workQueueRepo := repository2.NewWorkQueueGormRepository(db)
	quotationRepo := repository2.NewQuotationGormRepository(db)
	masterDataRepo := repository2.NewMasterDataGormRepository(db)
	workOrderRepo := repository2.NewWorkOrderGormRepository(db)

	workQueueUseCase := usecase.NewWorkQueueUseCase(workQueueRepo, masterDataRepo)
	quotationUseCase := usecase.NewQuotationUseCase(quotationRepo)
	workOrderUseCase := usecase.NewWorkOrderUseCase(workOrderRepo)

	var assistantGateway interfaces.IAssistantGateway
	geminiClient, err := assistant.NewGeminiClient(os.Getenv("GEMINI_API_KEY"))
	if err != nil {
		log.Printf("Chat assistant not configured: %v", err)
	} else {
		assistantGateway = geminiClient
	}
	assistantUseCase := usecase.NewAssistantUseCase(assistantGateway, workOrderRepo)

	workQueueHandler := handlers.NewWorkQueueHandler(workQueueUseCase)
	quotationHandler := handlers.NewQuotationHandler(quotationUseCase)
	workOrderHandler := handlers.NewWorkOrderHandler(workOrderUseCase)
	masterDataHandler := handlers.NewMasterDataHandler(masterDataRepo)
	assistantHandler := handlers.NewAssistantHandler(assistantUseCase)

	api := router.Group("/api")
	addPingRoutes(api)
	addProductionRoutes(api, workQueueHandler, workOrderHandler, masterDataHandler, assistantHandler)
	addSalesRoutes(api, quotationHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
