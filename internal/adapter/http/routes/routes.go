package routes

import (
	_ "cotizaciones_zafir/docs" // This will be auto-generated
	"cotizaciones_zafir/internal/adapter/http/handlers"
	repository2 "cotizaciones_zafir/internal/adapter/persistence/repository"
	"cotizaciones_zafir/internal/infrastructure/database"
	"cotizaciones_zafir/internal/infrastructure/pdfextract"
	"cotizaciones_zafir/internal/usecase"
	"log"
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
	ddb := database.ConnectDynamoDB()

	quoteRepo := repository2.NewQuoteDynamoRepository(ddb)

	quoteUseCase := usecase.NewQuoteUseCase(quoteRepo)
	pricingUseCase := usecase.NewPricingUseCase(quoteRepo)
	dashboardUseCase := usecase.NewDashboardUseCase(quoteRepo)
	pdfImportUseCase := usecase.NewPDFImportUseCase(pdfextract.NewExtractor(), quoteUseCase)

	quoteHandler := handlers.NewQuoteHandler(quoteUseCase)
	pricingHandler := handlers.NewPricingHandler(pricingUseCase)
	dashboardHandler := handlers.NewDashboardHandler(dashboardUseCase)
	pdfHandler := handlers.NewPDFHandler(pdfImportUseCase)

	// Rutas públicas
	api := router.Group("/api")
	addPingRoutes(api)
	addQuoteRoutes(api, quoteHandler, pricingHandler, dashboardHandler, pdfHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
