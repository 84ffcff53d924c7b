package routes

import (
	"cotizaciones_zafir/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathQuotes = "/quotes"
)

func addQuoteRoutes(
	rg *gin.RouterGroup,
	quoteHandler *handlers.QuoteHandler,
	pricingHandler *handlers.PricingHandler,
	dashboardHandler *handlers.DashboardHandler,
	pdfHandler *handlers.PDFHandler,
) {
	quotes := rg.Group(PathQuotes)
	{
		quotes.POST("", quoteHandler.CreateQuote)
		quotes.GET("", quoteHandler.ListQuotes)
		quotes.GET("/:quote_id", quoteHandler.GetQuote)
		quotes.PUT("/:quote_id", quoteHandler.UpdateQuote)
		quotes.DELETE("/:quote_id", quoteHandler.DeleteQuote)
		quotes.PATCH("/:quote_id/approve", quoteHandler.ApproveQuote)
		quotes.PATCH("/:quote_id/send", quoteHandler.SendQuote)
		quotes.PATCH("/:quote_id/expire", quoteHandler.ExpireQuote)
	}

	rg.GET("/procedures", quoteHandler.ListProcedures)
	rg.GET("/surgeons", quoteHandler.ListSurgeons)
	rg.GET("/dashboard", dashboardHandler.GetStats)
	rg.GET("/pricing-suggestions/:procedure_name", pricingHandler.GetSuggestions)
	rg.POST("/upload-pdf", pdfHandler.UploadPDF)
}
