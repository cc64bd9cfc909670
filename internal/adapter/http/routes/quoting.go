package routes

import (
	"enviromaster/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathServiceConfigs = "/service-configs"
	PathQuotes         = "/quotes"
	PathDocuments      = "/documents"
)

func addQuotingRoutes(rg *gin.RouterGroup, configHandler *handlers.ServiceConfigHandler, quoteHandler *handlers.QuoteHandler, documentHandler *handlers.DocumentHandler) {
	configs := rg.Group(PathServiceConfigs)
	{
		configs.GET("/active", configHandler.GetActive)
		configs.PUT("/:serviceId", configHandler.Upsert)
		configs.POST("/:serviceId/refresh", configHandler.Refresh)
	}

	quotes := rg.Group(PathQuotes)
	{
		quotes.POST("/preview", quoteHandler.Preview)
		quotes.POST("/agreement", quoteHandler.Agreement)
	}

	documents := rg.Group(PathDocuments)
	{
		documents.POST("", documentHandler.Create)
		documents.GET("", documentHandler.List)
		documents.GET("/:id", documentHandler.Get)
		documents.PATCH("/:id/submit", documentHandler.Submit)
		documents.PATCH("/:id/approve-salesman", documentHandler.ApproveSalesman)
		documents.PATCH("/:id/approve-admin", documentHandler.ApproveAdmin)
		documents.PUT("/:id/pdf", documentHandler.UploadPDF)
		documents.GET("/:id/pdf", documentHandler.DownloadPDF)
	}
}
