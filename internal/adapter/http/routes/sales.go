package routes

import (
	"goplan-erp/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathQuotations = "/quotations"
)

func addSalesRoutes(rg *gin.RouterGroup, quotationHandler *handlers.QuotationHandler) {
	quotations := rg.Group(PathQuotations)
	{
		quotations.POST("", quotationHandler.Create)
		quotations.GET("", quotationHandler.List)
		quotations.GET("/:id", quotationHandler.GetByID)
		quotations.PUT("/:id", quotationHandler.Update)
		quotations.PATCH("/:id/status", quotationHandler.UpdateStatus)
		quotations.DELETE("/:id", quotationHandler.Delete)
	}
}
