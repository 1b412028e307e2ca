package routes

import (
	"goplan-erp/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathWorkQueues = "/work-queues"
	PathWorkOrders = "/work-orders"
	PathTeams      = "/teams"
	PathEmployees  = "/employees"
	PathHolidays   = "/holidays"
	PathChat       = "/chat"
)

func addProductionRoutes(
	rg *gin.RouterGroup,
	workQueueHandler *handlers.WorkQueueHandler,
	workOrderHandler *handlers.WorkOrderHandler,
	masterDataHandler *handlers.MasterDataHandler,
	assistantHandler *handlers.AssistantHandler,
) {
	workQueues := rg.Group(PathWorkQueues)
	{
		workQueues.POST("", workQueueHandler.Create)
		workQueues.GET("", workQueueHandler.List)
		workQueues.GET("/:id", workQueueHandler.GetByID)
		workQueues.PUT("/:id", workQueueHandler.Update)
		workQueues.DELETE("/:id", workQueueHandler.Delete)
	}

	workOrders := rg.Group(PathWorkOrders)
	{
		workOrders.POST("", workOrderHandler.Create)
		workOrders.GET("", workOrderHandler.List)
		workOrders.GET("/:id", workOrderHandler.GetByID)
		workOrders.PATCH("/:id/status", workOrderHandler.UpdateStatus)
		workOrders.POST("/:id/work-logs", workOrderHandler.LogWork)
	}

	rg.GET(PathTeams, masterDataHandler.ListTeams)
	rg.GET(PathEmployees, masterDataHandler.ListEmployees)
	rg.GET(PathHolidays, masterDataHandler.ListHolidays)

	rg.POST(PathChat, assistantHandler.Chat)
}
