package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	request "goplan-erp/internal/adapter/http/dto/request"
	response "goplan-erp/internal/adapter/http/dto/response"
	"goplan-erp/internal/domain/entities"
	"goplan-erp/internal/usecase"
	"goplan-erp/pkg"
)

var (
	errInvalidWorkOrderPayload = pkg.NewDomainErrorSimple("INVALID_WORK_ORDER_INPUT", "Invalid work order payload", http.StatusBadRequest)
)

// WorkOrderHandler handles HTTP requests for the work-order board.

type WorkOrderHandler struct {
	usecase usecase.IWorkOrderUseCase
}

func NewWorkOrderHandler(uc usecase.IWorkOrderUseCase) *WorkOrderHandler {
	return &WorkOrderHandler{usecase: uc}
}

func (h *WorkOrderHandler) Create(c *gin.Context) {
	var payload request.WorkOrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidWorkOrderPayload.HTTPStatus, errInvalidWorkOrderPayload.ToHTTPError())
		return
	}

	cmd, err := payload.ToCommand()
	if err != nil {
		c.JSON(errInvalidWorkOrderPayload.HTTPStatus, errInvalidWorkOrderPayload.ToHTTPError())
		return
	}

	wo, err := h.usecase.Create(c.Request.Context(), tenantID(c), cmd)
	if err != nil {
		log.Printf("[workorder][handler] create failed order_number=%s err=%v", payload.OrderNumber, err)
		appErr := mapWorkOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromWorkOrder(wo))
}

func (h *WorkOrderHandler) List(c *gin.Context) {
	wos, err := h.usecase.List(c.Request.Context(), tenantID(c))
	if err != nil {
		appErr := mapWorkOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromWorkOrders(wos))
}

func (h *WorkOrderHandler) GetByID(c *gin.Context) {
	wo, err := h.usecase.GetByID(c.Request.Context(), tenantID(c), c.Param("id"))
	if err != nil {
		appErr := mapWorkOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromWorkOrder(wo))
}

func (h *WorkOrderHandler) UpdateStatus(c *gin.Context) {
	var payload request.WorkOrderStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidWorkOrderPayload.HTTPStatus, errInvalidWorkOrderPayload.ToHTTPError())
		return
	}

	wo, err := h.usecase.UpdateStatus(c.Request.Context(), tenantID(c), c.Param("id"), entities.WorkOrderStatus(payload.Status))
	if err != nil {
		log.Printf("[workorder][handler] status update failed id=%s status=%s err=%v", c.Param("id"), payload.Status, err)
		appErr := mapWorkOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromWorkOrder(wo))
}

func (h *WorkOrderHandler) LogWork(c *gin.Context) {
	var payload request.WorkLogRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidWorkOrderPayload.HTTPStatus, errInvalidWorkOrderPayload.ToHTTPError())
		return
	}

	entry, err := h.usecase.LogWork(c.Request.Context(), tenantID(c), c.Param("id"), payload.Hours(), payload.Description)
	if err != nil {
		appErr := mapWorkOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromWorkLog(entry))
}

func mapWorkOrderError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidWorkOrderID),
		errors.Is(err, usecase.ErrInvalidOrderNumber),
		errors.Is(err, usecase.ErrInvalidProductName),
		errors.Is(err, usecase.ErrInvalidQuantity),
		errors.Is(err, usecase.ErrInvalidWorkOrderStatus),
		errors.Is(err, usecase.ErrInvalidWorkLogHours):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrWorkOrderNotFound):
		return pkg.NewDomainErrorSimple("WORK_ORDER_NOT_FOUND", "Work order not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
