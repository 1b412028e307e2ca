package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	request "goplan-erp/internal/adapter/http/dto/request"
	response "goplan-erp/internal/adapter/http/dto/response"
	"goplan-erp/internal/usecase"
	"goplan-erp/pkg"
)

var (
	errInvalidWorkQueuePayload = pkg.NewDomainErrorSimple("INVALID_WORK_QUEUE_INPUT", "Invalid work queue payload", http.StatusBadRequest)
)

// WorkQueueHandler handles HTTP requests for the production work queue.

type WorkQueueHandler struct {
	usecase usecase.IWorkQueueUseCase
}

func NewWorkQueueHandler(uc usecase.IWorkQueueUseCase) *WorkQueueHandler {
	return &WorkQueueHandler{usecase: uc}
}

// Create schedules a new work-queue item. The estimated duration and expected
// end date come back computed from current team capacity and holidays.
func (h *WorkQueueHandler) Create(c *gin.Context) {
	var payload request.WorkQueueRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidWorkQueuePayload.HTTPStatus, errInvalidWorkQueuePayload.ToHTTPError())
		return
	}

	item, err := h.usecase.Create(c.Request.Context(), tenantID(c), payload.ToCreateCommand())
	if err != nil {
		log.Printf("[workqueue][handler] create failed order_number=%s err=%v", payload.OrderNumber, err)
		appErr := mapWorkQueueError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromWorkQueueItem(item))
}

func (h *WorkQueueHandler) List(c *gin.Context) {
	items, err := h.usecase.List(c.Request.Context(), tenantID(c))
	if err != nil {
		log.Printf("[workqueue][handler] list failed err=%v", err)
		appErr := mapWorkQueueError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromWorkQueueItems(items))
}

func (h *WorkQueueHandler) GetByID(c *gin.Context) {
	item, err := h.usecase.GetByID(c.Request.Context(), tenantID(c), c.Param("id"))
	if err != nil {
		appErr := mapWorkQueueError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromWorkQueueItem(item))
}

// Update replaces the mutable fields of an item. A quantity or team change
// reestimates the schedule from the item's original start date.
func (h *WorkQueueHandler) Update(c *gin.Context) {
	var payload request.WorkQueueRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidWorkQueuePayload.HTTPStatus, errInvalidWorkQueuePayload.ToHTTPError())
		return
	}

	item, err := h.usecase.Update(c.Request.Context(), tenantID(c), c.Param("id"), payload.ToUpdateCommand())
	if err != nil {
		log.Printf("[workqueue][handler] update failed id=%s err=%v", c.Param("id"), err)
		appErr := mapWorkQueueError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromWorkQueueItem(item))
}

func (h *WorkQueueHandler) Delete(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), tenantID(c), c.Param("id")); err != nil {
		appErr := mapWorkQueueError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

func mapWorkQueueError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidWorkQueueID),
		errors.Is(err, usecase.ErrInvalidOrderNumber),
		errors.Is(err, usecase.ErrInvalidProductName),
		errors.Is(err, usecase.ErrInvalidTeamID),
		errors.Is(err, usecase.ErrInvalidQuantity),
		errors.Is(err, usecase.ErrInvalidPriority),
		errors.Is(err, usecase.ErrInvalidWorkQueueStatus):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrWorkQueueNotFound):
		return pkg.NewDomainErrorSimple("WORK_QUEUE_NOT_FOUND", "Work queue item not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
