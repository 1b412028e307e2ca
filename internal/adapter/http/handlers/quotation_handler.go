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
	errInvalidQuotationPayload = pkg.NewDomainErrorSimple("INVALID_QUOTATION_INPUT", "Invalid quotation payload", http.StatusBadRequest)
)

// QuotationHandler handles HTTP requests for sales quotations.

type QuotationHandler struct {
	usecase usecase.IQuotationUseCase
}

func NewQuotationHandler(uc usecase.IQuotationUseCase) *QuotationHandler {
	return &QuotationHandler{usecase: uc}
}

// Create prices a new quotation and assigns the next monthly number.
func (h *QuotationHandler) Create(c *gin.Context) {
	var payload request.QuotationRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotationPayload.HTTPStatus, errInvalidQuotationPayload.ToHTTPError())
		return
	}

	cmd, err := payload.ToCommand()
	if err != nil {
		c.JSON(errInvalidQuotationPayload.HTTPStatus, errInvalidQuotationPayload.ToHTTPError())
		return
	}

	q, err := h.usecase.Create(c.Request.Context(), tenantID(c), cmd)
	if err != nil {
		log.Printf("[quotation][handler] create failed customer_id=%s err=%v", payload.CustomerID, err)
		appErr := mapQuotationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromQuotation(q))
}

func (h *QuotationHandler) List(c *gin.Context) {
	qs, err := h.usecase.List(c.Request.Context(), tenantID(c))
	if err != nil {
		log.Printf("[quotation][handler] list failed err=%v", err)
		appErr := mapQuotationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuotations(qs))
}

func (h *QuotationHandler) GetByID(c *gin.Context) {
	q, err := h.usecase.GetByID(c.Request.Context(), tenantID(c), c.Param("id"))
	if err != nil {
		appErr := mapQuotationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuotation(q))
}

// Update replaces a quotation's content and reprices every line and aggregate.
// The quotation number never changes here.
func (h *QuotationHandler) Update(c *gin.Context) {
	var payload request.QuotationRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotationPayload.HTTPStatus, errInvalidQuotationPayload.ToHTTPError())
		return
	}

	cmd, err := payload.ToCommand()
	if err != nil {
		c.JSON(errInvalidQuotationPayload.HTTPStatus, errInvalidQuotationPayload.ToHTTPError())
		return
	}

	q, err := h.usecase.Update(c.Request.Context(), tenantID(c), c.Param("id"), cmd)
	if err != nil {
		log.Printf("[quotation][handler] update failed id=%s err=%v", c.Param("id"), err)
		appErr := mapQuotationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuotation(q))
}

func (h *QuotationHandler) UpdateStatus(c *gin.Context) {
	var payload request.QuotationStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotationPayload.HTTPStatus, errInvalidQuotationPayload.ToHTTPError())
		return
	}

	q, err := h.usecase.UpdateStatus(c.Request.Context(), tenantID(c), c.Param("id"), entities.QuotationStatus(payload.Status))
	if err != nil {
		appErr := mapQuotationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuotation(q))
}

func (h *QuotationHandler) Delete(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), tenantID(c), c.Param("id")); err != nil {
		appErr := mapQuotationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

func mapQuotationError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidQuotationID),
		errors.Is(err, usecase.ErrInvalidCustomerID),
		errors.Is(err, usecase.ErrNoQuotationItems),
		errors.Is(err, usecase.ErrInvalidItemQuantity),
		errors.Is(err, usecase.ErrInvalidItemUnitPrice),
		errors.Is(err, usecase.ErrInvalidItemDiscount),
		errors.Is(err, usecase.ErrInvalidDiscountType),
		errors.Is(err, usecase.ErrInvalidDiscountPercent),
		errors.Is(err, usecase.ErrInvalidTaxPercent),
		errors.Is(err, usecase.ErrInvalidQuotationStatus):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrQuotationNotFound):
		return pkg.NewDomainErrorSimple("QUOTATION_NOT_FOUND", "Quotation not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrQuotationNumberExhausted):
		return pkg.NewDomainErrorSimple("QUOTATION_NUMBER_CONFLICT", "Could not assign a unique quotation number", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
