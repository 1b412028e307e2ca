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

// AssistantHandler handles HTTP requests for the production chat assistant.

type AssistantHandler struct {
	usecase usecase.IAssistantUseCase
}

func NewAssistantHandler(uc usecase.IAssistantUseCase) *AssistantHandler {
	return &AssistantHandler{usecase: uc}
}

// Chat runs the message through the assistant's prompt chain and returns
// either a chat reply or an action proposal for the client to confirm.
func (h *AssistantHandler) Chat(c *gin.Context) {
	var payload request.AssistantRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_CHAT_INPUT", "Invalid chat payload", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	result, err := h.usecase.ProcessMessage(c.Request.Context(), tenantID(c), payload.Message)
	if err != nil {
		log.Printf("[assistant][handler] chat failed err=%v", err)
		appErr := mapAssistantError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromAssistantResult(result))
}

func mapAssistantError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidAssistantMessage):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrAssistantNotConfigured):
		return pkg.NewDomainErrorSimple("ASSISTANT_NOT_CONFIGURED", "Chat assistant is not configured", http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
