package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"

	"goplan-erp/internal/adapter/http/handlers/mocks"
	"goplan-erp/internal/usecase"
)

func TestAssistantHandler_Chat(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing message", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAssistantUseCase(ctrl)
		h := NewAssistantHandler(uc)

		r := gin.New()
		r.POST("/api/chat", h.Chat)

		req := httptest.NewRequest(http.MethodPost, "/api/chat", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("action result", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAssistantUseCase(ctrl)
		h := NewAssistantHandler(uc)

		r := gin.New()
		r.POST("/api/chat", h.Chat)

		uc.EXPECT().ProcessMessage(gomock.Any(), defaultTenantID, "mark JB123 as completed").Return(usecase.AssistantResult{
			Type:   "action",
			Action: json.RawMessage(`{"type":"UPDATE_WORK_ORDER_STATUS","workOrderId":"wo-1"}`),
		}, nil)

		req := httptest.NewRequest(http.MethodPost, "/api/chat", bytes.NewBufferString(`{"message":"mark JB123 as completed"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var resp map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &resp)
		if resp["type"] != "action" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})

	t.Run("not configured", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAssistantUseCase(ctrl)
		h := NewAssistantHandler(uc)

		r := gin.New()
		r.POST("/api/chat", h.Chat)

		uc.EXPECT().ProcessMessage(gomock.Any(), gomock.Any(), gomock.Any()).Return(usecase.AssistantResult{}, usecase.ErrAssistantNotConfigured)

		req := httptest.NewRequest(http.MethodPost, "/api/chat", bytes.NewBufferString(`{"message":"hello"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusServiceUnavailable {
			t.Fatalf("expected 503, got %d", w.Code)
		}
	})
}
