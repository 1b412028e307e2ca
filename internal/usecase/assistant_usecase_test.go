package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"go.uber.org/mock/gomock"

	"goplan-erp/internal/domain/entities"
	mock_interfaces "goplan-erp/internal/usecase/interfaces/mocks"
)

func TestAssistantUseCase_ProcessMessage(t *testing.T) {
	t.Run("empty message", func(t *testing.T) {
		uc := NewAssistantUseCase(nil, nil)
		_, err := uc.ProcessMessage(context.Background(), "tenant-1", "   ")
		if !errors.Is(err, ErrInvalidAssistantMessage) {
			t.Fatalf("expected ErrInvalidAssistantMessage, got %v", err)
		}
	})

	t.Run("gateway not configured", func(t *testing.T) {
		uc := NewAssistantUseCase(nil, nil)
		_, err := uc.ProcessMessage(context.Background(), "tenant-1", "update JB123")
		if !errors.Is(err, ErrAssistantNotConfigured) {
			t.Fatalf("expected ErrAssistantNotConfigured, got %v", err)
		}
	})

	t.Run("unknown intent falls back to chat", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIAssistantGateway(ctrl)
		uc := NewAssistantUseCase(gateway, nil)

		gateway.EXPECT().GenerateJSON(gomock.Any(), gomock.Any()).
			Return(json.RawMessage(`{"action":{"type":"UNKNOWN","parameters":{}}}`), nil)

		res, err := uc.ProcessMessage(context.Background(), "tenant-1", "what is the weather")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Type != "chat" || res.Message == "" {
			t.Fatalf("expected chat fallback, got %+v", res)
		}
	})

	t.Run("unparseable intent falls back to chat", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIAssistantGateway(ctrl)
		uc := NewAssistantUseCase(gateway, nil)

		gateway.EXPECT().GenerateJSON(gomock.Any(), gomock.Any()).
			Return(json.RawMessage(`not json at all`), nil)

		res, err := uc.ProcessMessage(context.Background(), "tenant-1", "hmm")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Type != "chat" {
			t.Fatalf("expected chat fallback, got %+v", res)
		}
	})

	t.Run("full chain produces an action", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIAssistantGateway(ctrl)
		workOrder := mock_interfaces.NewMockIWorkOrderRepository(ctrl)
		uc := NewAssistantUseCase(gateway, workOrder)

		intentJSON := `{"action":{"type":"UPDATE_WORK_ORDER_STATUS","parameters":{"workOrderIdentifier":"JB123","newStatus":"completed"}}}`
		actionJSON := `{"type":"UPDATE_WORK_ORDER_STATUS","workOrderId":"wo-1","orderNumber":"JB123","parameters":{"newStatus":"completed"},"confirmationMessage":"ok"}`

		gateway.EXPECT().GenerateJSON(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, prompt string) (json.RawMessage, error) {
				if !strings.Contains(prompt, "JB123") {
					t.Fatalf("intent prompt should embed the user message, got: %s", prompt)
				}
				return json.RawMessage(intentJSON), nil
			},
		)
		workOrder.EXPECT().GetByNumber(gomock.Any(), "tenant-1", "JB123").Return(entities.WorkOrder{
			ID:          "wo-1",
			TenantID:    "tenant-1",
			OrderNumber: "JB123",
			ProductName: "polo shirt",
			Quantity:    100,
			Status:      entities.WorkOrderStatusInProgress,
		}, nil)
		gateway.EXPECT().GenerateJSON(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, prompt string) (json.RawMessage, error) {
				if !strings.Contains(prompt, "UPDATE_WORK_ORDER_STATUS") {
					t.Fatalf("action prompt should name the intent, got: %s", prompt)
				}
				if !strings.Contains(prompt, "JB123") {
					t.Fatalf("action prompt should embed the work order context, got: %s", prompt)
				}
				return json.RawMessage(actionJSON), nil
			},
		)

		res, err := uc.ProcessMessage(context.Background(), "tenant-1", "mark JB123 as completed")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Type != "action" {
			t.Fatalf("expected action result, got %+v", res)
		}
		var parsed map[string]any
		if err := json.Unmarshal(res.Action, &parsed); err != nil {
			t.Fatalf("action is not valid JSON: %v", err)
		}
		if parsed["workOrderId"] != "wo-1" {
			t.Fatalf("unexpected action payload: %v", parsed)
		}
	})

	t.Run("falls back to latest work order when none is named", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIAssistantGateway(ctrl)
		workOrder := mock_interfaces.NewMockIWorkOrderRepository(ctrl)
		uc := NewAssistantUseCase(gateway, workOrder)

		gateway.EXPECT().GenerateJSON(gomock.Any(), gomock.Any()).
			Return(json.RawMessage(`{"action":{"type":"QUERY_WORK_ORDER","parameters":{"workOrderIdentifier":""}}}`), nil)
		workOrder.EXPECT().GetLatest(gomock.Any(), "tenant-1").Return(entities.WorkOrder{
			ID:          "wo-9",
			OrderNumber: "JB999",
		}, nil)
		gateway.EXPECT().GenerateJSON(gomock.Any(), gomock.Any()).
			Return(json.RawMessage(`{"type":"QUERY_WORK_ORDER","workOrderId":"wo-9"}`), nil)

		res, err := uc.ProcessMessage(context.Background(), "tenant-1", "how is the latest order doing")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Type != "action" {
			t.Fatalf("expected action result, got %+v", res)
		}
	})

	t.Run("no matching work order yields a chat reply", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIAssistantGateway(ctrl)
		workOrder := mock_interfaces.NewMockIWorkOrderRepository(ctrl)
		uc := NewAssistantUseCase(gateway, workOrder)

		gateway.EXPECT().GenerateJSON(gomock.Any(), gomock.Any()).
			Return(json.RawMessage(`{"action":{"type":"QUERY_WORK_ORDER","parameters":{"workOrderIdentifier":"JB404"}}}`), nil)
		workOrder.EXPECT().GetByNumber(gomock.Any(), "tenant-1", "JB404").Return(entities.WorkOrder{}, nil)

		res, err := uc.ProcessMessage(context.Background(), "tenant-1", "status of JB404")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Type != "chat" || res.Message == "" {
			t.Fatalf("expected chat fallback, got %+v", res)
		}
	})

	t.Run("gateway error propagates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIAssistantGateway(ctrl)
		uc := NewAssistantUseCase(gateway, nil)

		gateway.EXPECT().GenerateJSON(gomock.Any(), gomock.Any()).Return(nil, errors.New("quota exceeded"))

		_, err := uc.ProcessMessage(context.Background(), "tenant-1", "update JB123")
		if err == nil || err.Error() != "quota exceeded" {
			t.Fatalf("expected gateway error, got %v", err)
		}
	})
}
