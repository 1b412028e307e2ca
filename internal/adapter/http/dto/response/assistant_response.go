package response

import (
	"encoding/json"

	"goplan-erp/internal/usecase"
)

// AssistantResponse is either a plain chat reply or a structured action
// proposal the client confirms before executing.
type AssistantResponse struct {
	Type    string          `json:"type"`
	Message string          `json:"message,omitempty"`
	Action  json.RawMessage `json:"action,omitempty"`
}

func FromAssistantResult(r usecase.AssistantResult) AssistantResponse {
	return AssistantResponse{
		Type:    r.Type,
		Message: r.Message,
		Action:  r.Action,
	}
}
