package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"

	"goplan-erp/internal/usecase/interfaces"
)

var (
	ErrInvalidAssistantMessage = errors.New("invalid assistant message")
	ErrAssistantNotConfigured  = errors.New("assistant gateway not configured")
)

// Assistant action vocabulary understood by the prompt chain.
const (
	assistantActionUpdateStatus  = "UPDATE_WORK_ORDER_STATUS"
	assistantActionCreateWorkLog = "CREATE_WORK_LOG"
	assistantActionQuery         = "QUERY_WORK_ORDER"
	assistantActionUnknown       = "UNKNOWN"
)

// AssistantResult is what the chat endpoint returns: either a plain chat reply
// or a structured action proposal for the client to confirm and execute.
type AssistantResult struct {
	Type    string          `json:"type"` // "chat" | "action"
	Message string          `json:"message,omitempty"`
	Action  json.RawMessage `json:"action,omitempty"`
}

// IAssistantUseCase runs the three-step prompt chain: intent analysis,
// contextual work-order fetch, final action generation.

type IAssistantUseCase interface {
	ProcessMessage(ctx context.Context, tenantID, message string) (AssistantResult, error)
}

type AssistantUseCase struct {
	gateway   interfaces.IAssistantGateway
	workOrder interfaces.IWorkOrderRepository
}

var _ IAssistantUseCase = (*AssistantUseCase)(nil)

func NewAssistantUseCase(gateway interfaces.IAssistantGateway, workOrder interfaces.IWorkOrderRepository) *AssistantUseCase {
	return &AssistantUseCase{gateway: gateway, workOrder: workOrder}
}

type intentAnalysis struct {
	Action struct {
		Type       string `json:"type"`
		Parameters struct {
			WorkOrderIdentifier string `json:"workOrderIdentifier"`
			NewStatus           string `json:"newStatus"`
			HoursWorked         string `json:"hoursWorked"`
			WorkDescription     string `json:"workDescription"`
		} `json:"parameters"`
	} `json:"action"`
}

func (u *AssistantUseCase) ProcessMessage(ctx context.Context, tenantID, message string) (AssistantResult, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return AssistantResult{}, ErrInvalidAssistantMessage
	}
	if u.gateway == nil {
		return AssistantResult{}, ErrAssistantNotConfigured
	}

	// Step 1/3: intent analysis.
	raw, err := u.gateway.GenerateJSON(ctx, intentPrompt(message))
	if err != nil {
		return AssistantResult{}, err
	}
	var intent intentAnalysis
	if err := json.Unmarshal(raw, &intent); err != nil || intent.Action.Type == "" || intent.Action.Type == assistantActionUnknown {
		log.Printf("[assistant][usecase] intent unresolved err=%v type=%q", err, intent.Action.Type)
		return AssistantResult{
			Type:    "chat",
			Message: "ขออภัยครับ ผมไม่แน่ใจว่าต้องการให้ทำอะไร กรุณาลองระบุให้ชัดเจนขึ้นครับ",
		}, nil
	}
	log.Printf("[assistant][usecase] step 1/3 intent type=%s identifier=%q", intent.Action.Type, intent.Action.Parameters.WorkOrderIdentifier)

	// Step 2/3: fetch the work order the request refers to; fall back to the
	// tenant's most recent order when none is named.
	wo, err := u.contextWorkOrder(ctx, tenantID, intent.Action.Parameters.WorkOrderIdentifier)
	if err != nil {
		return AssistantResult{}, err
	}
	if wo == nil {
		return AssistantResult{
			Type:    "chat",
			Message: "ขออภัยครับ ผมไม่พบใบสั่งงานที่เกี่ยวข้องตามที่คุณร้องขอครับ",
		}, nil
	}
	log.Printf("[assistant][usecase] step 2/3 context order_number=%s status=%s", wo["order_number"], wo["status"])

	// Step 3/3: generate the final structured action.
	action, err := u.gateway.GenerateJSON(ctx, actionPrompt(message, intent, wo))
	if err != nil {
		return AssistantResult{}, err
	}
	if !json.Valid(action) {
		return AssistantResult{
			Type:    "chat",
			Message: "ขออภัยครับ ระบบไม่สามารถสร้างคำสั่งจากข้อความนี้ได้ครับ",
		}, nil
	}
	log.Printf("[assistant][usecase] step 3/3 action generated bytes=%d", len(action))
	return AssistantResult{Type: "action", Action: action}, nil
}

// contextWorkOrder returns the referenced work order as a JSON-friendly map,
// or nil when nothing matches.
func (u *AssistantUseCase) contextWorkOrder(ctx context.Context, tenantID, identifier string) (map[string]any, error) {
	identifier = strings.TrimSpace(identifier)

	wo, err := func() (o any, err error) {
		if identifier == "" {
			return u.workOrder.GetLatest(ctx, tenantID)
		}
		return u.workOrder.GetByNumber(ctx, tenantID, identifier)
	}()
	if err != nil {
		return nil, err
	}

	b, err := json.Marshal(wo)
	if err != nil {
		return nil, err
	}
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, err
	}
	if id, _ := m["id"].(string); id == "" {
		return nil, nil
	}
	return m, nil
}

func intentPrompt(message string) string {
	return fmt.Sprintf(`You are an expert at understanding user requests for a production management system.
Analyze the following user message and respond ONLY with a JSON object.

User Message: %q

Your task is to identify the user's primary intent and extract all relevant parameters.

Available Actions:
- UPDATE_WORK_ORDER_STATUS: Requires a work order identifier (like "JB123") and a new status.
- CREATE_WORK_LOG: Requires a work order identifier, hours worked, and a description.
- QUERY_WORK_ORDER: Requires a work order identifier.
- UNKNOWN: If the intent is unclear or not supported.

JSON Response Format:
{
  "action": {
    "type": "UPDATE_WORK_ORDER_STATUS | CREATE_WORK_LOG | QUERY_WORK_ORDER | UNKNOWN",
    "parameters": {
      "workOrderIdentifier": "extracted_id_or_null",
      "newStatus": "extracted_status_or_null",
      "hoursWorked": "extracted_hours_or_null",
      "workDescription": "extracted_description_or_null"
    }
  }
}`, message)
}

func actionPrompt(message string, intent intentAnalysis, workOrder map[string]any) string {
	ctxJSON, _ := json.Marshal(workOrder)
	return fmt.Sprintf(`You are generating the final action for a production management system.
Respond ONLY with a JSON object, no prose.

Original user message: %q
Analyzed intent type: %s
Work order context: %s

Produce:
{
  "type": "%s",
  "workOrderId": "<id from context>",
  "orderNumber": "<order_number from context>",
  "parameters": { ... the intent parameters, resolved against the context ... },
  "confirmationMessage": "<one short Thai sentence describing the action for the user to confirm>"
}`, message, intent.Action.Type, ctxJSON, intent.Action.Type)
}
