package interfaces

import (
	"context"
	"encoding/json"
)

// IAssistantGateway abstracts the external LLM provider (e.g. Gemini).
//
// GenerateJSON sends a prompt that instructs the model to answer with a single
// JSON object and returns the raw object bytes, with any markdown fencing
// already stripped.
type IAssistantGateway interface {
	GenerateJSON(ctx context.Context, prompt string) (json.RawMessage, error)
}
