package request

// AssistantRequest is a single chat message for the production assistant.
type AssistantRequest struct {
	Message string `json:"message" binding:"required"`
}
