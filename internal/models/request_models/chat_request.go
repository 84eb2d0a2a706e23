package request_models

const (
	ChatRoleUser      = "user"
	ChatRoleAssistant = "assistant"
	// ChatRoleModel is accepted on input as an alias of ChatRoleAssistant.
	ChatRoleModel = "model"
)

type ChatTurn struct {
	Role    string `json:"role" validate:"required,oneof=user assistant"`
	Content string `json:"content" validate:"required"`
}

type ChatRequest struct {
	History     []ChatTurn `json:"history" validate:"max=100,dive"`
	UserMessage string     `json:"userMessage" validate:"required,max=2000"`
}
