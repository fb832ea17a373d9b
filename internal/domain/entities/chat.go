package entities

// Chat message roles
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// ChatMessage is one turn of a caller-supplied conversation. Conversations are
// never persisted by this service.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}
