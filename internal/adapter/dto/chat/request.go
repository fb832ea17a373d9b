package chat

// Message is one conversation turn supplied by the caller
type Message struct {
	Role    string `json:"role" validate:"required,oneof=user assistant"`
	Content string `json:"content" validate:"required"`
}

// ChatRequest represents a chat turn: the full conversation history with the
// new user message last
type ChatRequest struct {
	Messages []Message `json:"messages" validate:"required,min=1,dive"`
}
