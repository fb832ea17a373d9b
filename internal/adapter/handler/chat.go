package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/zenohq/zeno-server/errors"
	dtochat "github.com/zenohq/zeno-server/internal/adapter/dto/chat"
	"github.com/zenohq/zeno-server/internal/domain/entities"
	"github.com/zenohq/zeno-server/internal/infrastructure/http/middleware"
	"github.com/zenohq/zeno-server/internal/usecase/chat"
)

// Chat handles chat HTTP requests
type Chat struct {
	svc    *chat.Service
	logger *zap.Logger
}

// NewChat creates a new chat handler
func NewChat(svc *chat.Service, logger *zap.Logger) *Chat {
	return &Chat{
		svc:    svc,
		logger: logger,
	}
}

// Stream handles a chat turn and streams model output back as plain-text
// frames, flushed one fragment at a time in provider order.
// @Summary      Chat with the assistant
// @Description  Streams model output back as JSON frames separated by blank lines
// @Tags         Chat
// @Accept       json
// @Produce      plain
// @Security     BearerAuth
// @Param        request  body      chat.ChatRequest  true  "Conversation history with the new user message last"
// @Success      200      {string}  string  "Stream of response frames"
// @Failure      400      {object}  map[string]interface{}  "Invalid request"
// @Failure      401      {object}  map[string]interface{}  "User not authenticated"
// @Router       /chat [post]
func (h *Chat) Stream(c echo.Context) error {
	var req dtochat.ChatRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument("Invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument("messages must be a non-empty list of role/content pairs"))
	}

	messages := make([]entities.ChatMessage, 0, len(req.Messages))
	for _, m := range req.Messages {
		messages = append(messages, entities.ChatMessage{Role: m.Role, Content: m.Content})
	}

	subject := middleware.SubjectID(c)

	resp := c.Response()
	resp.Header().Set(echo.HeaderContentType, echo.MIMETextPlain)
	resp.WriteHeader(http.StatusOK)

	for frame := range h.svc.Stream(c.Request().Context(), subject, messages) {
		if _, err := resp.Write(frame); err != nil {
			// Client went away; the stream goroutine stops via ctx.
			return nil
		}
		resp.Flush()
	}
	return nil
}
