package chat

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"go.uber.org/zap"

	"github.com/zenohq/zeno-server/internal/domain/entities"
	"github.com/zenohq/zeno-server/internal/domain/repositories"
	"github.com/zenohq/zeno-server/pkg/ai"
)

// Streamer is the language-model provider surface the orchestrator needs
type Streamer interface {
	StreamChat(ctx context.Context, history []ai.Message, message string) (<-chan ai.Chunk, error)
}

// CredentialSource assembles calendar credentials for a subject
type CredentialSource interface {
	Credentials(ctx context.Context, subjectID string) (entities.CalendarCredentials, error)
}

// Service turns a conversation plus an authenticated subject into a streamed
// sequence of response frames, injecting calendar context when the last
// message looks calendar-related.
type Service struct {
	llm         Streamer
	credentials CredentialSource
	calendar    repositories.CalendarClient
	logger      *zap.Logger
}

// NewService creates a new chat service
func NewService(llm Streamer, credentials CredentialSource, calendar repositories.CalendarClient, logger *zap.Logger) *Service {
	return &Service{
		llm:         llm,
		credentials: credentials,
		calendar:    calendar,
		logger:      logger,
	}
}

type frame struct {
	Content string `json:"content"`
}

// encodeFrame wraps a text delta as a single-key JSON object followed by a
// blank line, the framing every streaming HTTP client can consume.
func encodeFrame(text string) []byte {
	b, err := json.Marshal(frame{Content: text})
	if err != nil {
		b = []byte(`{"content":""}`)
	}
	return append(b, '\n', '\n')
}

// Stream produces a lazy, finite sequence of response frames. The channel
// closes when the response is complete; any failure is delivered as one final
// frame describing the error, never as a broken stream. Fragments are relayed
// in provider order, one at a time.
func (s *Service) Stream(ctx context.Context, subjectID string, messages []entities.ChatMessage) <-chan []byte {
	out := make(chan []byte)

	go func() {
		defer close(out)

		if len(messages) == 0 {
			s.emit(ctx, out, encodeFrame("Error: conversation is empty"))
			return
		}

		history := messages[:len(messages)-1]
		last := messages[len(messages)-1]
		content := last.Content

		if IsCalendarQuery(content) {
			info := s.calendarInfo(ctx, subjectID)
			content = strings.Replace(calendarSchedulePrompt, "{calendar_info}", info, 1)
		}

		aiHistory := make([]ai.Message, 0, len(history))
		for _, m := range history {
			aiHistory = append(aiHistory, ai.Message{Role: m.Role, Content: m.Content})
		}

		chunks, err := s.llm.StreamChat(ctx, aiHistory, content)
		if err != nil {
			s.logger.Error("failed to open model stream", zap.Error(err))
			s.emit(ctx, out, encodeFrame("Error: failed to generate a response"))
			return
		}

		for chunk := range chunks {
			if chunk.Err != nil {
				s.logger.Error("model stream failed", zap.Error(chunk.Err))
				s.emit(ctx, out, encodeFrame("Error: response was interrupted"))
				return
			}
			if !s.emit(ctx, out, encodeFrame(chunk.Text)) {
				return
			}
		}
	}()

	return out
}

// emit delivers one frame unless the request context is gone. Cancellation is
// checked first so a hung-up client stops the stream even while a reader is
// still draining the channel.
func (s *Service) emit(ctx context.Context, out chan<- []byte, b []byte) bool {
	select {
	case <-ctx.Done():
		return false
	default:
	}
	select {
	case out <- b:
		return true
	case <-ctx.Done():
		return false
	}
}

// calendarInfo fetches and serializes the user's upcoming events. Every
// failure degrades to a placeholder string so a calendar outage never breaks
// the chat turn.
func (s *Service) calendarInfo(ctx context.Context, subjectID string) string {
	if subjectID == "" {
		return placeholderNotLoggedIn
	}

	creds, err := s.credentials.Credentials(ctx, subjectID)
	if err != nil {
		if errors.Is(err, entities.ErrIntegrationNotLinked) {
			return placeholderNotLinked
		}
		s.logger.Warn("failed to assemble calendar credentials",
			zap.String("user_id", subjectID),
			zap.Error(err),
		)
		return placeholderFetchFailed
	}

	events, err := s.calendar.ListUpcomingEvents(ctx, creds)
	if err != nil {
		s.logger.Warn("failed to fetch calendar events",
			zap.String("user_id", subjectID),
			zap.Error(err),
		)
		return placeholderFetchFailed
	}

	b, err := json.MarshalIndent(events, "", "  ")
	if err != nil {
		return placeholderFetchFailed
	}
	return string(b)
}
