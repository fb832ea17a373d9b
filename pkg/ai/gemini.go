package ai

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/zenohq/zeno-server/pkg/config"
)

// GeminiClient is a minimal client for the Gemini API used for streamed chat
// generation
type GeminiClient struct {
	apiKey  string
	baseURL string
	model   string
	client  *http.Client
}

// NewGeminiClient creates a Gemini client using values from the provided
// config. Pass a nil config to fall back to environment variables.
func NewGeminiClient(cfg *config.GeminiConfig) *GeminiClient {
	var apiKey string
	if cfg != nil {
		apiKey = cfg.APIKey
	}
	if apiKey == "" {
		apiKey = os.Getenv("GOOGLE_API_KEY")
	}

	var base string
	if cfg != nil && cfg.BaseURL != "" {
		base = cfg.BaseURL
	} else {
		base = os.Getenv("GEMINI_API_URL")
		if base == "" {
			base = "https://generativelanguage.googleapis.com"
		}
	}

	model := "gemini-1.5-flash-latest"
	if cfg != nil && cfg.Model != "" {
		model = cfg.Model
	}

	return &GeminiClient{
		apiKey:  apiKey,
		baseURL: base,
		model:   model,
		// No client-level timeout: streams are long-lived and bounded by ctx.
		client: &http.Client{},
	}
}

// Message is one conversation turn in the provider-neutral shape
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Chunk is one streamed response delta. A mid-stream failure arrives as the
// final chunk with Err set, after which the channel is closed.
type Chunk struct {
	Text string
	Err  error
}

type part struct {
	Text string `json:"text"`
}

type content struct {
	Role  string `json:"role,omitempty"`
	Parts []part `json:"parts"`
}

type generateRequest struct {
	Contents []content `json:"contents"`
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []part `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// geminiRole maps conversation roles to the shape Gemini expects: the model's
// own turns are labelled "model", not "assistant".
func geminiRole(role string) string {
	if role == "assistant" {
		return "model"
	}
	return "user"
}

// StreamChat opens a streamed generation call seeded with history and sends
// message as the final user turn. Deltas arrive on the returned channel in
// provider order; the channel closes when the stream ends.
func (g *GeminiClient) StreamChat(ctx context.Context, history []Message, message string) (<-chan Chunk, error) {
	contents := make([]content, 0, len(history)+1)
	for _, m := range history {
		contents = append(contents, content{
			Role:  geminiRole(m.Role),
			Parts: []part{{Text: m.Content}},
		})
	}
	contents = append(contents, content{
		Role:  "user",
		Parts: []part{{Text: message}},
	})

	b, err := json.Marshal(generateRequest{Contents: contents})
	if err != nil {
		return nil, err
	}

	endpoint := fmt.Sprintf("%s/v1beta/models/%s:streamGenerateContent?alt=sse&key=%s", g.baseURL, g.model, g.apiKey)
	req, err := http.NewRequestWithContext(ctx, "POST", endpoint, bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode >= 400 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		resp.Body.Close()
		return nil, fmt.Errorf("gemini returned status %d: %s", resp.StatusCode, string(body))
	}

	out := make(chan Chunk)
	go func() {
		defer close(out)
		defer resp.Body.Close()

		scanner := bufio.NewScanner(resp.Body)
		scanner.Buffer(make([]byte, 64*1024), 1024*1024)
		for scanner.Scan() {
			line := scanner.Text()
			if !strings.HasPrefix(line, "data:") {
				continue
			}
			data := strings.TrimSpace(strings.TrimPrefix(line, "data:"))
			if data == "" || data == "[DONE]" {
				continue
			}

			var gr generateResponse
			if err := json.Unmarshal([]byte(data), &gr); err != nil {
				select {
				case out <- Chunk{Err: fmt.Errorf("failed to decode stream event: %w", err)}:
				case <-ctx.Done():
				}
				return
			}
			if len(gr.Candidates) == 0 {
				continue
			}
			var text strings.Builder
			for _, p := range gr.Candidates[0].Content.Parts {
				text.WriteString(p.Text)
			}
			if text.Len() == 0 {
				continue
			}
			select {
			case out <- Chunk{Text: text.String()}:
			case <-ctx.Done():
				return
			}
		}
		if err := scanner.Err(); err != nil {
			select {
			case out <- Chunk{Err: fmt.Errorf("stream read failed: %w", err)}:
			case <-ctx.Done():
			}
		}
	}()

	return out, nil
}
