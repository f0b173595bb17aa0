// Package ai generates movie candidates from a taste profile and the
// current contextual answers via a chat-completion model.
package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"github.com/borissavenets/RecoFilmBot/internal/models"
)

// DefaultCount is how many candidate titles the model is asked for.
const DefaultCount = 5

// Client wraps the chat-completion API.
type Client struct {
	api   *openai.Client
	model string
}

// NewClient creates a suggestion generator.
func NewClient(apiKey, model string) *Client {
	return &Client{
		api:   openai.NewClient(apiKey),
		model: model,
	}
}

// GenerateCandidates asks the model for count candidate movies matching the
// profile and current state. Any transport error or malformed payload yields
// nil candidates: the caller falls back to deterministic discovery.
func (c *Client) GenerateCandidates(
	ctx context.Context,
	profile *models.TasteProfile,
	answers models.DynamicAnswers,
	count int,
	lang string,
) ([]models.Candidate, error) {
	if count <= 0 {
		count = DefaultCount
	}

	prompt := BuildPrompt(profile, answers, count, lang)

	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:     c.model,
		MaxTokens: 1500,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("chat completion returned no choices")
	}

	candidates, err := ParseCandidates(resp.Choices[0].Message.Content)
	if err != nil {
		slog.Error("failed to parse model candidates", "error", err)
		return nil, err
	}
	return candidates, nil
}

// ParseCandidates decodes the model's reply into candidates. The reply must
// be a JSON array of {title, year, reason}; a single layer of markdown code
// fences around it is tolerated.
func ParseCandidates(content string) ([]models.Candidate, error) {
	content = StripFences(content)

	var candidates []models.Candidate
	if err := json.Unmarshal([]byte(content), &candidates); err != nil {
		return nil, fmt.Errorf("decode candidates: %w", err)
	}
	return candidates, nil
}

// StripFences removes one layer of ``` fencing (with an optional "json" tag)
// around the payload. The leading and trailing fences are stripped
// independently, so a reply missing either one still cleans up.
func StripFences(content string) string {
	content = strings.TrimSpace(content)
	if strings.HasPrefix(content, "```") {
		content = strings.TrimPrefix(content, "```")
		content = strings.TrimPrefix(content, "json")
	}
	if strings.HasSuffix(content, "```") {
		content = strings.TrimSuffix(content, "```")
	}
	return strings.TrimSpace(content)
}
