package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"github.com/marcotte/inscripto/internal/app/models/dto"
	"github.com/marcotte/inscripto/internal/config"
	"github.com/marcotte/inscripto/internal/pkg/apperrors"
	"github.com/rs/zerolog"
)

// replyTemperature is used for response synthesis, where some variation is
// wanted; intent extraction runs at the configured (low) temperature.
const (
	replyTemperature = 0.7
	replyMaxTokens   = 1000
)

// Client talks to an OpenAI-compatible chat endpoint. It implements the
// collaborator interface of the agent service: intent extraction and
// response synthesis.
type Client struct {
	api         *openai.Client
	model       string
	temperature float32
	maxTokens   int
	logger      zerolog.Logger
}

// NewClient creates a collaborator client from the AI configuration section.
func NewClient(cfg *config.Config, logger zerolog.Logger) *Client {
	clientConfig := openai.DefaultConfig(cfg.AI.APIKey)
	clientConfig.BaseURL = cfg.AI.BaseURL

	return &Client{
		api:         openai.NewClientWithConfig(clientConfig),
		model:       cfg.AI.Model,
		temperature: float32(cfg.AI.Temperature),
		maxTokens:   cfg.AI.MaxTokens,
		logger:      logger,
	}
}

// InferIntent classifies a student message into a typed intent.
func (c *Client) InferIntent(ctx context.Context, message string) (*dto.Intent, error) {
	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       c.model,
		Temperature: c.temperature,
		MaxTokens:   c.maxTokens,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: intentSystemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: message},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("%w: chat completion: %v", apperrors.ErrCollaborator, err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("%w: empty completion", apperrors.ErrCollaborator)
	}

	raw := resp.Choices[0].Message.Content
	payload, ok := extractJSON(raw)
	if !ok {
		c.logger.Warn().Str("content", raw).Msg("No JSON object in intent completion")
		return nil, fmt.Errorf("%w: no JSON object in completion", apperrors.ErrCollaborator)
	}

	var intent dto.Intent
	if err := json.Unmarshal([]byte(payload), &intent); err != nil {
		c.logger.Warn().Err(err).Str("content", payload).Msg("Malformed intent JSON")
		return nil, fmt.Errorf("%w: malformed intent JSON: %v", apperrors.ErrCollaborator, err)
	}

	c.logger.Debug().
		Str("action", string(intent.Action)).
		Float64("confidence", intent.Confidence).
		Msg("Intent inferred")

	return &intent, nil
}

// GenerateReply phrases the structured operation results as a short reply.
func (c *Client) GenerateReply(ctx context.Context, intent *dto.Intent, results interface{}, studentCtx *dto.StudentContext) (string, error) {
	payload, err := json.Marshal(map[string]interface{}{
		"intention": intent,
		"resultats": results,
		"etudiant":  studentCtx,
	})
	if err != nil {
		return "", fmt.Errorf("%w: marshaling results: %v", apperrors.ErrCollaborator, err)
	}

	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       c.model,
		Temperature: replyTemperature,
		MaxTokens:   replyMaxTokens,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: replySystemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: string(payload)},
		},
	})
	if err != nil {
		return "", fmt.Errorf("%w: chat completion: %v", apperrors.ErrCollaborator, err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("%w: empty completion", apperrors.ErrCollaborator)
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

// HealthCheck verifies that the endpoint answers at all.
func (c *Client) HealthCheck(ctx context.Context) error {
	if _, err := c.api.ListModels(ctx); err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrCollaborator, err)
	}
	return nil
}

// extractJSON returns the outermost JSON object embedded in s. Models often
// wrap their JSON in prose or markdown fences.
func extractJSON(s string) (string, bool) {
	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start == -1 || end <= start {
		return "", false
	}
	return s[start : end+1], true
}
