package ai

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"google.golang.org/genai"

	"tradepulse/internal/util"
)

// Free-tier Gemini quota headroom.
const requestsPerMinute = 15

// Compile-time interface check.
var _ Analyst = (*GeminiAnalyst)(nil)

// GeminiAnalyst implements Analyst against the Gemini API.
type GeminiAnalyst struct {
	client  *genai.Client
	model   string
	limiter *util.RateLimiter
	log     *slog.Logger
}

// NewGeminiAnalyst creates an analyst using the given API key and model id.
// An empty key returns ErrNoAPIKey so the caller can run without AI replies.
func NewGeminiAnalyst(ctx context.Context, apiKey, model string, log *slog.Logger) (*GeminiAnalyst, error) {
	if apiKey == "" {
		return nil, ErrNoAPIKey
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("ai: creating client: %w", err)
	}
	return &GeminiAnalyst{
		client:  client,
		model:   model,
		limiter: util.NewRateLimiter(requestsPerMinute),
		log:     log,
	}, nil
}

// generate runs one rate-limited generation request, retrying transient
// failures before giving up.
func (a *GeminiAnalyst) generate(ctx context.Context, contents []*genai.Content, cfg *genai.GenerateContentConfig) (string, error) {
	if err := a.limiter.Wait(ctx); err != nil {
		return "", err
	}
	var text string
	err := util.Retry(ctx, 2, 500*time.Millisecond, func() error {
		resp, err := a.client.Models.GenerateContent(ctx, a.model, contents, cfg)
		if err != nil {
			return err
		}
		text = resp.Text()
		return nil
	})
	return text, err
}

// AnalyzeQuery sends a market question and returns the reply text. Errors
// propagate to the caller, which substitutes the chat fallback message.
func (a *GeminiAnalyst) AnalyzeQuery(ctx context.Context, query string) (string, error) {
	text, err := a.generate(ctx,
		genai.Text(queryPrompt(query)),
		&genai.GenerateContentConfig{
			SystemInstruction: genai.NewContentFromText(systemInstruction, genai.RoleUser),
		})
	if err != nil {
		a.log.Warn("analyst query failed", "error", err)
		return "", fmt.Errorf("ai: analyze query: %w", err)
	}
	return text, nil
}

// AnalyzePostImage sends inline image bytes plus a prompt and returns the
// reply text.
func (a *GeminiAnalyst) AnalyzePostImage(ctx context.Context, image []byte, mimeType, prompt string) (string, error) {
	parts := []*genai.Part{
		genai.NewPartFromBytes(image, mimeType),
		genai.NewPartFromText(imagePrompt(prompt)),
	}
	text, err := a.generate(ctx,
		[]*genai.Content{genai.NewContentFromParts(parts, genai.RoleUser)},
		nil)
	if err != nil {
		a.log.Warn("analyst image query failed", "error", err)
		return "", fmt.Errorf("ai: analyze image: %w", err)
	}
	return text, nil
}
