// Package ai wraps the external generative-language service consulted by the
// chat view. The service is a black box: one request in, one text result or
// one failure out. Callers stub the Analyst interface in tests.
package ai

import (
	"context"
	"errors"
	"fmt"
)

// ErrNoAPIKey is returned when no collaborator credential is configured.
// Chat degrades to fallback replies; the client never crashes over it.
var ErrNoAPIKey = errors.New("ai: no API key configured")

// Analyst is the narrow contract of the AI collaborator. Each query is sent
// without prior transcript history.
type Analyst interface {
	// AnalyzeQuery sends a market question and returns the reply text.
	AnalyzeQuery(ctx context.Context, query string) (string, error)

	// AnalyzePostImage sends inline image bytes plus a prompt and returns
	// the reply text.
	AnalyzePostImage(ctx context.Context, image []byte, mimeType, prompt string) (string, error)
}

const systemInstruction = "You are the Multi Signal Hub AI Assistant. Your goal is to provide expert financial insights while reminding users that trading involves risk."

func queryPrompt(query string) string {
	return fmt.Sprintf("As a professional financial analyst specializing in Forex, Crypto, and Betting, analyze the following user query: %q. Provide a concise, professional opinion, potential support/resistance levels if applicable, and a sentiment score from 1-10.", query)
}

func imagePrompt(prompt string) string {
	return "Analyze this chart or financial image for the Multi Signal Hub community. " + prompt
}
