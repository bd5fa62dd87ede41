package generativeAI

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"google.golang.org/genai"

	"github.com/FACorreiaa/local-wander/internal/types"
)

const (
	maxRetries       = 2
	initialBackoff   = 500 * time.Millisecond
	apiKeyErrorToken = "API key"
)

// AIClient wraps the Gemini client behind a single GenerateContent call. The
// rest of the pipeline treats the provider as an opaque
// (prompt, schema) -> JSON function.
type AIClient struct {
	client *genai.Client
	model  string
}

// NewAIClient creates a Gemini-backed client. Fails with
// types.ErrAPIKeyMissing when no credential is configured so callers can
// surface the configuration error instead of a generic failure.
func NewAIClient(ctx context.Context, apiKey, model string) (*AIClient, error) {
	ctx, span := otel.Tracer("GenerativeAI").Start(ctx, "NewAIClient")
	defer span.End()

	if apiKey == "" {
		span.SetStatus(codes.Error, "API key not set")
		return nil, types.ErrAPIKeyMissing
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to create Gemini client")
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	span.SetStatus(codes.Ok, "AI client created successfully")
	return &AIClient{client: client, model: model}, nil
}

// GenerateContent sends the prompt and returns the raw response text.
// Transient provider failures are retried up to maxRetries times with
// doubling backoff; authentication failures are classified as
// types.ErrInvalidAPIKey and never retried.
func (ai *AIClient) GenerateContent(ctx context.Context, prompt string, config *genai.GenerateContentConfig) (string, error) {
	ctx, span := otel.Tracer("GenerativeAI").Start(ctx, "GenerateContent", trace.WithAttributes(
		attribute.Int("prompt.length", len(prompt)),
		attribute.String("model", ai.model),
	))
	defer span.End()

	var lastErr error
	backoff := initialBackoff
	for attempt := 0; attempt <= maxRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				span.SetStatus(codes.Error, "Context cancelled while waiting to retry")
				return "", ctx.Err()
			case <-time.After(backoff):
			}
			backoff *= 2
		}

		result, err := ai.client.Models.GenerateContent(ctx, ai.model, genai.Text(prompt), config)
		if err != nil {
			if isAuthError(err) {
				span.RecordError(err)
				span.SetStatus(codes.Error, "Provider rejected API key")
				return "", fmt.Errorf("%w: %s", types.ErrInvalidAPIKey, err.Error())
			}
			lastErr = err
			span.AddEvent("generate attempt failed", trace.WithAttributes(
				attribute.Int("attempt", attempt),
			))
			continue
		}

		responseText := result.Text()
		span.SetAttributes(attribute.Int("response.length", len(responseText)))
		span.SetStatus(codes.Ok, "Content generated successfully")
		return responseText, nil
	}

	span.RecordError(lastErr)
	span.SetStatus(codes.Error, "Failed to generate content")
	return "", fmt.Errorf("failed to generate content: %w", lastErr)
}

// isAuthError reports whether the provider error describes an API key
// problem. The provider does not expose a typed auth error, so the message is
// sniffed the same way the product always has.
func isAuthError(err error) bool {
	return strings.Contains(err.Error(), apiKeyErrorToken)
}
