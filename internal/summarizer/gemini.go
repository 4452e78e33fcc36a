package summarizer

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

// ErrNoAPIKeys is returned by a Gemini summarizer built without keys.
var ErrNoAPIKeys = errors.New("no Gemini API keys configured")

const summaryTemplate = `%s

Document:
---
%s
---`

// Summarize sends the prompt and document to Gemini.
// Rotates API keys on 429 / quota errors.
func (s *implGemini) Summarize(ctx context.Context, document, prompt string) (string, error) {
	if prompt == "" {
		return "", nil
	}
	if len(s.apiKeys) == 0 {
		return "", ErrNoAPIKeys
	}
	content := fmt.Sprintf(summaryTemplate, prompt, document)

	attempts := len(s.apiKeys)
	var lastErr error

	for range attempts {
		idx, key := s.key()

		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  key,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			lastErr = fmt.Errorf("create client: %w", err)
			s.rotateKey()
			continue
		}

		result, err := client.Models.GenerateContent(ctx, s.model, genai.Text(content), nil)
		if err != nil {
			if isRateLimited(err) {
				s.logger.Warn(ctx, "Key %d rate limited, rotating...", idx+1)
				s.rotateKey()
				lastErr = err
				continue
			}
			return "", fmt.Errorf("generate content: %w", err)
		}

		if text := responseText(result); text != "" {
			return strings.TrimSpace(text), nil
		}
		return "", fmt.Errorf("empty response from Gemini")
	}

	return "", fmt.Errorf("all API keys exhausted: %w", lastErr)
}

// key returns the active key and its index. Concurrent conversions share it.
func (s *implGemini) key() (int, string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.currentKey, s.apiKeys[s.currentKey]
}

func (s *implGemini) rotateKey() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.currentKey = (s.currentKey + 1) % len(s.apiKeys)
}

func isRateLimited(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "429") || strings.Contains(msg, "quota") || strings.Contains(msg, "RESOURCE_EXHAUSTED")
}

func responseText(result *genai.GenerateContentResponse) string {
	if result == nil || len(result.Candidates) == 0 || result.Candidates[0].Content == nil {
		return ""
	}
	var sb strings.Builder
	for _, part := range result.Candidates[0].Content.Parts {
		if part != nil && part.Text != "" {
			sb.WriteString(part.Text)
		}
	}
	return sb.String()
}
