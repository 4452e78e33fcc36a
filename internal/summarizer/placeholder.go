package summarizer

import "context"

func (s *implPlaceholder) Summarize(ctx context.Context, document, prompt string) (string, error) {
	if prompt == "" {
		return "", nil
	}
	return `Summary based on prompt: "` + prompt + `"`, nil
}
