package summarizer

import (
	"context"
	"errors"
	"sync"
	"testing"

	"google.golang.org/genai"

	"github.com/nguyentantai21042004/caption-prose/internal/config"
	"github.com/nguyentantai21042004/caption-prose/internal/logger"
)

func TestPlaceholder(t *testing.T) {
	tests := []struct {
		name   string
		prompt string
		want   string
	}{
		{"empty prompt", "", ""},
		{"prompt quoted", "Summarise this", `Summary based on prompt: "Summarise this"`},
	}

	s := NewPlaceholder()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := s.Summarize(context.Background(), "Hello world", tt.prompt)
			if err != nil {
				t.Fatalf("Summarize() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Summarize() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		cfg     config.SummarizerConfig
		wantErr bool
	}{
		{"default", config.SummarizerConfig{}, false},
		{"placeholder", config.SummarizerConfig{Provider: "placeholder"}, false},
		{"gemini", config.SummarizerConfig{Provider: "gemini", APIKeys: []string{"k"}}, false},
		{"gemini without keys", config.SummarizerConfig{Provider: "gemini"}, true},
		{"unknown", config.SummarizerConfig{Provider: "openai"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := New(tt.cfg, logger.Discard())
			if (err != nil) != tt.wantErr {
				t.Fatalf("New() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && s == nil {
				t.Error("New() returned nil")
			}
		})
	}
}

func TestGeminiEmptyPromptSkipsCall(t *testing.T) {
	s := NewGemini([]string{"unused"}, "", logger.Discard())
	got, err := s.Summarize(context.Background(), "doc", "")
	if err != nil || got != "" {
		t.Errorf("Summarize() = %q, %v; want empty, nil", got, err)
	}
}

func TestRotateKey(t *testing.T) {
	s := NewGemini([]string{"a", "b", "c"}, "m", logger.Discard()).(*implGemini)
	for _, want := range []int{1, 2, 0, 1} {
		s.rotateKey()
		if s.currentKey != want {
			t.Errorf("currentKey = %d, want %d", s.currentKey, want)
		}
	}
}

func TestGeminiWithoutKeys(t *testing.T) {
	s := NewGemini(nil, "", logger.Discard())
	_, err := s.Summarize(context.Background(), "doc", "Summarise")
	if !errors.Is(err, ErrNoAPIKeys) {
		t.Errorf("Summarize() error = %v, want ErrNoAPIKeys", err)
	}
}

func TestRotateKeyConcurrent(t *testing.T) {
	s := NewGemini([]string{"a", "b", "c"}, "m", logger.Discard()).(*implGemini)

	var wg sync.WaitGroup
	for range 30 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.key()
			s.rotateKey()
		}()
	}
	wg.Wait()

	if idx, key := s.key(); idx != 0 || key != "a" {
		t.Errorf("key() = %d, %q; want 0, %q", idx, key, "a")
	}
}

func TestIsRateLimited(t *testing.T) {
	tests := []struct {
		err  error
		want bool
	}{
		{errors.New("Error 429: too many requests"), true},
		{errors.New("quota exceeded"), true},
		{errors.New("RESOURCE_EXHAUSTED"), true},
		{errors.New("invalid argument"), false},
	}

	for _, tt := range tests {
		if got := isRateLimited(tt.err); got != tt.want {
			t.Errorf("isRateLimited(%v) = %v, want %v", tt.err, got, tt.want)
		}
	}
}

func TestResponseText(t *testing.T) {
	resp := &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{
			Content: &genai.Content{Parts: []*genai.Part{{Text: "Key "}, {Text: "points"}}},
		}},
	}
	if got := responseText(resp); got != "Key points" {
		t.Errorf("responseText() = %q, want %q", got, "Key points")
	}
	if got := responseText(nil); got != "" {
		t.Errorf("responseText(nil) = %q, want empty", got)
	}
}
