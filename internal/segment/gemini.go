package segment

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"google.golang.org/genai"

	"github.com/nguyentantai21042004/meeting-captioner/internal/config"
	"github.com/nguyentantai21042004/meeting-captioner/internal/logger"
)

const summaryPrompt = `Summarize the following meeting transcript segment in 2-3 concise sentences.
Focus on the main topics, key information, and important points discussed.

Transcript:
---
%s
---

Summary:`

const keyPointsPrompt = `Extract the %d most important key points from this meeting transcript segment.
Focus on:
- Main topics discussed
- Important facts or information
- Action items or decisions

Format as a bulleted list.

Transcript:
---
%s
---

Key Points:`

// geminiEnricher is the model-backed Enricher variant. It rotates
// through the configured API keys on quota errors. One enricher is
// shared by every concurrent job, so the key index is mutex-guarded.
type geminiEnricher struct {
	mu         sync.Mutex
	currentKey int

	apiKeys []string
	model   string
	logger  logger.Logger
}

// NewGeminiEnricher creates a Gemini-backed Enricher.
func NewGeminiEnricher(cfg config.GeminiConfig, log logger.Logger) Enricher {
	return &geminiEnricher{
		apiKeys: cfg.APIKeys,
		model:   cfg.Model,
		logger:  log,
	}
}

func (e *geminiEnricher) Summarize(ctx context.Context, text string) (string, error) {
	out, err := e.generate(ctx, fmt.Sprintf(summaryPrompt, text))
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}

func (e *geminiEnricher) ExtractKeyPoints(ctx context.Context, text string, maxPoints int) ([]string, error) {
	out, err := e.generate(ctx, fmt.Sprintf(keyPointsPrompt, maxPoints, text))
	if err != nil {
		return nil, err
	}

	points := parseBullets(out)
	if len(points) == 0 {
		return nil, fmt.Errorf("no key points in model response")
	}
	if len(points) > maxPoints {
		points = points[:maxPoints]
	}
	return points, nil
}

// generate sends the prompt to Gemini, rotating API keys on quota errors.
func (e *geminiEnricher) generate(ctx context.Context, prompt string) (string, error) {
	if len(e.apiKeys) == 0 {
		return "", fmt.Errorf("no Gemini API keys configured")
	}

	var lastErr error
	for range e.apiKeys {
		key, keyIdx := e.key()

		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  key,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			lastErr = fmt.Errorf("create client: %w", err)
			e.rotateKey()
			continue
		}

		result, err := client.Models.GenerateContent(ctx, e.model, genai.Text(prompt), nil)
		if err != nil {
			errMsg := err.Error()
			if strings.Contains(errMsg, "429") || strings.Contains(errMsg, "quota") || strings.Contains(errMsg, "RESOURCE_EXHAUSTED") {
				e.logger.Warn(ctx, "Key %d rate limited, rotating...", keyIdx+1)
				e.rotateKey()
				lastErr = err
				continue
			}
			return "", fmt.Errorf("generate content: %w", err)
		}

		if result != nil && len(result.Candidates) > 0 && result.Candidates[0].Content != nil {
			var text string
			for _, part := range result.Candidates[0].Content.Parts {
				if part.Text != "" {
					text += part.Text
				}
			}
			return text, nil
		}

		return "", fmt.Errorf("empty response from Gemini")
	}

	return "", fmt.Errorf("all API keys exhausted: %w", lastErr)
}

// key snapshots the current API key and its index.
func (e *geminiEnricher) key() (string, int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.apiKeys[e.currentKey], e.currentKey
}

func (e *geminiEnricher) rotateKey() {
	e.mu.Lock()
	e.currentKey = (e.currentKey + 1) % len(e.apiKeys)
	e.mu.Unlock()
}

// parseBullets strips bullet markers and numbering from the model's
// list-formatted response.
func parseBullets(content string) []string {
	var points []string
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		switch {
		case line == "":
			continue
		case strings.HasPrefix(line, "-"), strings.HasPrefix(line, "*"), strings.HasPrefix(line, "•"):
			line = strings.TrimSpace(strings.TrimLeft(line, "-*•"))
		default:
			// Numbered list: "1. point"
			if before, after, found := strings.Cut(line, "."); found && len(before) <= 2 && isDigits(before) {
				line = strings.TrimSpace(after)
			}
		}
		if line != "" {
			points = append(points, line)
		}
	}
	return points
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
