package segment

import (
	"context"
	"strings"
)

// summaryLimit is how much of the section text the local summary keeps.
const summaryLimit = 100

// emphasisWords mark sentences worth surfacing as key points.
var emphasisWords = []string{
	"important", "key", "critical", "note that",
	"remember", "focus on", "main", "primary",
}

// localEnricher is the deterministic, side-effect-free fallback used when
// no text-understanding model is configured or reachable.
type localEnricher struct{}

// NewLocalEnricher creates the pure-local Enricher variant.
func NewLocalEnricher() Enricher {
	return newLocalEnricher()
}

func newLocalEnricher() *localEnricher {
	return &localEnricher{}
}

// Summarize returns the first 100 characters of the text.
func (e *localEnricher) Summarize(ctx context.Context, text string) (string, error) {
	runes := []rune(text)
	if len(runes) <= summaryLimit {
		return text, nil
	}
	return string(runes[:summaryLimit]) + "...", nil
}

// ExtractKeyPoints returns sentences containing an emphasis word, or the
// first maxPoints sentences when none match.
func (e *localEnricher) ExtractKeyPoints(ctx context.Context, text string, maxPoints int) ([]string, error) {
	sentences := splitSentences(text)

	var points []string
	for _, sentence := range sentences {
		if len(points) >= maxPoints {
			break
		}
		lower := strings.ToLower(sentence)
		for _, word := range emphasisWords {
			if strings.Contains(lower, word) {
				points = append(points, sentence)
				break
			}
		}
	}

	if len(points) == 0 {
		for _, sentence := range sentences {
			if len(points) >= maxPoints {
				break
			}
			points = append(points, sentence)
		}
	}

	return points, nil
}

func splitSentences(text string) []string {
	var sentences []string
	for _, part := range strings.Split(text, ". ") {
		part = strings.TrimSpace(part)
		if part != "" {
			sentences = append(sentences, part)
		}
	}
	return sentences
}
