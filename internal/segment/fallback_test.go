package segment

import (
	"context"
	"strings"
	"testing"
)

func TestLocalSummarizeShortText(t *testing.T) {
	e := NewLocalEnricher()

	got, err := e.Summarize(context.Background(), "Short update.")
	if err != nil {
		t.Fatalf("Summarize() error: %v", err)
	}
	if got != "Short update." {
		t.Errorf("Summarize() = %q, want unmodified text", got)
	}
}

func TestLocalSummarizeTruncates(t *testing.T) {
	e := NewLocalEnricher()
	long := strings.Repeat("meeting notes ", 20)

	got, err := e.Summarize(context.Background(), long)
	if err != nil {
		t.Fatalf("Summarize() error: %v", err)
	}
	if !strings.HasSuffix(got, "...") {
		t.Errorf("Summarize() = %q, want truncated with ellipsis", got)
	}
	if len([]rune(got)) != summaryLimit+3 {
		t.Errorf("Summarize() length = %d, want %d", len([]rune(got)), summaryLimit+3)
	}
}

func TestLocalKeyPointsEmphasisMatch(t *testing.T) {
	e := NewLocalEnricher()
	text := "We discussed budgets. The important takeaway is the deadline. Lunch was good. Remember to file reports."

	points, err := e.ExtractKeyPoints(context.Background(), text, 5)
	if err != nil {
		t.Fatalf("ExtractKeyPoints() error: %v", err)
	}
	if len(points) != 2 {
		t.Fatalf("got %d key points, want 2: %v", len(points), points)
	}
	if !strings.Contains(strings.ToLower(points[0]), "important") {
		t.Errorf("first point = %q", points[0])
	}
}

func TestLocalKeyPointsFallsBackToFirstSentences(t *testing.T) {
	e := NewLocalEnricher()
	text := "First topic. Second topic. Third topic. Fourth topic."

	points, err := e.ExtractKeyPoints(context.Background(), text, 3)
	if err != nil {
		t.Fatalf("ExtractKeyPoints() error: %v", err)
	}
	if len(points) != 3 {
		t.Fatalf("got %d key points, want 3", len(points))
	}
	if points[0] != "First topic" {
		t.Errorf("first point = %q", points[0])
	}
}

func TestLocalEnricherDeterministic(t *testing.T) {
	e := NewLocalEnricher()
	ctx := context.Background()
	text := "The main item is hiring. We also reviewed the key metrics for Q3."

	s1, _ := e.Summarize(ctx, text)
	s2, _ := e.Summarize(ctx, text)
	if s1 != s2 {
		t.Error("Summarize() is not deterministic")
	}

	p1, _ := e.ExtractKeyPoints(ctx, text, 5)
	p2, _ := e.ExtractKeyPoints(ctx, text, 5)
	if len(p1) != len(p2) {
		t.Fatal("ExtractKeyPoints() is not deterministic")
	}
	for i := range p1 {
		if p1[i] != p2[i] {
			t.Error("ExtractKeyPoints() is not deterministic")
		}
	}
}

func TestParseBullets(t *testing.T) {
	content := "- first point\n* second point\n1. third point\n\nplain line"
	points := parseBullets(content)
	want := []string{"first point", "second point", "third point", "plain line"}
	if len(points) != len(want) {
		t.Fatalf("parseBullets() = %v, want %v", points, want)
	}
	for i := range want {
		if points[i] != want[i] {
			t.Errorf("parseBullets()[%d] = %q, want %q", i, points[i], want[i])
		}
	}
}
