package segment

import (
	"context"

	"github.com/nguyentantai21042004/meeting-captioner/internal/transcript"
)

// Segment groups the fragments into sections, then attaches a summary
// and key points to each. Enrichment failures fall back to the local
// deterministic extractor and never fail the run.
func (s *implSegmenter) Segment(ctx context.Context, fragments []transcript.Fragment) ([]Section, error) {
	s.logger.Info(ctx, "Segmenting %d fragments by pauses", len(fragments))

	sections := SegmentByPauses(fragments, s.pauseThreshold, s.maxSectionDuration)
	s.logger.Info(ctx, "Created %d sections", len(sections))

	fallback := newLocalEnricher()
	for i := range sections {
		text := sections[i].Text()

		summary, err := s.enricher.Summarize(ctx, text)
		if err != nil {
			s.logger.Warn(ctx, "Summarizer unavailable for section %d, using local fallback: %v",
				sections[i].Number, err)
			summary, _ = fallback.Summarize(ctx, text)
		}
		sections[i].Summary = summary

		points, err := s.enricher.ExtractKeyPoints(ctx, text, s.maxKeyPoints)
		if err != nil {
			s.logger.Warn(ctx, "Key point extraction unavailable for section %d, using local fallback: %v",
				sections[i].Number, err)
			points, _ = fallback.ExtractKeyPoints(ctx, text, s.maxKeyPoints)
		}
		sections[i].KeyPoints = points
	}

	return sections, nil
}

// SegmentByPauses splits an ordered fragment sequence into sections.
// After appending fragment i, the current section closes when the gap to
// fragment i+1 reaches pauseThreshold, when the section has run for
// maxSectionDuration, or when i is the last fragment. Zero fragments
// yield zero sections.
func SegmentByPauses(fragments []transcript.Fragment, pauseThreshold, maxSectionDuration float64) []Section {
	if len(fragments) == 0 {
		return nil
	}

	var sections []Section
	var current []transcript.Fragment
	sectionStart := fragments[0].StartTime

	for i, frag := range fragments {
		current = append(current, frag)

		shouldBreak := i == len(fragments)-1
		if !shouldBreak {
			if fragments[i+1].StartTime-frag.EndTime >= pauseThreshold {
				shouldBreak = true
			}
			if frag.EndTime-sectionStart >= maxSectionDuration {
				shouldBreak = true
			}
		}

		if shouldBreak {
			sections = append(sections, Section{
				Number:    len(sections) + 1,
				StartTime: sectionStart,
				EndTime:   current[len(current)-1].EndTime,
				Fragments: current,
			})
			current = nil
			if i < len(fragments)-1 {
				sectionStart = fragments[i+1].StartTime
			}
		}
	}

	return sections
}
