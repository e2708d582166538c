package segment

import (
	"github.com/nguyentantai21042004/meeting-captioner/internal/config"
	"github.com/nguyentantai21042004/meeting-captioner/internal/logger"
)

type implSegmenter struct {
	pauseThreshold     float64
	maxSectionDuration float64
	maxKeyPoints       int
	enricher           Enricher
	logger             logger.Logger
}

// New creates a Segmenter. The enricher is chosen at construction:
// Gemini-backed when API keys are configured, local otherwise.
func New(cfg config.SegmenterConfig, enricher Enricher, log logger.Logger) Segmenter {
	return &implSegmenter{
		pauseThreshold:     cfg.PauseThreshold,
		maxSectionDuration: cfg.MaxSectionDuration,
		maxKeyPoints:       cfg.MaxKeyPoints,
		enricher:           enricher,
		logger:             log,
	}
}
