package pipeline

import (
	"github.com/nguyentantai21042004/meeting-captioner/internal/caption"
	"github.com/nguyentantai21042004/meeting-captioner/internal/config"
	"github.com/nguyentantai21042004/meeting-captioner/internal/jobs"
	"github.com/nguyentantai21042004/meeting-captioner/internal/logger"
	"github.com/nguyentantai21042004/meeting-captioner/internal/segment"
	"github.com/nguyentantai21042004/meeting-captioner/internal/transcript"
	"github.com/nguyentantai21042004/meeting-captioner/internal/video"
)

type implOrchestrator struct {
	cfg         config.Config
	media       video.Media
	transcriber transcript.Transcriber
	segmenter   segment.Segmenter
	renderer    caption.Renderer
	registry    jobs.Registry
	logger      logger.Logger
}

// New creates an Orchestrator with all stage collaborators injected.
func New(
	cfg config.Config,
	media video.Media,
	transcriber transcript.Transcriber,
	segmenter segment.Segmenter,
	renderer caption.Renderer,
	registry jobs.Registry,
	log logger.Logger,
) Orchestrator {
	return &implOrchestrator{
		cfg:         cfg,
		media:       media,
		transcriber: transcriber,
		segmenter:   segmenter,
		renderer:    renderer,
		registry:    registry,
		logger:      log,
	}
}
