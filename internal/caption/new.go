package caption

import (
	"github.com/nguyentantai21042004/meeting-captioner/internal/config"
	"github.com/nguyentantai21042004/meeting-captioner/internal/logger"
	"github.com/nguyentantai21042004/meeting-captioner/pkg/executor"
)

type implRenderer struct {
	cfg      config.FFmpegConfig
	tempRoot string
	executor executor.Executor
	logger   logger.Logger
}

// New creates a Renderer. tempRoot hosts the disposable burn-in working
// directories; empty means the system temp dir.
func New(cfg config.FFmpegConfig, tempRoot string, exec executor.Executor, log logger.Logger) Renderer {
	return &implRenderer{
		cfg:      cfg,
		tempRoot: tempRoot,
		executor: exec,
		logger:   log,
	}
}
