package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/nguyentantai21042004/meeting-captioner/internal/caption"
	"github.com/nguyentantai21042004/meeting-captioner/internal/config"
	"github.com/nguyentantai21042004/meeting-captioner/internal/jobs"
	"github.com/nguyentantai21042004/meeting-captioner/internal/logger"
	"github.com/nguyentantai21042004/meeting-captioner/internal/pipeline"
	"github.com/nguyentantai21042004/meeting-captioner/internal/segment"
	"github.com/nguyentantai21042004/meeting-captioner/internal/transcript"
	"github.com/nguyentantai21042004/meeting-captioner/internal/video"
	"github.com/nguyentantai21042004/meeting-captioner/internal/watcher"
	"github.com/nguyentantai21042004/meeting-captioner/pkg/executor"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to configuration file")
	flag.Parse()

	ctx := context.Background()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Logging.Level)
	log.Info(ctx, "========================================")
	log.Info(ctx, "Meeting Video Captioning Pipeline")
	log.Info(ctx, "========================================")
	log.Info(ctx, "System: %s/%s", runtime.GOOS, runtime.GOARCH)
	log.Info(ctx, "CPU Cores: %d", runtime.NumCPU())
	log.Info(ctx, "Max Concurrent Processing: %d", cfg.Performance.MaxConcurrent)

	if err := ensureDirectories(cfg); err != nil {
		log.Error(ctx, "Failed to create directories: %v", err)
		os.Exit(1)
	}

	exec := executor.New()
	media := video.New(cfg.FFmpeg, exec, log)
	transcriber := transcript.New(cfg.Whisper, exec, log)
	segmenter := segment.New(cfg.Segmenter, chooseEnricher(ctx, cfg, log), log)
	renderer := caption.New(cfg.FFmpeg, cfg.Paths.Temp, exec, log)
	registry := jobs.NewRegistry()
	orch := pipeline.New(*cfg, media, transcriber, segmenter, renderer, registry, log)

	submit := func(ctx context.Context, filePath string) error {
		job := registry.Create()
		log.Info(ctx, "Job %s accepted for %s", job.ID, filePath)

		result := orch.Run(ctx, job.ID, filePath)
		if !result.Success {
			return fmt.Errorf("job %s failed: %s", job.ID, result.Err)
		}
		return nil
	}

	w, err := watcher.New(cfg.Paths.Input, submit, log, cfg.Performance.MaxConcurrent)
	if err != nil {
		log.Error(ctx, "Failed to create watcher: %v", err)
		os.Exit(1)
	}
	defer w.Stop()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	errChan := make(chan error, 1)
	go func() {
		if err := w.Start(ctx); err != nil && err != context.Canceled {
			errChan <- err
		}
	}()

	log.Info(ctx, "========================================")
	log.Info(ctx, "Pipeline is ready!")
	log.Info(ctx, "Monitoring: %s", cfg.Paths.Input)
	log.Info(ctx, "Output: %s", cfg.Paths.Output)
	log.Info(ctx, "Burn-in: %v", cfg.FFmpeg.BurnEnabled)
	log.Info(ctx, "Press Ctrl+C to stop")
	log.Info(ctx, "========================================")

	select {
	case <-sigChan:
		log.Info(ctx, "Shutdown signal received")
	case err := <-errChan:
		log.Error(ctx, "Watcher error: %v", err)
	}

	log.Info(ctx, "Shutting down gracefully...")
	cancel()

	log.Info(ctx, "Pipeline stopped")
}

// chooseEnricher picks the Gemini-backed enricher when API keys are
// configured, the deterministic local one otherwise.
func chooseEnricher(ctx context.Context, cfg *config.Config, log logger.Logger) segment.Enricher {
	if len(cfg.Gemini.APIKeys) > 0 {
		log.Info(ctx, "Section enrichment: Gemini (%s, %d keys)", cfg.Gemini.Model, len(cfg.Gemini.APIKeys))
		return segment.NewGeminiEnricher(cfg.Gemini, log)
	}
	log.Info(ctx, "Section enrichment: local fallback")
	return segment.NewLocalEnricher()
}

// ensureDirectories creates required directories if they don't exist
func ensureDirectories(cfg *config.Config) error {
	dirs := []string{
		cfg.Paths.Input,
		cfg.Paths.Output,
		cfg.Paths.Temp,
	}

	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create directory %s: %w", dir, err)
		}
	}

	return nil
}
