package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/nguyentantai21042004/meeting-captioner/internal/caption"
	"github.com/nguyentantai21042004/meeting-captioner/internal/jobs"
	"github.com/nguyentantai21042004/meeting-captioner/internal/report"
	"github.com/nguyentantai21042004/meeting-captioner/internal/scene"
	"github.com/nguyentantai21042004/meeting-captioner/internal/session"
	"github.com/nguyentantai21042004/meeting-captioner/internal/transcript"
	"github.com/nguyentantai21042004/meeting-captioner/internal/video"
)

// Run executes every pipeline stage for one job. Any stage error maps
// to a failed terminal state naming the stage; the session directory
// and whatever artifacts preceded the failure are left in place.
func (o *implOrchestrator) Run(ctx context.Context, jobID, source string) Result {
	startTime := time.Now()

	o.logger.Info(ctx, "========================================")
	o.logger.Info(ctx, "Starting pipeline for: %s", source)
	o.logger.Info(ctx, "========================================")

	sess, err := session.New(o.cfg.Paths.Output, sessionName(jobID), o.logger)
	if err != nil {
		return o.fail(ctx, jobID, "", "create session", err)
	}
	result := Result{OutputDir: sess.Dir()}

	o.progress(ctx, jobID, 0, "Starting processing...")

	// Loading
	o.progress(ctx, jobID, 5, "Loading video...")
	videoPath, meta, err := o.media.Load(ctx, source)
	if err != nil {
		return o.fail(ctx, jobID, sess.Dir(), "load video", err)
	}
	o.progress(ctx, jobID, 10, fmt.Sprintf("Video loaded: %s", filepath.Base(videoPath)))
	if o.cancelled(ctx, jobID, sess.Dir(), &result) {
		return result
	}

	// Extracting: audio track plus scene detection off the same video.
	o.progress(ctx, jobID, 15, "Processing video...")
	audioPath, err := o.media.ExtractAudio(ctx, videoPath, sess.AudioPath())
	if err != nil {
		return o.fail(ctx, jobID, sess.Dir(), "extract audio", err)
	}

	scenes, err := o.detectScenes(ctx, sess, videoPath, meta)
	if err != nil {
		return o.fail(ctx, jobID, sess.Dir(), "detect scenes", err)
	}
	o.progress(ctx, jobID, 30, fmt.Sprintf("Detected %d scenes", len(scenes)))
	if o.cancelled(ctx, jobID, sess.Dir(), &result) {
		return result
	}

	// Transcribing
	o.progress(ctx, jobID, 35, "Transcribing audio...")
	fragments, err := o.transcriber.Transcribe(ctx, audioPath)
	if err != nil {
		return o.fail(ctx, jobID, sess.Dir(), "transcribe audio", err)
	}
	fullTranscript := transcript.FullText(fragments)
	if err := os.WriteFile(sess.TranscriptPath(), []byte(fullTranscript), 0644); err != nil {
		o.logger.Warn(ctx, "Failed to write transcript text: %v", err)
	}
	o.progress(ctx, jobID, 50, fmt.Sprintf("Transcribed %d segments", len(fragments)))
	if o.cancelled(ctx, jobID, sess.Dir(), &result) {
		return result
	}

	// Segmenting
	o.progress(ctx, jobID, 55, "Segmenting transcript...")
	sections, err := o.segmenter.Segment(ctx, fragments)
	if err != nil {
		return o.fail(ctx, jobID, sess.Dir(), "segment transcript", err)
	}
	o.progress(ctx, jobID, 60, fmt.Sprintf("Created %d sections", len(sections)))

	// Captioning
	o.progress(ctx, jobID, 65, "Generating captions...")
	captions := caption.FromFragments(fragments)
	srtBytes := caption.RenderSRT(captions)
	srtPath := sess.CaptionPath("srt")
	if err := os.WriteFile(srtPath, srtBytes, 0644); err != nil {
		return o.fail(ctx, jobID, sess.Dir(), "write captions", err)
	}
	o.progress(ctx, jobID, 70, "Captions generated")
	if o.cancelled(ctx, jobID, sess.Dir(), &result) {
		return result
	}

	// Rendering, skipped when burn-in is disabled.
	if o.cfg.FFmpeg.BurnEnabled {
		o.progress(ctx, jobID, 75, "Burning captions into video...")
		base := filepath.Base(videoPath)
		stem := strings.TrimSuffix(base, filepath.Ext(base))
		outputPath, err := o.renderer.BurnIn(ctx, videoPath, srtBytes, sess.VideosDir(), stem+"_captioned.mp4")
		if err != nil {
			return o.fail(ctx, jobID, sess.Dir(), "burn captions", err)
		}
		result.CaptionedVideoPath = outputPath
		o.progress(ctx, jobID, 80, "Captioned video created")
	} else {
		o.progress(ctx, jobID, 80, "Skipped caption burning (use SRT file for playback)")
	}

	// Reporting
	o.progress(ctx, jobID, 82, "Building report...")
	rep := report.Build("", videoPath, meta.Duration, scenes, sections, fullTranscript, map[string]any{
		"fps":         meta.FPS,
		"width":       meta.Width,
		"height":      meta.Height,
		"frame_count": meta.FrameCount,
		"has_audio":   meta.HasAudio,
	})
	o.progress(ctx, jobID, 85, "Report built")

	// Exporting: JSON is the master artifact; text and docx render from
	// the same report.
	o.progress(ctx, jobID, 88, "Exporting report...")
	result.ReportPaths = map[string]string{}

	jsonPath := sess.ReportPath("report", "json")
	if err := report.ExportJSON(rep, jsonPath); err != nil {
		return o.fail(ctx, jobID, sess.Dir(), "export report", err)
	}
	result.ReportPaths["json"] = jsonPath
	o.progress(ctx, jobID, 90, "Master report saved (JSON)")

	txtPath := sess.ReportPath("report", "txt")
	if err := report.ExportText(rep, txtPath); err != nil {
		o.logger.Warn(ctx, "Text report export failed: %v", err)
	} else {
		result.ReportPaths["txt"] = txtPath
	}

	docxPath := sess.ReportPath("report", "docx")
	if err := report.ExportDOCX(rep, docxPath); err != nil {
		o.logger.Warn(ctx, "DOCX report export failed: %v", err)
	} else {
		result.ReportPaths["docx"] = docxPath
	}

	// Finalizing
	o.progress(ctx, jobID, 98, "Finalizing...")
	if _, err := sess.WriteManifest(); err != nil {
		o.logger.Warn(ctx, "Failed to write manifest: %v", err)
	}

	result.Success = true
	o.registry.CreateOrUpdate(jobID, jobs.StatusCompleted, 100, "Processing complete!", result)

	o.logger.Info(ctx, "========================================")
	o.logger.Info(ctx, "Pipeline completed successfully!")
	o.logger.Info(ctx, "Outputs in: %s", sess.Dir())
	o.logger.Info(ctx, "Processing time: %s", time.Since(startTime))
	o.logger.Info(ctx, "========================================")

	return result
}

// detectScenes decodes the downscaled grayscale frame stream and runs
// boundary detection over it.
func (o *implOrchestrator) detectScenes(ctx context.Context, sess session.Session, videoPath string, meta *video.Metadata) ([]scene.Scene, error) {
	frames, err := o.media.OpenFrames(ctx, videoPath, video.FrameOptions{
		Width:     o.cfg.Scene.FrameWidth,
		Height:    o.cfg.Scene.FrameHeight,
		SampleFPS: o.cfg.Scene.SampleFPS,
	})
	if err != nil {
		return nil, err
	}
	defer frames.Close()

	var saver scene.FrameSaver
	if o.cfg.Scene.SaveFrames {
		saver = sess.SaveFrame
	}

	detector := scene.NewDetector(o.cfg.Scene.Threshold, o.cfg.Scene.MinSceneDuration, saver, o.logger)
	return detector.DetectScenes(ctx, frames, meta.Duration)
}

// progress records a non-decreasing checkpoint in the registry. The
// registry clamps regressions, so a stale write can never move a job
// backwards.
func (o *implOrchestrator) progress(ctx context.Context, jobID string, pct int, msg string) {
	o.logger.Info(ctx, "[%3d%%] %s", pct, msg)
	o.registry.CreateOrUpdate(jobID, jobs.StatusProcessing, pct, msg, nil)
}

// fail marks the job failed, naming the stage. Partial artifacts under
// outputDir are preserved.
func (o *implOrchestrator) fail(ctx context.Context, jobID, outputDir, stage string, err error) Result {
	msg := fmt.Sprintf("%s: %v", stage, err)
	o.logger.Error(ctx, "Pipeline failed: %s", msg)
	o.registry.Fail(jobID, msg)
	return Result{Success: false, OutputDir: outputDir, Err: msg}
}

// cancelled honors a cooperative cancellation request at a stage
// boundary. In-flight external calls are never interrupted.
func (o *implOrchestrator) cancelled(ctx context.Context, jobID, outputDir string, result *Result) bool {
	if !o.registry.CancelRequested(jobID) {
		return false
	}
	o.logger.Info(ctx, "Job %s cancelled", jobID)
	o.registry.CreateOrUpdate(jobID, jobs.StatusCancelled, 0, "Cancelled by request", nil)
	result.Success = false
	result.OutputDir = outputDir
	result.Err = "cancelled by request"
	return true
}

func sessionName(jobID string) string {
	if jobID == "" {
		return ""
	}
	return "session_" + jobID
}
