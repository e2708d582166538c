package scene

import (
	"context"
	"fmt"
	"io"

	"github.com/nguyentantai21042004/meeting-captioner/internal/logger"
	"github.com/nguyentantai21042004/meeting-captioner/internal/video"
)

// Scene is one maximal interval of visually stable content. Scenes are
// contiguous: each scene's EndTime equals the next scene's StartTime, the
// first starts at 0 and the last ends at the video duration.
type Scene struct {
	Number      int     `json:"scene_number"`
	StartTime   float64 `json:"start_time"`
	EndTime     float64 `json:"end_time"`
	StartFrame  int     `json:"start_frame"`
	EndFrame    int     `json:"end_frame"`
	FramePath   string  `json:"frame_path,omitempty"`
	ChangeScore float64 `json:"change_score"`
	Description string  `json:"description,omitempty"`
}

// Duration returns the scene length in seconds.
func (s Scene) Duration() float64 {
	return s.EndTime - s.StartTime
}

// FrameSaver persists a representative frame and returns its path.
// Invoked at each detected boundary; failures are absorbed.
type FrameSaver func(frame video.Frame) (string, error)

// Detector scans a frame stream and emits ordered, contiguous scenes.
type Detector struct {
	scorer           *Scorer
	threshold        float64
	minSceneDuration float64
	saveFrame        FrameSaver
	logger           logger.Logger
}

// NewDetector creates a scene detector. saveFrame may be nil to skip
// representative-frame persistence.
func NewDetector(threshold, minSceneDuration float64, saveFrame FrameSaver, log logger.Logger) *Detector {
	return &Detector{
		scorer:           NewScorer(),
		threshold:        threshold,
		minSceneDuration: minSceneDuration,
		saveFrame:        saveFrame,
		logger:           log,
	}
}

// DetectScenes consumes the frame stream and returns scenes covering
// [0, duration]. A boundary is only evaluated once minSceneDuration has
// elapsed since the previous one; the first frame never triggers a
// boundary. An empty or single-scene stream yields one scene spanning
// the whole video.
func (d *Detector) DetectScenes(ctx context.Context, frames video.FrameSource, duration float64) ([]Scene, error) {
	d.logger.Info(ctx, "Starting scene detection: threshold=%.1f, min_duration=%.1fs",
		d.threshold, d.minSceneDuration)

	var (
		scenes        []Scene
		prev          *video.Frame
		lastBoundary  float64
		lastFrameTime float64
		lastFrameIdx  int
	)

	// The first scene opens at time zero before any frame is read.
	scenes = append(scenes, Scene{Number: 1, StartTime: 0, StartFrame: 0})

	for {
		frame, err := frames.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("scene detection: %w", err)
		}

		lastFrameTime = frame.Time
		lastFrameIdx = frame.Index

		if prev != nil && frame.Time-lastBoundary >= d.minSceneDuration {
			score := d.scorer.Score(*prev, frame)
			if score > d.threshold {
				framePath := d.persistFrame(ctx, frame)

				// Close the open scene and start the next one at the
				// boundary frame.
				open := &scenes[len(scenes)-1]
				open.EndTime = frame.Time
				open.EndFrame = frame.Index

				scenes = append(scenes, Scene{
					Number:      len(scenes) + 1,
					StartTime:   frame.Time,
					StartFrame:  frame.Index,
					FramePath:   framePath,
					ChangeScore: score,
				})
				lastBoundary = frame.Time

				d.logger.Debug(ctx, "Scene %d detected at %.2fs (score: %.2f)",
					len(scenes), frame.Time, score)
			}
		}

		copied := frame
		prev = &copied
	}

	if prev == nil {
		return nil, fmt.Errorf("scene detection: empty frame stream")
	}

	// Close the final open scene at the end of the video.
	end := duration
	if end < lastFrameTime {
		end = lastFrameTime
	}
	last := &scenes[len(scenes)-1]
	last.EndTime = end
	last.EndFrame = lastFrameIdx
	if len(scenes) == 1 {
		last.Description = "No scene changes detected"
	}

	d.logger.Info(ctx, "Scene detection complete: %d scenes detected", len(scenes))
	return scenes, nil
}

// persistFrame saves a representative frame via the injected callback.
// Persistence failure never aborts detection.
func (d *Detector) persistFrame(ctx context.Context, frame video.Frame) string {
	if d.saveFrame == nil {
		return ""
	}
	path, err := d.saveFrame(frame)
	if err != nil {
		d.logger.Warn(ctx, "Failed to save frame %d: %v", frame.Index, err)
		return ""
	}
	return path
}
