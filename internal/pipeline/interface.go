package pipeline

import "context"

// Orchestrator runs the full captioning pipeline for one job: load,
// extract audio, detect scenes, transcribe, segment, render captions,
// optionally burn them in, then report and export. Stages run strictly
// sequentially; the first stage failure terminates the run.
type Orchestrator interface {
	Run(ctx context.Context, jobID, source string) Result
}

// Result is the orchestrator's single terminal return value. OutputDir
// is populated best-effort even when the run fails; partial artifacts
// are never deleted.
type Result struct {
	Success            bool              `json:"success"`
	OutputDir          string            `json:"output_dir"`
	CaptionedVideoPath string            `json:"captioned_video_path,omitempty"`
	ReportPaths        map[string]string `json:"report_paths,omitempty"`
	Err                string            `json:"error,omitempty"`
}
