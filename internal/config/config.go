package config

import "fmt"

type Config struct {
	Whisper     WhisperConfig     `yaml:"whisper"`
	FFmpeg      FFmpegConfig      `yaml:"ffmpeg"`
	Scene       SceneConfig       `yaml:"scene"`
	Segmenter   SegmenterConfig   `yaml:"segmenter"`
	Paths       PathsConfig       `yaml:"paths"`
	Logging     LoggingConfig     `yaml:"logging"`
	Performance PerformanceConfig `yaml:"performance"`
	Gemini      GeminiConfig      `yaml:"gemini"`
}

type WhisperConfig struct {
	ModelPath  string `yaml:"model_path"`
	BinaryPath string `yaml:"binary_path"`
	Language   string `yaml:"language"`
	Prompt     string `yaml:"prompt"`
	Threads    int    `yaml:"threads"`
}

type FFmpegConfig struct {
	BinaryPath  string `yaml:"binary_path"`
	ProbePath   string `yaml:"probe_path"`
	Encoder     string `yaml:"encoder"`
	Preset      string `yaml:"preset"`
	CRF         int    `yaml:"crf"`
	BurnEnabled bool   `yaml:"burn_enabled"`
}

type SceneConfig struct {
	Threshold        float64 `yaml:"threshold"`
	MinSceneDuration float64 `yaml:"min_scene_duration"`
	FrameWidth       int     `yaml:"frame_width"`
	FrameHeight      int     `yaml:"frame_height"`
	SampleFPS        float64 `yaml:"sample_fps"`
	SaveFrames       bool    `yaml:"save_frames"`
}

type SegmenterConfig struct {
	PauseThreshold     float64 `yaml:"pause_threshold"`
	MaxSectionDuration float64 `yaml:"max_section_duration"`
	MaxKeyPoints       int     `yaml:"max_key_points"`
}

type PathsConfig struct {
	Input  string `yaml:"input"`
	Output string `yaml:"output"`
	Temp   string `yaml:"temp"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

type PerformanceConfig struct {
	MaxConcurrent int `yaml:"max_concurrent"`
}

type GeminiConfig struct {
	APIKeys []string `yaml:"api_keys"`
	Model   string   `yaml:"model"`
}

func (c *Config) Validate() error {
	if c.Whisper.ModelPath == "" {
		return fmt.Errorf("whisper.model_path is required")
	}
	if c.Whisper.BinaryPath == "" {
		return fmt.Errorf("whisper.binary_path is required")
	}
	if c.Paths.Input == "" {
		return fmt.Errorf("paths.input is required")
	}
	if c.Paths.Output == "" {
		return fmt.Errorf("paths.output is required")
	}

	if c.Whisper.Language == "" {
		c.Whisper.Language = "en"
	}
	if c.Whisper.Threads == 0 {
		c.Whisper.Threads = 4
	}
	if c.FFmpeg.BinaryPath == "" {
		c.FFmpeg.BinaryPath = "ffmpeg"
	}
	if c.FFmpeg.ProbePath == "" {
		c.FFmpeg.ProbePath = "ffprobe"
	}
	if c.FFmpeg.Encoder == "" {
		c.FFmpeg.Encoder = "libx264"
	}
	if c.FFmpeg.Preset == "" {
		c.FFmpeg.Preset = "ultrafast"
	}
	if c.FFmpeg.CRF == 0 {
		c.FFmpeg.CRF = 23
	}
	if c.Scene.Threshold == 0 {
		c.Scene.Threshold = 30.0
	}
	if c.Scene.MinSceneDuration == 0 {
		c.Scene.MinSceneDuration = 1.0
	}
	if c.Scene.FrameWidth == 0 {
		c.Scene.FrameWidth = 320
	}
	if c.Scene.FrameHeight == 0 {
		c.Scene.FrameHeight = 180
	}
	if c.Scene.SampleFPS == 0 {
		c.Scene.SampleFPS = 5.0
	}
	if c.Segmenter.PauseThreshold == 0 {
		c.Segmenter.PauseThreshold = 2.0
	}
	if c.Segmenter.MaxSectionDuration == 0 {
		c.Segmenter.MaxSectionDuration = 300.0
	}
	if c.Segmenter.MaxKeyPoints == 0 {
		c.Segmenter.MaxKeyPoints = 5
	}
	if c.Paths.Temp == "" {
		c.Paths.Temp = "data/temp"
	}
	if c.Performance.MaxConcurrent == 0 {
		c.Performance.MaxConcurrent = 2
	}
	if c.Gemini.Model == "" {
		c.Gemini.Model = "gemini-2.5-flash"
	}

	return nil
}
