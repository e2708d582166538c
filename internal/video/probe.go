package video

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

type probeOutput struct {
	Streams []probeStream `json:"streams"`
	Format  probeFormat   `json:"format"`
}

type probeStream struct {
	CodecType  string `json:"codec_type"`
	Width      int    `json:"width"`
	Height     int    `json:"height"`
	RFrameRate string `json:"r_frame_rate"`
	NbFrames   string `json:"nb_frames"`
}

type probeFormat struct {
	Duration string `json:"duration"`
}

// probe runs ffprobe and parses the JSON stream/format description.
func (m *implMedia) probe(ctx context.Context, videoPath string) (*Metadata, error) {
	args := []string{
		"-v", "error",
		"-print_format", "json",
		"-show_format",
		"-show_streams",
		videoPath,
	}

	out, err := m.executor.Execute(ctx, m.cfg.ProbePath, args...)
	if err != nil {
		return nil, fmt.Errorf("ffprobe: %w", err)
	}

	var probed probeOutput
	if err := json.Unmarshal([]byte(out), &probed); err != nil {
		return nil, fmt.Errorf("parse ffprobe output: %w", err)
	}

	meta := &Metadata{Path: videoPath}

	if probed.Format.Duration != "" {
		if d, err := strconv.ParseFloat(probed.Format.Duration, 64); err == nil {
			meta.Duration = d
		}
	}

	for _, s := range probed.Streams {
		switch s.CodecType {
		case "video":
			if meta.Width == 0 {
				meta.Width = s.Width
				meta.Height = s.Height
				meta.FPS = parseFrameRate(s.RFrameRate)
				if n, err := strconv.Atoi(s.NbFrames); err == nil {
					meta.FrameCount = n
				}
			}
		case "audio":
			meta.HasAudio = true
		}
	}

	if meta.Width == 0 {
		return nil, fmt.Errorf("no video stream in %q", videoPath)
	}
	if meta.FrameCount == 0 && meta.FPS > 0 {
		// Some containers omit nb_frames; estimate from duration
		meta.FrameCount = int(meta.Duration * meta.FPS)
	}

	return meta, nil
}

// parseFrameRate converts ffprobe's rational frame rate ("30000/1001")
// to a float. Returns 0 for malformed input.
func parseFrameRate(r string) float64 {
	num, den, found := strings.Cut(r, "/")
	if !found {
		f, _ := strconv.ParseFloat(r, 64)
		return f
	}
	n, err := strconv.ParseFloat(num, 64)
	if err != nil {
		return 0
	}
	d, err := strconv.ParseFloat(den, 64)
	if err != nil || d == 0 {
		return 0
	}
	return n / d
}
