package session

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"

	"github.com/nguyentantai21042004/meeting-captioner/internal/video"
)

// SaveFrame encodes the grayscale frame as a PNG named by index and
// timestamp, e.g. frames/frame_000042_t8.40.png.
func (s *implSession) SaveFrame(frame video.Frame) (string, error) {
	img := &image.Gray{
		Pix:    frame.Pixels,
		Stride: frame.Width,
		Rect:   image.Rect(0, 0, frame.Width, frame.Height),
	}

	name := fmt.Sprintf("frame_%06d_t%.2f.png", frame.Index, frame.Time)
	path := filepath.Join(s.framesDir(), name)

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create frame file: %w", err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("encode frame: %w", err)
	}
	return path, nil
}
