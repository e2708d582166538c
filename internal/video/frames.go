package video

import (
	"context"
	"fmt"
	"io"
)

// OpenFrames starts an ffmpeg process decoding the video into downscaled
// grayscale frames on a raw pipe. Sampling at a few frames per second is
// plenty for meeting content and keeps the scan cheap.
func (m *implMedia) OpenFrames(ctx context.Context, videoPath string, opts FrameOptions) (FrameSource, error) {
	if opts.Width <= 0 || opts.Height <= 0 || opts.SampleFPS <= 0 {
		return nil, fmt.Errorf("invalid frame options: %dx%d @ %.2f fps", opts.Width, opts.Height, opts.SampleFPS)
	}

	args := []string{
		"-i", videoPath,
		"-vf", fmt.Sprintf("scale=%d:%d,fps=%g", opts.Width, opts.Height, opts.SampleFPS),
		"-f", "rawvideo",
		"-pix_fmt", "gray",
		"pipe:1",
	}

	m.logger.Debug(ctx, "Opening frame stream: %s %dx%d @ %g fps", videoPath, opts.Width, opts.Height, opts.SampleFPS)

	stdout, wait, err := m.executor.Stream(ctx, m.cfg.BinaryPath, args...)
	if err != nil {
		return nil, fmt.Errorf("start frame decoder: %w", err)
	}

	return &pipeFrameSource{
		r:    stdout,
		wait: wait,
		opts: opts,
	}, nil
}

type pipeFrameSource struct {
	r     io.ReadCloser
	wait  func() error
	opts  FrameOptions
	index int
	done  bool
}

func (s *pipeFrameSource) Next() (Frame, error) {
	if s.done {
		return Frame{}, io.EOF
	}

	pixels := make([]byte, s.opts.Width*s.opts.Height)
	if _, err := io.ReadFull(s.r, pixels); err != nil {
		s.done = true
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			// Decoder finished; surface its exit status instead of EOF
			// when ffmpeg failed mid-stream.
			if werr := s.wait(); werr != nil {
				return Frame{}, werr
			}
			return Frame{}, io.EOF
		}
		return Frame{}, fmt.Errorf("read frame %d: %w", s.index, err)
	}

	frame := Frame{
		Index:  s.index,
		Time:   float64(s.index) / s.opts.SampleFPS,
		Width:  s.opts.Width,
		Height: s.opts.Height,
		Pixels: pixels,
	}
	s.index++
	return frame, nil
}

func (s *pipeFrameSource) Close() error {
	return s.r.Close()
}
