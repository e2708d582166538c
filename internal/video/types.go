package video

// Metadata describes a probed video file.
type Metadata struct {
	Path       string
	Duration   float64
	FPS        float64
	Width      int
	Height     int
	FrameCount int
	HasAudio   bool
	SizeBytes  int64
}

// Frame is one decoded grayscale frame. Pixels holds Width*Height bytes
// in row-major order.
type Frame struct {
	Index  int
	Time   float64
	Width  int
	Height int
	Pixels []byte
}
