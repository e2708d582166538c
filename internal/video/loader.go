package video

import (
	"context"
	"os"
	"path/filepath"
	"strings"
)

var supportedFormats = map[string]bool{
	".mp4":  true,
	".mov":  true,
	".avi":  true,
	".mkv":  true,
	".flv":  true,
	".wmv":  true,
	".webm": true,
	".m4v":  true,
}

// IsSupportedFormat reports whether the path has a recognized video
// extension.
func IsSupportedFormat(path string) bool {
	return supportedFormats[strings.ToLower(filepath.Ext(path))]
}

// Load resolves a local video file and probes its metadata. Remote sources
// (URLs, cloud-share links) are resolved by an upstream downloader before
// they reach the pipeline; here they surface as a typed LoadError.
func (m *implMedia) Load(ctx context.Context, source string) (string, *Metadata, error) {
	m.logger.Info(ctx, "Loading video from source: %s", source)

	if strings.Contains(source, "://") {
		return "", nil, &LoadError{Source: source, Reason: "remote sources must be downloaded before processing"}
	}

	info, err := os.Stat(source)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil, &LoadError{Source: source, Reason: "file not found"}
		}
		return "", nil, &LoadError{Source: source, Reason: "cannot stat file", Err: err}
	}
	if info.IsDir() {
		return "", nil, &LoadError{Source: source, Reason: "source is a directory"}
	}

	ext := strings.ToLower(filepath.Ext(source))
	if !supportedFormats[ext] {
		return "", nil, &LoadError{Source: source, Reason: "unsupported video format " + ext}
	}

	meta, err := m.probe(ctx, source)
	if err != nil {
		return "", nil, &LoadError{Source: source, Reason: "probe failed", Err: err}
	}
	meta.SizeBytes = info.Size()

	m.logger.Info(ctx, "Video loaded: %.1fs, %dx%d, %.2f fps, audio=%v",
		meta.Duration, meta.Width, meta.Height, meta.FPS, meta.HasAudio)

	return source, meta, nil
}
