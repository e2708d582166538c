package session

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// WriteManifest writes manifest.txt at the session root, listing the
// videos and reports produced plus a frame count and total size.
func (s *implSession) WriteManifest() (string, error) {
	var b strings.Builder

	b.WriteString("Meeting Video Captioning - Session Manifest\n")
	b.WriteString(strings.Repeat("=", 60) + "\n\n")
	fmt.Fprintf(&b, "Session: %s\n", filepath.Base(s.dir))
	fmt.Fprintf(&b, "Created: %s\n\n", time.Now().Format("2006-01-02 15:04:05"))

	b.WriteString("Videos:\n")
	listFiles(&b, s.VideosDir())
	b.WriteString("\nReports:\n")
	listFiles(&b, s.ReportsDir())

	frames, _ := filepath.Glob(filepath.Join(s.framesDir(), "frame_*.png"))
	fmt.Fprintf(&b, "\nFrames: %d extracted\n\n", len(frames))
	fmt.Fprintf(&b, "Total Size: %.2f MB\n", float64(dirSize(s.dir))/(1024*1024))

	path := filepath.Join(s.dir, "manifest.txt")
	if err := os.WriteFile(path, []byte(b.String()), 0644); err != nil {
		return "", fmt.Errorf("write manifest: %w", err)
	}
	return path, nil
}

func listFiles(b *strings.Builder, dir string) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return
	}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		fmt.Fprintf(b, "  - %s (%.2f KB)\n", entry.Name(), float64(info.Size())/1024)
	}
}

func dirSize(root string) int64 {
	var total int64
	filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return nil
		}
		if info, err := d.Info(); err == nil {
			total += info.Size()
		}
		return nil
	})
	return total
}
