package watcher

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/nguyentantai21042004/meeting-captioner/internal/logger"
)

func TestWatcherSubmitsNewVideo(t *testing.T) {
	dir := t.TempDir()

	var (
		mu        sync.Mutex
		submitted []string
	)
	done := make(chan struct{})
	submit := func(ctx context.Context, filePath string) error {
		mu.Lock()
		submitted = append(submitted, filePath)
		mu.Unlock()
		close(done)
		return nil
	}

	w, err := New(dir, submit, logger.New("error"), 2)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	defer w.Stop()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go w.Start(ctx)

	// Give the watch loop time to come up before creating the file.
	time.Sleep(100 * time.Millisecond)
	path := filepath.Join(dir, "meeting.mp4")
	if err := os.WriteFile(path, []byte("video"), 0644); err != nil {
		t.Fatal(err)
	}

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("video file never submitted")
	}

	mu.Lock()
	defer mu.Unlock()
	if len(submitted) != 1 || submitted[0] != path {
		t.Errorf("submitted = %v, want [%s]", submitted, path)
	}
}

func TestWatcherIgnoresNonVideoFiles(t *testing.T) {
	dir := t.TempDir()

	submitted := make(chan string, 1)
	submit := func(ctx context.Context, filePath string) error {
		submitted <- filePath
		return nil
	}

	w, err := New(dir, submit, logger.New("error"), 2)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	defer w.Stop()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go w.Start(ctx)

	time.Sleep(100 * time.Millisecond)
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("text"), 0644); err != nil {
		t.Fatal(err)
	}

	select {
	case path := <-submitted:
		t.Errorf("non-video file submitted: %s", path)
	case <-time.After(1 * time.Second):
	}
}

func TestNewRejectsMissingDirectory(t *testing.T) {
	_, err := New(filepath.Join(t.TempDir(), "absent"), nil, logger.New("error"), 2)
	if err == nil {
		t.Fatal("New() accepted a missing directory")
	}
}
