package watcher

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test Plan for the watcher:
// - A file write fires the callback after the debounce period
// - Multiple rapid writes are batched into one callback
// - The pack's own output file never triggers a callback
// - Run returns when the context is cancelled

func TestWatcher_FiresOnChange(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	w, err := New(root, "")
	require.NoError(t, err)
	defer w.Close()
	w.debounceTime = 50 * time.Millisecond

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	changes := make(chan []string, 1)
	go w.Run(ctx, func(files []string) {
		select {
		case changes <- files:
		default:
		}
	})

	// Give the event loop a moment to start.
	time.Sleep(100 * time.Millisecond)
	require.NoError(t, os.WriteFile(filepath.Join(root, "a.go"), []byte("package a\n"), 0644))

	select {
	case files := <-changes:
		require.Len(t, files, 1)
		assert.Contains(t, files[0], "a.go")
	case <-time.After(3 * time.Second):
		t.Fatal("callback never fired")
	}
}

func TestWatcher_IgnoresOutputFile(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	outPath := filepath.Join(root, "pack.xml")

	w, err := New(root, outPath)
	require.NoError(t, err)
	defer w.Close()
	w.debounceTime = 50 * time.Millisecond

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	changes := make(chan []string, 1)
	go w.Run(ctx, func(files []string) {
		select {
		case changes <- files:
		default:
		}
	})

	time.Sleep(100 * time.Millisecond)
	require.NoError(t, os.WriteFile(outPath, []byte("<doc/>"), 0644))

	select {
	case files := <-changes:
		t.Fatalf("output file change should not fire, got %v", files)
	case <-time.After(500 * time.Millisecond):
	}
}

func TestWatcher_StopsOnCancel(t *testing.T) {
	t.Parallel()

	w, err := New(t.TempDir(), "")
	require.NoError(t, err)
	defer w.Close()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- w.Run(ctx, func([]string) {})
	}()

	cancel()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after cancellation")
	}
}
