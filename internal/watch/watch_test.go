package watch

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func startWatcher(t *testing.T, path string, onChange func(context.Context) error) (*Watcher, context.CancelFunc, <-chan error) {
	t.Helper()

	ctx, cancel := context.WithCancel(context.Background())
	w := New(path, 30*time.Millisecond, nil)
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx, onChange) }()

	select {
	case <-w.Ready():
	case err := <-done:
		cancel()
		t.Fatalf("watcher stopped early: %v", err)
	case <-time.After(2 * time.Second):
		cancel()
		t.Fatal("watcher never became ready")
	}
	return w, cancel, done
}

func TestWatcherDebouncesBursts(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "buttons.yaml")
	require.NoError(t, os.WriteFile(path, []byte("a"), 0o644))

	var calls atomic.Int32
	changed := make(chan struct{}, 10)
	_, cancel, done := startWatcher(t, path, func(context.Context) error {
		calls.Add(1)
		changed <- struct{}{}
		return nil
	})
	defer cancel()

	for _, content := range []string{"b", "c", "d"} {
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}

	select {
	case <-changed:
	case <-time.After(2 * time.Second):
		t.Fatal("no change reported")
	}
	time.Sleep(100 * time.Millisecond)
	require.Equal(t, int32(1), calls.Load())

	cancel()
	require.NoError(t, <-done)
}

func TestWatcherIgnoresSiblings(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "buttons.yaml")
	require.NoError(t, os.WriteFile(path, []byte("a"), 0o644))

	var calls atomic.Int32
	_, cancel, done := startWatcher(t, path, func(context.Context) error {
		calls.Add(1)
		return nil
	})

	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.yaml"), []byte("x"), 0o644))
	time.Sleep(150 * time.Millisecond)
	require.Zero(t, calls.Load())

	cancel()
	require.NoError(t, <-done)
}

func TestWatcherSurvivesCallbackErrors(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "buttons.yaml")
	require.NoError(t, os.WriteFile(path, []byte("a"), 0o644))

	changed := make(chan struct{}, 10)
	_, cancel, done := startWatcher(t, path, func(context.Context) error {
		changed <- struct{}{}
		return errors.New("invalid catalog")
	})
	defer cancel()

	for range 2 {
		require.NoError(t, os.WriteFile(path, []byte("b"), 0o644))
		select {
		case <-changed:
		case <-time.After(2 * time.Second):
			t.Fatal("no change reported")
		}
	}

	cancel()
	require.NoError(t, <-done)
}

func TestWatcherMissingDirectory(t *testing.T) {
	w := New(filepath.Join(t.TempDir(), "missing", "buttons.yaml"), time.Millisecond, nil)
	err := w.Run(context.Background(), func(context.Context) error { return nil })
	require.Error(t, err)
}

func TestWatcherRunsAgainAfterCancel(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "buttons.yaml")
	require.NoError(t, os.WriteFile(path, []byte("a"), 0o644))

	w, cancel, done := startWatcher(t, path, func(context.Context) error { return nil })
	cancel()
	require.NoError(t, <-done)

	ctx, stop := context.WithCancel(context.Background())
	again := make(chan error, 1)
	go func() { again <- w.Run(ctx, func(context.Context) error { return nil }) }()

	time.Sleep(50 * time.Millisecond)
	stop()
	select {
	case err := <-again:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("second run did not stop")
	}
}
