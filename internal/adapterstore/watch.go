package adapterstore

import (
	"context"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"vawter.tech/stopper"

	hotspot "github.com/axondata/go-hotspot"
)

// DefaultWatchDebounce is the default debounce for selection file
// events, coalescing the create/rename pair an atomic replace produces
const DefaultWatchDebounce = 25 * time.Millisecond

// WatchEvent reports a change to the persisted adapter selection
type WatchEvent struct {
	// Adapter is the newly persisted selection
	Adapter hotspot.WifiAdapter
	// Err is set when the selection could not be re-read
	Err error
}

// WatchCleanupFunc stops a watch and releases its resources
type WatchCleanupFunc func() error

// Watch monitors the selection file for changes and emits the new
// selection after each atomic replace. Events are debounced; the watch
// runs until cleanup is called or ctx is cancelled.
func (s *Store) Watch(ctx context.Context) (<-chan WatchEvent, WatchCleanupFunc, error) {
	dir := filepath.Dir(s.Path)

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, nil, err
	}
	if err := watcher.Add(dir); err != nil {
		_ = watcher.Close()
		return nil, nil, err
	}

	ch := make(chan WatchEvent, 4)

	sctx := stopper.WithContext(ctx)
	sctx.Defer(func() {
		_ = watcher.Close()
		close(ch)
	})

	cleanup := func() error {
		sctx.Stop(100 * time.Millisecond)
		return sctx.Wait()
	}

	var mu sync.Mutex
	var debouncer *time.Timer
	var last hotspot.WifiAdapter

	readAndSend := func() {
		if sctx.IsStopping() {
			return
		}

		adapter, err := s.Load()
		if err != nil {
			select {
			case ch <- WatchEvent{Err: err}:
			case <-sctx.Stopping():
			}
			return
		}

		mu.Lock()
		changed := adapter != last
		last = adapter
		mu.Unlock()

		if changed {
			select {
			case ch <- WatchEvent{Adapter: adapter}:
			case <-sctx.Stopping():
			}
		}
	}

	// Seed the change detector with the current selection, if any
	if adapter, err := s.Load(); err == nil {
		last = adapter
	}

	sctx.Go(func(sctx *stopper.Context) error {
		sctx.Defer(func() {
			mu.Lock()
			if debouncer != nil {
				debouncer.Stop()
			}
			mu.Unlock()
		})

		for !sctx.IsStopping() {
			select {
			case <-sctx.Stopping():
				return nil

			case event, ok := <-watcher.Events:
				if !ok {
					return nil
				}
				if filepath.Base(event.Name) != filepath.Base(s.Path) {
					continue
				}

				mu.Lock()
				if debouncer != nil {
					debouncer.Stop()
				}
				debouncer = time.AfterFunc(DefaultWatchDebounce, readAndSend)
				mu.Unlock()

			case err, ok := <-watcher.Errors:
				if !ok {
					return nil
				}
				if err != nil && !sctx.IsStopping() {
					select {
					case ch <- WatchEvent{Err: err}:
					case <-sctx.Stopping():
						return nil
					}
				}
			}
		}
		return nil
	})

	return ch, cleanup, nil
}
