package store

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"

	"motionplay/internal/log"
)

// Event is emitted by Watch when a stored value changes on disk, e.g. when
// another motionplay process saves a snapshot.
type Event struct {
	Key string
}

// Watch streams change events for the disk store until ctx is cancelled.
// Callers should drain the returned channel to avoid blocking the watcher.
// The channel is closed once ctx is done or the watcher fails.
func (s *Disk) Watch(ctx context.Context) (<-chan Event, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("store: create watcher: %w", err)
	}

	if err := watcher.Add(s.basePath); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("store: watch %s: %w", s.basePath, err)
	}

	events := make(chan Event, 8)
	var closeOnce sync.Once
	closeWatcher := func() {
		closeOnce.Do(func() {
			if err := watcher.Close(); err != nil {
				log.Warnf("store: watcher close: %v", err)
			}
		})
	}

	go func() {
		defer close(events)
		defer closeWatcher()

		for {
			select {
			case <-ctx.Done():
				return
			case ev, ok := <-watcher.Events:
				if !ok {
					return
				}
				if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
					continue
				}
				key := filepath.Base(ev.Name)
				// diskv writes via temp files; skip them.
				if strings.HasPrefix(key, ".") {
					continue
				}
				select {
				case events <- Event{Key: key}:
				case <-ctx.Done():
					return
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				log.Warnf("store: watcher error: %v", err)
			}
		}
	}()

	return events, nil
}
