// SPDX-License-Identifier: MIT
//
// File: watcher.go
// Role: Watcher that reloads the graph when its file changes.

package loader

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"

	"github.com/katalvlaran/pathview/core"
)

// Watcher holds the latest graph loaded from a file and reloads it when
// the file changes.
type Watcher struct {
	path     string
	opts     []Option
	logger   *slog.Logger
	mu       sync.RWMutex
	current  *core.Graph
	onChange []func(*core.Graph)
}

// NewWatcher performs the initial load of path and returns a Watcher
// holding it. Nothing is watched until Watch is called.
func NewWatcher(path string, opts ...Option) (*Watcher, error) {
	w := &Watcher{
		path:   filepath.Clean(path),
		opts:   opts,
		logger: resolve(opts).Logger,
	}
	g, err := Load(w.path, opts...)
	if err != nil {
		return nil, err
	}
	w.current = g

	return w, nil
}

// Graph returns the latest successfully loaded graph.
func (w *Watcher) Graph() *core.Graph {
	w.mu.RLock()
	defer w.mu.RUnlock()

	return w.current
}

// OnChange registers fn to run after every successful reload.
func (w *Watcher) OnChange(fn func(*core.Graph)) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.onChange = append(w.onChange, fn)
}

// Reload re-reads the file now. On failure the current graph is kept.
func (w *Watcher) Reload() (*core.Graph, error) {
	g, err := Load(w.path, w.opts...)
	if err != nil {
		return nil, err
	}
	w.mu.Lock()
	w.current = g
	callbacks := make([]func(*core.Graph), len(w.onChange))
	copy(callbacks, w.onChange)
	w.mu.Unlock()
	for _, fn := range callbacks {
		fn(g)
	}

	return g, nil
}

// Watch starts a goroutine that reloads the graph whenever the file is
// written or recreated. The parent directory is watched so editors that
// save by rename are seen too.
//
// stop closes the file watcher and blocks until the goroutine has exited,
// including any reload and OnChange callbacks already in progress. No
// callback runs once stop has returned. stop must not be called from an
// OnChange callback.
func (w *Watcher) Watch() (stop func(), err error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("loader: watcher: %w", err)
	}
	dir := filepath.Dir(w.path)
	if err := fw.Add(dir); err != nil {
		fw.Close()
		return nil, fmt.Errorf("loader: watch %s: %w", dir, err)
	}

	done := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		w.loop(fw, done)
	}()

	var once sync.Once

	return func() {
		once.Do(func() {
			close(done)
			if err := fw.Close(); err != nil {
				w.logger.Warn("closing file watcher", slog.String("source", w.path), slog.Any("error", err))
			}
		})
		wg.Wait()
	}, nil
}

func (w *Watcher) loop(fw *fsnotify.Watcher, done <-chan struct{}) {
	for {
		select {
		case <-done:
			return
		case ev, ok := <-fw.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != w.path {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}
			// A stop that raced with this event wins.
			select {
			case <-done:
				return
			default:
			}
			g, err := w.Reload()
			if err != nil {
				w.logger.Warn("graph reload failed, keeping previous graph",
					slog.String("source", w.path), slog.Any("error", err))
				continue
			}
			w.logger.Info("graph reloaded", slog.String("source", w.path), slog.Int("nodes", g.Size()))
		case err, ok := <-fw.Errors:
			if !ok {
				return
			}
			w.logger.Warn("file watcher error", slog.String("source", w.path), slog.Any("error", err))
		}
	}
}
