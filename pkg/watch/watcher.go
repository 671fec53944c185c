// Package watch re-runs encoding detection when watched files change.
package watch

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/encscan/encscan/pkg/detect"
	"github.com/encscan/encscan/pkg/errors"
	"github.com/encscan/encscan/pkg/util"
)

// Change describes one detection transition on a watched file.
type Change struct {
	Path     string
	Previous detect.Encoding
	Current  detect.Encoding
}

// Watcher monitors files and re-detects them on write.
type Watcher struct {
	watcher    *fsnotify.Watcher
	detector   *detect.Detector
	sampleSize int
	debounce   time.Duration

	mu    sync.RWMutex
	files map[string]*fileState

	// OnChange is invoked after each re-detection, including the initial
	// one; Previous is EncodingUnknown for the first call on a file.
	OnChange func(Change)
	OnError  func(path string, err error)
}

type fileState struct {
	path         string
	lastModified time.Time
	size         int64
	last         detect.Encoding
	processing   bool
}

// NewWatcher creates a watcher driving the given detector.
func NewWatcher(detector *detect.Detector, sampleSize int, debounce time.Duration) (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeWatchFailed, "create watcher")
	}
	if sampleSize <= 0 {
		sampleSize = detect.DefaultSampleSize
	}
	if debounce <= 0 {
		debounce = 500 * time.Millisecond
	}

	return &Watcher{
		watcher:    fsWatcher,
		detector:   detector,
		sampleSize: sampleSize,
		debounce:   debounce,
		files:      make(map[string]*fileState),
	}, nil
}

// Watch starts watching a file and performs the initial detection.
func (w *Watcher) Watch(path string) error {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return errors.Wrap(err, errors.CodeWatchFailed, "resolve path").
			WithContext("path", path)
	}

	stat, err := os.Stat(absPath)
	if err != nil {
		return errors.FileNotFound(absPath)
	}
	if !stat.Mode().IsRegular() {
		return errors.New(errors.CodeNotRegular, "not a regular file").
			WithContext("path", absPath)
	}

	state := &fileState{
		path:         absPath,
		lastModified: stat.ModTime(),
		size:         stat.Size(),
	}

	w.mu.Lock()
	w.files[absPath] = state
	w.mu.Unlock()

	// Watch the containing directory; editors often replace files rather
	// than writing them in place.
	dir := filepath.Dir(absPath)
	if err := w.watcher.Add(dir); err != nil {
		return errors.Wrap(err, errors.CodeWatchFailed, "watch directory").
			WithContext("dir", dir)
	}

	w.redetect(state)
	return nil
}

// Run starts the watch loop. Blocks until the context is canceled.
func (w *Watcher) Run(ctx context.Context) error {
	debounceTimers := make(map[string]*time.Timer)
	var timerMu sync.Mutex

	for {
		select {
		case <-ctx.Done():
			w.watcher.Close()
			return ctx.Err()

		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}

			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}

			absPath, err := filepath.Abs(event.Name)
			if err != nil {
				continue
			}

			w.mu.RLock()
			state, isWatched := w.files[absPath]
			w.mu.RUnlock()

			if !isWatched {
				continue
			}

			// Debounce rapid changes
			timerMu.Lock()
			if timer, exists := debounceTimers[absPath]; exists {
				timer.Stop()
			}
			debounceTimers[absPath] = time.AfterFunc(w.debounce, func() {
				w.handleChange(absPath, state)
			})
			timerMu.Unlock()

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			if w.OnError != nil {
				w.OnError("", err)
			}
		}
	}
}

func (w *Watcher) handleChange(path string, state *fileState) {
	w.mu.Lock()
	if state.processing {
		w.mu.Unlock()
		return
	}
	state.processing = true
	w.mu.Unlock()

	defer func() {
		w.mu.Lock()
		state.processing = false
		w.mu.Unlock()
	}()

	stat, err := os.Stat(path)
	if err != nil {
		if w.OnError != nil {
			w.OnError(path, err)
		}
		return
	}

	if stat.ModTime().Equal(state.lastModified) && stat.Size() == state.size {
		return // no actual change
	}

	w.mu.Lock()
	state.lastModified = stat.ModTime()
	state.size = stat.Size()
	w.mu.Unlock()

	w.redetect(state)
}

func (w *Watcher) redetect(state *fileState) {
	sample, err := util.ReadSample(state.path, w.sampleSize)
	if err != nil {
		if w.OnError != nil {
			w.OnError(state.path, err)
		}
		return
	}

	enc := w.detector.Detect(sample)

	w.mu.Lock()
	prev := state.last
	state.last = enc
	w.mu.Unlock()

	if w.OnChange != nil {
		w.OnChange(Change{Path: state.path, Previous: prev, Current: enc})
	}
}

// Close stops the watcher.
func (w *Watcher) Close() error {
	return w.watcher.Close()
}
