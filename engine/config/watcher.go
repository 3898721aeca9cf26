package config

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// Watcher reloads a configuration file when it changes on disk and applies it to a Target.
// Invalid files are logged and ignored; the previous settings stay in effect.
type Watcher struct {
	path     string
	target   Target
	logger   *zap.Logger
	debounce time.Duration
	onReload func(*File)

	watcher *fsnotify.Watcher
	closeCh chan struct{}
	done    chan struct{}
	once    sync.Once
}

// WatcherOption is a functional option for configuring a Watcher.
type WatcherOption func(*Watcher)

// WithDebounce sets how long the file must stay quiet before it is reloaded (default 100ms).
//
// Parameters:
//   - d: the quiet period
//
// Returns:
//   - WatcherOption: option function to apply
func WithDebounce(d time.Duration) WatcherOption {
	return func(w *Watcher) {
		w.debounce = d
	}
}

// WithOnReload registers a callback run after each successful reload.
//
// Parameters:
//   - fn: receives the reloaded file
//
// Returns:
//   - WatcherOption: option function to apply
func WithOnReload(fn func(*File)) WatcherOption {
	return func(w *Watcher) {
		w.onReload = fn
	}
}

// NewWatcher starts watching path. The parent directory is watched so editors that replace the
// file by renaming are handled.
//
// Parameters:
//   - path: the configuration file
//   - target: receives reloaded settings
//   - logger: logs reloads and failures (nil for no logging)
//   - options: functional options
//
// Returns:
//   - *Watcher: the running watcher
//   - error: failure to start watching
func NewWatcher(path string, target Target, logger *zap.Logger, options ...WatcherOption) (*Watcher, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve config path %s: %w", path, err)
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	if err := fw.Add(filepath.Dir(abs)); err != nil {
		_ = fw.Close()
		return nil, fmt.Errorf("watch %s: %w", filepath.Dir(abs), err)
	}

	w := &Watcher{
		path:     abs,
		target:   target,
		logger:   logger.Named("config"),
		debounce: 100 * time.Millisecond,
		watcher:  fw,
		closeCh:  make(chan struct{}),
		done:     make(chan struct{}),
	}
	for _, opt := range options {
		opt(w)
	}
	go w.run()
	return w, nil
}

// Close stops the watcher. Safe to call multiple times.
//
// Returns:
//   - error: error closing the underlying watcher
func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
		<-w.done
	})
	return err
}

func (w *Watcher) run() {
	defer close(w.done)

	var timer *time.Timer
	var fire <-chan time.Time
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}
			fire = timer.C
		case <-fire:
			fire = nil
			w.reload()
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Warn("config watcher error", zap.Error(err))
		case <-w.closeCh:
			return
		}
	}
}

func (w *Watcher) reload() {
	f, err := Load(w.path)
	if err != nil {
		w.logger.Warn("config reload failed, keeping previous settings", zap.Error(err))
		return
	}
	if err := f.Apply(w.target); err != nil {
		w.logger.Warn("config reload rejected", zap.Error(err))
		return
	}
	w.logger.Info("config reloaded",
		zap.String("path", w.path),
		zap.Float32("move_speed", f.Movement.MoveSpeed),
		zap.String("look_mode", f.LookMode),
	)
	if w.onReload != nil {
		w.onReload(f)
	}
}
