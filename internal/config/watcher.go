package config

import (
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/yildizm/chanview/internal/logger"
)

// Watcher reloads a config file whenever it changes on disk and publishes
// each successfully validated result on Changes.
type Watcher struct {
	path       string
	customPath string
	loader     *Loader
	watcher    *fsnotify.Watcher
	changes    chan *Config
	errors     chan error
	done       chan struct{}
	log        *logger.Logger
}

// NewWatcher starts watching the file loader applied last, or customPath when
// set. Reloads go through loader with the same customPath, so they resolve
// sources exactly like the initial load. The parent directory is watched so
// that editors replacing the file through a rename are still seen.
func NewWatcher(loader *Loader, customPath string, log *logger.Logger) (*Watcher, error) {
	if log == nil {
		log = logger.Nop()
	}

	path := customPath
	if path == "" {
		source, ok := loader.Source()
		if !ok {
			return nil, fmt.Errorf("no config file to watch")
		}
		path = source
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve config path: %w", err)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}

	if err := fsw.Add(filepath.Dir(absPath)); err != nil {
		_ = fsw.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", filepath.Dir(absPath), err)
	}

	w := &Watcher{
		path:       absPath,
		customPath: customPath,
		loader:     loader,
		watcher:    fsw,
		changes:    make(chan *Config, 1),
		errors:     make(chan error, 1),
		done:       make(chan struct{}),
		log:        log.WithComponent("config"),
	}
	go w.run()

	return w, nil
}

// Path returns the watched file
func (w *Watcher) Path() string {
	return w.path
}

// Changes delivers reloaded configurations. Only the newest pending one is kept.
func (w *Watcher) Changes() <-chan *Config {
	return w.changes
}

// Errors delivers reload failures
func (w *Watcher) Errors() <-chan error {
	return w.errors
}

// Close stops watching. Changes and Errors are closed afterwards.
func (w *Watcher) Close() error {
	err := w.watcher.Close()
	<-w.done
	return err
}

func (w *Watcher) run() {
	defer close(w.done)
	defer close(w.changes)
	defer close(w.errors)

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handleEvent(event)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.log.Warn("watcher error: %v", err)
			publish(w.errors, err)
		}
	}
}

func (w *Watcher) handleEvent(event fsnotify.Event) {
	if filepath.Clean(event.Name) != w.path {
		return
	}
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
		return
	}

	cfg, err := w.loader.LoadConfig(w.customPath)
	if err != nil {
		w.log.Warn("reload of %s failed: %v", w.path, err)
		publish(w.errors, err)
		return
	}

	w.log.Info("reloaded %s", w.path)
	publish(w.changes, cfg)
}

// publish replaces any value still pending in ch with v
func publish[T any](ch chan T, v T) {
	for {
		select {
		case ch <- v:
			return
		default:
		}
		select {
		case <-ch:
		default:
		}
	}
}
