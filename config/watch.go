package config

import (
	"context"
	"fmt"
	"time"

	"github.com/fsnotify/fsnotify"

	"shopcart-go/logs"
)

// Watcher watches the config file with fsnotify and invokes the callback
// with the reloaded config. Cooldown suppresses editor double-writes.
type Watcher struct {
	Path     string
	Cooldown time.Duration
}

// Start blocks until ctx is done; callback receives latest config on change.
func (w Watcher) Start(ctx context.Context, onUpdate func(AppConfig)) error {
	if w.Cooldown <= 0 {
		w.Cooldown = time.Second
	}
	fw, err := newFsWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer fw.Close()
	if err := fw.Add(w.Path); err != nil {
		return fmt.Errorf("watch config file: %w", err)
	}

	var lastReload time.Time
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-fw.Events():
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			if time.Since(lastReload) < w.Cooldown {
				continue
			}
			cfg, err := LoadWithEnvOverrides(w.Path)
			if err != nil {
				// 配置写到一半或校验失败时保留旧配置
				logs.DefaultLogger.Warn("config reload skipped", "err", err)
				continue
			}
			lastReload = time.Now()
			if onUpdate != nil {
				onUpdate(cfg)
			}
		case err, ok := <-fw.Errors():
			if !ok {
				return nil
			}
			logs.DefaultLogger.Warn("config watcher error", "err", err)
		}
	}
}

// fsWatcher is extracted for testing/mocking.
type fsWatcher interface {
	Add(path string) error
	Close() error
	Events() <-chan fsnotify.Event
	Errors() <-chan error
}

var newFsWatcher = func() (fsWatcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	return realFsWatcher{w}, nil
}

type realFsWatcher struct {
	*fsnotify.Watcher
}

func (w realFsWatcher) Events() <-chan fsnotify.Event { return w.Watcher.Events }

func (w realFsWatcher) Errors() <-chan error { return w.Watcher.Errors }
