package config

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
)

// Source hands out the most recent configuration. Games read it at every
// session start, so a reload never changes a session already in flight.
type Source struct {
	mu  sync.RWMutex
	cfg DodgeConfig
	gen int
}

// NewSource creates a source holding cfg.
func NewSource(cfg DodgeConfig) *Source {
	return &Source{cfg: cfg}
}

// Get returns the current configuration and its generation number.
func (s *Source) Get() (DodgeConfig, int) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cfg, s.gen
}

// Set replaces the configuration and bumps the generation.
func (s *Source) Set(cfg DodgeConfig) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cfg = cfg
	s.gen++
}

// Watch reloads path whenever it changes and passes the new config to
// onChange. Parse and validation failures go to onError and keep the previous
// config. Watch blocks until ctx is cancelled.
//
// The parent directory is watched rather than the file itself so that
// editors which save by rename keep triggering reloads.
func Watch(ctx context.Context, path string, onChange func(DodgeConfig), onError func(error)) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("config: cannot resolve %s: %w", path, err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("config: cannot create watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("config: cannot watch %s: %w", filepath.Dir(abs), err)
	}

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != abs {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}
			cfg, err := LoadDodge(abs)
			if err != nil {
				if onError != nil {
					onError(err)
				}
				continue
			}
			onChange(cfg)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			if onError != nil {
				onError(fmt.Errorf("config: watcher: %w", err))
			}
		}
	}
}
