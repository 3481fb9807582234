package config

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// ErrNoFile is returned by Watch when no config file was loaded.
var ErrNoFile = errors.New("config: no config file to watch")

// Watch streams the reloaded config each time the file in use changes,
// until ctx is cancelled. Bursts of writes are coalesced; configs that fail
// to load are skipped. Load must have been called first.
func (l *Loader) Watch(ctx context.Context) (<-chan Config, error) {
	file := l.v.ConfigFileUsed()
	if file == "" {
		return nil, ErrNoFile
	}
	file = filepath.Clean(file)

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("config: create watcher: %w", err)
	}
	// Editors replace files on save, so watch the directory.
	if err := watcher.Add(filepath.Dir(file)); err != nil {
		_ = watcher.Close()
		return nil, fmt.Errorf("config: watch %s: %w", file, err)
	}

	r := newReloader(l.Load)
	go r.run(ctx, watcher, file)
	return r.out, nil
}

// reloader owns the output channel. Only run sends on it or closes it;
// the debounce timer merely pokes run through fire.
type reloader struct {
	load func() (Config, error)
	fire chan struct{}
	out  chan Config
}

func newReloader(load func() (Config, error)) *reloader {
	return &reloader{
		load: load,
		fire: make(chan struct{}, 1),
		out:  make(chan Config, 1),
	}
}

// poke requests a reload without blocking; a pending request absorbs it.
func (r *reloader) poke() {
	select {
	case r.fire <- struct{}{}:
	default:
	}
}

func (r *reloader) run(ctx context.Context, watcher *fsnotify.Watcher, file string) {
	defer close(r.out)
	defer func() { _ = watcher.Close() }()

	t := newDebounce(100 * time.Millisecond)
	defer t.Stop()

	r.loop(ctx, watcher.Events, watcher.Errors, file, t)
}

func (r *reloader) loop(ctx context.Context, events <-chan fsnotify.Event, errs <-chan error, file string, t *debounce) {
	for {
		select {
		case <-ctx.Done():
			return
		case _, ok := <-errs:
			if !ok {
				return
			}
		case evt, ok := <-events:
			if !ok {
				return
			}
			if filepath.Clean(evt.Name) != file {
				continue
			}
			if evt.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			t.Trigger(r.poke)
		case <-r.fire:
			cfg, err := r.load()
			if err != nil {
				fmt.Fprintf(os.Stderr, "config: reload: %v\n", err)
				continue
			}
			select {
			case r.out <- cfg:
			case <-ctx.Done():
				return
			}
		}
	}
}

// debounce runs the last triggered function once activity settles.
type debounce struct {
	mu    sync.Mutex
	timer *time.Timer
	delay time.Duration
}

func newDebounce(delay time.Duration) *debounce {
	return &debounce{delay: delay}
}

func (d *debounce) Trigger(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.delay, fn)
}

func (d *debounce) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
