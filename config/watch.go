package config

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watch reloads the tuning file at path whenever it is written or replaced
// and delivers the result on the returned channel. Parse failures go to the
// error channel and the previous settings stay in effect. Both channels are
// closed once ctx is done.
//
// The directory is watched rather than the file so editors that save by
// rename keep working.
func Watch(ctx context.Context, path string) (<-chan *Settings, <-chan error, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, nil, fmt.Errorf("resolving %s: %w", path, err)
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, nil, fmt.Errorf("creating watcher: %w", err)
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		w.Close()
		return nil, nil, fmt.Errorf("watching %s: %w", filepath.Dir(abs), err)
	}

	updates := make(chan *Settings, 1)
	errs := make(chan error, 1)

	go func() {
		defer close(updates)
		defer close(errs)
		defer w.Close()

		for {
			select {
			case <-ctx.Done():
				return
			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				if filepath.Clean(ev.Name) != abs {
					continue
				}
				if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
					continue
				}
				s, err := Load(abs)
				if err != nil {
					send(ctx, errs, err)
					continue
				}
				send(ctx, updates, s)
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				send(ctx, errs, err)
			}
		}
	}()

	return updates, errs, nil
}

// send delivers v unless ctx ends first.
func send[T any](ctx context.Context, ch chan<- T, v T) {
	select {
	case ch <- v:
	case <-ctx.Done():
	}
}
