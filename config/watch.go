package config

import (
	"context"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/pkg/errors"
)

// Watch reloads path whenever it is written or replaced and passes the result to onChange
// onChange runs on the watcher goroutine. A reload that fails to parse or validate is
// delivered as a non-nil error with a nil config. Watching stops when ctx is done
func Watch(ctx context.Context, path string, onChange func(*Config, error)) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.Wrap(err, "create watcher")
	}

	// Editors often save by rename, so watch the directory and filter by name
	target := filepath.Clean(path)
	if err := watcher.Add(filepath.Dir(target)); err != nil {
		watcher.Close()
		return errors.Wrapf(err, "watch %s", filepath.Dir(target))
	}

	go func() {
		defer watcher.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != target {
					continue
				}
				if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
					continue
				}
				onChange(Load(path))
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				onChange(nil, errors.Wrap(err, "watch"))
			}
		}
	}()
	return nil
}
