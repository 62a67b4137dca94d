// pattern: Imperative Shell

package config

import (
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watcher reloads the config file when it changes and delivers the result
// to a callback. Editors replace files on save, so the parent directory is
// watched and events are filtered by name.
type Watcher struct {
	watcher *fsnotify.Watcher
	done    chan struct{}
}

// Watch starts watching the config at path. onChange is called from the
// watcher goroutine with each successfully reloaded config; parse errors
// are reported through onError and the previous config stays in effect.
func Watch(path string, onChange func(Config), onError func(error)) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	if err := fw.Add(filepath.Dir(path)); err != nil {
		fw.Close()
		return nil, err
	}

	w := &Watcher{watcher: fw, done: make(chan struct{})}

	go func() {
		defer close(w.done)
		for {
			select {
			case ev, ok := <-fw.Events:
				if !ok {
					return
				}
				if filepath.Clean(ev.Name) != filepath.Clean(path) {
					continue
				}
				if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
					continue
				}
				cfg, err := LoadFrom(path)
				if err != nil {
					if onError != nil {
						onError(err)
					}
					continue
				}
				onChange(cfg)
			case err, ok := <-fw.Errors:
				if !ok {
					return
				}
				if onError != nil {
					onError(err)
				}
			}
		}
	}()

	return w, nil
}

// Close stops the watcher and waits for its goroutine to exit.
func (w *Watcher) Close() error {
	err := w.watcher.Close()
	<-w.done
	return err
}
