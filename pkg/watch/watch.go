// Package watch delivers change notifications for resource documents.
//
// A Watcher owns at most one active directory watch. Every call to Watch
// tears down the previous watch and installs the new one atomically, so
// switching between groups never leaves a stale subscription firing in
// the background. Watches are non-recursive.
package watch

import (
	"path/filepath"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"

	"github.com/resxtools/resxkit/pkg/bundle"
)

// Watcher owns the single active watch of a session.
type Watcher struct {
	mu   sync.Mutex
	fs   *fsnotify.Watcher
	done chan struct{}
}

// New returns a Watcher with no active watch.
func New() *Watcher {
	return &Watcher{}
}

// Watch replaces any active watch with a watch on dir. onChange is
// called with the affected path for every create, write, rename, or
// remove of a .resx file directly inside dir.
func (w *Watcher) Watch(dir string, onChange func(path string)) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	if err := fw.Add(dir); err != nil {
		fw.Close()
		return err
	}
	done := make(chan struct{})
	go run(fw, done, onChange)

	w.mu.Lock()
	prev, prevDone := w.fs, w.done
	w.fs, w.done = fw, done
	w.mu.Unlock()

	stop(prev, prevDone)
	return nil
}

// Close tears down the active watch, if any.
func (w *Watcher) Close() error {
	w.mu.Lock()
	prev, prevDone := w.fs, w.done
	w.fs, w.done = nil, nil
	w.mu.Unlock()

	stop(prev, prevDone)
	return nil
}

func stop(fw *fsnotify.Watcher, done chan struct{}) {
	if fw == nil {
		return
	}
	close(done)
	fw.Close()
}

func run(fw *fsnotify.Watcher, done chan struct{}, onChange func(path string)) {
	for {
		select {
		case <-done:
			return
		case ev, ok := <-fw.Events:
			if !ok {
				return
			}
			if !strings.EqualFold(filepath.Ext(ev.Name), bundle.Ext) {
				continue
			}
			if ev.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Rename|fsnotify.Remove) != 0 {
				onChange(ev.Name)
			}
		case _, ok := <-fw.Errors:
			if !ok {
				return
			}
			// Watch errors are not fatal to the session; the next
			// Watch call installs a fresh subscription.
		}
	}
}
