// SPDX-License-Identifier: GPL-2.0-or-later

package manifest

import (
	"log"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/pkg/errors"
)

// Watcher reports changes of a manifest file and of the directory holding
// its faces. Changes has a buffer of one, several changes before the
// receiver looks collapse into one notification.
type Watcher struct {
	Changes chan struct{}

	watcher *fsnotify.Watcher
	dir     string
	done    chan struct{}
}

// Watch starts watching the manifest at path. Any write, create, rename or
// remove of the manifest or of a file in its directory is reported.
func Watch(path string) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.Wrap(err, "watch")
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		fw.Close()
		return nil, err
	}
	dir := filepath.Dir(abs)
	if err := fw.Add(dir); err != nil {
		fw.Close()
		return nil, errors.Wrapf(err, "watch %v", dir)
	}
	w := &Watcher{
		Changes: make(chan struct{}, 1),
		watcher: fw,
		dir:     dir,
		done:    make(chan struct{}),
	}
	go w.loop()
	return w, nil
}

const relevant = fsnotify.Write | fsnotify.Create | fsnotify.Rename | fsnotify.Remove

func (w *Watcher) loop() {
	defer close(w.done)
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&relevant == 0 {
				continue
			}
			select {
			case w.Changes <- struct{}{}:
			default:
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			log.Printf("manifest watch %v: %v", w.dir, err)
		}
	}
}

// Close stops watching. Changes is not closed.
func (w *Watcher) Close() error {
	err := w.watcher.Close()
	<-w.done
	return err
}
