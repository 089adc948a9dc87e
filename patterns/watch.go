package patterns

import (
	"log"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

const reloadDebounce = 100 * time.Millisecond

// Watcher re-resolves edited definition files into a registry so a dev
// session picks up pattern changes without restarting. Reloaded pattern
// ids are reported on Reloaded; decode failures are logged and the
// previous registration is kept.
type Watcher struct {
	registry *Registry
	fs       *fsnotify.Watcher
	Reloaded chan string
	closeCh  chan struct{}
	once     sync.Once
}

// Watch starts watching dir for definition edits. The caller drains
// Reloaded; a new session sees the updated definition on its next
// Resolve.
func Watch(registry *Registry, dir string) (*Watcher, error) {
	fs, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fs.Add(dir); err != nil {
		_ = fs.Close()
		return nil, err
	}

	w := &Watcher{
		registry: registry,
		fs:       fs,
		Reloaded: make(chan string, 16),
		closeCh:  make(chan struct{}),
	}
	go w.run()
	return w, nil
}

func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.fs.Close()
		close(w.Reloaded)
	})
	return err
}

func (w *Watcher) run() {
	seen := make(map[string]time.Time)
	for {
		select {
		case event, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			ext := strings.ToLower(filepath.Ext(event.Name))
			if ext != ".yaml" && ext != ".yml" {
				continue
			}
			// Editors double-write on save.
			now := time.Now()
			if t, ok := seen[event.Name]; ok && now.Sub(t) < reloadDebounce {
				continue
			}
			seen[event.Name] = now

			id, err := ReloadFile(w.registry, event.Name)
			if err != nil {
				log.Printf("patterns: reload %s: %v", event.Name, err)
				continue
			}
			w.Reloaded <- id
		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			log.Printf("patterns: watch: %v", err)
		case <-w.closeCh:
			return
		}
	}
}

// ReloadFile re-decodes one definition file into the registry, replacing
// any existing registration for its id.
func ReloadFile(r *Registry, path string) (string, error) {
	spec, err := LoadSpec(filepath.Base(path))
	if err != nil {
		return "", err
	}
	p, err := spec.Pattern()
	if err != nil {
		return "", err
	}
	r.Register(p)
	return p.ID, nil
}
