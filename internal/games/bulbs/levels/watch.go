package levels

import (
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/vovakirdan/tui-bulbs/internal/games/bulbs/levels/formats"
)

// Debounce is how long a file must stay quiet before its change is
// reported. Bursts of events for one file collapse into one report sent
// after the last of them.
const Debounce = 100 * time.Millisecond

// Watcher reports level files that changed under the watched directories.
// Events carries the changed path; both channels are closed after Close.
type Watcher struct {
	watcher *fsnotify.Watcher
	// recursive adds directories created under a watched tree.
	recursive bool
	Events    chan string
	Errors    chan error
	closeCh   chan struct{}
	done      chan struct{}
	once      sync.Once
}

// NewWatcher watches dirs (non-recursively) for level file changes.
func NewWatcher(dirs ...string) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	for _, dir := range dirs {
		if err := fw.Add(dir); err != nil {
			_ = fw.Close()
			return nil, err
		}
	}
	return start(fw, false), nil
}

// WatchTree watches root and every directory below it, matching what
// Loader.LoadAll walks. Directories created later are added as they appear.
func WatchTree(root string) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	err = filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return fw.Add(p)
		}
		return nil
	})
	if err != nil {
		_ = fw.Close()
		return nil, err
	}
	return start(fw, true), nil
}

func start(fw *fsnotify.Watcher, recursive bool) *Watcher {
	w := &Watcher{
		watcher:   fw,
		recursive: recursive,
		Events:    make(chan string, 16),
		Errors:    make(chan error, 1),
		closeCh:   make(chan struct{}),
		done:      make(chan struct{}),
	}
	go w.run()
	return w
}

// WatchFile watches the directory holding path. Editors often replace a
// file instead of writing it, so the directory is the stable target.
func WatchFile(path string) (*Watcher, error) {
	return NewWatcher(filepath.Dir(path))
}

// Close stops the watcher. It is safe to call more than once.
func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
		<-w.done
	})
	return err
}

func (w *Watcher) run() {
	defer close(w.done)
	defer close(w.Errors)
	defer close(w.Events)

	// One timer per file, pushed back by every new event. A timer that
	// fires hands its path to due.
	pending := make(map[string]*time.Timer)
	due := make(chan string)
	defer func() {
		for _, t := range pending {
			t.Stop()
		}
	}()

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if w.recursive && event.Op&fsnotify.Create != 0 {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					_ = w.watcher.Add(event.Name)
					continue
				}
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if !formats.Supported(filepath.Ext(event.Name)) {
				continue
			}
			name := event.Name
			if t, ok := pending[name]; ok {
				t.Reset(Debounce)
				continue
			}
			pending[name] = time.AfterFunc(Debounce, func() {
				select {
				case due <- name:
				case <-w.closeCh:
				}
			})

		case name := <-due:
			delete(pending, name)
			select {
			case w.Events <- name:
			case <-w.closeCh:
				return
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			select {
			case w.Errors <- err:
			default:
			}
		case <-w.closeCh:
			return
		}
	}
}
