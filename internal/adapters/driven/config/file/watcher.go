package file

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/custodia-labs/counsel-cli/internal/logger"
)

const defaultDebounce = 200 * time.Millisecond

// Watcher reports edits to the configuration file and answer templates.
// Bursts of events (editors often write, rename and chmod in quick succession)
// are coalesced into a single onChange call.
type Watcher struct {
	watcher  *fsnotify.Watcher
	debounce time.Duration
	onChange func()

	mu     sync.Mutex
	timer  *time.Timer
	closed bool

	done chan struct{}
	wg   sync.WaitGroup
}

// NewWatcher watches configDir for config.toml changes and templateDir
// (one level of specialist subdirectories) for template changes.
// Either directory may be empty to skip it. A debounce of zero uses the default.
func NewWatcher(configDir, templateDir string, debounce time.Duration, onChange func()) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	if debounce <= 0 {
		debounce = defaultDebounce
	}

	w := &Watcher{
		watcher:  fw,
		debounce: debounce,
		onChange: onChange,
		done:     make(chan struct{}),
	}

	for _, dir := range watchDirs(configDir, templateDir) {
		if err := fw.Add(dir); err != nil {
			_ = fw.Close()
			return nil, fmt.Errorf("watch %s: %w", dir, err)
		}
		logger.Debug("watching %s", dir)
	}

	w.wg.Add(1)
	go w.run()
	return w, nil
}

// Close stops the watcher. Pending notifications are discarded.
func (w *Watcher) Close() error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return nil
	}
	w.closed = true
	if w.timer != nil {
		w.timer.Stop()
		w.timer = nil
	}
	w.mu.Unlock()

	close(w.done)
	err := w.watcher.Close()
	w.wg.Wait()
	return err
}

func (w *Watcher) run() {
	defer w.wg.Done()
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if relevant(event) {
				logger.Debug("change detected: %s %s", event.Op, event.Name)
				w.schedule()
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			logger.Warn("watch error: %v", err)
		case <-w.done:
			return
		}
	}
}

func (w *Watcher) schedule() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return
	}
	if w.timer == nil {
		w.timer = time.AfterFunc(w.debounce, w.flush)
		return
	}
	w.timer.Reset(w.debounce)
}

func (w *Watcher) flush() {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return
	}
	w.timer = nil
	w.mu.Unlock()

	if w.onChange != nil {
		w.onChange()
	}
}

// relevant reports whether an event touches config.toml or a template file.
func relevant(event fsnotify.Event) bool {
	if event.Op == fsnotify.Chmod {
		return false
	}
	base := filepath.Base(event.Name)
	return base == configFileName || filepath.Ext(base) == templateExt
}

// watchDirs lists the directories to watch. fsnotify is not recursive, so
// each existing specialist subdirectory of templateDir is added separately.
func watchDirs(configDir, templateDir string) []string {
	var dirs []string
	if configDir != "" {
		dirs = append(dirs, configDir)
	}
	if templateDir == "" {
		return dirs
	}
	if _, err := os.Stat(templateDir); err != nil {
		return dirs
	}
	if templateDir != configDir {
		dirs = append(dirs, templateDir)
	}
	entries, err := os.ReadDir(templateDir)
	if err != nil {
		return dirs
	}
	for _, e := range entries {
		if e.IsDir() {
			dirs = append(dirs, filepath.Join(templateDir, e.Name()))
		}
	}
	return dirs
}
