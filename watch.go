package stagekit

import (
	"log/slog"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// debounceWindow suppresses the duplicate events editors emit on save.
const debounceWindow = 100 * time.Millisecond

// Watcher watches config files for changes and delivers reloaded,
// revalidated configs on Configs. Invalid edits are logged and reported
// on Errors without replacing the last good config, so a live preview
// keeps rendering while the author fixes a typo.
type Watcher struct {
	watcher *fsnotify.Watcher
	log     *slog.Logger

	// Configs receives each successfully reloaded and validated config.
	Configs chan Result
	// Errors receives watch and reload failures.
	Errors chan error

	closeCh chan struct{}
	once    sync.Once
}

// WatchConfig watches the directories containing the given config files
// and reloads any of them on change. A nil logger defaults to
// slog.Default.
func WatchConfig(logger *slog.Logger, paths ...string) (*Watcher, error) {
	if logger == nil {
		logger = slog.Default()
	}
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	dirs := make(map[string]bool)
	for _, p := range paths {
		dirs[filepath.Dir(p)] = true
	}
	for dir := range dirs {
		if err := fsw.Add(dir); err != nil {
			_ = fsw.Close()
			return nil, err
		}
	}

	w := &Watcher{
		watcher: fsw,
		log:     logger,
		Configs: make(chan Result, 4),
		Errors:  make(chan error, 1),
		closeCh: make(chan struct{}),
	}
	go w.run()
	return w, nil
}

// Close stops the watcher and closes its channels. Safe to call more
// than once.
func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
		close(w.Configs)
		close(w.Errors)
	})
	return err
}

func (w *Watcher) run() {
	last := make(map[string]time.Time)
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if !isConfigFile(event.Name) {
				continue
			}
			now := time.Now()
			if t, ok := last[event.Name]; ok && now.Sub(t) < debounceWindow {
				continue
			}
			last[event.Name] = now
			w.reload(event.Name)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.Errors <- err
		case <-w.closeCh:
			return
		}
	}
}

// reload parses and validates one changed file, delivering the result or
// logging why it was rejected.
func (w *Watcher) reload(path string) {
	cfg, err := LoadConfigFile(path)
	if err != nil {
		w.log.Warn("config reload failed", "path", path, "err", err)
		select {
		case w.Errors <- err:
		default:
		}
		return
	}
	res := Validate(cfg)
	if !res.OK {
		w.log.Warn("config rejected",
			"path", path,
			"errors", len(res.Errors),
			"first", res.Errors[0].String())
		select {
		case w.Errors <- validationError(res.Errors):
		default:
		}
		return
	}
	w.log.Info("config reloaded",
		"path", path,
		"layers", len(res.Normalized.Layers),
		"warnings", len(res.Warnings))
	w.Configs <- res
}

func isConfigFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml" || ext == ".json"
}
