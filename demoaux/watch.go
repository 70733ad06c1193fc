package demoaux

import (
	"errors"
	"log/slog"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watcher reports modifications of a single file. The containing directory
// is watched so editors that save by replacing the file are detected.
type Watcher struct {
	w       *fsnotify.Watcher
	name    string
	changed chan struct{}
	done    chan struct{}
	log     *slog.Logger
}

// NewWatcher starts watching the file at path. Call Close to release it.
func NewWatcher(path string, logger *slog.Logger) (*Watcher, error) {
	if logger == nil {
		logger = slog.Default()
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	err = fw.Add(filepath.Dir(abs))
	if err != nil {
		fw.Close()
		return nil, err
	}
	w := &Watcher{
		w:       fw,
		name:    abs,
		changed: make(chan struct{}, 1),
		done:    make(chan struct{}),
		log:     logger,
	}
	go w.loop()
	return w, nil
}

func (w *Watcher) loop() {
	defer close(w.done)
	for {
		select {
		case ev, ok := <-w.w.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != w.name || !ev.Has(fsnotify.Write|fsnotify.Create) {
				continue
			}
			w.log.Debug("file changed", slog.String("file", ev.Name), slog.String("op", ev.Op.String()))
			select {
			case w.changed <- struct{}{}:
			default: // Already pending.
			}
		case err, ok := <-w.w.Errors:
			if !ok {
				return
			}
			w.log.Error("watching file", slog.String("file", w.name), slog.Any("err", err))
		}
	}
}

// Changed reports whether the file was written since the last call. It never blocks.
func (w *Watcher) Changed() bool {
	select {
	case <-w.changed:
		return true
	default:
		return false
	}
}

// Close stops the watcher.
func (w *Watcher) Close() error {
	err := w.w.Close()
	<-w.done
	if errors.Is(err, fsnotify.ErrClosed) {
		return nil
	}
	return err
}

// ReloadOnChange calls reload when w reports a change and returns whether it succeeded.
// Reload failures are logged and reported as false so callers keep their previous state;
// a file caught half written is retried on its next write. A nil w never reloads.
func ReloadOnChange(w *Watcher, logger *slog.Logger, reload func() error) bool {
	if w == nil || !w.Changed() {
		return false
	}
	if logger == nil {
		logger = slog.Default()
	}
	if err := reload(); err != nil {
		logger.Warn("reload failed", slog.String("file", w.name), slog.Any("err", err))
		return false
	}
	logger.Info("reloaded", slog.String("file", w.name))
	return true
}
