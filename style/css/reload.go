package css

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/

import (
	"os"

	"github.com/fsnotify/fsnotify"

	"github.com/AmonDeShir/tomt-bevycss/style/cssom"
)

// Watcher observes stylesheet files and feeds reparsed sheets into an
// engine. On every write to a watched file the file is re-read, parsed
// and atomically swapped in as the engine's active sheet; a file that
// fails to parse still swaps in whatever rules survived, consistent with
// the parser's recovery behavior.
type Watcher struct {
	engine *Engine
	fs     *fsnotify.Watcher
	done   chan struct{}

	// OnReload, if set, is called after every reload with the path and
	// the parse diagnostics.
	OnReload func(path string, diags []cssom.Diagnostic)
}

// NewWatcher creates a watcher feeding the given engine.
func NewWatcher(engine *Engine) (*Watcher, error) {
	fs, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	return &Watcher{
		engine: engine,
		fs:     fs,
		done:   make(chan struct{}),
	}, nil
}

// Add loads a stylesheet file into the engine and watches it for changes.
func (w *Watcher) Add(path string) error {
	if err := w.reload(path); err != nil {
		return err
	}
	return w.fs.Add(path)
}

// Start begins processing file events in a background goroutine.
// It returns immediately.
func (w *Watcher) Start() {
	go w.loop()
}

// Close stops watching. It is safe to call Close more than once.
func (w *Watcher) Close() error {
	select {
	case <-w.done:
	default:
		close(w.done)
	}
	return w.fs.Close()
}

func (w *Watcher) loop() {
	for {
		select {
		case ev, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create) != 0 {
				if err := w.reload(ev.Name); err != nil {
					tracer().Errorf("cannot reload style sheet %s: %v", ev.Name, err)
				}
			}
		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			tracer().Errorf("style sheet watcher: %v", err)
		case <-w.done:
			return
		}
	}
}

func (w *Watcher) reload(path string) error {
	src, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	diags := w.engine.LoadString(string(src))
	tracer().Debugf("reloaded style sheet %s, %d diagnostics", path, len(diags))
	if w.OnReload != nil {
		w.OnReload(path, diags)
	}
	return nil
}
