package css_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"

	"github.com/AmonDeShir/tomt-bevycss/style/css"
	"github.com/AmonDeShir/tomt-bevycss/style/cssom"
)

func TestWatcherLoadsOnAdd(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bevycss.css")
	defer teardown()
	//
	path := filepath.Join(t.TempDir(), "sheet.css")
	if err := os.WriteFile(path, []byte("button { flex-grow: 1 }"), 0644); err != nil {
		t.Fatal(err)
	}
	engine := css.NewEngine(nil)
	watcher, err := css.NewWatcher(engine)
	if err != nil {
		t.Fatal(err)
	}
	defer watcher.Close()
	if err := watcher.Add(path); err != nil {
		t.Fatal(err)
	}
	if len(engine.Sheet().Rules()) != 1 {
		t.Errorf("expected the sheet to be loaded on Add, have %d rules",
			len(engine.Sheet().Rules()))
	}
}

func TestWatcherAddMissingFile(t *testing.T) {
	engine := css.NewEngine(nil)
	watcher, err := css.NewWatcher(engine)
	if err != nil {
		t.Fatal(err)
	}
	defer watcher.Close()
	if err := watcher.Add(filepath.Join(t.TempDir(), "missing.css")); err == nil {
		t.Error("expected an error for a missing file")
	}
}

func TestWatcherReloadsOnChange(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bevycss.css")
	defer teardown()
	//
	path := filepath.Join(t.TempDir(), "sheet.css")
	if err := os.WriteFile(path, []byte("button { flex-grow: 1 }"), 0644); err != nil {
		t.Fatal(err)
	}
	engine := css.NewEngine(nil)
	watcher, err := css.NewWatcher(engine)
	if err != nil {
		t.Fatal(err)
	}
	defer watcher.Close()
	//
	reloaded := make(chan int, 8)
	watcher.OnReload = func(path string, diags []cssom.Diagnostic) {
		reloaded <- len(engine.Sheet().Rules())
	}
	if err := watcher.Add(path); err != nil {
		t.Fatal(err)
	}
	<-reloaded // the initial load on Add
	watcher.Start()
	//
	if err := os.WriteFile(path, []byte("button { flex-grow: 2 }\npanel { width: 1px }"), 0644); err != nil {
		t.Fatal(err)
	}
	deadline := time.After(3 * time.Second)
	for {
		select {
		case n := <-reloaded:
			if n == 2 {
				return // the rewritten sheet became active
			}
		case <-deadline:
			t.Fatalf("sheet not reloaded, still %d rules", len(engine.Sheet().Rules()))
		}
	}
}

func TestWatcherCloseIsIdempotent(t *testing.T) {
	engine := css.NewEngine(nil)
	watcher, err := css.NewWatcher(engine)
	if err != nil {
		t.Fatal(err)
	}
	watcher.Start()
	if err := watcher.Close(); err != nil {
		t.Errorf("first close: %v", err)
	}
	if err := watcher.Close(); err != nil {
		t.Errorf("second close: %v", err)
	}
}
