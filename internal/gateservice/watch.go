package gateservice

import (
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/vrslev/pi-guard/internal/engine"
)

// WatchSettings implements SPEC_FULL.md §4.11: it watches eng's settings
// file directory for changes (fsnotify watches directories more reliably
// than individual files across editors' write-via-rename patterns) and
// reloads the in-memory record whenever the settings file itself is
// touched. The returned watcher must be Closed by the caller on shutdown.
func WatchSettings(eng *engine.Engine) (*fsnotify.Watcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	settingsPath := eng.SettingsPath()
	dir := filepath.Dir(settingsPath)
	if err := watcher.Add(dir); err != nil {
		watcher.Close()
		return nil, err
	}

	go func() {
		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != filepath.Clean(settingsPath) {
					continue
				}
				if event.Op&(fsnotify.Write|fsnotify.Create) != 0 {
					eng.ReloadSettings()
				}
			case _, ok := <-watcher.Errors:
				if !ok {
					return
				}
			}
		}
	}()

	return watcher, nil
}
