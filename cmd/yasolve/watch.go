package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"
	log "github.com/sirupsen/logrus"
)

// watchDir solves every .cnf file already present in dir, then keeps
// watching (non-recursively) for new ones, solving each as it appears.
// Watcher errors are logged and watching continues; it returns nil once the
// watcher's event or error channel is closed.
func watchDir(dir string, cfg runConfig) error {
	matches, err := filepath.Glob(filepath.Join(dir, "*.cnf"))
	if err != nil {
		return fmt.Errorf("yasolve: %w", err)
	}
	for _, path := range matches {
		if err := solveFile(path, cfg); err != nil {
			log.Errorf("solving %s: %s", path, err)
		}
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("yasolve: %w", err)
	}
	defer w.Close()

	if err := w.Add(dir); err != nil {
		return fmt.Errorf("yasolve: watching %s: %w", dir, err)
	}
	log.Infof("watching %s for new .cnf files", dir)

	for {
		select {
		case event, ok := <-w.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Create|fsnotify.Write) == 0 || !strings.HasSuffix(event.Name, ".cnf") {
				continue
			}
			if err := solveFile(event.Name, cfg); err != nil {
				log.Errorf("solving %s: %s", event.Name, err)
			}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			log.Warnf("watcher error: %s", err)
		}
	}
}
