package app

import (
	"errors"
	"path/filepath"
	"strings"

	"github.com/elhombrefiero/pic-org/internal/logging"
)

// Locator finds image files under a directory tree.
type Locator struct {
	FS     FileSystem
	Logger logging.Logger
}

// Find returns every file under root (root itself included) whose name ends
// in "."+ext. The extension match is case-sensitive. Directories that cannot
// be read are skipped, not fatal; an empty result is valid.
func (l *Locator) Find(root, ext string) ([]string, error) {
	if l.FS == nil {
		return nil, errors.New("locator requires FS")
	}

	stop := l.Logger.Measure("Scanning for images")
	defer stop()

	suffix := "." + ext
	var found []string

	// Worklist instead of recursion; deep trees stay cheap.
	pending := []string{root}
	for len(pending) > 0 {
		dir := pending[len(pending)-1]
		pending = pending[:len(pending)-1]

		entries, err := l.FS.ReadDir(dir)
		if err != nil {
			l.Logger.Verbosef("Skipping unreadable directory %s: %v", dir, err)
			continue
		}

		for _, entry := range entries {
			path := filepath.Join(dir, entry.Name())
			if entry.IsDir() {
				pending = append(pending, path)
				continue
			}
			if strings.HasSuffix(entry.Name(), suffix) {
				found = append(found, path)
			}
		}
	}

	return found, nil
}
