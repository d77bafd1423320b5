package app

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"time"

	"github.com/elhombrefiero/pic-org/internal/domain"
	appErrors "github.com/elhombrefiero/pic-org/internal/errors"
	"github.com/elhombrefiero/pic-org/internal/logging"
)

// exifTimeLayout is the fixed format of EXIF datetime tag values.
const exifTimeLayout = "2006:01:02 15:04:05"

// Placer resolves the earliest known date of one image and copies it into
// the storage tree under <storage>/<year>/<month-name>/.
type Placer struct {
	FS       FileSystem
	Metadata MetadataReader

	// Now supplies the current time for the malformed-tag fallback.
	// Defaults to time.Now.
	Now    func() time.Time
	Logger logging.Logger
}

// Place computes the destination of path under storageRoot and performs the
// copy. It returns Moved on success (dry run included) and Skipped with a
// typed error when the file could not be read as an image or the transfer
// was denied. Errors are per-file; the caller decides to continue.
func (p *Placer) Place(ctx context.Context, path, storageRoot string, dryRun bool) (domain.Outcome, error) {
	if p.FS == nil || p.Metadata == nil {
		return domain.Skipped, errors.New("placer requires FS and Metadata")
	}

	meta, err := p.Metadata.Open(ctx, path)
	if err != nil {
		return domain.Skipped, appErrors.Wrap(appErrors.UnreadableImage, "open", path, err)
	}

	created, modified, err := p.FS.Timestamps(path)
	if err != nil {
		return domain.Skipped, appErrors.Wrap(appErrors.UnreadableImage, "stat", path, err)
	}

	earliest := created
	if modified.Before(earliest) {
		earliest = modified
	}

	for _, tag := range meta.Tags {
		// Tags whose numeric id never resolved to a symbolic name are
		// skipped rather than compared.
		if tag.Name == "" {
			continue
		}
		if !strings.EqualFold(tag.Name, "datetime") {
			continue
		}
		candidate := p.dateCandidate(tag.Value)
		if candidate.Before(earliest) {
			earliest = candidate
		}
	}

	placement := domain.PlacementFor(storageRoot, earliest, filepath.Base(path))
	dest := placement.Path()
	p.Logger.Verbosef("Copying %s to %s", path, dest)

	if dryRun {
		return domain.Moved, nil
	}

	if err := p.FS.MkdirAll(placement.Dir, 0o755); err != nil {
		return domain.Skipped, appErrors.Wrap(appErrors.TransferDenied, "mkdir", dest, err)
	}
	if err := p.FS.CopyFile(path, dest); err != nil {
		return domain.Skipped, appErrors.Wrap(appErrors.TransferDenied, "copy", dest, err)
	}

	return domain.Moved, nil
}

// dateCandidate turns a datetime tag value into a candidate instant at
// start-of-day UTC. The time-of-day of a well-formed tag is discarded. A
// value that does not parse still produces a candidate: the current date
// stands in for it.
func (p *Placer) dateCandidate(value string) time.Time {
	t, err := time.Parse(exifTimeLayout, value)
	if err != nil {
		t = p.now().UTC()
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func (p *Placer) now() time.Time {
	if p.Now != nil {
		return p.Now()
	}
	return time.Now()
}
