package domain

import (
	"fmt"
	"path/filepath"
	"time"
)

// Placement is the destination computed for one image: a year/month-name
// directory under the storage root, keeping the original basename.
type Placement struct {
	Dir      string
	Filename string
}

// PlacementFor derives the destination for a file whose earliest known date
// is earliest. The month folder uses the full English month name.
func PlacementFor(storageRoot string, earliest time.Time, filename string) Placement {
	return Placement{
		Dir:      filepath.Join(storageRoot, fmt.Sprintf("%04d", earliest.Year()), earliest.Month().String()),
		Filename: filename,
	}
}

// Path is the full destination path.
func (p Placement) Path() string {
	return filepath.Join(p.Dir, p.Filename)
}
