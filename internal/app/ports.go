package app

import (
	"context"
	"io/fs"
	"time"

	"github.com/elhombrefiero/pic-org/internal/domain"
)

type FileSystem interface {
	ReadDir(path string) ([]fs.DirEntry, error)
	Stat(path string) (fs.FileInfo, error)
	// Timestamps returns the creation and modification time of path, both UTC.
	Timestamps(path string) (created, modified time.Time, err error)
	MkdirAll(path string, perm fs.FileMode) error
	CopyFile(src, dst string) error
}

type MetadataReader interface {
	// Open validates that path decodes as an image and returns its metadata
	// tags. An image without embedded metadata yields empty tags, not an
	// error.
	Open(ctx context.Context, path string) (domain.ImageMeta, error)
}
