package fs

import (
	"io"
	"io/fs"
	"os"
	"time"

	"github.com/djherbis/times"
)

type OSFS struct{}

func (OSFS) ReadDir(path string) ([]fs.DirEntry, error) {
	return os.ReadDir(path)
}

func (OSFS) Stat(path string) (fs.FileInfo, error) {
	return os.Stat(path)
}

// Timestamps returns the creation and modification time of path in UTC.
// Filesystems without birth time fall back to the inode change time, then to
// the modification time.
func (OSFS) Timestamps(path string) (created, modified time.Time, err error) {
	ts, err := times.Stat(path)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}

	modified = ts.ModTime().UTC()
	switch {
	case ts.HasBirthTime():
		created = ts.BirthTime().UTC()
	case ts.HasChangeTime():
		created = ts.ChangeTime().UTC()
	default:
		created = modified
	}
	return created, modified, nil
}

func (OSFS) MkdirAll(path string, perm fs.FileMode) error {
	return os.MkdirAll(path, perm)
}

// CopyFile copies src to dst, truncating dst if it already exists.
func (OSFS) CopyFile(src, dst string) error {
	srcFile, err := os.Open(src)
	if err != nil {
		return err
	}
	defer srcFile.Close()

	info, err := srcFile.Stat()
	if err != nil {
		return err
	}

	dstFile, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, info.Mode())
	if err != nil {
		return err
	}
	defer dstFile.Close()

	if _, err := io.Copy(dstFile, srcFile); err != nil {
		return err
	}

	return nil
}
