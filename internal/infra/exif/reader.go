package exif

import (
	"context"
	"image"
	"io"
	"os"
	"strings"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	goexif "github.com/rwcarlsen/goexif/exif"
	"github.com/rwcarlsen/goexif/tiff"

	"github.com/elhombrefiero/pic-org/internal/domain"
)

// Reader opens files as images and exposes their EXIF tags.
type Reader struct{}

// Open returns the metadata tags of the image at path. The file must decode
// as an image; a file that does not is an error. Absent or undecodable EXIF
// data is not an error, it yields empty tags.
func (Reader) Open(ctx context.Context, path string) (domain.ImageMeta, error) {
	select {
	case <-ctx.Done():
		return domain.ImageMeta{}, ctx.Err()
	default:
	}

	file, err := os.Open(path)
	if err != nil {
		return domain.ImageMeta{}, err
	}
	defer file.Close()

	if _, _, err := image.DecodeConfig(file); err != nil {
		return domain.ImageMeta{}, err
	}

	if _, err := file.Seek(0, io.SeekStart); err != nil {
		return domain.ImageMeta{}, err
	}

	x, err := goexif.Decode(file)
	if err != nil {
		return domain.ImageMeta{}, nil
	}

	collector := &tagCollector{}
	if err := x.Walk(collector); err != nil {
		return domain.ImageMeta{}, nil
	}

	return domain.ImageMeta{Tags: collector.tags}, nil
}

type tagCollector struct {
	tags []domain.Tag
}

func (c *tagCollector) Walk(name goexif.FieldName, tag *tiff.Tag) error {
	value, err := tag.StringVal()
	if err != nil {
		value = tag.String()
	}
	c.tags = append(c.tags, domain.Tag{
		Name:  symbolicName(string(name)),
		Value: value,
	})
	return nil
}

// symbolicName keeps only names that resolved from the tag id tables; ids
// surfaced as raw numeric identifiers come back empty so the caller skips
// them.
func symbolicName(name string) string {
	if name == "" || strings.HasPrefix(name, "0x") || strings.HasPrefix(name, "Unknown") {
		return ""
	}
	return name
}
