package presentation

import (
	"fmt"
	"io"
)

type Printer struct {
	Writer io.Writer
}

func (p Printer) PrintScan(dir, ext string) {
	fmt.Fprintf(p.Writer, "Looking for images in %s with extension %s\n", dir, ext)
}

func (p Printer) PrintFound(count int) {
	fmt.Fprintf(p.Writer, "Found %d images. Processing.\n", count)
}

// PrintSummary reports the final tally. When every found file was copied the
// source tree holds nothing the storage tree lacks, so deleting it is safe.
func (p Printer) PrintSummary(copied, found int, storageDir string) {
	fmt.Fprintf(p.Writer, "Copied %d images to %s\n", copied, storageDir)
	if found > 0 && copied == found {
		fmt.Fprintln(p.Writer, "All images copied. It is safe to delete the source directory.")
	}
}
