package domain

// Tag is a single metadata tag read from an image.
//
// Name is the resolved symbolic name of the tag, or empty when the numeric
// tag id has no known symbolic name. Unnamed tags are carried through so the
// caller can decide to skip them explicitly.
type Tag struct {
	Name  string
	Value string
}

// ImageMeta holds the metadata tags of a successfully opened image. An image
// with no embedded metadata has an empty Tags slice.
type ImageMeta struct {
	Tags []Tag
}

// Outcome is the per-file result of a placement attempt.
type Outcome int

const (
	Skipped Outcome = iota
	Moved
)

func (o Outcome) String() string {
	if o == Moved {
		return "moved"
	}
	return "skipped"
}
