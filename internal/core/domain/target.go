package domain

// Rendering selects how roadmap records are rendered into a generated region.
type Rendering string

const (
	// RenderingArrayEntries renders object-literal array entries, countries in
	// encounter order within each launch date.
	RenderingArrayEntries Rendering = "array-entries"

	// RenderingMapEntries renders key/value map entries, countries sorted
	// alphabetically within each launch date.
	RenderingMapEntries Rendering = "map-entries"
)

// IsValid reports whether r is a known rendering.
func (r Rendering) IsValid() bool {
	switch r {
	case RenderingArrayEntries, RenderingMapEntries:
		return true
	default:
		return false
	}
}

// TargetFile maps a logical name to a file in the target repository and the
// pattern that locates its generated region.
type TargetFile struct {
	// LogicalName identifies the target (e.g. "integration_details").
	LogicalName string

	// Path is relative to the repository root.
	Path string

	// Pattern is a regular expression locating the generated region.
	// A named group "region" marks the replaced span; otherwise the whole match is replaced.
	Pattern string

	// Rendering selects the section generator for this file.
	Rendering Rendering
}

// FileOutcome is the result of updating a single target file.
type FileOutcome struct {
	LogicalName string
	Path        string

	// Changed is true when new content was written.
	Changed bool

	// Err is set when the file could not be updated. The file is untouched.
	Err error
}

// OK reports whether the update completed without error.
func (o FileOutcome) OK() bool {
	return o.Err == nil
}
