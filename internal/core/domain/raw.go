package domain

// RawDocument is a project document as returned by a source capability,
// before it is associated with the project ID it was requested under.
type RawDocument struct {
	// Title is the document title.
	Title string

	// Content is the plain-text body.
	Content string

	// URL is a browsable link to the document.
	URL string
}
