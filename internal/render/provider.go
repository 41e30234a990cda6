// Package render turns compressed manual-page sources into HTML documents by
// driving an external formatter.
package render

// Formatter produces a complete HTML document for the manual page stored at
// path. Calls block until the formatter finishes; callers are expected to run
// them through the workers pool.
type Formatter interface {
	Render(path string) (string, error)
}
