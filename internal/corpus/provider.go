// Package corpus reads the on-disk manual-page store.
package corpus

import "time"

// Provider is the read-only interface the request pipeline needs from the
// manual-page store. All methods address pages by (section, name); path
// derivation is the provider's business.
type Provider interface {
	// Probe reports whether the canonical page file name.section.gz exists
	// in the given section's directory.
	Probe(section, name string) bool
	// Path returns the backing file path for section/name. The file is not
	// required to exist.
	Path(section, name string) string
	// ModTime returns the modification time of the backing file.
	ModTime(section, name string) (time.Time, error)
	// FirstLine decompresses the backing file and returns its first text
	// line with the trailing newline removed.
	FirstLine(section, name string) (string, error)
}
