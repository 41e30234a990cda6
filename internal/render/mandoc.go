package render

import (
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"unicode/utf8"

	"github.com/vetle/manweb/internal/apperr"
)

// crossRefScheme rewrites man(7) cross references to this service's own URL
// shape, /{section}/{name}.{section}.html.
const crossRefScheme = "fragment,man=/%S/%N.%S.html"

const (
	shellHead = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8"/>
<meta name="viewport" content="width=device-width, initial-scale=1.0"/>
<link rel="stylesheet" href="%s" type="text/css" media="all">
</head>
<body>
`
	shellFoot = `
</body>
</html>
`
)

// Mandoc implements Formatter by invoking the mandoc tool in fragment mode
// and wrapping its output in the fixed document shell.
type Mandoc struct {
	bin        string
	stylesheet string
	run        func(bin string, args ...string) ([]byte, error)
}

// NewMandoc creates a Mandoc formatter using the given binary name and
// stylesheet href.
func NewMandoc(bin, stylesheet string) *Mandoc {
	return &Mandoc{
		bin:        bin,
		stylesheet: stylesheet,
		run:        runCommand,
	}
}

func runCommand(bin string, args ...string) ([]byte, error) {
	out, err := exec.Command(bin, args...).Output()
	// mandoc exits nonzero once messages reach its failure level but may
	// still emit a usable fragment; only spawn and I/O failures are fatal.
	var ee *exec.ExitError
	if errors.As(err, &ee) {
		err = nil
	}
	return out, err
}

// Render formats the compressed page at path. Output that does not decode as
// UTF-8 is reported as apperr.ErrInvalidData.
func (m *Mandoc) Render(path string) (string, error) {
	out, err := m.run(m.bin, m.args(path)...)
	if err != nil {
		return "", fmt.Errorf("render: %s %s: %w", m.bin, path, err)
	}
	if !utf8.Valid(out) {
		return "", fmt.Errorf("render: %s output: %w", m.bin, apperr.ErrInvalidData)
	}

	var b strings.Builder
	b.Grow(len(shellHead) + len(m.stylesheet) + len(out) + len(shellFoot))
	fmt.Fprintf(&b, shellHead, m.stylesheet)
	b.Write(out)
	b.WriteString(shellFoot)
	return b.String(), nil
}

func (m *Mandoc) args(path string) []string {
	return []string{"-T", "html", "-O", crossRefScheme, path}
}
