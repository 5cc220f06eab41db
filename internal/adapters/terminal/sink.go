// Package terminal provides a severity-styled line sink with consistent
// color profile and TTY handling.
package terminal

import (
	"fmt"
	"io"
	"os"

	"github.com/Josmithr/rushstack/internal/core/domain"
	"github.com/Josmithr/rushstack/internal/core/ports"
	"github.com/muesli/termenv"
)

var _ ports.Terminal = (*Sink)(nil)

// ColorProfile returns the color profile to use. It honors NO_COLOR,
// returning Ascii if set, and otherwise detects the terminal's capabilities.
func ColorProfile() termenv.Profile {
	if os.Getenv("NO_COLOR") != "" {
		return termenv.Ascii
	}
	return termenv.EnvColorProfile()
}

// Sink implements ports.Terminal on top of a termenv.Output.
type Sink struct {
	out *termenv.Output
}

// New creates a new Sink. A nil writer defaults to stderr.
func New(w io.Writer, opts ...termenv.OutputOption) *Sink {
	if w == nil {
		w = os.Stderr
	}

	opts = append(opts, termenv.WithProfile(ColorProfile()))
	return &Sink{out: termenv.NewOutput(w, opts...)}
}

// WriteLine writes a single line styled for the given severity.
func (s *Sink) WriteLine(severity domain.TipSeverity, line string) {
	if s.out.Profile == termenv.Ascii {
		_, _ = fmt.Fprintln(s.out, line)
		return
	}
	_, _ = fmt.Fprintln(s.out, styleFor(severity).Render(line))
}
