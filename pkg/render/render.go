// Package render turns highlighted lines into terminal bytes.
package render

import (
	"github.com/muesli/termenv"

	"ufc/pkg/colors"
	"ufc/pkg/highlight"
)

// Renderer maps fragment colors to ANSI escape sequences. It always uses the
// ANSI profile: the wrapper colors output even when it is piped, and the
// caller turns coloring off explicitly instead.
type Renderer struct {
	color   bool
	profile termenv.Profile
}

// New returns a Renderer. With colorEnabled false it emits plain text.
func New(colorEnabled bool) *Renderer {
	return &Renderer{color: colorEnabled, profile: termenv.ANSI}
}

// ColorEnabled reports whether escape sequences are emitted.
func (r *Renderer) ColorEnabled() bool { return r.color }

// AppendLine appends the rendered line, terminated by a single newline, to buf.
func (r *Renderer) AppendLine(buf []byte, line highlight.Line) []byte {
	for _, f := range line {
		buf = append(buf, r.Paint(f.Color, f.Text)...)
	}
	return append(buf, '\n')
}

// Render returns the rendered line as a new byte slice.
func (r *Renderer) Render(line highlight.Line) []byte {
	return r.AppendLine(nil, line)
}

// Paint wraps text in the escape sequence for c followed by a reset.
// Default (and an unresolved Inherit) paint as plain text.
func (r *Renderer) Paint(c colors.Color, text string) string {
	if !r.color || text == "" || c.IsDefault() || c.IsInherit() {
		return text
	}

	style := r.profile.String(text)
	if c.Fg != colors.None {
		style = style.Foreground(ansi(c.Fg))
	}
	if c.Bg != colors.None {
		style = style.Background(ansi(c.Bg))
	}
	if c.Bold {
		style = style.Bold()
	}
	if c.Dim {
		style = style.Faint()
	}
	if c.Underline {
		style = style.Underline()
	}
	return style.String()
}

func ansi(n colors.Name) termenv.Color {
	switch n {
	case colors.BlackName:
		return termenv.ANSIBlack
	case colors.RedName:
		return termenv.ANSIRed
	case colors.GreenName:
		return termenv.ANSIGreen
	case colors.YellowName:
		return termenv.ANSIYellow
	case colors.BlueName:
		return termenv.ANSIBlue
	case colors.MagentaName:
		return termenv.ANSIMagenta
	case colors.CyanName:
		return termenv.ANSICyan
	case colors.WhiteName:
		return termenv.ANSIWhite
	case colors.GrayName:
		return termenv.ANSIBrightBlack
	}
	// Unknown names render muted rather than failing.
	return termenv.NoColor{}
}
