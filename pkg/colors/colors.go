// Package colors describes terminal renderings as plain values.
// A Color is a structured record (foreground, background, attributes) so new
// combinations are built by composition instead of being enumerated.
package colors

// Name is one of the eight base ANSI colors, plus Gray (bright black).
// The zero value None means "terminal default".
type Name uint8

const (
	None Name = iota
	BlackName
	RedName
	GreenName
	YellowName
	BlueName
	MagentaName
	CyanName
	WhiteName
	GrayName
)

var nameStrings = [...]string{"none", "black", "red", "green", "yellow", "blue", "magenta", "cyan", "white", "gray"}

// String returns the lowercase color name.
func (n Name) String() string {
	if int(n) < len(nameStrings) {
		return nameStrings[n]
	}
	return "unknown"
}

// Color is a terminal rendering. The zero value is Default: no attributes,
// terminal default foreground and background.
//
// Color is comparable; two colors render identically iff they are ==.
type Color struct {
	Fg        Name
	Bg        Name
	Bold      bool
	Underline bool
	Dim       bool

	inherit bool
}

// Default renders with no attributes.
var Default = Color{}

// Inherit is a placeholder resolved by the highlighter to the last concrete
// color assigned on the current line. It is never rendered.
var Inherit = Color{inherit: true}

// Fg returns a color with only the foreground set.
func Fg(n Name) Color { return Color{Fg: n} }

// IsInherit reports whether c is the Inherit placeholder.
func (c Color) IsInherit() bool { return c.inherit }

// IsDefault reports whether c renders with no attributes.
func (c Color) IsDefault() bool { return c == Default }

// WithBold returns c with the bold attribute set.
func (c Color) WithBold() Color {
	c.Bold = true
	return c
}

// WithUnderline returns c with the underline attribute set.
func (c Color) WithUnderline() Color {
	c.Underline = true
	return c
}

// WithDim returns c with the dim (faint) attribute set.
func (c Color) WithDim() Color {
	c.Dim = true
	return c
}

// On returns c with background bg.
func (c Color) On(bg Name) Color {
	c.Bg = bg
	return c
}

// String describes the color for logs and test failures, e.g. "bold+blue on red".
func (c Color) String() string {
	if c.inherit {
		return "inherit"
	}
	if c == Default {
		return "default"
	}
	s := ""
	if c.Bold {
		s += "bold+"
	}
	if c.Dim {
		s += "dim+"
	}
	if c.Underline {
		s += "underline+"
	}
	if c.Fg != None {
		s += c.Fg.String()
	} else {
		s += "default"
	}
	if c.Bg != None {
		s += " on " + c.Bg.String()
	}
	return s
}

// Plain foreground colors
var (
	Black   = Fg(BlackName)
	Red     = Fg(RedName)
	Green   = Fg(GreenName)
	Yellow  = Fg(YellowName)
	Blue    = Fg(BlueName)
	Magenta = Fg(MagentaName)
	Cyan    = Fg(CyanName)
	White   = Fg(WhiteName)
)

// Bold foreground colors. BoldBlack renders as bold gray so it stays
// readable on dark terminals.
var (
	BoldDefault = Default.WithBold()
	BoldBlack   = Fg(GrayName).WithBold()
	BoldRed     = Red.WithBold()
	BoldGreen   = Green.WithBold()
	BoldYellow  = Yellow.WithBold()
	BoldBlue    = Blue.WithBold()
	BoldMagenta = Magenta.WithBold()
	BoldCyan    = Cyan.WithBold()
)

// Dim foreground colors
var (
	DimDefault = Default.WithDim()
	DimGreen   = Green.WithDim()
)

// Background-only and black-on-background colors
var (
	OnRed        = Default.On(RedName)
	OnYellow     = Default.On(YellowName)
	OnCyan       = Default.On(CyanName)
	BlackOnGreen = Black.On(GreenName)
)
