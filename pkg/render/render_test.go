package render

import (
	"strings"
	"testing"

	xansi "github.com/charmbracelet/x/ansi"

	"ufc/pkg/colors"
	"ufc/pkg/highlight"
	"ufc/pkg/palette"
)

func pingRegistry() *palette.Registry {
	return palette.MustCompile([]palette.Spec{
		{Pattern: `\d{1,3}\.\d{1,3}\.\d{1,3}\.\d{1,3}`, Colors: []colors.Color{colors.BoldBlue}},
		{Pattern: `icmp_seq=(\d+)`, Colors: []colors.Color{colors.Default, colors.Magenta}},
		{Pattern: `ttl=(\d+)`, Colors: []colors.Color{colors.Default, colors.Magenta}},
		{Pattern: `([0-9.]+)\s?ms`, Colors: []colors.Color{colors.Green, colors.BoldGreen}},
	})
}

const pingLine = "64 bytes from 8.8.8.8: icmp_seq=1 ttl=116 time=4.05 ms"

func TestPaint_Sequences(t *testing.T) {
	r := New(true)

	tests := []struct {
		name     string
		color    colors.Color
		expected string
	}{
		{"default", colors.Default, "X"},
		{"red", colors.Red, "\x1b[31mX\x1b[0m"},
		{"bold blue", colors.BoldBlue, "\x1b[34;1mX\x1b[0m"},
		{"gray", colors.Fg(colors.GrayName), "\x1b[90mX\x1b[0m"},
		{"on red", colors.OnRed, "\x1b[41mX\x1b[0m"},
		{"bold only", colors.BoldDefault, "\x1b[1mX\x1b[0m"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := r.Paint(tc.color, "X"); got != tc.expected {
				t.Errorf("Paint(%s) = %q, want %q", tc.color, got, tc.expected)
			}
		})
	}
}

func TestPaint_InheritRendersPlain(t *testing.T) {
	r := New(true)
	if got := r.Paint(colors.Inherit, "X"); got != "X" {
		t.Errorf("expected unresolved inherit to render plain, got %q", got)
	}
}

func TestPaint_UnknownNameStillRenders(t *testing.T) {
	r := New(true)
	got := r.Paint(colors.Color{Fg: colors.Name(99), Bold: true}, "X")
	if xansi.Strip(got) != "X" {
		t.Errorf("expected text to survive unknown color, got %q", got)
	}
}

func TestRender_EndsWithSingleNewline(t *testing.T) {
	r := New(true)
	out := string(r.Render(highlight.Highlight(pingLine, pingRegistry())))

	if !strings.HasSuffix(out, "\n") || strings.HasSuffix(out, "\n\n") {
		t.Errorf("expected exactly one trailing newline, got %q", out)
	}
	if !strings.Contains(out, "\x1b[") {
		t.Error("expected escape sequences when color is enabled")
	}
	if got := xansi.Strip(out); got != pingLine+"\n" {
		t.Errorf("stripped output = %q, want %q", got, pingLine+"\n")
	}
}

func TestRender_ColoredFragments(t *testing.T) {
	r := New(true)
	out := string(r.Render(highlight.Highlight(pingLine, pingRegistry())))

	for _, want := range []string{
		r.Paint(colors.BoldBlue, "8.8.8.8"),
		r.Paint(colors.Magenta, "116"),
		r.Paint(colors.BoldGreen, "4.05"),
		r.Paint(colors.Green, " ms"),
	} {
		if !strings.Contains(out, want) {
			t.Errorf("expected output to contain %q, got %q", want, out)
		}
	}
}

func TestRender_NoColor(t *testing.T) {
	r := New(false)
	out := string(r.Render(highlight.Highlight(pingLine, pingRegistry())))

	if out != pingLine+"\n" {
		t.Errorf("expected plain text %q, got %q", pingLine+"\n", out)
	}
	if r.ColorEnabled() {
		t.Error("expected ColorEnabled() to be false")
	}
}

func TestRender_EmptyLine(t *testing.T) {
	r := New(true)
	if got := string(r.Render(highlight.Line{})); got != "\n" {
		t.Errorf("expected lone newline, got %q", got)
	}
}

func TestAppendLine_Appends(t *testing.T) {
	r := New(false)
	buf := []byte("a\n")
	buf = r.AppendLine(buf, highlight.Line{{Text: "b", Color: colors.Red}})
	if string(buf) != "a\nb\n" {
		t.Errorf("expected 'a\\nb\\n', got %q", buf)
	}
}
