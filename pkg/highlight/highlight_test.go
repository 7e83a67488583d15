package highlight

import (
	"math/rand/v2"
	"reflect"
	"testing"

	"ufc/pkg/colors"
	"ufc/pkg/palette"
)

func reg(specs ...palette.Spec) *palette.Registry {
	return palette.MustCompile(specs)
}

func spec(pattern string, cs ...colors.Color) palette.Spec {
	return palette.Spec{Pattern: pattern, Colors: cs}
}

func assertLine(t *testing.T, got Line, want Line) {
	t.Helper()
	if !reflect.DeepEqual(got, want) {
		t.Errorf("fragments mismatch\n got: %s\nwant: %s", describe(got), describe(want))
	}
}

func describe(l Line) string {
	s := ""
	for i, f := range l {
		if i > 0 {
			s += " | "
		}
		s += "[" + f.Text + "]" + f.Color.String()
	}
	return s
}

func TestHighlight_PingLine(t *testing.T) {
	r := reg(
		spec(`\d{1,3}\.\d{1,3}\.\d{1,3}\.\d{1,3}`, colors.BoldBlue),
		spec(`icmp_seq=(\d+)`, colors.Default, colors.Magenta),
		spec(`ttl=(\d+)`, colors.Default, colors.Magenta),
		spec(`([0-9.]+)\s?ms`, colors.Green, colors.BoldGreen),
	)

	got := Highlight("64 bytes from 8.8.8.8: icmp_seq=1 ttl=116 time=4.05 ms", r)

	assertLine(t, got, Line{
		{"64 bytes from ", colors.Default},
		{"8.8.8.8", colors.BoldBlue},
		{": ", colors.Default},
		{"icmp_seq=", colors.Default},
		{"1", colors.Magenta},
		{" ", colors.Default},
		{"ttl=", colors.Default},
		{"116", colors.Magenta},
		{" time=", colors.Default},
		{"4.05", colors.BoldGreen},
		{" ms", colors.Green},
	})
}

func TestHighlight_NoRules(t *testing.T) {
	got := Highlight("plain text", reg())
	assertLine(t, got, Line{{"plain text", colors.Default}})

	got = Highlight("plain text", nil)
	assertLine(t, got, Line{{"plain text", colors.Default}})
}

func TestHighlight_EmptyLine(t *testing.T) {
	got := Highlight("", reg(spec(`.*`, colors.Red)))
	if len(got) != 0 {
		t.Errorf("expected no fragments for empty line, got %s", describe(got))
	}
}

func TestHighlight_UndeclaredGroupIsDefault(t *testing.T) {
	r := reg(spec(`(a)(b)(c)`, colors.Red, colors.Green))

	got := Highlight("xabcx", r)

	assertLine(t, got, Line{
		{"x", colors.Default},
		{"a", colors.Green},
		{"b", colors.Default},
		{"c", colors.Default},
		{"x", colors.Default},
	})
}

func TestHighlight_WholeMatchWithoutGroups(t *testing.T) {
	r := reg(spec(`(x)?y`, colors.Red, colors.Green))

	got := Highlight("ay", r)

	assertLine(t, got, Line{
		{"a", colors.Default},
		{"y", colors.Red},
	})
}

func TestHighlight_AlternationUsesParticipatingGroup(t *testing.T) {
	r := reg(spec(`(a)|(b)`, colors.Red, colors.Green, colors.Blue))

	got := Highlight("b", r)

	assertLine(t, got, Line{{"b", colors.Blue}})
}

func TestHighlight_NestedGroupOuterWins(t *testing.T) {
	r := reg(spec(`((\d+)ms)`, colors.Green, colors.Red, colors.Blue))

	got := Highlight("took 5ms", r)

	assertLine(t, got, Line{
		{"took ", colors.Default},
		{"5ms", colors.Red},
	})
}

func TestHighlight_AllOccurrencesInOnePass(t *testing.T) {
	r := reg(spec(`\d+`, colors.Blue))

	got := Highlight("1 22 333", r)

	assertLine(t, got, Line{
		{"1", colors.Blue},
		{" ", colors.Default},
		{"22", colors.Blue},
		{" ", colors.Default},
		{"333", colors.Blue},
	})
}

func TestHighlight_AnchorsAreFragmentLocal(t *testing.T) {
	r := reg(
		spec(`X`, colors.Red),
		spec(`^y`, colors.Blue),
	)

	got := Highlight("Xyy", r)

	assertLine(t, got, Line{
		{"X", colors.Red},
		{"y", colors.Blue},
		{"y", colors.Default},
	})
}

func TestHighlight_FreezeOnColor(t *testing.T) {
	r := reg(
		spec(`abc`, colors.Red),
		spec(`b`, colors.Blue),
	)

	got := Highlight("abc", r)

	assertLine(t, got, Line{{"abc", colors.Red}})
}

func TestHighlight_Priority(t *testing.T) {
	tests := []struct {
		name  string
		rules []palette.Spec
		input string
		want  Line
	}{
		{
			name:  "earlier shorter rule wins",
			rules: []palette.Spec{spec(`foo`, colors.Red), spec(`foobar`, colors.Green)},
			input: "foobar",
			want:  Line{{"foo", colors.Red}, {"bar", colors.Default}},
		},
		{
			name:  "earlier rule claims overlap",
			rules: []palette.Spec{spec(`o+`, colors.Red), spec(`fo`, colors.Green)},
			input: "foo",
			want:  Line{{"f", colors.Default}, {"oo", colors.Red}},
		},
		{
			name:  "later rule fills gaps",
			rules: []palette.Spec{spec(`a`, colors.Red), spec(`b`, colors.Green)},
			input: "ab",
			want:  Line{{"a", colors.Red}, {"b", colors.Green}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Highlight(tt.input, reg(tt.rules...))
			assertLine(t, got, tt.want)
		})
	}
}

func TestHighlight_DefaultConnectiveStaysEligible(t *testing.T) {
	r := reg(
		spec(`seq=(\d+)`, colors.Default, colors.Magenta),
		spec(`seq`, colors.Yellow),
	)

	got := Highlight("seq=7", r)

	assertLine(t, got, Line{
		{"seq", colors.Yellow},
		{"=", colors.Default},
		{"7", colors.Magenta},
	})
}

func TestHighlight_InheritResolvesToPreviousColor(t *testing.T) {
	r := reg(
		spec(`ERROR`, colors.Red),
		spec(`code=(\d+)`, colors.Inherit, colors.Inherit),
	)

	got := Highlight("ERROR code=42", r)

	assertLine(t, got, Line{
		{"ERROR", colors.Red},
		{" ", colors.Default},
		{"code=", colors.Red},
		{"42", colors.Red},
	})
}

func TestHighlight_InheritFollowsConnective(t *testing.T) {
	r := reg(spec(`(\w+)=(\w+)`, colors.Cyan, colors.Inherit, colors.Yellow))

	got := Highlight("k=v", r)

	assertLine(t, got, Line{
		{"k", colors.Cyan},
		{"=", colors.Cyan},
		{"v", colors.Yellow},
	})
}

func TestHighlight_InheritWithoutHistoryIsDefault(t *testing.T) {
	r := reg(spec(`x(\d)`, colors.Inherit, colors.Blue))

	got := Highlight("x1", r)

	assertLine(t, got, Line{
		{"x", colors.Default},
		{"1", colors.Blue},
	})
}

func TestHighlight_InheritResetsPerLine(t *testing.T) {
	r := reg(
		spec(`ERROR`, colors.Red),
		spec(`code`, colors.Inherit),
	)

	first := Highlight("ERROR code", r)
	if first[len(first)-1].Color != colors.Red {
		t.Fatalf("expected inherited red on first line, got %s", describe(first))
	}

	second := Highlight("code", r)
	assertLine(t, second, Line{{"code", colors.Default}})
}

func TestHighlight_UnicodeText(t *testing.T) {
	r := reg(spec(`\d+`, colors.Green))

	got := Highlight("héllo 42 wörld", r)

	assertLine(t, got, Line{
		{"héllo ", colors.Default},
		{"42", colors.Green},
		{" wörld", colors.Default},
	})
}

func TestHighlight_Properties(t *testing.T) {
	r := reg(
		spec(`\d{1,3}\.\d{1,3}\.\d{1,3}\.\d{1,3}`, colors.BoldBlue),
		spec(`(a+)(b)?`, colors.Inherit, colors.Red, colors.Green),
		spec(`=(\d+)`, colors.Default, colors.Magenta),
		spec(`^x`, colors.Yellow),
		spec(`(\d)(\d)(\d)`, colors.Cyan),
		spec(`b*`, colors.DimGreen),
		spec(`\s+$`, colors.OnRed),
	)

	alphabet := []rune("ab1.2=x \té")
	rng := rand.New(rand.NewPCG(1, 2))

	for n := 0; n < 500; n++ {
		length := rng.IntN(40)
		runes := make([]rune, length)
		for i := range runes {
			runes[i] = alphabet[rng.IntN(len(alphabet))]
		}
		input := string(runes)

		got := Highlight(input, r)

		if text := got.Text(); text != input {
			t.Fatalf("round trip failed: input %q, got %q", input, text)
		}
		for i, f := range got {
			if f.Text == "" {
				t.Fatalf("input %q: fragment %d is empty", input, i)
			}
			if f.Color.IsInherit() {
				t.Fatalf("input %q: fragment %d left unresolved", input, i)
			}
		}
	}
}

func TestLine_Text(t *testing.T) {
	l := Line{{"a", colors.Red}, {"b", colors.Default}, {"c", colors.Blue}}
	if got := l.Text(); got != "abc" {
		t.Errorf("expected 'abc', got %q", got)
	}
}
