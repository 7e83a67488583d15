package palette

import (
	"errors"
	"regexp/syntax"
	"strings"
	"testing"

	"ufc/pkg/colors"
)

func TestCompile_PreservesOrder(t *testing.T) {
	reg, err := Compile([]Spec{
		{Pattern: `a`, Colors: []colors.Color{colors.Red}},
		{Pattern: `b`, Colors: []colors.Color{colors.Green}},
		{Pattern: `c`, Colors: []colors.Color{colors.Blue}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if reg.Len() != 3 {
		t.Fatalf("expected 3 rules, got %d", reg.Len())
	}
	want := []string{"a", "b", "c"}
	for i, rule := range reg.Rules() {
		if rule.Pattern().String() != want[i] {
			t.Errorf("rule %d: expected pattern %q, got %q", i, want[i], rule.Pattern().String())
		}
	}
}

func TestCompile_MalformedPattern(t *testing.T) {
	_, err := Compile([]Spec{
		{Pattern: `ok`, Colors: []colors.Color{colors.Red}},
		{Pattern: `(unclosed`, Colors: []colors.Color{colors.Red}},
	})
	if err == nil {
		t.Fatal("expected error for malformed pattern")
	}

	var cfgErr *ConfigError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("expected *ConfigError, got %T", err)
	}
	if cfgErr.Index != 1 {
		t.Errorf("expected index 1, got %d", cfgErr.Index)
	}
	if cfgErr.Pattern != "(unclosed" {
		t.Errorf("expected pattern '(unclosed', got %q", cfgErr.Pattern)
	}
	var synErr *syntax.Error
	if !errors.As(err, &synErr) {
		t.Errorf("expected wrapped *syntax.Error, got %v", cfgErr.Err)
	}
}

func TestCompile_NoColors(t *testing.T) {
	_, err := Compile([]Spec{{Pattern: `x`}})
	if err == nil {
		t.Fatal("expected error for rule without colors")
	}
	if !strings.Contains(err.Error(), "no colors") {
		t.Errorf("expected error to mention 'no colors', got: %v", err)
	}
}

func TestCompile_CopiesColors(t *testing.T) {
	cs := []colors.Color{colors.Red, colors.Green}
	reg := MustCompile([]Spec{{Pattern: `(x)`, Colors: cs}})
	cs[0] = colors.Blue

	if got := reg.Rules()[0].Color(0); got != colors.Red {
		t.Errorf("expected registry to be unaffected by caller mutation, got %s", got)
	}
}

func TestRule_ColorOutOfRange(t *testing.T) {
	reg := MustCompile([]Spec{{Pattern: `(a)(b)(c)`, Colors: []colors.Color{colors.Red, colors.Green}}})
	rule := reg.Rules()[0]

	if got := rule.Color(1); got != colors.Green {
		t.Errorf("expected green for slot 1, got %s", got)
	}
	for _, i := range []int{-1, 2, 3, 10} {
		if got := rule.Color(i); got != colors.Default {
			t.Errorf("slot %d: expected default, got %s", i, got)
		}
	}
}

func TestMustCompile_Panics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected MustCompile to panic on malformed pattern")
		}
	}()
	MustCompile([]Spec{{Pattern: `[`, Colors: []colors.Color{colors.Red}}})
}

func TestNilRegistry(t *testing.T) {
	var reg *Registry
	if reg.Len() != 0 || reg.Rules() != nil {
		t.Error("expected nil registry to behave as empty")
	}
}
