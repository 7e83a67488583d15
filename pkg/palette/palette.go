// Package palette holds the ordered regex rules used to color one command's output.
package palette

import (
	"errors"
	"fmt"
	"regexp"

	"ufc/pkg/colors"
)

// Spec is the uncompiled form of a Rule, as written in command tables.
// Colors[0] colors the whole match (or the connective text between groups);
// Colors[i] colors capture group i.
type Spec struct {
	Pattern string
	Colors  []colors.Color
}

// Rule pairs a compiled pattern with its colors. Rules are immutable once compiled.
type Rule struct {
	pattern *regexp.Regexp
	colors  []colors.Color
}

// Pattern returns the compiled expression.
func (r *Rule) Pattern() *regexp.Regexp { return r.pattern }

// Color returns the color for slot i (0 = whole match / connective, i >= 1 = group i).
// Slots the rule does not declare are Default.
func (r *Rule) Color(i int) colors.Color {
	if i < 0 || i >= len(r.colors) {
		return colors.Default
	}
	return r.colors[i]
}

// Registry is an ordered list of rules; earlier rules claim text first.
type Registry struct {
	rules []*Rule
}

// Rules returns the rules in priority order. The slice must not be modified.
func (r *Registry) Rules() []*Rule {
	if r == nil {
		return nil
	}
	return r.rules
}

// Len returns the number of rules.
func (r *Registry) Len() int { return len(r.Rules()) }

// ConfigError reports a rule that could not be compiled.
type ConfigError struct {
	Index   int    // position of the rule in its table
	Pattern string // offending pattern source
	Err     error
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	return fmt.Sprintf("palette rule %d %q: %v", e.Index, e.Pattern, e.Err)
}

// Unwrap returns the underlying error.
func (e *ConfigError) Unwrap() error {
	return e.Err
}

// errNoColors is returned for rules that declare no colors at all.
var errNoColors = errors.New("rule declares no colors")

// Compile builds a Registry from specs, failing on the first bad rule.
func Compile(specs []Spec) (*Registry, error) {
	rules := make([]*Rule, 0, len(specs))
	for i, spec := range specs {
		if len(spec.Colors) == 0 {
			return nil, &ConfigError{Index: i, Pattern: spec.Pattern, Err: errNoColors}
		}
		re, err := regexp.Compile(spec.Pattern)
		if err != nil {
			return nil, &ConfigError{Index: i, Pattern: spec.Pattern, Err: err}
		}
		cs := make([]colors.Color, len(spec.Colors))
		copy(cs, spec.Colors)
		rules = append(rules, &Rule{pattern: re, colors: cs})
	}
	return &Registry{rules: rules}, nil
}

// MustCompile is like Compile but panics on error. It is intended for tests
// and package-level tables known to be valid.
func MustCompile(specs []Spec) *Registry {
	reg, err := Compile(specs)
	if err != nil {
		panic(err)
	}
	return reg
}
