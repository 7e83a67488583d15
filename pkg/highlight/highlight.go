// Package highlight splits one line of text into colored fragments according
// to an ordered palette.
//
// Rules run in registry order. Each rule only looks at fragments that are
// still Default; once a fragment has any other color it is frozen for the
// rest of the line. Every pass builds a new fragment list, so the list being
// scanned is never mutated.
package highlight

import (
	"slices"
	"strings"

	"ufc/pkg/colors"
	"ufc/pkg/palette"
)

// Fragment is a colored substring of the input line.
type Fragment struct {
	Text  string
	Color colors.Color
}

// Line is the ordered fragment list for one input line. Concatenating the
// fragment texts reproduces the input exactly.
type Line []Fragment

// Text joins the fragment texts.
func (l Line) Text() string {
	var b strings.Builder
	for _, f := range l {
		b.WriteString(f.Text)
	}
	return b.String()
}

// Highlight colors line with reg. It keeps no state between calls: Inherit
// resolution starts at Default for every line.
func Highlight(line string, reg *palette.Registry) Line {
	frags := Line{{Text: line}}
	h := &highlighter{carry: colors.Default}
	for _, rule := range reg.Rules() {
		frags = h.apply(frags, rule)
	}

	out := frags[:0]
	for _, f := range frags {
		if f.Text != "" {
			out = append(out, f)
		}
	}
	return out
}

// highlighter carries the last resolved color across rules within one line.
type highlighter struct {
	carry colors.Color
}

// resolve turns Inherit into the carried color and records the result.
func (h *highlighter) resolve(c colors.Color) colors.Color {
	if c.IsInherit() {
		c = h.carry
	}
	h.carry = c
	return c
}

// apply runs one rule over every Default fragment. All non-overlapping
// matches inside a fragment are colored in this pass; the pieces the rule
// produces are not fed back into the same rule.
func (h *highlighter) apply(in Line, rule *palette.Rule) Line {
	out := make(Line, 0, len(in)+2)
	for _, frag := range in {
		if !frag.Color.IsDefault() {
			out = append(out, frag)
			continue
		}

		matches := rule.Pattern().FindAllStringSubmatchIndex(frag.Text, -1)
		if len(matches) == 0 {
			out = append(out, frag)
			continue
		}

		pos := 0
		for _, m := range matches {
			out = append(out, Fragment{Text: frag.Text[pos:m[0]]})
			out = h.split(out, frag.Text, m, rule)
			pos = m[1]
		}
		out = append(out, Fragment{Text: frag.Text[pos:]})
	}
	return out
}

type group struct {
	index      int
	start, end int
}

// split appends the interior segments of one match. Without participating
// groups the whole match takes color 0. Otherwise each group takes its own
// color and the text around the groups takes color 0.
func (h *highlighter) split(out Line, text string, m []int, rule *palette.Rule) Line {
	cursor := m[0]
	for _, g := range participating(m) {
		out = append(out,
			Fragment{Text: text[cursor:g.start], Color: h.resolve(rule.Color(0))},
			Fragment{Text: text[g.start:g.end], Color: h.resolve(rule.Color(g.index))},
		)
		cursor = g.end
	}
	return append(out, Fragment{Text: text[cursor:m[1]], Color: h.resolve(rule.Color(0))})
}

// participating returns the groups that matched, ordered by start offset.
// A group that begins inside an earlier kept group (nesting, or a repeated
// group captured from an earlier iteration) is dropped; the outer group wins.
func participating(m []int) []group {
	var groups []group
	for i := 1; i < len(m)/2; i++ {
		if m[2*i] < 0 {
			continue
		}
		groups = append(groups, group{index: i, start: m[2*i], end: m[2*i+1]})
	}
	if len(groups) < 2 {
		return groups
	}

	slices.SortStableFunc(groups, func(a, b group) int { return a.start - b.start })
	kept := groups[:0]
	last := -1
	for _, g := range groups {
		if g.start < last {
			continue
		}
		kept = append(kept, g)
		last = g.end
	}
	return kept
}
