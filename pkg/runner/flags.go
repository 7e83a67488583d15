package runner

import (
	"fmt"
	"strconv"
	"strings"

	"ufc/pkg/settings"
)

// FlagAliases defines a group of flag names that are aliases for the same option
type FlagAliases struct {
	Names    []string // e.g., ["-w", "--watch"]
	TakesArg bool     // true if the flag takes an argument

	// Canonical normalizes a value before comparison, so "2" and "2s" agree.
	// Values it cannot normalize are compared verbatim.
	Canonical func(string) (string, error)
}

// flagUse is one occurrence of a wrapper flag, as spelled on the command line.
type flagUse struct {
	name  string
	value string
}

// CheckDuplicateFlags scans args for duplicate flags with conflicting values
// Returns an error describing the conflict, or nil if no conflicts found
func CheckDuplicateFlags(args []string, flagGroups []FlagAliases) error {
	for gi, uses := range scanFlagUses(args, flagGroups) {
		if len(uses) < 2 {
			continue
		}
		first := canonical(flagGroups[gi], uses[0].value)
		for _, other := range uses[1:] {
			if canonical(flagGroups[gi], other.value) == first {
				continue
			}
			names := make([]string, len(uses))
			values := make([]string, len(uses))
			for i, u := range uses {
				names[i], values[i] = u.name, u.value
			}
			return fmt.Errorf("conflicting flags: %s specified multiple times with different values (%s)",
				strings.Join(names, ", "), strings.Join(values, " vs "))
		}
	}
	return nil
}

// scanFlagUses collects every occurrence of each group's flags, indexed like
// groups. It follows pflag's spellings: "--watch 5", "--watch=5", "-w 5",
// "-w=5", "-w5", and clustered shorthands such as "-tn" or "-tw5".
// Scanning stops at "--".
func scanFlagUses(args []string, groups []FlagAliases) [][]flagUse {
	uses := make([][]flagUse, len(groups))
	groupOf := func(name string) int {
		for gi, g := range groups {
			for _, n := range g.Names {
				if n == name {
					return gi
				}
			}
		}
		return -1
	}

	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "--":
			return uses
		case strings.HasPrefix(arg, "--"):
			name, value, attached := strings.Cut(arg, "=")
			gi := groupOf(name)
			if gi < 0 {
				continue
			}
			if !attached {
				value = "true"
				if groups[gi].TakesArg {
					if i+1 >= len(args) {
						continue
					}
					i++
					value = args[i]
				}
			}
			uses[gi] = append(uses[gi], flagUse{name: name, value: value})
		case strings.HasPrefix(arg, "-") && len(arg) > 1:
			for j := 1; j < len(arg); j++ {
				name := "-" + arg[j:j+1]
				gi := groupOf(name)
				if gi < 0 {
					continue
				}
				rest := arg[j+1:]
				if !groups[gi].TakesArg {
					// "-t=false" ends the cluster
					if v, ok := strings.CutPrefix(rest, "="); ok {
						uses[gi] = append(uses[gi], flagUse{name: name, value: v})
						break
					}
					uses[gi] = append(uses[gi], flagUse{name: name, value: "true"})
					continue
				}
				value := strings.TrimPrefix(rest, "=")
				if rest == "" {
					if i+1 >= len(args) {
						break
					}
					i++
					value = args[i]
				}
				uses[gi] = append(uses[gi], flagUse{name: name, value: value})
				break
			}
		}
	}
	return uses
}

func canonical(group FlagAliases, value string) string {
	if group.Canonical == nil {
		return value
	}
	if c, err := group.Canonical(value); err == nil {
		return c
	}
	return value
}

// GlobalFlagGroups returns the wrapper's own flags. Arguments of the wrapped
// command are never checked against them.
func GlobalFlagGroups() []FlagAliases {
	return []FlagAliases{
		{Names: []string{"-w", "--watch"}, TakesArg: true, Canonical: canonicalWatch},
		{Names: []string{"-t", "--time"}, Canonical: canonicalBool},
		{Names: []string{"-n", "--nocolor"}, Canonical: canonicalBool},
		{Names: []string{"-b", "--boost"}, Canonical: canonicalBool},
		{Names: []string{"-u", "--universal"}, Canonical: canonicalBool},
	}
}

func canonicalWatch(v string) (string, error) {
	d, err := settings.ParseWatch(v)
	if err != nil {
		return "", err
	}
	return d.String(), nil
}

func canonicalBool(v string) (string, error) {
	b, err := strconv.ParseBool(v)
	if err != nil {
		return "", err
	}
	return strconv.FormatBool(b), nil
}

// leadingArgs returns the wrapper arguments that precede the wrapped command.
// rest is the positional tail cobra handed to the root command.
func leadingArgs(all, rest []string) []string {
	n := len(all) - len(rest)
	if n < 0 {
		return nil
	}
	return all[:n]
}
