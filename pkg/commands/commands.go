// Package commands maps wrapped tool names to their palette tables.
package commands

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"

	"ufc/pkg/palette"
)

// ErrUnsupported is returned when a tool has no table and universal mode is off.
var ErrUnsupported = errors.New("unsupported command")

// UniversalName identifies the fallback table.
const UniversalName = "universal"

// Definition describes one wrapped tool.
type Definition struct {
	Name    string
	Summary string
	Specs   []palette.Spec

	once sync.Once
	reg  *palette.Registry
	err  error
}

// Registry compiles the table on first use and caches the result.
func (d *Definition) Registry() (*palette.Registry, error) {
	d.once.Do(func() {
		d.reg, d.err = palette.Compile(d.Specs)
		if d.err != nil {
			d.err = fmt.Errorf("%s palette: %w", d.Name, d.err)
		}
	})
	return d.reg, d.err
}

var definitions = map[string]*Definition{}

var universal = &Definition{
	Name:    UniversalName,
	Summary: "Generic palette for commands without a dedicated one",
	Specs:   universalSpecs,
}

func register(d *Definition) {
	if _, dup := definitions[d.Name]; dup {
		panic("commands: duplicate definition " + d.Name)
	}
	definitions[d.Name] = d
}

func init() {
	register(&Definition{Name: "df", Summary: "Report file system disk space usage", Specs: dfSpecs})
	register(&Definition{Name: "dig", Summary: "DNS lookup utility", Specs: digSpecs})
	register(&Definition{Name: "docker", Summary: "Docker container and image listings", Specs: dockerSpecs})
	register(&Definition{Name: "du", Summary: "Estimate file space usage", Specs: duSpecs})
	register(&Definition{Name: "env", Summary: "Print the environment", Specs: envSpecs})
	register(&Definition{Name: "fdisk", Summary: "Partition table manipulator", Specs: fdiskSpecs})
	register(&Definition{Name: "findmnt", Summary: "Find a filesystem", Specs: findmntSpecs})
	register(&Definition{Name: "free", Summary: "Display amount of free and used memory", Specs: freeSpecs})
	register(&Definition{Name: "id", Summary: "Print real and effective user and group IDs", Specs: idSpecs})
	register(&Definition{Name: "ifconfig", Summary: "Configure a network interface", Specs: ifconfigSpecs})
	register(&Definition{Name: "journalctl", Summary: "Query the systemd journal", Specs: journalctlSpecs})
	register(&Definition{Name: "ping", Summary: "Send ICMP ECHO_REQUEST to network hosts", Specs: pingSpecs})
	register(&Definition{Name: "top", Summary: "Display Linux processes", Specs: topSpecs})
}

// Lookup returns the dedicated definition for name.
func Lookup(name string) (*Definition, bool) {
	d, ok := definitions[name]
	return d, ok
}

// Universal returns the fallback definition.
func Universal() *Definition {
	return universal
}

// Names returns the supported tool names, sorted.
func Names() []string {
	names := make([]string, 0, len(definitions))
	for name := range definitions {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// All returns the dedicated definitions sorted by name.
func All() []*Definition {
	names := Names()
	defs := make([]*Definition, len(names))
	for i, name := range names {
		defs[i] = definitions[name]
	}
	return defs
}

// Resolve picks the table for name. Unknown names fall back to the universal
// table when allowed; otherwise the error wraps ErrUnsupported.
func Resolve(name string, allowUniversal bool) (*Definition, error) {
	if d, ok := Lookup(name); ok {
		return d, nil
	}
	if allowUniversal {
		return universal, nil
	}
	return nil, fmt.Errorf("%w '%s'. Valid options: %s (or use --universal)",
		ErrUnsupported, name, strings.Join(Names(), ", "))
}
