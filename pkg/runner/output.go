package runner

import (
	"fmt"
	"io"
	"strings"
	"time"

	"ufc/pkg/commands"
)

// FormatElapsed renders the timing message printed before exit.
func FormatElapsed(d time.Duration) string {
	return fmt.Sprintf("\nThe subcommand took %s to finish\n", d.Round(time.Microsecond))
}

// SupportedCommands lists every wrapped tool with its summary, one per line.
func SupportedCommands() string {
	var b strings.Builder
	for _, d := range commands.All() {
		fmt.Fprintf(&b, "  %-12s %s\n", d.Name, d.Summary)
	}
	return b.String()
}

// WriteAliases prints one shell alias per supported command. prefix is
// prepended to the alias name ("u" gives "alias uping='ufc ping'").
func WriteAliases(w io.Writer, self, prefix string) error {
	for _, name := range commands.Names() {
		if _, err := fmt.Fprintf(w, "alias %s%s='%s %s'\n", prefix, name, self, name); err != nil {
			return err
		}
	}
	return nil
}
