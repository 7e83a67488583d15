package runner

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"ufc/pkg/commands"
	"ufc/pkg/logging"
	"ufc/pkg/settings"
	"ufc/pkg/supervisor"
)

// Version is printed by --version.
const Version = "v0.8.0"

// Runner wires the command line to the supervisor
type Runner struct {
	Name   string   // program name used in help and alias output
	Args   []string // arguments without the program name
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
	Exit   func(int)

	flags settings.Flags
	code  int

	mu       sync.Mutex // guards sup, settings and log
	sup      *supervisor.Supervisor
	settings settings.RunSettings
	log      *logging.Logger

	finishOnce sync.Once
}

// RunResult holds the result of a Run() invocation
type RunResult struct {
	ExitCode int
	Error    error
}

// runError creates a RunResult for an error condition
func runError(code int, err error) *RunResult {
	return &RunResult{ExitCode: code, Error: err}
}

// NewRunner creates a Runner bound to the process's own arguments and streams
func NewRunner(name string) *Runner {
	return &Runner{
		Name:   name,
		Args:   os.Args[1:],
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		Exit:   os.Exit,
		log:    logging.NopLogger(),
	}
}

// RunAndExit runs the wrapped command and exits with the appropriate code
// This is the entry point for the CLI binary
func (r *Runner) RunAndExit() {
	result := r.Run()
	if result.Error != nil {
		fmt.Fprintf(r.Stderr, "%s: %v\n", r.Name, result.Error)
	}
	r.finish(result.ExitCode)
}

// Run parses the arguments and executes the selected command. It never exits
// the process by itself, except on interrupt (see handleSignals).
func (r *Runner) Run() *RunResult {
	return r.ExecuteContext(context.Background())
}

// ExecuteContext is Run with a caller-supplied context; cancelling ctx
// interrupts the wrapped command.
func (r *Runner) ExecuteContext(ctx context.Context) *RunResult {
	root := r.newRootCommand()
	root.SetArgs(r.Args)
	root.SetIn(r.Stdin)
	root.SetOut(r.Stdout)
	root.SetErr(r.Stderr)

	if err := root.ExecuteContext(ctx); err != nil {
		return runError(exitCodeFor(err), err)
	}
	return &RunResult{ExitCode: r.code}
}

func (r *Runner) newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   r.Name + " [flags] <command> [args...]",
		Short: "Colorize the output of common command line tools",
		Long: `ufc runs a command, colors its stdout and stderr line by line using a
palette for that command, and exits with the command's exit code.

Supported commands:
` + SupportedCommands() + `
Other commands can be wrapped with --universal.`,
		Version:       Version,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          r.runWrapped,
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			if len(args) > 0 {
				return nil, cobra.ShellCompDirectiveDefault
			}
			return commands.Names(), cobra.ShellCompDirectiveNoFileComp
		},
	}
	root.SetVersionTemplate("{{.Name}} {{.Version}}\n")
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &UsageError{Err: err}
	})

	// Tool arguments after the command name are forwarded untouched.
	flags := root.Flags()
	flags.SetInterspersed(false)
	flags.VarP(&r.flags.Watch, "watch", "w", "re-run the command every interval (e.g. 5, 1.5m, 1h2m5s; 0 disables)")
	flags.BoolVarP(&r.flags.Timing, "time", "t", false, "print how long the command took before exiting")
	flags.BoolVarP(&r.flags.NoColor, "nocolor", "n", false, "disable coloring")
	flags.BoolVarP(&r.flags.Boost, "boost", "b", false, "buffer output for commands with a lot of output")
	flags.BoolVarP(&r.flags.Universal, "universal", "u", false, "use the generic palette for unsupported commands")

	root.AddCommand(
		r.newAliasCommand("alias", "", "Print shell aliases for every supported command"),
		r.newAliasCommand("ualias", "u", "Print shell aliases prefixed with 'u' for every supported command"),
	)
	return root
}

func (r *Runner) newAliasCommand(use, prefix, short string) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return WriteAliases(cmd.OutOrStdout(), r.Name, prefix)
		},
	}
}

// runWrapped runs args[0] with the remaining arguments under the supervisor.
func (r *Runner) runWrapped(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		_ = cmd.Usage()
		return usageErrorf("no command given")
	}

	def, err := validateInvocation(leadingArgs(r.Args, args), args[0], r.flags.Universal)
	if err != nil {
		return err
	}
	reg, err := def.Registry()
	if err != nil {
		return err
	}

	s := settings.Build(&r.flags, args[0])
	log, err := openLogger(s)
	if err != nil {
		return err
	}
	defer log.Close()

	sup := supervisor.New(s, args, reg, supervisor.Options{
		Stdin:  r.Stdin,
		Stdout: r.Stdout,
		Stderr: r.Stderr,
		Logger: log,
	})

	r.mu.Lock()
	r.sup = sup
	r.settings = s
	r.log = log
	r.mu.Unlock()

	stop := r.handleSignals(sup)
	defer stop()

	log.Debug("starting", "palette", def.Name, "rules", reg.Len(), "watch", s.Watch.String(), "boost", s.Boost, "nocolor", s.NoColor)
	code, err := sup.Run(cmd.Context())
	if err != nil {
		return err
	}
	r.code = code
	return nil
}

// handleSignals kills the child on SIGINT or SIGTERM, waits the grace period
// for trailing output and exits with 0. The returned func stops listening.
func (r *Runner) handleSignals(sup *supervisor.Supervisor) func() {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, os.Interrupt, syscall.SIGTERM)
	quit := make(chan struct{})

	go func() {
		select {
		case sig := <-sigs:
			r.logger().Info("interrupted", "signal", sig.String())
			sup.Interrupt()
			time.Sleep(supervisor.GracePeriod)
			r.finish(0)
		case <-quit:
		}
	}()

	return func() {
		signal.Stop(sigs)
		close(quit)
	}
}

// finish prints the timing message when requested and exits. Only the first
// call has any effect.
func (r *Runner) finish(code int) {
	r.finishOnce.Do(func() {
		r.mu.Lock()
		sup, s := r.sup, r.settings
		r.mu.Unlock()

		if sup != nil && s.Timing {
			fmt.Fprint(r.Stdout, FormatElapsed(sup.Elapsed()))
		}
		r.Exit(code)
	})
}

func (r *Runner) logger() *logging.Logger {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.log
}

// openLogger returns a discarding logger unless a log level was configured.
func openLogger(s settings.RunSettings) (*logging.Logger, error) {
	if s.LogLevel == "" {
		return logging.NopLogger(), nil
	}
	log, err := logging.NewLogger(s.LogFile, s.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("diagnostics: %w", err)
	}
	return log, nil
}
