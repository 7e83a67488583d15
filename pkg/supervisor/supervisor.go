// Package supervisor runs the wrapped command, colors its output streams and
// optionally re-runs it on a fixed interval.
//
// One run moves through Idle, Spawning, Running, Draining and Exited. During
// Running two pumps copy the child's stdout and stderr to the wrapper's own
// streams. Draining waits for the child, then for both pumps to hit EOF, so
// trailing output is never lost.
package supervisor

import (
	"context"
	"io"
	"os"
	"os/exec"
	"sync"
	"sync/atomic"
	"time"

	"github.com/muesli/termenv"
	"github.com/sourcegraph/conc"
	"golang.org/x/term"

	"ufc/pkg/logging"
	"ufc/pkg/palette"
	"ufc/pkg/render"
	"ufc/pkg/settings"
)

// GracePeriod is how long the wrapper waits after killing the child on
// interrupt before it exits.
const GracePeriod = 100 * time.Millisecond

// Options configures the streams and diagnostics of a Supervisor. Zero values
// select the process's own streams and a discarding logger.
type Options struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
	Logger *logging.Logger

	// ClearScreen runs before every watch iteration. When nil the screen is
	// cleared only if Stdout is a terminal.
	ClearScreen func()
}

// Supervisor owns the lifecycle of the wrapped command.
type Supervisor struct {
	settings settings.RunSettings
	argv     []string
	registry *palette.Registry
	renderer *render.Renderer

	stdin          io.Reader
	stdout, stderr io.Writer
	clear          func()
	log            *logging.Logger

	mu    sync.RWMutex // guards proc and start
	proc  *os.Process
	start time.Time

	interrupted atomic.Bool
	done        chan struct{}
	doneOnce    sync.Once
}

// New creates a Supervisor for argv. argv[0] is resolved on PATH.
func New(s settings.RunSettings, argv []string, reg *palette.Registry, opts Options) *Supervisor {
	sup := &Supervisor{
		settings: s,
		argv:     append([]string(nil), argv...),
		registry: reg,
		renderer: render.New(!s.NoColor),
		stdin:    opts.Stdin,
		stdout:   opts.Stdout,
		stderr:   opts.Stderr,
		clear:    opts.ClearScreen,
		log:      opts.Logger,
		done:     make(chan struct{}),
	}
	if sup.stdin == nil {
		sup.stdin = os.Stdin
	}
	if sup.stdout == nil {
		sup.stdout = os.Stdout
	}
	if sup.stderr == nil {
		sup.stderr = os.Stderr
	}
	if sup.log == nil {
		sup.log = logging.NopLogger()
	}
	if sup.clear == nil {
		sup.clear = terminalClear(sup.stdout)
	}
	sup.log = sup.log.With("command", s.Subcommand)
	return sup
}

// terminalClear returns a screen clear for w, or a no-op when w is not a terminal.
func terminalClear(w io.Writer) func() {
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return func() {}
	}
	out := termenv.NewOutput(f)
	return out.ClearScreen
}

// Run executes the command once, or repeatedly in watch mode, and returns the
// exit code of the last completed run. After an interrupt the result is 0.
// Cancelling ctx has the same effect as Interrupt.
func (s *Supervisor) Run(ctx context.Context) (int, error) {
	stop := context.AfterFunc(ctx, s.Interrupt)
	defer stop()

	watch := s.settings.WatchEnabled()
	for iteration := 1; ; iteration++ {
		if watch {
			s.clear()
			s.log.Debug("watch iteration", "n", iteration)
		}

		code, err := s.runOnce()
		if err != nil {
			return 1, err
		}
		if s.Interrupted() {
			return 0, nil
		}
		if !watch {
			return code, nil
		}

		timer := time.NewTimer(s.settings.Watch)
		select {
		case <-s.done:
			timer.Stop()
			return 0, nil
		case <-timer.C:
		}
	}
}

// runOnce spawns the child, pumps both streams until EOF and reaps it.
func (s *Supervisor) runOnce() (int, error) {
	if len(s.argv) == 0 {
		return 1, &LaunchError{Err: errNoCommand}
	}

	outR, outW, err := os.Pipe()
	if err != nil {
		return 1, &LaunchError{Argv: s.argv, Err: err}
	}
	errR, errW, err := os.Pipe()
	if err != nil {
		outR.Close()
		outW.Close()
		return 1, &LaunchError{Argv: s.argv, Err: err}
	}
	defer outR.Close()
	defer errR.Close()

	cmd := exec.Command(s.argv[0], s.argv[1:]...)
	cmd.Stdin = s.stdin
	cmd.Stdout = outW
	cmd.Stderr = errW

	s.mu.Lock()
	if s.Interrupted() {
		s.mu.Unlock()
		outW.Close()
		errW.Close()
		return 0, nil
	}
	if s.start.IsZero() {
		s.start = time.Now()
	}
	startErr := cmd.Start()
	// The child holds its own copies; the pumps see EOF once it exits.
	outW.Close()
	errW.Close()
	if startErr != nil {
		s.mu.Unlock()
		return 1, &LaunchError{Argv: s.argv, Err: startErr}
	}
	s.proc = cmd.Process
	s.mu.Unlock()

	spawned := time.Now()
	s.log.Info("spawned", "argv", s.argv, "pid", cmd.Process.Pid)

	var wg conc.WaitGroup
	wg.Go(func() { s.pump(outR, s.stdout, s.log.With("stream", "stdout")) })
	wg.Go(func() { s.pump(errR, s.stderr, s.log.With("stream", "stderr")) })

	waitErr := cmd.Wait()
	wg.Wait()

	s.mu.Lock()
	s.proc = nil
	s.mu.Unlock()

	code := exitCode(waitErr)
	s.log.Info("exited", "code", code, "duration", time.Since(spawned).String())
	return code, nil
}

// Interrupt stops the current child and the watch loop. It is safe to call
// from any goroutine and more than once.
func (s *Supervisor) Interrupt() {
	s.interrupted.Store(true)
	s.doneOnce.Do(func() { close(s.done) })

	s.mu.RLock()
	p := s.proc
	s.mu.RUnlock()
	if p == nil {
		return
	}
	if err := p.Kill(); err != nil {
		s.log.Debug("kill ignored", "pid", p.Pid, "error", err)
	}
}

// Interrupted reports whether Interrupt has been called.
func (s *Supervisor) Interrupted() bool {
	return s.interrupted.Load()
}

// Elapsed returns the time since the first spawn attempt, or 0 if none has
// been made yet. A failed launch still counts as an attempt.
func (s *Supervisor) Elapsed() time.Duration {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.start.IsZero() {
		return 0
	}
	return time.Since(s.start)
}
