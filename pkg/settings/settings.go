// Package settings builds the immutable run configuration from CLI flags
// and a small set of environment overrides.
package settings

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/ai8future/chassis-go/v5/config"
	"github.com/spf13/pflag"
)

// RunSettings is constructed once before the first run and only read afterwards.
type RunSettings struct {
	Watch      time.Duration // 0 disables watch mode
	Timing     bool          // print elapsed time before exit
	NoColor    bool          // emit plain text
	Boost      bool          // buffered high-volume writer
	Universal  bool          // fall back to the generic palette for unknown commands
	Subcommand string        // name of the wrapped command
	LogLevel   string        // empty disables diagnostics
	LogFile    string        // empty logs to stderr when LogLevel is set
}

// WatchEnabled reports whether the command is re-run periodically.
func (s RunSettings) WatchEnabled() bool {
	return s.Watch > 0
}

// Flags is the flag target bound by the CLI layer.
type Flags struct {
	Watch     WatchValue
	Timing    bool
	NoColor   bool
	Boost     bool
	Universal bool
}

// EnvOverrides allows environment variables to adjust diagnostics and color.
// All fields are optional (required:"false"); only non-empty values apply.
// Merge order: flags < env vars for logging, flags OR env for NO_COLOR.
type EnvOverrides struct {
	LogLevel string `env:"UFC_LOG_LEVEL" required:"false"`
	LogFile  string `env:"UFC_LOG_FILE" required:"false"`
	NoColor  string `env:"NO_COLOR" required:"false"`
}

// Build returns the RunSettings for one wrapped command.
func Build(f *Flags, subcommand string) RunSettings {
	s := RunSettings{
		Watch:      time.Duration(f.Watch),
		Timing:     f.Timing,
		NoColor:    f.NoColor,
		Boost:      f.Boost,
		Universal:  f.Universal,
		Subcommand: subcommand,
	}
	applyEnvOverrides(&s)
	return s
}

// applyEnvOverrides loads environment variable overrides and merges them into s.
func applyEnvOverrides(s *RunSettings) {
	env := config.MustLoad[EnvOverrides]()

	if env.LogLevel != "" {
		s.LogLevel = strings.ToUpper(env.LogLevel)
	}
	if env.LogFile != "" {
		s.LogFile = env.LogFile
	}
	if env.NoColor != "" {
		s.NoColor = true
	}
}

// watchPattern accepts any subset of hours, minutes and seconds, in that order.
var watchPattern = regexp.MustCompile(`^(?:(\d*\.?\d*)[hH])?(?:(\d*\.?\d*)[mM])?(?:(\d*\.?\d*)[sS])?$`)

// maxWatchSeconds keeps the interval representable as a time.Duration.
const maxWatchSeconds = float64(math.MaxInt64 / int64(time.Second))

// ParseWatch parses a watch interval: "1.5h", "2m", "5s", "1h2m5s", or a bare
// number of seconds such as "5" or "0.5". "0" disables watch mode.
func ParseWatch(s string) (time.Duration, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("invalid watch duration: empty value")
	}

	if m := watchPattern.FindStringSubmatchIndex(s); m != nil {
		total := 0.0
		for i, scale := range []float64{3600, 60, 1} {
			start, end := m[2*(i+1)], m[2*(i+1)+1]
			if start < 0 {
				continue
			}
			v, err := strconv.ParseFloat(s[start:end], 64)
			if err != nil {
				return 0, fmt.Errorf("invalid watch duration %q: missing number before unit", s)
			}
			total += v * scale
		}
		return seconds(s, total)
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid watch duration %q: use seconds or <h>h<m>m<s>s", s)
	}
	return seconds(s, v)
}

func seconds(src string, v float64) (time.Duration, error) {
	if math.IsNaN(v) || v < 0 || v > maxWatchSeconds {
		return 0, fmt.Errorf("invalid watch duration %q: out of range", src)
	}
	return time.Duration(v * float64(time.Second)), nil
}

// WatchValue is a pflag.Value for the --watch flag.
type WatchValue time.Duration

var _ pflag.Value = (*WatchValue)(nil)

// Set parses and stores the interval.
func (w *WatchValue) Set(s string) error {
	d, err := ParseWatch(s)
	if err != nil {
		return err
	}
	*w = WatchValue(d)
	return nil
}

// String renders the interval; zero renders as "0" so help output treats it as unset.
func (w *WatchValue) String() string {
	if w == nil || *w == 0 {
		return "0"
	}
	return time.Duration(*w).String()
}

// Type names the flag value in help output.
func (w *WatchValue) Type() string {
	return "duration"
}
