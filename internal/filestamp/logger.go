package filestamp

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/fatih/color"
)

// logger provides conditional debug output and advisory warnings.
// Workers log concurrently, so writes are serialized.
type logger struct {
	mu      sync.Mutex
	enabled bool
	out     io.Writer
	warn    *color.Color
}

func newLogger(enabled bool, out io.Writer) *logger {
	if out == nil {
		out = os.Stderr
	}

	return &logger{
		enabled: enabled,
		out:     out,
		warn:    color.New(color.FgYellow),
	}
}

// printf prints debug output if logging is enabled.
func (l *logger) printf(format string, args ...any) {
	if !l.enabled {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	fmt.Fprintf(l.out, "[debug]: "+format, args...)
}

// warnf prints an advisory regardless of the debug setting.
func (l *logger) warnf(format string, args ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.warn.Fprintf(l.out, "[warn]: "+format, args...) //nolint:errcheck // Best-effort console output
}
