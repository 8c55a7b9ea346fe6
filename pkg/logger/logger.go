// Package logger provides namespaced debug logging for latexcmd.
//
// Loggers are silent unless their namespace is selected by the DEBUG
// environment variable, so they can be left in hot paths:
//
//	DEBUG=*                          - every namespace
//	DEBUG=commandconfig:*            - the configuration validator only
//	DEBUG=contentcheck:*,cli:*       - several namespaces
//	DEBUG=*,-console:*               - everything except console rendering
package logger

import (
	"fmt"
	"hash/fnv"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/pilulerouge/latexcmd/pkg/timeutil"
	"github.com/pilulerouge/latexcmd/pkg/tty"
)

// Logger writes debug lines for a single namespace.
type Logger struct {
	namespace string
	enabled   bool
	color     string

	mu      sync.Mutex
	lastLog time.Time
}

var (
	// debugEnv is read once; tests overwrite it directly.
	debugEnv = os.Getenv("DEBUG")

	// DEBUG_COLORS=0 turns namespace colouring off.
	debugColors = os.Getenv("DEBUG_COLORS") != "0"

	isTTY = tty.IsStderrTerminal()

	// output is where enabled loggers write.
	output io.Writer = os.Stderr

	// ANSI 256-colour codes readable on light and dark backgrounds.
	colorPalette = []string{
		"\033[38;5;33m",
		"\033[38;5;35m",
		"\033[38;5;166m",
		"\033[38;5;125m",
		"\033[38;5;37m",
		"\033[38;5;161m",
		"\033[38;5;136m",
		"\033[38;5;124m",
		"\033[38;5;28m",
		"\033[38;5;63m",
	}

	colorReset = "\033[0m"
)

// New creates a Logger for namespace. Whether it is enabled is decided here,
// from the DEBUG patterns, and never changes afterwards.
func New(namespace string) *Logger {
	return &Logger{
		namespace: namespace,
		enabled:   computeEnabled(namespace),
		color:     selectColor(namespace),
		lastLog:   time.Now(),
	}
}

// Namespace returns the namespace the logger was created with.
func (l *Logger) Namespace() string {
	return l.namespace
}

// Enabled reports whether the logger writes anything.
func (l *Logger) Enabled() bool {
	return l.enabled
}

// Printf logs a formatted line followed by the time elapsed since the
// previous line of this logger.
func (l *Logger) Printf(format string, args ...any) {
	if !l.enabled {
		return
	}
	l.emit(fmt.Sprintf(format, args...))
}

// Print logs its operands formatted with fmt.Sprint.
func (l *Logger) Print(args ...any) {
	if !l.enabled {
		return
	}
	l.emit(fmt.Sprint(args...))
}

func (l *Logger) emit(message string) {
	l.mu.Lock()
	now := time.Now()
	diff := now.Sub(l.lastLog)
	l.lastLog = now
	l.mu.Unlock()

	if l.color != "" {
		fmt.Fprintf(output, "%s%s%s %s +%s\n", l.color, l.namespace, colorReset, message, timeutil.FormatDuration(diff))
		return
	}
	fmt.Fprintf(output, "%s %s +%s\n", l.namespace, message, timeutil.FormatDuration(diff))
}

// selectColor hashes the namespace onto the palette so a namespace keeps its
// colour between runs.
func selectColor(namespace string) string {
	if !debugColors || !isTTY {
		return ""
	}
	h := fnv.New32a()
	if _, err := h.Write([]byte(namespace)); err != nil {
		return ""
	}
	return colorPalette[h.Sum32()%uint32(len(colorPalette))]
}

// computeEnabled evaluates the comma-separated DEBUG patterns. Exclusions
// (prefixed with '-') win over any inclusion.
func computeEnabled(namespace string) bool {
	enabled := false
	for pattern := range strings.SplitSeq(debugEnv, ",") {
		pattern = strings.TrimSpace(pattern)
		if pattern == "" {
			continue
		}
		if excluded, ok := strings.CutPrefix(pattern, "-"); ok {
			if matchPattern(namespace, excluded) {
				return false
			}
			continue
		}
		if matchPattern(namespace, pattern) {
			enabled = true
		}
	}
	return enabled
}

// matchPattern supports a single '*' wildcard at the start, the end or in the
// middle of the pattern.
func matchPattern(namespace, pattern string) bool {
	if pattern == "*" || pattern == namespace {
		return true
	}
	if !strings.Contains(pattern, "*") {
		return false
	}
	if prefix, ok := strings.CutSuffix(pattern, "*"); ok {
		return strings.HasPrefix(namespace, prefix)
	}
	if suffix, ok := strings.CutPrefix(pattern, "*"); ok {
		return strings.HasSuffix(namespace, suffix)
	}
	prefix, suffix, _ := strings.Cut(pattern, "*")
	return strings.HasPrefix(namespace, prefix) && strings.HasSuffix(namespace, suffix)
}
