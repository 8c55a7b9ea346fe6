// Package contentcheck scans LaTeX sources for commands that a configuration
// does not declare.
package contentcheck

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/pilulerouge/latexcmd/pkg/constants"
	"github.com/pilulerouge/latexcmd/pkg/fileutil"
	"github.com/pilulerouge/latexcmd/pkg/logger"
)

// DefaultPattern selects the files scanned when the content path is a
// directory.
const DefaultPattern = constants.DefaultContentPattern

// ErrContentPathMissing is returned when the content path does not exist.
var ErrContentPathMissing = errors.New("content path doesn't exist")

// KnownCommands reports whether a command name is declared.
type KnownCommands interface {
	Has(name string) bool
}

// Options tunes a scan.
type Options struct {
	// Pattern selects files in a content directory. Defaults to DefaultPattern.
	Pattern string
	// Builtins are accepted in addition to constants.DefaultBuiltins.
	Builtins []string
	// Logger receives per-file progress. Defaults to the contentcheck:checker
	// debug namespace.
	Logger *slog.Logger
}

// Finding is an undeclared command and the first file it was seen in.
type Finding struct {
	Command string `json:"command" console:"header:Command"`
	File    string `json:"file" console:"header:First seen in"`
}

// Report is the outcome of a scan.
type Report struct {
	// Files lists the scanned files in scan order.
	Files []string `json:"files"`
	// Unknown lists undeclared commands sorted by name.
	Unknown []Finding `json:"unknown"`
}

// Clean reports whether no undeclared command was found.
func (r *Report) Clean() bool {
	return len(r.Unknown) == 0
}

// UnknownNames returns the undeclared command names, sorted.
func (r *Report) UnknownNames() []string {
	names := make([]string, len(r.Unknown))
	for i, f := range r.Unknown {
		names[i] = f.Command
	}
	return names
}

// Check scans path, a single file or a directory of files matching
// opts.Pattern, and reports every command that is neither known nor builtin.
func Check(known KnownCommands, path string, opts Options) (*Report, error) {
	log := opts.Logger
	if log == nil {
		log = logger.NewSlogLogger("contentcheck:checker")
	}
	pattern := opts.Pattern
	if pattern == "" {
		pattern = DefaultPattern
	}

	if !fileutil.Exists(path) {
		return nil, fmt.Errorf("%w: %s", ErrContentPathMissing, path)
	}

	files := []string{path}
	if fileutil.DirExists(path) {
		var err error
		if files, err = fileutil.MatchFiles(path, pattern); err != nil {
			return nil, err
		}
	}
	log.Debug("scanning content", "path", path, "files", len(files))

	builtins := make(map[string]bool, len(constants.DefaultBuiltins)+len(opts.Builtins))
	for _, name := range slices.Concat(constants.DefaultBuiltins, opts.Builtins) {
		builtins[name] = true
	}

	report := &Report{Files: files}
	flagged := make(map[string]bool)
	for _, file := range files {
		text, err := fileutil.ReadText(file)
		if err != nil {
			return nil, err
		}
		tokens := ExtractCommands(text)
		log.Debug("scanned file", "file", file, "tokens", len(tokens))

		for _, name := range tokens {
			if flagged[name] || known.Has(name) || builtins[name] {
				continue
			}
			flagged[name] = true
			report.Unknown = append(report.Unknown, Finding{Command: name, File: file})
		}
	}

	slices.SortFunc(report.Unknown, func(a, b Finding) int {
		return strings.Compare(a.Command, b.Command)
	})
	log.Debug("scan complete", "unknown", len(report.Unknown))
	return report, nil
}
