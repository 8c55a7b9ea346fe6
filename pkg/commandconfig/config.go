// Package commandconfig validates LaTeX command configuration files.
//
// A configuration lists command blocks under "allCommands". Every block has a
// type and a list of commands; a command is either a bare name or an object
// with a name, an optional tag and optional argument descriptions. Commands in
// FORMAT blocks are rendered as inline tags by the translation filter, so their
// tags must be well formed and unique.
//
// Validate walks the blocks in document order and stops at the first fatal
// violation, returning it as a *Violation next to the partial Result.
package commandconfig

import (
	"maps"
	"slices"
)

// FormatType is the block type whose commands must carry a tag.
const FormatType = "FORMAT"

// CommandSet is the set of command names declared by a configuration.
type CommandSet map[string]struct{}

// Add inserts name into the set.
func (s CommandSet) Add(name string) {
	s[name] = struct{}{}
}

// Has reports whether name is in the set.
func (s CommandSet) Has(name string) bool {
	_, ok := s[name]
	return ok
}

// Len returns the number of names in the set.
func (s CommandSet) Len() int {
	return len(s)
}

// Sorted returns the names in lexical order.
func (s CommandSet) Sorted() []string {
	return slices.Sorted(maps.Keys(s))
}

// Definition describes the first declaration of a command.
type Definition struct {
	Name     string `json:"name" console:"header:Name"`
	Type     string `json:"type" console:"header:Type"`
	Tag      string `json:"tag,omitempty" console:"header:Tag,default:-"`
	Args     int    `json:"args" console:"header:Args"`
	External bool   `json:"external" console:"header:External"`
}

// Environments lists the environment names the filter treats specially.
type Environments struct {
	ConsumeOptions   []string `json:"consumeOptions,omitempty"`
	ConsumeArguments []string `json:"consumeArguments,omitempty"`
	Table            []string `json:"table,omitempty"`
}

// Result is the outcome of a validation run. On failure it holds what was
// gathered before the walk stopped.
type Result struct {
	// Path is the file the configuration was read from, if any.
	Path string
	// Commands holds every declared command name.
	Commands CommandSet
	// Definitions holds the first declaration of each command, in order.
	Definitions []Definition
	// Environments is the optional "environments" section.
	Environments Environments
	// Warnings lists non-fatal problems in the order they were found.
	Warnings []Warning
}

func newResult(path string) *Result {
	return &Result{
		Path:     path,
		Commands: make(CommandSet),
	}
}

func (r *Result) warn(kind WarningKind, command, tag, message string) {
	r.Warnings = append(r.Warnings, Warning{
		Kind:    kind,
		Command: command,
		Tag:     tag,
		Message: message,
	})
}

// Options tunes a validation run.
type Options struct {
	// KeepGoing collects every tag rule violation instead of stopping at the
	// first one. Unreadable or structurally damaged files always stop the run.
	KeepGoing bool
}
