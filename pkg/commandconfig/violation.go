package commandconfig

import (
	"errors"
	"fmt"
)

// Kind classifies a fatal configuration problem.
type Kind string

const (
	// KindParse means the file could not be read or is not valid JSON.
	KindParse Kind = "parse"
	// KindDamaged means the JSON does not have the expected structure.
	KindDamaged Kind = "damaged"
	// KindInvalidCommand means a command is neither a string nor an object.
	KindInvalidCommand Kind = "invalid-command"
	// KindMissingTag means a FORMAT command object has no tag.
	KindMissingTag Kind = "missing-tag"
	// KindInvalidTag means a tag does not match TagPattern.
	KindInvalidTag Kind = "invalid-tag"
	// KindDuplicateTag means a tag string is used twice.
	KindDuplicateTag Kind = "duplicate-tag"
	// KindTagConflict means an unnumbered tag clashes with a numbered tag
	// of the same prefix.
	KindTagConflict Kind = "tag-conflict"
)

// Violation is a fatal configuration problem.
type Violation struct {
	Kind    Kind   `json:"kind"`
	Command string `json:"command,omitempty"`
	Tag     string `json:"tag,omitempty"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

func newViolation(kind Kind, command, tag, format string, args ...any) *Violation {
	return &Violation{
		Kind:    kind,
		Command: command,
		Tag:     tag,
		Message: fmt.Sprintf(format, args...),
	}
}

func (v *Violation) Error() string {
	return v.Message
}

func (v *Violation) Unwrap() error {
	return v.Err
}

// tagRule reports whether the violation comes from the tag rules, as opposed
// to a file that could not be read or walked.
func (v *Violation) tagRule() bool {
	switch v.Kind {
	case KindMissingTag, KindInvalidTag, KindDuplicateTag, KindTagConflict:
		return true
	}
	return false
}

// Violations flattens err into the violations it carries. err may be a
// single *Violation, several joined with errors.Join, or either of those
// wrapped with %w.
func Violations(err error) []*Violation {
	switch e := err.(type) {
	case nil:
		return nil
	case *Violation:
		return []*Violation{e}
	case interface{ Unwrap() []error }:
		var out []*Violation
		for _, inner := range e.Unwrap() {
			out = append(out, Violations(inner)...)
		}
		return out
	}
	return Violations(errors.Unwrap(err))
}

// WarningKind classifies a non-fatal configuration problem.
type WarningKind string

const (
	// WarningDuplicateCommand means a command name appears more than once.
	// Only the first occurrence is validated.
	WarningDuplicateCommand WarningKind = "duplicate-command"
	// WarningUnnumberedTag means an unnumbered tag is used by a command
	// without an external argument. Unnumbered tags are reserved for
	// commands numbered from an external argument.
	WarningUnnumberedTag WarningKind = "unnumbered-tag"
	// WarningMalformedEnvironments means a part of the environments section
	// has the wrong shape and was skipped.
	WarningMalformedEnvironments WarningKind = "malformed-environments"
)

// Warning is a non-fatal configuration problem.
type Warning struct {
	Kind    WarningKind `json:"kind"`
	Command string      `json:"command,omitempty"`
	Tag     string      `json:"tag,omitempty"`
	Message string      `json:"message"`
}

func (w Warning) String() string {
	return w.Message
}
