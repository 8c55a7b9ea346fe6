package commandconfig

import (
	"errors"
	"fmt"
	"strings"

	"github.com/pilulerouge/latexcmd/pkg/logger"
)

var errorAggregationLog = logger.New("commandconfig:error_aggregation")

// ErrorCollector collects validation errors.
//
// In fail-fast mode Add hands the error straight back so the caller can stop;
// otherwise errors accumulate and Error joins them with errors.Join.
type ErrorCollector struct {
	errors   []error
	failFast bool
}

// NewErrorCollector creates a collector.
func NewErrorCollector(failFast bool) *ErrorCollector {
	return &ErrorCollector{failFast: failFast}
}

// Add records err. It returns err when the collector is fail-fast, nil
// otherwise.
func (c *ErrorCollector) Add(err error) error {
	if err == nil {
		return nil
	}
	errorAggregationLog.Printf("Adding error to collector: %v", err)
	c.errors = append(c.errors, err)
	if c.failFast {
		return err
	}
	return nil
}

// HasErrors reports whether any error was added.
func (c *ErrorCollector) HasErrors() bool {
	return len(c.errors) > 0
}

// Count returns the number of errors added.
func (c *ErrorCollector) Count() int {
	return len(c.errors)
}

// Error returns nil, the single error, or all errors joined.
func (c *ErrorCollector) Error() error {
	switch len(c.errors) {
	case 0:
		return nil
	case 1:
		return c.errors[0]
	}
	errorAggregationLog.Printf("Aggregating %d errors", len(c.errors))
	return errors.Join(c.errors...)
}

// FormatAggregatedError renders a joined error as a "Found N <category>
// errors:" header followed by one bullet per error. A single error is
// returned unchanged. The result still unwraps to err.
func FormatAggregatedError(err error, category string) error {
	if err == nil {
		return nil
	}
	joined, ok := err.(interface{ Unwrap() []error })
	if !ok {
		return err
	}
	errs := joined.Unwrap()
	if len(errs) == 1 {
		return errs[0]
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Found %d %s errors:", len(errs), category)
	for _, e := range errs {
		sb.WriteString("\n  • ")
		sb.WriteString(e.Error())
	}
	return &aggregatedError{msg: sb.String(), err: err}
}

// aggregatedError keeps the joined error reachable through errors.Unwrap.
type aggregatedError struct {
	msg string
	err error
}

func (e *aggregatedError) Error() string { return e.msg }

func (e *aggregatedError) Unwrap() error { return e.err }
