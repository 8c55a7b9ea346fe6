package contentcheck

import (
	"fmt"
	"io"
)

// Messages written by WriteText.
const (
	UnknownHeader = "Found unknown commands in provided document(s):"
	CleanMessage  = "Provided content doesn't contain any unknown commands."
)

// WriteText writes the report as plain text: a header followed by one
// undeclared command per line, or a single line when the content is clean.
func (r *Report) WriteText(w io.Writer) error {
	if r.Clean() {
		_, err := fmt.Fprintln(w, CleanMessage)
		return err
	}
	if _, err := fmt.Fprintln(w, UnknownHeader); err != nil {
		return err
	}
	for _, name := range r.UnknownNames() {
		if _, err := fmt.Fprintln(w, name); err != nil {
			return err
		}
	}
	return nil
}
