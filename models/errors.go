package models

import (
	"fmt"
	"strings"
)

// ValidationError reports required fields that were blank or malformed.
// It is raised before any database call is attempted.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return "missing or invalid fields: " + strings.Join(e.Fields, ", ")
}

// IncompleteChecklistError blocks submission while any inspection item
// is still unchecked. Categories lists the groups with open items.
type IncompleteChecklistError struct {
	Categories []string
}

func (e *IncompleteChecklistError) Error() string {
	return "checklist incomplete: " + strings.Join(e.Categories, ", ")
}

// InvalidTransitionError reports an approve/reject attempted on a record
// that already left the pending state. Terminal states stay terminal.
type InvalidTransitionError struct {
	From string
	To   string
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("cannot transition from %q to %q", e.From, e.To)
}
