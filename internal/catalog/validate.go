package catalog

import (
	"fmt"
	"strings"
)

// ValidationError aggregates every issue found in a catalog config.
// Construction aborts when any issue exists; the report lists all of them
// rather than stopping at the first.
type ValidationError struct {
	Source string // "recipes" or "skills"
	Issues []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s catalog: %d issue(s): %s",
		e.Source, len(e.Issues), strings.Join(e.Issues, "; "))
}

// issueList collects validation issues during a catalog pass
type issueList struct {
	issues []string
}

func (l *issueList) addf(format string, args ...interface{}) {
	l.issues = append(l.issues, fmt.Sprintf(format, args...))
}

func (l *issueList) err(source string) error {
	if len(l.issues) == 0 {
		return nil
	}
	return &ValidationError{Source: source, Issues: l.issues}
}
