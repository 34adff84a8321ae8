package annotation

import (
	"strings"

	ferrors "git.home.luguber.info/inful/listingproc/internal/foundation/errors"
)

// Problem is one error found while parsing a unit. Problems accumulate; any
// problem blocks the listing.
type Problem struct {
	Category ferrors.ErrorCategory
	Text     string
}

// Result is the outcome of parsing one unit.
type Result struct {
	// Source is the cleaned listing text, trimmed.
	Source string
	// Includes holds dependency references in source order, duplicates kept.
	Includes []string
	// Commands maps a known command name to its final value.
	Commands map[string]string
	Problems []Problem
}

// Command returns the value of a command, or "" when absent.
func (r *Result) Command(name string) string {
	return r.Commands[name]
}

// LineCount returns the number of lines of the cleaned source.
func (r *Result) LineCount() int {
	if r.Source == "" {
		return 0
	}
	return strings.Count(r.Source, "\n") + 1
}

// DiagnosticText concatenates all problems, each terminated by ". ".
func (r *Result) DiagnosticText() string {
	var b strings.Builder
	for _, p := range r.Problems {
		b.WriteString(p.Text)
		b.WriteString(". ")
	}
	return b.String()
}

// Err returns nil when the unit parsed cleanly, otherwise a classified error
// carrying the diagnostic text and the category of the first problem.
func (r *Result) Err() error {
	if len(r.Problems) == 0 {
		return nil
	}
	return ferrors.NewError(r.Problems[0].Category, r.DiagnosticText()).
		WithContext("problems", len(r.Problems)).
		Build()
}

func (r *Result) addProblem(b *ferrors.ErrorBuilder) {
	err := b.Build()
	r.Problems = append(r.Problems, Problem{Category: err.Category(), Text: err.Message()})
}
