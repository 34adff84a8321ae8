// Package render produces the LaTeX markup lines for one unit.
//
// Every function returns the lines to emit; callers own writing them and
// appending the reference to the queue.
package render

import (
	"fmt"
	"strings"

	"git.home.luguber.info/inful/listingproc/internal/annotation"
	"git.home.luguber.info/inful/listingproc/internal/escape"
)

const readFailure = `\kactlerror{Could not read source.}`

// Reference returns the queue entry for caption. The same string is used in
// the \kactlref line.
func Reference(caption string) string {
	return strings.TrimSpace(escape.Path(caption))
}

// Diagnostic renders the single error line of a failed unit.
func Diagnostic(caption, problems string) []string {
	return []string{fmt.Sprintf(`\kactlerror{%s: %s}`, caption, problems)}
}

// ReadFailure renders the error line of a raw unit whose source could not be
// read.
func ReadFailure() []string {
	return []string{readFailure}
}

// Listing renders a successfully parsed unit. Metadata fields appear only
// when their command has a value; the line count only for non-empty source.
func Listing(caption string, res *annotation.Result, listingLanguage string) []string {
	out := []string{refLine(caption)}

	if v := res.Command("Description"); v != "" {
		out = append(out, `\defdescription{`+escape.Escape(v)+`}`)
	}
	if v := res.Command("Usage"); v != "" {
		out = append(out, `\defusage{`+escape.Code(v)+`}`)
	}
	if v := res.Command("Time"); v != "" {
		out = append(out, `\deftime{`+escape.Complexity(v)+`}`)
	}
	if v := res.Command("Memory"); v != "" {
		out = append(out, `\defmemory{`+escape.Complexity(v)+`}`)
	}
	if len(res.Includes) > 0 {
		out = append(out, `\leftcaption{`+escape.Path(strings.Join(res.Includes, ", "))+`}`)
	}
	if n := res.LineCount(); n > 0 {
		out = append(out, lineCount(n))
	}

	opts := "caption={" + escape.Path(caption) + "}"
	if listingLanguage != "" {
		opts += ", language=" + listingLanguage
	}
	return append(out,
		`\begin{lstlisting}[`+opts+`]`,
		res.Source,
		`\end{lstlisting}`)
}

// Raw renders a unit emitted verbatim. source must already be trimmed.
func Raw(caption, source, listingLanguage string) []string {
	return []string{
		refLine(caption),
		lineCount(strings.Count(source, "\n") + 1),
		fmt.Sprintf(`\begin{lstlisting}[language=%s,caption={%s}]`, listingLanguage, escape.Path(caption)),
		source,
		`\end{lstlisting}`,
	}
}

func refLine(caption string) string {
	return `\kactlref{` + Reference(caption) + `}`
}

func lineCount(n int) string {
	return fmt.Sprintf(`\rightcaption{%d lines}`, n)
}
