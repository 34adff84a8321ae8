// Package escape makes source text and captions safe for inclusion in the
// LaTeX markup of the reference document.
//
// Every function is a pure substitution. None of them is idempotent: callers
// escape a given string exactly once.
package escape

import "strings"

var (
	mathReplacer = strings.NewReplacer(
		"<", `\ensuremath{<}`,
		">", `\ensuremath{>}`,
	)
	pathReplacer = strings.NewReplacer(
		`\`, `\\`,
		"_", `\_`,
	)
	codeReplacer = strings.NewReplacer(
		"_", `\_`,
		"\n", "\\\\\n",
		"{", `\{`,
		"}", `\}`,
		"^", `\ensuremath{\hat{\;}}`,
	)
)

// Escape replaces angle brackets with math-mode equivalents.
func Escape(text string) string {
	return mathReplacer.Replace(text)
}

// Path escapes backslashes and underscores for literal display of captions
// and file names, then applies Escape.
func Path(text string) string {
	return Escape(pathReplacer.Replace(text))
}

// Code escapes an inline usage snippet: underscores, braces and carets become
// literals and newlines become forced line breaks. Full listings are rendered
// verbatim and must not go through Code.
func Code(text string) string {
	return Escape(codeReplacer.Replace(text))
}
