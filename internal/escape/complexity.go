package escape

import "strings"

const bigOMacro = `\bigo`

// Complexity escapes a Time or Memory field and wraps every balanced
// O(...) expression in the big-O macro. Nested parentheses inside the
// expression are honoured. An O( without a matching close parenthesis leaves
// the rest of the text untouched.
func Complexity(text string) string {
	return rewriteBigO(Escape(text))
}

func rewriteBigO(text string) string {
	start := strings.Index(text, "O(")
	if start < 0 {
		return text
	}

	depth := 1
	end := start + 1
	for end+1 < len(text) && depth > 0 {
		end++
		switch text[end] {
		case '(':
			depth++
		case ')':
			depth--
		}
	}
	if depth != 0 {
		return text
	}

	var b strings.Builder
	b.Grow(len(text) + len(bigOMacro) + 2)
	b.WriteString(text[:start])
	b.WriteString(bigOMacro)
	b.WriteByte('{')
	b.WriteString(text[start+2 : end])
	b.WriteByte('}')
	// The tail was escaped along with the whole string.
	b.WriteString(rewriteBigO(text[end+1:]))
	return b.String()
}
