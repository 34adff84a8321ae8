package render

import (
	"testing"

	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/listingproc/internal/annotation"
)

func TestReference(t *testing.T) {
	require.Equal(t, `Fenwick\_tree.h`, Reference("  Fenwick_tree.h \n"))
	require.Equal(t, `a\\b\ensuremath{<}c`, Reference(`a\b<c`))
}

func TestDiagnostic(t *testing.T) {
	require.Equal(t,
		[]string{`\kactlerror{foo.h: Missing command: Author. }`},
		Diagnostic("foo.h", "Missing command: Author. "))
}

func TestListing_Full(t *testing.T) {
	res := &annotation.Result{
		Source:   "int main() {\n\treturn 0;\n}",
		Includes: []string{`"a_b.h"`, "<vector>"},
		Commands: map[string]string{
			"Author":      "Ada",
			"Description": "Uses <set>",
			"Usage":       "f(a_i, {1})",
			"Time":        "O(n \\log n)",
			"Memory":      "O(n)",
		},
	}

	got := Listing("my_file.java", res, "Java")
	require.Equal(t, []string{
		`\kactlref{my\_file.java}`,
		`\defdescription{Uses \ensuremath{<}set\ensuremath{>}}`,
		`\defusage{f(a\_i, \{1\})}`,
		`\deftime{\bigo{n \log n}}`,
		`\defmemory{\bigo{n}}`,
		`\leftcaption{"a\_b.h", \ensuremath{<}vector\ensuremath{>}}`,
		`\rightcaption{3 lines}`,
		`\begin{lstlisting}[caption={my\_file.java}, language=Java]`,
		"int main() {\n\treturn 0;\n}",
		`\end{lstlisting}`,
	}, got)
}

func TestListing_Minimal(t *testing.T) {
	res := &annotation.Result{
		Source:   "int main(){}",
		Commands: map[string]string{"Author": "X", "Description": "Y"},
	}

	require.Equal(t, []string{
		`\kactlref{a.cpp}`,
		`\defdescription{Y}`,
		`\rightcaption{1 lines}`,
		`\begin{lstlisting}[caption={a.cpp}]`,
		"int main(){}",
		`\end{lstlisting}`,
	}, Listing("a.cpp", res, ""))
}

func TestListing_EmptySourceHasNoLineCount(t *testing.T) {
	res := &annotation.Result{Commands: map[string]string{"Author": "X", "Description": "Y"}}

	got := Listing("empty.h", res, "")
	require.NotContains(t, got, `\rightcaption{0 lines}`)
	require.Equal(t, `\begin{lstlisting}[caption={empty.h}]`, got[2])
}

func TestRaw(t *testing.T) {
	require.Equal(t, []string{
		`\kactlref{hash.sh}`,
		`\rightcaption{2 lines}`,
		`\begin{lstlisting}[language=bash,caption={hash.sh}]`,
		"# Hashes a file\ncpp -dD -P | md5sum",
		`\end{lstlisting}`,
	}, Raw("hash.sh", "# Hashes a file\ncpp -dD -P | md5sum", "bash"))

	require.Equal(t, `\rightcaption{1 lines}`, Raw("empty.ps", "", "raw")[1])
}

func TestReadFailure(t *testing.T) {
	require.Equal(t, []string{`\kactlerror{Could not read source.}`}, ReadFailure())
}
