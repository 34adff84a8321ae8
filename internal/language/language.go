// Package language maps an input language name onto the processing mode
// and dialects used to render it.
package language

import (
	"strings"

	ferrors "git.home.luguber.info/inful/listingproc/internal/foundation/errors"
	"git.home.luguber.info/inful/listingproc/internal/foundation/normalization"
)

// Mode selects how a unit is processed.
type Mode string

const (
	// ModeAnnotated parses metadata spans, includes and hash regions.
	ModeAnnotated Mode = "annotated"
	// ModeRaw emits the trimmed source verbatim.
	ModeRaw Mode = "raw"
)

// Spec describes how one input language is processed.
type Spec struct {
	Name string
	Mode Mode
	// ListingLanguage is the lstlisting language option; empty means none.
	ListingLanguage string
	// HashDialect names the hashing routine for annotated units.
	HashDialect string
}

const (
	DialectCPP  = "hash-cpp"
	DialectJava = "hash"
)

var (
	cpp  = Spec{Mode: ModeAnnotated, HashDialect: DialectCPP}
	java = Spec{Mode: ModeAnnotated, ListingLanguage: "Java", HashDialect: DialectJava}

	table = map[string]Spec{
		"cpp":    cpp,
		"cc":     cpp,
		"c":      cpp,
		"h":      cpp,
		"hpp":    cpp,
		"java":   java,
		"ps":     {Mode: ModeRaw, ListingLanguage: "raw"},
		"raw":    {Mode: ModeRaw, ListingLanguage: "raw"},
		"rawcpp": {Mode: ModeRaw, ListingLanguage: "C++"},
		"sh":     {Mode: ModeRaw, ListingLanguage: "bash"},
		"py":     {Mode: ModeRaw, ListingLanguage: "Python"},
	}

	normalizer = normalization.NewNormalizer(table, Spec{})
)

// Lookup returns the processing spec for a language name.
func Lookup(name string) (Spec, error) {
	spec, ok := normalizer.Lookup(name)
	if !ok {
		return Spec{}, ferrors.ValidationError("unknown language: "+name).
			WithContext("valid", strings.Join(normalizer.ValidKeys(), ", ")).
			Build()
	}
	spec.Name = strings.ToLower(strings.TrimSpace(name))
	return spec, nil
}

// FromPath returns the language named by the extension of path, the text
// after its last '.'. A path without a dot names itself.
func FromPath(path string) string {
	if i := strings.LastIndexByte(path, '.'); i >= 0 {
		return path[i+1:]
	}
	return path
}

// CaptionFromPath returns the file name part of path, the text after its
// last '/'.
func CaptionFromPath(path string) string {
	if i := strings.LastIndexByte(path, '/'); i >= 0 {
		return path[i+1:]
	}
	return path
}
