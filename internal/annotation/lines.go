package annotation

import (
	"context"
	"strings"
	"unicode"

	ferrors "git.home.luguber.info/inful/listingproc/internal/foundation/errors"
	"git.home.luguber.info/inful/listingproc/internal/util/sets"
)

const (
	inlineMarker     = "///"
	excludeSuffix    = "/** exclude-line */"
	keepSuffix       = "/** keep-include */"
	includeDirective = "#include"
	startHashToken   = "start-hash"
	endHashToken     = "end-hash"
)

var droppedDirectives = sets.New("#pragma once", "using namespace std;")

// sourceLine is one physical line split at the inline marker.
type sourceLine struct {
	body      string
	tail      string
	hasMarker bool
}

func splitLine(raw string) sourceLine {
	l := sourceLine{body: raw}
	if before, after, found := strings.Cut(raw, inlineMarker); found {
		l.body = before
		l.tail = strings.ToLower(strings.TrimSpace(after))
		l.hasMarker = true
	}
	l.body = strings.TrimRightFunc(l.body, unicode.IsSpace)
	return l
}

func (l sourceLine) isHashToken() bool {
	return l.hasMarker && (l.tail == startHashToken || l.tail == endHashToken)
}

// lineScan is the state carried through the line pass.
type lineScan struct {
	dialect string
	hasher  RegionHasher
	result  *Result
	kept    []string
	// region is nil while no hash region is open.
	region []string
}

func (s *lineScan) feed(ctx context.Context, raw string) error {
	l := splitLine(raw)

	if droppedDirectives.Has(strings.TrimSpace(l.body)) {
		return nil
	}
	if strings.HasSuffix(l.body, excludeSuffix) {
		return nil
	}
	if l.hasMarker && l.body == "" && !l.isHashToken() {
		return nil
	}
	if ref, ok := includeReference(l.body); ok {
		s.result.Includes = append(s.result.Includes, ref)
		return nil
	}

	line := l.body
	if l.hasMarker && l.tail == startHashToken {
		// A second start marker restarts the open region.
		line = appendComment(line, "// "+startHashToken)
		s.region = []string{}
	}
	if s.region != nil {
		s.region = append(s.region, line)
	}
	if l.hasMarker && l.tail == endHashToken {
		if s.region == nil {
			s.result.addProblem(ferrors.StructureError("end-hash without start-hash"))
		} else {
			digest, err := s.hasher.Resolve(ctx, s.dialect, strings.Join(s.region, "\n"))
			if err != nil {
				return err
			}
			line = appendComment(line, "// "+s.dialect+" = "+digest)
			s.region = nil
		}
	}
	s.kept = append(s.kept, line)
	return nil
}

func (s *lineScan) finish() string {
	if s.region != nil {
		s.result.addProblem(ferrors.StructureError("Unterminated hash region"))
	}
	return strings.Join(s.kept, "\n")
}

// includeReference reports the referenced name of a dependency directive.
// Directives carrying the keep marker stay in the listing as ordinary text.
func includeReference(body string) (string, bool) {
	line := strings.TrimSpace(body)
	if !strings.HasPrefix(line, includeDirective) || strings.HasSuffix(line, keepSuffix) {
		return "", false
	}
	return strings.TrimSpace(line[len(includeDirective):]), true
}

func appendComment(line, comment string) string {
	if line == "" {
		return comment
	}
	return line + " " + comment
}

// splitSourceLines splits text the way a line reader would: a final line
// terminator does not produce an extra empty line.
func splitSourceLines(text string) []string {
	if text == "" {
		return nil
	}
	return strings.Split(strings.TrimSuffix(text, "\n"), "\n")
}
