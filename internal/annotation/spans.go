package annotation

import (
	"strings"
	"unicode"

	ferrors "git.home.luguber.info/inful/listingproc/internal/foundation/errors"
	"git.home.luguber.info/inful/listingproc/internal/util/sets"
)

const (
	spanOpen    = "/**"
	spanClose   = "*/"
	bullet      = "*"
	commandSep  = ':'
	commandStop = " "
)

var (
	// KnownCommands lists every command a metadata span may carry.
	KnownCommands = sets.New("Author", "Date", "Description", "Source", "Time", "Memory", "License", "Status", "Usage")
	// RequiredCommands must appear somewhere in the unit.
	RequiredCommands = sets.New("Author", "Description")
)

// spanScan is the state carried while reading one metadata span. command is
// empty while no command is open.
type spanScan struct {
	result  *Result
	command string
	value   strings.Builder
}

// feed consumes one logical line of the span. The first line shares the
// opening marker, whose last '*' serves as its bullet.
func (s *spanScan) feed(raw string, first bool) {
	line := strings.TrimSpace(raw)
	bulleted := first
	if strings.HasPrefix(line, bullet) {
		line = strings.TrimSpace(line[len(bullet):])
		bulleted = true
	}

	if idx := strings.IndexByte(line, commandSep); bulleted && idx >= 0 && !strings.Contains(line[:idx], commandStop) {
		s.flush()
		s.command = line[:idx]
		s.value.WriteString(strings.TrimSpace(line[idx+1:]))
		return
	}
	s.value.WriteByte('\n')
	s.value.WriteString(line)
}

// flush finalizes the open command into the command table.
func (s *spanScan) flush() {
	defer s.value.Reset()
	name := s.command
	s.command = ""
	if name == "" {
		return
	}
	if !KnownCommands.Has(name) {
		s.result.addProblem(ferrors.SemanticError("Unknown command: "+name))
		return
	}
	s.result.Commands[name] = strings.TrimLeftFunc(s.value.String(), unicode.IsSpace)
}

// excise removes every metadata span from source, parsing each into the
// command table, and returns the remaining text trimmed. Whitespace before a
// span is dropped along with it.
func excise(source string, result *Result) string {
	var kept string
	end := 0
	start := strings.Index(source, spanOpen)
	for start >= 0 {
		kept = strings.TrimRightFunc(kept, unicode.IsSpace) + source[end:start]

		closeIdx := strings.Index(source[start:], spanClose)
		if closeIdx < 0 {
			result.addProblem(ferrors.StructureError("Invalid comment span"))
			return strings.TrimSpace(kept)
		}
		closeIdx += start

		content := ""
		if contentStart := start + len(spanOpen); closeIdx > contentStart {
			content = source[contentStart:closeIdx]
		}
		end = closeIdx + len(spanClose)
		if next := strings.Index(source[end:], spanOpen); next >= 0 {
			start = end + next
		} else {
			start = -1
		}

		scan := spanScan{result: result}
		for i, line := range strings.Split(strings.TrimSpace(content), "\n") {
			scan.feed(line, i == 0)
		}
		scan.flush()
	}
	kept = strings.TrimRightFunc(kept, unicode.IsSpace) + source[end:]
	return strings.TrimSpace(kept)
}

func checkRequired(result *Result) {
	missing := RequiredCommands.Clone()
	for name := range result.Commands {
		missing.Delete(name)
	}
	for _, name := range sets.Sorted(missing) {
		result.addProblem(ferrors.SemanticError("Missing command: "+name))
	}
}
