package refqueue

import "strings"

const (
	requestSeparator = "|"
	sectionMarker    = "."
	extSeparator     = "."
	pathSeparator    = "/"
	// DisplaySeparator joins display names in a drained header line.
	DisplaySeparator = `\enspace{}`
)

// HeaderRequest asks for the captions rendered up to and including Target.
type HeaderRequest struct {
	Target string
}

// ParseHeaderRequest reads a "left|right" request value. The target is the
// trimmed left part, or the trimmed right part when the left is blank.
func ParseHeaderRequest(value string) HeaderRequest {
	left, right, _ := strings.Cut(value, requestSeparator)
	target := strings.TrimSpace(left)
	if target == "" {
		// Only the first two parts count.
		right, _, _ = strings.Cut(right, requestSeparator)
		target = strings.TrimSpace(right)
	}
	return HeaderRequest{Target: target}
}

// Empty reports whether the request names no caption.
func (r HeaderRequest) Empty() bool {
	return r.Target == ""
}

// DisplayName returns the short form of a queue entry shown in a header:
// the file name itself when it starts with the section marker, otherwise
// the file name up to its first extension separator.
func DisplayName(entry string) string {
	if i := strings.LastIndex(entry, pathSeparator); i >= 0 {
		entry = entry[i+1:]
	}
	if strings.HasPrefix(entry, sectionMarker) {
		return entry
	}
	name, _, _ := strings.Cut(entry, extSeparator)
	return name
}
