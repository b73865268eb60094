package search

import "strings"

type Mode int

const (
	Sensitive Mode = iota
	Insensitive
)

func (m Mode) String() string {
	if m == Insensitive {
		return "insensitive"
	}
	return "sensitive"
}

// ModeFor maps the ignore-case setting to a comparison mode.
func ModeFor(ignoreCase bool) Mode {
	if ignoreCase {
		return Insensitive
	}
	return Sensitive
}

// Match is a view of one matching line. Text is contents[Start:End] and
// shares memory with the searched contents.
type Match struct {
	Number int
	Start  int
	End    int
	Text   string
}

// Search returns the lines of contents that contain query, in order.
func Search(query, contents string, mode Mode) []string {
	ms := Matches(query, contents, mode)
	out := make([]string, 0, len(ms))
	for _, m := range ms {
		out = append(out, m.Text)
	}
	return out
}

// Matches is Search with line numbers and byte offsets.
func Matches(query, contents string, mode Mode) []Match {
	matcher := buildMatcher(query, mode)
	var out []Match
	eachLine(contents, func(n, start, end int) {
		line := contents[start:end]
		if matcher(line) {
			out = append(out, Match{Number: n, Start: start, End: end, Text: line})
		}
	})
	return out
}

func buildMatcher(query string, mode Mode) func(string) bool {
	if mode == Insensitive {
		q := strings.ToLower(query)
		return func(line string) bool { return strings.Contains(strings.ToLower(line), q) }
	}
	return func(line string) bool { return strings.Contains(line, query) }
}

// eachLine calls fn for every line with its 1-based number and the byte
// range of the line without its terminator. A final "\n" does not start
// another line and a "\r" before "\n" is not part of the line.
func eachLine(s string, fn func(n, start, end int)) {
	n := 0
	for pos := 0; pos < len(s); {
		n++
		i := strings.IndexByte(s[pos:], '\n')
		if i < 0 {
			fn(n, pos, len(s))
			return
		}
		end := pos + i
		if end > pos && s[end-1] == '\r' {
			fn(n, pos, end-1)
		} else {
			fn(n, pos, end)
		}
		pos += i + 1
	}
}
