package mapping

import "strings"

// Sink is an append-only buffer of output lines.
type Sink struct {
	lines []string
}

// NewSink creates an empty sink.
func NewSink() *Sink {
	return &Sink{lines: make([]string, 0, 64)}
}

// Reset discards all accumulated lines.
func (s *Sink) Reset() {
	s.lines = s.lines[:0]
}

// Write appends a line.
func (s *Sink) Write(line string) {
	s.lines = append(s.lines, line)
}

// writeIndented appends lines prefixed with indent spaces.
// Blank lines are written without indentation.
func (s *Sink) writeIndented(indent int, lines ...string) {
	pad := strings.Repeat(" ", indent)
	for _, line := range lines {
		if line == "" {
			s.Write("")
			continue
		}
		s.Write(pad + line)
	}
}

// Len returns the number of lines written.
func (s *Sink) Len() int {
	return len(s.lines)
}

// Lines returns a copy of the accumulated lines.
func (s *Sink) Lines() []string {
	out := make([]string, len(s.lines))
	copy(out, s.lines)
	return out
}

// Flush returns the accumulated text, one line per statement with a
// trailing newline. An empty sink flushes to the empty string.
func (s *Sink) Flush() string {
	if len(s.lines) == 0 {
		return ""
	}
	var b strings.Builder
	for _, line := range s.lines {
		b.WriteString(line)
		b.WriteByte('\n')
	}
	return b.String()
}
