package mapping

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Vim script fragments shared by all renderers.
const (
	ruleLine = `" ----------------------------------------------------------------`

	// globalHelpMenu is the which-key dictionary registered for the leader.
	globalHelpMenu = "g:which_key_map"

	// leaderKey replaces the literal leader key in every key sequence.
	leaderKey = "<leader>"
)

var (
	spaceRun     = regexp.MustCompile(` +`)
	nonNameChars = regexp.MustCompile(`[^_A-Za-z]`)
	identifier   = regexp.MustCompile(`^[A-Za-z0-9_]+$`)
)

// comment renders text as a Vim comment line.
func comment(text string) string {
	return `" ` + text
}

// guard scopes a statement to buffers of the given file type.
func guard(fileType, stmt string) string {
	if fileType == "" {
		return stmt
	}
	return "autocmd FileType " + fileType + " " + stmt
}

// quote escapes s for use inside a single-quoted Vim string.
func quote(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}

// helpLabel lower-cases desc and upper-cases its first character.
func helpLabel(desc string) string {
	lower := strings.ToLower(desc)
	r, size := utf8.DecodeRuneInString(lower)
	if size == 0 {
		return lower
	}
	return string(unicode.ToUpper(r)) + lower[size:]
}

// parameterize turns a prefix name into a Vim variable suffix.
func parameterize(name string) string {
	s := strings.TrimSpace(strings.ToLower(name))
	s = spaceRun.ReplaceAllString(s, "_")
	return nonNameChars.ReplaceAllString(s, "")
}

// helpMenu locates a which-key dictionary: a global variable plus the
// key fragments leading to the nested dictionary.
type helpMenu struct {
	root string
	path []string
}

// child returns the menu nested under segment.
func (m helpMenu) child(segment string) helpMenu {
	path := make([]string, len(m.path), len(m.path)+1)
	copy(path, m.path)
	return helpMenu{root: m.root, path: append(path, segment)}
}

// id returns the dotted variable name used when declaring the menu.
// Segments that are not valid dictionary member names use index syntax.
func (m helpMenu) id() string {
	var b strings.Builder
	b.WriteString(m.root)
	for _, seg := range m.path {
		if identifier.MatchString(seg) {
			b.WriteString("." + seg)
			continue
		}
		b.WriteString("['" + quote(seg) + "']")
	}
	return b.String()
}

// dictPath returns the menu in index syntax, e.g. g:which_key_map['a']['b'].
func (m helpMenu) dictPath() string {
	var b strings.Builder
	b.WriteString(m.root)
	for _, seg := range m.path {
		b.WriteString("['" + quote(seg) + "']")
	}
	return b.String()
}
