package mapping

import "fmt"

// Prefix is a named group of key strokes with a which-key help menu.
type Prefix struct {
	name      string
	desc      string
	key       string
	parentKey string
	fileType  string
	indent    int
	menu      helpMenu
	sub       bool

	// leader is the literal mapleader value; set only on the leader prefix.
	leader string

	group
}

func newPrefix(name, desc, fileType string, ks *KeyStroke) *Prefix {
	p := &Prefix{
		desc:     desc,
		fileType: fileType,
		key:      ks.FullKey(),
		indent:   ks.Indent(),
	}
	p.group.reset()

	parent := ks.parent
	if parent == nil {
		p.name = name
		p.menu = helpMenu{root: "g:which_key_map_" + parameterize(name)}
		return p
	}

	p.name = name
	if !parent.IsLeader() {
		p.name = parent.name + " > " + name
	}
	p.parentKey = parent.key
	p.menu = parent.menu.child(ks.key)
	p.sub = true
	return p
}

func newLeader(literal string, ks *KeyStroke) *Prefix {
	p := &Prefix{
		name:   "Leader",
		key:    ks.FullKey(),
		indent: ks.Indent(),
		menu:   helpMenu{root: globalHelpMenu},
		leader: literal,
	}
	p.group.reset()
	return p
}

// Name returns the display name shown in the help menu.
func (p *Prefix) Name() string { return p.name }

// Desc returns the description rendered in the header.
func (p *Prefix) Desc() string { return p.desc }

// Key returns the full key sequence up to and including this prefix.
func (p *Prefix) Key() string { return p.key }

// ParentKey returns the full key of the enclosing prefix, or "".
func (p *Prefix) ParentKey() string { return p.parentKey }

// FileType returns the file type inherited by bindings in this prefix.
func (p *Prefix) FileType() string { return p.fileType }

// HelpMenuID returns the which-key dictionary variable for this prefix.
func (p *Prefix) HelpMenuID() string { return p.menu.id() }

// IsSubPrefix reports whether the prefix is nested in another prefix.
func (p *Prefix) IsSubPrefix() bool { return p.sub }

// IsLeader reports whether this is the leader prefix.
func (p *Prefix) IsLeader() bool { return p.leader != "" }

// Lookup returns the child key stroke for (key, fileType), or nil.
func (p *Prefix) Lookup(key, fileType string) *KeyStroke {
	return p.lookup(key, fileType)
}

func (p *Prefix) render(s *Sink) {
	if p.IsLeader() {
		s.writeIndented(p.indent, p.leaderHeader()...)
	} else {
		s.writeIndented(p.indent, p.header()...)
	}
	p.group.render(s)
}

func (p *Prefix) header() []string {
	lines := []string{
		"",
		"",
		ruleLine,
		comment("Prefix " + p.name),
		comment("Key " + p.key),
	}
	if p.fileType != "" {
		lines = append(lines, comment("Filetype: "+p.fileType))
	}
	lines = append(lines,
		comment(p.desc),
		ruleLine,
		fmt.Sprintf("let %s = { 'name' : '+%s' }", p.menu.id(), quote(p.name)),
	)
	if p.sub {
		return lines
	}
	return append(lines, registerLines(p.key, p.menu.id())...)
}

func (p *Prefix) leaderHeader() []string {
	lines := []string{
		"",
		"",
		ruleLine,
		comment("Leader"),
		ruleLine,
		fmt.Sprintf("let mapleader='%s'", quote(p.leader)),
		"",
		fmt.Sprintf("if !exists('%s')", globalHelpMenu),
		fmt.Sprintf("  let %s = {}", globalHelpMenu),
		"endif",
	}
	return append(lines, registerLines(leaderKey, globalHelpMenu)...)
}

// registerLines registers a help menu and binds key to show it.
func registerLines(key, menu string) []string {
	q := quote(key)
	return []string{
		fmt.Sprintf("call which_key#register('%s', '%s')", q, menu),
		fmt.Sprintf("nnoremap %s :<c-u>WhichKey '%s'<CR>", key, q),
		fmt.Sprintf("vnoremap %s :<c-u>WhichKeyVisual '%s'<CR>", key, q),
	}
}
