package mapping

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestTreeDuplicates(t *testing.T) {
	tests := []struct {
		name    string
		declare func(*Tree) error
		wantErr error
	}{
		{
			name: "normal twice",
			declare: func(tr *Tree) error {
				if err := tr.Normal("x", ":A", "A"); err != nil {
					return err
				}
				return tr.Normal("x", ":B", "B")
			},
			wantErr: ErrDuplicate,
		},
		{
			name: "visual twice in a prefix",
			declare: func(tr *Tree) error {
				return tr.Prefix("p", "P", "P", func(s *Scope) error {
					if err := s.Visual("x", ":A", "A"); err != nil {
						return err
					}
					return s.Visual("x", ":B", "B")
				})
			},
			wantErr: ErrDuplicate,
		},
		{
			name: "prefix twice",
			declare: func(tr *Tree) error {
				if err := tr.Prefix("p", "P", "P", nil); err != nil {
					return err
				}
				return tr.Prefix("p", "Q", "Q", nil)
			},
			wantErr: ErrDuplicate,
		},
		{
			name: "command twice",
			declare: func(tr *Tree) error {
				if err := tr.Command("Fmt", ":fmt", "Format"); err != nil {
					return err
				}
				return tr.Command("Fmt", ":fmt2", "Format again")
			},
			wantErr: ErrDuplicate,
		},
		{
			name: "binding on a prefix key",
			declare: func(tr *Tree) error {
				if err := tr.Prefix("p", "P", "P", nil); err != nil {
					return err
				}
				return tr.Normal("p", ":P", "P")
			},
			wantErr: ErrConflict,
		},
		{
			name: "prefix on a binding key",
			declare: func(tr *Tree) error {
				if err := tr.Visual("p", ":P", "P"); err != nil {
					return err
				}
				return tr.Prefix("p", "P", "P", nil)
			},
			wantErr: ErrConflict,
		},
		{
			name: "second leader",
			declare: func(tr *Tree) error {
				if err := tr.Leader("<space>", nil); err != nil {
					return err
				}
				return tr.Leader(",", nil)
			},
			wantErr: ErrLeaderDefined,
		},
		{
			name:    "empty binding key",
			declare: func(tr *Tree) error { return tr.Normal("", ":A", "A") },
			wantErr: ErrEmptyKey,
		},
		{
			name:    "empty prefix name",
			declare: func(tr *Tree) error { return tr.Prefix("p", "", "P", nil) },
			wantErr: ErrEmptyName,
		},
		{
			name:    "empty command name",
			declare: func(tr *Tree) error { return tr.Command("", ":A", "A") },
			wantErr: ErrEmptyName,
		},
		{
			name:    "empty leader key",
			declare: func(tr *Tree) error { return tr.Leader("", nil) },
			wantErr: ErrEmptyKey,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.declare(New())
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("error = %v, want %v", err, tt.wantErr)
			}
			var defErr *DefinitionError
			if !errors.As(err, &defErr) {
				t.Fatalf("error type = %T, want *DefinitionError", err)
			}
		})
	}
}

func TestTreeFileTypeScopesKeys(t *testing.T) {
	tree := New()
	if err := tree.Normal("x", ":A", "A"); err != nil {
		t.Fatalf("Normal() error = %v", err)
	}
	if err := tree.Normal("x", ":B", "B", WithFileType("ruby")); err != nil {
		t.Fatalf("Normal(ruby) error = %v", err)
	}
	if err := tree.Normal("x", ":C", "C", WithFileType("go")); err != nil {
		t.Fatalf("Normal(go) error = %v", err)
	}
	if err := tree.Normal("x", ":D", "D", WithFileType("go")); !errors.Is(err, ErrDuplicate) {
		t.Fatalf("Normal(go) again error = %v, want ErrDuplicate", err)
	}

	for _, ft := range []string{"", "ruby", "go"} {
		if tree.Lookup("x", ft) == nil {
			t.Errorf("Lookup(x, %q) = nil", ft)
		}
	}
	if tree.Lookup("x", "python") != nil {
		t.Error("Lookup(x, python) should be nil")
	}
}

func TestTreeFileTypeInheritance(t *testing.T) {
	tree := New()
	err := tree.Prefix("p", "P", "P", func(s *Scope) error {
		if err := s.Normal("a", ":A", "A"); err != nil {
			return err
		}
		if err := s.Normal("b", ":B", "B", WithFileType("go")); err != nil {
			return err
		}
		return s.Prefix("q", "Q", "Q", func(s *Scope) error {
			return s.Command("Cmd", ":cmd", "Cmd")
		})
	}, WithFileType("ruby"))
	if err != nil {
		t.Fatalf("Prefix() error = %v", err)
	}

	p := tree.Lookup("p", "ruby").Prefix()
	if p == nil {
		t.Fatal("prefix p not found in ruby scope")
	}
	if got := p.Lookup("a", "ruby").Normal().FileType; got != "ruby" {
		t.Errorf("inherited file type = %q, want ruby", got)
	}
	if got := p.Lookup("b", "go").Normal().FileType; got != "go" {
		t.Errorf("overridden file type = %q, want go", got)
	}
	q := p.Lookup("q", "ruby").Prefix()
	if q == nil {
		t.Fatal("nested prefix q not found in ruby scope")
	}
	cmds := tree.Commands()
	if len(cmds) != 1 || cmds[0].FileType != "ruby" {
		t.Errorf("Commands() = %+v, want one ruby command", cmds)
	}
}

func TestTreeNormalAndVisualShareKey(t *testing.T) {
	tree := New()
	if err := tree.Normal("x", ":N", "N"); err != nil {
		t.Fatalf("Normal() error = %v", err)
	}
	if err := tree.Visual("x", ":V", "V"); err != nil {
		t.Fatalf("Visual() error = %v", err)
	}
	ks := tree.Lookup("x", "")
	if ks.Normal() == nil || ks.Visual() == nil {
		t.Fatalf("key stroke = %+v, want both modes", ks)
	}
	if ks.Prefix() != nil {
		t.Error("leaf key stroke has a prefix")
	}
}

func TestTreePrefixAccessors(t *testing.T) {
	tree := New()
	err := tree.Leader("<space>", func(s *Scope) error {
		return s.Prefix("g", "Git", "Git tools", func(s *Scope) error {
			return s.Prefix("h", "Hunks", "Hunk tools", nil)
		})
	})
	if err != nil {
		t.Fatalf("Leader() error = %v", err)
	}

	leader := tree.LeaderPrefix()
	if leader == nil || !leader.IsLeader() {
		t.Fatal("LeaderPrefix() missing")
	}
	if leader.Key() != "<leader>" || leader.HelpMenuID() != "g:which_key_map" {
		t.Errorf("leader key/menu = %q/%q", leader.Key(), leader.HelpMenuID())
	}

	git := leader.Lookup("g", "").Prefix()
	want := []string{"Git", "Git tools", "<leader>g", "<leader>", "g:which_key_map.g"}
	got := []string{git.Name(), git.Desc(), git.Key(), git.ParentKey(), git.HelpMenuID()}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("git prefix mismatch (-want +got):\n%s", diff)
	}
	if !git.IsSubPrefix() || git.IsLeader() {
		t.Error("git prefix should be a non-leader sub prefix")
	}

	hunks := git.Lookup("h", "").Prefix()
	if hunks.Name() != "Git > Hunks" || hunks.HelpMenuID() != "g:which_key_map.g.h" {
		t.Errorf("hunks prefix = %q %q", hunks.Name(), hunks.HelpMenuID())
	}
}

func TestTreeBodyErrorPropagates(t *testing.T) {
	boom := errors.New("boom")
	tree := New()
	err := tree.Prefix("p", "P", "P", func(*Scope) error { return boom })
	if !errors.Is(err, boom) {
		t.Fatalf("Prefix() error = %v, want %v", err, boom)
	}
}

func TestTreeBindingsAndStats(t *testing.T) {
	tree := New()
	must := func(err error) {
		t.Helper()
		if err != nil {
			t.Fatal(err)
		}
	}
	must(tree.Command("Fmt", ":fmt", "Format"))
	must(tree.Leader("<space>", func(s *Scope) error {
		if err := s.Normal("w", ":w<CR>", "Write"); err != nil {
			return err
		}
		return s.Prefix("g", "Git", "Git", func(s *Scope) error {
			if err := s.Normal("s", ":Git<CR>", "Status"); err != nil {
				return err
			}
			return s.Visual("b", ":Git blame<CR>", "Blame", WithFileType("go"))
		})
	}))
	must(tree.Normal("Q", "<nop>", "No ex"))

	want := []Binding{
		{Mode: ModeNormal, Keys: "<leader>w", Action: ":w<CR>", Desc: "Write", Prefix: "Leader"},
		{Mode: ModeNormal, Keys: "<leader>gs", Action: ":Git<CR>", Desc: "Status", Prefix: "Git"},
		{Mode: ModeVisual, Keys: "<leader>gb", Action: ":Git blame<CR>", Desc: "Blame", FileType: "go", Prefix: "Git"},
		{Mode: ModeNormal, Keys: "Q", Action: "<nop>", Desc: "No ex"},
	}
	if diff := cmp.Diff(want, tree.Bindings()); diff != "" {
		t.Errorf("Bindings() mismatch (-want +got):\n%s", diff)
	}

	wantStats := Stats{Prefixes: 1, Normal: 3, Visual: 1, Commands: 1, Leader: true}
	if diff := cmp.Diff(wantStats, tree.Stats()); diff != "" {
		t.Errorf("Stats() mismatch (-want +got):\n%s", diff)
	}
}

func TestDefinitionErrorMessage(t *testing.T) {
	tests := []struct {
		err  *DefinitionError
		want string
	}{
		{
			err:  &DefinitionError{Kind: KindNormal, Key: "X", FileType: "ruby", Err: ErrDuplicate},
			want: `normal mapping for "X" (filetype ruby): already exists`,
		},
		{
			err:  &DefinitionError{Kind: KindPrefix, Key: "p", Err: ErrConflict},
			want: `prefix mapping for "p": conflicts with an existing definition`,
		},
		{
			err:  &DefinitionError{Kind: KindCommand, Key: "Fmt", Err: ErrDuplicate},
			want: `command "Fmt": already exists`,
		},
		{
			err:  &DefinitionError{Kind: KindLeader, Key: ",", Err: ErrLeaderDefined},
			want: `leader ",": leader already defined`,
		},
	}

	for _, tt := range tests {
		if got := tt.err.Error(); got != tt.want {
			t.Errorf("Error() = %q, want %q", got, tt.want)
		}
	}
}
