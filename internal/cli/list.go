package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/dshills/vimmapper/internal/compiler"
)

// listEntry is one row of list output.
type listEntry struct {
	Mode     string `json:"mode" yaml:"mode"`
	Keys     string `json:"keys" yaml:"keys"`
	Action   string `json:"action" yaml:"action"`
	Desc     string `json:"desc,omitempty" yaml:"desc,omitempty"`
	FileType string `json:"filetype,omitempty" yaml:"filetype,omitempty"`
	Prefix   string `json:"prefix,omitempty" yaml:"prefix,omitempty"`
}

// haystack is the text a filter is matched against.
func (e listEntry) haystack() string {
	return strings.Join([]string{e.Keys, e.Desc, e.Action, e.Prefix}, " ")
}

func newListCmd(g *globalFlags) *cobra.Command {
	var (
		filter string
		format string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the bindings and commands a declaration defines",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			switch format {
			case "table", "yaml", "json":
			default:
				return fmt.Errorf("unknown list format %q (want table, yaml or json)", format)
			}

			c, _, _, err := setup(cmd, g)
			if err != nil {
				return err
			}
			res, err := c.Compile(cmd.Context())
			if err != nil {
				return err
			}

			entries := filterEntries(listEntries(res), filter)
			out := cmd.OutOrStdout()
			switch format {
			case "yaml":
				return writeYAML(out, entries)
			case "json":
				return writeJSON(out, entries)
			default:
				return writeTable(out, entries)
			}
		},
	}

	cmd.Flags().StringVarP(&filter, "filter", "f", "", "fuzzy filter on keys, description, action and prefix")
	cmd.Flags().StringVar(&format, "as", "table", "output format: table, yaml or json")

	return cmd
}

// listEntries flattens commands and bindings in render order.
func listEntries(res *compiler.Result) []listEntry {
	entries := make([]listEntry, 0, len(res.Commands)+len(res.Bindings))
	for _, c := range res.Commands {
		entries = append(entries, listEntry{
			Mode:     "command",
			Keys:     c.Name,
			Action:   c.Action,
			Desc:     c.Desc,
			FileType: c.FileType,
		})
	}
	for _, b := range res.Bindings {
		entries = append(entries, listEntry{
			Mode:     b.Mode.String(),
			Keys:     b.Keys,
			Action:   b.Action,
			Desc:     b.Desc,
			FileType: b.FileType,
			Prefix:   b.Prefix,
		})
	}
	return entries
}

func filterEntries(entries []listEntry, filter string) []listEntry {
	if filter == "" {
		return entries
	}
	var out []listEntry
	for _, e := range entries {
		if fuzzy.MatchFold(filter, e.haystack()) {
			out = append(out, e)
		}
	}
	return out
}

func writeYAML(w io.Writer, entries []listEntry) error {
	if entries == nil {
		entries = []listEntry{}
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(entries); err != nil {
		return err
	}
	return enc.Close()
}

func writeJSON(w io.Writer, entries []listEntry) error {
	if entries == nil {
		entries = []listEntry{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(entries)
}

func writeTable(w io.Writer, entries []listEntry) error {
	re := lipgloss.NewRenderer(w)
	cell := re.NewStyle().Padding(0, 1)
	header := cell.Bold(true)

	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, []string{e.Mode, e.Keys, e.Desc, e.Action, e.FileType, e.Prefix})
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(re.NewStyle().Foreground(lipgloss.Color("240"))).
		Headers("MODE", "KEYS", "DESCRIPTION", "ACTION", "FILETYPE", "PREFIX").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return header
			}
			return cell
		})

	_, err := fmt.Fprintln(w, t.Render())
	return err
}
