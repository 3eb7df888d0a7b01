// Package cli implements the vimmapper command line.
package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/dshills/vimmapper/internal/declaration"
)

// BuildInfo identifies the running binary.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// globalFlags holds the persistent flags shared by every command.
type globalFlags struct {
	configPath  string
	declaration string
	output      string
	format      string
	logLevel    string
}

// NewRootCommand builds the command tree. Without a subcommand the
// declaration is compiled to the output file.
func NewRootCommand(info BuildInfo) *cobra.Command {
	g := &globalFlags{}

	root := &cobra.Command{
		Use:   "vimmapper",
		Short: "Compile key mapping declarations into Vim script",
		Long: `vimmapper reads a mapping declaration (Lua, YAML, TOML or JSON) and
writes Vim script defining the mappings, editor commands and which-key
help menus it describes.

Settings come from ~/.config/vimmapper/config.toml, VIMMAPPER_* environment
variables and the flags below, in increasing order of precedence.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompile(cmd, g, false)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&g.configPath, "config", "", "configuration file (default ~/.config/vimmapper/config.toml)")
	pf.StringVarP(&g.declaration, "declaration", "d", "", "declaration file to compile")
	pf.StringVarP(&g.output, "output", "o", "", "Vim script file to write")
	pf.StringVar(&g.format, "format", "", "declaration format: "+strings.Join(declaration.FormatNames(), ", ")+" (default from extension)")
	pf.StringVar(&g.logLevel, "log-level", "", "log level: trace, debug, info, warn, error")

	root.AddCommand(
		newCompileCmd(g),
		newCheckCmd(g),
		newListCmd(g),
		newWatchCmd(g),
		newSchemaCmd(),
		newVersionCmd(info),
	)

	return root
}
