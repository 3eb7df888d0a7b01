package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newCheckCmd(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Validate the declaration without writing anything",
		Long: `Evaluate the declaration and report what it defines. Duplicate or
conflicting definitions and malformed declarations make check fail.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, cfg, _, err := setup(cmd, g)
			if err != nil {
				return err
			}

			res, err := c.Compile(cmd.Context())
			if err != nil {
				return err
			}

			st := res.Stats
			leader := "no leader"
			if st.Leader {
				leader = "leader defined"
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(),
				"%s: ok (%d normal, %d visual, %d commands, %d prefixes, %s)\n",
				cfg.Declaration, st.Normal, st.Visual, st.Commands, st.Prefixes, leader)
			return err
		},
	}
}
