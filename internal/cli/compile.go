package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newCompileCmd(g *globalFlags) *cobra.Command {
	var stdout bool

	cmd := &cobra.Command{
		Use:   "compile",
		Short: "Compile the declaration and write the output file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompile(cmd, g, stdout)
		},
	}
	cmd.Flags().BoolVar(&stdout, "stdout", false, "print the Vim script instead of writing it")

	return cmd
}

func runCompile(cmd *cobra.Command, g *globalFlags, stdout bool) error {
	c, _, _, err := setup(cmd, g)
	if err != nil {
		return err
	}

	if stdout {
		res, err := c.Compile(cmd.Context())
		if err != nil {
			return err
		}
		_, err = fmt.Fprint(cmd.OutOrStdout(), res.Text)
		return err
	}

	_, err = c.Run(cmd.Context())
	return err
}
