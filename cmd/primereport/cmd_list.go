package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newListCmd(f *cliFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List artifacts in the configured store",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, f)
			if err != nil {
				return err
			}
			st, _, closeFn, err := openStore(cfg)
			if err != nil {
				return err
			}
			defer closeFn()

			names, err := st.List()
			if err != nil {
				return fmt.Errorf("list artifacts: %w", err)
			}
			for _, n := range names {
				fmt.Fprintln(cmd.OutOrStdout(), n)
			}
			return nil
		},
	}
}
