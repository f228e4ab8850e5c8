package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func listCmd(opts Options) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the implemented days",
		RunE: func(cmd *cobra.Command, _ []string) error {
			deps, err := opts.Load(cmd.Context())
			if err != nil {
				return err
			}
			defer deps.Close()

			for _, e := range deps.Registry.Days() {
				fmt.Fprintf(opts.Stdout, "%2d  %s\n", e.Day, e.Title)
			}
			return nil
		},
	}
}
