package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func checkCmd(opts Options) *cobra.Command {
	var day int

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Run the published examples against the solvers",
		RunE: func(cmd *cobra.Command, _ []string) error {
			deps, err := opts.Load(cmd.Context())
			if err != nil {
				return err
			}
			defer deps.Close()

			if day != 0 {
				if _, ok := deps.Registry.Entry(day); !ok {
					return fmt.Errorf("day %d has no registered solver", day)
				}
			}

			results := deps.Registry.Check(day)
			failed := 0
			for _, r := range results {
				if r.OK() {
					fmt.Fprintf(opts.Stdout, "✓ day %02d part %d (%s)\n", r.Day, r.Part, r.Example)
					continue
				}
				failed++
				if r.Err != nil {
					fmt.Fprintf(opts.Stdout, "✗ day %02d part %d (%s): %v\n", r.Day, r.Part, r.Example, r.Err)
				} else {
					fmt.Fprintf(opts.Stdout, "✗ day %02d part %d (%s): got %q, want %q\n", r.Day, r.Part, r.Example, r.Got, r.Want)
				}
			}

			if failed > 0 {
				return fmt.Errorf("%d of %d examples failed", failed, len(results))
			}
			fmt.Fprintf(opts.Stdout, "%d examples passed\n", len(results))
			return nil
		},
	}

	cmd.Flags().IntVarP(&day, "day", "d", 0, "only check this day")
	return cmd
}
