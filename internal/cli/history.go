package cli

import (
	"errors"
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
)

var errNoDatabase = errors.New("run history needs a database: set DB_HOST")

func historyCmd(opts Options) *cobra.Command {
	var (
		day   int
		limit int
	)

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recorded solve runs",
		RunE: func(cmd *cobra.Command, _ []string) error {
			deps, err := opts.Load(cmd.Context())
			if err != nil {
				return err
			}
			defer deps.Close()

			if deps.DB == nil {
				return errNoDatabase
			}

			runs, err := deps.DB.ListRuns(cmd.Context(), day, limit)
			if err != nil {
				return err
			}
			if len(runs) == 0 {
				fmt.Fprintln(opts.Stdout, "(no runs recorded)")
				return nil
			}

			w := tabwriter.NewWriter(opts.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "WHEN\tDAY\tPART\tSTATUS\tDURATION\tRESULT")
			for _, r := range runs {
				outcome := r.Answer
				if r.Error != "" {
					outcome = r.Error
				}
				fmt.Fprintf(w, "%s\t%d\t%d\t%s\t%s\t%s\n",
					r.CreatedAt.Local().Format(time.DateTime), r.Day, r.Part, r.Status, r.Duration, firstLine(outcome))
			}
			return w.Flush()
		},
	}

	cmd.Flags().IntVarP(&day, "day", "d", 0, "only show this day")
	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "maximum number of runs")
	return cmd
}

func firstLine(s string) string {
	for i := range len(s) {
		if s[i] == '\n' {
			return s[:i] + " …"
		}
	}
	return s
}
