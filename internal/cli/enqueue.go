package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/povarna/aoc2022/internal/models"
	"github.com/povarna/aoc2022/internal/puzzle"
	"github.com/povarna/aoc2022/internal/stream"
)

var errNoRedis = errors.New("enqueue needs Redis: set REDIS_ADDR")

func enqueueCmd(opts Options) *cobra.Command {
	var (
		day       int
		part      int
		file      string
		requestID string
	)

	cmd := &cobra.Command{
		Use:   "enqueue",
		Short: "Publish a solve request for the stream worker",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := puzzle.Validate(day, part); err != nil {
				return err
			}

			input, err := readInput(file, opts.Stdin)
			if err != nil {
				return err
			}

			deps, err := opts.Load(cmd.Context())
			if err != nil {
				return err
			}
			defer deps.Close()

			if deps.Redis == nil {
				return errNoRedis
			}

			target := stream.DefaultStream
			if deps.Config != nil && deps.Config.Stream.Requests != "" {
				target = deps.Config.Stream.Requests
			}

			id, err := stream.Publish(cmd.Context(), deps.Redis, target, models.SolveRequest{
				RequestID: requestID,
				Day:       day,
				Part:      part,
				Input:     input,
			})
			if err != nil {
				return err
			}

			fmt.Fprintf(opts.Stdout, "Enqueued day %d part %d on %s as %s\n", day, part, target, id)
			return nil
		},
	}

	cmd.Flags().IntVarP(&day, "day", "d", 0, "puzzle day (1-25)")
	cmd.Flags().IntVarP(&part, "part", "p", 0, "puzzle part (1 or 2)")
	cmd.Flags().StringVarP(&file, "file", "f", "", "puzzle input file, or - for stdin")
	cmd.Flags().StringVar(&requestID, "request-id", "", "identifier echoed back with the answer")
	_ = cmd.MarkFlagRequired("day")
	_ = cmd.MarkFlagRequired("part")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}
