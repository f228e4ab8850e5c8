// Package cli implements the aoc command line.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/povarna/aoc2022/internal/config"
	"github.com/povarna/aoc2022/internal/models"
	"github.com/povarna/aoc2022/internal/puzzle"
	"github.com/povarna/aoc2022/internal/setup"
	"github.com/povarna/aoc2022/internal/setup/logger"
)

// Options carries the process streams and the dependency loader shared by
// every command.
type Options struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
	Load   func(ctx context.Context) (*setup.Dependencies, error)
}

func Execute(ctx context.Context) {
	cmd := NewRootCmd(Options{
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		Load:   loadDependencies,
	})
	if err := cmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

// cliRedisAttempts bounds the Redis connection attempts of a one-shot
// command so an unreachable server costs one ping, not the full backoff.
const cliRedisAttempts = 1

func loadDependencies(ctx context.Context) (*setup.Dependencies, error) {
	cfg, err := setup.LoadConfig()
	if err != nil {
		return nil, err
	}
	tuneForCLI(cfg)
	log := logger.New(cfg.LogLevel)
	return setup.Wire(ctx, cfg, &log)
}

func tuneForCLI(cfg *config.Config) {
	if cfg.Redis.MaxRetries > cliRedisAttempts {
		cfg.Redis.MaxRetries = cliRedisAttempts
	}
}

func NewRootCmd(opts Options) *cobra.Command {
	var (
		day  int
		part int
		file string
	)

	cmd := &cobra.Command{
		Use:   "aoc",
		Short: "Solve Advent of Code 2022 puzzles",
		Long: "Solve one part of an Advent of Code 2022 puzzle.\n\n" +
			"Reads the puzzle input from --file (use - for stdin) and prints the answer.",
		Example:      "  aoc --day 1 --part 2 --file inputs/day01.txt",
		SilenceUsage: true,
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

			result, err := deps.Runner.Solve(cmd.Context(), models.SolveRequest{
				Day:   day,
				Part:  part,
				Input: input,
			})
			if err != nil {
				return err
			}

			_, err = fmt.Fprint(opts.Stdout, formatAnswer(result))
			return err
		},
	}

	cmd.SetIn(opts.Stdin)
	cmd.SetOut(opts.Stdout)
	cmd.SetErr(opts.Stderr)

	cmd.Flags().IntVarP(&day, "day", "d", 0, "puzzle day (1-25)")
	cmd.Flags().IntVarP(&part, "part", "p", 0, "puzzle part (1 or 2)")
	cmd.Flags().StringVarP(&file, "file", "f", "", "puzzle input file, or - for stdin")
	_ = cmd.MarkFlagRequired("day")
	_ = cmd.MarkFlagRequired("part")
	_ = cmd.MarkFlagRequired("file")

	cmd.AddCommand(checkCmd(opts))
	cmd.AddCommand(listCmd(opts))
	cmd.AddCommand(historyCmd(opts))
	cmd.AddCommand(enqueueCmd(opts))
	return cmd
}

// formatAnswer puts multi-line answers, such as rendered screens, on their
// own lines below the header.
func formatAnswer(r models.SolveResult) string {
	if strings.Contains(r.Answer, "\n") {
		return fmt.Sprintf("Day %d, part %d:\n%s\n", r.Day, r.Part, r.Answer)
	}
	return fmt.Sprintf("Day %d, part %d: %s\n", r.Day, r.Part, r.Answer)
}

func readInput(path string, stdin io.Reader) (string, error) {
	if path == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read input: %w", err)
	}
	return string(data), nil
}
