// Package days registers every implemented puzzle with a registry.
package days

import (
	"github.com/povarna/aoc2022/internal/config"
	"github.com/povarna/aoc2022/internal/days/day01"
	"github.com/povarna/aoc2022/internal/days/day02"
	"github.com/povarna/aoc2022/internal/days/day03"
	"github.com/povarna/aoc2022/internal/days/day04"
	"github.com/povarna/aoc2022/internal/days/day05"
	"github.com/povarna/aoc2022/internal/days/day06"
	"github.com/povarna/aoc2022/internal/days/day07"
	"github.com/povarna/aoc2022/internal/days/day08"
	"github.com/povarna/aoc2022/internal/days/day09"
	"github.com/povarna/aoc2022/internal/days/day10"
	"github.com/povarna/aoc2022/internal/days/day11"
	"github.com/povarna/aoc2022/internal/puzzle"
)

// Register adds days 1 to 11 to reg, tuned by cfg. A nil cfg uses the
// published constants.
func Register(reg *puzzle.Registry, cfg *config.PuzzlesConfig) {
	if cfg == nil {
		cfg = config.DefaultPuzzlesConfig()
	}
	d := cfg.Days

	reg.Register(1, "Calorie Counting", day01.New(day01.Params{TopCount: d.Day01.TopCount}), day01.Examples...)
	reg.Register(2, "Rock Paper Scissors", day02.New(), day02.Examples...)
	reg.Register(3, "Rucksack Reorganization", day03.New(), day03.Examples...)
	reg.Register(4, "Camp Cleanup", day04.New(), day04.Examples...)
	reg.Register(5, "Supply Stacks", day05.New(), day05.Examples...)
	reg.Register(6, "Tuning Trouble", day06.New(day06.Params{
		PacketMarker:  d.Day06.PacketMarker,
		MessageMarker: d.Day06.MessageMarker,
	}), day06.Examples...)
	reg.Register(7, "No Space Left On Device", day07.New(day07.Params{
		DiskSize:      d.Day07.DiskSize,
		RequiredSpace: d.Day07.RequiredSpace,
		SmallDirLimit: d.Day07.SmallDirLimit,
	}), day07.Examples...)
	reg.Register(8, "Treetop Tree House", day08.New(), day08.Examples...)
	reg.Register(9, "Rope Bridge", day09.New(day09.Params{Knots: d.Day09.Knots}), day09.Examples...)
	reg.Register(10, "Cathode-Ray Tube", day10.New(), day10.Examples...)
	reg.Register(11, "Monkey in the Middle", day11.New(day11.Params{
		Rounds:     d.Day11.Rounds,
		Relief:     d.Day11.Relief,
		LongRounds: d.Day11.LongRounds,
	}), day11.Examples...)
}
