package day10

import (
	"strings"

	"github.com/povarna/aoc2022/internal/puzzle"
)

var Examples = []puzzle.Example{
	{
		Name:  "idle",
		Input: strings.Repeat("noop\n", 240),
		Part1: "720",
		Part2: strings.TrimSuffix(strings.Repeat("###"+strings.Repeat(".", 37)+"\n", 6), "\n"),
	},
	{
		Name:  "shifted",
		Input: "addx 5\n" + strings.Repeat("noop\n", 238),
		Part1: "4320",
		Part2: "##...###" + strings.Repeat(".", 32) + "\n" +
			strings.TrimSuffix(strings.Repeat("....."+"###"+strings.Repeat(".", 32)+"\n", 5), "\n"),
	},
}
