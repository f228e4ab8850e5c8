package day08

import "github.com/povarna/aoc2022/internal/puzzle"

var Examples = []puzzle.Example{
	{
		Name: "sample",
		Input: `30373
25512
65332
33549
35390
`,
		Part1: "21",
		Part2: "8",
	},
}
