package day09

import "github.com/povarna/aoc2022/internal/puzzle"

var Examples = []puzzle.Example{
	{
		Name: "sample",
		Input: `R 4
U 4
L 3
D 1
R 4
D 1
L 5
R 2
`,
		Part1: "13",
		Part2: "1",
	},
	{
		Name: "larger",
		Input: `R 5
U 8
L 8
D 3
R 17
D 10
L 25
U 20
`,
		Part2: "36",
	},
}
