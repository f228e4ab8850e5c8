package day01

import "github.com/povarna/aoc2022/internal/puzzle"

var Examples = []puzzle.Example{
	{
		Name: "sample",
		Input: `1000
2000
3000

4000

5000
6000

7000
8000
9000

10000
`,
		Part1: "24000",
		Part2: "45000",
	},
}
