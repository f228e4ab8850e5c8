package day04

import "github.com/povarna/aoc2022/internal/puzzle"

var Examples = []puzzle.Example{
	{
		Name: "sample",
		Input: `2-4,6-8
2-3,4-5
5-7,7-9
2-8,3-7
6-6,4-6
2-6,4-8
`,
		Part1: "2",
		Part2: "4",
	},
}
