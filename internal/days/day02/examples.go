package day02

import "github.com/povarna/aoc2022/internal/puzzle"

var Examples = []puzzle.Example{
	{
		Name:  "sample",
		Input: "A Y\nB X\nC Z\n",
		Part1: "15",
		Part2: "12",
	},
}
