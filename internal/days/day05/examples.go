package day05

import "github.com/povarna/aoc2022/internal/puzzle"

var Examples = []puzzle.Example{
	{
		Name: "sample",
		Input: "    [D]    \n" +
			"[N] [C]    \n" +
			"[Z] [M] [P]\n" +
			" 1   2   3 \n" +
			"\n" +
			"move 1 from 2 to 1\n" +
			"move 3 from 1 to 3\n" +
			"move 2 from 2 to 1\n" +
			"move 1 from 1 to 2\n",
		Part1: "CMZ",
		Part2: "MCD",
	},
}
