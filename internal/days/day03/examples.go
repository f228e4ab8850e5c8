package day03

import "github.com/povarna/aoc2022/internal/puzzle"

var Examples = []puzzle.Example{
	{
		Name: "sample",
		Input: `vJrwpWtwJgWrhcsFMMfFFhFp
jqHRNqRjqzjGDLGLrsFMfFZSrLrFZsSL
PmmdzqPrVvPwwTWBwg
wMqvLMZHhHMvwLHjbvcjnnSBnvTQFn
ttgJtRGJQctTZtZT
CrZsJsPPZsGzwwsLwLmpwMDw
`,
		Part1: "157",
		Part2: "70",
	},
}
