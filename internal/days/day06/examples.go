package day06

import "github.com/povarna/aoc2022/internal/puzzle"

var Examples = []puzzle.Example{
	{Name: "mjqjpqmgbljsphdztnvjfqwrcgsmlb", Input: "mjqjpqmgbljsphdztnvjfqwrcgsmlb\n", Part1: "7", Part2: "19"},
	{Name: "bvwbjplbgvbhsrlpgdmjqwftvncz", Input: "bvwbjplbgvbhsrlpgdmjqwftvncz\n", Part1: "5", Part2: "23"},
	{Name: "nppdvjthqldpwncqszvftbrmjlhg", Input: "nppdvjthqldpwncqszvftbrmjlhg\n", Part1: "6", Part2: "23"},
	{Name: "nznrnfrfntjfmvfwmzdfjlvtqnbhcprsg", Input: "nznrnfrfntjfmvfwmzdfjlvtqnbhcprsg\n", Part1: "10", Part2: "29"},
	{Name: "zcfzfwzzqfrljwzlrfnpqdbhtmscgvjw", Input: "zcfzfwzzqfrljwzlrfnpqdbhtmscgvjw\n", Part1: "11", Part2: "26"},
}
