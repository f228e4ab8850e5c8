// Package day02 solves "Rock Paper Scissors" by scoring a strategy guide.
package day02

import (
	"strconv"
	"strings"

	"github.com/povarna/aoc2022/internal/puzzle"
)

type Hand int

const (
	Rock Hand = iota + 1
	Paper
	Scissors
)

// beats reports whether h wins against other.
func (h Hand) beats(other Hand) bool {
	return h == Rock && other == Scissors ||
		h == Paper && other == Rock ||
		h == Scissors && other == Paper
}

type Outcome int

const (
	Lose Outcome = iota
	Draw
	Win
)

func parseHand(s string) (Hand, error) {
	switch s {
	case "A", "X":
		return Rock, nil
	case "B", "Y":
		return Paper, nil
	case "C", "Z":
		return Scissors, nil
	}
	return 0, puzzle.Invalidf("invalid hand: %q", s)
}

func parseOutcome(s string) (Outcome, error) {
	switch s {
	case "X":
		return Lose, nil
	case "Y":
		return Draw, nil
	case "Z":
		return Win, nil
	}
	return 0, puzzle.Invalidf("invalid outcome: %q", s)
}

// respond picks the hand that gives outcome against opponent.
func respond(opponent Hand, outcome Outcome) Hand {
	switch outcome {
	case Win:
		return opponent%3 + 1
	case Lose:
		return (opponent+1)%3 + 1
	}
	return opponent
}

type round struct {
	opponent Hand
	player   Hand
}

// score is the player's points for the round.
func (r round) score() int {
	points := int(r.player)
	switch {
	case r.player == r.opponent:
		points += 3
	case r.player.beats(r.opponent):
		points += 6
	}
	return points
}

type Solver struct{}

func New() *Solver {
	return &Solver{}
}

func (s *Solver) Part1(input string) (string, error) {
	rounds, err := readRounds(input, func(left, right string) (round, error) {
		opponent, err := parseHand(left)
		if err != nil {
			return round{}, err
		}
		player, err := parseHand(right)
		if err != nil {
			return round{}, err
		}
		return round{opponent: opponent, player: player}, nil
	})
	if err != nil {
		return "", err
	}
	return strconv.Itoa(total(rounds)), nil
}

func (s *Solver) Part2(input string) (string, error) {
	rounds, err := readRounds(input, func(left, right string) (round, error) {
		opponent, err := parseHand(left)
		if err != nil {
			return round{}, err
		}
		outcome, err := parseOutcome(right)
		if err != nil {
			return round{}, err
		}
		return round{opponent: opponent, player: respond(opponent, outcome)}, nil
	})
	if err != nil {
		return "", err
	}
	return strconv.Itoa(total(rounds)), nil
}

func total(rounds []round) int {
	sum := 0
	for _, r := range rounds {
		sum += r.score()
	}
	return sum
}

func readRounds(input string, parse func(left, right string) (round, error)) ([]round, error) {
	var rounds []round
	for _, line := range puzzle.Lines(input) {
		left, right, ok := strings.Cut(line, " ")
		if !ok {
			return nil, puzzle.Invalidf("invalid line: %q", line)
		}
		r, err := parse(left, right)
		if err != nil {
			return nil, err
		}
		rounds = append(rounds, r)
	}
	return rounds, nil
}
