// Package day08 solves "Treetop Tree House" on a grid of tree heights.
package day08

import (
	"strconv"

	"github.com/povarna/aoc2022/internal/puzzle"
)

type grid [][]int

var directions = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

func parseGrid(input string) (grid, error) {
	lines := puzzle.Lines(input)
	if len(lines) == 0 {
		return nil, puzzle.Invalidf("empty grid")
	}

	g := make(grid, len(lines))
	for r, line := range lines {
		if len(line) != len(lines[0]) {
			return nil, puzzle.Invalidf("row %d has %d trees, want %d", r+1, len(line), len(lines[0]))
		}
		g[r] = make([]int, len(line))
		for c := 0; c < len(line); c++ {
			if line[c] < '0' || line[c] > '9' {
				return nil, puzzle.Invalidf("invalid tree height %q on row %d", line[c], r+1)
			}
			g[r][c] = int(line[c] - '0')
		}
	}
	return g, nil
}

func (g grid) inside(r, c int) bool {
	return r >= 0 && r < len(g) && c >= 0 && c < len(g[r])
}

// look walks from (r, c) in direction d. It returns how many trees are seen
// and whether the view reaches the edge unblocked.
func (g grid) look(r, c int, d [2]int) (seen int, clear bool) {
	height := g[r][c]
	for nr, nc := r+d[0], c+d[1]; g.inside(nr, nc); nr, nc = nr+d[0], nc+d[1] {
		seen++
		if g[nr][nc] >= height {
			return seen, false
		}
	}
	return seen, true
}

func (g grid) visible(r, c int) bool {
	for _, d := range directions {
		if _, clear := g.look(r, c, d); clear {
			return true
		}
	}
	return false
}

func (g grid) scenicScore(r, c int) int {
	score := 1
	for _, d := range directions {
		seen, _ := g.look(r, c, d)
		score *= seen
	}
	return score
}

type Solver struct{}

func New() *Solver {
	return &Solver{}
}

func (s *Solver) Part1(input string) (string, error) {
	g, err := parseGrid(input)
	if err != nil {
		return "", err
	}

	count := 0
	for r := range g {
		for c := range g[r] {
			if g.visible(r, c) {
				count++
			}
		}
	}
	return strconv.Itoa(count), nil
}

func (s *Solver) Part2(input string) (string, error) {
	g, err := parseGrid(input)
	if err != nil {
		return "", err
	}

	best := 0
	for r := range g {
		for c := range g[r] {
			best = max(best, g.scenicScore(r, c))
		}
	}
	return strconv.Itoa(best), nil
}
