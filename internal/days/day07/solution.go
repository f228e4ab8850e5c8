// Package day07 solves "No Space Left On Device" by replaying a terminal
// transcript and totalling directory sizes.
package day07

import (
	"strconv"
	"strings"

	"github.com/povarna/aoc2022/internal/puzzle"
)

const root = "/"

type Params struct {
	DiskSize      int
	RequiredSpace int
	SmallDirLimit int
}

func DefaultParams() Params {
	return Params{
		DiskSize:      70000000,
		RequiredSpace: 30000000,
		SmallDirLimit: 100000,
	}
}

type Solver struct {
	params Params
}

func New(p Params) *Solver {
	return &Solver{params: p}
}

func (s *Solver) Part1(input string) (string, error) {
	sizes, err := dirSizes(input)
	if err != nil {
		return "", err
	}

	total := 0
	for _, size := range sizes {
		if size <= s.params.SmallDirLimit {
			total += size
		}
	}
	return strconv.Itoa(total), nil
}

func (s *Solver) Part2(input string) (string, error) {
	sizes, err := dirSizes(input)
	if err != nil {
		return "", err
	}

	used, ok := sizes[root]
	if !ok {
		return "", puzzle.Invalidf("no root directory")
	}
	need := s.params.RequiredSpace - (s.params.DiskSize - used)
	if need <= 0 {
		return "0", nil
	}

	smallest := -1
	for _, size := range sizes {
		if size >= need && (smallest == -1 || size < smallest) {
			smallest = size
		}
	}
	if smallest == -1 {
		return "", puzzle.Invalidf("no directory found")
	}
	return strconv.Itoa(smallest), nil
}

type lineKind int

const (
	cdCommand lineKind = iota
	lsCommand
	dirListing
	fileListing
)

type termLine struct {
	kind lineKind
	name string
	size int
}

func parseTermLine(s string) (termLine, error) {
	if dir, ok := strings.CutPrefix(s, "$ cd "); ok {
		return termLine{kind: cdCommand, name: dir}, nil
	}
	if s == "$ ls" {
		return termLine{kind: lsCommand}, nil
	}
	if dir, ok := strings.CutPrefix(s, "dir "); ok {
		return termLine{kind: dirListing, name: dir}, nil
	}

	size, name, ok := strings.Cut(s, " ")
	if !ok {
		return termLine{}, puzzle.Invalidf("bad command: %q", s)
	}
	n, err := strconv.Atoi(size)
	if err != nil || n < 0 {
		return termLine{}, puzzle.Invalidf("bad file size: %q", s)
	}
	return termLine{kind: fileListing, name: name, size: n}, nil
}

// dirSizes maps each directory path to the total size of the files below
// it. Every file's size is added to its directory and all ancestors.
func dirSizes(input string) (map[string]int, error) {
	sizes := make(map[string]int)
	var cwd []string

	for _, raw := range puzzle.Lines(input) {
		line, err := parseTermLine(raw)
		if err != nil {
			return nil, err
		}

		switch line.kind {
		case cdCommand:
			switch line.name {
			case root:
				cwd = cwd[:0]
			case "..":
				if len(cwd) > 0 {
					cwd = cwd[:len(cwd)-1]
				}
			default:
				cwd = append(cwd, line.name)
			}
		case fileListing:
			for depth := len(cwd); depth >= 0; depth-- {
				sizes[path(cwd[:depth])] += line.size
			}
		}
	}
	return sizes, nil
}

func path(parts []string) string {
	return root + strings.Join(parts, "/")
}
