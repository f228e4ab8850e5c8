package puzzle

import (
	"strconv"
	"strings"

	"golang.org/x/exp/constraints"
)

// Normalize converts CRLF line endings and drops trailing newlines.
func Normalize(input string) string {
	input = strings.ReplaceAll(input, "\r\n", "\n")
	return strings.TrimRight(input, "\n")
}

// Lines splits input into lines. Empty input yields no lines.
func Lines(input string) []string {
	input = Normalize(input)
	if input == "" {
		return nil
	}
	return strings.Split(input, "\n")
}

// Blocks splits input on blank lines.
func Blocks(input string) []string {
	input = Normalize(input)
	if input == "" {
		return nil
	}
	return strings.Split(input, "\n\n")
}

// Atoi parses s as a base-10 int, reporting failures as invalid input.
func Atoi(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, Invalidf("not a number: %q", s)
	}
	return n, nil
}

// Abs returns the absolute value of x.
func Abs[T constraints.Signed](x T) T {
	if x < 0 {
		return -x
	}
	return x
}

// Sign returns -1, 0 or 1 matching the sign of x.
func Sign[T constraints.Signed](x T) T {
	switch {
	case x < 0:
		return -1
	case x > 0:
		return 1
	}
	return 0
}
