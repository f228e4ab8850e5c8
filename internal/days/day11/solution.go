// Package day11 solves "Monkey in the Middle": simulate monkeys throwing
// items and measure the level of monkey business.
package day11

import (
	"slices"
	"strconv"
	"strings"

	"github.com/povarna/aoc2022/internal/puzzle"
)

type Params struct {
	Rounds     int
	Relief     int
	LongRounds int
}

func DefaultParams() Params {
	return Params{Rounds: 20, Relief: 3, LongRounds: 10000}
}

type operation struct {
	op      byte
	operand int
	self    bool // operand is "old"
}

func (o operation) apply(old int) int {
	v := o.operand
	if o.self {
		v = old
	}
	if o.op == '*' {
		return old * v
	}
	return old + v
}

type monkey struct {
	items     []int
	op        operation
	divisor   int
	ifTrue    int
	ifFalse   int
	inspected int
}

func (m *monkey) target(worry int) int {
	if worry%m.divisor == 0 {
		return m.ifTrue
	}
	return m.ifFalse
}

func parseMonkeys(input string) ([]*monkey, error) {
	var monkeys []*monkey
	for _, block := range puzzle.Blocks(input) {
		m, err := parseMonkey(block)
		if err != nil {
			return nil, err
		}
		monkeys = append(monkeys, m)
	}
	if len(monkeys) == 0 {
		return nil, puzzle.Invalidf("no monkeys")
	}

	for i, m := range monkeys {
		for _, t := range []int{m.ifTrue, m.ifFalse} {
			if t < 0 || t >= len(monkeys) || t == i {
				return nil, puzzle.Invalidf("monkey %d throws to invalid monkey %d", i, t)
			}
		}
	}
	return monkeys, nil
}

func parseMonkey(block string) (*monkey, error) {
	lines := strings.Split(block, "\n")
	if len(lines) != 6 {
		return nil, puzzle.Invalidf("monkey notes need 6 lines, got %d: %q", len(lines), block)
	}
	fields := make([]string, len(lines))
	for i, line := range lines {
		fields[i] = strings.TrimSpace(line)
	}

	if !strings.HasPrefix(fields[0], "Monkey ") {
		return nil, puzzle.Invalidf("bad monkey header: %q", fields[0])
	}

	m := &monkey{}

	items, ok := strings.CutPrefix(fields[1], "Starting items:")
	if !ok {
		return nil, puzzle.Invalidf("bad starting items: %q", fields[1])
	}
	if items = strings.TrimSpace(items); items != "" {
		for _, s := range strings.Split(items, ",") {
			worry, err := puzzle.Atoi(s)
			if err != nil {
				return nil, err
			}
			m.items = append(m.items, worry)
		}
	}

	op, err := parseOperation(fields[2])
	if err != nil {
		return nil, err
	}
	m.op = op

	if m.divisor, err = intSuffix(fields[3], "Test: divisible by "); err != nil {
		return nil, err
	}
	if m.divisor <= 0 {
		return nil, puzzle.Invalidf("divisor must be positive: %q", fields[3])
	}
	if m.ifTrue, err = intSuffix(fields[4], "If true: throw to monkey "); err != nil {
		return nil, err
	}
	if m.ifFalse, err = intSuffix(fields[5], "If false: throw to monkey "); err != nil {
		return nil, err
	}
	return m, nil
}

func parseOperation(line string) (operation, error) {
	expr, ok := strings.CutPrefix(line, "Operation: new = old ")
	if !ok {
		return operation{}, puzzle.Invalidf("bad operation: %q", line)
	}
	op, operand, ok := strings.Cut(expr, " ")
	if !ok || (op != "*" && op != "+") {
		return operation{}, puzzle.Invalidf("bad operation: %q", line)
	}

	o := operation{op: op[0]}
	if operand == "old" {
		o.self = true
		return o, nil
	}
	v, err := puzzle.Atoi(operand)
	if err != nil {
		return operation{}, err
	}
	o.operand = v
	return o, nil
}

func intSuffix(line, prefix string) (int, error) {
	s, ok := strings.CutPrefix(line, prefix)
	if !ok {
		return 0, puzzle.Invalidf("expected %q: %q", prefix, line)
	}
	return puzzle.Atoi(s)
}

type Solver struct {
	params Params
}

func New(p Params) *Solver {
	return &Solver{params: p}
}

func (s *Solver) Part1(input string) (string, error) {
	relief := s.params.Relief
	return monkeyBusiness(input, s.params.Rounds, func(w int) int { return w / relief })
}

func (s *Solver) Part2(input string) (string, error) {
	return monkeyBusiness(input, s.params.LongRounds, nil)
}

// maxModulus keeps the square of any reduced worry level within int64.
const maxModulus = 3_037_000_499

// commonModulus is the least common multiple of every divisor.
func commonModulus(monkeys []*monkey) (int, error) {
	lcm := 1
	for _, m := range monkeys {
		step := m.divisor / gcd(lcm, m.divisor)
		if lcm > maxModulus/step {
			return 0, puzzle.Invalidf("divisors too large: common multiple exceeds %d", maxModulus)
		}
		lcm *= step
	}
	return lcm, nil
}

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// monkeyBusiness plays the rounds and multiplies the two highest
// inspection counts. A nil relief keeps worry bounded by the least common
// multiple of all divisors, which preserves every divisibility test.
func monkeyBusiness(input string, rounds int, relief func(int) int) (string, error) {
	monkeys, err := parseMonkeys(input)
	if err != nil {
		return "", err
	}
	if len(monkeys) < 2 {
		return "", puzzle.Invalidf("need at least two monkeys, got %d", len(monkeys))
	}

	if relief == nil {
		mod, err := commonModulus(monkeys)
		if err != nil {
			return "", err
		}
		relief = func(w int) int { return w % mod }
	}

	for range rounds {
		for _, m := range monkeys {
			for _, worry := range m.items {
				worry = relief(m.op.apply(worry))
				dst := monkeys[m.target(worry)]
				dst.items = append(dst.items, worry)
			}
			m.inspected += len(m.items)
			m.items = m.items[:0]
		}
	}

	counts := make([]int, len(monkeys))
	for i, m := range monkeys {
		counts[i] = m.inspected
	}
	slices.Sort(counts)
	return strconv.Itoa(counts[len(counts)-1] * counts[len(counts)-2]), nil
}
