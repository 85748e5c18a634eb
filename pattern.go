package code128go

import "strings"

// barsFromValues concatenates the width runs of every code value into a
// single digit string.
func barsFromValues(values []int) string {
	var b strings.Builder
	b.Grow(6 * len(values))
	for _, v := range values {
		b.WriteString(code128Widths[v])
	}
	return b.String()
}

// modulesFromValues expands the width runs into the flat module row. Every
// symbol's pattern starts with a bar run and alternates; a bar module is 0
// (a black pixel in the rendered 1-bit image) and a space module is 1.
func modulesFromValues(values []int) []int {
	modules := make([]int, 0, 11*len(values)+2)
	for _, v := range values {
		fill := 0
		for _, w := range code128Widths[v] {
			for j := 0; j < int(w-'0'); j++ {
				modules = append(modules, fill)
			}
			fill ^= 1
		}
	}
	return modules
}

// symbolsFromValues resolves every code value to its symbol by replaying the
// set switches: Code and Start values change the active set, a Shift value
// reinterprets only the following symbol. Start codes resolve identically in
// every set, so the initial set is arbitrary.
func symbolsFromValues(values []int) []string {
	cur := subsetA
	var shifted subset
	symbols := make([]string, 0, len(values))
	for _, v := range values {
		s := cur
		if shifted != 0 {
			s, shifted = shifted, 0
		}
		name := symbolName(v, s)
		switch name {
		case SymStartA, SymCodeA:
			cur = subsetA
		case SymStartB, SymCodeB:
			cur = subsetB
		case SymStartC, SymCodeC:
			cur = subsetC
		case SymShiftA:
			shifted = subsetA
		case SymShiftB:
			shifted = subsetB
		}
		symbols = append(symbols, name)
	}
	return symbols
}
