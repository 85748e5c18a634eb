package code128go

import "testing"

func TestWidthTable(t *testing.T) {
	for v, widths := range code128Widths {
		runs, sum := 0, 0
		for _, w := range widths {
			if w < '1' || w > '4' {
				t.Fatalf("value %d: width %q out of range", v, w)
			}
			runs++
			sum += int(w - '0')
		}
		wantRuns, wantSum := 6, 11
		if v == codeStop {
			wantRuns, wantSum = 7, 13
		}
		if runs != wantRuns {
			t.Errorf("value %d: %d runs, want %d", v, runs, wantRuns)
		}
		if sum != wantSum {
			t.Errorf("value %d: widths sum to %d, want %d", v, sum, wantSum)
		}
	}
}

func TestSymbolNameSpecials(t *testing.T) {
	tests := []struct {
		v    int
		s    subset
		want string
	}{
		{codeStartA, subsetC, SymStartA},
		{codeStartB, subsetA, SymStartB},
		{codeStartC, subsetB, SymStartC},
		{codeStop, subsetA, SymStop},
		{codeShift, subsetA, SymShiftB},
		{codeShift, subsetB, SymShiftA},
		{codeCodeC, subsetA, SymCodeC},
		{codeCodeC, subsetB, SymCodeC},
		{codeCodeB, subsetA, SymCodeB},
		{codeCodeB, subsetC, SymCodeB},
		{codeCodeA, subsetB, SymCodeA},
		{codeCodeA, subsetC, SymCodeA},
		{codeFNC4A, subsetA, SymFNC4},
		{codeFNC4B, subsetB, SymFNC4},
		{codeFNC1, subsetC, SymFNC1},
		{codeFNC2, subsetA, SymFNC2},
		{codeFNC3, subsetB, SymFNC3},
	}
	for _, tc := range tests {
		if got := symbolName(tc.v, tc.s); got != tc.want {
			t.Errorf("symbolName(%d, %c) = %q, want %q", tc.v, tc.s, got, tc.want)
		}
	}
}

func TestSymbolNameData(t *testing.T) {
	tests := []struct {
		v    int
		s    subset
		want string
	}{
		{0, subsetA, " "},
		{33, subsetA, "A"},
		{64, subsetA, "\x00"},
		{95, subsetA, "\x1f"},
		{0, subsetB, " "},
		{65, subsetB, "a"},
		{95, subsetB, "\x7f"},
		{0, subsetC, "00"},
		{7, subsetC, "07"},
		{99, subsetC, "99"},
	}
	for _, tc := range tests {
		if got := symbolName(tc.v, tc.s); got != tc.want {
			t.Errorf("symbolName(%d, %c) = %q, want %q", tc.v, tc.s, got, tc.want)
		}
	}
}
