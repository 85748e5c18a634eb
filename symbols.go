package code128go

import "fmt"

// Code values with special meaning. A value's interpretation depends on the
// active code set: 100 is FNC 4 in set B but Code B elsewhere, and 101 is
// FNC 4 in set A but Code A elsewhere. The start and stop values mean the
// same thing in every set.
const (
	codeShift  = 98
	codeCodeC  = 99
	codeCodeB  = 100
	codeCodeA  = 101
	codeFNC1   = 102
	codeFNC2   = 97
	codeFNC3   = 96
	codeFNC4A  = 101
	codeFNC4B  = 100
	codeStartA = 103
	codeStartB = 104
	codeStartC = 105
	codeStop   = 106
)

// Names used for special symbols in a Barcode's symbol sequence.
const (
	SymStartA = "[Start Code A]"
	SymStartB = "[Start Code B]"
	SymStartC = "[Start Code C]"
	SymCodeA  = "[Code A]"
	SymCodeB  = "[Code B]"
	SymCodeC  = "[Code C]"
	SymShiftA = "[Shift A]"
	SymShiftB = "[Shift B]"
	SymFNC1   = "[FNC 1]"
	SymFNC2   = "[FNC 2]"
	SymFNC3   = "[FNC 3]"
	SymFNC4   = "[FNC 4]"
	SymStop   = "[Stop]"
)

// subset identifies one of the three Code 128 character sets.
type subset byte

const (
	subsetA subset = 'A'
	subsetB subset = 'B'
	subsetC subset = 'C'
)

// code128Widths lists the bar and space widths for each code value, indexed
// 0-106. Each entry is six digits (seven for the stop value) where the first
// digit is a bar width and bars and spaces alternate. Every entry sums to 11
// modules; the stop pattern sums to 13.
var code128Widths = [107]string{
	"212222", "222122", "222221", "121223", "121322", // 0
	"131222", "122213", "122312", "132212", "221213", // 5
	"221312", "231212", "112232", "122132", "122231", // 10
	"113222", "123122", "123221", "223211", "221132", // 15
	"221231", "213212", "223112", "312131", "311222", // 20
	"321122", "321221", "312212", "322112", "322211", // 25
	"212123", "212321", "232121", "111323", "131123", // 30
	"131321", "112313", "132113", "132311", "211313", // 35
	"231113", "231311", "112133", "112331", "132131", // 40
	"113123", "113321", "133121", "313121", "211331", // 45
	"231131", "213113", "213311", "213131", "311123", // 50
	"311321", "331121", "312113", "312311", "332111", // 55
	"314111", "221411", "431111", "111224", "111422", // 60
	"121124", "121421", "141122", "141221", "112214", // 65
	"112412", "122114", "122411", "142112", "142211", // 70
	"241211", "221114", "413111", "241112", "134111", // 75
	"111242", "121142", "121241", "114212", "124112", // 80
	"124211", "411212", "421112", "421211", "212141", // 85
	"214121", "412121", "111143", "111341", "131141", // 90
	"114113", "114311", "411113", "411311", "113141", // 95
	"114131", "311141", "411131", "211412", "211214", // 100
	"211232",  // 105 (Start C)
	"2331112", // 106 (Stop)
}

// charValue returns the code value of byte c in set s, or -1 if c has no
// encoding in that set. Set C values are pair-encoded and handled separately.
func charValue(c byte, s subset) int {
	switch s {
	case subsetA:
		if c < 32 {
			return int(c) + 64
		}
		if c <= 95 {
			return int(c) - 32
		}
	case subsetB:
		if c >= 32 && c <= 127 {
			return int(c) - 32
		}
	}
	return -1
}

// startValue returns the start code value for set s.
func startValue(s subset) int {
	switch s {
	case subsetA:
		return codeStartA
	case subsetB:
		return codeStartB
	default:
		return codeStartC
	}
}

// switchValue returns the code value that switches to set s. The Code A,
// Code B and Code C values are the same in every set they appear in.
func switchValue(s subset) int {
	switch s {
	case subsetA:
		return codeCodeA
	case subsetB:
		return codeCodeB
	default:
		return codeCodeC
	}
}

// symbolName returns the symbol for code value v as interpreted in set s:
// either the literal data character (a digit pair in set C) or one of the
// Sym* special names.
func symbolName(v int, s subset) string {
	switch v {
	case codeStartA:
		return SymStartA
	case codeStartB:
		return SymStartB
	case codeStartC:
		return SymStartC
	case codeStop:
		return SymStop
	}

	switch s {
	case subsetA:
		switch v {
		case codeFNC3:
			return SymFNC3
		case codeFNC2:
			return SymFNC2
		case codeShift:
			return SymShiftB
		case codeCodeC:
			return SymCodeC
		case codeCodeB:
			return SymCodeB
		case codeFNC4A:
			return SymFNC4
		case codeFNC1:
			return SymFNC1
		}
		if v < 64 {
			return string(rune(v + 32))
		}
		return string(rune(v - 64))
	case subsetB:
		switch v {
		case codeFNC3:
			return SymFNC3
		case codeFNC2:
			return SymFNC2
		case codeShift:
			return SymShiftA
		case codeCodeC:
			return SymCodeC
		case codeFNC4B:
			return SymFNC4
		case codeCodeA:
			return SymCodeA
		case codeFNC1:
			return SymFNC1
		}
		return string(rune(v + 32))
	default:
		switch v {
		case codeCodeB:
			return SymCodeB
		case codeCodeA:
			return SymCodeA
		case codeFNC1:
			return SymFNC1
		}
		return fmt.Sprintf("%02d", v)
	}
}
