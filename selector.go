package code128go

import (
	"fmt"
	"strings"
)

// expandDirective turns the caller-supplied charset into a per-symbol
// directive: one token per emitted data symbol, where 'A' and 'B' consume one
// input byte and 'C' consumes two. A single-letter charset is repeated over
// the whole input; an empty charset selects sets automatically.
func expandDirective(data, charset string) (string, error) {
	switch {
	case charset == "":
		return chooseDirective(data), nil
	case len(charset) == 1:
		switch charset {
		case "A", "B":
			return strings.Repeat(charset, len(data)), nil
		case "C":
			if len(data)%2 != 0 {
				return "", fmt.Errorf("%w: code set C needs an even number of bytes, got %d", ErrInvalidDirective, len(data))
			}
			return strings.Repeat(charset, len(data)/2), nil
		}
		return "", fmt.Errorf("%w: unknown code set %q", ErrInvalidDirective, charset)
	}

	consumed := 0
	for i := 0; i < len(charset); i++ {
		switch charset[i] {
		case 'A', 'B':
			consumed++
		case 'C':
			consumed += 2
		default:
			return "", fmt.Errorf("%w: unknown code set %q", ErrInvalidDirective, charset[i:i+1])
		}
	}
	if consumed != len(data) {
		return "", fmt.Errorf("%w: directive covers %d bytes, input has %d", ErrInvalidDirective, consumed, len(data))
	}
	return charset, nil
}

// digitRun returns the number of consecutive ASCII digits starting at i.
func digitRun(data string, i int) int {
	n := 0
	for i+n < len(data) && data[i+n] >= '0' && data[i+n] <= '9' {
		n++
	}
	return n
}

// chooseDirective picks a code set for every symbol by looking ahead from
// each position: a run of four or more digits (or two or more closing the
// input) is pair-encoded in set C, control bytes go to set A, everything
// else to set B. Single stray bytes inside an A or B stretch become shifts
// later, in encodeValues.
func chooseDirective(data string) string {
	var b strings.Builder
	b.Grow(len(data))
	for i := 0; i < len(data); {
		if n := digitRun(data, i); n >= 4 || (n >= 2 && i+n == len(data)) {
			pairs := n / 2
			for j := 0; j < pairs; j++ {
				b.WriteByte('C')
			}
			i += pairs * 2
			continue
		}
		if data[i] < 32 {
			b.WriteByte('A')
		} else {
			b.WriteByte('B')
		}
		i++
	}
	return b.String()
}

// encodeValues walks the directive and emits the code value sequence from
// the start code through the last payload symbol. The current set changes on
// a Code switch; a token that deviates to the other of A/B for exactly one
// symbol emits a Shift and leaves the current set alone.
func encodeValues(data, directive string) ([]int, error) {
	values := make([]int, 0, len(directive)+3)
	var cur subset
	pos := 0
	for i := 0; i < len(directive); i++ {
		tok := subset(directive[i])
		switch {
		case i == 0:
			values = append(values, startValue(tok))
			cur = tok
		case tok != cur:
			if tok != subsetC && cur != subsetC &&
				(i+1 == len(directive) || subset(directive[i+1]) == cur) {
				values = append(values, codeShift)
				v, err := dataValue(data, &pos, tok)
				if err != nil {
					return nil, err
				}
				values = append(values, v)
				continue
			}
			values = append(values, switchValue(tok))
			cur = tok
		}
		v, err := dataValue(data, &pos, cur)
		if err != nil {
			return nil, err
		}
		values = append(values, v)
	}
	return values, nil
}

// dataValue consumes one symbol's worth of input at *pos and returns its
// code value in set s.
func dataValue(data string, pos *int, s subset) (int, error) {
	if s == subsetC {
		hi, lo := data[*pos], data[*pos+1]
		if hi < '0' || hi > '9' || lo < '0' || lo > '9' {
			return 0, fmt.Errorf("%w: %q at position %d is not a digit pair", ErrInvalidDirective, data[*pos:*pos+2], *pos)
		}
		*pos += 2
		return int(hi-'0')*10 + int(lo-'0'), nil
	}
	c := data[*pos]
	if c > 127 {
		return 0, fmt.Errorf("%w: byte 0x%02x at position %d", ErrUnencodableByte, c, *pos)
	}
	v := charValue(c, s)
	if v < 0 {
		return 0, fmt.Errorf("%w: byte 0x%02x has no encoding in code set %c", ErrInvalidDirective, c, s)
	}
	*pos++
	return v, nil
}
