package curly

import (
	"fmt"
	"strconv"
)

// Alignment controls padded text alignment.
type Alignment int

const (
	// AlignDefault means no alignment was written in the spec. Strings
	// align left and numbers align right when a width applies.
	AlignDefault Alignment = iota
	AlignLeft
	AlignCenter
	AlignRight
)

// Base selects the rendering base for integer values.
type Base int

const (
	BaseDecimal Base = iota
	BaseHex
	BaseHexUpper
	BaseOctal
	BaseBinary
)

// prefix returns the alternate-form prefix for the '#' flag.
func (b Base) prefix() string {
	switch b {
	case BaseHex:
		return "0x"
	case BaseHexUpper:
		return "0X"
	case BaseOctal:
		return "0o"
	case BaseBinary:
		return "0b"
	default:
		return ""
	}
}

// Spec holds the parsed directives between ':' and the closing '}' of a
// placeholder:
//
//	[[fill]align][sign]['#'][width]['.' precision][base]
//
// where align is one of '<', '>', '^', fill is any single character
// immediately preceding an alignment character, sign is '+', width and
// precision are decimal digit runs, and base is a trailing 'x', 'X',
// 'o', 'b', or 'd'.
type Spec struct {
	Fill         rune
	Align        Alignment
	ForceSign    bool
	AltForm      bool
	Base         Base
	Width        int
	HasWidth     bool
	Precision    int
	HasPrecision bool
}

// ParseSpec parses the text after ':' in a placeholder. The scan is a
// single left-to-right pass; unconsumed trailing characters are an
// ErrInvalidSpec. A width of zero is rejected.
func ParseSpec(raw string) (Spec, error) {
	spec := Spec{Fill: ' '}
	rs := []rune(raw)
	i := 0

	isAlign := func(r rune) bool { return r == '<' || r == '>' || r == '^' }

	if len(rs) >= 2 && isAlign(rs[1]) {
		spec.Fill = rs[0]
		spec.Align = alignFor(rs[1])
		i = 2
	} else if len(rs) >= 1 && isAlign(rs[0]) {
		spec.Align = alignFor(rs[0])
		i = 1
	}

	if i < len(rs) && rs[i] == '+' {
		spec.ForceSign = true
		i++
	}

	if i < len(rs) && rs[i] == '#' {
		spec.AltForm = true
		i++
	}

	digits := func() (int, bool) {
		start := i
		for i < len(rs) && rs[i] >= '0' && rs[i] <= '9' {
			i++
		}
		if i == start {
			return 0, false
		}
		n, _ := strconv.Atoi(string(rs[start:i]))
		return n, true
	}

	if n, ok := digits(); ok {
		if n == 0 {
			return spec, fmt.Errorf("%w: zero width in %q", ErrInvalidSpec, raw)
		}
		spec.Width = n
		spec.HasWidth = true
	}

	if i < len(rs) && rs[i] == '.' {
		i++
		n, ok := digits()
		if !ok {
			return spec, fmt.Errorf("%w: missing precision digits in %q", ErrInvalidSpec, raw)
		}
		spec.Precision = n
		spec.HasPrecision = true
	}

	if i < len(rs) {
		switch rs[i] {
		case 'd':
			spec.Base = BaseDecimal
			i++
		case 'x':
			spec.Base = BaseHex
			i++
		case 'X':
			spec.Base = BaseHexUpper
			i++
		case 'o':
			spec.Base = BaseOctal
			i++
		case 'b':
			spec.Base = BaseBinary
			i++
		}
	}

	if i != len(rs) {
		return spec, fmt.Errorf("%w: unexpected %q in %q", ErrInvalidSpec, string(rs[i:]), raw)
	}
	return spec, nil
}

func alignFor(r rune) Alignment {
	switch r {
	case '<':
		return AlignLeft
	case '^':
		return AlignCenter
	default:
		return AlignRight
	}
}
