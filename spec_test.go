package curly

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSpec(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		raw  string
		want Spec
	}{
		"empty":           {"", Spec{Fill: ' '}},
		"align left":      {"<", Spec{Fill: ' ', Align: AlignLeft}},
		"align right":     {">", Spec{Fill: ' ', Align: AlignRight}},
		"align center":    {"^", Spec{Fill: ' ', Align: AlignCenter}},
		"fill and align":  {"*^", Spec{Fill: '*', Align: AlignCenter}},
		"digit fill":      {"0>", Spec{Fill: '0', Align: AlignRight}},
		"sign":            {"+", Spec{Fill: ' ', ForceSign: true}},
		"alt form hex":    {"#x", Spec{Fill: ' ', AltForm: true, Base: BaseHex}},
		"width":           {"10", Spec{Fill: ' ', Width: 10, HasWidth: true}},
		"precision":       {".2", Spec{Fill: ' ', Precision: 2, HasPrecision: true}},
		"width precision": {"10.2", Spec{Fill: ' ', Width: 10, HasWidth: true, Precision: 2, HasPrecision: true}},
		"upper hex":       {"X", Spec{Fill: ' ', Base: BaseHexUpper}},
		"octal":           {"o", Spec{Fill: ' ', Base: BaseOctal}},
		"binary":          {"b", Spec{Fill: ' ', Base: BaseBinary}},
		"explicit dec":    {"d", Spec{Fill: ' ', Base: BaseDecimal}},
		"everything": {">+#10.2x", Spec{
			Fill: ' ', Align: AlignRight, ForceSign: true, AltForm: true,
			Width: 10, HasWidth: true, Precision: 2, HasPrecision: true, Base: BaseHex,
		}},
		"fill sign width": {"-<8", Spec{Fill: '-', Align: AlignLeft, Width: 8, HasWidth: true}},
	}

	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			got, err := ParseSpec(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseSpec_Invalid(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"zero width":           "0",
		"zero width aligned":   ">0",
		"missing precision":    ".",
		"trailing junk":        "q",
		"junk after width":     "5z",
		"junk after base":      "x5",
		"sign after width":     "5+",
		"double align":         "<<^",
		"word":                 "abc",
		"zero width with fill": "*>0",
	}

	for name, raw := range tests {
		raw := raw
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			_, err := ParseSpec(raw)
			assert.ErrorIs(t, err, ErrInvalidSpec, "spec %q", raw)
		})
	}
}
