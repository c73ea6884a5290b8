package curly

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePlaceholder(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		inner string
		want  placeholder
	}{
		"implicit":        {"", placeholder{kind: refImplicit}},
		"index":           {"0", placeholder{kind: refIndex, index: 0}},
		"multi digit":     {"12", placeholder{kind: refIndex, index: 12}},
		"name":            {"name", placeholder{kind: refName, name: "name"}},
		"underscore name": {"_tag", placeholder{kind: refName, name: "_tag"}},
		"name digits":     {"arg2", placeholder{kind: refName, name: "arg2"}},
	}

	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			got, err := parsePlaceholder(tt.inner)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParsePlaceholder_WithSpec(t *testing.T) {
	t.Parallel()

	got, err := parsePlaceholder("name:^10")
	require.NoError(t, err)
	assert.Equal(t, refName, got.kind)
	assert.Equal(t, "name", got.name)
	require.NotNil(t, got.spec)
	assert.Equal(t, AlignCenter, got.spec.Align)
	assert.Equal(t, 10, got.spec.Width)

	got, err = parsePlaceholder("0:x")
	require.NoError(t, err)
	assert.Equal(t, refIndex, got.kind)
	require.NotNil(t, got.spec)
	assert.Equal(t, BaseHex, got.spec.Base)

	got, err = parsePlaceholder(":<5")
	require.NoError(t, err)
	assert.Equal(t, refImplicit, got.kind)
	require.NotNil(t, got.spec)
	assert.Equal(t, AlignLeft, got.spec.Align)

	// No ':' means no spec at all.
	got, err = parsePlaceholder("2")
	require.NoError(t, err)
	assert.Nil(t, got.spec)
}

func TestParsePlaceholder_Invalid(t *testing.T) {
	t.Parallel()

	for name, inner := range map[string]string{
		"digits then letters": "1a",
		"dash in name":        "na-me",
		"leading space":       " name",
		"dotted":              "a.b",
	} {
		inner := inner
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			_, err := parsePlaceholder(inner)
			assert.ErrorIs(t, err, ErrInvalidPlaceholder, "inner %q", inner)
		})
	}

	// A bad spec surfaces as ErrInvalidSpec, not ErrInvalidPlaceholder.
	_, err := parsePlaceholder("0:q")
	assert.ErrorIs(t, err, ErrInvalidSpec)
}
