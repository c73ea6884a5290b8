package curly

import (
	"fmt"
	"strconv"
	"strings"
)

// refKind distinguishes how a placeholder selects its argument.
type refKind int

const (
	refImplicit refKind = iota // {} - next positional argument
	refIndex                   // {0} - explicit position
	refName                    // {host} - named argument
)

// placeholder is the parsed content between matched '{' and '}'.
type placeholder struct {
	kind  refKind
	index int
	name  string
	spec  *Spec
}

// parsePlaceholder parses the inner text of a placeholder. The reference
// part ends at the first ':'; everything after it is delegated to
// ParseSpec. An empty reference is implicit, a digit run is an explicit
// index, and an identifier is a name. Anything else is an
// ErrInvalidPlaceholder.
func parsePlaceholder(inner string) (placeholder, error) {
	var ph placeholder

	ref := inner
	if i := strings.IndexByte(inner, ':'); i >= 0 {
		ref = inner[:i]
		spec, err := ParseSpec(inner[i+1:])
		if err != nil {
			return ph, err
		}
		ph.spec = &spec
	}

	switch {
	case ref == "":
		ph.kind = refImplicit
	case ref[0] >= '0' && ref[0] <= '9':
		n, err := strconv.Atoi(ref)
		if err != nil {
			return ph, fmt.Errorf("%w: bad index %q", ErrInvalidPlaceholder, ref)
		}
		ph.kind = refIndex
		ph.index = n
	case isIdentifier(ref):
		ph.kind = refName
		ph.name = ref
	default:
		return ph, fmt.Errorf("%w: bad reference %q", ErrInvalidPlaceholder, ref)
	}
	return ph, nil
}

// isIdentifier reports whether s is a letter or underscore followed by
// word characters.
func isIdentifier(s string) bool {
	for i, r := range s {
		switch {
		case r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r == '_':
		case r >= '0' && r <= '9':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return len(s) > 0
}
