package curly

import (
	"strconv"
	"strings"
)

// Kind tags the parsed type of an argument value. The numeric
// interpretation is decided once when the argument is parsed and never
// revisited at render time.
type Kind int

const (
	KindString Kind = iota
	KindInt
	KindFloat
)

// String returns the kind name for diagnostics.
func (k Kind) String() string {
	switch k {
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	default:
		return "string"
	}
}

// Argument is a single substitution value, optionally named.
type Argument struct {
	Name  string
	Kind  Kind
	Str   string
	Int   int64
	Float float64
}

// ParseArgument parses a raw command-line token. Tokens of the form
// name=value are split on the first '=' only, so values may legally
// contain '='. Name and value are trimmed of surrounding whitespace.
// The value is parsed as a signed integer, then as a float; anything
// else stays a string. An unparseable number is not an error.
func ParseArgument(raw string) Argument {
	var arg Argument
	value := raw
	if i := strings.IndexByte(raw, '='); i >= 0 {
		arg.Name = strings.TrimSpace(raw[:i])
		value = raw[i+1:]
	}
	arg.Str = strings.TrimSpace(value)

	if n, err := strconv.ParseInt(arg.Str, 10, 64); err == nil {
		arg.Kind = KindInt
		arg.Int = n
	} else if f, err := strconv.ParseFloat(arg.Str, 64); err == nil {
		arg.Kind = KindFloat
		arg.Float = f
	}
	return arg
}

// Arguments is the ordered argument table for one formatting call.
type Arguments []Argument

// ParseArguments builds the table from raw CLI tokens, preserving order.
func ParseArguments(raw []string) Arguments {
	args := make(Arguments, 0, len(raw))
	for _, r := range raw {
		args = append(args, ParseArgument(r))
	}
	return args
}

// Get returns the argument at position i.
func (a Arguments) Get(i int) (Argument, bool) {
	if i < 0 || i >= len(a) {
		return Argument{}, false
	}
	return a[i], true
}

// GetNamed returns the first argument with the given name.
func (a Arguments) GetNamed(name string) (Argument, int, bool) {
	if name == "" {
		return Argument{}, -1, false
	}
	for i, arg := range a {
		if arg.Name == name {
			return arg, i, true
		}
	}
	return Argument{}, -1, false
}
