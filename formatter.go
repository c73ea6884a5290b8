// Package curly substitutes positional and named arguments into
// println!-style {} placeholders, honoring per-placeholder fill,
// alignment, width, precision, sign, and numeric base directives.
package curly

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"
)

// Formatter renders one template against one argument table. Each
// instance owns its own implicit cursor, so concurrent calls are safe
// as long as each uses its own Formatter.
type Formatter struct {
	template string
	args     Arguments
	defaults Arguments
	logger   *slog.Logger

	cursor   int
	rendered int
	used     map[int]struct{}
}

// FormatterOption configures a Formatter.
type FormatterOption func(*Formatter)

// WithDefaults adds fallback named arguments, e.g. from config or a
// preset. They are consulted only when a named reference has no match in
// the CLI arguments; they never affect positional indexing or the
// implicit cursor.
func WithDefaults(defaults map[string]string) FormatterOption {
	return func(f *Formatter) {
		for name, value := range defaults {
			arg := ParseArgument(value)
			arg.Name = name
			f.defaults = append(f.defaults, arg)
		}
	}
}

// WithLogger sets a logger for debug tracing.
func WithLogger(logger *slog.Logger) FormatterOption {
	return func(f *Formatter) {
		if logger != nil {
			f.logger = logger
		}
	}
}

// NewFormatter creates a Formatter for a single Generate call.
func NewFormatter(template string, args Arguments, opts ...FormatterOption) *Formatter {
	f := &Formatter{
		template: template,
		args:     args,
		logger:   NewNopLogger(),
		used:     make(map[int]struct{}),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Format parses raw argument tokens and renders template in one call.
func Format(template string, rawArgs []string) (string, error) {
	return NewFormatter(template, ParseArguments(rawArgs)).Generate()
}

// Placeholders returns the number of placeholders rendered by Generate.
func (f *Formatter) Placeholders() int { return f.rendered }

// ArgsUsed returns how many distinct CLI arguments Generate resolved.
func (f *Formatter) ArgsUsed() int { return len(f.used) }

// Generate renders the template. The scan walks runes, never raw bytes,
// so multi-byte characters in literal runs cannot split a brace match.
// '{{' and '}}' emit literal braces; a single '{' opens a placeholder
// closed by the next '}'. Any parse or resolution failure aborts the
// whole call with no output.
func (f *Formatter) Generate() (string, error) {
	var out strings.Builder
	rs := []rune(f.template)

	for i := 0; i < len(rs); i++ {
		switch rs[i] {
		case '{':
			if i+1 < len(rs) && rs[i+1] == '{' {
				out.WriteRune('{')
				i++
				continue
			}
			j := i + 1
			for j < len(rs) && rs[j] != '}' {
				j++
			}
			if j == len(rs) {
				return "", fmt.Errorf("%w: %q", ErrUnterminated, string(rs[i:]))
			}
			inner := string(rs[i+1 : j])
			f.logger.Debug("parsing placeholder "+strconv.Quote(inner),
				LogAttrKeyCategory.Attr(LogCategoryParse))

			ph, err := parsePlaceholder(inner)
			if err != nil {
				return "", err
			}
			arg, err := f.resolve(ph)
			if err != nil {
				return "", err
			}
			text, err := render(arg, ph.spec)
			if err != nil {
				return "", err
			}
			f.logger.Debug("rendered "+strconv.Quote(inner)+" as "+strconv.Quote(text),
				LogAttrKeyCategory.Attr(LogCategoryRender))
			out.WriteString(text)
			f.rendered++
			i = j
		case '}':
			if i+1 < len(rs) && rs[i+1] == '}' {
				i++
			}
			// A lone '}' opens nothing and stays literal.
			out.WriteRune('}')
		default:
			out.WriteRune(rs[i])
		}
	}
	return out.String(), nil
}

// resolve finds the argument a placeholder refers to. Only implicit
// references move the cursor; explicit indexes and names leave it alone.
func (f *Formatter) resolve(ph placeholder) (Argument, error) {
	switch ph.kind {
	case refIndex:
		arg, ok := f.args.Get(ph.index)
		if !ok {
			return Argument{}, fmt.Errorf("%w: index %d requested, but only %d arguments were provided",
				ErrMissingArgument, ph.index, len(f.args))
		}
		f.used[ph.index] = struct{}{}
		return arg, nil
	case refName:
		arg, idx, ok := f.args.GetNamed(ph.name)
		if ok {
			f.used[idx] = struct{}{}
			return arg, nil
		}
		if arg, _, ok = f.defaults.GetNamed(ph.name); ok {
			f.logger.Debug("using default for "+strconv.Quote(ph.name),
				LogAttrKeyCategory.Attr(LogCategoryResolve))
			return arg, nil
		}
		return Argument{}, fmt.Errorf("%w: no argument named %q", ErrMissingArgument, ph.name)
	default:
		arg, ok := f.args.Get(f.cursor)
		if !ok {
			return Argument{}, fmt.Errorf("%w: positional argument %d requested, but only %d arguments were provided",
				ErrMissingArgument, f.cursor, len(f.args))
		}
		f.used[f.cursor] = struct{}{}
		f.cursor++
		return arg, nil
	}
}

// render produces the textual form of a resolved argument. Without a
// spec the raw token value is inserted verbatim. With a spec the typed
// value is rendered: integers in the requested base with an optional
// forced sign, floats to the requested precision, strings truncated to
// the precision. Base and sign directives on non-integer values are an
// error rather than a silent no-op. Width pads with the fill character
// but never truncates.
func render(arg Argument, spec *Spec) (string, error) {
	if spec == nil {
		return arg.Str, nil
	}

	var body string
	switch arg.Kind {
	case KindInt:
		if spec.HasPrecision {
			return "", fmt.Errorf("%w: precision is not allowed for integer value %q", ErrInvalidSpec, arg.Str)
		}
		body = renderInt(arg.Int, spec)
	case KindFloat:
		if spec.Base != BaseDecimal || spec.AltForm {
			return "", fmt.Errorf("%w: base conversion is not allowed for float value %q", ErrInvalidSpec, arg.Str)
		}
		prec := -1
		if spec.HasPrecision {
			prec = spec.Precision
		}
		body = strconv.FormatFloat(arg.Float, 'f', prec, 64)
		if spec.ForceSign && arg.Float >= 0 {
			body = "+" + body
		}
	default:
		if spec.Base != BaseDecimal || spec.ForceSign || spec.AltForm {
			return "", fmt.Errorf("%w: numeric directives are not allowed for string value %q", ErrInvalidSpec, arg.Str)
		}
		body = arg.Str
		if spec.HasPrecision {
			body = runewidth.Truncate(body, spec.Precision, "")
		}
	}

	if !spec.HasWidth {
		return body, nil
	}
	return pad(body, spec, arg.Kind), nil
}

// renderInt renders the magnitude in the requested base and reattaches
// the sign, so hex and octal output reads -a rather than two's
// complement. '+' forces a plus on non-negative values only. The
// magnitude is computed in uint64 so math.MinInt64 stays negatable.
func renderInt(v int64, spec *Spec) string {
	neg := v < 0
	mag := uint64(v)
	if neg {
		mag = -mag
	}

	var digits string
	switch spec.Base {
	case BaseHex:
		digits = strconv.FormatUint(mag, 16)
	case BaseHexUpper:
		digits = strings.ToUpper(strconv.FormatUint(mag, 16))
	case BaseOctal:
		digits = strconv.FormatUint(mag, 8)
	case BaseBinary:
		digits = strconv.FormatUint(mag, 2)
	default:
		digits = strconv.FormatUint(mag, 10)
	}

	sign := ""
	if neg {
		sign = "-"
	} else if spec.ForceSign {
		sign = "+"
	}

	prefix := ""
	if spec.AltForm {
		prefix = spec.Base.prefix()
	}
	return sign + prefix + digits
}

// pad aligns body within the spec width, measured in terminal display
// columns. Text wider than the width is left untouched.
func pad(body string, spec *Spec, kind Kind) string {
	gap := spec.Width - runewidth.StringWidth(body)
	if gap <= 0 {
		return body
	}

	align := spec.Align
	if align == AlignDefault {
		if kind == KindString {
			align = AlignLeft
		} else {
			align = AlignRight
		}
	}

	fill := string(spec.Fill)
	switch align {
	case AlignLeft:
		return body + strings.Repeat(fill, gap)
	case AlignCenter:
		left := gap / 2
		return strings.Repeat(fill, left) + body + strings.Repeat(fill, gap-left)
	default:
		return strings.Repeat(fill, gap) + body
	}
}
