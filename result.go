package curly

import (
	"fmt"
	"log/slog"
	"strings"
)

// FormatOptions configures output formatting.
type FormatOptions struct {
	Verbose      bool
	ColorEnabled bool // Enable color output (--color=auto/always)
	NoNewline    bool // Suppress the trailing newline on stdout
}

// FormatResult holds formatted output strings.
type FormatResult struct {
	Stdout string
	Stderr string
}

// RenderResult holds the outcome of one template rendering.
type RenderResult struct {
	Output       string
	Placeholders int
	ArgsUsed     int
	ArgsGiven    int
	Preset       string
}

// Format formats the RenderResult for display. The rendered string goes
// to stdout; the verbose summary goes to stderr so piped output stays
// clean.
func (r RenderResult) Format(opts FormatOptions) FormatResult {
	var stdout, stderr strings.Builder

	stdout.WriteString(r.Output)
	if !opts.NoNewline {
		stdout.WriteString("\n")
	}

	if opts.Verbose {
		label := func(s string) string {
			if opts.ColorEnabled {
				return colorLabel(s)
			}
			return s
		}
		if r.Preset != "" {
			stderr.WriteString(fmt.Sprintf("%s %s\n", label("preset:"), r.Preset))
		}
		stderr.WriteString(fmt.Sprintf("%s %d\n", label("placeholders:"), r.Placeholders))
		stderr.WriteString(fmt.Sprintf("%s %d of %d\n", label("arguments used:"), r.ArgsUsed, r.ArgsGiven))
	}

	return FormatResult{Stdout: stdout.String(), Stderr: stderr.String()}
}

// RenderCommand renders templates, layering named-argument defaults
// from config and an optional preset under the CLI arguments.
type RenderCommand struct {
	Config *Config
	Logger *slog.Logger
	Preset *Preset // nil when rendering a bare template
}

// NewRenderCommand creates a RenderCommand with the given config.
func NewRenderCommand(cfg *Config) *RenderCommand {
	return &RenderCommand{
		Config: cfg,
		Logger: NewNopLogger(),
	}
}

// Run renders template with the raw CLI argument tokens. Name
// resolution falls back to preset args, then config args; positional
// references see only the CLI arguments.
func (c *RenderCommand) Run(template string, rawArgs []string) (RenderResult, error) {
	result := RenderResult{ArgsGiven: len(rawArgs)}

	defaults := make(map[string]string)
	if c.Config != nil {
		for name, value := range c.Config.Args {
			defaults[name] = value
		}
	}
	if c.Preset != nil {
		result.Preset = c.Preset.Name
		for name, value := range c.Preset.Args {
			defaults[name] = value
		}
	}

	logger := c.Logger
	if logger == nil {
		logger = NewNopLogger()
	}

	f := NewFormatter(template, ParseArguments(rawArgs),
		WithDefaults(defaults), WithLogger(logger))

	output, err := f.Generate()
	if err != nil {
		return result, err
	}

	result.Output = output
	result.Placeholders = f.Placeholders()
	result.ArgsUsed = f.ArgsUsed()
	return result, nil
}
