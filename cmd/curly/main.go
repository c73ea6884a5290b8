package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime/pprof"
	"text/tabwriter"

	"github.com/curlyfmt/curly"
	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// Renderer is the interface for render execution.
type Renderer interface {
	Run(template string, rawArgs []string) (curly.RenderResult, error)
}

type options struct {
	renderer           Renderer      // nil = use default
	commandIDGenerator func() string // nil = use curly.GenerateCommandID
}

// Option configures newRootCmd.
type Option func(*options)

// WithRenderer sets the Renderer instance for testing.
func WithRenderer(r Renderer) Option {
	return func(o *options) {
		o.renderer = r
	}
}

// WithCommandIDGenerator sets the command ID generator for testing.
func WithCommandIDGenerator(gen func() string) Option {
	return func(o *options) {
		o.commandIDGenerator = gen
	}
}

func resolveDirectory(dirFlag, baseCwd string) (string, error) {
	if dirFlag == "" {
		return baseCwd, nil
	}

	resolved := dirFlag
	if !filepath.IsAbs(dirFlag) {
		resolved = filepath.Join(baseCwd, dirFlag)
	}

	resolved, err := filepath.Abs(resolved)
	if err != nil {
		return "", fmt.Errorf("failed to resolve path: %w", err)
	}

	info, err := os.Stat(resolved)
	if err != nil {
		return "", fmt.Errorf("cannot change to '%s': %w", dirFlag, err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("cannot change to '%s': not a directory", dirFlag)
	}

	return resolved, nil
}

// createLogger creates a logger based on verbosity level.
// Returns a nop logger for verbosity < 2, or a CLI handler logger for -vv.
func createLogger(w io.Writer, verbosity int, idGen func() string) *slog.Logger {
	if verbosity < 2 {
		return curly.NewNopLogger()
	}
	handler := curly.NewCLIHandler(w, curly.VerbosityToLevel(verbosity))
	handlerWithID := handler.WithAttrs([]slog.Attr{
		curly.LogAttrKeyCmdID.Attr(idGen()),
	})
	return slog.New(handlerWithID)
}

func newRootCmd(opts ...Option) *cobra.Command {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	idGen := o.commandIDGenerator
	if idGen == nil {
		idGen = curly.GenerateCommandID
	}

	var (
		cfg        *curly.Config
		cwd        string
		dirFlag    string
		colorFlag  string
		presetFlag string
		noNewline  bool
	)

	rootCmd := &cobra.Command{
		Use:   "curly [flags] <template> [arg | name=value]...",
		Short: "Substitute arguments into println!-style templates",
		Long: `Substitute positional and named arguments into {} placeholders.

Placeholders resolve arguments Rust println! style: {} takes the next
positional argument, {0} an explicit position, {name} a name=value
argument. A specifier after ':' controls fill, alignment, width,
precision, sign, and numeric base:

  curly "{} {}!" Hello world
  curly "{1} {0}" world Hello
  curly "{greeting}, {name}!" greeting=Hi name=Tony
  curly "{:>8}" 42
  curly "{:+#x}" 255

Named defaults can come from .curly/settings.toml or a stored preset:

  curly -p greet name=Tony`,
		Version:       version,
		Args:          cobra.ArbitraryArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			originalCwd, err := os.Getwd()
			if err != nil {
				return fmt.Errorf("failed to get current directory: %w", err)
			}

			cwd, err = resolveDirectory(dirFlag, originalCwd)
			if err != nil {
				return err
			}

			result, err := curly.LoadConfig(cwd)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			for _, w := range result.Warnings {
				fmt.Fprintln(cmd.ErrOrStderr(), "warning:", w)
			}
			cfg = result.Config

			// CLI --color wins over the config file
			if colorFlag == "" {
				colorFlag = cfg.Color
			}
			curly.SetColorMode(curly.ColorMode(colorFlag))
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			verbosity, _ := cmd.Flags().GetCount("verbose")
			logger := createLogger(cmd.ErrOrStderr(), verbosity, idGen)

			var (
				template string
				rest     = args
				preset   *curly.Preset
			)
			if presetFlag != "" {
				presets, err := curly.LoadPresets(cwd, cfg.Presets)
				if err != nil {
					return err
				}
				p, ok := curly.FindPreset(presets, presetFlag)
				if !ok {
					return fmt.Errorf("unknown preset %q", presetFlag)
				}
				preset = &p
				template = p.Template
			} else {
				if len(args) == 0 {
					return cmd.Help()
				}
				template = args[0]
				rest = args[1:]
			}

			renderer := o.renderer
			if renderer == nil {
				rc := curly.NewRenderCommand(cfg)
				rc.Logger = logger
				rc.Preset = preset
				renderer = rc
			}

			result, err := renderer.Run(template, rest)
			if err != nil {
				return err
			}

			out := result.Format(curly.FormatOptions{
				Verbose:      verbosity >= 1,
				ColorEnabled: curly.IsColorEnabled(),
				NoNewline:    noNewline,
			})
			if out.Stderr != "" {
				fmt.Fprint(cmd.ErrOrStderr(), out.Stderr)
			}
			fmt.Fprint(cmd.OutOrStdout(), out.Stdout)
			return nil
		},
	}
	rootCmd.SetVersionTemplate("{{.Version}}\n")

	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&dirFlag, "directory", "d", "", "Base directory for config and presets")
	pf.StringVar(&colorFlag, "color", "", "Color output: auto, always, never")
	pf.CountP("verbose", "v", "Verbose output (-v summary, -vv debug trace)")
	rootCmd.Flags().StringVarP(&presetFlag, "preset", "p", "", "Render a stored template preset")
	rootCmd.Flags().BoolVarP(&noNewline, "no-newline", "n", false, "Do not append a trailing newline")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "List discovered template presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			verbosity, _ := cmd.Flags().GetCount("verbose")
			presets, err := curly.LoadPresets(cwd, cfg.Presets)
			if err != nil {
				return err
			}
			out := curly.PresetsResult{Presets: presets}.Format(curly.FormatOptions{
				Verbose:      verbosity >= 1,
				ColorEnabled: curly.IsColorEnabled(),
			})
			fmt.Fprint(cmd.OutOrStdout(), out.Stdout)
			return nil
		},
	}
	rootCmd.AddCommand(presetsCmd)

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 1, ' ', 0)
			fmt.Fprintf(w, "version:\t%s\n", version)
			fmt.Fprintf(w, "commit:\t%s\n", commit)
			fmt.Fprintf(w, "date:\t%s\n", date)
			w.Flush()
		},
	}
	rootCmd.AddCommand(versionCmd)

	return rootCmd
}

var rootCmd = newRootCmd()

func main() {
	os.Exit(run())
}

func run() int {
	// CPU profiling support via environment variable
	if profFile := os.Getenv("CURLY_CPUPROFILE"); profFile != "" {
		f, err := os.Create(profFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "curly: failed to create CPU profile: %v\n", err)
			return 1
		}
		defer func() { _ = f.Close() }()
		if err := pprof.StartCPUProfile(f); err != nil {
			fmt.Fprintf(os.Stderr, "curly: failed to start CPU profile: %v\n", err)
			return 1
		}
		defer pprof.StopCPUProfile()
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(rootCmd.ErrOrStderr(), "curly:", err)
		return 1
	}
	return 0
}
