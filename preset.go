package curly

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/BurntSushi/toml"
	"github.com/bmatcuk/doublestar/v4"
)

// Preset is a stored, named template. Preset files are TOML documents
// under the config dir:
//
//	name = "greet"
//	template = "Hello, {name}!"
//	[args]
//	name = "world"
//
// Preset args are fallback named arguments; CLI arguments win.
type Preset struct {
	Name     string            `toml:"name"`
	Template string            `toml:"template"`
	Args     map[string]string `toml:"args"`

	// Path is the file the preset was loaded from, for diagnostics.
	Path string `toml:"-"`
}

// LoadPresets discovers preset files under dir/.curly matching the
// given doublestar patterns and decodes them, sorted by name. A preset
// without an explicit name takes its file's base name. Duplicate names
// across files are an error.
func LoadPresets(dir string, patterns []string) ([]Preset, error) {
	base := filepath.Join(dir, configDir)
	if _, err := os.Stat(base); os.IsNotExist(err) {
		return nil, nil
	}

	seen := make(map[string]string)
	var presets []Preset

	for _, pattern := range patterns {
		matches, err := doublestar.Glob(os.DirFS(base), pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid preset pattern %s: %w", pattern, err)
		}
		for _, match := range matches {
			path := filepath.Join(base, match)
			var p Preset
			if _, err := toml.DecodeFile(path, &p); err != nil {
				return nil, fmt.Errorf("failed to decode preset %s: %w", path, err)
			}
			if p.Name == "" {
				name := filepath.Base(match)
				p.Name = name[:len(name)-len(filepath.Ext(name))]
			}
			if p.Template == "" {
				return nil, fmt.Errorf("preset %s has no template", path)
			}
			if prev, dup := seen[p.Name]; dup {
				return nil, fmt.Errorf("duplicate preset %q in %s and %s", p.Name, prev, path)
			}
			seen[p.Name] = path
			p.Path = path
			presets = append(presets, p)
		}
	}

	sort.Slice(presets, func(i, j int) bool { return presets[i].Name < presets[j].Name })
	return presets, nil
}

// FindPreset returns the preset with the given name.
func FindPreset(presets []Preset, name string) (Preset, bool) {
	for _, p := range presets {
		if p.Name == name {
			return p, true
		}
	}
	return Preset{}, false
}

// PresetsResult holds discovered presets for listing.
type PresetsResult struct {
	Presets []Preset
}

// Format formats the PresetsResult for display.
func (r PresetsResult) Format(opts FormatOptions) FormatResult {
	if len(r.Presets) == 0 {
		return FormatResult{Stdout: "no presets found\n"}
	}

	var buf bytes.Buffer
	iw := NewIndentWriter(&buf, "  ")
	for _, p := range r.Presets {
		name, template := p.Name, p.Template
		if opts.ColorEnabled {
			name = colorPreset(name)
			template = colorTemplate(template)
		}
		iw.Writeln(name)
		iw.Indent()
		iw.Writef("template: %s", template)
		if opts.Verbose {
			iw.Writef("file: %s", p.Path)
			if len(p.Args) > 0 {
				iw.Writef("defaults: %d", len(p.Args))
			}
		}
		iw.Dedent()
	}
	return FormatResult{Stdout: buf.String()}
}
