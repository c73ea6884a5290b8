package curly

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

const (
	configDir           = ".curly"
	configFileName      = "settings.toml"
	localConfigFileName = "settings.local.toml"

	// defaultPresetPattern locates preset files under the config dir.
	defaultPresetPattern = "presets/**/*.toml"
)

// Config holds settings merged from the project and local files.
type Config struct {
	// Color selects the color mode: auto, always, or never.
	Color string `toml:"color"`
	// Presets are doublestar patterns, relative to the config dir, that
	// locate preset files.
	Presets []string `toml:"presets"`
	// Args are fallback named arguments, consulted when a named
	// reference has no matching CLI argument.
	Args map[string]string `toml:"args"`
}

// DefaultConfig returns the configuration used when no settings files
// exist.
func DefaultConfig() *Config {
	return &Config{
		Color:   string(ColorModeAuto),
		Presets: []string{defaultPresetPattern},
		Args:    map[string]string{},
	}
}

// ConfigResult holds a loaded config plus non-fatal warnings.
type ConfigResult struct {
	Config   *Config
	Warnings []string
}

// LoadConfig loads dir/.curly/settings.toml and then
// settings.local.toml. Local values win per key; the [args] tables merge
// with local entries overriding project ones. Missing files are not an
// error.
func LoadConfig(dir string) (*ConfigResult, error) {
	result := &ConfigResult{Config: DefaultConfig()}

	for _, name := range []string{configFileName, localConfigFileName} {
		path := filepath.Join(dir, configDir, name)
		warnings, err := loadConfigFile(path, result.Config)
		if err != nil {
			return nil, err
		}
		result.Warnings = append(result.Warnings, warnings...)
	}

	switch ColorMode(result.Config.Color) {
	case ColorModeAuto, ColorModeAlways, ColorModeNever:
	default:
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("unknown color mode %q, using %q", result.Config.Color, ColorModeAuto))
		result.Config.Color = string(ColorModeAuto)
	}

	return result, nil
}

// loadConfigFile decodes one settings file over cfg. Keys absent from
// the file leave the current values in place, except [args], which
// merges per entry.
func loadConfigFile(path string, cfg *Config) ([]string, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, nil
	}

	var file Config
	md, err := toml.DecodeFile(path, &file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}

	var warnings []string
	for _, key := range md.Undecoded() {
		warnings = append(warnings, fmt.Sprintf("%s: unknown key %q", filepath.Base(path), key.String()))
	}

	if md.IsDefined("color") {
		cfg.Color = file.Color
	}
	if md.IsDefined("presets") {
		cfg.Presets = file.Presets
	}
	for name, value := range file.Args {
		cfg.Args[name] = value
	}

	return warnings, nil
}
