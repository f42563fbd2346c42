package config

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/dkoosis/eg/internal/files"
)

// Resolution sources, reported in debug output.
const (
	SourceCLI     = "cli"
	SourceEgrc    = "egrc"
	SourceDefault = "default"
)

// Resolve merges cli, the egrc, and the built-in defaults into a Config.
//
// The egrc is cli.ConfigFile when set, else DefaultEgrcPath. A missing egrc
// is not an error; an egrc that fails to parse is.
//
// Priority per scalar field: cli > egrc > default. Colors come from the egrc
// merged over DefaultColorConfig. Subs come from the egrc when it lists any,
// else DefaultSubs. CustomDir has no default.
//
// cli.Debug raises logger to debug level so the resolution is reported.
func Resolve(store *files.Store, cli CliFlags, logger *log.Logger) (Config, error) {
	if cli.Debug {
		logger.SetLevel(log.DebugLevel)
	}

	egrcPath := cli.ConfigFile
	if egrcPath == "" {
		egrcPath = DefaultEgrcPath()
	}

	egrc := &FileConfig{Color: EmptyColorConfig()}
	if store.Exists(egrcPath) {
		logger.Debug("loading egrc", "path", egrcPath)
		loaded, err := LoadFileConfig(store, egrcPath)
		if err != nil {
			return Config{}, fmt.Errorf("loading config: %w", err)
		}
		egrc = loaded
	} else {
		logger.Debug("no egrc found, using defaults", "path", egrcPath)
	}

	resolved := Config{
		ExamplesDir: *GetPriority(cli.ExamplesDir, egrc.ExamplesDir, Value(DefaultExamplesDir())),
		Color:       MergeColorConfigs(egrc.Color, DefaultColorConfig()),
		UseColor:    *GetPriority(cli.UseColor, egrc.UseColor, Value(DefaultUseColor)),
		PagerCmd:    *GetPriority(cli.PagerCmd, egrc.PagerCmd, Value(DefaultPagerCmd)),
		Squeeze:     *GetPriority(cli.Squeeze, egrc.Squeeze, Value(DefaultSqueeze)),
		Subs:        DefaultSubs(),
	}
	if customDir := GetPriority(cli.CustomDir, egrc.CustomDir); customDir != nil {
		resolved.CustomDir = *customDir
	}
	if len(egrc.Subs) > 0 {
		resolved.Subs = egrc.Subs
	}

	logger.Debug("resolved config",
		"examples_dir", resolved.ExamplesDir, "examples_dir_source", sourceOf(cli.ExamplesDir, egrc.ExamplesDir),
		"custom_dir", resolved.CustomDir, "custom_dir_source", sourceOf(cli.CustomDir, egrc.CustomDir),
		"use_color", resolved.UseColor, "use_color_source", sourceOf(cli.UseColor, egrc.UseColor),
		"pager_cmd", resolved.PagerCmd, "pager_cmd_source", sourceOf(cli.PagerCmd, egrc.PagerCmd),
		"squeeze", resolved.Squeeze, "squeeze_source", sourceOf(cli.Squeeze, egrc.Squeeze),
		"subs", len(resolved.Subs),
	)

	return resolved, nil
}

func sourceOf[T any](cli, egrc *T) string {
	switch {
	case cli != nil:
		return SourceCLI
	case egrc != nil:
		return SourceEgrc
	default:
		return SourceDefault
	}
}
