// Package format turns raw example text into the text handed to the pager.
package format

import (
	"github.com/dkoosis/eg/internal/colorize"
	"github.com/dkoosis/eg/internal/config"
	"github.com/dkoosis/eg/internal/substitute"
)

// Colorizer highlights text.
type Colorizer interface {
	Colorize(text string) string
}

// squeezeSubs run in this order: the blank line between a description and
// its indented example, then doubled blank lines between examples, then the
// tripled blank lines between sections.
var squeezeSubs = []substitute.Substitution{
	substitute.New("\n\n    ", "\n    ", true),
	substitute.New("\n\n\n", "\n\n", true),
	substitute.New("\n\n\n\n", "\n\n\n", true),
}

// Pipeline colorizes, squeezes, and substitutes, always in that order.
// Each step is skipped when disabled.
type Pipeline struct {
	// Colorizer is nil when color is off.
	Colorizer Colorizer
	Squeeze   bool
	Subs      []substitute.Substitution
}

// ForConfig builds the Pipeline described by cfg.
func ForConfig(cfg config.Config) Pipeline {
	p := Pipeline{Squeeze: cfg.Squeeze, Subs: cfg.Subs}
	if cfg.UseColor {
		p.Colorizer = colorize.New(cfg.Color)
	}
	return p
}

// Format runs the pipeline over raw.
func (p Pipeline) Format(raw string) string {
	result := raw
	if p.Colorizer != nil {
		result = p.Colorizer.Colorize(result)
	}
	if p.Squeeze {
		result = Squeeze(result)
	}
	if len(p.Subs) > 0 {
		result = substitute.ApplyAll(result, p.Subs)
	}
	return result
}

// Format formats raw with the given settings.
func Format(raw string, useColor bool, colors config.ColorConfig, squeeze bool, subs []substitute.Substitution) string {
	return ForConfig(config.Config{
		Color:    colors,
		UseColor: useColor,
		Squeeze:  squeeze,
		Subs:     subs,
	}).Format(raw)
}

// Squeeze removes the blank line between a description and its example and
// collapses extra blank lines, keeping sections further apart than examples.
func Squeeze(text string) string {
	return substitute.ApplyAll(text, squeezeSubs)
}
