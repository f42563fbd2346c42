package config

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/dkoosis/eg/internal/substitute"
)

// ColorConfig holds a start and reset escape sequence for each highlighted
// token category. Every field of a resolved ColorConfig is set.
type ColorConfig struct {
	Pound          string
	PoundReset     string
	Heading        string
	HeadingReset   string
	Code           string
	CodeReset      string
	Backticks      string
	BackticksReset string
	Prompt         string
	PromptReset    string
}

// PartialColorConfig is a ColorConfig whose fields may be unset (nil), as
// read from an egrc.
type PartialColorConfig struct {
	Pound          *string
	PoundReset     *string
	Heading        *string
	HeadingReset   *string
	Code           *string
	CodeReset      *string
	Backticks      *string
	BackticksReset *string
	Prompt         *string
	PromptReset    *string
}

// FileConfig is what an egrc provides. Nil fields were not set in the file.
// Color is never nil; an egrc without a color section yields EmptyColorConfig.
type FileConfig struct {
	ExamplesDir *string
	CustomDir   *string
	Color       PartialColorConfig
	UseColor    *bool
	PagerCmd    *string
	Squeeze     *bool
	Subs        []substitute.Substitution
}

// CliFlags holds the values of command-line flags. Nil means the flag was not given.
type CliFlags struct {
	ConfigFile  string
	ExamplesDir *string
	CustomDir   *string
	UseColor    *bool
	PagerCmd    *string
	Squeeze     *bool
	Debug       bool
}

// Config is the resolved configuration for one invocation. Treat it as read-only.
type Config struct {
	// ExamplesDir holds the bundled examples. Empty disables them.
	ExamplesDir string
	// CustomDir holds user examples. Empty when none is configured.
	CustomDir string
	Color     ColorConfig
	UseColor  bool
	// PagerCmd is a shell-style command line, or FallbackPager.
	PagerCmd string
	Squeeze  bool
	// Subs are applied in order after colorizing and squeezing.
	Subs []substitute.Substitution
}

// FallbackPager selects the built-in pager instead of an external command.
const FallbackPager = "builtin"

// Constants for default values.
const (
	DefaultUseColor = true
	DefaultPagerCmd = "less -R"
	DefaultSqueeze  = false
	DefaultEgrcName = ".egrc"
)

// Default escape sequences.
const (
	DefaultColorPound          = "\x1b[30m\x1b[1m"
	DefaultColorPoundReset     = "\x1b[0m"
	DefaultColorHeading        = "\x1b[38;5;9m\x1b[1m"
	DefaultColorHeadingReset   = "\x1b[0m"
	DefaultColorCode           = "\x1b[32m"
	DefaultColorCodeReset      = "\x1b[39m"
	DefaultColorBackticks      = "\x1b[34m"
	DefaultColorBackticksReset = "\x1b[39m"
	DefaultColorPrompt         = "\x1b[1m"
	DefaultColorPromptReset    = "\x1b[0m"
)

// BundledExamplesDir is set at link time to the installed examples directory.
var BundledExamplesDir string

// DefaultExamplesDir is the examples directory used when neither the command
// line nor the egrc names one: BundledExamplesDir when set, else "examples"
// next to the executable.
var DefaultExamplesDir = sync.OnceValue(func() string {
	if BundledExamplesDir != "" {
		return BundledExamplesDir
	}
	exe, err := os.Executable()
	if err != nil {
		return "examples"
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Join(filepath.Dir(exe), "examples")
})

// DefaultColorConfig returns the built-in colors.
func DefaultColorConfig() ColorConfig {
	return ColorConfig{
		Pound:          DefaultColorPound,
		PoundReset:     DefaultColorPoundReset,
		Heading:        DefaultColorHeading,
		HeadingReset:   DefaultColorHeadingReset,
		Code:           DefaultColorCode,
		CodeReset:      DefaultColorCodeReset,
		Backticks:      DefaultColorBackticks,
		BackticksReset: DefaultColorBackticksReset,
		Prompt:         DefaultColorPrompt,
		PromptReset:    DefaultColorPromptReset,
	}
}

// EmptyColorConfig returns a PartialColorConfig with every field unset.
func EmptyColorConfig() PartialColorConfig {
	return PartialColorConfig{}
}

// DefaultSubs returns the built-in substitution list, which is empty.
func DefaultSubs() []substitute.Substitution {
	return []substitute.Substitution{}
}

// Partial lifts a resolved ColorConfig into a PartialColorConfig with every field set.
func (c ColorConfig) Partial() PartialColorConfig {
	return PartialColorConfig{
		Pound:          Value(c.Pound),
		PoundReset:     Value(c.PoundReset),
		Heading:        Value(c.Heading),
		HeadingReset:   Value(c.HeadingReset),
		Code:           Value(c.Code),
		CodeReset:      Value(c.CodeReset),
		Backticks:      Value(c.Backticks),
		BackticksReset: Value(c.BackticksReset),
		Prompt:         Value(c.Prompt),
		PromptReset:    Value(c.PromptReset),
	}
}

// MergeColorConfigs takes each field from primary when it is set and from
// secondary otherwise. Neither input is modified.
func MergeColorConfigs(primary PartialColorConfig, secondary ColorConfig) ColorConfig {
	return ColorConfig{
		Pound:          *GetPriority(primary.Pound, &secondary.Pound),
		PoundReset:     *GetPriority(primary.PoundReset, &secondary.PoundReset),
		Heading:        *GetPriority(primary.Heading, &secondary.Heading),
		HeadingReset:   *GetPriority(primary.HeadingReset, &secondary.HeadingReset),
		Code:           *GetPriority(primary.Code, &secondary.Code),
		CodeReset:      *GetPriority(primary.CodeReset, &secondary.CodeReset),
		Backticks:      *GetPriority(primary.Backticks, &secondary.Backticks),
		BackticksReset: *GetPriority(primary.BackticksReset, &secondary.BackticksReset),
		Prompt:         *GetPriority(primary.Prompt, &secondary.Prompt),
		PromptReset:    *GetPriority(primary.PromptReset, &secondary.PromptReset),
	}
}

// GetPriority returns the first candidate that is set, or nil if none is.
// A pointer to a zero value (false, "") counts as set.
func GetPriority[T any](candidates ...*T) *T {
	for _, c := range candidates {
		if c != nil {
			return c
		}
	}
	return nil
}

// Value returns a pointer to a copy of v, for filling optional fields.
func Value[T any](v T) *T {
	return &v
}
