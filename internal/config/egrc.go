package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/dkoosis/eg/internal/files"
	"github.com/dkoosis/eg/internal/substitute"
)

// egrc keys.
const (
	keyExamplesDir   = "examples_dir"
	keyCustomDir     = "custom_dir"
	keyUseColor      = "use_color"
	keyPagerCmd      = "pager_cmd"
	keySqueeze       = "squeeze"
	keyColor         = "color"
	keySubstitutions = "substitutions"
)

// ErrMalformedSubstitution is wrapped by every SubstitutionError.
var ErrMalformedSubstitution = errors.New("malformed substitution")

// SubstitutionError describes an egrc substitution entry that cannot be used.
type SubstitutionError struct {
	Index  int // position in the substitutions list, -1 if not part of a list
	Reason string
}

func (e *SubstitutionError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("%s: %s", ErrMalformedSubstitution, e.Reason)
	}
	return fmt.Sprintf("%s at index %d: %s", ErrMalformedSubstitution, e.Index, e.Reason)
}

func (e *SubstitutionError) Unwrap() error { return ErrMalformedSubstitution }

// DefaultEgrcPath returns ~/.egrc, or "" when the home directory is unknown.
func DefaultEgrcPath() string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return ""
	}
	return filepath.Join(home, DefaultEgrcName)
}

// LoadFileConfig reads and parses the egrc at path.
func LoadFileConfig(store *files.Store, path string) (*FileConfig, error) {
	raw, err := store.Read(path)
	if err != nil {
		return nil, err
	}
	return ParseFileConfig(path, []byte(raw))
}

// ParseFileConfig decodes egrc data. The format is chosen from the name:
// TOML for ".toml", YAML otherwise.
func ParseFileConfig(name string, data []byte) (*FileConfig, error) {
	values := map[string]any{}
	if strings.EqualFold(filepath.Ext(name), ".toml") {
		if err := toml.Unmarshal(data, &values); err != nil {
			return nil, fmt.Errorf("parsing egrc %s: %w", name, err)
		}
	} else {
		if err := yaml.Unmarshal(data, &values); err != nil {
			return nil, fmt.Errorf("parsing egrc %s: %w", name, err)
		}
		if values == nil {
			values = map[string]any{}
		}
	}
	cfg, err := fileConfigFromMap(values)
	if err != nil {
		return nil, fmt.Errorf("egrc %s: %w", name, err)
	}
	return cfg, nil
}

func fileConfigFromMap(values map[string]any) (*FileConfig, error) {
	cfg := &FileConfig{Color: EmptyColorConfig()}

	if s, ok := stringValue(values, keyExamplesDir); ok {
		cfg.ExamplesDir = Value(ExpandPath(s))
	}
	if s, ok := stringValue(values, keyCustomDir); ok {
		cfg.CustomDir = Value(ExpandPath(s))
	}
	if s, ok := stringValue(values, keyPagerCmd); ok {
		cfg.PagerCmd = Value(s)
	}
	if v, ok := values[keyUseColor]; ok {
		cfg.UseColor = Value(ParseBool(v))
	}
	if v, ok := values[keySqueeze]; ok {
		cfg.Squeeze = Value(ParseBool(v))
	}

	if raw, ok := values[keyColor]; ok {
		colors, ok := raw.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%s must be a table of escape sequences, got %T", keyColor, raw)
		}
		cfg.Color = colorConfigFromMap(colors)
	}

	if raw, ok := values[keySubstitutions]; ok && raw != nil {
		subs, err := ParseSubstitutions(raw)
		if err != nil {
			return nil, err
		}
		cfg.Subs = subs
	}

	return cfg, nil
}

func colorConfigFromMap(values map[string]any) PartialColorConfig {
	get := func(key string) *string {
		s, ok := stringValue(values, key)
		if !ok {
			return nil
		}
		return Value(normalizeColor(s))
	}
	return PartialColorConfig{
		Pound:          get("pound"),
		PoundReset:     get("pound_reset"),
		Heading:        get("heading"),
		HeadingReset:   get("heading_reset"),
		Code:           get("code"),
		CodeReset:      get("code_reset"),
		Backticks:      get("backticks"),
		BackticksReset: get("backticks_reset"),
		Prompt:         get("prompt"),
		PromptReset:    get("prompt_reset"),
	}
}

// ParseSubstitutions parses the egrc substitutions entry, an ordered list of
// entries accepted by ParseSubstitution.
func ParseSubstitutions(raw any) ([]substitute.Substitution, error) {
	list, ok := raw.([]any)
	if !ok {
		return nil, &SubstitutionError{Index: -1, Reason: fmt.Sprintf("%s must be a list, got %T", keySubstitutions, raw)}
	}
	subs := make([]substitute.Substitution, 0, len(list))
	for i, entry := range list {
		sub, err := ParseSubstitution(entry)
		if err != nil {
			var se *SubstitutionError
			if errors.As(err, &se) {
				se.Index = i
			}
			return nil, err
		}
		subs = append(subs, sub)
	}
	return subs, nil
}

// ParseSubstitution builds a Substitution from [pattern, replacement] or
// [pattern, replacement, is_multiline]. The pattern must compile.
func ParseSubstitution(raw any) (substitute.Substitution, error) {
	list, ok := raw.([]any)
	if !ok {
		return substitute.Substitution{}, &SubstitutionError{Index: -1, Reason: fmt.Sprintf("expected a list, got %T", raw)}
	}
	if len(list) < 2 {
		return substitute.Substitution{}, &SubstitutionError{Index: -1, Reason: fmt.Sprintf("expected at least 2 elements, got %d", len(list))}
	}
	pattern, ok := list[0].(string)
	if !ok {
		return substitute.Substitution{}, &SubstitutionError{Index: -1, Reason: fmt.Sprintf("pattern must be a string, got %T", list[0])}
	}
	replacement, ok := list[1].(string)
	if !ok {
		return substitute.Substitution{}, &SubstitutionError{Index: -1, Reason: fmt.Sprintf("replacement must be a string, got %T", list[1])}
	}

	isMultiline := false
	if len(list) > 2 {
		b, ok := list[2].(bool)
		if !ok {
			return substitute.Substitution{}, &SubstitutionError{Index: -1, Reason: fmt.Sprintf("is_multiline must be a boolean, got %v", list[2])}
		}
		isMultiline = b
	}

	sub := substitute.New(pattern, replacement, isMultiline)
	if err := sub.Validate(); err != nil {
		return substitute.Substitution{}, &SubstitutionError{Index: -1, Reason: err.Error()}
	}
	return sub, nil
}

// ParseBool coerces an egrc value to a boolean. Native booleans pass through;
// only the strings "True" and "true" are true.
func ParseBool(v any) bool {
	switch b := v.(type) {
	case bool:
		return b
	case string:
		return b == "True" || b == "true"
	default:
		return false
	}
}

// ExpandPath expands environment variables and a leading ~.
func ExpandPath(path string) string {
	path = os.ExpandEnv(path)
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, strings.TrimPrefix(path, "~"))
	}
	return path
}

func stringValue(values map[string]any, key string) (string, bool) {
	v, ok := values[key]
	if !ok || v == nil {
		return "", false
	}
	switch s := v.(type) {
	case string:
		return s, true
	default:
		return fmt.Sprint(s), true
	}
}

// normalizeColor turns literal "\x1b", "\033" and "\e" sequences, as written
// in a single-quoted YAML or literal TOML value, into a real ESC.
func normalizeColor(s string) string {
	const esc = "\x1b"
	replacer := strings.NewReplacer(`\x1b`, esc, `\033`, esc, `\e`, esc)
	return replacer.Replace(s)
}
