// Package substitute applies pattern→replacement rules to example text.
package substitute

import (
	"fmt"
	"regexp"
)

// Substitution is a single text replacement rule. The zero value is a rule
// with an empty pattern, which matches everywhere; build rules with New or
// from an egrc entry.
//
// Substitution is a plain value: two rules are equal when all three fields
// are equal, so it can be compared with == and used as a map key.
type Substitution struct {
	Pattern     string
	Replacement string
	// IsMultiline lets the pattern span lines: "." matches newlines and the
	// ^/$ anchors apply to the whole text. Otherwise ^/$ are per line and
	// "." stops at a newline.
	IsMultiline bool
}

// New returns a Substitution.
func New(pattern, replacement string, isMultiline bool) Substitution {
	return Substitution{Pattern: pattern, Replacement: replacement, IsMultiline: isMultiline}
}

// Compile returns the regular expression for the rule with its line mode applied.
func (s Substitution) Compile() (*regexp.Regexp, error) {
	flags := "(?m)"
	if s.IsMultiline {
		flags = "(?s)"
	}
	re, err := regexp.Compile(flags + s.Pattern)
	if err != nil {
		return nil, fmt.Errorf("compiling substitution pattern %q: %w", s.Pattern, err)
	}
	return re, nil
}

// Validate reports whether the pattern compiles.
func (s Substitution) Validate() error {
	_, err := s.Compile()
	return err
}

// Apply replaces every non-overlapping match in text, scanning left to right.
// Replacement may reference groups as $1 or ${name}. Text is returned
// unchanged when nothing matches or when the pattern does not compile;
// rules loaded from an egrc are validated before they reach here.
func (s Substitution) Apply(text string) string {
	re, err := s.Compile()
	if err != nil {
		return text
	}
	return re.ReplaceAllString(text, s.Replacement)
}

// ApplyAll runs subs in order, each one consuming the previous result.
func ApplyAll(text string, subs []Substitution) string {
	for _, sub := range subs {
		text = sub.Apply(text)
	}
	return text
}

// String renders the rule the way it is written in an egrc.
func (s Substitution) String() string {
	return fmt.Sprintf("[%q, %q, %t]", s.Pattern, s.Replacement, s.IsMultiline)
}
