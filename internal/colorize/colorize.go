// Package colorize highlights the markdown-like markers in example files
// using the escape pairs of a config.ColorConfig.
package colorize

import (
	"regexp"
	"strings"

	"github.com/dkoosis/eg/internal/config"
)

const (
	codeIndent = "    "
	fence      = "```"
	prompt     = "$ "
)

var (
	headingRe   = regexp.MustCompile(`^(#+)(.*)$`)
	backticksRe = regexp.MustCompile("`[^`]+`")
)

// Colorizer wraps recognized markers with their escape sequences. Text it
// does not recognize is left untouched.
type Colorizer struct {
	colors config.ColorConfig
}

// New returns a Colorizer for colors.
func New(colors config.ColorConfig) *Colorizer {
	return &Colorizer{colors: colors}
}

// Colorize highlights text line by line:
//   - "#" heading lines: the pound run and the heading text
//   - indented (4 spaces) and fenced lines: code, with a leading "$ " as a prompt
//   - `inline code` spans in other lines: backticks
func (c *Colorizer) Colorize(text string) string {
	lines := strings.Split(text, "\n")
	inFence := false
	for i, line := range lines {
		switch {
		case strings.HasPrefix(line, fence):
			inFence = !inFence
			lines[i] = c.wrap(c.colors.Code, line, c.colors.CodeReset)
		case inFence:
			lines[i] = c.colorizeCode("", line)
		case strings.HasPrefix(line, codeIndent):
			lines[i] = c.colorizeCode(codeIndent, strings.TrimPrefix(line, codeIndent))
		case strings.HasPrefix(line, "#"):
			lines[i] = c.colorizeHeading(line)
		default:
			lines[i] = c.colorizeBackticks(line)
		}
	}
	return strings.Join(lines, "\n")
}

func (c *Colorizer) colorizeHeading(line string) string {
	m := headingRe.FindStringSubmatch(line)
	if m == nil {
		return line
	}
	pounds := c.wrap(c.colors.Pound, m[1], c.colors.PoundReset)
	if m[2] == "" {
		return pounds
	}
	return pounds + c.wrap(c.colors.Heading, m[2], c.colors.HeadingReset)
}

func (c *Colorizer) colorizeCode(indent, code string) string {
	if code == "" {
		return indent
	}
	var sb strings.Builder
	sb.WriteString(indent)
	if strings.HasPrefix(code, prompt) {
		sb.WriteString(c.wrap(c.colors.Prompt, "$", c.colors.PromptReset))
		sb.WriteString(" ")
		code = strings.TrimPrefix(code, prompt)
	}
	sb.WriteString(c.wrap(c.colors.Code, code, c.colors.CodeReset))
	return sb.String()
}

func (c *Colorizer) colorizeBackticks(line string) string {
	return backticksRe.ReplaceAllStringFunc(line, func(span string) string {
		return c.wrap(c.colors.Backticks, span, c.colors.BackticksReset)
	})
}

func (c *Colorizer) wrap(start, s, reset string) string {
	if s == "" {
		return s
	}
	return start + s + reset
}
