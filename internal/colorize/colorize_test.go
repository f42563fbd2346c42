package colorize

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dkoosis/eg/internal/config"
)

// markers makes escape pairs readable in expectations.
func markers() config.ColorConfig {
	return config.ColorConfig{
		Pound:          "<P>",
		PoundReset:     "</P>",
		Heading:        "<H>",
		HeadingReset:   "</H>",
		Code:           "<C>",
		CodeReset:      "</C>",
		Backticks:      "<B>",
		BackticksReset: "</B>",
		Prompt:         "<$>",
		PromptReset:    "</$>",
	}
}

func TestColorizer_Colorize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "Heading",
			in:   "# tar",
			want: "<P>#</P><H> tar</H>",
		},
		{
			name: "SubHeading",
			in:   "## Basic Usage",
			want: "<P>##</P><H> Basic Usage</H>",
		},
		{
			name: "BarePound",
			in:   "#",
			want: "<P>#</P>",
		},
		{
			name: "IndentedCode",
			in:   "    tar -xf archive.tar",
			want: "    <C>tar -xf archive.tar</C>",
		},
		{
			name: "IndentedCodeWithPrompt",
			in:   "    $ ls -l",
			want: "    <$>$</$> <C>ls -l</C>",
		},
		{
			name: "Backticks",
			in:   "Use `-r` to recurse into `dir`.",
			want: "Use <B>`-r`</B> to recurse into <B>`dir`</B>.",
		},
		{
			name: "PlainTextUntouched",
			in:   "just words",
			want: "just words",
		},
		{
			name: "EmptyLinesUntouched",
			in:   "\n\n",
			want: "\n\n",
		},
		{
			name: "FencedBlock",
			in:   "```\n$ echo hi\n```",
			want: "<C>```</C>\n<$>$</$> <C>echo hi</C>\n<C>```</C>",
		},
		{
			name: "NoBackticksInsideCode",
			in:   "    echo `date`",
			want: "    <C>echo `date`</C>",
		},
	}

	c := New(markers())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, c.Colorize(tt.in))
		})
	}
}

func TestColorizer_Colorize_Document(t *testing.T) {
	t.Parallel()

	in := "# cp\n\ncopy a file\n\n    cp a b\n"
	want := "<P>#</P><H> cp</H>\n\ncopy a file\n\n    <C>cp a b</C>\n"

	assert.Equal(t, want, New(markers()).Colorize(in))
}
