package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetPriority(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		candidates []*string
		want       string
	}{
		{name: "ReturnsFirst_When_FirstSet", candidates: []*string{Value("alpha"), Value("second"), Value("third")}, want: "alpha"},
		{name: "ReturnsSecond_When_FirstUnset", candidates: []*string{nil, Value("beta"), Value("third")}, want: "beta"},
		{name: "ReturnsThird_When_FirstTwoUnset", candidates: []*string{nil, nil, Value("gamma")}, want: "gamma"},
		{name: "RespectsEmptyString_When_Set", candidates: []*string{Value(""), Value("second")}, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := GetPriority(tt.candidates...)
			if assert.NotNil(t, got) {
				assert.Equal(t, tt.want, *got)
			}
		})
	}
}

func TestGetPriority_RespectsFalse(t *testing.T) {
	t.Parallel()

	got := GetPriority(Value(false), Value(true), Value(true))
	if assert.NotNil(t, got) {
		assert.False(t, *got)
	}
}

func TestGetPriority_ReturnsNil_When_NothingSet(t *testing.T) {
	t.Parallel()

	assert.Nil(t, GetPriority[string](nil, nil))
	assert.Nil(t, GetPriority[bool]())
}

func TestDefaultColorConfig(t *testing.T) {
	t.Parallel()

	actual := DefaultColorConfig()

	assert.Equal(t, DefaultColorPound, actual.Pound)
	assert.Equal(t, DefaultColorHeading, actual.Heading)
	assert.Equal(t, DefaultColorCode, actual.Code)
	assert.Equal(t, DefaultColorBackticks, actual.Backticks)
	assert.Equal(t, DefaultColorPrompt, actual.Prompt)
	assert.Equal(t, DefaultColorPoundReset, actual.PoundReset)
	assert.Equal(t, DefaultColorHeadingReset, actual.HeadingReset)
	assert.Equal(t, DefaultColorCodeReset, actual.CodeReset)
	assert.Equal(t, DefaultColorBackticksReset, actual.BackticksReset)
	assert.Equal(t, DefaultColorPromptReset, actual.PromptReset)
}

func TestMergeColorConfigs_ReturnsSecondary_When_PrimaryEmpty(t *testing.T) {
	t.Parallel()

	second := DefaultColorConfig()
	assert.Equal(t, second, MergeColorConfigs(EmptyColorConfig(), second))
}

func TestMergeColorConfigs_TakesAllPrimary_When_PrimaryFull(t *testing.T) {
	t.Parallel()

	first := ColorConfig{
		Pound:          "pound_color",
		Heading:        "heading_color",
		Code:           "code_color",
		Backticks:      "backticks_color",
		Prompt:         "prompt_color",
		PoundReset:     "p_reset",
		HeadingReset:   "h_reset",
		CodeReset:      "c_reset",
		BackticksReset: "b_reset",
		PromptReset:    "prmpt_reset",
	}

	assert.Equal(t, first, MergeColorConfigs(first.Partial(), DefaultColorConfig()))
}

func TestMergeColorConfigs_MergesFieldByField_When_PrimaryMixed(t *testing.T) {
	t.Parallel()

	second := DefaultColorConfig()
	first := PartialColorConfig{
		Pound: Value("pound_color"),
		Code:  Value("code_color"),
	}

	want := second
	want.Pound = "pound_color"
	want.Code = "code_color"

	assert.Equal(t, want, MergeColorConfigs(first, second))
}

func TestMergeColorConfigs_DoesNotMutateInputs(t *testing.T) {
	t.Parallel()

	first := PartialColorConfig{Heading: Value("h")}
	second := DefaultColorConfig()

	merged := MergeColorConfigs(first, second)
	merged.Heading = "changed"

	assert.Equal(t, "h", *first.Heading)
	assert.Equal(t, DefaultColorConfig(), second)
}

func TestMergeColorConfigs_LeavesNoFieldEmpty_When_SecondaryResolved(t *testing.T) {
	t.Parallel()

	partials := []PartialColorConfig{
		EmptyColorConfig(),
		{Pound: Value("x"), PromptReset: Value("y")},
		{Heading: Value("a"), HeadingReset: Value("b"), Code: Value("c"), Backticks: Value("d")},
	}
	for _, p := range partials {
		merged := MergeColorConfigs(p, DefaultColorConfig())
		for _, field := range []string{
			merged.Pound, merged.PoundReset, merged.Heading, merged.HeadingReset,
			merged.Code, merged.CodeReset, merged.Backticks, merged.BackticksReset,
			merged.Prompt, merged.PromptReset,
		} {
			assert.NotEmpty(t, field)
		}
	}
}

func TestDefaultSubs_IsEmpty(t *testing.T) {
	t.Parallel()

	subs := DefaultSubs()
	assert.NotNil(t, subs)
	assert.Empty(t, subs)
}

func TestDefaultExamplesDir_UsesBundledDir(t *testing.T) {
	// DefaultExamplesDir is computed once; this only checks it is stable.
	assert.Equal(t, DefaultExamplesDir(), DefaultExamplesDir())
	assert.NotEmpty(t, DefaultExamplesDir())
}
