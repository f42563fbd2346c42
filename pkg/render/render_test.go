package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dkoosis/eg/internal/listing"
)

func sampleEntries() []listing.Entry {
	return listing.Merge(
		[]string{"cat.md", "cp.md", "ls.md"},
		[]string{"cp.md", "grep.md"},
	)
}

func TestListing_OnePerLine_When_NoWidth(t *testing.T) {
	t.Parallel()

	out := NewListing(MonoTheme(), 0).Render(sampleEntries())
	assert.Equal(t, "cat\ncp *\ngrep +\nls\n", out)
}

func TestListing_Empty(t *testing.T) {
	t.Parallel()

	assert.Empty(t, NewListing(MonoTheme(), 80).Render(nil))
	assert.Empty(t, NewListing(MonoTheme(), 0).Render(nil))
}

func TestListing_FillsColumnsTopToBottom(t *testing.T) {
	t.Parallel()

	// Widest cell is "grep +" (6), so columns are 8 wide; 17 columns of
	// width fit two of them.
	out := NewListing(MonoTheme(), 17).Render(sampleEntries())
	assert.Equal(t, "cat     grep +\ncp *    ls\n", out)
}

func TestListing_SingleRow_When_WideTerminal(t *testing.T) {
	t.Parallel()

	out := NewListing(MonoTheme(), 200).Render(sampleEntries())
	assert.Equal(t, "cat     cp *    grep +  ls\n", out)
}

func TestListing_OneColumn_When_NarrowTerminal(t *testing.T) {
	t.Parallel()

	out := NewListing(MonoTheme(), 3).Render(sampleEntries())
	assert.Equal(t, "cat\ncp *\ngrep +\nls\n", out)
}

func TestListing_PadsByDisplayWidth(t *testing.T) {
	t.Parallel()

	entries := listing.Merge([]string{"a.md", "日本.md"}, nil)
	out := NewListing(MonoTheme(), 40).Render(entries)
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	assert.Equal(t, []string{"a     日本"}, lines)
}

func TestThemeFor(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "default", ThemeFor(true).Name)
	assert.Equal(t, "mono", ThemeFor(false).Name)
}
