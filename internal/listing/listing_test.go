package listing

import (
	"testing"

	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkoosis/eg/internal/files"
)

func TestMerge(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		defaults []string
		customs  []string
		want     []string
	}{
		{
			name:     "InterleavesAndFlags",
			defaults: []string{"cat.md", "cp.md", "ls.md"},
			customs:  []string{"cp.md", "grep.md"},
			want:     []string{"cat", "cp *", "grep +", "ls"},
		},
		{
			name: "BothEmpty",
			want: []string{},
		},
		{
			name:     "OnlyDefaults",
			defaults: []string{"awk.md", "sed.md"},
			want:     []string{"awk", "sed"},
		},
		{
			name:    "OnlyCustoms",
			customs: []string{"awk.md", "sed.md"},
			want:    []string{"awk +", "sed +"},
		},
		{
			name:     "DrainsCustomTail",
			defaults: []string{"a.md"},
			customs:  []string{"b.md", "c.md"},
			want:     []string{"a", "b +", "c +"},
		},
		{
			name:     "AllShared",
			defaults: []string{"a.md", "b.md"},
			customs:  []string{"a.md", "b.md"},
			want:     []string{"a *", "b *"},
		},
		{
			name:     "CaseSensitiveOrder",
			defaults: []string{"Zed.md", "apt.md"},
			customs:  []string{"Make.md"},
			want:     []string{"Make +", "Zed", "apt"},
		},
		{
			name:     "KeepsNamesWithoutSuffix",
			defaults: []string{"README"},
			want:     []string{"README"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, Strings(Merge(tt.defaults, tt.customs)))
		})
	}
}

func TestMerge_ReportsSources(t *testing.T) {
	t.Parallel()

	got := Merge([]string{"cat.md", "cp.md"}, []string{"cp.md", "grep.md"})
	assert.Equal(t, []Entry{
		{Name: "cat", Source: DefaultOnly},
		{Name: "cp", Source: Both},
		{Name: "grep", Source: CustomOnly},
	}, got)
	assert.Equal(t, "both", got[1].Source.String())
}

func TestMerge_DoesNotModifyInputs(t *testing.T) {
	t.Parallel()

	defaults := []string{"a.md", "c.md"}
	customs := []string{"b.md"}
	Merge(defaults, customs)
	assert.Equal(t, []string{"a.md", "c.md"}, defaults)
	assert.Equal(t, []string{"b.md"}, customs)
}

func TestList_SortsDirectoryListings(t *testing.T) {
	t.Parallel()

	fs := memfs.New()
	for _, p := range []string{"/ex/ls.md", "/ex/cat.md", "/ex/cp.md", "/custom/grep.md", "/custom/cp.md"} {
		require.NoError(t, util.WriteFile(fs, p, []byte("x"), 0o644))
	}
	store := files.New(fs)

	entries, err := List(store, "/ex", "/custom")
	require.NoError(t, err)
	assert.Equal(t, []string{"cat", "cp *", "grep +", "ls"}, Strings(entries))
}

func TestList_SkipsMissingDirectories(t *testing.T) {
	t.Parallel()

	fs := memfs.New()
	require.NoError(t, util.WriteFile(fs, "/ex/tar.md", []byte("x"), 0o644))
	store := files.New(fs)

	entries, err := List(store, "/ex", "")
	require.NoError(t, err)
	assert.Equal(t, []string{"tar"}, Strings(entries))

	entries, err = List(store, "/missing", "/also-missing")
	require.NoError(t, err)
	assert.Empty(t, entries)
}
