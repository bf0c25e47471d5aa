package core

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kiwiforge/internal/types"
)

func TestParseDirective(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected types.Directive
		wantErr  bool
	}{
		{
			name:     "pair only",
			input:    "openSUSE:Factory/standard",
			expected: types.Directive{Project: "openSUSE:Factory", Repository: "standard"},
		},
		{
			name:     "pair with package",
			input:    "devel:languages:go/standard:go1.24",
			expected: types.Directive{Project: "devel:languages:go", Repository: "standard", Package: "go1.24"},
		},
		{
			name:     "surrounding whitespace",
			input:    "  proj/repo:pkg  ",
			expected: types.Directive{Project: "proj", Repository: "repo", Package: "pkg"},
		},
		{
			name:    "missing repository",
			input:   "proj",
			wantErr: true,
		},
		{
			name:    "empty project",
			input:   "/repo",
			wantErr: true,
		},
		{
			name:    "empty repository",
			input:   "proj/",
			wantErr: true,
		},
		{
			name:    "empty package after colon",
			input:   "proj/repo:",
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDirective(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			if diff := cmp.Diff(tt.expected, got); diff != "" {
				t.Fatalf("unexpected directive (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseDirectivesAccumulates(t *testing.T) {
	set, err := ParseDirectives([]string{
		"projA/repo1:foo",
		"projA/repo1:bar",
		"projB/repo2",
		"projA/repo1:foo", // exact duplicate is harmless
	})
	require.NoError(t, err)

	expected := []types.RepoPair{
		{Project: "projA", Repository: "repo1"},
		{Project: "projB", Repository: "repo2"},
	}
	if diff := cmp.Diff(expected, set.Pairs()); diff != "" {
		t.Fatalf("unexpected pairs (-want +got):\n%s", diff)
	}

	assert.True(t, set.Deletes("other", "repo1", "foo"))
	assert.True(t, set.Deletes("other", "repo1", "bar"))
	assert.False(t, set.Deletes("projA", "repo1", "foo"), "preferred provider survives")
	assert.False(t, set.Deletes("other", "repo1", "baz"), "unpinned package survives")
	assert.False(t, set.Deletes("other", "repo2", "foo"), "bare pair filters nothing")
}

func TestParseDirectivesError(t *testing.T) {
	_, err := ParseDirectives([]string{"projA/repo1", "broken"})
	require.Error(t, err)
}

func TestOverrideSetConflictingPins(t *testing.T) {
	// Two directives pinning the same package under the same repository
	// to different projects delete each other's providers.
	set, err := ParseDirectives([]string{"projA/repo1:foo", "projB/repo1:foo"})
	require.NoError(t, err)

	assert.True(t, set.Deletes("projA", "repo1", "foo"))
	assert.True(t, set.Deletes("projB", "repo1", "foo"))
	assert.True(t, set.Deletes("projC", "repo1", "foo"))
}

func TestOverrideSetEmpty(t *testing.T) {
	set, err := ParseDirectives(nil)
	require.NoError(t, err)
	assert.True(t, set.Empty())
	assert.Empty(t, set.Pairs())

	set, err = ParseDirectives([]string{"p/r"})
	require.NoError(t, err)
	assert.False(t, set.Empty())
}
