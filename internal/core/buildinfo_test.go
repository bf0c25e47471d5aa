package core

import (
	"testing"

	"github.com/beevik/etree"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kiwiforge/internal/types"
)

const filterInput = `<?xml version="1.0" encoding="utf-8"?>
<buildinfo project="home:images:live" repository="images" package="livecd-leap">
	<arch>x86_64</arch>
	<bdep name="foo" version="1.0" project="projA" repository="repo1"/>
	<bdep name="foo" version="1.1" project="projB" repository="repo1"/>
	<bdep name="foo" version="1.2" project="projA" repository="repo2"/>
	<bdep name="bar" version="2.0" project="projB" repository="repo1"/>
	<bdep name="rpm" version="4.18" preinstall="1"/>
</buildinfo>
`

type bdepEntry struct {
	Name    string
	Project string
	Repo    string
}

func reportEntries(t *testing.T, report []byte) []bdepEntry {
	t.Helper()
	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromBytes(report))
	var entries []bdepEntry
	for _, bdep := range doc.Root().SelectElements("bdep") {
		entries = append(entries, bdepEntry{
			Name:    bdep.SelectAttrValue("name", ""),
			Project: bdep.SelectAttrValue("project", ""),
			Repo:    bdep.SelectAttrValue("repository", ""),
		})
	}
	return entries
}

func TestExtractRepoPairs(t *testing.T) {
	pairs, err := ExtractRepoPairs([]byte(filterInput))
	require.NoError(t, err)

	expected := []types.RepoPair{
		{Project: "projA", Repository: "repo1"},
		{Project: "projB", Repository: "repo1"},
		{Project: "projA", Repository: "repo2"},
	}
	if diff := cmp.Diff(expected, pairs); diff != "" {
		t.Fatalf("unexpected pairs (-want +got):\n%s", diff)
	}
}

func TestExtractRepoPairsEmptyReport(t *testing.T) {
	pairs, err := ExtractRepoPairs([]byte(`<buildinfo></buildinfo>`))
	require.NoError(t, err)
	assert.Empty(t, pairs)
}

func TestFilterBuildInfoWorkedExample(t *testing.T) {
	// Directive projA/repo1:foo keeps the projA-provided foo under
	// repo1 and drops the projB-provided one; foo under repo2 and bar
	// are untouched.
	set, err := ParseDirectives([]string{"projA/repo1:foo"})
	require.NoError(t, err)

	filtered, removed, err := FilterBuildInfo([]byte(filterInput), set)
	require.NoError(t, err)
	assert.Equal(t, 1, removed)

	expected := []bdepEntry{
		{Name: "foo", Project: "projA", Repo: "repo1"},
		{Name: "foo", Project: "projA", Repo: "repo2"},
		{Name: "bar", Project: "projB", Repo: "repo1"},
		{Name: "rpm"},
	}
	if diff := cmp.Diff(expected, reportEntries(t, filtered)); diff != "" {
		t.Fatalf("unexpected entries (-want +got):\n%s", diff)
	}
}

func TestFilterBuildInfoIdempotent(t *testing.T) {
	set, err := ParseDirectives([]string{"projA/repo1:foo", "projA/repo1:bar"})
	require.NoError(t, err)

	once, removedOnce, err := FilterBuildInfo([]byte(filterInput), set)
	require.NoError(t, err)
	assert.Equal(t, 2, removedOnce)

	twice, removedTwice, err := FilterBuildInfo(once, set)
	require.NoError(t, err)
	assert.Equal(t, 0, removedTwice)
	assert.Equal(t, string(once), string(twice))
}

func TestFilterBuildInfoNoMatchIsNoOp(t *testing.T) {
	set, err := ParseDirectives([]string{"projA/repo9:absent"})
	require.NoError(t, err)

	filtered, removed, err := FilterBuildInfo([]byte(filterInput), set)
	require.NoError(t, err)
	assert.Equal(t, 0, removed)
	assert.Equal(t, filterInput, string(filtered), "untouched report round-trips byte-for-byte")
}

func TestFilterBuildInfoBarePairFiltersNothing(t *testing.T) {
	set, err := ParseDirectives([]string{"projA/repo1"})
	require.NoError(t, err)

	filtered, removed, err := FilterBuildInfo([]byte(filterInput), set)
	require.NoError(t, err)
	assert.Equal(t, 0, removed)
	assert.Len(t, reportEntries(t, filtered), 5)
}

func TestFilterBuildInfoMalformed(t *testing.T) {
	set, err := ParseDirectives([]string{"projA/repo1:foo"})
	require.NoError(t, err)

	_, _, err = FilterBuildInfo([]byte("<buildinfo"), set)
	require.Error(t, err)
}
