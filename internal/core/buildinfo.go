package core

import (
	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/beevik/etree"

	"kiwiforge/internal/types"
)

const bdepTag = "bdep"

// ExtractRepoPairs collects the distinct (project, repository) pairs
// referenced by the dependency entries of a build-info report, in
// first-seen document order.  Entries lacking either attribute describe
// preinstalled or locally supplied packages and contribute no pair.
func ExtractRepoPairs(buildinfo []byte) ([]types.RepoPair, error) {
	doc, err := parseBuildInfo(buildinfo)
	if err != nil {
		return nil, err
	}
	seen := map[types.RepoPair]struct{}{}
	var pairs []types.RepoPair
	for _, bdep := range doc.Root().SelectElements(bdepTag) {
		pair := types.RepoPair{
			Project:    bdep.SelectAttrValue("project", ""),
			Repository: bdep.SelectAttrValue("repository", ""),
		}
		if pair.Project == "" || pair.Repository == "" {
			continue
		}
		if _, ok := seen[pair]; ok {
			continue
		}
		seen[pair] = struct{}{}
		pairs = append(pairs, pair)
	}
	return pairs, nil
}

// FilterBuildInfo removes, for every override directive (P, R, N), each
// dependency entry whose package is N, whose repository is R, and whose
// providing project is not P.  Directives apply independently and
// cumulatively; entries no directive touches keep their serialized form
// and relative order.  The returned count is the number of entries
// removed, so a second application over the output removes zero.
func FilterBuildInfo(buildinfo []byte, set types.OverrideSet) ([]byte, int, error) {
	doc, err := parseBuildInfo(buildinfo)
	if err != nil {
		return nil, 0, err
	}
	root := doc.Root()
	removed := 0
	for _, bdep := range root.SelectElements(bdepTag) {
		name := bdep.SelectAttrValue("name", "")
		project := bdep.SelectAttrValue("project", "")
		repository := bdep.SelectAttrValue("repository", "")
		if project == "" || repository == "" {
			continue
		}
		if set.Deletes(project, repository, name) {
			root.RemoveChild(bdep)
			removed++
		}
	}
	out, err := doc.WriteToBytes()
	if err != nil {
		return nil, 0, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to serialize filtered build-info").
			WithCause(err)
	}
	return out, removed, nil
}

func parseBuildInfo(buildinfo []byte) (*etree.Document, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(buildinfo); err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("failed to parse build-info report").
			WithCause(err)
	}
	if doc.Root() == nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("build-info report has no root element")
	}
	return doc, nil
}
