package core

import (
	"fmt"
	"strconv"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/beevik/etree"

	"kiwiforge/internal/shared"
	"kiwiforge/internal/types"
)

const (
	repositoryTag  = "repository"
	sourceTag      = "source"
	repoAliasStem  = "obsrepo"
	repoSourceType = "rpm-md"
)

// ValidateDescriptor checks that descriptor bytes parse as an XML
// document with a root element, without touching them.
func ValidateDescriptor(descriptor []byte) error {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(descriptor); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("failed to parse image descriptor").
			WithCause(err)
	}
	if doc.Root() == nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("image descriptor has no root element")
	}
	return nil
}

// PatchDescriptor rewrites the repository sources of a kiwi image
// descriptor.  Every existing <repository> element is dropped and one
// element per (project, repository) pair is appended instead: first the
// distinct pairs referenced by the build-info report in first-seen
// order, then the override-derived pairs.  Pairs appearing in both
// lists get two entries with two priorities; the build client takes the
// first match, so the literal duplication is harmless and kept.
// Priorities are the 1-based positions in the combined list.
//
// The rest of the document is preserved as parsed.
func PatchDescriptor(descriptor []byte, buildinfo []byte, set types.OverrideSet) ([]byte, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(descriptor); err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("failed to parse image descriptor").
			WithCause(err)
	}
	root := doc.Root()
	if root == nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("image descriptor has no root element")
	}

	reportPairs, err := ExtractRepoPairs(buildinfo)
	if err != nil {
		return nil, err
	}

	for _, existing := range root.SelectElements(repositoryTag) {
		root.RemoveChild(existing)
	}

	combined := append(append([]types.RepoPair{}, reportPairs...), set.Pairs()...)
	for i, pair := range combined {
		priority := i + 1
		repo := root.CreateElement(repositoryTag)
		repo.CreateAttr("type", repoSourceType)
		repo.CreateAttr("alias", fmt.Sprintf("%s-%d", repoAliasStem, priority))
		repo.CreateAttr("priority", strconv.Itoa(priority))
		source := repo.CreateElement(sourceTag)
		source.CreateAttr("path", shared.SourcePath(pair.Project, pair.Repository))
	}

	out, err := doc.WriteToBytes()
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to serialize patched descriptor").
			WithCause(err)
	}
	return out, nil
}
