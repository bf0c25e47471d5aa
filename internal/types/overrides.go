package types

// Directive is one user-supplied override rule: for Repository, prefer
// Project as the provider of Package.  An empty Package scopes the
// directive to the repository pair only, which adds a package source to
// the patched descriptor without filtering any dependency entries.
type Directive struct {
	Project    string
	Repository string
	Package    string
}

// RepoPair is a (project, repository) package-source pair.
type RepoPair struct {
	Project    string
	Repository string
}

// OverrideSet is the accumulated form of a directive list: the distinct
// repository pairs in first-seen order, and per pair the set of package
// names whose provider is pinned to the pair's project.
type OverrideSet struct {
	pairs    []RepoPair
	packages map[RepoPair]map[string]struct{}
}

// NewOverrideSet accumulates directives into an OverrideSet.  Exact
// duplicate pairs collapse; package sets merge.
func NewOverrideSet(directives []Directive) OverrideSet {
	set := OverrideSet{packages: map[RepoPair]map[string]struct{}{}}
	for _, d := range directives {
		pair := RepoPair{Project: d.Project, Repository: d.Repository}
		if _, ok := set.packages[pair]; !ok {
			set.pairs = append(set.pairs, pair)
			set.packages[pair] = map[string]struct{}{}
		}
		if d.Package != "" {
			set.packages[pair][d.Package] = struct{}{}
		}
	}
	return set
}

// Pairs returns the distinct repository pairs in first-seen order.
func (s OverrideSet) Pairs() []RepoPair {
	return s.pairs
}

// Deletes reports whether a dependency entry provided by project under
// repository should be removed: some directive pins the package name
// under that repository to a different project.  Directives apply
// independently, so two directives pinning the same package to
// different projects delete both providers.
func (s OverrideSet) Deletes(project string, repository string, name string) bool {
	for _, pair := range s.pairs {
		if pair.Repository != repository {
			continue
		}
		if _, ok := s.packages[pair][name]; !ok {
			continue
		}
		if pair.Project != project {
			return true
		}
	}
	return false
}

// Empty reports whether the set carries no directives at all.
func (s OverrideSet) Empty() bool {
	return len(s.pairs) == 0
}
