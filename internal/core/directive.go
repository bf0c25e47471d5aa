package core

import (
	"fmt"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"kiwiforge/internal/types"
)

// ParseDirective parses the textual PROJECT/REPOSITORY[:PACKAGE] form
// of an override directive.  Project names may contain colons, so the
// package separator is the first colon after the slash.
func ParseDirective(value string) (types.Directive, error) {
	trimmed := strings.TrimSpace(value)
	project, rest, ok := strings.Cut(trimmed, "/")
	if !ok || strings.TrimSpace(project) == "" {
		return types.Directive{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("override %q is not of the form PROJECT/REPOSITORY[:PACKAGE]", value))
	}
	repository := rest
	pkg := ""
	if idx := strings.Index(rest, ":"); idx >= 0 {
		repository = rest[:idx]
		pkg = rest[idx+1:]
		if strings.TrimSpace(pkg) == "" {
			return types.Directive{}, errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg(fmt.Sprintf("override %q has an empty package after ':'", value))
		}
	}
	if strings.TrimSpace(repository) == "" {
		return types.Directive{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("override %q is not of the form PROJECT/REPOSITORY[:PACKAGE]", value))
	}
	return types.Directive{
		Project:    strings.TrimSpace(project),
		Repository: strings.TrimSpace(repository),
		Package:    strings.TrimSpace(pkg),
	}, nil
}

// ParseDirectives parses a list of textual directives and accumulates
// them into an OverrideSet.
func ParseDirectives(values []string) (types.OverrideSet, error) {
	directives := make([]types.Directive, 0, len(values))
	for _, value := range values {
		directive, err := ParseDirective(value)
		if err != nil {
			return types.OverrideSet{}, err
		}
		directives = append(directives, directive)
	}
	return types.NewOverrideSet(directives), nil
}
