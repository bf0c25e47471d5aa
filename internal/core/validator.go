package core

import (
	"context"
	"strings"

	assert "github.com/ZanzyTHEbar/assert-lib"
	"github.com/ZanzyTHEbar/errbuilder-go"

	"kiwiforge/internal/types"
)

type SpecValidator struct{}

func NewSpecValidator() SpecValidator {
	return SpecValidator{}
}

func (v SpecValidator) ValidateSpec(ctx context.Context, spec types.Spec) error {
	assert.NotEmpty(ctx, spec.APIVersion, "api_version must be set")
	assert.NotEmpty(ctx, string(spec.Kind), "kind must be set")
	assert.NotEmpty(ctx, spec.Metadata.Name, "metadata.name must be set")
	if spec.Kind != types.SpecKindProduct {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("spec kind must be product")
	}
	if len(spec.Metadata.Owners) == 0 {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("metadata.owners must not be empty")
	}
	if err := v.validateProduct(spec.Product); err != nil {
		return err
	}
	for _, override := range spec.Overrides {
		if _, err := ParseDirective(override); err != nil {
			return err
		}
	}
	return nil
}

func (v SpecValidator) validateProduct(product types.Product) error {
	required := []struct {
		name  string
		value string
	}{
		{name: "product.project", value: product.Project},
		{name: "product.package", value: product.Package},
		{name: "product.repository", value: product.Repository},
		{name: "product.arch", value: product.Arch},
		{name: "product.descriptor", value: product.Descriptor},
	}
	for _, field := range required {
		if strings.TrimSpace(field.value) == "" {
			return errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg(field.name + " must be set")
		}
	}
	if strings.ContainsAny(product.Descriptor, "/\\") {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("product.descriptor must be a file name inside the checkout, not a path")
	}
	return nil
}
