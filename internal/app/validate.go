package app

import (
	"context"

	"kiwiforge/internal/core"
)

// Validate loads the product spec, checks its structure, and parses any
// embedded override directives.  When the descriptor already exists in
// the checkout it is parsed too; a descriptor that is simply not
// checked out yet is not an error.
func (s Service) Validate(ctx context.Context, req ValidateRequest) (ValidateResult, error) {
	spec, _, err := s.loadProduct(ctx, req.ProductPath, nil)
	if err != nil {
		return ValidateResult{}, err
	}
	result := ValidateResult{ProductName: spec.Metadata.Name}

	settings := resolveSettings(BuildRequest{}, spec)
	packageDir := s.Workspace.PackageDir(settings.CheckoutDir, spec.Product.Project, spec.Product.Package)
	descriptor, err := s.Workspace.ReadDescriptor(packageDir, spec.Product.Descriptor)
	if err != nil {
		return result, nil
	}
	if err := core.ValidateDescriptor(descriptor); err != nil {
		return ValidateResult{}, err
	}
	result.DescriptorChecked = true
	return result, nil
}
