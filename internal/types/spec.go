package types

type Metadata struct {
	Name        string   `yaml:"name"`
	Version     string   `yaml:"version"`
	Owners      []string `yaml:"owners"`
	Description string   `yaml:"description,omitempty"`
}

// Product identifies the build-service package holding the image
// descriptor and the repository/architecture the image is built
// against.
type Product struct {
	Project    string `yaml:"project"`
	Package    string `yaml:"package"`
	Repository string `yaml:"repository"`
	Arch       string `yaml:"arch"`
	Descriptor string `yaml:"descriptor"`
}

// SpecDefaults provides project-level defaults that the CLI and
// application layer use when a value is not explicitly provided via
// flags or environment variables.  Embedding defaults in the product
// spec eliminates the need for a separate config file or repetitive
// CLI flags.
type SpecDefaults struct {
	CheckoutDir string `yaml:"checkout_dir,omitempty"`
	CacheDir    string `yaml:"cache_dir,omitempty"`
	Artifact    string `yaml:"artifact,omitempty"`

	// BuildRoot is the chroot directory the external build tool uses.
	// Empty means the tool's conventional /var/tmp/build-root location
	// for the product's repository and arch.
	BuildRoot string `yaml:"build_root,omitempty"`

	// BuildInfoFile optionally names the build-service-internal
	// build-info file that gets rewritten in place.  Empty means the
	// conventional location inside the checkout is used.
	BuildInfoFile string `yaml:"buildinfo_file,omitempty"`
}

type Spec struct {
	APIVersion string       `yaml:"api_version"`
	Kind       SpecKind     `yaml:"kind"`
	Metadata   Metadata     `yaml:"metadata"`
	Product    Product      `yaml:"product"`
	Defaults   SpecDefaults `yaml:"defaults,omitempty"`

	// Overrides lists persistent override directives in their textual
	// PROJECT/REPOSITORY[:PACKAGE] form.  CLI positional directives are
	// appended after these.
	Overrides []string `yaml:"overrides,omitempty"`
}
