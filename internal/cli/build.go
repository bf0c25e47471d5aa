package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"kiwiforge/internal/app"
)

type buildOptions struct {
	Product      string
	CheckoutDir  string
	CacheDir     string
	Artifact     string
	SkipPrefetch bool
}

func newBuildCommand() *cobra.Command {
	opts := buildOptions{}
	cmd := &cobra.Command{
		Use:   "build [PROJECT/REPOSITORY[:PACKAGE]...]",
		Short: "Check out the product, patch its descriptor, and build the image",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBuild(cmd.Context(), cmd, opts, args)
		},
	}

	cmd.Flags().StringVar(&opts.Product, "product", "", "Product spec path")
	cmd.Flags().StringVar(&opts.CheckoutDir, "checkout-dir", "", "Checkout directory")
	cmd.Flags().StringVar(&opts.CacheDir, "cache-dir", "", "Build-info cache directory")
	cmd.Flags().StringVar(&opts.Artifact, "artifact", "", "Expected final artifact path")
	cmd.Flags().BoolVar(&opts.SkipPrefetch, "skip-prefetch", false, "Skip the preliminary build")

	_ = viper.BindPFlag("product", cmd.Flags().Lookup("product"))
	_ = viper.BindPFlag("checkout_dir", cmd.Flags().Lookup("checkout-dir"))
	_ = viper.BindPFlag("cache_dir", cmd.Flags().Lookup("cache-dir"))
	_ = viper.BindPFlag("artifact", cmd.Flags().Lookup("artifact"))
	_ = viper.BindPFlag("skip_prefetch", cmd.Flags().Lookup("skip-prefetch"))

	return cmd
}

func runBuild(ctx context.Context, cmd *cobra.Command, opts buildOptions, overrides []string) error {
	service := newAppService()
	result, err := service.Build(ctx, app.BuildRequest{
		ProductPath:  resolveString(cmd, opts.Product, "product", "product"),
		Overrides:    overrides,
		CheckoutDir:  resolveString(cmd, opts.CheckoutDir, "checkout_dir", "checkout-dir"),
		CacheDir:     resolveString(cmd, opts.CacheDir, "cache_dir", "cache-dir"),
		Artifact:     resolveString(cmd, opts.Artifact, "artifact", "artifact"),
		SkipPrefetch: resolveBool(cmd, opts.SkipPrefetch, "skip_prefetch", "skip-prefetch"),
	})
	if err != nil {
		return err
	}
	if result.ArtifactExists {
		fmt.Printf("%s built successfully: %s\n", result.ProductName, result.Artifact)
		return nil
	}
	fmt.Printf("%s build did not produce %s; check the build log above\n", result.ProductName, result.Artifact)
	return nil
}
