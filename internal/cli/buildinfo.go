package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"kiwiforge/internal/app"
)

type buildInfoOptions struct {
	Product     string
	CheckoutDir string
	CacheDir    string
	Refresh     bool
}

func newBuildInfoCommand() *cobra.Command {
	opts := buildInfoOptions{}
	cmd := &cobra.Command{
		Use:   "buildinfo",
		Short: "Show the product's build-dependency repositories (cached)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runBuildInfo(cmd.Context(), cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.Product, "product", "", "Product spec path")
	cmd.Flags().StringVar(&opts.CheckoutDir, "checkout-dir", "", "Checkout directory")
	cmd.Flags().StringVar(&opts.CacheDir, "cache-dir", "", "Build-info cache directory")
	cmd.Flags().BoolVar(&opts.Refresh, "refresh", false, "Re-fetch even when a cached report exists")

	_ = viper.BindPFlag("product", cmd.Flags().Lookup("product"))
	_ = viper.BindPFlag("checkout_dir", cmd.Flags().Lookup("checkout-dir"))
	_ = viper.BindPFlag("cache_dir", cmd.Flags().Lookup("cache-dir"))

	return cmd
}

func runBuildInfo(ctx context.Context, cmd *cobra.Command, opts buildInfoOptions) error {
	service := newAppService()
	result, err := service.BuildInfo(ctx, app.BuildInfoRequest{
		ProductPath: resolveString(cmd, opts.Product, "product", "product"),
		CheckoutDir: resolveString(cmd, opts.CheckoutDir, "checkout_dir", "checkout-dir"),
		CacheDir:    resolveString(cmd, opts.CacheDir, "cache_dir", "cache-dir"),
		Refresh:     opts.Refresh,
	})
	if err != nil {
		return err
	}
	source := "fetched"
	if result.FromCache {
		source = "cached"
	}
	fmt.Printf("%s build-info (%s): %d repositories\n", result.ProductName, source, len(result.Pairs))
	for i, pair := range result.Pairs {
		fmt.Printf("%3d. %s/%s\n", i+1, pair.Project, pair.Repository)
	}
	return nil
}
