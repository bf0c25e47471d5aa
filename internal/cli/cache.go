package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"kiwiforge/internal/app"
)

type cacheCleanOptions struct {
	Product  string
	CacheDir string
	All      bool
}

func newCacheCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Manage the build-info cache",
	}
	cmd.AddCommand(newCacheCleanCommand())
	return cmd
}

func newCacheCleanCommand() *cobra.Command {
	opts := cacheCleanOptions{}
	cmd := &cobra.Command{
		Use:   "clean",
		Short: "Remove the cached build-info report",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCacheClean(cmd.Context(), cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.Product, "product", "", "Product spec path")
	cmd.Flags().StringVar(&opts.CacheDir, "cache-dir", "", "Build-info cache directory")
	cmd.Flags().BoolVar(&opts.All, "all", false, "Remove the whole cache directory")

	_ = viper.BindPFlag("product", cmd.Flags().Lookup("product"))
	_ = viper.BindPFlag("cache_dir", cmd.Flags().Lookup("cache-dir"))

	return cmd
}

func runCacheClean(ctx context.Context, cmd *cobra.Command, opts cacheCleanOptions) error {
	service := newAppService()
	_, err := service.CacheClean(ctx, app.CacheCleanRequest{
		ProductPath: resolveString(cmd, opts.Product, "product", "product"),
		CacheDir:    resolveString(cmd, opts.CacheDir, "cache_dir", "cache-dir"),
		All:         opts.All,
	})
	if err != nil {
		return err
	}
	fmt.Println("cache cleaned")
	return nil
}
