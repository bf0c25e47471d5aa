package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"kiwiforge/internal/app"
)

type filterOptions struct {
	BuildInfo string
}

func newFilterCommand() *cobra.Command {
	opts := filterOptions{}
	cmd := &cobra.Command{
		Use:   "filter PROJECT/REPOSITORY:PACKAGE...",
		Short: "Remove overridden providers from a build-info file in place",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFilter(cmd.Context(), cmd, opts, args)
		},
	}

	cmd.Flags().StringVar(&opts.BuildInfo, "buildinfo", "", "Build-info file path")
	_ = viper.BindPFlag("buildinfo", cmd.Flags().Lookup("buildinfo"))

	return cmd
}

func runFilter(ctx context.Context, cmd *cobra.Command, opts filterOptions, overrides []string) error {
	service := newAppService()
	result, err := service.Filter(ctx, app.FilterRequest{
		BuildInfoPath: resolveString(cmd, opts.BuildInfo, "buildinfo", "buildinfo"),
		Overrides:     overrides,
	})
	if err != nil {
		return err
	}
	fmt.Printf("removed %d overridden entries\n", result.Removed)
	return nil
}
