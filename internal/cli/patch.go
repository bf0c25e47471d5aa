package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"kiwiforge/internal/app"
)

type patchOptions struct {
	Descriptor string
	BuildInfo  string
	Output     string
}

func newPatchCommand() *cobra.Command {
	opts := patchOptions{}
	cmd := &cobra.Command{
		Use:   "patch [PROJECT/REPOSITORY[:PACKAGE]...]",
		Short: "Patch an image descriptor's repositories from a build-info report",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPatch(cmd.Context(), cmd, opts, args)
		},
	}

	cmd.Flags().StringVar(&opts.Descriptor, "descriptor", "", "Image descriptor path")
	cmd.Flags().StringVar(&opts.BuildInfo, "buildinfo", "", "Build-info report path")
	cmd.Flags().StringVar(&opts.Output, "output", "", "Output path (default: alongside the descriptor)")

	_ = viper.BindPFlag("descriptor", cmd.Flags().Lookup("descriptor"))
	_ = viper.BindPFlag("buildinfo", cmd.Flags().Lookup("buildinfo"))
	_ = viper.BindPFlag("patch_output", cmd.Flags().Lookup("output"))

	return cmd
}

func runPatch(ctx context.Context, cmd *cobra.Command, opts patchOptions, overrides []string) error {
	service := newAppService()
	result, err := service.Patch(ctx, app.PatchRequest{
		DescriptorPath: resolveString(cmd, opts.Descriptor, "descriptor", "descriptor"),
		BuildInfoPath:  resolveString(cmd, opts.BuildInfo, "buildinfo", "buildinfo"),
		OutputPath:     resolveString(cmd, opts.Output, "patch_output", "output"),
		Overrides:      overrides,
	})
	if err != nil {
		return err
	}
	fmt.Printf("patched descriptor: %s (%d repositories)\n", result.OutputPath, result.Repositories)
	return nil
}
