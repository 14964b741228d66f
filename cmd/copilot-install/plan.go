package main

import (
	"github.com/spf13/cobra"

	"github.com/square360/copilot-drupal-instructions/internal/install"
	"github.com/square360/copilot-drupal-instructions/internal/messages"
)

var writePlan = install.WritePlan

func newPlanCmd(flags *globalFlags) *cobra.Command {
	var diffLines int
	cmd := &cobra.Command{
		Use:   messages.PlanUse,
		Short: messages.PlanShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			paths, err := resolvePaths(flags)
			if err != nil {
				return err
			}
			return writePlan(paths.ProjectRoot, install.PlanOptions{
				PackageDir:     paths.PackageDir,
				PatchGitignore: paths.PatchGitignore,
				DiffMaxLines:   diffLines,
				Out:            cmd.OutOrStdout(),
				System:         install.RealSystem{},
			})
		},
	}
	cmd.Flags().IntVar(&diffLines, "diff-lines", install.DefaultDiffMaxLines, messages.FlagDiffLines)
	return cmd
}
