package main

import (
	"github.com/spf13/cobra"

	"github.com/square360/copilot-drupal-instructions/internal/install"
	"github.com/square360/copilot-drupal-instructions/internal/logging"
	"github.com/square360/copilot-drupal-instructions/internal/messages"
)

var installRun = install.Run

// newHookCmd builds a lifecycle hook command. Both hooks run the same installer; the
// event name only appears in output.
func newHookCmd(event string, short string, flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   event,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			paths, err := resolvePaths(flags)
			if err != nil {
				return err
			}
			summary, err := installRun(paths.ProjectRoot, install.Options{
				PackageDir:     paths.PackageDir,
				Event:          event,
				PatchGitignore: paths.PatchGitignore,
				Out:            cmd.OutOrStdout(),
				ErrOut:         cmd.ErrOrStderr(),
				System:         install.RealSystem{},
			})
			if err != nil {
				// Already reported to the user; the host package manager must not fail.
				logger := logging.GetLogger("hook")
				logger.Debug().Err(err).Str("event", event).Interface("summary", summary).Msg(messages.HookFailedLogMsg)
			}
			return nil
		},
	}
}
