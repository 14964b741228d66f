package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/square360/copilot-drupal-instructions/internal/config"
	"github.com/square360/copilot-drupal-instructions/internal/logging"
	"github.com/square360/copilot-drupal-instructions/internal/messages"
)

// globalFlags holds persistent flags shared by every subcommand.
type globalFlags struct {
	configPath  string
	projectRoot string
	vendorDir   string
	pkg         string
	packageDir  string
	noGitignore bool
	verbose     int
}

func newRootCmd() *cobra.Command {
	flags := &globalFlags{}
	cmd := &cobra.Command{
		Use:           messages.RootUse,
		Short:         messages.RootShort,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(flags.verbose, cmd.ErrOrStderr())
		},
	}
	cmd.Flags().BoolP("version", "V", false, messages.RootVersionFlag)

	pf := cmd.PersistentFlags()
	pf.StringVar(&flags.configPath, "config", "", messages.FlagConfig)
	pf.StringVar(&flags.projectRoot, "project-root", "", messages.FlagProjectRoot)
	pf.StringVar(&flags.vendorDir, "vendor-dir", "", messages.FlagVendorDir)
	pf.StringVar(&flags.pkg, "package", "", messages.FlagPackage)
	pf.StringVar(&flags.packageDir, "package-dir", "", messages.FlagPackageDir)
	pf.BoolVar(&flags.noGitignore, "no-gitignore", false, messages.FlagNoGitignore)
	pf.CountVarP(&flags.verbose, "verbose", "v", messages.FlagVerbose)

	cmd.AddCommand(
		newHookCmd(messages.PostInstallUse, messages.PostInstallShort, flags),
		newHookCmd(messages.PostUpdateUse, messages.PostUpdateShort, flags),
		newPlanCmd(flags),
		newFormatJSONCmd(),
	)
	return cmd
}

// resolvePaths loads the optional config file and layers environment and flags on top.
func resolvePaths(flags *globalFlags) (config.Paths, error) {
	cwd, err := getwd()
	if err != nil {
		return config.Paths{}, fmt.Errorf(messages.ConfigResolveWorkdirFmt, err)
	}
	var file *config.Config
	if flags.configPath != "" {
		file, err = config.LoadConfig(flags.configPath)
	} else {
		file, err = config.LoadOptionalConfig(filepath.Join(cwd, config.DefaultConfigFile))
	}
	if err != nil {
		return config.Paths{}, err
	}
	override := config.Config{
		ProjectRoot: flags.projectRoot,
		VendorDir:   flags.vendorDir,
		Package:     flags.pkg,
		PackageDir:  flags.packageDir,
	}
	if flags.noGitignore {
		disabled := false
		override.Gitignore = &disabled
	}
	return config.Resolve(*file, override, lookupEnv, cwd)
}
