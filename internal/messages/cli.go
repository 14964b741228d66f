package messages

// CLI messages for user-facing commands and flags.
const (
	// RootUse is the CLI command name.
	RootUse = "copilot-install"
	// RootShort is the short description for the root command.
	RootShort       = "Install GitHub Copilot instruction files into a Drupal project"
	RootVersionFlag = "Print version and exit"

	// VersionCommitFmt formats the commit hash for version display.
	VersionCommitFmt = "commit %s"
	VersionBuildFmt  = "built %s"
	VersionFullFmt   = "%s (%s)"
	VersionTemplate  = "{{.Version}}\n"

	// PostInstallUse is the post-install hook command name.
	PostInstallUse   = "post-install"
	PostInstallShort = "Install Copilot instruction files (package manager post-install hook)"
	// PostUpdateUse is the post-update hook command name.
	PostUpdateUse   = "post-update"
	PostUpdateShort = "Update Copilot instruction files (package manager post-update hook)"

	// PlanUse is the plan command name.
	PlanUse   = "plan"
	PlanShort = "Show what an install would copy, update, or skip without writing files"

	// FormatJSONUse is the format-json command usage.
	FormatJSONUse   = "format-json [file]"
	FormatJSONShort = "Pretty-print a JSON object with single-item arrays collapsed"

	FlagConfig      = "Path to a copilot-install.toml config file"
	FlagProjectRoot = "Project root directory (defaults to the parent of the vendor dir, else the working directory)"
	FlagVendorDir   = "Package manager vendor directory (defaults to <project-root>/vendor)"
	FlagPackage     = "Installed package name under the vendor directory"
	FlagPackageDir  = "Package source directory (overrides vendor dir and package name)"
	FlagNoGitignore = "Do not inspect or patch the project .gitignore"
	FlagVerbose     = "Increase diagnostic log verbosity (repeatable)"
	FlagDiffLines   = "Maximum diff lines shown per file"

	// HookFailedLogMsg is logged at debug level when a hook finishes with a handled failure.
	HookFailedLogMsg = "install finished with a handled failure"

	FormatJSONReadFmt   = "read %s: %w"
	FormatJSONDecodeFmt = "decode JSON from %s: %w"
	FormatJSONStdin     = "stdin"
)
