package messages

// Install progress, summary, and error messages.
const (
	InstallBannerFmt          = "\n🚀 Installing Copilot Drupal Instructions (%s)..."
	InstallPackageDirFoundFmt = "✅ Package directory found: %s"
	InstallPackageDirMissing  = "package directory not found"
	InstallPackageDirErrFmt   = "❌ Package directory not found: %s"
	InstallPackageDirStatFmt  = "failed to stat package directory %s: %w"
	InstallCreatingDir        = "📁 Creating .github/copilot directory..."
	InstallCreatedDir         = "✅ Created .github/copilot directory"
	InstallDirExists          = "📁 .github/copilot directory already exists"
	InstallCreateDirFailedFmt = "failed to create directory %s: %w"
	InstallCreateDirErrFmt    = "❌ Failed to create .github/copilot directory: %v"
	InstallFailedStatFmt      = "failed to stat %s: %w"
	InstallFailedReadFmt      = "failed to read %s: %w"
	InstallFailedWriteFmt     = "failed to write %s: %w"
	InstallRootRequired       = "project root is required"
	InstallSystemRequired     = "install system is required"
	InstallPackageDirRequired = "package directory is required"

	InstallSectionInstructions = "📄 Copying instruction files..."
	InstallSectionReadme       = "\n📝 Setting up README..."
	InstallSectionExample      = "\n📋 Setting up local example..."
	InstallSectionChangelog    = "\n📊 Setting up project changelog..."
	InstallSectionEntryPoint   = "\n🧭 Setting up Copilot entry point..."
	InstallSectionGitignore    = "\n🙈 Checking .gitignore..."

	InstallCopiedFmt             = "   ✅ Copied %s to %s"
	InstallUpdatedFmt            = "   🔄 Updated %s in %s"
	InstallSkippedFmt            = "   ⏭️  Skipped %s (already exists - preserving your version)"
	InstallSourceMissingFmt      = "   ⚠️  Warning: %s not found in package directory"
	InstallCopyFailedFmt         = "   ❌ Failed to copy %s: %v"
	InstallChangelogTemplate     = "   ✅ Created CHANGELOG-COPILOT.md from template at project root"
	InstallChangelogDefault      = "   ✅ Created CHANGELOG-COPILOT.md with default template at project root"
	InstallChangelogProtected    = "   🔒 Skipped CHANGELOG-COPILOT.md (already exists - your changelog is protected)"
	InstallEntryPointCreated     = "   ✅ Created .github/copilot-instructions.md"
	InstallEntryPointSkipped     = "   ⏭️  Skipped .github/copilot-instructions.md (already exists - preserving your version)"
	InstallCompleteRule          = "======================================================================"
	InstallComplete              = "✨ Copilot instructions installation complete!"
	InstallSummaryCopiedFmt      = "📦 Copied %d file(s)"
	InstallSummaryUpdatedFmt     = "🔄 Updated %d instruction file(s)"
	InstallSummarySkippedFmt     = "⏭️  Skipped %d existing file(s)"
	InstallSummaryWarningsFmt    = "⚠️  %d file(s) missing from the package"
	InstallSummaryFailedFmt      = "❌ %d file(s) could not be written"
	InstallNextSteps             = "\n📝 Next steps:\n   1. Review files in .github/copilot/\n   2. Customize CHANGELOG-COPILOT.md at project root with your project name\n   3. Run the auto-customization prompt from README.md to customize for your project\n   4. Optional: Copy .github/copilot/.copilot.local.md.example to\n      .github/copilot/.copilot.local.md for personal instructions\n"
	InstallDocumentationFmt      = "🔗 Documentation: %s\n"
	InstallUnexpectedActionFmt   = "unexpected plan action %q for %s"
	InstallPlanHeaderFmt         = "Install plan for %s (package %s):"
	InstallPlanLineFmt           = "  %-9s %s\n"
	InstallPlanGitignoreNone     = "  gitignore: .gitignore missing; nothing will be created"
	InstallPlanGitignoreCovered  = "  gitignore: personal instruction files already ignored"
	InstallPlanGitignoreAddFmt   = "  gitignore: will append %s\n"
	InstallPlanTruncatedFmt      = "... (%d more lines; use --diff-lines to show more)\n"
	InstallDiffPreviewRequired   = "diff preview path is required"

	GitignoreHeader            = "# Copilot personal instructions (not committed)"
	GitignoreMissingAdvisory   = "   ℹ️  No .gitignore found. Consider adding these entries:"
	GitignoreEntryLineFmt      = "      %s\n"
	GitignoreAlreadyCovered    = "   ✅ .gitignore already covers personal instruction files"
	GitignoreAddedFmt          = "   ✅ Added %d entr(ies) to .gitignore"
	GitignoreWriteErrFmt       = "   ❌ Failed to update .gitignore: %v"
	GitignoreManualEntries     = "   Add these entries manually:"
)
