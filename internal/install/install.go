// Package install copies the package's Copilot instruction assets into a project.
package install

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"

	"github.com/square360/copilot-drupal-instructions/internal/logging"
	"github.com/square360/copilot-drupal-instructions/internal/messages"
)

// ErrPackageDirMissing is returned when the package source directory does not exist.
var ErrPackageDirMissing = errors.New(messages.InstallPackageDirMissing)

const (
	fileMode = 0o644
	dirMode  = 0o755
)

// Options controls installer behavior.
type Options struct {
	// PackageDir is the installed package holding the template assets.
	PackageDir string
	// Event names the lifecycle event (post-install, post-update) for output only.
	Event string
	// PatchGitignore enables the .gitignore check after copying.
	PatchGitignore bool
	Out            io.Writer
	ErrOut         io.Writer
	System         System
}

// Summary counts what one run did.
type Summary struct {
	Copied   int
	Updated  int
	Skipped  int
	Warnings int
	Failed   int
	// Gitignore is the zero value when the .gitignore check is disabled.
	Gitignore GitignoreResult
}

type installer struct {
	root       string
	packageDir string
	sys        System
	rep        *reporter
	log        zerolog.Logger
	summary    Summary
}

// Run installs the Copilot assets into root. Every problem is reported on the error
// writer; the returned error is non-nil only when the run stopped early (missing package
// dir, directory creation failure, unreadable project state).
func Run(root string, opts Options) (Summary, error) {
	if root == "" {
		return Summary{}, fmt.Errorf(messages.InstallRootRequired)
	}
	if opts.PackageDir == "" {
		return Summary{}, fmt.Errorf(messages.InstallPackageDirRequired)
	}
	if opts.System == nil {
		return Summary{}, fmt.Errorf(messages.InstallSystemRequired)
	}
	inst := &installer{
		root:       root,
		packageDir: opts.PackageDir,
		sys:        opts.System,
		rep:        newReporter(opts.Out, opts.ErrOut),
		log:        logging.GetLogger("install"),
	}
	inst.log.Debug().
		Str("event", opts.Event).
		Str("project_root", root).
		Str("package_dir", opts.PackageDir).
		Msg("resolved install paths")

	inst.rep.line(fmt.Sprintf(messages.InstallBannerFmt, opts.Event))
	if err := inst.checkPackageDir(); err != nil {
		return inst.summary, err
	}
	if err := inst.ensureInstructionsDir(); err != nil {
		return inst.summary, err
	}
	plan, err := BuildPlan(inst.sys, inst.root, inst.packageDir)
	if err != nil {
		inst.rep.fail(err.Error())
		return inst.summary, err
	}
	for _, action := range plan {
		inst.apply(action)
	}
	if opts.PatchGitignore {
		inst.summary.Gitignore = patchGitignore(inst.sys, inst.root, inst.rep)
	}
	inst.rep.summary(inst.summary)
	inst.rep.nextSteps(inst.root, inst.packageDir)
	return inst.summary, nil
}

func (inst *installer) checkPackageDir() error {
	info, err := inst.sys.Stat(inst.packageDir)
	switch {
	case err == nil && info.IsDir():
		inst.rep.success(fmt.Sprintf(messages.InstallPackageDirFoundFmt, inst.packageDir))
		return nil
	case err == nil || errors.Is(err, os.ErrNotExist):
		inst.rep.fail(fmt.Sprintf(messages.InstallPackageDirErrFmt, inst.packageDir))
		return fmt.Errorf("%w: %s", ErrPackageDirMissing, inst.packageDir)
	default:
		wrapped := fmt.Errorf(messages.InstallPackageDirStatFmt, inst.packageDir, err)
		inst.rep.fail(wrapped.Error())
		return wrapped
	}
}

func (inst *installer) ensureInstructionsDir() error {
	dir := joinRel(inst.root, InstructionsDirRel)
	if info, err := inst.sys.Stat(dir); err == nil && info.IsDir() {
		inst.rep.line(messages.InstallDirExists)
		return nil
	}
	inst.rep.line(messages.InstallCreatingDir)
	if err := inst.sys.MkdirAll(dir, dirMode); err != nil {
		inst.rep.fail(fmt.Sprintf(messages.InstallCreateDirErrFmt, err))
		return fmt.Errorf(messages.InstallCreateDirFailedFmt, dir, err)
	}
	inst.rep.success(messages.InstallCreatedDir)
	return nil
}

func (inst *installer) apply(action Action) {
	inst.log.Debug().
		Str("asset", action.Asset.Source).
		Str("policy", action.Asset.Policy.String()).
		Str("action", string(action.Kind)).
		Msg("asset decision")

	var err error
	switch action.Kind {
	case ActionSkip:
		inst.summary.Skipped++
	case ActionMissing:
		inst.summary.Warnings++
	case ActionCopy, ActionUpdate:
		err = inst.copyAsset(action)
	case ActionFallback:
		err = inst.sys.WriteFileAtomic(action.DestPath, []byte(DefaultChangelogTemplate()), fileMode)
		if err != nil {
			err = fmt.Errorf(messages.InstallFailedWriteFmt, action.DestPath, err)
		}
	default:
		err = fmt.Errorf(messages.InstallUnexpectedActionFmt, action.Kind, action.Asset.Source)
	}

	switch {
	case err != nil:
		inst.summary.Failed++
	case action.Kind == ActionUpdate:
		inst.summary.Updated++
	case action.Kind == ActionCopy || action.Kind == ActionFallback:
		inst.summary.Copied++
	}
	inst.rep.action(action, err)
}

func (inst *installer) copyAsset(action Action) error {
	data, err := inst.sys.ReadFile(action.SourcePath)
	if err != nil {
		return fmt.Errorf(messages.InstallFailedReadFmt, action.SourcePath, err)
	}
	if err := inst.sys.WriteFileAtomic(action.DestPath, data, fileMode); err != nil {
		return fmt.Errorf(messages.InstallFailedWriteFmt, action.DestPath, err)
	}
	return nil
}
