package install

import (
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"

	"github.com/fatih/color"

	"github.com/square360/copilot-drupal-instructions/internal/messages"
)

// sectionHeaders introduce each group of assets in the progress output.
var sectionHeaders = map[AssetKind]string{
	AssetInstruction: messages.InstallSectionInstructions,
	AssetReadme:      messages.InstallSectionReadme,
	AssetExample:     messages.InstallSectionExample,
	AssetChangelog:   messages.InstallSectionChangelog,
	AssetEntryPoint:  messages.InstallSectionEntryPoint,
}

// reporter writes the human-readable install transcript. Write errors are discarded:
// failing to print progress must not change what the installer does.
type reporter struct {
	out     io.Writer
	errOut  io.Writer
	section AssetKind
	ok      *color.Color
	warn    *color.Color
	bad     *color.Color
}

func newReporter(out io.Writer, errOut io.Writer) *reporter {
	if out == nil {
		out = os.Stdout
	}
	if errOut == nil {
		errOut = os.Stderr
	}
	return &reporter{
		out:    out,
		errOut: errOut,
		ok:     color.New(color.FgGreen),
		warn:   color.New(color.FgYellow),
		bad:    color.New(color.FgRed),
	}
}

func (r *reporter) line(msg string) {
	_, _ = fmt.Fprintln(r.out, msg)
}

func (r *reporter) success(msg string) {
	_, _ = r.ok.Fprintln(r.out, msg)
}

func (r *reporter) notice(msg string) {
	_, _ = r.warn.Fprintln(r.out, msg)
}

func (r *reporter) warning(msg string) {
	_, _ = r.warn.Fprintln(r.errOut, msg)
}

func (r *reporter) fail(msg string) {
	_, _ = r.bad.Fprintln(r.errOut, msg)
}

func (r *reporter) action(action Action, err error) {
	if header, ok := sectionHeaders[action.Asset.Kind]; ok && action.Asset.Kind != r.section {
		r.section = action.Asset.Kind
		r.line(header)
	}
	asset := action.Asset
	if err != nil {
		r.fail(fmt.Sprintf(messages.InstallCopyFailedFmt, asset.Name(), err))
		return
	}
	switch action.Kind {
	case ActionCopy:
		switch asset.Kind {
		case AssetChangelog:
			r.success(messages.InstallChangelogTemplate)
		case AssetEntryPoint:
			r.success(messages.InstallEntryPointCreated)
		default:
			r.success(fmt.Sprintf(messages.InstallCopiedFmt, path.Base(asset.Source), asset.Dest))
		}
	case ActionUpdate:
		r.success(fmt.Sprintf(messages.InstallUpdatedFmt, asset.Name(), path.Dir(asset.Dest)+"/"))
	case ActionFallback:
		r.success(messages.InstallChangelogDefault)
	case ActionSkip:
		switch asset.Kind {
		case AssetChangelog:
			r.line(messages.InstallChangelogProtected)
		case AssetEntryPoint:
			r.notice(messages.InstallEntryPointSkipped)
		default:
			r.notice(fmt.Sprintf(messages.InstallSkippedFmt, asset.Name()))
		}
	case ActionMissing:
		r.warning(fmt.Sprintf(messages.InstallSourceMissingFmt, asset.Source))
	}
}

func (r *reporter) entries(entries []string) {
	for _, entry := range entries {
		_, _ = fmt.Fprintf(r.out, messages.GitignoreEntryLineFmt, entry)
	}
}

func (r *reporter) summary(s Summary) {
	r.line("\n" + messages.InstallCompleteRule)
	r.success(messages.InstallComplete)
	r.line(messages.InstallCompleteRule + "\n")
	if s.Copied > 0 {
		r.success(fmt.Sprintf(messages.InstallSummaryCopiedFmt, s.Copied))
	}
	if s.Updated > 0 {
		r.success(fmt.Sprintf(messages.InstallSummaryUpdatedFmt, s.Updated))
	}
	if s.Skipped > 0 {
		r.notice(fmt.Sprintf(messages.InstallSummarySkippedFmt, s.Skipped))
	}
	if s.Warnings > 0 {
		r.warning(fmt.Sprintf(messages.InstallSummaryWarningsFmt, s.Warnings))
	}
	if s.Failed > 0 {
		r.fail(fmt.Sprintf(messages.InstallSummaryFailedFmt, s.Failed))
	}
}

func (r *reporter) nextSteps(root string, packageDir string) {
	r.line(messages.InstallNextSteps)
	readme := filepath.Join(packageDir, "README.md")
	if rel, err := filepath.Rel(root, readme); err == nil {
		readme = filepath.ToSlash(rel)
	}
	_, _ = fmt.Fprintf(r.out, messages.InstallDocumentationFmt, readme)
}
