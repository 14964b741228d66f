package install

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/aymanbagabas/go-udiff"

	"github.com/square360/copilot-drupal-instructions/internal/messages"
)

// DefaultDiffMaxLines is the default maximum number of diff lines shown per file.
const DefaultDiffMaxLines = 40

// DiffPreview is a per-file unified diff between a project file and the package's copy.
type DiffPreview struct {
	Path        string
	UnifiedDiff string
	Truncated   bool
}

// PlanOptions controls the dry-run preview.
type PlanOptions struct {
	PackageDir     string
	PatchGitignore bool
	DiffMaxLines   int
	Out            io.Writer
	System         System
}

func normalizeDiffMaxLines(value int) int {
	if value <= 0 {
		return DefaultDiffMaxLines
	}
	return value
}

// WritePlan prints what Run would do for root without writing anything. Updates whose
// content would change include a unified diff.
func WritePlan(root string, opts PlanOptions) error {
	if root == "" {
		return fmt.Errorf(messages.InstallRootRequired)
	}
	if opts.PackageDir == "" {
		return fmt.Errorf(messages.InstallPackageDirRequired)
	}
	sys := opts.System
	if sys == nil {
		return fmt.Errorf(messages.InstallSystemRequired)
	}
	out := opts.Out
	if out == nil {
		out = os.Stdout
	}
	info, err := sys.Stat(opts.PackageDir)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf(messages.InstallPackageDirStatFmt, opts.PackageDir, err)
	}
	if err != nil || !info.IsDir() {
		return fmt.Errorf("%w: %s", ErrPackageDirMissing, opts.PackageDir)
	}

	plan, err := BuildPlan(sys, root, opts.PackageDir)
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintf(out, messages.InstallPlanHeaderFmt+"\n", root, opts.PackageDir)
	for _, action := range plan {
		_, _ = fmt.Fprintf(out, messages.InstallPlanLineFmt, action.Kind, action.Asset.Dest)
		if action.Kind != ActionUpdate {
			continue
		}
		preview, changed, err := buildDiffPreview(sys, action, opts.DiffMaxLines)
		if err != nil {
			return err
		}
		if changed {
			_, _ = fmt.Fprint(out, preview.UnifiedDiff)
		}
	}
	if opts.PatchGitignore {
		return writeGitignorePlan(sys, root, out)
	}
	return nil
}

func writeGitignorePlan(sys System, root string, out io.Writer) error {
	gitignorePath := joinRel(root, GitignoreRel)
	data, err := sys.ReadFile(gitignorePath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			_, _ = fmt.Fprintln(out, messages.InstallPlanGitignoreNone)
			return nil
		}
		return fmt.Errorf(messages.InstallFailedReadFmt, gitignorePath, err)
	}
	missing := MissingGitignoreEntries(string(data))
	if len(missing) == 0 {
		_, _ = fmt.Fprintln(out, messages.InstallPlanGitignoreCovered)
		return nil
	}
	_, _ = fmt.Fprintf(out, messages.InstallPlanGitignoreAddFmt, strings.Join(missing, ", "))
	return nil
}

// buildDiffPreview diffs the current destination against the package source. changed is
// false when both are identical.
func buildDiffPreview(sys System, action Action, maxLines int) (DiffPreview, bool, error) {
	relPath := action.Asset.Dest
	if relPath == "" {
		return DiffPreview{}, false, fmt.Errorf(messages.InstallDiffPreviewRequired)
	}
	current, err := sys.ReadFile(action.DestPath)
	if err != nil {
		return DiffPreview{}, false, fmt.Errorf(messages.InstallFailedReadFmt, action.DestPath, err)
	}
	incoming, err := sys.ReadFile(action.SourcePath)
	if err != nil {
		return DiffPreview{}, false, fmt.Errorf(messages.InstallFailedReadFmt, action.SourcePath, err)
	}
	if string(current) == string(incoming) {
		return DiffPreview{Path: relPath}, false, nil
	}
	rendered, truncated := renderTruncatedUnifiedDiff(relPath+" (current)", relPath+" (package)", string(current), string(incoming), maxLines)
	return DiffPreview{Path: relPath, UnifiedDiff: rendered, Truncated: truncated}, true, nil
}

func renderTruncatedUnifiedDiff(fromName string, toName string, fromContent string, toContent string, maxLines int) (string, bool) {
	limit := normalizeDiffMaxLines(maxLines)
	diff := udiff.Unified(fromName, toName, fromContent, toContent)
	lines := splitDiffLines(diff)
	if len(lines) <= limit {
		return ensureTrailingNewline(strings.Join(lines, "\n")), false
	}
	truncated := append([]string{}, lines[:limit]...)
	truncated = append(truncated, strings.TrimSuffix(fmt.Sprintf(messages.InstallPlanTruncatedFmt, len(lines)-limit), "\n"))
	return ensureTrailingNewline(strings.Join(truncated, "\n")), true
}

func splitDiffLines(content string) []string {
	trimmed := strings.TrimRight(content, "\n")
	if trimmed == "" {
		return []string{}
	}
	return strings.Split(trimmed, "\n")
}

func ensureTrailingNewline(content string) string {
	if content == "" {
		return ""
	}
	if strings.HasSuffix(content, "\n") {
		return content
	}
	return content + "\n"
}
