package install

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"strings"

	"github.com/square360/copilot-drupal-instructions/internal/messages"
)

// GitignoreStatus is the outcome of the .gitignore check.
type GitignoreStatus string

const (
	// GitignoreMissing means the project has no .gitignore; nothing was created.
	GitignoreMissing GitignoreStatus = "missing"
	// GitignoreCovered means existing lines already ignore both personal files.
	GitignoreCovered GitignoreStatus = "covered"
	// GitignoreAppended means a block with the missing entries was appended.
	GitignoreAppended GitignoreStatus = "appended"
	// GitignoreFailed means reading or appending failed; entries were printed instead.
	GitignoreFailed GitignoreStatus = "failed"
)

// GitignoreResult reports what the .gitignore check did and which entries it concerned.
type GitignoreResult struct {
	Status  GitignoreStatus
	Entries []string
}

// Canonical entries appended when a location is not covered.
var (
	gitignoreFolderEntry = path.Join(InstructionsDirRel, LocalInstructions)
	gitignoreRootEntry   = LocalInstructions
)

// Lines that already cover the personal instruction files. Matching is exact per trimmed
// line; commented, inline, or differently spaced variants do not count.
var (
	gitignoreGlobalPatterns = []string{
		"*.local.md",
		"**/*.local.md",
	}
	gitignoreFolderPatterns = []string{
		gitignoreFolderEntry,
		"/" + gitignoreFolderEntry,
		InstructionsDirRel + "/*.local.md",
		"/" + InstructionsDirRel + "/*.local.md",
	}
	gitignoreRootPatterns = []string{
		gitignoreRootEntry,
		"/" + gitignoreRootEntry,
	}
)

// GitignoreEntries returns the canonical entries for both personal instruction files.
func GitignoreEntries() []string {
	return []string{gitignoreFolderEntry, gitignoreRootEntry}
}

// MissingGitignoreEntries returns the canonical entries whose location is not covered by
// any line of content.
func MissingGitignoreEntries(content string) []string {
	lines := make(map[string]struct{})
	for _, line := range strings.Split(content, "\n") {
		lines[strings.TrimSpace(line)] = struct{}{}
	}
	if containsAnyLine(lines, gitignoreGlobalPatterns) {
		return nil
	}
	var missing []string
	if !containsAnyLine(lines, gitignoreFolderPatterns) {
		missing = append(missing, gitignoreFolderEntry)
	}
	if !containsAnyLine(lines, gitignoreRootPatterns) {
		missing = append(missing, gitignoreRootEntry)
	}
	return missing
}

func containsAnyLine(lines map[string]struct{}, patterns []string) bool {
	for _, pattern := range patterns {
		if _, ok := lines[pattern]; ok {
			return true
		}
	}
	return false
}

// gitignoreAppendBlock renders the text appended after content: a blank separator line
// unless content already ends with one, the header, and the entries. Lines end in CRLF
// when content already uses CRLF.
func gitignoreAppendBlock(content string, entries []string) string {
	newline := "\n"
	if strings.Contains(content, "\r\n") {
		newline = "\r\n"
	}
	var b strings.Builder
	switch {
	case content == "":
	case !strings.HasSuffix(content, "\n"):
		b.WriteString(newline + newline)
	case strings.HasSuffix(content, "\n\n"), strings.HasSuffix(content, "\n\r\n"):
	default:
		b.WriteString(newline)
	}
	b.WriteString(messages.GitignoreHeader)
	b.WriteString(newline)
	for _, entry := range entries {
		b.WriteString(entry)
		b.WriteString(newline)
	}
	return b.String()
}

// PatchGitignore makes sure the project's .gitignore ignores the personal instruction
// files, appending any missing entries. It never creates .gitignore and never returns
// an error: failures are reported on errOut along with the entries to add by hand.
func PatchGitignore(sys System, root string, out io.Writer, errOut io.Writer) GitignoreResult {
	return patchGitignore(sys, root, newReporter(out, errOut))
}

func patchGitignore(sys System, root string, rep *reporter) GitignoreResult {
	rep.line(messages.InstallSectionGitignore)
	gitignorePath := joinRel(root, GitignoreRel)
	data, err := sys.ReadFile(gitignorePath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			entries := GitignoreEntries()
			rep.notice(messages.GitignoreMissingAdvisory)
			rep.entries(entries)
			return GitignoreResult{Status: GitignoreMissing, Entries: entries}
		}
		return gitignoreFailure(rep, fmt.Errorf(messages.InstallFailedReadFmt, gitignorePath, err), GitignoreEntries())
	}

	content := string(data)
	missing := MissingGitignoreEntries(content)
	if len(missing) == 0 {
		rep.success(messages.GitignoreAlreadyCovered)
		return GitignoreResult{Status: GitignoreCovered}
	}
	block := gitignoreAppendBlock(content, missing)
	if err := sys.AppendFileLocked(gitignorePath, []byte(block)); err != nil {
		return gitignoreFailure(rep, err, missing)
	}
	rep.success(fmt.Sprintf(messages.GitignoreAddedFmt, len(missing)))
	return GitignoreResult{Status: GitignoreAppended, Entries: missing}
}

func gitignoreFailure(rep *reporter, err error, entries []string) GitignoreResult {
	rep.fail(fmt.Sprintf(messages.GitignoreWriteErrFmt, err))
	rep.line(messages.GitignoreManualEntries)
	rep.entries(entries)
	return GitignoreResult{Status: GitignoreFailed, Entries: entries}
}
