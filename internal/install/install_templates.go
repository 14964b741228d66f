package install

import (
	"path"
	"path/filepath"
)

// CopyPolicy controls what happens when an asset's destination already exists.
type CopyPolicy int

const (
	// SkipIfExists leaves an existing destination untouched.
	SkipIfExists CopyPolicy = iota
	// AlwaysOverwrite replaces the destination with the package's copy on every run.
	AlwaysOverwrite
)

// String returns the policy name used in logs.
func (p CopyPolicy) String() string {
	switch p {
	case AlwaysOverwrite:
		return "always-overwrite"
	default:
		return "skip-if-exists"
	}
}

// AssetKind groups assets for progress output.
type AssetKind string

const (
	AssetInstruction AssetKind = "instruction"
	AssetReadme      AssetKind = "readme"
	AssetExample     AssetKind = "example"
	AssetChangelog   AssetKind = "changelog"
	AssetEntryPoint  AssetKind = "entry-point"
)

// Asset names one template file in the package and where it lands in the project.
// Source and Dest are slash-separated and relative to the package dir and project root.
type Asset struct {
	Source string
	Dest   string
	Policy CopyPolicy
	Kind   AssetKind
}

// Name returns the destination file name.
func (a Asset) Name() string {
	return path.Base(a.Dest)
}

// Project layout written by the installer.
const (
	InstructionsDirRel = ".github/copilot"
	EntryPointRel      = ".github/copilot-instructions.md"
	ChangelogRel       = "CHANGELOG-COPILOT.md"
	GitignoreRel       = ".gitignore"
	LocalInstructions  = ".copilot.local.md"

	packageTemplatesRel = "copilot-configuration/templates"
)

// instructionFiles are refreshed from the package on every run.
var instructionFiles = []string{
	"overview.md",
	"instructions.md",
	"drupal-modules.md",
	"themes-frontend.md",
	"accessibility.md",
	"security-performance.md",
	"session-checklist.md",
}

// Assets returns the fixed asset list in install order.
func Assets() []Asset {
	assets := make([]Asset, 0, len(instructionFiles)+4)
	for _, name := range instructionFiles {
		assets = append(assets, Asset{
			Source: name,
			Dest:   path.Join(InstructionsDirRel, name),
			Policy: AlwaysOverwrite,
			Kind:   AssetInstruction,
		})
	}
	return append(assets,
		Asset{Source: "PROJECT-README.md", Dest: path.Join(InstructionsDirRel, "README.md"), Policy: SkipIfExists, Kind: AssetReadme},
		Asset{Source: ".copilot.local.md.example", Dest: path.Join(InstructionsDirRel, ".copilot.local.md.example"), Policy: SkipIfExists, Kind: AssetExample},
		Asset{Source: path.Join(packageTemplatesRel, "CHANGELOG-COPILOT.md.template"), Dest: ChangelogRel, Policy: SkipIfExists, Kind: AssetChangelog},
		Asset{Source: path.Join(packageTemplatesRel, "copilot-instructions.md.template"), Dest: EntryPointRel, Policy: SkipIfExists, Kind: AssetEntryPoint},
	)
}

func joinRel(root string, rel string) string {
	return filepath.Join(root, filepath.FromSlash(rel))
}
