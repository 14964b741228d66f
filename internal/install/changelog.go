package install

const fence = "```"

// defaultChangelogTemplate is written when the package's changelog template is missing.
const defaultChangelogTemplate = `# GitHub Copilot Development Changelog

## [Project Name] Drupal Site

This changelog tracks significant development activities, technical decisions, and improvements made to your Drupal site with assistance from GitHub Copilot.

**Instructions:** Update this file after each significant development session to maintain a record of changes and decisions.

---

## Template for Entries

` + fence + `markdown
## [YYYY-MM-DD] - Brief Description

### Added
- New features or files added

### Changed
- Modifications to existing functionality

### Fixed
- Bug fixes and corrections

### Technical Details
- Implementation notes
- Code patterns used
- Decisions made and reasoning

### Testing
- How changes were verified
- Manual testing performed
- Issues encountered and resolved
` + fence + `

---

## Notes

- Always update this file at the end of significant development sessions
- Include enough technical detail for future developers to understand decisions
- Reference related files, functions, or modules when applicable
- Document any deviations from standard patterns and why they were necessary
- This file is project-specific and will not be overwritten by package updates
`

// DefaultChangelogTemplate returns the built-in changelog scaffold.
func DefaultChangelogTemplate() string {
	return defaultChangelogTemplate
}
