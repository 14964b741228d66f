package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/mitchellh/go-homedir"

	"github.com/square360/copilot-drupal-instructions/internal/messages"
)

// VendorDirEnvVar overrides the vendor directory, matching the package manager's own variable.
const VendorDirEnvVar = "COMPOSER_VENDOR_DIR"

// LookupEnvFunc returns the value and presence of an environment variable.
type LookupEnvFunc func(key string) (string, bool)

// Paths holds the resolved locations used by one install run.
type Paths struct {
	ProjectRoot    string
	VendorDir      string
	PackageDir     string
	PatchGitignore bool
}

// Resolve layers defaults, the config file, the environment, and flags (in increasing
// precedence) into absolute paths. Relative paths are resolved against cwd.
//
// The project root defaults to the parent of an explicitly configured vendor dir, which
// is how the package manager lays projects out; otherwise it is cwd.
func Resolve(file Config, flags Config, lookupEnv LookupEnvFunc, cwd string) (Paths, error) {
	env := Config{}
	if lookupEnv != nil {
		if value, ok := lookupEnv(VendorDirEnvVar); ok && strings.TrimSpace(value) != "" {
			env.VendorDir = strings.TrimSpace(value)
		}
	}
	cfg := Merge(Merge(file, env), flags)

	pkg := strings.TrimSpace(cfg.Package)
	if cfg.Package != "" && pkg == "" {
		return Paths{}, fmt.Errorf(messages.ConfigPackageRequired)
	}
	if pkg == "" {
		pkg = DefaultPackage
	}

	var err error
	vendorDir := ""
	if cfg.VendorDir != "" {
		if vendorDir, err = absPath(cfg.VendorDir, cwd); err != nil {
			return Paths{}, err
		}
	}

	projectRoot := ""
	switch {
	case cfg.ProjectRoot != "":
		if projectRoot, err = absPath(cfg.ProjectRoot, cwd); err != nil {
			return Paths{}, err
		}
	case vendorDir != "":
		projectRoot = filepath.Dir(vendorDir)
	default:
		if projectRoot, err = absPath(cwd, cwd); err != nil {
			return Paths{}, err
		}
	}
	if vendorDir == "" {
		vendorDir = filepath.Join(projectRoot, "vendor")
	}

	packageDir := filepath.Join(vendorDir, filepath.FromSlash(pkg))
	if cfg.PackageDir != "" {
		if packageDir, err = absPath(cfg.PackageDir, cwd); err != nil {
			return Paths{}, err
		}
	}

	patchGitignore := true
	if cfg.Gitignore != nil {
		patchGitignore = *cfg.Gitignore
	}
	return Paths{
		ProjectRoot:    projectRoot,
		VendorDir:      vendorDir,
		PackageDir:     packageDir,
		PatchGitignore: patchGitignore,
	}, nil
}

// absPath expands a leading ~ and makes path absolute relative to base.
func absPath(path string, base string) (string, error) {
	expanded, err := homedir.Expand(path)
	if err != nil {
		return "", fmt.Errorf(messages.ConfigExpandPathFmt, path, err)
	}
	if !filepath.IsAbs(expanded) {
		expanded = filepath.Join(base, expanded)
	}
	abs, err := filepath.Abs(expanded)
	if err != nil {
		return "", fmt.Errorf(messages.ConfigAbsPathFmt, path, err)
	}
	return abs, nil
}
