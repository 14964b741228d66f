package install

import (
	"errors"
	"fmt"
	"os"

	"github.com/square360/copilot-drupal-instructions/internal/messages"
)

// ActionKind is the decision made for one asset.
type ActionKind string

const (
	// ActionCopy writes an asset whose destination does not exist yet.
	ActionCopy ActionKind = "copy"
	// ActionUpdate overwrites an existing destination with the package's copy.
	ActionUpdate ActionKind = "update"
	// ActionSkip leaves an existing destination untouched.
	ActionSkip ActionKind = "skip"
	// ActionMissing reports a source asset absent from the package.
	ActionMissing ActionKind = "missing"
	// ActionFallback writes the built-in changelog because the package template is absent.
	ActionFallback ActionKind = "fallback"
)

// Action is the planned outcome for one asset, with absolute source and destination paths.
type Action struct {
	Asset      Asset
	Kind       ActionKind
	SourcePath string
	DestPath   string
}

// BuildPlan decides what to do with every asset based on what exists on disk.
// It never writes.
func BuildPlan(sys System, root string, packageDir string) ([]Action, error) {
	assets := Assets()
	plan := make([]Action, 0, len(assets))
	for _, asset := range assets {
		action, err := planAsset(sys, root, packageDir, asset)
		if err != nil {
			return nil, err
		}
		plan = append(plan, action)
	}
	return plan, nil
}

func planAsset(sys System, root string, packageDir string, asset Asset) (Action, error) {
	action := Action{
		Asset:      asset,
		SourcePath: joinRel(packageDir, asset.Source),
		DestPath:   joinRel(root, asset.Dest),
	}
	destExists, err := pathExists(sys, action.DestPath)
	if err != nil {
		return Action{}, err
	}
	if asset.Policy == SkipIfExists && destExists {
		action.Kind = ActionSkip
		return action, nil
	}
	sourceExists, err := pathExists(sys, action.SourcePath)
	if err != nil {
		return Action{}, err
	}
	switch {
	case sourceExists && destExists:
		action.Kind = ActionUpdate
	case sourceExists:
		action.Kind = ActionCopy
	case asset.Kind == AssetChangelog:
		action.Kind = ActionFallback
	default:
		action.Kind = ActionMissing
	}
	return action, nil
}

func pathExists(sys System, path string) (bool, error) {
	if _, err := sys.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf(messages.InstallFailedStatFmt, path, err)
	}
	return true, nil
}
