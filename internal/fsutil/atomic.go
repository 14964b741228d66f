// Package fsutil provides filesystem helpers shared by the installer.
package fsutil

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/square360/copilot-drupal-instructions/internal/messages"
)

var (
	osCreateTemp = os.CreateTemp
	osChmod      = os.Chmod
	osRename     = os.Rename
)

// WriteFileAtomic writes data to a temp file in the destination directory and renames it
// over filename, so readers never observe a partially written file. When filename is a
// symlink to a regular file, the link's target is replaced and the link is kept.
func WriteFileAtomic(filename string, data []byte, perm os.FileMode) error {
	filename = resolveLinkTarget(filename)
	tmp, err := osCreateTemp(filepath.Dir(filename), "."+filepath.Base(filename)+".tmp-*")
	if err != nil {
		return fmt.Errorf(messages.FsutilCreateTempFileFmt, filename, err)
	}
	tmpName := tmp.Name()
	committed := false
	defer func() {
		if !committed {
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf(messages.FsutilWriteTempFileFmt, filename, err)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return fmt.Errorf(messages.FsutilSyncTempFileFmt, filename, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf(messages.FsutilCloseTempFileFmt, filename, err)
	}
	if err := osChmod(tmpName, perm); err != nil {
		return fmt.Errorf(messages.FsutilChmodTempFileFmt, filename, err)
	}
	if err := osRename(tmpName, filename); err != nil {
		return fmt.Errorf(messages.FsutilRenameTempFileFmt, filename, err)
	}
	committed = true
	return nil
}

// resolveLinkTarget returns the regular file a symlink points to, or filename itself when
// it is not a symlink or its target is missing or not a regular file.
func resolveLinkTarget(filename string) string {
	info, err := os.Lstat(filename)
	if err != nil || info.Mode()&os.ModeSymlink == 0 {
		return filename
	}
	target, err := filepath.EvalSymlinks(filename)
	if err != nil {
		return filename
	}
	targetInfo, err := os.Stat(target)
	if err != nil || !targetInfo.Mode().IsRegular() {
		return filename
	}
	return target
}
