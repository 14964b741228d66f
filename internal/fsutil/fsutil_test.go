package fsutil

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"golang.org/x/sys/unix"
)

func TestWriteFileAtomicCreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.md")
	if err := WriteFileAtomic(path, []byte("hello\n"), 0o644); err != nil {
		t.Fatalf("WriteFileAtomic error: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(data) != "hello\n" {
		t.Fatalf("unexpected content %q", string(data))
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if info.Mode().Perm() != 0o644 {
		t.Fatalf("unexpected perm %v", info.Mode().Perm())
	}
}

func TestWriteFileAtomicReplacesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.md")
	if err := os.WriteFile(path, []byte("old"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := WriteFileAtomic(path, []byte("new"), 0o644); err != nil {
		t.Fatalf("WriteFileAtomic error: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(data) != "new" {
		t.Fatalf("unexpected content %q", string(data))
	}
}

func TestWriteFileAtomicWritesThroughSymlink(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "shared", "overview.md")
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(target, []byte("shared\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	link := filepath.Join(dir, "overview.md")
	if err := os.Symlink(target, link); err != nil {
		t.Fatalf("symlink: %v", err)
	}

	if err := WriteFileAtomic(link, []byte("package\n"), 0o644); err != nil {
		t.Fatalf("WriteFileAtomic error: %v", err)
	}
	info, err := os.Lstat(link)
	if err != nil {
		t.Fatalf("lstat: %v", err)
	}
	if info.Mode()&os.ModeSymlink == 0 {
		t.Fatalf("expected %s to remain a symlink", link)
	}
	data, err := os.ReadFile(target)
	if err != nil {
		t.Fatalf("read target: %v", err)
	}
	if string(data) != "package\n" {
		t.Fatalf("expected link target to be updated, got %q", string(data))
	}
}

func TestWriteFileAtomicReplacesDanglingSymlink(t *testing.T) {
	dir := t.TempDir()
	link := filepath.Join(dir, "overview.md")
	if err := os.Symlink(filepath.Join(dir, "missing.md"), link); err != nil {
		t.Fatalf("symlink: %v", err)
	}
	if err := WriteFileAtomic(link, []byte("x"), 0o644); err != nil {
		t.Fatalf("WriteFileAtomic error: %v", err)
	}
	info, err := os.Lstat(link)
	if err != nil {
		t.Fatalf("lstat: %v", err)
	}
	if !info.Mode().IsRegular() {
		t.Fatalf("expected dangling link to be replaced by a regular file, got %v", info.Mode())
	}
}

func TestWriteFileAtomicMissingDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "out.md")
	if err := WriteFileAtomic(path, []byte("x"), 0o644); err == nil {
		t.Fatalf("expected error for missing directory")
	}
}

func TestWriteFileAtomicRenameErrorCleansTemp(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.md")
	orig := osRename
	t.Cleanup(func() { osRename = orig })
	osRename = func(string, string) error { return errors.New("rename failed") }

	err := WriteFileAtomic(path, []byte("x"), 0o644)
	if err == nil || !strings.Contains(err.Error(), "rename failed") {
		t.Fatalf("expected rename error, got %v", err)
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read dir: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("expected temp file cleanup, found %d entries", len(entries))
	}
}

func TestAppendFileLocked(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".gitignore")
	if err := os.WriteFile(path, []byte("vendor/\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := AppendFileLocked(path, []byte("node_modules/\n")); err != nil {
		t.Fatalf("AppendFileLocked error: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(data) != "vendor/\nnode_modules/\n" {
		t.Fatalf("unexpected content %q", string(data))
	}
}

func TestAppendFileLockedDoesNotCreate(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".gitignore")
	if err := AppendFileLocked(path, []byte("x\n")); err == nil {
		t.Fatalf("expected error for missing file")
	}
	if _, err := os.Stat(path); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected file to stay missing, got %v", err)
	}
}

func TestAppendFileLockedRetriesUntilLockFree(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".gitignore")
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	origFlock, origSleep := flockFn, lockSleep
	t.Cleanup(func() {
		flockFn = origFlock
		lockSleep = origSleep
	})
	attempts := 0
	flockFn = func(fd int, how int) error {
		if how&unix.LOCK_EX != 0 {
			attempts++
			if attempts < 3 {
				return unix.EWOULDBLOCK
			}
		}
		return nil
	}
	lockSleep = func(time.Duration) {}

	if err := AppendFileLocked(path, []byte("x\n")); err != nil {
		t.Fatalf("AppendFileLocked error: %v", err)
	}
	if attempts != 3 {
		t.Fatalf("expected 3 lock attempts, got %d", attempts)
	}
}

func TestAppendFileLockedTimeout(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".gitignore")
	if err := os.WriteFile(path, []byte("keep\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	origFlock, origSleep, origTimeout := flockFn, lockSleep, lockWaitTimeout
	t.Cleanup(func() {
		flockFn = origFlock
		lockSleep = origSleep
		lockWaitTimeout = origTimeout
	})
	flockFn = func(fd int, how int) error {
		if how&unix.LOCK_EX != 0 {
			return unix.EWOULDBLOCK
		}
		return nil
	}
	lockSleep = func(time.Duration) {}
	lockWaitTimeout = -time.Second

	err := AppendFileLocked(path, []byte("x\n"))
	if err == nil || !strings.Contains(err.Error(), "timed out") {
		t.Fatalf("expected timeout error, got %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(data) != "keep\n" {
		t.Fatalf("expected file unchanged, got %q", string(data))
	}
}
