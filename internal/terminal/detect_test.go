package terminal

import (
	"os"
	"testing"
)

func TestIsTerminalFileNil(t *testing.T) {
	if IsTerminalFile(nil) {
		t.Fatalf("expected nil file to be non-terminal")
	}
}

func TestIsTerminalFileRegularFile(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "out")
	if err != nil {
		t.Fatalf("create temp: %v", err)
	}
	defer func() { _ = f.Close() }()
	if IsTerminalFile(f) {
		t.Fatalf("expected regular file to be non-terminal")
	}
}

func TestIsTerminalFileUsesDetector(t *testing.T) {
	orig := isTerminal
	t.Cleanup(func() { isTerminal = orig })

	var gotFd int
	isTerminal = func(fd int) bool {
		gotFd = fd
		return true
	}
	if !IsTerminalFile(os.Stderr) {
		t.Fatalf("expected detector result to be returned")
	}
	if gotFd != int(os.Stderr.Fd()) {
		t.Fatalf("expected stderr fd %d, got %d", os.Stderr.Fd(), gotFd)
	}
}
