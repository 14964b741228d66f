package fsutil

import (
	"errors"
	"fmt"
	"os"
	"time"

	"golang.org/x/sys/unix"

	"github.com/square360/copilot-drupal-instructions/internal/messages"
)

var flockFn = unix.Flock
var lockSleep = time.Sleep

var (
	lockWaitTimeout = 10 * time.Second
	lockPollEvery   = 50 * time.Millisecond
)

// AppendFileLocked appends data to an existing file while holding an exclusive advisory
// lock on it. The file is never created.
func AppendFileLocked(path string, data []byte) error {
	file, err := os.OpenFile(path, os.O_APPEND|os.O_WRONLY, 0)
	if err != nil {
		return fmt.Errorf(messages.FsutilOpenLockFmt, path, err)
	}
	defer func() {
		_ = file.Close()
	}()
	if err := lockFile(file); err != nil {
		return fmt.Errorf(messages.FsutilLockFmt, path, err)
	}
	defer func() {
		_ = unlockFile(file)
	}()
	if _, err := file.Write(data); err != nil {
		return fmt.Errorf(messages.FsutilAppendFmt, path, err)
	}
	return nil
}

// lockFile acquires an exclusive advisory lock on the file, polling until lockWaitTimeout.
func lockFile(file *os.File) error {
	deadline := time.Now().Add(lockWaitTimeout)
	for {
		err := flockFn(int(file.Fd()), unix.LOCK_EX|unix.LOCK_NB)
		if err == nil {
			return nil
		}
		if !errors.Is(err, unix.EWOULDBLOCK) && !errors.Is(err, unix.EAGAIN) {
			return err
		}
		if time.Now().After(deadline) {
			return fmt.Errorf(messages.FsutilLockTimeoutFmt, lockWaitTimeout)
		}
		lockSleep(lockPollEvery)
	}
}

// unlockFile releases the advisory lock on the file.
func unlockFile(file *os.File) error {
	return flockFn(int(file.Fd()), unix.LOCK_UN)
}
