package locator

import (
	"errors"
	"io/fs"
	"os"
	"syscall"
)

// StatFunc matches os.Stat; tests substitute failing implementations.
type StatFunc func(name string) (os.FileInfo, error)

// Exists reports whether absPath is present on disk. Any stat error counts
// as absent. The returned error is set only for failures other than a plain
// miss (permission denied, I/O errors) so callers can log them; it never
// changes the answer.
func Exists(stat StatFunc, absPath string) (bool, error) {
	if stat == nil {
		stat = os.Stat
	}
	_, err := stat(absPath)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) || errors.Is(err, syscall.ENOTDIR) {
		return false, nil
	}
	return false, err
}
