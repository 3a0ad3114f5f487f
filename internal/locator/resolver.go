package locator

import (
	"errors"
	"path/filepath"
)

var (
	// ErrEmptyPath is returned for requests without a file path.
	ErrEmptyPath = errors.New("invalid request: file path is required")
	// ErrNotFound is returned when a resolved path does not exist.
	ErrNotFound = errors.New("file not found")
)

// Resolve turns a raw request path into a cleaned absolute candidate.
// Relative paths are joined onto root when hasRoot is set, otherwise onto the
// process working directory. Nothing is read from disk; the only failure is
// an empty path.
func Resolve(filePath, root string, hasRoot bool) (string, error) {
	if filePath == "" {
		return "", ErrEmptyPath
	}

	if IsAbsolute(filePath) {
		return filepath.Clean(filePath), nil
	}

	if hasRoot {
		return filepath.Join(root, filePath), nil
	}

	abs, err := filepath.Abs(filePath)
	if err != nil {
		// Abs only fails when the working directory is gone; fall back to
		// the cleaned input so the existence check reports a miss.
		return filepath.Clean(filePath), nil
	}
	return abs, nil
}

// IsAbsolute reports whether p carries an absolute prefix for the host OS.
func IsAbsolute(p string) bool {
	return filepath.IsAbs(p)
}
