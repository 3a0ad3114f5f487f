package locator

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/justradojko/intellij-community/internal/models"
)

func TestResolve(t *testing.T) {
	root := filepath.Join(string(filepath.Separator), "work", "proj")
	abs := filepath.Join(string(filepath.Separator), "abs", "file.txt")

	tests := []struct {
		name    string
		in      string
		hasRoot bool
		want    string
		wantErr error
	}{
		{name: "empty", in: "", hasRoot: true, wantErr: ErrEmptyPath},
		{name: "relative", in: "foo.txt", hasRoot: true, want: filepath.Join(root, "foo.txt")},
		{name: "nested relative", in: "bar/42/foo.txt", hasRoot: true, want: filepath.Join(root, "bar", "42", "foo.txt")},
		{name: "dot segments", in: "./a/../b/./c.txt", hasRoot: true, want: filepath.Join(root, "b", "c.txt")},
		{name: "escapes root", in: "../sibling/x", hasRoot: true, want: filepath.Join(string(filepath.Separator), "work", "sibling", "x")},
		{name: "absolute verbatim", in: abs, hasRoot: true, want: abs},
		{name: "absolute cleaned", in: filepath.Join(string(filepath.Separator), "abs") + string(filepath.Separator) + "." + string(filepath.Separator) + "file.txt", hasRoot: true, want: abs},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Resolve(tc.in, root, tc.hasRoot)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				assert.Empty(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestResolve_WithoutRoot(t *testing.T) {
	wd, err := os.Getwd()
	require.NoError(t, err)

	got, err := Resolve("foo.txt", "", false)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(wd, "foo.txt"), got)
}

func TestExists(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "present.txt")
	require.NoError(t, os.WriteFile(file, nil, 0o644))

	ok, err := Exists(nil, file)
	assert.True(t, ok)
	assert.NoError(t, err)

	ok, err = Exists(nil, filepath.Join(dir, "never", "created", "x.txt"))
	assert.False(t, ok)
	assert.NoError(t, err)

	// A regular file used as a parent directory.
	ok, err = Exists(nil, filepath.Join(file, "child"))
	assert.False(t, ok)
	assert.NoError(t, err)

	denied := func(string) (os.FileInfo, error) {
		return nil, &fs.PathError{Op: "stat", Path: file, Err: fs.ErrPermission}
	}
	ok, err = Exists(denied, file)
	assert.False(t, ok)
	assert.True(t, errors.Is(err, fs.ErrPermission))
}

func TestDecide(t *testing.T) {
	assert.Equal(t, models.OutcomeBadRequest, Decide(ErrEmptyPath, models.ResolvedLocation{Exists: true}))
	assert.Equal(t, models.OutcomeNotFound, Decide(errors.New("boom"), models.ResolvedLocation{}))
	assert.Equal(t, models.OutcomeNotFound, Decide(nil, models.ResolvedLocation{AbsolutePath: "/x"}))
	assert.Equal(t, models.OutcomeOK, Decide(nil, models.ResolvedLocation{AbsolutePath: "/x", Exists: true}))
	assert.Equal(t, models.OutcomeOK, Decide(nil, models.ResolvedLocation{AbsolutePath: "/x", Exists: true, IsExcluded: true}))
}
