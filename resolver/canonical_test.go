package resolver

import (
	"path/filepath"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCanonicalize(t *testing.T) {
	req := require.New(t)
	dir, err := filepath.EvalSymlinks(t.TempDir())
	req.NoError(err)
	writeFile(t, filepath.Join(dir, "real", "file.txt"), "x")
	symlink(t, filepath.Join(dir, "real"), filepath.Join(dir, "alias"))

	got, err := canonicalize(filepath.Join(dir, "alias", "file.txt"))
	req.NoError(err)
	req.Equal(filepath.Join(dir, "real", "file.txt"), got)

	// Missing leaf below a symlinked parent
	got, err = canonicalize(filepath.Join(dir, "alias", "missing.txt"))
	req.NoError(err)
	req.Equal(filepath.Join(dir, "real", "missing.txt"), got)

	// Missing intermediate directories are kept verbatim
	got, err = canonicalize(filepath.Join(dir, "a", "b", "c"))
	req.NoError(err)
	req.Equal(filepath.Join(dir, "a", "b", "c"), got)
}

func TestCanonicalize_DanglingSymlink(t *testing.T) {
	req := require.New(t)
	dir, err := filepath.EvalSymlinks(t.TempDir())
	req.NoError(err)
	outside, err := filepath.EvalSymlinks(t.TempDir())
	req.NoError(err)

	symlink(t, filepath.Join(outside, "not-yet.txt"), filepath.Join(dir, "absolute"))
	symlink(t, "target.txt", filepath.Join(dir, "relative"))

	got, err := canonicalize(filepath.Join(dir, "absolute"))
	req.NoError(err)
	req.Equal(filepath.Join(outside, "not-yet.txt"), got)

	got, err = canonicalize(filepath.Join(dir, "relative"))
	req.NoError(err)
	req.Equal(filepath.Join(dir, "target.txt"), got)
}

func TestCanonicalize_DanglingChain(t *testing.T) {
	req := require.New(t)
	dir, err := filepath.EvalSymlinks(t.TempDir())
	req.NoError(err)

	// link0 -> link1 -> ... -> linkN -> nothing, every link of the chain is dangling
	chain := func(prefix string, length int) {
		for i := 0; i < length; i++ {
			symlink(t, prefix+strconv.Itoa(i+1), filepath.Join(dir, prefix+strconv.Itoa(i)))
		}
	}

	chain("short", 5)
	got, err := canonicalize(filepath.Join(dir, "short0"))
	req.NoError(err)
	req.Equal(filepath.Join(dir, "short5"), got)

	chain("long", maxSymlinkHops+2)
	_, err = canonicalize(filepath.Join(dir, "long0"))
	req.ErrorIs(err, errTooManyLinks)
}
