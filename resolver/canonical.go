package resolver

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/samber/lo"
)

// maxSymlinkHops mirrors the kernel's MAXSYMLINKS.
const maxSymlinkHops = 40

var errTooManyLinks = errors.New("too many levels of symbolic links")

// canonicalize returns the absolute, symlink free form of path.
// Unlike filepath.EvalSymlinks it accepts a path whose leaf does not exist yet:
// the existing ancestors are resolved and the missing leaf is appended as is.
// A dangling symlink is not a missing leaf, its target is canonicalized in turn
// so the caller still sees where it points to.
func canonicalize(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	return canonicalizeHops(abs, 0)
}

func canonicalizeHops(path string, hops int) (string, error) {
	if hops > maxSymlinkHops {
		return "", fmt.Errorf("%s: %w", path, errTooManyLinks)
	}

	resolved, err := filepath.EvalSymlinks(path)
	if err == nil {
		return resolved, nil
	}
	if !isMissing(err) {
		return "", err
	}

	dir, leaf := filepath.Dir(path), filepath.Base(path)
	if dir == path {
		// Filesystem root reported as missing
		return "", err
	}
	parent, err := canonicalizeHops(dir, hops)
	if err != nil {
		return "", err
	}

	candidate := filepath.Join(parent, leaf)
	info, err := os.Lstat(candidate)
	switch {
	case isMissing(err):
		return candidate, nil
	case err != nil:
		return "", err
	case info.Mode()&fs.ModeSymlink == 0:
		// Created between EvalSymlinks and Lstat, nothing left to follow
		return candidate, nil
	}

	target, err := os.Readlink(candidate)
	if err != nil {
		return "", err
	}
	return followLink(parent, target, hops+1)
}

// followLink resolves a symlink target the way the kernel walks it: one component
// at a time, each prefix canonicalized before a ".." is applied to it, so that
// "sub/../x" climbs out of wherever sub really points to.
// Once a prefix is missing or is not a directory the target cannot exist, the
// remaining plain components are appended below that prefix and the ".." ones
// dropped, which keeps the result missing and inside the prefix.
func followLink(dir, target string, hops int) (string, error) {
	current := dir
	if filepath.IsAbs(target) {
		volume := filepath.VolumeName(target)
		current = volume + string(filepath.Separator)
		target = target[len(volume):]
	}
	components := strings.FieldsFunc(target, func(r rune) bool {
		return r < 0x80 && os.IsPathSeparator(uint8(r))
	})

	for i, component := range components {
		switch component {
		case ".":
			continue
		case "..":
			current = filepath.Dir(current)
			continue
		}

		next, err := canonicalizeHops(filepath.Join(current, component), hops)
		if err != nil {
			return "", err
		}
		current = next

		if i == len(components)-1 || isDir(current) {
			continue
		}
		rest := lo.Reject(components[i+1:], func(c string, _ int) bool { return c == "." || c == ".." })
		return filepath.Join(append([]string{current}, rest...)...), nil
	}
	return current, nil
}

// isMissing reports errors meaning the path cannot exist, including a path
// running through a regular file.
func isMissing(err error) bool {
	return errors.Is(err, fs.ErrNotExist) || errors.Is(err, syscall.ENOTDIR)
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// within reports whether candidate is base itself or one of its descendants.
// Both paths must be canonical.
func within(base, candidate string) bool {
	rel, err := filepath.Rel(base, candidate)
	if err != nil {
		return false
	}
	return rel == "." || filepath.IsLocal(rel)
}
