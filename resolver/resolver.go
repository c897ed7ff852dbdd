// Package resolver validates untrusted filenames against a single base directory.
//
// A name is accepted only if it passes a syntactic filter (no separators, no "..")
// and its canonical form, symlinks resolved, is the base directory or lies below it.
// The two checks are independent: a symlink planted in the base directory passes
// the first one and is caught by the second.
package resolver

import (
	"errors"
	"file-server/domain"
	derrors "file-server/errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/go-playground/validator/v10"
	"github.com/samber/lo"
)

var forbiddenSequences = []string{"/", `\`, "..", "\x00"}

type PathResolver struct {
	base      string
	validator *validator.Validate
}

// NewPathResolver creates dir when it is missing and pins its canonical form.
func NewPathResolver(dir string) (*PathResolver, error) {
	if strings.TrimSpace(dir) == "" {
		return nil, fmt.Errorf("base directory cannot be empty")
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("base directory %q: %w", dir, err)
	}
	if err = os.MkdirAll(abs, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create base directory: %w", err)
	}
	base, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return nil, fmt.Errorf("failed to canonicalize base directory: %w", err)
	}
	info, err := os.Stat(base)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%s: %w", base, derrors.ErrNotADirectory)
	}
	return &PathResolver{base: base, validator: validator.New()}, nil
}

// Base returns the canonical base directory.
func (p *PathResolver) Base() string {
	return p.base
}

// Resolve returns the canonical path name designates inside the base directory.
// Rejections are *domain.Rejection values, any other error comes from the
// filesystem while resolving symlinks.
func (p *PathResolver) Resolve(name string) (string, error) {
	if strings.TrimSpace(name) == "" {
		return "", domain.Reject(domain.MissingName, "")
	}
	if err := p.validator.Struct(domain.DownloadRequest{Name: name}); err != nil {
		return "", domain.Reject(domain.InvalidName, "name is too long")
	}
	if lo.SomeBy(forbiddenSequences, func(seq string) bool { return strings.Contains(name, seq) }) {
		return "", domain.Reject(domain.InvalidName, "name contains a path separator or a parent reference")
	}
	if filepath.IsAbs(name) || filepath.VolumeName(name) != "" {
		return "", domain.Reject(domain.InvalidName, "name is an absolute path")
	}

	candidate, err := canonicalize(filepath.Join(p.base, name))
	if err != nil {
		if errors.Is(err, syscall.ENAMETOOLONG) {
			return "", domain.Reject(domain.InvalidName, "name is too long")
		}
		return "", fmt.Errorf("failed to canonicalize %q: %w", name, err)
	}
	if !within(p.base, candidate) {
		return "", domain.Reject(domain.InvalidName, "name resolves outside the base directory")
	}
	return candidate, nil
}
