package services

import (
	"context"
	"errors"
	"file-server/contract"
	"file-server/domain"
	"file-server/domain/mimetypes"
	derrors "file-server/errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"syscall"

	"github.com/gabriel-vasile/mimetype"
)

const sniffLength = 512

type DownloadService struct {
	log      *slog.Logger
	resolver contract.IPathResolver
	root     *os.Root
}

// NewDownloadService opens the resolver's base directory as an os.Root,
// every file is then opened relative to it and cannot escape it even if
// the directory content changes after resolution.
func NewDownloadService(log *slog.Logger, resolver contract.IPathResolver) (*DownloadService, error) {
	root, err := os.OpenRoot(resolver.Base())
	if err != nil {
		return nil, fmt.Errorf("failed to open base directory: %w", err)
	}
	return &DownloadService{log: log, resolver: resolver, root: root}, nil
}

// Open resolves name and opens the regular file it designates.
// Rejections from the resolver are returned unchanged, a missing entry or an entry
// that is not a regular file yields errors.ErrFileNotFound or errors.ErrNotRegularFile.
func (s *DownloadService) Open(ctx context.Context, name string) (*domain.Download, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	path, err := s.resolver.Resolve(name)
	if err != nil {
		return nil, err
	}

	// Stat before opening: opening a FIFO would block until a writer shows up
	info, err := os.Stat(path)
	if err != nil {
		return nil, classify(err)
	}
	if !info.Mode().IsRegular() {
		return nil, fmt.Errorf("%s: %w", info.Name(), derrors.ErrNotRegularFile)
	}

	rel, err := filepath.Rel(s.resolver.Base(), path)
	if err != nil {
		return nil, err
	}
	file, err := s.root.Open(rel)
	if err != nil {
		return nil, classify(err)
	}

	opened, err := file.Stat()
	if err != nil {
		_ = file.Close()
		return nil, err
	}
	if !os.SameFile(info, opened) {
		_ = file.Close()
		s.log.Warn("File replaced between check and open", "name", name)
		return nil, fmt.Errorf("%s changed while opening: %w", info.Name(), derrors.ErrFileNotFound)
	}

	rawMimeType, err := sniff(file)
	if err != nil {
		_ = file.Close()
		return nil, err
	}

	s.log.Debug("File opened", "name", info.Name(), "size", opened.Size(), "mime_type", rawMimeType)
	return &domain.Download{
		Name:              filepath.Base(path),
		Path:              path,
		Size:              opened.Size(),
		RawMimeType:       rawMimeType,
		EffectiveMimeType: mimetypes.ToMIME(rawMimeType),
		File:              file,
	}, nil
}

// Close releases the base directory handle.
func (s *DownloadService) Close() error {
	return s.root.Close()
}

// sniff detects the media type from the first bytes and rewinds the file.
func sniff(file *os.File) (string, error) {
	buf := make([]byte, sniffLength)
	n, err := io.ReadFull(file, buf)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
		return "", fmt.Errorf("unable to sniff file: %w", err)
	}
	if _, err = file.Seek(0, io.SeekStart); err != nil {
		return "", fmt.Errorf("unable to rewind file: %w", err)
	}
	return mimetype.Detect(buf[:n]).String(), nil
}

func classify(err error) error {
	switch {
	case errors.Is(err, fs.ErrNotExist), errors.Is(err, syscall.ENOTDIR):
		return fmt.Errorf("%w: %v", derrors.ErrFileNotFound, err)
	case errors.Is(err, fs.ErrPermission):
		return fmt.Errorf("%w: %v", derrors.ErrAccessDenied, err)
	default:
		return err
	}
}
