package domain

import (
	"file-server/domain/mimetypes"
	"os"
)

// DownloadRequest is the only input a client controls.
type DownloadRequest struct {
	Name string `validate:"max=255"`
}

// Download is a regular file opened inside the base directory, ready to be streamed.
// The caller owns File and must close it.
type Download struct {
	Name              string
	Path              string
	Size              int64
	RawMimeType       string
	EffectiveMimeType mimetypes.MIME
	File              *os.File
}

const KB = 1024
