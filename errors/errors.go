package errors

import "fmt"

var (
	ErrWorkerPanic    = fmt.Errorf("worker panic")
	ErrMissingName    = fmt.Errorf("name parameter required")
	ErrInvalidName    = fmt.Errorf("invalid filename")
	ErrFileNotFound   = fmt.Errorf("file not found")
	ErrNotRegularFile = fmt.Errorf("entry is not a regular file")
	ErrAccessDenied   = fmt.Errorf("access denied")
	ErrNotADirectory  = fmt.Errorf("base path is not a directory")
)
