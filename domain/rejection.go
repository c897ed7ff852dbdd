package domain

import (
	"file-server/errors"
	"fmt"
)

// RejectionReason classifies why a filename cannot be served.
type RejectionReason int

const (
	MissingName RejectionReason = iota + 1
	InvalidName
)

func (r RejectionReason) String() string {
	switch r {
	case MissingName:
		return "missing_name"
	case InvalidName:
		return "invalid_name"
	default:
		return "unknown"
	}
}

// Rejection is returned by the path resolver instead of a path.
// It matches errors.ErrMissingName or errors.ErrInvalidName depending on Reason.
type Rejection struct {
	Reason RejectionReason
	Detail string
}

func Reject(reason RejectionReason, detail string) *Rejection {
	return &Rejection{Reason: reason, Detail: detail}
}

func (r *Rejection) Error() string {
	if r.Detail == "" {
		return r.sentinel().Error()
	}
	return fmt.Sprintf("%s: %s", r.sentinel(), r.Detail)
}

func (r *Rejection) Is(target error) bool {
	return target == r.sentinel()
}

func (r *Rejection) sentinel() error {
	if r.Reason == MissingName {
		return errors.ErrMissingName
	}
	return errors.ErrInvalidName
}
