//go:build tools

// Package file_server pins mockgen so that `go generate ./...` resolves it
// from go.mod (see the directives in contract/ and repositories/).
package file_server

import (
	_ "go.uber.org/mock/mockgen"
)
