package server

import (
	"io"
	"log/slog"
	"net/http"

	"github.com/gorilla/handlers"
)

const DownloadPath = "/download"

// NewRouter exposes the download handler on GET (and HEAD) /download only.
// Panics are turned into 500 answers, accessLog receives one line per request
// in Apache common log format when not nil.
func NewRouter(log *slog.Logger, download http.Handler, accessLog io.Writer) http.Handler {
	mux := http.NewServeMux()
	mux.Handle("GET "+DownloadPath, download)

	var handler http.Handler = mux
	handler = handlers.RecoveryHandler(
		handlers.RecoveryLogger(slog.NewLogLogger(log.Handler(), slog.LevelError)),
		handlers.PrintRecoveryStack(true),
	)(handler)

	if accessLog != nil {
		handler = handlers.LoggingHandler(accessLog, handler)
	}
	return handler
}
