package server

import (
	"errors"
	"file-server/contract"
	"file-server/domain"
	derrors "file-server/errors"
	"io"
	"log/slog"
	"mime"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"
)

const (
	nameParam         = "name"
	octetStream       = "application/octet-stream"
	requestIDHeader   = "X-Request-ID"
	maxRecordedName   = 255
	msgNameRequired   = "name parameter required"
	msgInvalidName    = "invalid filename"
	msgFileNotFound   = "file not found"
	msgInternalFailed = "internal server error"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type errorBody struct {
	Detail string `json:"detail"`
}

// DownloadServer serves GET /download?name=<filename>.
type DownloadServer struct {
	log        *slog.Logger
	service    contract.IDownloadService
	recorder   contract.IDownloadRecorder
	bufferPool *sync.Pool
}

func NewDownloadServer(
	log *slog.Logger,
	service contract.IDownloadService,
	recorder contract.IDownloadRecorder,
	chunkSizeKb int) *DownloadServer {
	chunk := chunkSizeKb * domain.KB
	return &DownloadServer{
		log:      log,
		service:  service,
		recorder: recorder,
		bufferPool: &sync.Pool{
			New: func() any {
				b := make([]byte, chunk)
				return &b
			},
		},
	}
}

func (s *DownloadServer) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	requestID := uuid.New()
	w.Header().Set(requestIDHeader, requestID.String())

	name := r.URL.Query().Get(nameParam)
	record := domain.DownloadRecord{
		ID:         requestID,
		Name:       truncate(name, maxRecordedName),
		RemoteAddr: r.RemoteAddr,
		At:         start.UTC(),
	}
	defer func() {
		record.Duration = time.Since(start)
		s.recorder.Record(record)
	}()

	download, err := s.service.Open(r.Context(), name)
	if err != nil {
		status, message, outcome := classify(err)
		record.Status, record.Outcome = status, outcome
		if status == http.StatusInternalServerError {
			s.log.Error("Download failed", "request_id", requestID, "name", name, "error", err)
		} else {
			s.log.Debug("Download refused", "request_id", requestID, "name", name, "status", status, "error", err)
		}
		writeError(w, status, message)
		return
	}
	defer download.File.Close()

	record.MimeType = download.RawMimeType
	header := w.Header()
	header.Set("Content-Type", octetStream)
	header.Set("Content-Length", strconv.FormatInt(download.Size, 10))
	header.Set("Content-Disposition", contentDisposition(download.Name))
	header.Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(http.StatusOK)
	record.Status, record.Outcome = http.StatusOK, domain.OutcomeServed

	if r.Method == http.MethodHead {
		return
	}

	bufPtr := s.bufferPool.Get().(*[]byte)
	defer s.bufferPool.Put(bufPtr)

	written, err := io.CopyBuffer(w, io.LimitReader(download.File, download.Size), *bufPtr)
	record.Bytes = written
	if err == nil && written != download.Size {
		err = io.ErrUnexpectedEOF
	}
	if err != nil {
		// Headers are gone already, the client sees a truncated body
		record.Outcome = domain.OutcomeInterrupted
		s.log.Warn("Streaming interrupted", "request_id", requestID, "path", download.Path, "written", written, "error", err)
		return
	}
	s.log.Info("File served", "request_id", requestID, "name", download.Name, "bytes", written,
		"mime_type", download.EffectiveMimeType)
}

// classify maps service errors to the HTTP answer, never echoing paths back.
func classify(err error) (int, string, domain.Outcome) {
	switch {
	case errors.Is(err, derrors.ErrMissingName):
		return http.StatusBadRequest, msgNameRequired, domain.OutcomeMissingName
	case errors.Is(err, derrors.ErrInvalidName):
		return http.StatusBadRequest, msgInvalidName, domain.OutcomeInvalidName
	case errors.Is(err, derrors.ErrFileNotFound), errors.Is(err, derrors.ErrNotRegularFile):
		return http.StatusNotFound, msgFileNotFound, domain.OutcomeNotFound
	default:
		return http.StatusInternalServerError, msgInternalFailed, domain.OutcomeFailed
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(errorBody{Detail: message})
}

// contentDisposition suggests name as the save name. Non ASCII and control
// characters are percent encoded (RFC 2231), quotes are escaped.
// FormatMediaType only fails on an invalid type or parameter key, both fixed here.
func contentDisposition(name string) string {
	return mime.FormatMediaType("attachment", map[string]string{"filename": name})
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
