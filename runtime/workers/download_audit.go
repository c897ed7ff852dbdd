package workers

import (
	"context"
	"file-server/domain"
	"file-server/repositories"
	"log/slog"
)

// DownloadAuditWorker persists download records out of the request path.
// Record only enqueues, Run drains the queue into the repository.
type DownloadAuditWorker struct {
	log        *slog.Logger
	repository repositories.IDownloadRepository
	records    chan domain.DownloadRecord
}

func NewDownloadAuditWorker(log *slog.Logger, repository repositories.IDownloadRepository, bufferSize int) *DownloadAuditWorker {
	return &DownloadAuditWorker{
		log:        log,
		repository: repository,
		records:    make(chan domain.DownloadRecord, bufferSize),
	}
}

// Record drops the record when the buffer is full, a slow disk must never
// slow down downloads.
func (w *DownloadAuditWorker) Record(record domain.DownloadRecord) {
	select {
	case w.records <- record:
	default:
		w.log.Warn("Audit buffer full, dropping record", "id", record.ID, "outcome", record.Outcome)
	}
}

func (w *DownloadAuditWorker) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			w.drain()
			return ctx.Err()
		case record := <-w.records:
			w.store(record)
		}
	}
}

// drain flushes what was queued before the shutdown.
func (w *DownloadAuditWorker) drain() {
	for {
		select {
		case record := <-w.records:
			w.store(record)
		default:
			return
		}
	}
}

func (w *DownloadAuditWorker) store(record domain.DownloadRecord) {
	if err := w.repository.StoreDownload(toDiskDownload(record)); err != nil {
		w.log.Error("Failed to store download record", "id", record.ID, "error", err)
	}
}

func toDiskDownload(record domain.DownloadRecord) repositories.DiskDownload {
	return repositories.DiskDownload{
		ID:         record.ID,
		Name:       record.Name,
		Outcome:    string(record.Outcome),
		Status:     record.Status,
		Bytes:      record.Bytes,
		MimeType:   record.MimeType,
		RemoteAddr: record.RemoteAddr,
		Duration:   record.Duration,
		At:         record.At,
	}
}
