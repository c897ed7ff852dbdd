//go:generate go run go.uber.org/mock/mockgen -source=download.go -destination=../mocks/mock_download_repository.go -package=mocks
package repositories

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"
)

const downloadPrefix = "dl:"

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type IDownloadRepository interface {
	StoreDownload(download DiskDownload) error
	GetDownloads(limit int) ([]DiskDownload, error)
}

type DownloadRepository struct {
	db        *badger.DB
	log       *slog.Logger
	retention time.Duration
}

// NewDownloadRepository stores records forever when retention is zero.
func NewDownloadRepository(db *badger.DB, log *slog.Logger, retention time.Duration) DownloadRepository {
	return DownloadRepository{db: db, log: log, retention: retention}
}

type DiskDownload struct {
	ID         uuid.UUID     `json:"id"`
	Name       string        `json:"name"`
	Outcome    string        `json:"outcome"`
	Status     int           `json:"status"`
	Bytes      int64         `json:"bytes"`
	MimeType   string        `json:"mime_type,omitempty"`
	RemoteAddr string        `json:"remote_addr,omitempty"`
	Duration   time.Duration `json:"duration"`
	At         time.Time     `json:"at"`
}

// StoreDownload persists a download record in BadgerDB.
// The key is formatted as "dl:{timestamp_padded}:{uuid}" so that a prefix scan
// returns records in chronological order, the UUID keeping two records of the
// same nanosecond apart.
func (d DownloadRepository) StoreDownload(download DiskDownload) error {
	key := fmt.Sprintf("%s%019d:%s", downloadPrefix, download.At.UnixNano(), download.ID)
	bytes, err := json.Marshal(download)
	if err != nil {
		return err
	}
	entry := badger.NewEntry([]byte(key), bytes)
	if d.retention > 0 {
		entry = entry.WithTTL(d.retention)
	}
	return d.db.Update(func(txn *badger.Txn) error {
		return txn.SetEntry(entry)
	})
}

// GetDownloads returns at most limit records, newest first.
// A limit lower or equal to zero returns every record.
func (d DownloadRepository) GetDownloads(limit int) ([]DiskDownload, error) {
	var downloads []DiskDownload
	err := d.db.View(func(txn *badger.Txn) error {
		prefix := []byte(downloadPrefix)
		options := badger.DefaultIteratorOptions
		options.Reverse = true
		options.Prefix = prefix
		it := txn.NewIterator(options)
		defer it.Close()

		// Reverse iteration starts from the greatest key below the seek key
		for it.Seek(append(prefix, 0xFF)); it.ValidForPrefix(prefix); it.Next() {
			if limit > 0 && len(downloads) == limit {
				d.log.Debug(fmt.Sprintf("Maximum of %d downloads reached", limit))
				break
			}
			err := it.Item().Value(func(value []byte) error {
				var download DiskDownload
				if err := json.Unmarshal(value, &download); err != nil {
					return err
				}
				downloads = append(downloads, download)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return downloads, nil
}
