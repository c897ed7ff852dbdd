package repositories

import (
	"log/slog"
	"testing"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *badger.DB {
	db, err := badger.Open(badger.DefaultOptions(t.TempDir()).WithLoggingLevel(badger.ERROR))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func Test_Record_Multiple_Downloads_Newest_First(t *testing.T) {
	req := require.New(t)
	repository := NewDownloadRepository(openTestDB(t), slog.Default(), 0)

	at := time.Now().UTC()
	downloads := []DiskDownload{
		{ID: uuid.New(), Name: "report.pdf", Outcome: "served", Status: 200, Bytes: 42, At: at},
		{ID: uuid.New(), Name: "../../etc/passwd", Outcome: "invalid_name", Status: 400, At: at.Add(time.Minute)},
		{ID: uuid.New(), Name: "missing.txt", Outcome: "not_found", Status: 404, At: at.Add(2 * time.Minute)},
	}
	for _, d := range downloads {
		req.NoError(repository.StoreDownload(d))
	}

	fetched, err := repository.GetDownloads(0)
	req.NoError(err)
	req.Len(fetched, len(downloads))
	req.Equal("missing.txt", fetched[0].Name)
	req.Equal("../../etc/passwd", fetched[1].Name)
	req.Equal("report.pdf", fetched[2].Name)
	req.Equal(downloads[0].ID, fetched[2].ID)
	req.Equal(int64(42), fetched[2].Bytes)
	req.True(downloads[0].At.Equal(fetched[2].At))
}

func Test_Record_Multiple_Downloads_And_Limit(t *testing.T) {
	req := require.New(t)
	repository := NewDownloadRepository(openTestDB(t), slog.Default(), time.Hour)

	at := time.Now().UTC()
	for i := 0; i < 5; i++ {
		req.NoError(repository.StoreDownload(DiskDownload{
			ID:      uuid.New(),
			Name:    "file.bin",
			Outcome: "served",
			Status:  200,
			At:      at.Add(time.Duration(i) * time.Second),
		}))
	}

	fetched, err := repository.GetDownloads(2)
	req.NoError(err)
	req.Len(fetched, 2)
	req.True(fetched[0].At.After(fetched[1].At))
}

func Test_Get_Downloads_Empty_Database(t *testing.T) {
	req := require.New(t)
	repository := NewDownloadRepository(openTestDB(t), slog.Default(), 0)

	fetched, err := repository.GetDownloads(10)
	req.NoError(err)
	req.Empty(fetched)
}
