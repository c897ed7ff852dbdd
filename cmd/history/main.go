package main

import (
	"file-server/repositories"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"net/http"
	"os"
	"strconv"

	"github.com/dgraph-io/badger/v4"
	"github.com/gookit/color"
	"github.com/joho/godotenv"
	"github.com/olekukonko/tablewriter"
	"github.com/samber/lo"
)

func main() {
	_ = godotenv.Load()
	dbPath := flag.String("db", lo.CoalesceOrEmpty(os.Getenv("BADGER_FILEPATH"), "data/downloads"), "Path to badger DB")
	limit := flag.Int("limit", 50, "Number of records to print, 0 prints everything")
	flag.Parse()

	// BypassLockGuard allows reading while the server holds the lock
	opts := badger.DefaultOptions(*dbPath).
		WithReadOnly(true).
		WithBypassLockGuard(true).
		WithLogger(nil)

	db, err := badger.Open(opts)
	if err != nil {
		log.Fatal("Error while opening Badger: ", err)
	}
	defer db.Close()

	repository := repositories.NewDownloadRepository(db, slog.New(slog.NewTextHandler(io.Discard, nil)), 0)
	downloads, err := repository.GetDownloads(*limit)
	if err != nil {
		log.Fatal(err)
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"At", "Request ID", "Status", "Outcome", "Name", "Bytes", "Mime Type", "Remote", "Duration"})
	table.SetAutoWrapText(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")

	for _, d := range downloads {
		table.Append([]string{
			d.At.Local().Format("2006-01-02 15:04:05"),
			d.ID.String()[:8],
			colorStatus(d.Status),
			d.Outcome,
			strconv.Quote(d.Name),
			strconv.FormatInt(d.Bytes, 10),
			d.MimeType,
			d.RemoteAddr,
			d.Duration.String(),
		})
	}
	table.Render()
	fmt.Printf("%d record(s)\n", len(downloads))
}

func colorStatus(status int) string {
	text := strconv.Itoa(status)
	switch {
	case status >= http.StatusInternalServerError:
		return color.FgRed.Render(text)
	case status >= http.StatusBadRequest:
		return color.FgYellow.Render(text)
	default:
		return color.FgGreen.Render(text)
	}
}
