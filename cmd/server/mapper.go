package main

import (
	"file-server/repositories"
	"fmt"

	jsoniter "github.com/json-iterator/go"
	"github.com/mama165/sdk-go/database"
)

// DownloadMapper renders an audit record in the Badger inspector.
func DownloadMapper(key string, val []byte) database.InspectRow {
	row := database.DefaultMapper(key, val)

	var download repositories.DiskDownload
	if err := jsoniter.ConfigCompatibleWithStandardLibrary.Unmarshal(val, &download); err != nil {
		row.Detail = "Error: unmarshal failed"
		return row
	}

	row.Type = download.Outcome
	row.Detail = fmt.Sprintf("%q %d %d bytes in %s", download.Name, download.Status, download.Bytes, download.Duration)
	return row
}
