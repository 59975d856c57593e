package cli

import (
	"fmt"
	"io"

	"github.com/MingxuanGame/SayobotAPI/base_service"
	. "github.com/MingxuanGame/SayobotAPI/model"
	"github.com/MingxuanGame/SayobotAPI/sql"
	"github.com/dustin/go-humanize"
)

// History prints recorded downloads. sid > 0 only shows that beatmap.
func History(w io.Writer, sid, limit int, clear bool) error {
	config, err := base_service.LoadConfig()
	if err != nil {
		return err
	}
	db, err := sql.OpenDatabase(config.General.HistoryDB)
	if err != nil {
		return err
	}
	defer func(db *sql.Database) {
		_ = db.Close()
	}(db)

	if clear {
		return db.ClearDownloads()
	}

	var records []DownloadRecord
	if sid > 0 {
		records, err = db.FindDownloads(sid)
	} else {
		records, err = db.ListDownloads(limit)
	}
	if err != nil {
		return err
	}
	if len(records) == 0 {
		_, _ = fmt.Fprintln(w, "No downloads recorded")
		return nil
	}
	for _, r := range records {
		_, _ = fmt.Fprintf(w, "%8d  %-14s  %9s  %-14s  %s\n",
			r.BeatmapId, r.ResourceType, humanize.Bytes(uint64(r.Size)), humanize.Time(r.DownloadedAt), r.Path)
	}
	return nil
}
