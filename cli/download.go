package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	. "github.com/MingxuanGame/SayobotAPI/model"
	"github.com/MingxuanGame/SayobotAPI/sql"
	"github.com/dustin/go-humanize"
)

func ResolveURL(ctx context.Context, w io.Writer, sid int, typ string) error {
	resourceType, err := ParseResourceType(typ)
	if err != nil {
		return err
	}
	client, _, err := newClient()
	if err != nil {
		return err
	}
	url, err := client.Resource().SetSid(sid).SetResourceType(resourceType).URL(ctx)
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintln(w, url)
	return nil
}

// Download fetches the resource into path. An empty path or zero timeout
// falls back to the config.
func Download(ctx context.Context, w io.Writer, sid int, typ, path string, timeout time.Duration, noRecord bool) error {
	resourceType, err := ParseResourceType(typ)
	if err != nil {
		return err
	}
	client, config, err := newClient()
	if err != nil {
		return err
	}
	if path == "" {
		path = config.Download.Path
	}
	if timeout == 0 && config.Sayobot.DownloadTimeout > 0 {
		timeout = Seconds(config.Sayobot.DownloadTimeout)
	}

	request, err := client.Resource().SetSid(sid).SetResourceType(resourceType).SetDownloadPath(path)
	if err != nil {
		return err
	}
	if timeout > 0 {
		request.SetTimeout(timeout)
	}
	filename, err := request.Do(ctx)
	if err != nil {
		return err
	}

	fullPath := filepath.Join(path, filename)
	var size int64
	if stat, err := os.Stat(fullPath); err == nil {
		size = stat.Size()
	}
	_, _ = fmt.Fprintf(w, "Saved %s (%s)\n", fullPath, humanize.Bytes(uint64(size)))

	if noRecord || !config.Download.Record {
		return nil
	}
	db, err := sql.OpenDatabase(config.General.HistoryDB)
	if err != nil {
		logger.Warn().Err(err).Msg("Failed to open history database")
		return nil
	}
	defer func(db *sql.Database) {
		_ = db.Close()
	}(db)
	absPath, err := filepath.Abs(fullPath)
	if err != nil {
		absPath = fullPath
	}
	_, err = db.RecordDownload(DownloadRecord{
		BeatmapId:    sid,
		ResourceType: resourceType,
		Filename:     filename,
		Path:         absPath,
		Size:         size,
	})
	if err != nil {
		logger.Warn().Err(err).Int("sid", sid).Msg("Failed to record download")
	}
	return nil
}
