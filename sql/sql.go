package sql

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	. "github.com/MingxuanGame/SayobotAPI/model"
)
import _ "github.com/ncruces/go-sqlite3/driver"
import _ "github.com/ncruces/go-sqlite3/embed"

// Database is the local history of finished downloads.
type Database struct {
	*sql.DB
}

func (d *Database) Close() error {
	return d.DB.Close()
}

// OpenDatabase opens (creating if needed) the history database at path.
func OpenDatabase(path string) (*Database, error) {
	if dir := filepath.Dir(path); dir != "" {
		err := os.MkdirAll(dir, 0755)
		if err != nil {
			return nil, fmt.Errorf("[history] failed to create directory: %w", err)
		}
	}
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}
	d := &Database{db}
	err = d.createTables()
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	return d, nil
}

func (d *Database) createTables() error {
	_, err := d.Exec(`CREATE TABLE IF NOT EXISTS downloads (
		id            INTEGER PRIMARY KEY AUTOINCREMENT,
		beatmap_id    INTEGER NOT NULL,
		resource_type INTEGER NOT NULL,
		filename      TEXT    NOT NULL,
		"path"        TEXT    NOT NULL,
		size          INTEGER NOT NULL DEFAULT 0,
		downloaded_at INTEGER NOT NULL
	)`)
	if err != nil {
		return fmt.Errorf("[history] failed to create table: %w", err)
	}
	return nil
}

// RecordDownload stores record and returns it with its id filled in.
func (d *Database) RecordDownload(record DownloadRecord) (DownloadRecord, error) {
	if record.DownloadedAt.IsZero() {
		record.DownloadedAt = time.Now()
	}
	result, err := d.Exec(`INSERT INTO downloads (beatmap_id, resource_type, filename, "path", size, downloaded_at) VALUES (?, ?, ?, ?, ?, ?)`,
		record.BeatmapId, int(record.ResourceType), record.Filename, record.Path, record.Size, record.DownloadedAt.Unix())
	if err != nil {
		return record, fmt.Errorf("[history] failed to insert download: %w", err)
	}
	record.Id, err = result.LastInsertId()
	if err != nil {
		return record, err
	}
	return record, nil
}

// ListDownloads returns the newest downloads first. limit <= 0 returns all.
func (d *Database) ListDownloads(limit int) ([]DownloadRecord, error) {
	query := `SELECT id, beatmap_id, resource_type, filename, "path", size, downloaded_at FROM downloads ORDER BY downloaded_at DESC, id DESC`
	var args []any
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}
	rows, err := d.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("[history] failed to query downloads: %w", err)
	}
	defer func(rows *sql.Rows) {
		_ = rows.Close()
	}(rows)

	var records []DownloadRecord
	for rows.Next() {
		var r DownloadRecord
		var typ int
		var downloadedAt int64
		err := rows.Scan(&r.Id, &r.BeatmapId, &typ, &r.Filename, &r.Path, &r.Size, &downloadedAt)
		if err != nil {
			return nil, err
		}
		r.ResourceType = ResourceType(typ)
		r.DownloadedAt = time.Unix(downloadedAt, 0)
		records = append(records, r)
	}
	return records, rows.Err()
}

// FindDownloads returns every recorded download of beatmapId, newest first.
func (d *Database) FindDownloads(beatmapId int) ([]DownloadRecord, error) {
	rows, err := d.Query(`SELECT id, resource_type, filename, "path", size, downloaded_at FROM downloads WHERE beatmap_id = ? ORDER BY downloaded_at DESC, id DESC`, beatmapId)
	if err != nil {
		return nil, fmt.Errorf("[history] failed to query downloads: %w", err)
	}
	defer func(rows *sql.Rows) {
		_ = rows.Close()
	}(rows)

	var records []DownloadRecord
	for rows.Next() {
		r := DownloadRecord{BeatmapId: beatmapId}
		var typ int
		var downloadedAt int64
		err := rows.Scan(&r.Id, &typ, &r.Filename, &r.Path, &r.Size, &downloadedAt)
		if err != nil {
			return nil, err
		}
		r.ResourceType = ResourceType(typ)
		r.DownloadedAt = time.Unix(downloadedAt, 0)
		records = append(records, r)
	}
	return records, rows.Err()
}

//goland:noinspection SqlWithoutWhere
func (d *Database) ClearDownloads() error {
	_, err := d.Exec("DELETE FROM downloads")
	return err
}
