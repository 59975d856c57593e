package sql

import (
	"path/filepath"
	"testing"
	"time"

	. "github.com/MingxuanGame/SayobotAPI/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDatabase(t *testing.T) *Database {
	t.Helper()
	db, err := OpenDatabase(filepath.Join(t.TempDir(), "nested", "history.db"))
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = db.Close()
	})
	return db
}

func TestRecordAndListDownloads(t *testing.T) {
	db := openTestDatabase(t)
	base := time.Unix(1700000000, 0)

	first, err := db.RecordDownload(DownloadRecord{
		BeatmapId: 2045169, ResourceType: ResourceMiniMap, Filename: "a.osz", Path: "/tmp/a.osz", Size: 1024, DownloadedAt: base,
	})
	require.NoError(t, err)
	assert.NotZero(t, first.Id)
	_, err = db.RecordDownload(DownloadRecord{
		BeatmapId: 1001507, ResourceType: ResourcePreviewAudio, Filename: "b.mp3", Path: "/tmp/b.mp3", Size: 2048, DownloadedAt: base.Add(time.Minute),
	})
	require.NoError(t, err)

	records, err := db.ListDownloads(0)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, 1001507, records[0].BeatmapId)
	assert.Equal(t, ResourcePreviewAudio, records[0].ResourceType)
	assert.Equal(t, first, records[1])

	records, err = db.ListDownloads(1)
	require.NoError(t, err)
	assert.Len(t, records, 1)
}

func TestFindDownloads(t *testing.T) {
	db := openTestDatabase(t)
	for _, typ := range []ResourceType{ResourceFullSizeMap, ResourceNoVideoMap} {
		_, err := db.RecordDownload(DownloadRecord{BeatmapId: 1, ResourceType: typ, Filename: typ.String(), Path: typ.String()})
		require.NoError(t, err)
	}
	_, err := db.RecordDownload(DownloadRecord{BeatmapId: 2, ResourceType: ResourceMiniMap, Filename: "x", Path: "x"})
	require.NoError(t, err)

	records, err := db.FindDownloads(1)
	require.NoError(t, err)
	require.Len(t, records, 2)
	for _, r := range records {
		assert.Equal(t, 1, r.BeatmapId)
		assert.False(t, r.DownloadedAt.IsZero())
	}

	records, err = db.FindDownloads(3)
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestClearDownloads(t *testing.T) {
	db := openTestDatabase(t)
	_, err := db.RecordDownload(DownloadRecord{BeatmapId: 1, Filename: "x", Path: "x"})
	require.NoError(t, err)

	require.NoError(t, db.ClearDownloads())
	records, err := db.ListDownloads(0)
	require.NoError(t, err)
	assert.Empty(t, records)
}
