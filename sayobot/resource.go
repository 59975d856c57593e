package sayobot

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	. "github.com/MingxuanGame/SayobotAPI/model"
)

const DefaultResourceTimeout = 30 * time.Second

// ResourceRequest resolves and downloads a static resource of a beatmap.
type ResourceRequest struct {
	client       *Client
	sid          *int
	resourceType *ResourceType
	downloadPath string
	timeout      time.Duration
}

func newResourceRequest(client *Client) *ResourceRequest {
	return &ResourceRequest{client: client, downloadPath: ".", timeout: DefaultResourceTimeout}
}

func (r *ResourceRequest) SetSid(sid int) *ResourceRequest {
	r.sid = &sid
	return r
}

func (r *ResourceRequest) SetResourceType(resourceType ResourceType) *ResourceRequest {
	r.resourceType = &resourceType
	return r
}

func (r *ResourceRequest) SetTimeout(timeout time.Duration) *ResourceRequest {
	r.timeout = timeout
	return r
}

// SetDownloadPath sets the directory the file is written to. The directory
// must already exist.
func (r *ResourceRequest) SetDownloadPath(path string) (*ResourceRequest, error) {
	info, err := os.Stat(path)
	if err != nil || !info.IsDir() {
		return r, fmt.Errorf("%w: %s", ErrPathNotExist, path)
	}
	r.downloadPath = path
	return r, nil
}

// URL resolves the download URL. Templated resources never touch the network,
// full audio and cover image look up the beatmap to find their filename.
func (r *ResourceRequest) URL(ctx context.Context) (string, error) {
	if r.sid == nil {
		return "", ErrSidNotSet
	}
	if r.resourceType == nil {
		return "", ErrResourceTypeNotSet
	}
	sid, typ := *r.sid, *r.resourceType

	if typ.IsTemplated() {
		format, err := typ.URLFormat(r.client.endpoints)
		if err != nil {
			return "", err
		}
		return strings.ReplaceAll(format, SidPlaceholder, strconv.Itoa(sid)), nil
	}
	if typ != ResourceFullAudio && typ != ResourceFullCoverImg {
		return "", fmt.Errorf("%w: %s", ErrUnsupportedResource, typ)
	}

	info, err := r.client.BeatmapInfo().
		SetKey(strconv.Itoa(sid)).
		SetTimeout(r.timeout).
		Do(ctx)
	if err != nil {
		return "", fmt.Errorf("[sayobot] failed to get beatmap info: %w", err)
	}
	beatmap, ok := info.Data.FindBeatmap(sid)
	if !ok {
		return "", fmt.Errorf("%w: %d", ErrBeatmapNotFound, sid)
	}
	filename := beatmap.Audio
	if typ == ResourceFullCoverImg {
		filename = beatmap.Background
	}
	return r.fileURL(info.Data.BeatmapsetId, filename), nil
}

// fileURL builds files/<sid>/<name>; sid is the beatmapset id, not a difficulty id.
func (r *ResourceRequest) fileURL(sid int, filename string) string {
	return fmt.Sprintf("%s/files/%d/%s", r.client.endpoints.Download, sid, url.PathEscape(filename))
}
