package sayobot

import (
	"context"
	"fmt"
	"strconv"
	"time"

	. "github.com/MingxuanGame/SayobotAPI/model"
)

const DefaultInfoTimeout = 10 * time.Second

// InfoRequest looks up a beatmapset and all of its difficulties.
type InfoRequest struct {
	client  *Client
	key     *string
	match   *int
	timeout time.Duration
}

func newInfoRequest(client *Client) *InfoRequest {
	return &InfoRequest{client: client, timeout: DefaultInfoTimeout}
}

// SetKey sets the lookup key: a beatmapset id, a beatmap id or a name.
func (r *InfoRequest) SetKey(key string) *InfoRequest {
	r.key = &key
	return r
}

// SetMatchMode restricts how the key is interpreted by the server.
func (r *InfoRequest) SetMatchMode(mode int) *InfoRequest {
	r.match = &mode
	return r
}

func (r *InfoRequest) SetTimeout(timeout time.Duration) *InfoRequest {
	r.timeout = timeout
	return r
}

func (r *InfoRequest) QueryURL() (string, error) {
	q := &query{}
	if r.key != nil {
		q.set("0", *r.key)
	}
	if r.match != nil {
		q.set("1", strconv.Itoa(*r.match))
	}
	return queryURL(r.client.endpoints.BeatmapInfo, q)
}

func (r *InfoRequest) Do(ctx context.Context) (*BeatmapInfoResponse, error) {
	url, err := r.QueryURL()
	if err != nil {
		return nil, err
	}
	var response BeatmapInfoResponse
	err = r.client.getJSON(ctx, url, r.timeout, &response)
	if err != nil {
		return nil, err
	}
	if response.Status == 0 && response.Data.BeatmapsAmount != len(response.Data.Beatmaps) {
		return nil, fmt.Errorf("%w: bids_amount %d but got %d beatmaps",
			ErrMalformedResponse, response.Data.BeatmapsAmount, len(response.Data.Beatmaps))
	}
	return &response, nil
}
