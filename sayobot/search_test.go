package sayobot

import (
	"context"
	"net"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"strings"
	"testing"
	"time"

	. "github.com/MingxuanGame/SayobotAPI/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchRequest_EmptyParameters(t *testing.T) {
	_, err := NewClient().Search().QueryURL()
	assert.ErrorIs(t, err, ErrEmptyParameters)

	_, err = NewClient().Search().Do(context.Background())
	assert.ErrorIs(t, err, ErrEmptyParameters)
}

func TestSearchRequest_OnePairPerField(t *testing.T) {
	request := NewClient().Search().
		SetLimit(20).
		SetOffset(40).
		SetRequestType(RequestTypeSearch).
		SetKeyword("kano").
		SetSubType(SubTypeTitle | SubTypeArtist).
		SetMode(GameModeAll).
		SetClass(ClassRankedApproved | ClassQualified | ClassLoved).
		SetGenre(GenreAny).
		SetLanguage(LangAny)
	got, err := request.QueryURL()
	require.NoError(t, err)

	base, rawQuery, ok := strings.Cut(got, "?")
	require.True(t, ok)
	assert.Equal(t, DefaultBeatmapListEndpoint, base)
	assert.Equal(t, "L=20&O=40&T=4&K=kano&S=3&M=15&C=7&G=1&E=1", rawQuery)
	assert.Len(t, strings.Split(rawQuery, "&"), 9)
}

func TestSearchRequest_KeywordEncoded(t *testing.T) {
	got, err := NewClient().Search().SetKeyword("kano & 鹿乃").QueryURL()
	require.NoError(t, err)
	assert.Equal(t, DefaultBeatmapListEndpoint+"?K=kano+%26+%E9%B9%BF%E4%B9%83", got)

	parsed, err := url.Parse(got)
	require.NoError(t, err)
	assert.Equal(t, "kano & 鹿乃", parsed.Query().Get("K"))
}

func TestSearchRequest_Filter(t *testing.T) {
	request := NewClient().Search().SetStarsRange(MustNewRange(0, 5))
	filter, ok := request.filter()
	require.True(t, ok)
	assert.Equal(t, "star:0~5,end", filter)

	got, err := request.QueryURL()
	require.NoError(t, err)
	parsed, err := url.Parse(got)
	require.NoError(t, err)
	assert.Equal(t, "star:0~5,end", parsed.Query().Get("R"))
}

func TestSearchRequest_FilterOrder(t *testing.T) {
	request := NewClient().Search().
		SetLengthRange(MustNewRange(60, 300)).
		SetBPMRange(MustNewRange(120, 180)).
		SetHPRange(MustNewRange(3, 6)).
		SetCSRange(MustNewRange(4, 4.5)).
		SetODRange(MustNewRange(7, 9)).
		SetARRange(MustNewRange(8, 10)).
		SetStarsRange(MustNewRange(5.5, 6))
	filter, ok := request.filter()
	require.True(t, ok)
	// od twice and no ar
	assert.Equal(t, "star:5.5~6,od:7~9,od:7~9,cs:4~4.5,hp:3~6,bpm:120~180,length:60~300,end", filter)
}

func TestSearchRequest_NoFilterWithoutRanges(t *testing.T) {
	request := NewClient().Search().SetKeyword("kano")
	_, ok := request.filter()
	assert.False(t, ok)

	got, err := request.QueryURL()
	require.NoError(t, err)
	parsed, err := url.Parse(got)
	require.NoError(t, err)
	assert.False(t, parsed.Query().Has("R"))
}

func TestSearchRequest_ARRangeAloneIsEmpty(t *testing.T) {
	_, err := NewClient().Search().SetARRange(MustNewRange(8, 10)).QueryURL()
	assert.ErrorIs(t, err, ErrEmptyParameters)
}

func TestSearchRequest_Do(t *testing.T) {
	fixture, err := os.ReadFile("testdata/search_kano.json")
	require.NoError(t, err)

	var gotQuery url.Values
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		assert.Equal(t, referer, r.Header.Get("Referer"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write(fixture)
	}))
	defer server.Close()

	client := NewClientWithEndpoints(Endpoints{BeatmapList: server.URL + "/beatmaplist"})
	response, err := client.Search().
		SetTimeout(2 * time.Second).
		SetRequestType(RequestTypeSearch).
		SetMode(GameModeStd).
		SetKeyword("kano").
		SetLimit(20).
		SetClass(ClassRankedApproved | ClassQualified | ClassLoved).
		SetGenre(GenreAny).
		SetLanguage(LangAny).
		SetStarsRange(MustNewRange(0, 5)).
		Do(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "kano", gotQuery.Get("K"))
	assert.Equal(t, "20", gotQuery.Get("L"))
	assert.Equal(t, "7", gotQuery.Get("C"))
	assert.Equal(t, "star:0~5,end", gotQuery.Get("R"))

	assert.Equal(t, 0, response.Status)
	require.Len(t, response.Data, 3)
	require.NotNil(t, response.Results)
	assert.Equal(t, 3, *response.Results)
	require.NotNil(t, response.EndId)
	assert.Equal(t, 3, *response.EndId)
	assert.Equal(t, 1001507, response.Data[0].BeatmapsetId)
	assert.Equal(t, "鹿乃", response.Data[0].ArtistUnicode)
	assert.Equal(t, 2488107, response.Data[0].PlayCount)
}

func TestSearchRequest_StatusError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	client := NewClientWithEndpoints(Endpoints{BeatmapList: server.URL})
	_, err := client.Search().SetKeyword("kano").Do(context.Background())
	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusBadGateway, statusErr.StatusCode)
}

func TestSearchRequest_MalformedJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"status":`))
	}))
	defer server.Close()

	client := NewClientWithEndpoints(Endpoints{BeatmapList: server.URL})
	_, err := client.Search().SetKeyword("kano").Do(context.Background())
	assert.ErrorIs(t, err, ErrMalformedResponse)
}

func TestSearchRequest_Timeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-time.After(2 * time.Second):
		case <-r.Context().Done():
		}
	}))
	defer server.Close()

	client := NewClientWithEndpoints(Endpoints{BeatmapList: server.URL})
	_, err := client.Search().SetKeyword("kano").SetTimeout(50 * time.Millisecond).Do(context.Background())
	var netErr net.Error
	require.ErrorAs(t, err, &netErr)
	assert.True(t, netErr.Timeout(), err.Error())
}
