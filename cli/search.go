package cli

import (
	"context"
	"fmt"
	"io"

	. "github.com/MingxuanGame/SayobotAPI/model"
)

// SearchOptions are the raw flag values of the search command. Empty strings
// and negative numbers mean "not set".
type SearchOptions struct {
	Keyword  string
	Type     string
	Limit    int
	Offset   int
	SubType  string
	Mode     string
	Class    string
	Genre    string
	Language string

	Star, AR, OD, CS, HP, BPM, Length string
}

func Search(ctx context.Context, w io.Writer, opts SearchOptions) error {
	client, config, err := newClient()
	if err != nil {
		return err
	}
	request := client.Search()
	if config.Sayobot.SearchTimeout > 0 {
		request.SetTimeout(Seconds(config.Sayobot.SearchTimeout))
	}

	if opts.Keyword != "" {
		request.SetKeyword(opts.Keyword)
	}
	if opts.Type != "" {
		t, err := ParseRequestType(opts.Type)
		if err != nil {
			return err
		}
		request.SetRequestType(t)
	}
	if opts.Limit >= 0 {
		request.SetLimit(opts.Limit)
	}
	if opts.Offset >= 0 {
		request.SetOffset(opts.Offset)
	}

	if err := setFlags(opts.SubType, ParseSubType, request.SetSubType); err != nil {
		return err
	}
	if err := setFlags(opts.Mode, ParseGameMode, request.SetMode); err != nil {
		return err
	}
	if err := setFlags(opts.Class, ParseClass, request.SetClass); err != nil {
		return err
	}
	if err := setFlags(opts.Genre, ParseGenre, request.SetGenre); err != nil {
		return err
	}
	if err := setFlags(opts.Language, ParseLanguage, request.SetLanguage); err != nil {
		return err
	}

	for _, r := range []struct {
		value string
		set   func(Range)
	}{
		{opts.Star, func(r Range) { request.SetStarsRange(r) }},
		{opts.AR, func(r Range) { request.SetARRange(r) }},
		{opts.OD, func(r Range) { request.SetODRange(r) }},
		{opts.CS, func(r Range) { request.SetCSRange(r) }},
		{opts.HP, func(r Range) { request.SetHPRange(r) }},
		{opts.BPM, func(r Range) { request.SetBPMRange(r) }},
		{opts.Length, func(r Range) { request.SetLengthRange(r) }},
	} {
		if r.value == "" {
			continue
		}
		rng, err := ParseRange(r.value)
		if err != nil {
			return err
		}
		r.set(rng)
	}

	url, _ := request.QueryURL()
	logger.Debug().Str("url", url).Msg("Searching")
	response, err := request.Do(ctx)
	if err != nil {
		return err
	}
	printSearchResponse(w, response)
	return nil
}

func setFlags[T Flags, R any](value string, parse func(string) (T, error), set func(T) R) error {
	if value == "" {
		return nil
	}
	f, err := parse(value)
	if err != nil {
		return err
	}
	set(f)
	return nil
}

func printSearchResponse(w io.Writer, response *SearchResponse) {
	if response.Status != 0 {
		_, _ = fmt.Fprintf(w, "No result (status %d)\n", response.Status)
		return
	}
	for _, r := range response.Data {
		_, _ = fmt.Fprintf(w, "%8d  %s - %s (%s)  plays: %d  favourites: %d\n",
			r.BeatmapsetId, r.Artist, r.Title, r.Creator, r.PlayCount, r.FavouriteCount)
	}
	if response.Results != nil {
		_, _ = fmt.Fprintf(w, "%d results", *response.Results)
		if response.EndId != nil {
			_, _ = fmt.Fprintf(w, ", next page: --offset %d", *response.EndId)
		}
		_, _ = fmt.Fprintln(w)
	}
}
