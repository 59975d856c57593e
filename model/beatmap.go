package model

// BeatmapInfo is one difficulty of a beatmapset as returned by the v2 beatmap info API.
type BeatmapInfo struct {
	AR          float64 `json:"AR"`
	CS          float64 `json:"CS"`
	HP          float64 `json:"HP"`
	OD          float64 `json:"OD"`
	Aim         float64 `json:"aim"`
	Audio       string  `json:"audio"`
	Background  string  `json:"bg"`
	BeatmapId   int     `json:"bid"`
	Circles     int     `json:"circles"`
	Hit300      int     `json:"hit300window"`
	Img         string  `json:"img"`
	Length      int     `json:"length"`
	MaxCombo    int     `json:"maxcombo"`
	Mode        int     `json:"mode"`
	PassCount   int     `json:"passcount"`
	PlayCount   int     `json:"playcount"`
	PP          float64 `json:"pp"`
	PPAcc       float64 `json:"pp_acc"`
	PPAim       float64 `json:"pp_aim"`
	PPSpeed     float64 `json:"pp_speed"`
	Sliders     int     `json:"sliders"`
	Speed       float64 `json:"speed"`
	Spinners    int     `json:"spinners"`
	Star        float64 `json:"star"`
	StrainAim   string  `json:"strain_aim"`
	StrainSpeed string  `json:"strain_speed"`
	Version     string  `json:"version"`
}

type BeatmapsetInfo struct {
	Approved       int           `json:"approved"`
	ApprovedDate   int64         `json:"approved_date"`
	Artist         string        `json:"artist"`
	ArtistUnicode  string        `json:"artistU"`
	Beatmaps       []BeatmapInfo `json:"bid_data"`
	BeatmapsAmount int           `json:"bids_amount"`
	BPM            float64       `json:"bpm"`
	Creator        string        `json:"creator"`
	CreatorId      int           `json:"creator_id"`
	FavouriteCount int           `json:"favourite_count"`
	Genre          int           `json:"genre"`
	Language       int           `json:"language"`
	LastUpdate     int64         `json:"last_update"`
	LocalUpdate    int64         `json:"local_update"`
	Preview        int           `json:"preview"`
	BeatmapsetId   int           `json:"sid"`
	Source         string        `json:"source"`
	Storyboard     int           `json:"storyboard"`
	Tags           string        `json:"tags"`
	Title          string        `json:"title"`
	TitleUnicode   string        `json:"titleU"`
	Video          int           `json:"video"`
}

// FindBeatmap returns the difficulty with the given beatmap id.
func (s *BeatmapsetInfo) FindBeatmap(beatmapId int) (*BeatmapInfo, bool) {
	for i := range s.Beatmaps {
		if s.Beatmaps[i].BeatmapId == beatmapId {
			return &s.Beatmaps[i], true
		}
	}
	return nil, false
}

type BeatmapInfoResponse struct {
	Data   BeatmapsetInfo `json:"data"`
	Status int            `json:"status"`
}

// SearchResult is one beatmapset row of a beatmap list.
type SearchResult struct {
	Approved       int     `json:"approved"`
	Artist         string  `json:"artist"`
	ArtistUnicode  string  `json:"artistU"`
	Creator        string  `json:"creator"`
	FavouriteCount int     `json:"favourite_count"`
	LastUpdate     int64   `json:"lastupdate"`
	Modes          int     `json:"modes"`
	Order          float64 `json:"order"`
	PlayCount      int     `json:"play_count"`
	BeatmapsetId   int     `json:"sid"`
	Title          string  `json:"title"`
	TitleUnicode   string  `json:"titleU"`
}

// SearchResponse is a page of a beatmap list. EndId is the offset of the next page.
type SearchResponse struct {
	Data                []SearchResult `json:"data"`
	EndId               *int           `json:"endid,omitempty"`
	MatchArtistResults  *int           `json:"match_artist_results,omitempty"`
	MatchCreatorResults *int           `json:"match_creator_results,omitempty"`
	MatchTagsResults    *int           `json:"match_tags_results,omitempty"`
	MatchTitleResults   *int           `json:"match_title_results,omitempty"`
	MatchVersionResults *int           `json:"match_version_results,omitempty"`
	Results             *int           `json:"results,omitempty"`
	Status              int            `json:"status"`
	TimeCost            *int           `json:"time_cost,omitempty"`
}
