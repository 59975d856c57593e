package model

import (
	"strings"
	"time"
)

const (
	DefaultBeatmapInfoEndpoint = "https://api.sayobot.cn/v2/beatmapinfo"
	DefaultBeatmapListEndpoint = "https://api.sayobot.cn/beatmaplist"
	DefaultPreviewEndpoint     = "https://a.sayobot.cn"
	DefaultDownloadEndpoint    = "https://dl.sayobot.cn/beatmaps"
)

// Endpoints are the base URLs of the Sayobot services.
type Endpoints struct {
	BeatmapInfo string `toml:"beatmap_info"`
	BeatmapList string `toml:"beatmap_list"`
	Preview     string `toml:"preview"`
	Download    string `toml:"download"`
}

// WithDefaults fills empty endpoints with the public Sayobot hosts.
func (e Endpoints) WithDefaults() Endpoints {
	if e.BeatmapInfo == "" {
		e.BeatmapInfo = DefaultBeatmapInfoEndpoint
	}
	if e.BeatmapList == "" {
		e.BeatmapList = DefaultBeatmapListEndpoint
	}
	if e.Preview == "" {
		e.Preview = DefaultPreviewEndpoint
	}
	if e.Download == "" {
		e.Download = DefaultDownloadEndpoint
	}
	e.Preview = strings.TrimSuffix(e.Preview, "/")
	e.Download = strings.TrimSuffix(e.Download, "/")
	return e
}

type GeneralConfig struct {
	LogLevel  int    `toml:"log_level"`
	HistoryDB string `toml:"history_db"`
}

type SayobotConfig struct {
	Endpoints Endpoints `toml:"endpoints"`
	// timeouts in seconds, 0 means the request default
	InfoTimeout     int `toml:"info_timeout"`
	SearchTimeout   int `toml:"search_timeout"`
	DownloadTimeout int `toml:"download_timeout"`
}

type DownloadConfig struct {
	Path   string `toml:"path"`
	Record bool   `toml:"record"`
}

type Config struct {
	General  GeneralConfig  `toml:"general"`
	Sayobot  SayobotConfig  `toml:"sayobot"`
	Download DownloadConfig `toml:"download"`
}

func Seconds(n int) time.Duration {
	return time.Duration(n) * time.Second
}

// DownloadRecord is one finished download kept in the history database.
type DownloadRecord struct {
	Id           int64
	BeatmapId    int
	ResourceType ResourceType
	Filename     string
	Path         string
	Size         int64
	DownloadedAt time.Time
}
