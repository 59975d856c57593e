package model

import (
	"fmt"
	"strings"
)

// SidPlaceholder is substituted with the beatmap id in resource URL templates.
const SidPlaceholder = "${sid}"

type ResourceType int

//goland:noinspection ALL
const (
	ResourcePreviewImg ResourceType = iota
	ResourcePreviewAudio
	ResourceFullAudio
	ResourceFullCoverImg
	ResourceVideo
	ResourceFullSizeMap
	ResourceNoVideoMap
	ResourceMiniMap
)

var resourceTypeNames = [...]string{
	ResourcePreviewImg:   "preview_img",
	ResourcePreviewAudio: "preview_audio",
	ResourceFullAudio:    "full_audio",
	ResourceFullCoverImg: "full_cover_img",
	ResourceVideo:        "video",
	ResourceFullSizeMap:  "full",
	ResourceNoVideoMap:   "no_video",
	ResourceMiniMap:      "mini",
}

func (t ResourceType) String() string {
	if t < 0 || int(t) >= len(resourceTypeNames) {
		return fmt.Sprintf("ResourceType(%d)", int(t))
	}
	return resourceTypeNames[t]
}

func ParseResourceType(s string) (ResourceType, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, name := range resourceTypeNames {
		if name == s {
			return ResourceType(i), nil
		}
	}
	return 0, fmt.Errorf("unknown resource type %q", s)
}

// IsTemplated reports whether the URL of t only depends on the beatmap id.
func (t ResourceType) IsTemplated() bool {
	switch t {
	case ResourcePreviewImg, ResourcePreviewAudio, ResourceFullSizeMap, ResourceNoVideoMap, ResourceMiniMap:
		return true
	}
	return false
}

// URLFormat returns the URL template of t, containing SidPlaceholder.
func (t ResourceType) URLFormat(endpoints Endpoints) (string, error) {
	endpoints = endpoints.WithDefaults()
	switch t {
	case ResourcePreviewImg:
		return endpoints.Preview + "/beatmaps/" + SidPlaceholder + "/covers/cover.webp", nil
	case ResourcePreviewAudio:
		return endpoints.Preview + "/preview/" + SidPlaceholder + ".mp3", nil
	case ResourceFullSizeMap:
		return endpoints.Download + "/download/full/" + SidPlaceholder, nil
	case ResourceNoVideoMap:
		return endpoints.Download + "/download/novideo/" + SidPlaceholder, nil
	case ResourceMiniMap:
		return endpoints.Download + "/download/mini/" + SidPlaceholder, nil
	default:
		return "", fmt.Errorf("not supported url format for %s", t)
	}
}
