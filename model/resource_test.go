package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResourceType_URLFormat(t *testing.T) {
	cases := map[ResourceType]string{
		ResourcePreviewImg:   "https://a.sayobot.cn/beatmaps/${sid}/covers/cover.webp",
		ResourcePreviewAudio: "https://a.sayobot.cn/preview/${sid}.mp3",
		ResourceFullSizeMap:  "https://dl.sayobot.cn/beatmaps/download/full/${sid}",
		ResourceNoVideoMap:   "https://dl.sayobot.cn/beatmaps/download/novideo/${sid}",
		ResourceMiniMap:      "https://dl.sayobot.cn/beatmaps/download/mini/${sid}",
	}
	for typ, want := range cases {
		assert.True(t, typ.IsTemplated(), typ.String())
		got, err := typ.URLFormat(Endpoints{})
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	for _, typ := range []ResourceType{ResourceFullAudio, ResourceFullCoverImg, ResourceVideo} {
		assert.False(t, typ.IsTemplated(), typ.String())
		_, err := typ.URLFormat(Endpoints{})
		assert.Error(t, err)
	}
}

func TestResourceType_URLFormatCustomEndpoint(t *testing.T) {
	got, err := ResourceMiniMap.URLFormat(Endpoints{Download: "http://127.0.0.1:8080/beatmaps/"})
	require.NoError(t, err)
	assert.Equal(t, "http://127.0.0.1:8080/beatmaps/download/mini/${sid}", got)
}

func TestParseResourceType(t *testing.T) {
	for i := ResourcePreviewImg; i <= ResourceMiniMap; i++ {
		typ, err := ParseResourceType(i.String())
		require.NoError(t, err)
		assert.Equal(t, i, typ)
	}
	_, err := ParseResourceType("osb")
	assert.Error(t, err)
	assert.Equal(t, "ResourceType(42)", ResourceType(42).String())
}
