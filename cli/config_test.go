package cli

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/MingxuanGame/SayobotAPI/base_service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func useConfig(t *testing.T, info string) {
	t.Helper()
	config := base_service.DefaultConfig()
	config.Sayobot.Endpoints.BeatmapInfo = info
	config.Sayobot.InfoTimeout = 3
	previous := base_service.GlobalConfig
	base_service.GlobalConfig = &config
	t.Cleanup(func() {
		base_service.GlobalConfig = previous
	})
}

func TestNewClient(t *testing.T) {
	useConfig(t, "http://127.0.0.1:1/v2/beatmapinfo")

	client, config, err := newClient()
	require.NoError(t, err)
	assert.Equal(t, *base_service.GlobalConfig, config)
	assert.Equal(t, "http://127.0.0.1:1/v2/beatmapinfo", client.Endpoints().BeatmapInfo)
	assert.Equal(t, 3, config.Sayobot.InfoTimeout)
}

func TestInfo(t *testing.T) {
	fixture, err := os.ReadFile("../sayobot/testdata/info_2045169.json")
	require.NoError(t, err)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write(fixture)
	}))
	defer server.Close()
	useConfig(t, server.URL)

	var out bytes.Buffer
	require.NoError(t, Info(context.Background(), &out, "2045169", -1))
	assert.Contains(t, out.String(), "977777 Camellia")
	assert.Contains(t, out.String(), "[2045169]")
}
