package base_service

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
)

func init() {
	config, err := LoadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Failed to load config, using defaults:", err)
		config = DefaultConfig()
	}
	LogLevel = zerolog.Level(config.General.LogLevel)
	GlobalConfig = &config
}
