package base_service

import (
	"errors"
	"os"

	. "github.com/MingxuanGame/SayobotAPI/model"
	"github.com/MingxuanGame/SayobotAPI/utils"
	"github.com/pelletier/go-toml/v2"
)

var ConfigPath = "./config.toml"

var GlobalConfig *Config

func DefaultConfig() Config {
	return Config{
		General: GeneralConfig{LogLevel: 1, HistoryDB: utils.DefaultHistoryDB()},
		Sayobot: SayobotConfig{
			Endpoints:       Endpoints{}.WithDefaults(),
			InfoTimeout:     10,
			SearchTimeout:   5,
			DownloadTimeout: 30,
		},
		Download: DownloadConfig{Path: ".", Record: true},
	}
}

// LoadConfig returns the loaded config, or the defaults when config.toml
// does not exist.
func LoadConfig() (Config, error) {
	if GlobalConfig != nil {
		return *GlobalConfig, nil
	}
	config, err := LoadConfigFromFile(ConfigPath)
	if errors.Is(err, os.ErrNotExist) {
		return DefaultConfig(), nil
	}
	return config, err
}

func LoadConfigFromFile(path string) (Config, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}

	config := DefaultConfig()
	err = toml.Unmarshal(content, &config)
	if err != nil {
		return Config{}, err
	}
	config.Sayobot.Endpoints = config.Sayobot.Endpoints.WithDefaults()
	if config.General.HistoryDB == "" {
		config.General.HistoryDB = utils.DefaultHistoryDB()
	}
	return config, nil
}

func SaveConfig(path string, config *Config) error {
	content, err := toml.Marshal(config)
	if err != nil {
		return err
	}
	return os.WriteFile(path, content, 0644)
}
