package cli

import (
	"fmt"
	"os"

	"github.com/MingxuanGame/SayobotAPI/base_service"
	. "github.com/MingxuanGame/SayobotAPI/model"
	"github.com/MingxuanGame/SayobotAPI/sayobot"
)

var logger = base_service.GetLogger("cli")

func GenerateConfig() error {
	if _, err := os.Stat(base_service.ConfigPath); err == nil {
		return fmt.Errorf("config file already exists")
	}
	config := base_service.DefaultConfig()
	return base_service.SaveConfig(base_service.ConfigPath, &config)
}

// newClient loads the config and builds a client on its endpoints.
func newClient() (*sayobot.Client, Config, error) {
	config, err := base_service.LoadConfig()
	if err != nil {
		return nil, Config{}, err
	}
	return sayobot.NewClientWithEndpoints(config.Sayobot.Endpoints), config, nil
}
