package env

import (
	"context"
	"os"

	"github.com/joho/godotenv"
	"github.com/sethvargo/go-envconfig"
)

// Config carries the CLI's environment overrides. The library itself never
// reads the environment, a Stream is configured explicitly at construction.
type Config struct {
	Host      string `env:"VMDSTREAM_HOST"`
	Port      int    `env:"VMDSTREAM_PORT"`
	DebugHTTP bool   `env:"VMDSTREAM_DEBUG_HTTP"`
}

func LoadConfig(ctx context.Context) (*Config, error) {
	config := Config{}

	if err := godotenv.Load(".env.local"); err != nil {
		if !os.IsNotExist(err) {
			panic(err)
		}
	}

	if err := envconfig.Process(ctx, &config); err != nil {
		return nil, err
	}

	return &config, nil
}
