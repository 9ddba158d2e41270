package commons

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"

	"univadmin/internal/config"
)

const DefaultConfigPath = "config/config.yaml"

// LoadConfig loads a .env file from envPath when present, then builds the
// configuration. CONFIG_FILE overrides the YAML path.
func LoadConfig(envPath string) (*config.Config, error) {
	if err := godotenv.Load(envPath); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("loading env file: %w", err)
	}

	path := DefaultConfigPath
	if p := os.Getenv("CONFIG_FILE"); p != "" {
		path = p
	}

	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	return cfg, nil
}
