package configs

import (
	"flag"
	"os"

	"github.com/dmartinrc/salachat/internal/infrastructure/env"
)

// DeterminePath resolves the config file location from the --config flag, the
// SALACHAT_CONFIG env var, or a list of conventional candidates. An empty
// result is valid: Load falls back to defaults and env overrides.
func DeterminePath() string {
	var configPath string

	flag.StringVar(&configPath, "config", "", "path to config file")
	flag.Parse()

	if configPath == "" {
		configPath = env.GetString("SALACHAT_CONFIG", "")
	}

	if configPath == "" {
		candidates := []string{
			"./config.yaml",
			"./config.yml",
			"/etc/salachat/config.yaml",
			"/app/config.yaml",
		}

		for _, p := range candidates {
			if _, err := os.Stat(p); err == nil {
				configPath = p
				break
			}
		}
	}

	return configPath
}
