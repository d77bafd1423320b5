package config

import (
	"errors"
	"os"
	"strings"
)

const DefaultFiletype = "jpg"

type Config struct {
	StartDir   string
	StorageDir string
	Filetype   string
	DryRun     bool
	Verbose    bool
}

// ApplyEnv fills unset fields from PICORG_* environment variables and the
// filetype default. Flag values already set win over the environment.
func (c *Config) ApplyEnv() {
	if c.Filetype == "" {
		c.Filetype = envOrEmpty("PICORG_FILETYPE")
	}
	if c.Filetype == "" {
		c.Filetype = DefaultFiletype
	}
	if !c.DryRun {
		c.DryRun = envTruthy("PICORG_DRYRUN")
	}
	if !c.Verbose {
		c.Verbose = envTruthy("PICORG_VERBOSE")
	}
}

func (c Config) Validate() error {
	if c.StartDir == "" || c.StorageDir == "" {
		return errors.New("starting and storage directories are required")
	}
	if c.Filetype == "" {
		return errors.New("filetype must not be empty")
	}
	if strings.HasPrefix(c.Filetype, ".") {
		return errors.New("filetype must not include a leading dot")
	}
	return nil
}

func envOrEmpty(key string) string {
	return strings.TrimSpace(os.Getenv(key))
}

func envTruthy(key string) bool {
	val := strings.TrimSpace(strings.ToLower(os.Getenv(key)))
	return val == "1" || val == "true" || val == "yes" || val == "y"
}
