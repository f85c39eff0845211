// Package config defines the CLI configuration structure.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"

	"github.com/yndnr/cfwkv-go/internal/infra/confloader"
)

// DefaultConfigPath returns the default CLI config file path.
func DefaultConfigPath() string {
	homeDir, _ := os.UserHomeDir()
	return filepath.Join(homeDir, ".cfwkv", "config.yaml")
}

// Sources holds every input of a resolution.
type Sources struct {
	// File is an explicit config file path. A missing explicit file is an
	// error; when empty, DefaultConfigPath is used if it exists.
	File string
	// Flags holds values of flags the user actually set, keyed by config key.
	Flags map[string]any
	// Env is the environment snapshot taken at program entry.
	Env map[string]string
}

// Resolve merges defaults, config file, flags and environment into a
// Config. It does not validate; call Validate before issuing requests.
func Resolve(src Sources) (*Config, error) {
	var opt confloader.Option
	if src.File != "" {
		opt = confloader.WithConfigFile(src.File)
	} else {
		opt = confloader.WithOptionalConfigFile(DefaultConfigPath())
	}

	var cfg Config
	l := confloader.NewLoader(opt)
	if err := l.Load(&cfg, Defaults(), src.Flags, EnvOverrides(src.Env)); err != nil {
		return nil, fmt.Errorf("resolve config: %w", err)
	}
	return &cfg, nil
}

// EnvOverrides extracts the recognized CLOUDFLARE_* variables from env.
// Unset and empty variables are skipped so they never clear a flag value.
func EnvOverrides(env map[string]string) map[string]any {
	out := make(map[string]any)
	for name, key := range envToKey {
		if v := env[name]; v != "" {
			out[key] = v
		}
	}
	return out
}

// EnvSnapshot converts an os.Environ style list into a map.
func EnvSnapshot(environ []string) map[string]string {
	env := make(map[string]string, len(environ))
	for _, kv := range environ {
		name, value, ok := strings.Cut(kv, "=")
		if !ok || name == "" {
			continue
		}
		env[name] = value
	}
	return env
}

// LoadEnvFile reads a dotenv file and layers env on top of it, so real
// environment variables keep precedence over file entries.
func LoadEnvFile(path string, env map[string]string) (map[string]string, error) {
	fileEnv, err := godotenv.Read(path)
	if err != nil {
		return nil, fmt.Errorf("read env file %s: %w", path, err)
	}
	for k, v := range env {
		fileEnv[k] = v
	}
	return fileEnv, nil
}
