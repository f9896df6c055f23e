package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

const (
	// ExecutableKey is the config key holding the selector executable
	// path, e.g. `config.rofi = "/usr/local/bin/rofi"`.
	ExecutableKey = "config.rofi"

	// ExecutableName is the binary looked up on PATH when the config
	// file does not name one.
	ExecutableName = "rofi"

	appDirName = "librofi"
	envPrefix  = "LIBROFI"
)

// ErrNotFound reports that neither the config file nor PATH yielded a
// selector executable.
var ErrNotFound = errors.New("selector executable not found")

// Dir returns the per-user configuration directory the config file is
// expected in.
func Dir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("could not locate user config directory: %w", err)
	}

	return filepath.Join(base, appDirName), nil
}

// Load reads the per-user config file into a fresh viper instance.
// A missing or unreadable file is fine and leaves the instance backed
// by environment variables only; a file that exists but does not
// parse is an error. The instance is private to the caller so that
// embedding applications keep their own global viper untouched.
func Load() (*viper.Viper, error) {
	v := viper.New()

	if dir, err := Dir(); err == nil {
		v.AddConfigPath(dir)
	}

	v.SetConfigName("config")
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var parseErr viper.ConfigParseError
		if errors.As(err, &parseErr) {
			return nil, fmt.Errorf("could not parse config file: %w", err)
		}

		slog.Debug("No config file, relying on environment and PATH", "error", err)

		return v, nil
	}

	slog.Debug("Using config file", "path", v.ConfigFileUsed())

	return v, nil
}

// ResolveExecutable determines the selector binary to spawn: the
// config file (or LIBROFI_CONFIG_ROFI environment override) wins, a
// PATH lookup of ExecutableName is the fallback.
func ResolveExecutable() (string, error) {
	v, err := Load()
	if err != nil {
		return "", err
	}

	if path := v.GetString(ExecutableKey); path != "" {
		slog.Debug("Using configured selector executable", "path", path)

		return path, nil
	}

	path, err := exec.LookPath(ExecutableName)
	if err != nil {
		return "", fmt.Errorf("%w: no %s value configured and no %s binary on PATH",
			ErrNotFound, ExecutableKey, ExecutableName)
	}

	return path, nil
}
