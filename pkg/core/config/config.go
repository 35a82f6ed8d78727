package config

import (
	"os"
	"path/filepath"
	"strings"

	mdwerror "github.com/msto63/pier/foundation/core/error"
	"github.com/msto63/pier/foundation/utils/filex"
)

// Environment variables read by pier
const (
	EnvConfigPath = "PIER_CONFIG_PATH"
	EnvLogLevel   = "PIER_LOG_LEVEL"
	EnvLogFormat  = "PIER_LOG_FORMAT"
)

// Settings holds the resolved runtime settings of the CLI
type Settings struct {
	ConfigPath string
	LogLevel   string
	LogFormat  string
	Verbose    bool
}

// Load resolves the settings from the --config flag value, the verbose
// flag and the environment
func Load(configFlag string, verbose bool) (*Settings, error) {
	path, err := ResolveConfigPath(configFlag)
	if err != nil {
		return nil, err
	}

	s := &Settings{
		ConfigPath: path,
		LogLevel:   os.Getenv(EnvLogLevel),
		LogFormat:  os.Getenv(EnvLogFormat),
		Verbose:    verbose,
	}
	s.applyDefaults()

	return s, nil
}

// applyDefaults sets default values for missing settings
func (s *Settings) applyDefaults() {
	if s.Verbose {
		s.LogLevel = "debug"
	}
	if s.LogLevel == "" {
		s.LogLevel = "warn"
	}
	if s.LogFormat == "" {
		s.LogFormat = "text"
	}
	s.LogLevel = strings.ToLower(s.LogLevel)
	s.LogFormat = strings.ToLower(s.LogFormat)
}

// ResolveConfigPath returns the config file to use. An explicit flag wins,
// then PIER_CONFIG_PATH, then the first existing default location. When no
// default file exists the first default is returned so it can be created.
func ResolveConfigPath(flag string) (string, error) {
	if flag != "" {
		return os.ExpandEnv(flag), nil
	}
	if env := os.Getenv(EnvConfigPath); env != "" {
		return os.ExpandEnv(env), nil
	}

	paths, err := DefaultPaths()
	if err != nil {
		return "", err
	}
	for _, p := range paths {
		if filex.IsFile(p) {
			return p, nil
		}
	}
	return paths[0], nil
}

// DefaultPaths returns the candidate config locations in lookup order
func DefaultPaths() ([]string, error) {
	var paths []string

	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		paths = append(paths, filepath.Join(xdg, "pier", "config.toml"))
	}

	home, err := os.UserHomeDir()
	if err != nil {
		if len(paths) > 0 {
			return paths, nil
		}
		return nil, mdwerror.Wrap(err, "cannot determine config location, set "+EnvConfigPath).
			WithCode(mdwerror.CodeConfigRead).
			WithOperation("config.DefaultPaths")
	}

	homeDefault := filepath.Join(home, ".config", "pier", "config.toml")
	if len(paths) == 0 || paths[0] != homeDefault {
		paths = append(paths, homeDefault)
	}
	paths = append(paths,
		filepath.Join(home, ".pier.toml"),
		filepath.Join(home, ".pier"),
	)

	return paths, nil
}
