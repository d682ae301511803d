package internal

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
)

// ConfigFileName is looked up in the working directory when LUX_CONFIG is unset.
const ConfigFileName = "lux.toml"

// ConfigEnvVar names the environment variable holding an explicit config path.
const ConfigEnvVar = "LUX_CONFIG"

// Config holds the settings read from lux.toml
type Config struct {
	Log    LogConfig    `toml:"log"`
	Debug  DebugConfig  `toml:"debug"`
	Output OutputConfig `toml:"output"`
}

// LogConfig configures the logrus logger
type LogConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

// DebugConfig switches on compiler and VM diagnostics
type DebugConfig struct {
	PrintCode      bool `toml:"print_code"`
	TraceExecution bool `toml:"trace_execution"`
}

// OutputConfig controls how the driver writes to the terminal
type OutputConfig struct {
	Color bool `toml:"color"`
}

var errUnknownConfigKeys = errors.New("unknown configuration keys")

// DefaultConfig returns the configuration used when no file is present
func DefaultConfig() Config {
	return Config{
		Log: LogConfig{
			Level:  "warn",
			Format: "text",
		},
		Output: OutputConfig{
			Color: true,
		},
	}
}

// ParseConfig decodes TOML text on top of the defaults
func ParseConfig(data string) (Config, error) {
	cfg := DefaultConfig()
	md, err := toml.Decode(data, &cfg)
	if err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}
	if err := checkUndecoded(md); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// LoadConfig reads the file at path. An empty path yields the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return cfg, fmt.Errorf("loading config %s: %w", path, err)
	}
	if err := checkUndecoded(md); err != nil {
		return cfg, fmt.Errorf("loading config %s: %w", path, err)
	}
	return cfg, nil
}

// FindConfig returns the config path to use: $LUX_CONFIG if set, else
// lux.toml when it exists, else "".
func FindConfig() string {
	if path := os.Getenv(ConfigEnvVar); path != "" {
		return path
	}
	if _, err := os.Stat(ConfigFileName); err == nil {
		return ConfigFileName
	}
	return ""
}

func checkUndecoded(md toml.MetaData) error {
	undecoded := md.Undecoded()
	if len(undecoded) == 0 {
		return nil
	}
	keys := make([]string, len(undecoded))
	for i, k := range undecoded {
		keys[i] = k.String()
	}
	return fmt.Errorf("%w: %s", errUnknownConfigKeys, strings.Join(keys, ", "))
}
