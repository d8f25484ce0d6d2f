package config

import (
	"errors"
	"fmt"
	"runtime"
	"strings"

	"github.com/spf13/viper"
)

const (
	ConfigDebug               = "debug"
	ConfigConfigFile          = "config"
	ConfigDefaultDepth        = "default-depth"
	ConfigSearchCutoff        = "search-cutoff"
	ConfigSearchParallel      = "search-parallel"
	ConfigAutoplayGames       = "autoplay-games"
	ConfigAutoplayThreads     = "autoplay-threads"
	ConfigAutoplayRandomPlies = "autoplay-random-plies"
	ConfigAutoplayLog         = "autoplay-log"
	ConfigCPUProfile          = "cpu-profile"
	ConfigMemProfile          = "mem-profile"
)

var ErrBadArgument = errors.New("config arguments must look like --key=value or --key")

type Config struct {
	viper.Viper
}

func (c *Config) setDefaults() {
	c.SetDefault(ConfigDebug, false)
	c.SetDefault(ConfigDefaultDepth, 5)
	c.SetDefault(ConfigSearchCutoff, 4)
	c.SetDefault(ConfigSearchParallel, true)
	c.SetDefault(ConfigAutoplayGames, 100)
	c.SetDefault(ConfigAutoplayThreads, runtime.NumCPU())
	c.SetDefault(ConfigAutoplayRandomPlies, 4)
	c.SetDefault(ConfigAutoplayLog, "/tmp/othello-autoplay.csv")
	c.SetDefault(ConfigCPUProfile, "")
	c.SetDefault(ConfigMemProfile, "")
}

// Load reads, in increasing order of precedence: defaults, an optional
// config file (--config), OTHELLO_* environment variables, and --key=value
// arguments. A bare --key sets the key to true. Arguments that do not
// start with "--" are left alone and returned, so the caller can treat
// them as a command line.
func (c *Config) Load(args []string) ([]string, error) {
	c.Viper = *viper.New()
	c.setDefaults()
	c.SetEnvPrefix("othello")
	c.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	c.AutomaticEnv()

	overrides := map[string]string{}
	var rest []string
	for _, arg := range args {
		if !strings.HasPrefix(arg, "--") {
			rest = append(rest, arg)
			continue
		}
		kv := strings.SplitN(strings.TrimPrefix(arg, "--"), "=", 2)
		if kv[0] == "" {
			return nil, ErrBadArgument
		}
		if len(kv) == 2 {
			overrides[kv[0]] = kv[1]
		} else {
			overrides[kv[0]] = "true"
		}
	}

	if f, ok := overrides[ConfigConfigFile]; ok {
		c.SetConfigFile(f)
		if err := c.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config file %s: %w", f, err)
		}
	}
	for k, v := range overrides {
		c.Set(k, v)
	}
	return rest, nil
}

// DefaultConfig returns a config with only the defaults applied. It is
// meant for tests.
func DefaultConfig() *Config {
	c := &Config{Viper: *viper.New()}
	c.setDefaults()
	return c
}

// SanitizedSettings is everything in the config, for logging.
func (c *Config) SanitizedSettings() map[string]any {
	return c.AllSettings()
}
