package main

import (
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// config is the set of knobs smilint exposes, loadable from a YAML file
// and overridable by command-line flags.
type config struct {
	Format      string `mapstructure:"format"`
	Descriptors bool   `mapstructure:"descriptors"`
	LogLevel    string `mapstructure:"log_level"`
}

func defaultConfig() config {
	return config{
		Format:      "text",
		Descriptors: false,
		LogLevel:    "info",
	}
}

// loadConfig reads smilint.yaml (or the file named by --config) if
// present, then lets any flag the caller actually set on the command
// line override the file's value — the standard viper+cobra BindPFlag
// idiom, applied by hand here since flags are read directly rather than
// through a persistent viper instance shared across subcommands.
func loadConfig(flags *pflag.FlagSet, configPath string) (config, error) {
	cfg := defaultConfig()

	v := viper.New()
	v.SetConfigType("yaml")
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("smilint")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound && configPath != "" {
			return cfg, err
		}
	} else if err := v.Unmarshal(&cfg); err != nil {
		return cfg, err
	}

	if flags.Changed("format") {
		cfg.Format, _ = flags.GetString("format")
	}
	if flags.Changed("descriptors") {
		cfg.Descriptors, _ = flags.GetBool("descriptors")
	}
	if flags.Changed("log-level") {
		cfg.LogLevel, _ = flags.GetString("log-level")
	}

	cfg.Format = strings.ToLower(cfg.Format)
	return cfg, nil
}
