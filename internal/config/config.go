// Package config loads CLI settings from defaults, an optional hexfence.yaml
// and HEXFENCE_* environment variables.
package config

import (
	"fmt"
	"strings"

	"github.com/bsm/hexfence/cellstore"
	"github.com/bsm/hexfence/geofence"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Config holds all CLI configuration.
type Config struct {
	Log    LogConfig    `mapstructure:"log"`
	Build  BuildConfig  `mapstructure:"build"`
	Output OutputConfig `mapstructure:"output"`
	Store  StoreConfig  `mapstructure:"store"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// BuildConfig tunes how a region is built. The grid resolution is not
// configurable, regions are always built at geofence.DefaultResolution.
type BuildConfig struct {
	Strict bool   `mapstructure:"strict"`
	OSM    string `mapstructure:"osm"`
}

type OutputConfig struct {
	Boundary string `mapstructure:"boundary"`
	GeoJSON  string `mapstructure:"geojson"`
	Store    string `mapstructure:"store"`
}

type StoreConfig struct {
	Compression string `mapstructure:"compression"`
	BlockSize   int    `mapstructure:"block_size"`
}

// Options returns the cellstore writer options.
func (s StoreConfig) Options() *cellstore.Options {
	o := &cellstore.Options{BlockSize: s.BlockSize, Compression: cellstore.SnappyCompression}
	if s.Compression == "none" {
		o.Compression = cellstore.NoCompression
	}
	return o
}

// Load reads configuration. Extra search paths for hexfence.yaml may be
// given, the working directory is always searched.
func Load(paths ...string) (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("build.strict", true)
	v.SetDefault("build.osm", "")
	v.SetDefault("output.boundary", geofence.DefaultBoundaryFile)
	v.SetDefault("output.geojson", "")
	v.SetDefault("output.store", "")
	v.SetDefault("store.compression", "snappy")
	v.SetDefault("store.block_size", 16*1024)

	// Config file (optional)
	v.SetConfigName("hexfence")
	v.SetConfigType("yaml")
	for _, p := range paths {
		v.AddConfigPath(p)
	}
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	// Environment variables: HEXFENCE_OUTPUT_STORE → output.store
	v.SetEnvPrefix("HEXFENCE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks that settings are sane.
func (c *Config) Validate() error {
	var errs []string

	if _, err := logrus.ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, fmt.Sprintf("log.level is invalid: %q", c.Log.Level))
	}
	if c.Log.Format != "text" && c.Log.Format != "json" {
		errs = append(errs, fmt.Sprintf("log.format must be text or json, got %q", c.Log.Format))
	}
	if c.Store.Compression != "snappy" && c.Store.Compression != "none" {
		errs = append(errs, fmt.Sprintf("store.compression must be snappy or none, got %q", c.Store.Compression))
	}
	if c.Store.BlockSize <= 0 {
		errs = append(errs, "store.block_size must be positive")
	}

	if len(errs) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(errs, "\n  - "))
	}
	return nil
}

// Logger returns a logger configured by the log settings.
func (c *Config) Logger() *logrus.Logger {
	logger := logrus.New()
	if lvl, err := logrus.ParseLevel(c.Log.Level); err == nil {
		logger.SetLevel(lvl)
	}
	if c.Log.Format == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	}
	return logger
}
