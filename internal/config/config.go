// Package config loads runtime configuration for the ticketvision CLI and
// service entry points: the template library location and the detection
// thresholds §4.5/§4.7 leave as tunable constants elsewhere in the core.
// Values come from (in increasing priority) defaults, a config file, and
// environment variables, per viper's usual precedence.
package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config holds everything a pipeline.New caller needs to stand one up.
type Config struct {
	// TemplateDir is the directory LoadTemplateSet reads digit and PB
	// glyph templates from.
	TemplateDir string `mapstructure:"template_dir"`

	// PBConfidenceFloor and DigitConfidenceFloor override the tmplmatch
	// package's built-in floors when non-zero, letting an operator
	// retune detection sensitivity without a rebuild.
	PBConfidenceFloor    float64 `mapstructure:"pb_confidence_floor"`
	DigitConfidenceFloor float64 `mapstructure:"digit_confidence_floor"`

	// RowClusterTolerance, PairingTolerance, and NMSRadius override the
	// rowgroup/tmplmatch packages' built-in pixel tolerances when non-zero
	// (§4.5.1's 30px NMS radius and §4.6's 40px row/110px pairing
	// tolerances), for the same per-deployment retuning purpose.
	RowClusterTolerance int `mapstructure:"row_cluster_tolerance"`
	PairingTolerance    int `mapstructure:"pairing_tolerance"`
	NMSRadius           int `mapstructure:"nms_radius"`

	// MetricsAddr is the listen address for the Prometheus /metrics
	// handler; empty disables it.
	MetricsAddr string `mapstructure:"metrics_addr"`
}

// Load reads configuration from configPath (if non-empty), the
// TICKETVISION_* environment, and falls back to defaults for anything
// unset.
func Load(configPath string) (Config, error) {
	v := viper.New()
	v.SetEnvPrefix("TICKETVISION")
	v.AutomaticEnv()

	v.SetDefault("template_dir", "./testassets/templates")
	v.SetDefault("pb_confidence_floor", 0.0)
	v.SetDefault("digit_confidence_floor", 0.0)
	v.SetDefault("row_cluster_tolerance", 0)
	v.SetDefault("pairing_tolerance", 0)
	v.SetDefault("nms_radius", 0)
	v.SetDefault("metrics_addr", "")

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("config: reading %s: %w", configPath, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: unmarshal: %w", err)
	}
	return cfg, nil
}
