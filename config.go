package prunecluster

import (
	"fmt"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the configuration of an Overlay.
//
// Sizes are in surface pixels. Duration fields accept Go duration strings such as
// "300ms" when loaded from YAML.
type Config struct {
	// ClusterSize is the pixel size of the area a cluster covers. Together with
	// ClusterMargin it defines how close two markers may get before they merge.
	// It should match the cell size of the cluster source.
	ClusterSize int `yaml:"clusterSize"`

	// ClusterMargin is the pixel distance under which two markers are considered
	// colliding. Values above ClusterSize/4 are clamped to ClusterSize/4.
	// 0 selects the default; Disabled (any negative value) turns merging off.
	ClusterMargin int `yaml:"clusterMargin"`

	// FadeInDelay is how long a new marker stays transparent with its entrance
	// transition suppressed before it becomes visible.
	FadeInDelay time.Duration `yaml:"fadeInDelay"`

	// FadeOutDelay is how long a removed marker stays attached (transparent) before
	// it is detached. Hard moves skip it.
	FadeOutDelay time.Duration `yaml:"fadeOutDelay"`

	// FitPadding is the pixel padding used by FitBounds and ExpandCluster.
	// 0 selects the default; Disabled (any negative value) frames without padding.
	FitPadding int `yaml:"fitPadding"`

	// StrictClusters makes a pass panic on a malformed cluster instead of logging and
	// skipping it. Meant for development builds of cluster sources.
	StrictClusters bool `yaml:"strictClusters"`
}

// Disabled turns off a pixel setting (ClusterMargin, FitPadding) whose zero value
// selects the default.
const Disabled = -1

// DefaultConfig returns a Config with sensible defaults.
//
// Returns:
//   - Config: Configuration with default values
func DefaultConfig() Config {
	return Config{
		ClusterSize:   120,
		ClusterMargin: 20,
		FadeInDelay:   time.Millisecond,
		FadeOutDelay:  300 * time.Millisecond,
		FitPadding:    20,
	}
}

// SetDefaults fills in missing configuration values with defaults.
//
// Zero fields count as missing. Set ClusterMargin or FitPadding to Disabled to turn
// them off instead.
//
// Parameters:
//   - cfg: Config to apply defaults to (modified in place)
func SetDefaults(cfg *Config) {
	defaults := DefaultConfig()

	if cfg.ClusterSize == 0 {
		cfg.ClusterSize = defaults.ClusterSize
	}
	if cfg.ClusterMargin == 0 {
		cfg.ClusterMargin = defaults.ClusterMargin
	}
	if cfg.FadeInDelay == 0 {
		cfg.FadeInDelay = defaults.FadeInDelay
	}
	if cfg.FadeOutDelay == 0 {
		cfg.FadeOutDelay = defaults.FadeOutDelay
	}
	if cfg.FitPadding == 0 {
		cfg.FitPadding = defaults.FitPadding
	}
}

// Validate checks configuration constraints.
//
// Rules:
//   - ClusterSize > 0
//   - FadeInDelay >= 0 and FadeOutDelay >= 0
//
// Returns:
//   - error: ErrInvalidConfig wrapped with the violated rule, nil if valid
func (cfg *Config) Validate() error {
	if cfg.ClusterSize <= 0 {
		return fmt.Errorf("%w: ClusterSize must be > 0, got %d", ErrInvalidConfig, cfg.ClusterSize)
	}
	if cfg.FadeInDelay < 0 {
		return fmt.Errorf("%w: FadeInDelay must be >= 0, got %v", ErrInvalidConfig, cfg.FadeInDelay)
	}
	if cfg.FadeOutDelay < 0 {
		return fmt.Errorf("%w: FadeOutDelay must be >= 0, got %v", ErrInvalidConfig, cfg.FadeOutDelay)
	}

	return nil
}

// ValidateWithWarnings logs warnings for values that are accepted but adjusted or
// unusual. It is called by NewOverlay after Validate.
//
// Parameters:
//   - logger: Logger instance for warning output
func (cfg *Config) ValidateWithWarnings(logger Logger) {
	if limit := cfg.ClusterSize / 4; cfg.ClusterMargin > limit {
		logger.Warn(
			"ClusterMargin exceeds a quarter of ClusterSize and will be clamped",
			"clusterMargin", cfg.ClusterMargin,
			"clusterSize", cfg.ClusterSize,
			"effective", limit,
		)
	}

	if cfg.FadeOutDelay > 2*time.Second {
		logger.Warn(
			"FadeOutDelay is long, removed markers will linger on the surface",
			"fadeOutDelay", cfg.FadeOutDelay,
			"recommended", "300ms",
		)
	}
}

// EffectiveMargin returns ClusterMargin clamped to [0, ClusterSize/4].
func (cfg *Config) EffectiveMargin() int {
	return max(0, min(cfg.ClusterMargin, cfg.ClusterSize/4))
}

// EffectivePadding returns FitPadding, or 0 when padding is disabled.
func (cfg *Config) EffectivePadding() int {
	return max(0, cfg.FitPadding)
}

// MarginRatio returns the effective margin as a fraction of ClusterSize.
//
// Collision margins in degrees are the cluster area span multiplied by this ratio.
func (cfg *Config) MarginRatio() float64 {
	if cfg.ClusterSize <= 0 {
		return 0
	}

	return float64(cfg.EffectiveMargin()) / float64(cfg.ClusterSize)
}

// ParseConfig decodes a YAML document on top of DefaultConfig and validates it.
//
// Parameters:
//   - data: YAML document
//
// Returns:
//   - Config: Decoded configuration
//   - error: Decode error or ErrInvalidConfig
//
// Example:
//
//	data, _ := os.ReadFile("overlay.yaml")
//	cfg, err := prunecluster.ParseConfig(data)
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	SetDefaults(&cfg)
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// TestConfig returns a configuration for tests.
//
// Fade delays are fixed and short so manual schedulers can step through them, and
// malformed clusters panic so source bugs surface immediately.
//
// Returns:
//   - Config: Configuration for tests
func TestConfig() Config {
	cfg := DefaultConfig()
	cfg.FadeInDelay = time.Millisecond
	cfg.FadeOutDelay = 300 * time.Millisecond
	cfg.StrictClusters = true

	return cfg
}
