package orrery

import (
	"os"
	"sync"

	"github.com/spf13/viper"
)

const (
	// defaultGenericScale is the scene-units-per-AU fallback for bodies and
	// mission legs without a display radius entry.
	defaultGenericScale = 40.0
	// defaultMaxDisplayRadius caps radial mission legs so deep-space cruises
	// stay inside the camera-visible volume.
	defaultMaxDisplayRadius = 220.0
)

// _orreryconfig is a "hidden" struct, just use `orreryConfig`.
type _orreryconfig struct {
	VSOP87           bool
	VSOP87Dir        string
	genericScale     float64
	maxDisplayRadius float64
	displayRadii     map[string]float64
}

var (
	cfgOnce sync.Once
	config  _orreryconfig
)

// displayRadius returns the configured override for the body, if any.
func (c _orreryconfig) displayRadius(name string) (float64, bool) {
	r, ok := c.displayRadii[name]
	return r, ok
}

// orreryConfig returns the engine configuration. The config file is optional:
// when the `ORRERY_CONFIG` environment variable is unset or the conf.toml it
// points at cannot be read, the built-in defaults apply and the engine runs
// fully self-contained, as the core contract requires.
func orreryConfig() _orreryconfig {
	cfgOnce.Do(func() {
		config = _orreryconfig{
			genericScale:     defaultGenericScale,
			maxDisplayRadius: defaultMaxDisplayRadius,
			displayRadii:     map[string]float64{},
		}
		confPath := os.Getenv("ORRERY_CONFIG")
		if confPath == "" {
			return
		}
		viper.SetConfigName("conf")
		viper.AddConfigPath(confPath)
		if err := viper.ReadInConfig(); err != nil {
			return
		}
		config.VSOP87 = viper.GetBool("VSOP87.enabled")
		config.VSOP87Dir = viper.GetString("VSOP87.directory")
		if v := viper.GetFloat64("display.generic_scale"); v > 0 {
			config.genericScale = v
		}
		if v := viper.GetFloat64("display.max_radius"); v > 0 {
			config.maxDisplayRadius = v
		}
		for _, name := range bodyNames {
			key := "display.radii." + name
			if viper.IsSet(key) {
				config.displayRadii[name] = viper.GetFloat64(key)
			}
		}
	})
	return config
}
