package rocketpy

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/viper"
)

var (
	cfgLoaded = false
	config    = _rpconfig{}
)

// _rpconfig is a "hidden" struct, just use `rpConfig`
type _rpconfig struct {
	verbose bool
	step    time.Duration
}

// rpConfig returns the rocketpy configuration, loading it on first use from
// the conf.toml in the directory named by ROCKETPY_CONFIG.
func rpConfig() _rpconfig {
	if cfgLoaded {
		return config
	}
	confPath := os.Getenv("ROCKETPY_CONFIG")
	if confPath == "" {
		// No configuration directory, stick to the defaults.
		cfgLoaded = true
		config = _rpconfig{step: StepSize}
		return config
	}
	viper.SetConfigName("conf")
	viper.AddConfigPath(confPath)
	if err := viper.ReadInConfig(); err != nil {
		panic(fmt.Errorf("%s/conf.toml not found", confPath))
	}

	verbose := viper.GetBool("general.verbose")
	step := viper.GetDuration("propagation.step")
	if step == 0 {
		step = StepSize
	}
	cfgLoaded = true
	config = _rpconfig{verbose: verbose, step: step}
	return config
}

// DefaultStep returns the propagation step size from the configuration, or
// StepSize when none is set.
func DefaultStep() time.Duration {
	return rpConfig().step
}

// Verbose returns whether verbose status logging is enabled.
func Verbose() bool {
	return rpConfig().verbose
}
