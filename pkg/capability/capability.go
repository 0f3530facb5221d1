// Package capability models the boolean flags describing which external
// codes and services are available to a test run.
package capability

import (
	"github.com/spf13/viper"

	cfg "github.com/kkr-labs/kkrtestctl/pkg/config"
)

// Name identifies a capability flag. Names match the environment
// variables they are read from, which are the tool's external contract.
type Name string

const (
	// RunAll forces the two-pass run-everything mode.
	RunAll Name = cfg.EnvRunAll
	// SkipNonWorkflow disables the non-workflow suite.
	SkipNonWorkflow Name = cfg.EnvSkipNonWorkflow
	// RunVoronoi indicates the voronoi code is installed.
	RunVoronoi Name = cfg.EnvRunVoronoi
	// RunKKRHost indicates the KKRhost code is installed.
	RunKKRHost Name = cfg.EnvRunKKRHost
	// RunKKRImp indicates the KKRimp code is installed.
	RunKKRImp Name = cfg.EnvRunKKRImp
	// NoMessageQueue indicates no RabbitMQ broker is available.
	NoMessageQueue Name = cfg.EnvNoMessageQueue
)

// Known returns every capability flag in a stable order.
func Known() []Name {
	return []Name{RunAll, SkipNonWorkflow, RunVoronoi, RunKKRHost, RunKKRImp, NoMessageQueue}
}

// Flags is the capability set for one invocation. It is built once at
// startup and never mutated afterwards. A missing entry is unset.
type Flags map[Name]bool

// IsSet reports whether a flag is set.
func (f Flags) IsSet(n Name) bool {
	return f[n]
}

// BindEnv registers the capability environment variables with viper.
// Called once during command initialization.
func BindEnv() error {
	for _, n := range Known() {
		if err := viper.BindEnv(string(n), string(n)); err != nil {
			return err
		}
	}
	return nil
}

// FromEnv builds the capability set from the current environment.
// A flag is set iff its environment variable is non-empty; absent and
// empty are equivalent.
func FromEnv() Flags {
	f := make(Flags, len(Known()))
	for _, n := range Known() {
		f[n] = viper.GetString(string(n)) != ""
	}
	return f
}
