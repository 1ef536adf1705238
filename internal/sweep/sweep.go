// Package sweep turns a config file (YAML/TOML/JSON, via viper) into the
// list of cubicperc.Config jobs a sweep run
// executes, one per probability. This is the Go-idiomatic rendering of
// the original driver's "increment probability by step across a range"
// loop.
package sweep

import (
	"fmt"

	"github.com/dlozano/cubicperc"
	"github.com/spf13/viper"
)

// Spec is the shared shape of a sweep config file: either an explicit
// Probabilities list or a PStart/PStop/PStep range (inclusive of PStop
// up to floating-point rounding), plus the simulation parameters every
// job in the sweep shares.
type Spec struct {
	CubePow     uint8   `mapstructure:"cube_pow"`
	Threads     int     `mapstructure:"threads"`
	CentralSize int     `mapstructure:"central_size"`
	Repeats     int     `mapstructure:"repeats"`
	OutputDir   string  `mapstructure:"output_dir"`

	Probabilities []float64 `mapstructure:"probabilities"`
	PStart        float64   `mapstructure:"p_start"`
	PStop         float64   `mapstructure:"p_stop"`
	PStep         float64   `mapstructure:"p_step"`
}

// Load reads path (any format viper supports by extension) into a Spec.
func Load(path string) (*Spec, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("cubicperc: reading sweep config %q: %w", path, err)
	}

	var spec Spec
	if err := v.Unmarshal(&spec); err != nil {
		return nil, fmt.Errorf("cubicperc: parsing sweep config %q: %w", path, err)
	}
	return &spec, nil
}

// probabilities returns the full list of p values this sweep covers:
// the explicit list if given, otherwise the PStart..PStop range stepped
// by PStep.
func (s *Spec) probabilities() []float64 {
	if len(s.Probabilities) > 0 {
		return s.Probabilities
	}
	if s.PStep <= 0 {
		return nil
	}
	var ps []float64
	for p := s.PStart; p <= s.PStop+s.PStep/2; p += s.PStep {
		ps = append(ps, p)
	}
	return ps
}

// Jobs expands Spec into one cubicperc.Config per probability, sharing
// every other field.
func (s *Spec) Jobs() []cubicperc.Config {
	ps := s.probabilities()
	jobs := make([]cubicperc.Config, 0, len(ps))
	for _, p := range ps {
		jobs = append(jobs, cubicperc.Config{
			Probability: p,
			CubePow:     s.CubePow,
			Threads:     s.Threads,
			CentralSize: s.CentralSize,
			Repeats:     s.Repeats,
		})
	}
	return jobs
}
