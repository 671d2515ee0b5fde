package main

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/modulim/miescatter"
)

// Config mirrors the TOML table file. Exactly one model section must be
// present; flags override nothing once a config file is given.
type Config struct {
	// Angles is the number of scattering-angle rows. Defaults to
	// miescatter.NAngles when omitted.
	Angles int

	// Output is the CSV output path; "-" or empty means stdout.
	Output string

	Sphere       *SphereSection
	Polydisperse *PolydisperseSection
	Whittle      *WhittleSection
}

// SphereSection describes a monodisperse sphere either by size parameter or
// by physical radius.
type SphereSection struct {
	SizeParameter float64
	Radius        float64
	Wavelength    float64
	MediumIndex   float64
	IndexRe       float64
	IndexIm       float64
}

// PolydisperseSection describes a Gaussian radius distribution.
type PolydisperseSection struct {
	MeanRadius  float64
	CV          float64
	MediumIndex float64
	Wavelength  float64
	IndexRe     float64
	IndexIm     float64
}

// WhittleSection describes a Whittle–Matérn continuous medium.
type WhittleSection struct {
	CorrelationLength float64
	ShapeFactor       float64
	Wavelength        float64
}

// LoadConfig reads a TOML table description.
func LoadConfig(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	if cfg.Angles == 0 {
		cfg.Angles = miescatter.NAngles
	}

	sections := 0
	for _, present := range []bool{cfg.Sphere != nil, cfg.Polydisperse != nil, cfg.Whittle != nil} {
		if present {
			sections++
		}
	}
	if sections != 1 {
		return nil, fmt.Errorf("config %s: exactly one of [Sphere], [Polydisperse], [Whittle] required, got %d", path, sections)
	}
	return &cfg, nil
}

// Table evaluates the configured model.
func (c *Config) Table() (*miescatter.Table, error) {
	mu := miescatter.CosineGrid(c.Angles)

	switch {
	case c.Sphere != nil:
		s := c.Sphere
		if s.SizeParameter > 0 {
			spec := &miescatter.SphereSpec{
				SizeParameter:   s.SizeParameter,
				RefractiveIndex: complex(s.IndexRe, s.IndexIm),
			}
			return miescatter.Compute(spec, mu)
		}
		spec := miescatter.SphereSpecFromRadius(s.Radius, s.Wavelength, s.MediumIndex,
			complex(s.IndexRe, s.IndexIm))
		return miescatter.Compute(spec, mu)

	case c.Polydisperse != nil:
		p := c.Polydisperse
		spec := &miescatter.PolydisperseSpec{
			MeanRadius:      p.MeanRadius,
			CV:              p.CV,
			MediumIndex:     p.MediumIndex,
			Wavelength:      p.Wavelength,
			RefractiveIndex: complex(p.IndexRe, p.IndexIm),
		}
		return miescatter.ComputePolydisperse(spec, mu)

	default:
		w := c.Whittle
		spec := &miescatter.WhittleMaternSpec{
			CorrelationLength: w.CorrelationLength,
			ShapeFactor:       w.ShapeFactor,
			Wavelength:        w.Wavelength,
		}
		return miescatter.ComputeWhittleMatern(spec, mu)
	}
}
