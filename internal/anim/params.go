// Package anim turns the live volume level into the visual parameters of a
// frame and decides when frames are drawn.
package anim

import (
	"math"

	"github.com/SiyiZhang00/wheels-of-fortune/internal/config"
	"github.com/SiyiZhang00/wheels-of-fortune/internal/geom"
)

// Parameters are the animation values shared by every drawable in a frame.
type Parameters struct {
	Rotation        float64 // accumulated wheel rotation in radians, never wrapped
	BeadScale       float64
	BackgroundScale float64
	RawLevel        float64
	Level           float64 // RawLevel normalised into [0, 1]
}

// Rest is the still configuration shown while nothing plays.
func Rest() Parameters {
	return Parameters{BeadScale: 1, BackgroundScale: 1}
}

// Mapper maps one volume sample onto Parameters. The mapping is memoryless:
// only Rotation depends on earlier samples.
type Mapper struct {
	Ceiling        float64 // raw level mapped to a normalised level of 1
	RotationBase   float64
	RotationGain   float64
	BeadGain       float64
	BackgroundGain float64
}

// DefaultMapper returns the stock coefficients.
func DefaultMapper() Mapper {
	return Mapper{
		Ceiling:        0.25,
		RotationBase:   0.01,
		RotationGain:   0.25,
		BeadGain:       1.6,
		BackgroundGain: 1.2,
	}
}

// MapperFromConfig reads the coefficients from cfg.
func MapperFromConfig(cfg *config.Config) Mapper {
	return Mapper{
		Ceiling:        cfg.Audio.LevelCeiling,
		RotationBase:   cfg.Mapping.RotationBase,
		RotationGain:   cfg.Mapping.RotationGain,
		BeadGain:       cfg.Mapping.BeadGain,
		BackgroundGain: cfg.Mapping.BackgroundGain,
	}
}

// Normalize maps a raw sample into [0, 1]. Non-finite samples read as silence.
func (m Mapper) Normalize(sample float64) float64 {
	if math.IsNaN(sample) || math.IsInf(sample, 0) {
		return 0
	}
	return geom.Constrain(geom.Map(sample, 0, m.Ceiling, 0, 1), 0, 1)
}

// RotationStep is the rotation added for a frame at normalised level.
func (m Mapper) RotationStep(level float64) float64 {
	return m.RotationBase + level*m.RotationGain
}

// Apply updates p from one volume sample.
func (m Mapper) Apply(p *Parameters, sample float64) {
	if math.IsNaN(sample) || math.IsInf(sample, 0) {
		sample = 0
	}
	p.RawLevel = sample
	p.Level = m.Normalize(sample)
	p.Rotation += m.RotationStep(p.Level)
	p.BeadScale = 1 + p.Level*m.BeadGain
	p.BackgroundScale = 1 + p.Level*m.BackgroundGain
}
