package layout

import (
	"log/slog"
	"math/rand"
	"time"

	"github.com/SiyiZhang00/wheels-of-fortune/internal/scene"
)

// DefaultNeighbors is the number of arcs each wheel tries to start.
const DefaultNeighbors = 2

// Composition is one generated layout. It is never modified after Generate
// returns; regeneration builds a new one.
type Composition struct {
	Seed   uint32
	Width  float64
	Height float64

	Wheels         []*scene.Wheel
	BeadArcs       []*scene.BeadArc
	BackgroundDots []scene.BackgroundDot
}

// Generate builds the layout for seed on a width x height canvas. Wheels, arcs
// and dots draw from one stream in that order.
func Generate(seed uint32, width, height float64, neighbors int) *Composition {
	rng := rand.New(rand.NewSource(int64(seed)))
	wheels := Wheels(rng, width, height)
	arcs := BeadArcs(rng, wheels, neighbors, width, height)
	dots := BackgroundDots(rng, wheels, width, height)
	return &Composition{
		Seed:           seed,
		Width:          width,
		Height:         height,
		Wheels:         wheels,
		BeadArcs:       arcs,
		BackgroundDots: dots,
	}
}

// NewSeed mixes the wall clock, a high resolution clock and a random draw into
// a 32-bit seed.
func NewSeed() uint32 {
	now := time.Now()
	return uint32(now.UnixMilli()) ^ uint32(now.Nanosecond()) ^ uint32(rand.Int63n(1e9))
}

// State owns the current composition and the active seed.
type State struct {
	Neighbors int
	Logger    *slog.Logger

	current *Composition
	seed    uint32
}

// NewState returns a State with no composition; call Regenerate before use.
func NewState(neighbors int, logger *slog.Logger) *State {
	if logger == nil {
		logger = slog.Default()
	}
	return &State{Neighbors: neighbors, Logger: logger}
}

// Current returns the active composition, or nil before the first Regenerate.
func (s *State) Current() *Composition {
	return s.current
}

// Seed returns the active seed.
func (s *State) Seed() uint32 {
	return s.seed
}

// SetSeed makes seed the active seed for the next Regenerate(true, ...).
func (s *State) SetSeed(seed uint32) {
	s.seed = seed
}

// Regenerate replaces the composition. With keepSeed false a fresh seed is
// drawn first. The new composition is fully built before it becomes current.
func (s *State) Regenerate(keepSeed bool, width, height float64) *Composition {
	if !keepSeed {
		s.seed = NewSeed()
	}
	next := Generate(s.seed, width, height, s.Neighbors)
	s.current = next
	s.Logger.Info("composition generated",
		"seed", next.Seed,
		"width", width,
		"height", height,
		"wheels", len(next.Wheels),
		"arcs", len(next.BeadArcs),
		"dots", len(next.BackgroundDots),
	)
	return next
}
