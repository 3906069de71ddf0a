package anim

import (
	"fmt"
	"log/slog"
)

// AudioSource is the playback engine the controller drives.
type AudioSource interface {
	IsPlaying() bool
	// Level returns the latest volume reading without blocking. It may be NaN.
	Level() float64
	Start(loop bool) error
	Stop()
}

// State is the playback state of the animation.
type State int

const (
	Idle State = iota
	Playing
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Playing:
		return "playing"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Controller is the Idle/Playing state machine. While Playing every tick draws
// a frame with live parameters; while Idle frames are drawn only on request.
type Controller struct {
	src    AudioSource
	mapper Mapper
	logger *slog.Logger

	state  State
	params Parameters
	redraw bool
}

// NewController starts Idle with rest parameters and one pending frame.
func NewController(src AudioSource, mapper Mapper, logger *slog.Logger) *Controller {
	if logger == nil {
		logger = slog.Default()
	}
	return &Controller{
		src:    src,
		mapper: mapper,
		logger: logger,
		params: Rest(),
		redraw: true,
	}
}

func (c *Controller) State() State { return c.state }

func (c *Controller) Params() Parameters { return c.params }

// Toggle flips between Idle and Playing. Starting playback may fail, in which
// case the controller stays Idle.
func (c *Controller) Toggle() error {
	if c.state == Playing {
		c.Stop()
		return nil
	}
	if err := c.src.Start(true); err != nil {
		return fmt.Errorf("starting playback: %w", err)
	}
	c.state = Playing
	c.logger.Info("playback started")
	return nil
}

// Stop halts playback, returns the parameters to rest and schedules one final
// still frame. It is a no-op while Idle.
func (c *Controller) Stop() {
	if c.state != Playing {
		return
	}
	c.src.Stop()
	c.state = Idle
	c.params = Rest()
	c.redraw = true
	c.logger.Info("playback stopped")
}

// RequestRedraw schedules one frame while Idle, e.g. after regeneration.
func (c *Controller) RequestRedraw() {
	c.redraw = true
}

// Tick advances one frame and reports whether it should be drawn. While
// Playing and the source is audible the parameters follow the current level.
func (c *Controller) Tick() bool {
	if c.state == Playing {
		if c.src.IsPlaying() {
			c.mapper.Apply(&c.params, c.src.Level())
		}
		c.redraw = false
		return true
	}
	if c.redraw {
		c.redraw = false
		return true
	}
	return false
}
