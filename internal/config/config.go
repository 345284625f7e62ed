// Package config provides YAML-based game configuration loading and
// difficulty profile management for wordsnow.
package config

import (
	"errors"
	"fmt"
)

// RecyclePolicy selects what happens to an unlocked letter that reaches the floor.
type RecyclePolicy string

const (
	// RecycleTeleport resets the letter to a fresh spawn state above the top edge.
	RecycleTeleport RecyclePolicy = "teleport"
	// RecycleBounce reflects the letter off the floor with damping and
	// recycles it after MaxBounces floor contacts.
	RecycleBounce RecyclePolicy = "bounce"
)

// InteractionMode selects how pointer input manipulates letters.
type InteractionMode string

const (
	// ModeRepel pushes nearby letters away from the pointer.
	ModeRepel InteractionMode = "repel"
	// ModeDrag picks up the nearest letter and moves it with the pointer.
	ModeDrag InteractionMode = "drag"
)

// Toggle returns the other interaction mode.
func (m InteractionMode) Toggle() InteractionMode {
	if m == ModeDrag {
		return ModeRepel
	}
	return ModeDrag
}

// GameConfig contains all configuration for the game.
type GameConfig struct {
	Letters        LettersConfig `yaml:"letters"`
	Match          MatchConfig   `yaml:"match"`
	Input          InputConfig   `yaml:"input"`
	Layout         LayoutConfig  `yaml:"layout"`
	Locale         string        `yaml:"locale"` // BCP-47 tag used for case folding
	DefaultProfile string        `yaml:"default_profile"`
	Profiles       []Profile     `yaml:"profiles"`
}

// LettersConfig defines falling letter physics and population limits.
// Distances are in cells, speeds in cells per second.
type LettersConfig struct {
	Size             float64       `yaml:"size"`     // Reference letter size
	FallMin          float64       `yaml:"fall_min"` // Initial downward speed range
	FallMax          float64       `yaml:"fall_max"`
	SpinRate         float64       `yaml:"spin_rate"`     // Radians per second
	JitterFactor     float64       `yaml:"jitter_factor"` // Lateral jitter, fraction of wind per second
	WallRestitution  float64       `yaml:"wall_restitution"`
	Recycle          RecyclePolicy `yaml:"recycle"`
	FloorRestitution float64       `yaml:"floor_restitution"` // Bounce policy only
	MaxBounces       int           `yaml:"max_bounces"`       // Bounce policy only
	Headroom         int           `yaml:"headroom"`          // Extra letters beyond remaining gaps
	MinOnScreen      int           `yaml:"min_on_screen"`
	MaxOnScreen      int           `yaml:"max_on_screen"`
}

// MatchConfig defines snap tolerances and win sequencing.
type MatchConfig struct {
	MarginRatio    float64 `yaml:"margin_ratio"`    // Inward horizontal margin, fraction of letter size
	ToleranceRatio float64 `yaml:"tolerance_ratio"` // Vertical tolerance, fraction of gap height
	WinDelayMs     int     `yaml:"win_delay_ms"`
	WinFlashDecay  float64 `yaml:"win_flash_decay"` // Per frame
}

// InputConfig defines pointer interaction parameters.
type InputConfig struct {
	Mode             InteractionMode `yaml:"mode"`
	RepelRadiusRatio float64         `yaml:"repel_radius_ratio"` // Fraction of letter size
	RepelImpulse     float64         `yaml:"repel_impulse"`      // Cells per second added per event
	DragRadiusRatio  float64         `yaml:"drag_radius_ratio"`  // Fraction of letter size
}

// LayoutConfig defines the gap row placement used by the terminal layout provider.
type LayoutConfig struct {
	GapWidth     int `yaml:"gap_width"`
	GapHeight    int `yaml:"gap_height"`
	GapSpacing   int `yaml:"gap_spacing"`
	BottomOffset int `yaml:"bottom_offset"` // Rows between gap row and screen bottom
}

// ErrInvalidConfig is returned by Validate for unusable configurations.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Validate checks the configuration for values the simulation cannot run with.
func (c *GameConfig) Validate() error {
	if c.Letters.Size <= 0 {
		return fmt.Errorf("%w: letters.size must be positive", ErrInvalidConfig)
	}
	if c.Letters.FallMax < c.Letters.FallMin {
		return fmt.Errorf("%w: letters.fall_max below fall_min", ErrInvalidConfig)
	}
	if c.Letters.MinOnScreen <= 0 || c.Letters.MaxOnScreen < c.Letters.MinOnScreen {
		return fmt.Errorf("%w: letters.min_on_screen/max_on_screen", ErrInvalidConfig)
	}
	switch c.Letters.Recycle {
	case RecycleTeleport, RecycleBounce:
	default:
		return fmt.Errorf("%w: unknown recycle policy %q", ErrInvalidConfig, c.Letters.Recycle)
	}
	switch c.Input.Mode {
	case ModeRepel, ModeDrag:
	default:
		return fmt.Errorf("%w: unknown input mode %q", ErrInvalidConfig, c.Input.Mode)
	}
	if c.Layout.GapWidth < 1 || c.Layout.GapHeight < 1 {
		return fmt.Errorf("%w: layout gap size must be at least 1x1", ErrInvalidConfig)
	}
	if len(c.Profiles) == 0 {
		return fmt.Errorf("%w: no difficulty profiles", ErrInvalidConfig)
	}
	for _, p := range c.Profiles {
		if p.Name == "" {
			return fmt.Errorf("%w: profile without name", ErrInvalidConfig)
		}
		if p.SpawnIntervalMs <= 0 || p.MaxFallSpeed <= 0 {
			return fmt.Errorf("%w: profile %q needs positive spawn_interval_ms and max_fall_speed", ErrInvalidConfig, p.Name)
		}
	}
	if _, err := c.Profile(c.DefaultProfile); err != nil {
		return fmt.Errorf("%w: default_profile: %v", ErrInvalidConfig, err)
	}
	return nil
}
