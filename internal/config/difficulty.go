package config

import (
	"errors"
	"fmt"
)

// Profile is a named bundle of physics and spawn-rate parameters.
// Switching profiles takes effect on the next simulation step without
// touching letters already in flight.
type Profile struct {
	Name            string  `yaml:"name"`
	Title           string  `yaml:"title"`
	Gravity         float64 `yaml:"gravity"`           // Cells per second squared
	Wind            float64 `yaml:"wind"`              // Lateral speed range, cells per second
	SpawnIntervalMs int     `yaml:"spawn_interval_ms"` // Minimum time between spawn decisions
	MaxFallSpeed    float64 `yaml:"max_fall_speed"`    // Terminal velocity, cells per second
}

// DifficultyPreset names one of the built-in profiles.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ErrUnknownProfile is returned when a profile name is not configured.
var ErrUnknownProfile = errors.New("config: unknown difficulty profile")

// Profile returns the profile with the given name.
// An empty name selects the configured default profile.
func (c *GameConfig) Profile(name string) (Profile, error) {
	if name == "" {
		name = c.DefaultProfile
	}
	for _, p := range c.Profiles {
		if p.Name == name {
			return p, nil
		}
	}
	return Profile{}, fmt.Errorf("%w: %q", ErrUnknownProfile, name)
}

// NextProfile returns the profile following name in configuration order,
// wrapping around at the end. Unknown names yield the first profile.
func (c *GameConfig) NextProfile(name string) Profile {
	if len(c.Profiles) == 0 {
		return Profile{}
	}
	for i, p := range c.Profiles {
		if p.Name == name {
			return c.Profiles[(i+1)%len(c.Profiles)]
		}
	}
	return c.Profiles[0]
}

// ProfileNames returns the configured profile names in order.
func (c *GameConfig) ProfileNames() []string {
	names := make([]string, 0, len(c.Profiles))
	for _, p := range c.Profiles {
		names = append(names, p.Name)
	}
	return names
}

// ApplyPreset sets the default profile from a CLI difficulty preset.
// An empty preset keeps the configured default.
func ApplyPreset(cfg *GameConfig, preset DifficultyPreset) error {
	if preset == "" {
		return nil
	}
	if _, err := cfg.Profile(string(preset)); err != nil {
		return err
	}
	cfg.DefaultProfile = string(preset)
	return nil
}
