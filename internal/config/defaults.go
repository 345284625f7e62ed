package config

import (
	_ "embed"
)

//go:embed defaults/wordsnow.yaml
var defaultYAML []byte

// Default returns the built-in configuration.
// It mirrors defaults/wordsnow.yaml and is used when the embedded file
// cannot be parsed.
func Default() GameConfig {
	return GameConfig{
		Letters: LettersConfig{
			Size:             2.0,
			FallMin:          0.5,
			FallMax:          1.5,
			SpinRate:         0.6,
			JitterFactor:     0.15,
			WallRestitution:  0.4,
			Recycle:          RecycleTeleport,
			FloorRestitution: 0.5,
			MaxBounces:       3,
			Headroom:         3,
			MinOnScreen:      4,
			MaxOnScreen:      12,
		},
		Match: MatchConfig{
			MarginRatio:    0.15,
			ToleranceRatio: 0.45,
			WinDelayMs:     1200,
			WinFlashDecay:  0.04,
		},
		Input: InputConfig{
			Mode:             ModeRepel,
			RepelRadiusRatio: 1.1,
			RepelImpulse:     4.5,
			DragRadiusRatio:  0.7,
		},
		Layout: LayoutConfig{
			GapWidth:     3,
			GapHeight:    3,
			GapSpacing:   1,
			BottomOffset: 3,
		},
		Locale:         "es",
		DefaultProfile: string(DifficultyNormal),
		Profiles: []Profile{
			{Name: "easy", Title: "Suave", Gravity: 0.9, Wind: 0.3, SpawnIntervalMs: 900, MaxFallSpeed: 8},
			{Name: "normal", Title: "Media", Gravity: 1.4, Wind: 0.5, SpawnIntervalMs: 720, MaxFallSpeed: 11},
			{Name: "hard", Title: "Rápida", Gravity: 2.0, Wind: 0.7, SpawnIntervalMs: 540, MaxFallSpeed: 15},
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
