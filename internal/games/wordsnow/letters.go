package wordsnow

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/wordsnow/internal/config"
	"github.com/vovakirdan/wordsnow/internal/core"
)

// Spawn geometry, as fractions of the letter size.
const (
	spawnMarginRatio = 1.2
	wallMarginRatio  = 0.6
)

// FallingLetter is one live letter entity. Letters are recycled in place,
// so a pointer to a letter stays valid while it is held.
type FallingLetter struct {
	ID     int
	Char   rune
	Pos    core.Vec2
	Vel    core.Vec2
	Angle  float64
	Locked bool // Snapped into a gap, physics frozen
	Held   bool // Held by a drag, physics frozen, still counts as unlocked
	Gap    int  // Index of the filled gap when Locked, else -1

	bounces int
}

// Pool owns every falling letter of the current round.
type Pool struct {
	cfg    config.LettersConfig
	rng    *rand.Rand
	active []*FallingLetter
	free   []*FallingLetter
	nextID int

	width  float64
	height float64
}

// NewPool creates an empty pool.
func NewPool(cfg config.LettersConfig, rng *rand.Rand) *Pool {
	return &Pool{cfg: cfg, rng: rng}
}

// SetBounds updates the world size used for spawning, walls and the floor.
func (p *Pool) SetBounds(w, h float64) {
	p.width = w
	p.height = h
}

// Letters returns the live letters. Callers must not retain the slice
// across steps.
func (p *Pool) Letters() []*FallingLetter {
	return p.active
}

// Unlocked returns the number of live letters not snapped into a gap.
func (p *Pool) Unlocked() int {
	n := 0
	for _, l := range p.active {
		if !l.Locked {
			n++
		}
	}
	return n
}

// Cap returns the maximum number of unlocked letters allowed on screen
// for the given number of unfilled gaps.
func (p *Pool) Cap(remaining int) int {
	return core.Clamp(remaining+p.cfg.Headroom, p.cfg.MinOnScreen, p.cfg.MaxOnScreen)
}

// Clear parks every live letter for reuse by later spawns.
func (p *Pool) Clear() {
	for _, l := range p.active {
		l.Locked = false
		l.Held = false
	}
	p.free = append(p.free, p.active...)
	p.active = p.active[:0]
}

// ChooseChar picks the letter to spawn: uniformly from the expected
// letters of unfilled gaps (duplicates weigh more), or from the distinct
// letters of the word once every gap is filled.
func (p *Pool) ChooseChar(r *Round) (rune, bool) {
	if r == nil || r.Len() == 0 {
		return 0, false
	}
	candidates := r.needed()
	if len(candidates) == 0 {
		candidates = r.distinct()
	}
	return candidates[p.rng.Intn(len(candidates))], true
}

// Spawn adds one letter for the round. It returns nil if the round has
// no gaps to draw a letter from.
func (p *Pool) Spawn(r *Round, prof config.Profile) *FallingLetter {
	ch, ok := p.ChooseChar(r)
	if !ok {
		return nil
	}

	var l *FallingLetter
	if n := len(p.free); n > 0 {
		l = p.free[n-1]
		p.free = p.free[:n-1]
	} else {
		p.nextID++
		l = &FallingLetter{ID: p.nextID}
	}
	l.Char = ch
	p.reset(l, prof)
	p.active = append(p.active, l)
	return l
}

// Recycle resets an unlocked letter to a fresh spawn state in place,
// keeping its character.
func (p *Pool) Recycle(l *FallingLetter, prof config.Profile) {
	if l.Locked {
		return
	}
	p.reset(l, prof)
}

func (p *Pool) reset(l *FallingLetter, prof config.Profile) {
	size := p.cfg.Size
	l.Pos = core.V(p.uniform(size*spawnMarginRatio, p.width-size*spawnMarginRatio), -size)
	l.Vel = core.V(p.uniform(-prof.Wind, prof.Wind), p.uniform(p.cfg.FallMin, p.cfg.FallMax))
	l.Angle = p.uniform(-math.Pi, math.Pi)
	l.Locked = false
	l.Held = false
	l.Gap = -1
	l.bounces = 0
}

// Step integrates every free-moving letter by dt seconds.
func (p *Pool) Step(dt float64, prof config.Profile) {
	if dt <= 0 {
		return
	}
	margin := p.cfg.Size * wallMarginRatio
	for _, l := range p.active {
		if l.Locked || l.Held {
			continue
		}

		l.Vel.Y += prof.Gravity * dt
		l.Vel.X += p.uniform(-prof.Wind, prof.Wind) * p.cfg.JitterFactor * dt
		l.Vel.Y = math.Min(l.Vel.Y, prof.MaxFallSpeed)
		l.Pos = l.Pos.Add(l.Vel.Scale(dt))
		l.Angle += p.cfg.SpinRate * dt

		if l.Pos.X < margin {
			l.Pos.X = margin
			l.Vel.X = math.Abs(l.Vel.X) * p.cfg.WallRestitution
		}
		if l.Pos.X > p.width-margin {
			l.Pos.X = p.width - margin
			l.Vel.X = -math.Abs(l.Vel.X) * p.cfg.WallRestitution
		}
	}
}

// RecycleFallen handles every free-moving letter below the floor line
// according to the recycle policy and returns how many were respawned.
func (p *Pool) RecycleFallen(prof config.Profile) int {
	floor := p.height - p.cfg.Size
	n := 0
	for _, l := range p.active {
		if l.Locked || l.Held || l.Pos.Y <= floor {
			continue
		}
		if p.cfg.Recycle == config.RecycleBounce && l.bounces < p.cfg.MaxBounces {
			l.bounces++
			l.Pos.Y = floor
			l.Vel.Y = -math.Abs(l.Vel.Y) * p.cfg.FloorRestitution
			continue
		}
		p.Recycle(l, prof)
		n++
	}
	return n
}

// Nearest returns the free-moving letter closest to pos within radius.
func (p *Pool) Nearest(pos core.Vec2, radius float64) *FallingLetter {
	var best *FallingLetter
	bestD := radius * radius
	for _, l := range p.active {
		if l.Locked || l.Held {
			continue
		}
		if d := l.Pos.Sub(pos).LenSq(); d < bestD {
			best = l
			bestD = d
		}
	}
	return best
}

func (p *Pool) uniform(lo, hi float64) float64 {
	if hi <= lo {
		return (lo + hi) / 2
	}
	return lo + p.rng.Float64()*(hi-lo)
}
