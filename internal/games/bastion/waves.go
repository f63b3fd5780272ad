package bastion

import (
	"math"

	"github.com/davvoz/Ggameplatform-sub015/internal/config"
	"github.com/davvoz/Ggameplatform-sub015/internal/core"
)

// point is a position in screen cells. Fractional so enemies move smoothly
// between ticks even at low speeds.
type point struct {
	x, y float64
}

// path is the fixed polyline enemies march along, with per-segment lengths
// precomputed for progress-to-position lookup.
type path struct {
	points []point
	segLen []float64
	total  float64
}

// buildPath lays an S-shaped route across the play area: horizontal sweeps
// connected by short vertical drops, entering at the left edge and exiting
// at the right.
func buildPath(w, h int) *path {
	left := 1.0
	right := float64(w - 2)

	p := &path{}
	y := 3.0
	fromLeft := true
	// Lay the first sweep unconditionally so tiny terminals still get a
	// non-empty route; extra sweeps only fit on taller screens.
	for {
		if fromLeft {
			p.points = append(p.points, point{left, y}, point{right, y})
		} else {
			p.points = append(p.points, point{right, y}, point{left, y})
		}
		y += 4
		fromLeft = !fromLeft
		if int(y) >= h-3 {
			break
		}
	}
	// Exit through the right edge on the final sweep.
	last := p.points[len(p.points)-1]
	if last.x != right {
		p.points = append(p.points, point{right, last.y})
	}

	for i := 1; i < len(p.points); i++ {
		a, b := p.points[i-1], p.points[i]
		length := math.Abs(b.x-a.x) + math.Abs(b.y-a.y) // segments are axis-aligned
		p.segLen = append(p.segLen, length)
		p.total += length
	}
	return p
}

// pointAt maps a progress distance to a position on the polyline.
// Progress beyond the total clamps to the exit point.
func (p *path) pointAt(progress float64) (float64, float64) {
	if progress <= 0 {
		return p.points[0].x, p.points[0].y
	}
	for i, length := range p.segLen {
		if progress <= length {
			a, b := p.points[i], p.points[i+1]
			t := progress / length
			return a.x + (b.x-a.x)*t, a.y + (b.y-a.y)*t
		}
		progress -= length
	}
	last := p.points[len(p.points)-1]
	return last.x, last.y
}

// contains reports whether the given cell lies on the path. Used to forbid
// tower placement on the route.
func (p *path) contains(x, y int) bool {
	for i := 1; i < len(p.points); i++ {
		a, b := p.points[i-1], p.points[i]
		minX, maxX := int(min(a.x, b.x)), int(max(a.x, b.x))
		minY, maxY := int(min(a.y, b.y)), int(max(a.y, b.y))
		if x >= minX && x <= maxX && y >= minY && y <= maxY {
			return true
		}
	}
	return false
}

// enemy is a single attacker marching along the path.
type enemy struct {
	progress float64
	speed    float64
	hp       int
	maxHP    int
	color    core.Color
	route    *path
}

func (e *enemy) alive() bool {
	return e.hp > 0 && !e.finished()
}

func (e *enemy) finished() bool {
	return e.progress >= e.route.total
}

func (e *enemy) advance(mult float64) {
	e.progress += e.speed * mult
}

func (e *enemy) position() (float64, float64) {
	return e.route.pointAt(e.progress)
}

// waveColors tints each wave's enemies so shot blending stays visible.
var waveColors = []core.Color{
	core.ColorRed,
	core.ColorMagenta,
	core.ColorCyan,
	core.ColorBrightRed,
	core.ColorBrightMagenta,
}

// waveManager schedules wave starts and paces enemy spawns inside a wave.
// Composition scales linearly with the wave index.
type waveManager struct {
	cfg   *config.BastionWaves
	route *path

	wave       int // 1-based; 0 before the first wave starts
	toSpawn    int
	spawnTimer int
	restTimer  int
}

func newWaveManager(cfg *config.BastionWaves, route *path) *waveManager {
	return &waveManager{
		cfg:       cfg,
		route:     route,
		restTimer: cfg.Intermission,
	}
}

// update advances the schedule by one tick and returns a freshly spawned
// enemy, or nil when this tick spawns nothing. The intermission countdown
// to the next wave runs only while the field is clear.
func (wm *waveManager) update(fieldClear bool) *enemy {
	if wm.toSpawn == 0 {
		if !fieldClear {
			return nil
		}
		wm.restTimer--
		if wm.restTimer > 0 {
			return nil
		}
		wm.startNextWave()
	}

	wm.spawnTimer--
	if wm.spawnTimer > 0 {
		return nil
	}
	wm.spawnTimer = wm.cfg.SpawnInterval
	wm.toSpawn--
	if wm.toSpawn == 0 {
		wm.restTimer = wm.cfg.Intermission
	}

	return &enemy{
		speed: wm.cfg.BaseSpeed + wm.cfg.SpeedPerWave*float64(wm.wave-1),
		hp:    wm.hpForWave(),
		maxHP: wm.hpForWave(),
		color: waveColors[(wm.wave-1)%len(waveColors)],
		route: wm.route,
	}
}

func (wm *waveManager) startNextWave() {
	wm.wave++
	wm.toSpawn = wm.cfg.BaseCount + wm.cfg.CountPerWave*(wm.wave-1)
	wm.spawnTimer = 0
}

// spawning reports whether the current wave still has enemies to release.
func (wm *waveManager) spawning() bool {
	return wm.toSpawn > 0
}

func (wm *waveManager) hpForWave() int {
	return wm.cfg.BaseHP + wm.cfg.HPPerWave*(wm.wave-1)
}
