package crossy

import (
	"math"
	"math/rand"

	"github.com/davvoz/Ggameplatform-sub015/internal/config"
	"github.com/davvoz/Ggameplatform-sub015/internal/terrain"
)

// span is a moving occupant of a row: a vehicle or a floating log.
// Positions are fractional and wrap around the row's circumference so
// traffic recurs periodically without respawn bookkeeping.
type span struct {
	x      float64
	length int
}

// rowTraffic holds the dynamic state riding on one terrain row. The row
// itself stays immutable; everything that moves lives here.
type rowTraffic struct {
	row   *terrain.Row
	dir   float64 // +1 forward (rightward), -1 backward
	speed float64 // cells per tick before difficulty scaling

	// Road and water rows: wrapping spans.
	spans         []span
	circumference float64

	// Rail rows: a single sweeping train.
	trainX      float64
	trainLen    int
	trainTimer  int
	trainWarn   int
	trainRest   int
	trainActive bool
}

// trafficManager creates and advances the per-row traffic for every windowed
// row. Entries are created lazily in coordinate order and dropped when the
// terrain window releases the row.
type trafficManager struct {
	rows    map[int]*rowTraffic
	rng     *rand.Rand
	cfg     *config.CrossyTraffic
	screenW int
}

func newTrafficManager(seed int64, screenW int, cfg *config.CrossyTraffic) *trafficManager {
	return &trafficManager{
		rows:    make(map[int]*rowTraffic),
		rng:     rand.New(rand.NewSource(seed)),
		cfg:     cfg,
		screenW: screenW,
	}
}

// release drops the traffic tied to a culled terrain row.
func (tm *trafficManager) release(row *terrain.Row) {
	delete(tm.rows, row.Coordinate)
}

// ensure creates traffic state for a row on first sight.
// Must be called in deterministic row order to keep runs reproducible.
func (tm *trafficManager) ensure(row *terrain.Row) *rowTraffic {
	if rt, ok := tm.rows[row.Coordinate]; ok {
		return rt
	}

	rt := &rowTraffic{row: row, dir: 1}
	if row.Direction == terrain.Backward {
		rt.dir = -1
	}

	switch row.Type {
	case terrain.TypeRoad:
		// More lanes mean denser, slightly faster traffic on the strip.
		rt.speed = tm.cfg.BaseSpeed * (1 + 0.15*float64(row.Lanes-2))
		rt.fillSpans(tm, tm.cfg.MinVehicleLen, tm.cfg.MaxVehicleLen, row.Lanes)
	case terrain.TypeWater:
		rt.speed = tm.cfg.LogSpeed
		rt.fillSpans(tm, tm.cfg.LogLength, tm.cfg.LogLength, 2)
	case terrain.TypeRail:
		rt.speed = tm.cfg.TrainSpeed
		rt.trainLen = 12
		rt.trainWarn = tm.cfg.TrainWarnTicks
		// A partial config may leave the cooldown at zero. Never roll Intn(0).
		rt.trainRest = tm.cfg.TrainCooldown
		if rt.trainRest < 1 {
			rt.trainRest = 1
		}
		rt.trainTimer = rt.trainRest/2 + tm.rng.Intn(rt.trainRest)
	}

	tm.rows[row.Coordinate] = rt
	return rt
}

// fillSpans lays spans around the wrapping circumference with random gaps.
// Density scales with the lane count so wide roads feel busier.
func (rt *rowTraffic) fillSpans(tm *trafficManager, minLen, maxLen, density int) {
	rt.circumference = float64(tm.screenW + tm.cfg.MaxGap)

	x := float64(tm.rng.Intn(tm.cfg.MaxGap + 1))
	for x < rt.circumference-float64(maxLen+tm.cfg.MinGap) {
		length := minLen
		if maxLen > minLen {
			length = minLen + tm.rng.Intn(maxLen-minLen+1)
		}
		rt.spans = append(rt.spans, span{x: x, length: length})

		gap := tm.cfg.MinGap
		spread := tm.cfg.MaxGap - tm.cfg.MinGap
		if spread > 0 {
			gap += tm.rng.Intn(spread + 1)
		}
		// Denser rows shrink gaps. Never below the configured minimum.
		gap -= density
		if gap < tm.cfg.MinGap {
			gap = tm.cfg.MinGap
		}
		// Keep the cursor moving even when lengths and gaps are all zero.
		step := length + gap
		if step < 1 {
			step = 1
		}
		x += float64(step)
	}
}

// advance moves the row's occupants by one tick, scaled by the difficulty
// speed multiplier. Returns the horizontal drift applied to spans, which the
// game uses to carry a player standing on a log.
func (rt *rowTraffic) advance(tm *trafficManager, speedMult float64) float64 {
	switch rt.row.Type {
	case terrain.TypeRoad, terrain.TypeWater:
		drift := rt.dir * rt.speed * speedMult
		for i := range rt.spans {
			rt.spans[i].x = wrap(rt.spans[i].x+drift, rt.circumference)
		}
		return drift
	case terrain.TypeRail:
		rt.advanceTrain(tm, speedMult)
	}
	return 0
}

// advanceTrain runs the warn/sweep/cooldown cycle of a rail row.
func (rt *rowTraffic) advanceTrain(tm *trafficManager, speedMult float64) {
	if !rt.trainActive {
		rt.trainTimer--
		if rt.trainTimer <= 0 {
			rt.trainActive = true
			if rt.dir > 0 {
				rt.trainX = -float64(rt.trainLen)
			} else {
				rt.trainX = float64(tm.screenW)
			}
		}
		return
	}

	rt.trainX += rt.dir * rt.speed * speedMult

	passedRight := rt.dir > 0 && rt.trainX > float64(tm.screenW)
	passedLeft := rt.dir < 0 && rt.trainX < -float64(rt.trainLen)
	if passedRight || passedLeft {
		rt.trainActive = false
		rt.trainTimer = rt.trainRest + tm.rng.Intn(rt.trainRest)
	}
}

// warning reports whether the rail row is about to be swept.
func (rt *rowTraffic) warning() bool {
	return rt.row.Type == terrain.TypeRail && !rt.trainActive && rt.trainTimer < rt.trainWarn
}

// occupied reports whether the given column is covered by a span,
// accounting for wrap-around at the circumference edge.
func (rt *rowTraffic) occupied(col int) bool {
	for _, s := range rt.spans {
		if spanCovers(s, col, rt.circumference) {
			return true
		}
	}
	return false
}

// trainCovers reports whether the active train covers the given column.
func (rt *rowTraffic) trainCovers(col int) bool {
	if !rt.trainActive {
		return false
	}
	start := int(math.Floor(rt.trainX))
	return col >= start && col < start+rt.trainLen
}

// spanCovers tests column membership in a possibly wrapping span.
func spanCovers(s span, col int, circumference float64) bool {
	start := int(math.Floor(s.x))
	end := start + s.length
	if end <= int(circumference) {
		return col >= start && col < end
	}
	// Wrapped span: covers the tail and the head of the strip.
	return col >= start || col < end-int(circumference)
}

// wrap keeps x within [0, c).
func wrap(x, c float64) float64 {
	if c <= 0 {
		return x
	}
	x = math.Mod(x, c)
	if x < 0 {
		x += c
	}
	return x
}
