package terrain

import "math/rand"

// TypeWeight pairs a terrain type with its selection weight.
// Weights are kept in a slice (not a map) so selection order is deterministic
// under a fixed seed.
type TypeWeight struct {
	Type   Type
	Weight int
}

// Params holds the named constants that shape terrain generation.
// Supplied at construction; there is no runtime reconfiguration.
type Params struct {
	// GenerationDistance is how many rows ahead of the player the frontier
	// is kept.
	GenerationDistance int

	// CleanupDistance is how many rows behind the player are retained
	// before cleanup removes them.
	CleanupDistance int

	// SafeZone is the number of safe rows laid on each side of the spawn
	// coordinate on reset.
	SafeZone int

	// Weights is the terrain type weight table for random selection.
	Weights []TypeWeight

	// RoadLanes is the set of lane counts a road row may get, chosen
	// uniformly.
	RoadLanes []int

	// Width is the number of tiles per row, bounding decoration offsets.
	Width int

	// DecorChance is the per-tile probability of placing a decoration on
	// grass and safe rows.
	DecorChance float64
}

// DefaultParams returns generation parameters tuned for an 80-column screen.
func DefaultParams() Params {
	return Params{
		GenerationDistance: 20,
		CleanupDistance:    6,
		SafeZone:           2,
		Weights: []TypeWeight{
			{Type: TypeGrass, Weight: 4},
			{Type: TypeRoad, Weight: 4},
			{Type: TypeRail, Weight: 2},
			{Type: TypeWater, Weight: 2},
		},
		RoadLanes:   []int{2, 3, 4},
		Width:       80,
		DecorChance: 0.08,
	}
}

// Factory builds single terrain rows from weighted random choices.
// Its only mutable state is the RNG and the memo of the last weighted type,
// which forbids immediate repeats. The memo is an explicit field so multiple
// game instances never interfere with each other.
type Factory struct {
	rng      *rand.Rand
	params   Params
	lastType Type
	hasLast  bool
}

// NewFactory creates a row factory with the given seed and parameters.
func NewFactory(seed int64, params Params) *Factory {
	return &Factory{
		rng:    rand.New(rand.NewSource(seed)),
		params: params,
	}
}

// Row builds the row at the given coordinate with a weighted-random type.
// The type never repeats the immediately previous weighted choice, provided
// more than one weighted type is configured. Generation cannot fail; with a
// single weighted type it degenerates to that type.
func (f *Factory) Row(coord int) *Row {
	t := f.pickType()
	f.lastType = t
	f.hasLast = true
	return f.build(coord, t)
}

// RowForced builds the row at the given coordinate with an explicit type.
// Used only for the safe-start band around spawn; it does not participate in
// the no-repeat memo.
func (f *Factory) RowForced(coord int, t Type) *Row {
	return f.build(coord, t)
}

// pickType draws a terrain type from the weight table, filtering out the
// previous pick when alternatives exist. Filtering (rather than unbounded
// re-rolling) keeps selection total and bounded.
func (f *Factory) pickType() Type {
	candidates := f.params.Weights
	if f.hasLast && len(candidates) > 1 {
		filtered := make([]TypeWeight, 0, len(candidates)-1)
		for _, tw := range candidates {
			if tw.Type != f.lastType {
				filtered = append(filtered, tw)
			}
		}
		if len(filtered) > 0 {
			candidates = filtered
		}
	}

	total := 0
	for _, tw := range candidates {
		total += tw.Weight
	}
	if total <= 0 {
		return TypeGrass
	}

	pick := f.rng.Intn(total)
	cumulative := 0
	for _, tw := range candidates {
		cumulative += tw.Weight
		if pick < cumulative {
			return tw.Type
		}
	}
	return candidates[len(candidates)-1].Type
}

// build assembles the immutable row description for a chosen type.
func (f *Factory) build(coord int, t Type) *Row {
	row := &Row{
		Coordinate: coord,
		Type:       t,
		Lanes:      f.lanesFor(t),
		Direction:  Forward,
	}

	// Direction is uniform and independent of type.
	if f.rng.Intn(2) == 1 {
		row.Direction = Backward
	}

	row.Decorations = f.decorate(t)
	return row
}

// lanesFor returns the lane count for a terrain type: road rows get a
// uniform pick from the configured choices, rail rows are fixed at one
// track, everything else has no lanes.
func (f *Factory) lanesFor(t Type) int {
	switch t {
	case TypeRoad:
		if len(f.params.RoadLanes) == 0 {
			return 2
		}
		return f.params.RoadLanes[f.rng.Intn(len(f.params.RoadLanes))]
	case TypeRail:
		return 1
	default:
		return 0
	}
}

// decorate rolls per-tile cosmetic decorations for grass and safe rows.
func (f *Factory) decorate(t Type) []Decoration {
	if t != TypeGrass && t != TypeSafe {
		return nil
	}

	var decor []Decoration
	for x := 0; x < f.params.Width; x++ {
		if f.rng.Float64() >= f.params.DecorChance {
			continue
		}
		kind := DecorKind(f.rng.Intn(3))
		decor = append(decor, Decoration{Offset: x, Kind: kind})
	}
	return decor
}
