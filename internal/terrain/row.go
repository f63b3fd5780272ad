// Package terrain implements windowed procedural terrain streaming for
// runner-style games: rows of world are generated one at a time ahead of the
// player and discarded once they fall far enough behind.
//
// Coordinate convention: row coordinates increase in the direction of travel,
// so the player advances toward +infinity. The frontier (furthest generated
// coordinate) and the trailing bound (nearest retained coordinate) are both
// non-decreasing between resets.
package terrain

// Type classifies a row's gameplay semantics.
type Type int

const (
	TypeGrass Type = iota
	TypeRoad
	TypeRail
	TypeWater
	TypeSafe
)

// String returns a human-readable name for the terrain type.
func (t Type) String() string {
	switch t {
	case TypeGrass:
		return "grass"
	case TypeRoad:
		return "road"
	case TypeRail:
		return "rail"
	case TypeWater:
		return "water"
	case TypeSafe:
		return "safe"
	default:
		return "unknown"
	}
}

// Direction is the travel direction of anything moving along a row
// (vehicles, trains, logs).
type Direction int

const (
	Forward Direction = iota
	Backward
)

// DecorKind identifies a cosmetic decoration placed on a row tile.
type DecorKind int

const (
	DecorTree DecorKind = iota
	DecorRock
	DecorFlower
)

// Decoration is a lightweight cosmetic descriptor: a tile offset within the
// row plus a visual kind. Generated once, immutable thereafter; any animation
// state belongs to the renderer, not to the terrain model.
type Decoration struct {
	Offset int
	Kind   DecorKind
}

// Row represents one traversable strip of world at a fixed coordinate along
// the travel axis. A Row is never mutated after creation; its coordinate is
// unique within a window at all times.
type Row struct {
	Coordinate  int
	Type        Type
	Lanes       int // meaningful for road (2-4) and rail (1) rows, 0 otherwise
	Direction   Direction
	Decorations []Decoration
}
