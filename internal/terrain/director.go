package terrain

// Director drives generation and cleanup from the player's position.
// It is called once per simulated tick and holds no state of its own beyond
// the window's bounds: after Reset the window moves from its initial fill
// into a steady state where each tick generates exactly the rows the
// player's advance demands and trims the same number behind, amortized O(1).
type Director struct {
	factory *Factory
	window  *Window
	params  Params
}

// NewDirector creates a director over the given factory and window.
// Call Reset before the first Update.
func NewDirector(factory *Factory, window *Window, params Params) *Director {
	return &Director{
		factory: factory,
		window:  window,
		params:  params,
	}
}

// Window exposes the terrain window for read-only iteration by collaborators.
func (d *Director) Window() *Window {
	return d.window
}

// Reset clears the window and regenerates the initial world: a fixed band of
// safe rows centered on the spawn coordinate, then a full frontier fill out
// to the generation distance.
func (d *Director) Reset(spawn int) {
	d.window.Clear()

	d.window.SetTrailing(spawn - d.params.SafeZone)
	for coord := spawn - d.params.SafeZone; coord <= spawn+d.params.SafeZone; coord++ {
		d.put(d.factory.RowForced(coord, TypeSafe))
	}
	d.window.SetFrontier(spawn + d.params.SafeZone)

	d.Update(spawn)
}

// Update advances the frontier to playerCoord + GenerationDistance, one row
// at a time (batch jumps would break the no-repeat-type invariant, which
// depends on sequential generation order), then unconditionally trims rows
// behind playerCoord - CleanupDistance. Update never fails; calling it twice
// with the same coordinate performs no extra work on the second call.
func (d *Director) Update(playerCoord int) {
	targetFrontier := playerCoord + d.params.GenerationDistance
	for d.window.Frontier() < targetFrontier {
		next := d.window.Frontier() + 1
		d.put(d.factory.Row(next))
		d.window.SetFrontier(next)
	}

	d.window.RemoveBefore(playerCoord - d.params.CleanupDistance)
}

// put inserts a freshly generated row. A duplicate coordinate means the
// sequential-generation invariant was broken elsewhere; the stale insert is
// dropped rather than corrupting the window.
func (d *Director) put(row *Row) {
	_ = d.window.Put(row)
}
