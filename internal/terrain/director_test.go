package terrain

import "testing"

func testParams() Params {
	p := DefaultParams()
	p.GenerationDistance = 5
	p.CleanupDistance = 3
	p.SafeZone = 2
	return p
}

func newTestDirector(seed int64, p Params) *Director {
	return NewDirector(NewFactory(seed, p), NewWindow(nil), p)
}

// checkContiguity verifies that every coordinate between the trailing and
// frontier bounds has exactly one row.
func checkContiguity(t *testing.T, w *Window) {
	t.Helper()
	for c := w.Trailing(); c <= w.Frontier(); c++ {
		if _, ok := w.Get(c); !ok {
			t.Fatalf("gap in window: no row at %d (trailing %d, frontier %d)", c, w.Trailing(), w.Frontier())
		}
	}
	if w.Len() != w.Frontier()-w.Trailing()+1 {
		t.Fatalf("window holds %d rows, bounds imply %d", w.Len(), w.Frontier()-w.Trailing()+1)
	}
}

func TestDirectorReset(t *testing.T) {
	p := testParams()
	d := newTestDirector(42, p)

	d.Reset(0)
	w := d.Window()

	if w.Frontier() != 5 {
		t.Errorf("frontier after reset = %d, expected 5", w.Frontier())
	}
	if w.Trailing() != -2 {
		t.Errorf("trailing after reset = %d, expected safe band edge -2", w.Trailing())
	}

	// Safe band centered on spawn.
	for c := -2; c <= 2; c++ {
		row, ok := w.Get(c)
		if !ok || row.Type != TypeSafe {
			t.Errorf("row %d should be a safe row", c)
		}
	}

	checkContiguity(t, w)
}

func TestDirectorUpdateIdempotent(t *testing.T) {
	d := newTestDirector(42, testParams())
	d.Reset(0)
	w := d.Window()

	frontier, trailing, count := w.Frontier(), w.Trailing(), w.Len()

	// Same player coordinate: no generation, no cleanup.
	d.Update(0)
	if w.Frontier() != frontier || w.Trailing() != trailing || w.Len() != count {
		t.Errorf("repeated Update(0) changed the window: frontier %d->%d trailing %d->%d len %d->%d",
			frontier, w.Frontier(), trailing, w.Trailing(), count, w.Len())
	}
}

func TestDirectorAdvance(t *testing.T) {
	d := newTestDirector(42, testParams())
	d.Reset(0)
	w := d.Window()

	// Player advances 2 rows: exactly 2 new rows generated, rows behind
	// 2 - 3 = -1 culled.
	d.Update(2)

	if w.Frontier() != 7 {
		t.Errorf("frontier = %d, expected 7", w.Frontier())
	}
	if w.Trailing() != -1 {
		t.Errorf("trailing = %d, expected -1", w.Trailing())
	}
	if _, ok := w.Get(-2); ok {
		t.Error("row -2 should have been culled")
	}
	checkContiguity(t, w)
}

func TestDirectorSteadyStateInvariants(t *testing.T) {
	d := newTestDirector(7, testParams())
	d.Reset(0)
	w := d.Window()

	prevFrontier, prevTrailing := w.Frontier(), w.Trailing()

	player := 0
	for tick := 0; tick < 300; tick++ {
		if tick%3 == 0 {
			player++ // steady advance
		}
		d.Update(player)

		if w.Frontier() < prevFrontier {
			t.Fatalf("frontier moved backwards: %d -> %d", prevFrontier, w.Frontier())
		}
		if w.Trailing() < prevTrailing {
			t.Fatalf("trailing moved backwards: %d -> %d", prevTrailing, w.Trailing())
		}
		prevFrontier, prevTrailing = w.Frontier(), w.Trailing()

		checkContiguity(t, w)
	}

	// Steady state: window size is bounded by the two distances.
	maxRows := testParams().GenerationDistance + testParams().CleanupDistance + 1
	if w.Len() > maxRows {
		t.Errorf("steady-state window holds %d rows, expected at most %d", w.Len(), maxRows)
	}
}

func TestDirectorNoRepeatAcrossGeneration(t *testing.T) {
	d := newTestDirector(99, testParams())
	d.Reset(0)
	w := d.Window()

	for player := 1; player <= 200; player++ {
		d.Update(player)
	}

	// Rows past the safe band were generated sequentially; consecutive
	// coordinates must differ in type.
	start := testParams().SafeZone + 1
	for c := w.Trailing(); c < w.Frontier(); c++ {
		if c < start {
			continue
		}
		a, okA := w.Get(c)
		b, okB := w.Get(c + 1)
		if !okA || !okB {
			continue
		}
		if a.Type == b.Type {
			t.Fatalf("rows %d and %d share type %v", c, c+1, a.Type)
		}
	}
}

func TestDirectorResetAfterRun(t *testing.T) {
	var released int
	p := testParams()
	w := NewWindow(func(*Row) { released++ })
	d := NewDirector(NewFactory(42, p), w, p)

	d.Reset(0)
	for player := 1; player <= 50; player++ {
		d.Update(player)
	}

	retained := w.Len()
	released = 0
	d.Reset(0)

	if released < retained {
		t.Errorf("reset released %d rows, expected at least the %d retained", released, retained)
	}
	if w.Frontier() != 5 || w.Trailing() != -2 {
		t.Errorf("bounds after second reset = (%d, %d), expected (-2, 5)", w.Trailing(), w.Frontier())
	}
	checkContiguity(t, w)
}

func TestDirectorDeterminism(t *testing.T) {
	p := testParams()

	run := func(seed int64) []Type {
		d := newTestDirector(seed, p)
		d.Reset(0)
		for player := 1; player <= 40; player++ {
			d.Update(player)
		}
		var types []Type
		for _, row := range d.Window().Rows() {
			types = append(types, row.Type)
		}
		return types
	}

	a := run(12345)
	b := run(12345)
	if len(a) != len(b) {
		t.Fatalf("runs produced different window sizes: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("seeded runs diverge at index %d: %v vs %v", i, a[i], b[i])
		}
	}
}
