package terrain

import "testing"

func TestWindowPutGet(t *testing.T) {
	w := NewWindow(nil)

	row := &Row{Coordinate: 3, Type: TypeGrass}
	if err := w.Put(row); err != nil {
		t.Fatalf("Put() failed: %v", err)
	}

	got, ok := w.Get(3)
	if !ok {
		t.Fatal("Get(3) should find the inserted row")
	}
	if got != row {
		t.Error("Get(3) returned a different row")
	}

	if _, ok := w.Get(99); ok {
		t.Error("Get on an absent coordinate should report not found")
	}
}

func TestWindowPutRejectsDuplicate(t *testing.T) {
	w := NewWindow(nil)

	first := &Row{Coordinate: 5, Type: TypeRoad, Lanes: 3}
	if err := w.Put(first); err != nil {
		t.Fatalf("Put() failed: %v", err)
	}

	if err := w.Put(&Row{Coordinate: 5, Type: TypeWater}); err == nil {
		t.Fatal("Put at an occupied coordinate should fail")
	}

	// The original row must be untouched.
	got, _ := w.Get(5)
	if got != first {
		t.Error("duplicate Put must not replace the existing row")
	}
}

func TestWindowRemoveBefore(t *testing.T) {
	w := NewWindow(nil)
	for c := 0; c < 10; c++ {
		if err := w.Put(&Row{Coordinate: c, Type: TypeGrass}); err != nil {
			t.Fatalf("Put(%d) failed: %v", c, err)
		}
	}
	w.SetTrailing(0)
	w.SetFrontier(9)

	removed := w.RemoveBefore(4)
	if len(removed) != 4 {
		t.Errorf("RemoveBefore(4) removed %d rows, expected 4", len(removed))
	}

	// Everything behind the bound is gone, everything else untouched.
	for c := 0; c < 4; c++ {
		if _, ok := w.Get(c); ok {
			t.Errorf("row %d should have been removed", c)
		}
	}
	for c := 4; c < 10; c++ {
		if _, ok := w.Get(c); !ok {
			t.Errorf("row %d should have been retained", c)
		}
	}

	if w.Trailing() != 4 {
		t.Errorf("Trailing() = %d, expected 4", w.Trailing())
	}

	// Nothing qualifies: cheap no-op, trailing unchanged.
	if removed := w.RemoveBefore(2); len(removed) != 0 {
		t.Errorf("second RemoveBefore removed %d rows, expected 0", len(removed))
	}
	if w.Trailing() != 4 {
		t.Errorf("no-op RemoveBefore must not move trailing backwards, got %d", w.Trailing())
	}
}

func TestWindowReleaseCallback(t *testing.T) {
	var released []int
	w := NewWindow(func(r *Row) {
		released = append(released, r.Coordinate)
	})

	for c := 0; c < 5; c++ {
		if err := w.Put(&Row{Coordinate: c, Type: TypeGrass}); err != nil {
			t.Fatalf("Put(%d) failed: %v", c, err)
		}
	}

	w.RemoveBefore(2)
	if len(released) != 2 {
		t.Fatalf("release callback fired %d times, expected 2", len(released))
	}
	for _, c := range released {
		if c >= 2 {
			t.Errorf("released row %d was not behind the bound", c)
		}
	}

	released = released[:0]
	w.Clear()
	if len(released) != 3 {
		t.Errorf("Clear should release the remaining 3 rows, released %d", len(released))
	}
	if w.Len() != 0 {
		t.Errorf("window should be empty after Clear, has %d rows", w.Len())
	}
}

func TestWindowRowsSorted(t *testing.T) {
	w := NewWindow(nil)
	for _, c := range []int{7, 2, 9, 4} {
		if err := w.Put(&Row{Coordinate: c, Type: TypeGrass}); err != nil {
			t.Fatalf("Put(%d) failed: %v", c, err)
		}
	}

	rows := w.Rows()
	if len(rows) != 4 {
		t.Fatalf("Rows() returned %d rows, expected 4", len(rows))
	}
	for i := 1; i < len(rows); i++ {
		if rows[i-1].Coordinate >= rows[i].Coordinate {
			t.Fatalf("Rows() not sorted: %d before %d", rows[i-1].Coordinate, rows[i].Coordinate)
		}
	}
}
