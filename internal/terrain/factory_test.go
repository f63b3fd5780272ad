package terrain

import "testing"

func TestFactoryNoImmediateRepeat(t *testing.T) {
	f := NewFactory(42, DefaultParams())

	prev := f.Row(0)
	for c := 1; c < 500; c++ {
		row := f.Row(c)
		if row.Type == prev.Type {
			t.Fatalf("row %d repeats type %v of row %d", c, row.Type, c-1)
		}
		prev = row
	}
}

func TestFactorySingleTypeDegenerates(t *testing.T) {
	params := DefaultParams()
	params.Weights = []TypeWeight{{Type: TypeGrass, Weight: 1}}

	f := NewFactory(7, params)
	for c := 0; c < 50; c++ {
		if row := f.Row(c); row.Type != TypeGrass {
			t.Fatalf("row %d has type %v, expected grass with a single weighted type", c, row.Type)
		}
	}
}

func TestFactoryLaneCounts(t *testing.T) {
	f := NewFactory(99, DefaultParams())

	for c := 0; c < 1000; c++ {
		row := f.Row(c)
		switch row.Type {
		case TypeRoad:
			if row.Lanes < 2 || row.Lanes > 4 {
				t.Fatalf("road row %d has %d lanes, expected 2-4", c, row.Lanes)
			}
		case TypeRail:
			if row.Lanes != 1 {
				t.Fatalf("rail row %d has %d lanes, expected 1", c, row.Lanes)
			}
		default:
			if row.Lanes != 0 {
				t.Fatalf("%v row %d has %d lanes, expected 0", row.Type, c, row.Lanes)
			}
		}
		if row.Direction != Forward && row.Direction != Backward {
			t.Fatalf("row %d has invalid direction %v", c, row.Direction)
		}
	}
}

func TestFactoryForcedType(t *testing.T) {
	f := NewFactory(1, DefaultParams())

	row := f.RowForced(0, TypeSafe)
	if row.Type != TypeSafe {
		t.Errorf("forced row has type %v, expected safe", row.Type)
	}
	if row.Coordinate != 0 {
		t.Errorf("forced row has coordinate %d, expected 0", row.Coordinate)
	}
	if row.Lanes != 0 {
		t.Errorf("safe row has %d lanes, expected 0", row.Lanes)
	}
}

func TestFactoryDeterminism(t *testing.T) {
	params := DefaultParams()
	f1 := NewFactory(12345, params)
	f2 := NewFactory(12345, params)

	for c := 0; c < 200; c++ {
		r1 := f1.Row(c)
		r2 := f2.Row(c)

		if r1.Type != r2.Type || r1.Lanes != r2.Lanes || r1.Direction != r2.Direction {
			t.Fatalf("row %d differs between seeded runs: %+v vs %+v", c, r1, r2)
		}
		if len(r1.Decorations) != len(r2.Decorations) {
			t.Fatalf("row %d decoration counts differ: %d vs %d", c, len(r1.Decorations), len(r2.Decorations))
		}
		for i := range r1.Decorations {
			if r1.Decorations[i] != r2.Decorations[i] {
				t.Fatalf("row %d decoration %d differs", c, i)
			}
		}
	}
}

func TestFactoryDecorationsOnlyOnGrassAndSafe(t *testing.T) {
	f := NewFactory(3, DefaultParams())

	for c := 0; c < 500; c++ {
		row := f.Row(c)
		if row.Type == TypeGrass || row.Type == TypeSafe {
			for _, d := range row.Decorations {
				if d.Offset < 0 || d.Offset >= f.params.Width {
					t.Fatalf("row %d decoration offset %d outside [0,%d)", c, d.Offset, f.params.Width)
				}
			}
			continue
		}
		if len(row.Decorations) != 0 {
			t.Fatalf("%v row %d has decorations", row.Type, c)
		}
	}
}
