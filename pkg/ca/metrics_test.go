package ca

import "testing"

func TestDensity(t *testing.T) {
	if got := Density(nil); got != 0 {
		t.Fatalf("empty density %v, want 0", got)
	}
	if got := Density([]uint8{0, 0, 0, 0}); got != 0 {
		t.Fatalf("all-zero density %v, want 0", got)
	}
	if got := Density([]uint8{1, 1, 1}); got != 1 {
		t.Fatalf("all-one density %v, want 1", got)
	}
	if got := Density([]uint8{1, 0, 1, 0}); got != 0.5 {
		t.Fatalf("mixed density %v, want 0.5", got)
	}
}

func TestGridDensity(t *testing.T) {
	grid, err := GridFromRows([][]uint8{
		{1, 0},
		{0, 0},
	})
	if err != nil {
		t.Fatal(err)
	}
	if got := grid.Density(); got != 0.25 {
		t.Fatalf("grid density %v, want 0.25", got)
	}
}

func TestStateValidation(t *testing.T) {
	if _, err := NewState(nil); err == nil {
		t.Fatal("empty state accepted")
	}
	if _, err := NewState([]uint8{0, 2, 1}); err == nil {
		t.Fatal("non-binary cell accepted")
	}

	src := []uint8{1, 0, 1}
	s, err := NewState(src)
	if err != nil {
		t.Fatal(err)
	}
	src[0] = 0
	if s[0] != 1 {
		t.Fatal("NewState must copy its input")
	}
}

func TestGridValidation(t *testing.T) {
	if _, err := NewGrid(0, 4); err == nil {
		t.Fatal("zero-width grid accepted")
	}
	if _, err := GridFromRows(nil); err == nil {
		t.Fatal("empty grid accepted")
	}
	if _, err := GridFromRows([][]uint8{{0, 1}, {0}}); err == nil {
		t.Fatal("ragged rows accepted")
	}
	if _, err := GridFromRows([][]uint8{{0, 3}}); err == nil {
		t.Fatal("non-binary grid cell accepted")
	}
}
