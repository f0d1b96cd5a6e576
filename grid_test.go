package main

import "testing"

func TestPlaceWordCrossingAndConflict(t *testing.T) {
	g := NewGrid(5, 5)

	if !g.PlaceWord("HEART", 0, 0, Across) {
		t.Fatal("HEART should place on an empty row")
	}
	// Crossing at the shared H is legal.
	if !g.PlaceWord("HAPPY", 0, 0, Down) {
		t.Fatal("HAPPY should cross HEART at the shared H")
	}
	// A conflicting letter is not.
	if g.PlaceWord("SMILE", 0, 0, Down) {
		t.Fatal("SMILE must not overwrite existing letters")
	}
	if g.letterAt(1, 0) != 'A' {
		t.Fatalf("cell (1,0) = %q, want A", g.letterAt(1, 0))
	}
}

func TestCanPlaceWordBounds(t *testing.T) {
	g := NewGrid(5, 5)
	if g.CanPlaceWord("HEART", 0, 1, Across) {
		t.Error("word running off the right edge should be rejected")
	}
	if g.CanPlaceWord("HEART", 1, 0, Down) {
		t.Error("word running off the bottom edge should be rejected")
	}
	g.SetBlack(0, 2)
	if g.CanPlaceWord("HEART", 0, 0, Across) {
		t.Error("word through a black square should be rejected")
	}
}

func TestCanPlaceWordParallelAdjacency(t *testing.T) {
	g := NewGrid(5, 5)
	if !g.PlaceWord("AT", 0, 0, Across) {
		t.Fatal("seed placement failed")
	}

	// Directly below without crossing: illegal.
	if g.CanPlaceWord("TO", 1, 0, Across) {
		t.Error("parallel word touching without a crossing should be rejected")
	}
	// One empty row between: legal.
	if !g.CanPlaceWord("TO", 2, 0, Across) {
		t.Error("parallel word with a one-row gap should be accepted")
	}
}

func TestCanPlaceWordRunBoundary(t *testing.T) {
	g := NewGrid(1, 5)
	if !g.PlaceWord("AT", 0, 0, Across) {
		t.Fatal("seed placement failed")
	}

	// A one-cell gap is allowed; the combined run is resolved later.
	if !g.CanPlaceWord("NO", 0, 2, Across) {
		t.Error("word after a one-cell gap should be accepted")
	}
	// Starting right after an existing word would extend its run.
	if g.CanPlaceWord("ON", 0, 1, Across) {
		t.Error("word abutting an existing run should be rejected")
	}
}

func TestFindIntersections(t *testing.T) {
	g := NewGrid(5, 5)
	if !g.PlaceWord("HEART", 0, 0, Across) {
		t.Fatal("seed placement failed")
	}

	positions := g.FindIntersections("APPLE")
	if len(positions) != 1 {
		t.Fatalf("FindIntersections(APPLE) = %v, want exactly 1", positions)
	}
	pos := positions[0]
	if pos.Row != 0 || pos.Col != 2 || pos.Direction != Down || pos.Matches != 1 {
		t.Fatalf("got %+v, want down at (0,2) with 1 match", pos)
	}

	if got := g.FindIntersections("ZZZ"); len(got) != 0 {
		t.Fatalf("word sharing no letters should have no intersections, got %v", got)
	}
}

func TestAssignNumbersScanOrder(t *testing.T) {
	g := NewGrid(5, 5)
	g.SetBlack(0, 4)
	g.SetBlack(4, 0)
	g.AssignNumbers()

	want := map[[2]int]int{
		{0, 0}: 1, {0, 1}: 2, {0, 2}: 3, {0, 3}: 4,
		{1, 0}: 5, {1, 4}: 6,
		{2, 0}: 7,
		{3, 0}: 8,
		{4, 1}: 9,
	}
	for r := 0; r < 5; r++ {
		for c := 0; c < 5; c++ {
			if got := g.Cells[r][c].Number; got != want[[2]int{r, c}] {
				t.Errorf("cell (%d,%d) number = %d, want %d", r, c, got, want[[2]int{r, c}])
			}
		}
	}
}

func TestCloneIsIndependent(t *testing.T) {
	g := NewGrid(3, 3)
	g.PlaceWord("CAT", 0, 0, Across)

	cp := g.Clone()
	cp.SetLetter(2, 2, 'X')
	cp.SetBlack(1, 1)

	if g.letterAt(2, 2) != 0 || g.Cells[1][1].Black {
		t.Fatal("mutating the clone leaked into the original")
	}
	if cp.letterAt(0, 0) != 'C' {
		t.Fatal("clone lost existing letters")
	}
}

func TestGridString(t *testing.T) {
	g := NewGrid(2, 2)
	g.SetBlack(0, 1)
	g.SetLetter(1, 0, 'a')

	want := ". #\nA .\n"
	if got := g.String(); got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
}
