package main

import "strings"

// Direction of a word in the grid.
type Direction string

const (
	Across Direction = "across"
	Down   Direction = "down"
)

// Cell represents a single cell in the crossword grid.
// A cell is either a black square (Black=true) or a letter cell where a
// solution letter lives. Number is set on cells that start an across or
// down run; zero means unnumbered.
type Cell struct {
	Letter string `json:"letter,omitempty"`
	Black  bool   `json:"black,omitempty"`
	Number int    `json:"number,omitempty"`
}

// Grid represents a rectangular crossword grid.
type Grid struct {
	Rows  int      `json:"rows"`
	Cols  int      `json:"cols"`
	Cells [][]Cell `json:"cells"`
}

// PlacedWord records a word placed in the grid with its clue.
type PlacedWord struct {
	Word      string    `json:"word"`
	Clue      string    `json:"clue"`
	Row       int       `json:"row"`
	Col       int       `json:"col"`
	Direction Direction `json:"direction"`
	Number    int       `json:"number"`
}

// NewGrid creates an empty grid of the given dimensions.
func NewGrid(rows, cols int) *Grid {
	cells := make([][]Cell, rows)
	for i := range cells {
		cells[i] = make([]Cell, cols)
	}
	return &Grid{Rows: rows, Cols: cols, Cells: cells}
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	cp := NewGrid(g.Rows, g.Cols)
	for r := range g.Cells {
		copy(cp.Cells[r], g.Cells[r])
	}
	return cp
}

// InBounds reports whether the position lies inside the grid.
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.Rows && col >= 0 && col < g.Cols
}

// SetBlack marks a cell as a black square and clears any letter.
func (g *Grid) SetBlack(row, col int) {
	if g.InBounds(row, col) {
		g.Cells[row][col] = Cell{Black: true}
	}
}

// SetLetter writes an uppercase letter into a cell. Black cells are left
// untouched.
func (g *Grid) SetLetter(row, col int, letter byte) {
	if g.InBounds(row, col) && !g.Cells[row][col].Black {
		g.Cells[row][col].Letter = string(upperByte(letter))
	}
}

// letterAt returns the letter at a position as a byte, or 0 if the cell
// is empty, black, or out of bounds.
func (g *Grid) letterAt(row, col int) byte {
	if !g.InBounds(row, col) {
		return 0
	}
	c := g.Cells[row][col]
	if c.Black || c.Letter == "" {
		return 0
	}
	return c.Letter[0]
}

// step returns the i-th cell coordinate of a word starting at (row, col)
// in the given direction.
func step(row, col, i int, dir Direction) (int, int) {
	if dir == Across {
		return row, col + i
	}
	return row + i, col
}

// CanPlaceWord reports whether the word can be legally placed at the
// given position. The check covers bounds, black squares, letter
// conflicts, parallel adjacency (a new letter may not touch a parallel
// word without crossing it), and boundary cells before and after the
// word.
func (g *Grid) CanPlaceWord(word string, row, col int, dir Direction) bool {
	word = strings.ToUpper(word)

	for i := 0; i < len(word); i++ {
		r, c := step(row, col, i, dir)
		if !g.InBounds(r, c) {
			return false
		}
		cell := g.Cells[r][c]
		if cell.Black {
			return false
		}
		if cell.Letter != "" && cell.Letter[0] != word[i] {
			return false
		}
	}

	// Cells that are not crossings must not touch letters on either side.
	for i := 0; i < len(word); i++ {
		r, c := step(row, col, i, dir)
		if g.Cells[r][c].Letter != "" {
			continue // crossing an existing word is fine
		}
		if dir == Across {
			if g.letterAt(r-1, c) != 0 || g.letterAt(r+1, c) != 0 {
				return false
			}
		} else {
			if g.letterAt(r, c-1) != 0 || g.letterAt(r, c+1) != 0 {
				return false
			}
		}
	}

	// The cells immediately before and after the word must be free of
	// letters, otherwise the word would extend an existing run.
	var br, bc, ar, ac int
	if dir == Across {
		br, bc = row, col-1
		ar, ac = row, col+len(word)
	} else {
		br, bc = row-1, col
		ar, ac = row+len(word), col
	}
	if g.letterAt(br, bc) != 0 || g.letterAt(ar, ac) != 0 {
		return false
	}

	return true
}

// PlaceWord writes a word into the grid if the placement is legal.
// Numbers are not assigned here; call AssignNumbers once the grid is
// complete.
func (g *Grid) PlaceWord(word string, row, col int, dir Direction) bool {
	if !g.CanPlaceWord(word, row, col, dir) {
		return false
	}
	word = strings.ToUpper(word)
	for i := 0; i < len(word); i++ {
		r, c := step(row, col, i, dir)
		g.SetLetter(r, c, word[i])
	}
	return true
}

// Position is a candidate placement for a word, ranked by how many
// existing letters it matches.
type Position struct {
	Row       int
	Col       int
	Direction Direction
	Matches   int
}

// FindIntersections returns every legal placement of the word that
// crosses at least one existing letter, with the number of letters each
// placement matches simultaneously.
func (g *Grid) FindIntersections(word string) []Position {
	word = strings.ToUpper(word)
	var positions []Position

	for r := 0; r < g.Rows; r++ {
		for c := 0; c < g.Cols; c++ {
			letter := g.letterAt(r, c)
			if letter == 0 {
				continue
			}
			for i := 0; i < len(word); i++ {
				if word[i] != letter {
					continue
				}
				// Across with the crossing at index i.
				if startCol := c - i; g.CanPlaceWord(word, r, startCol, Across) {
					positions = append(positions, Position{
						Row: r, Col: startCol, Direction: Across,
						Matches: g.countMatches(word, r, startCol, Across),
					})
				}
				// Down with the crossing at index i.
				if startRow := r - i; g.CanPlaceWord(word, startRow, c, Down) {
					positions = append(positions, Position{
						Row: startRow, Col: c, Direction: Down,
						Matches: g.countMatches(word, startRow, c, Down),
					})
				}
			}
		}
	}

	return positions
}

func (g *Grid) countMatches(word string, row, col int, dir Direction) int {
	n := 0
	for i := 0; i < len(word); i++ {
		r, c := step(row, col, i, dir)
		if g.letterAt(r, c) != 0 {
			n++
		}
	}
	return n
}

// AssignNumbers walks the grid in reading order and numbers every cell
// that starts an across or down run of length >= 2. Existing numbers are
// replaced. Returns the grid for chaining.
func (g *Grid) AssignNumbers() *Grid {
	next := 1
	for r := 0; r < g.Rows; r++ {
		for c := 0; c < g.Cols; c++ {
			if g.Cells[r][c].Black {
				g.Cells[r][c].Number = 0
				continue
			}
			startsAcross := (c == 0 || g.Cells[r][c-1].Black) &&
				c+1 < g.Cols && !g.Cells[r][c+1].Black
			startsDown := (r == 0 || g.Cells[r-1][c].Black) &&
				r+1 < g.Rows && !g.Cells[r+1][c].Black
			if startsAcross || startsDown {
				g.Cells[r][c].Number = next
				next++
			} else {
				g.Cells[r][c].Number = 0
			}
		}
	}
	return g
}

// FilledCells counts cells that hold a letter.
func (g *Grid) FilledCells() int {
	n := 0
	for r := range g.Cells {
		for c := range g.Cells[r] {
			if g.Cells[r][c].Letter != "" {
				n++
			}
		}
	}
	return n
}

// String renders the grid as ASCII art: '#' for black squares, '.' for
// empty cells.
func (g *Grid) String() string {
	var b strings.Builder
	for r := 0; r < g.Rows; r++ {
		for c := 0; c < g.Cols; c++ {
			if c > 0 {
				b.WriteByte(' ')
			}
			cell := g.Cells[r][c]
			switch {
			case cell.Black:
				b.WriteByte('#')
			case cell.Letter == "":
				b.WriteByte('.')
			default:
				b.WriteString(cell.Letter)
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func upperByte(b byte) byte {
	if b >= 'a' && b <= 'z' {
		return b - 'a' + 'A'
	}
	return b
}
