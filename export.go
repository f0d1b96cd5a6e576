package main

import (
	"encoding/json"
	"fmt"
	"strings"
)

// exportCell is one cell in the widget JSON format.
type exportCell struct {
	Type     string `json:"type"` // "black", "letter" or "empty"
	Solution string `json:"solution,omitempty"`
	Number   int    `json:"number,omitempty"`
}

// exportClue is one clue in the widget JSON format.
type exportClue struct {
	Number int    `json:"number"`
	Clue   string `json:"clue"`
	Answer string `json:"answer"`
	Row    int    `json:"row"`
	Col    int    `json:"col"`
	Length int    `json:"length"`
}

// ExportJSON renders the puzzle in the widget format consumed by the
// web embed: metadata, a typed cell grid, and across/down clue lists.
func ExportJSON(p *Puzzle) ([]byte, error) {
	grid := make([][]exportCell, p.Grid.Rows)
	for r := 0; r < p.Grid.Rows; r++ {
		grid[r] = make([]exportCell, p.Grid.Cols)
		for c := 0; c < p.Grid.Cols; c++ {
			cell := p.Grid.Cells[r][c]
			switch {
			case cell.Black:
				grid[r][c] = exportCell{Type: "black"}
			case cell.Letter == "":
				grid[r][c] = exportCell{Type: "empty"}
			default:
				grid[r][c] = exportCell{Type: "letter", Solution: cell.Letter, Number: cell.Number}
			}
		}
	}

	toClues := func(words []PlacedWord) []exportClue {
		out := make([]exportClue, 0, len(words))
		for _, pw := range words {
			out = append(out, exportClue{
				Number: pw.Number, Clue: pw.Clue, Answer: pw.Word,
				Row: pw.Row, Col: pw.Col, Length: len(pw.Word),
			})
		}
		return out
	}

	data := map[string]any{
		"metadata": map[string]any{
			"title":     p.Title,
			"author":    p.Author,
			"date":      p.CreatedAt,
			"rows":      p.Grid.Rows,
			"cols":      p.Grid.Cols,
			"wordCount": len(p.Across) + len(p.Down),
		},
		"grid": grid,
		"clues": map[string]any{
			"across": toClues(p.Across),
			"down":   toClues(p.Down),
		},
	}
	return json.MarshalIndent(data, "", "  ")
}

// ExportIPUZ renders the puzzle in the open IPUZ crossword format
// (http://ipuz.org/v2). Black and never-filled cells both render as "#".
func ExportIPUZ(p *Puzzle) ([]byte, error) {
	puzzle := make([][]string, p.Grid.Rows)
	solution := make([][]any, p.Grid.Rows)
	for r := 0; r < p.Grid.Rows; r++ {
		puzzle[r] = make([]string, p.Grid.Cols)
		solution[r] = make([]any, p.Grid.Cols)
		for c := 0; c < p.Grid.Cols; c++ {
			cell := p.Grid.Cells[r][c]
			switch {
			case cell.Black || cell.Letter == "":
				puzzle[r][c] = "#"
				solution[r][c] = nil
			case cell.Number > 0:
				puzzle[r][c] = fmt.Sprint(cell.Number)
				solution[r][c] = cell.Letter
			default:
				puzzle[r][c] = "0"
				solution[r][c] = cell.Letter
			}
		}
	}

	toClues := func(words []PlacedWord) [][]any {
		out := make([][]any, 0, len(words))
		for _, pw := range words {
			out = append(out, []any{pw.Number, pw.Clue})
		}
		return out
	}

	ipuz := map[string]any{
		"version":    "http://ipuz.org/v2",
		"kind":       []string{"http://ipuz.org/crossword#1"},
		"title":      p.Title,
		"author":     p.Author,
		"notes":      "",
		"dimensions": map[string]int{"width": p.Grid.Cols, "height": p.Grid.Rows},
		"puzzle":     puzzle,
		"solution":   solution,
		"clues": map[string]any{
			"Across": toClues(p.Across),
			"Down":   toClues(p.Down),
		},
	}
	return json.MarshalIndent(ipuz, "", "  ")
}

// ExportText renders a printable plain-text version of the puzzle.
func ExportText(p *Puzzle) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", p.Title)
	if p.Author != "" {
		fmt.Fprintf(&b, "by %s\n", p.Author)
	}
	b.WriteByte('\n')
	b.WriteString(p.Grid.String())

	b.WriteString("\nACROSS\n")
	for _, pw := range p.Across {
		fmt.Fprintf(&b, "  %d. %s (%d)\n", pw.Number, pw.Clue, len(pw.Word))
	}
	b.WriteString("\nDOWN\n")
	for _, pw := range p.Down {
		fmt.Fprintf(&b, "  %d. %s (%d)\n", pw.Number, pw.Clue, len(pw.Word))
	}
	return b.String()
}
