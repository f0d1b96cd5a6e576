package main

import (
	"fmt"
	"math/rand/v2"
	"sort"
	"time"
)

// Puzzle is a completed crossword ready for persistence and export.
type Puzzle struct {
	ID        string       `json:"id"`
	Title     string       `json:"title"`
	Author    string       `json:"author"`
	Grid      *Grid        `json:"grid"`
	Across    []PlacedWord `json:"across"`
	Down      []PlacedWord `json:"down"`
	Stats     FillStats    `json:"stats"`
	CreatedAt time.Time    `json:"created_at"`
}

// GenerateOptions configures a single puzzle generation run.
type GenerateOptions struct {
	Title  string
	Author string

	// Theme words must all appear in the puzzle; their clues are kept.
	// GenerateBatch treats this as a pool and samples ThemeSize words
	// per puzzle.
	Theme     []WordEntry
	ThemeSize int
	// Vocabulary fills the remaining slots.
	Vocabulary []WordEntry

	// TargetThematicPct is the favored-word fraction the weighted solver
	// aims for, in [0,1]. Zero disables the bias.
	TargetThematicPct float64

	Budget    time.Duration
	UsedWords []string // words to avoid, e.g. from earlier puzzles
	Rand      *rand.Rand
	Placer    PlacerOptions
}

// GeneratePuzzle places the theme words and completes the grid with the
// CSP solver. The vocabulary index is built per call; batch callers
// should reuse a prebuilt index via GenerateWithIndex.
func GeneratePuzzle(opts GenerateOptions) (*Puzzle, error) {
	if len(opts.Vocabulary) == 0 {
		return nil, fmt.Errorf("empty vocabulary")
	}
	index := BuildIndex(opts.Vocabulary)
	favored := BuildIndex(FilterByScore(opts.Vocabulary, ScoreThematic))
	return GenerateWithIndex(opts, index, favored)
}

// GenerateWithIndex runs generation against prebuilt indexes. favored
// may be nil or empty to use the plain solver.
func GenerateWithIndex(opts GenerateOptions, index, favored *WordIndex) (*Puzzle, error) {
	if len(opts.Theme) < 2 {
		return nil, fmt.Errorf("need at least 2 theme words, got %d", len(opts.Theme))
	}
	if index == nil || index.Len() == 0 {
		return nil, fmt.Errorf("empty vocabulary index")
	}
	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), uint64(time.Now().Nanosecond())))
	}
	if opts.Placer.Size == 0 {
		opts.Placer = DefaultPlacerOptions()
	}

	placement, err := PlaceThemeWords(opts.Theme, rng, opts.Placer)
	if err != nil {
		return nil, fmt.Errorf("place theme words: %w", err)
	}

	var result *FillResult
	if favored != nil && favored.Len() > 0 && opts.TargetThematicPct > 0 {
		result = FillWeighted(placement.Grid, favored, index, opts.TargetThematicPct, opts.Budget, opts.UsedWords)
	} else {
		result = Fill(placement.Grid, index, opts.Budget, opts.UsedWords)
	}
	if !result.Success {
		return nil, fmt.Errorf("fill failed: %d slots unfilled after %s",
			len(result.Unfilled), result.Stats.Elapsed.Round(time.Millisecond))
	}

	clues := clueLookup(opts.Theme, opts.Vocabulary)
	across, down := wordLists(result.Grid, clues)

	return &Puzzle{
		Title:     opts.Title,
		Author:    opts.Author,
		Grid:      result.Grid,
		Across:    across,
		Down:      down,
		Stats:     result.Stats,
		CreatedAt: time.Now(),
	}, nil
}

// GenerateBatch produces count puzzles. opts.Theme acts as the theme
// pool: each puzzle gets a fresh sample of theme words not yet used in
// the batch, so the same answer never headlines two editions. The
// progress callback (optional) fires after each attempt.
func GenerateBatch(count int, opts GenerateOptions, progress func(n int, p *Puzzle, err error)) []*Puzzle {
	index := BuildIndex(opts.Vocabulary)
	favored := BuildIndex(FilterByScore(opts.Vocabulary, ScoreThematic))

	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), uint64(time.Now().Nanosecond())))
	}
	themeSize := opts.ThemeSize
	if themeSize < 2 {
		themeSize = 4
	}

	var puzzles []*Puzzle
	used := append([]string(nil), opts.UsedWords...)
	usedSet := make(map[string]bool, len(used))
	for _, w := range used {
		usedSet[normalizeWord(w)] = true
	}

	for n := 1; n <= count; n++ {
		runOpts := opts
		runOpts.Rand = rng
		runOpts.UsedWords = used
		runOpts.Theme = sampleTheme(opts.Theme, usedSet, themeSize, rng)
		if opts.Title != "" {
			runOpts.Title = fmt.Sprintf("%s %d", opts.Title, n)
		}

		p, err := GenerateWithIndex(runOpts, index, favored)
		if progress != nil {
			progress(n, p, err)
		}
		if err != nil {
			continue
		}
		puzzles = append(puzzles, p)
		// Theme answers stay exclusive across the batch; filler words may
		// repeat between puzzles.
		for _, pw := range append(p.Across, p.Down...) {
			if index.Score(pw.Word) >= ScoreThematic && !usedSet[pw.Word] {
				usedSet[pw.Word] = true
				used = append(used, pw.Word)
			}
		}
	}
	return puzzles
}

// sampleTheme draws up to n unused entries from the theme pool in a
// random order.
func sampleTheme(pool []WordEntry, usedSet map[string]bool, n int, rng *rand.Rand) []WordEntry {
	available := make([]WordEntry, 0, len(pool))
	for _, e := range pool {
		if !usedSet[normalizeWord(e.Word)] {
			available = append(available, e)
		}
	}
	rng.Shuffle(len(available), func(i, j int) {
		available[i], available[j] = available[j], available[i]
	})
	if len(available) > n {
		available = available[:n]
	}
	return available
}

// clueLookup maps words to their display clue, theme entries first.
func clueLookup(theme, vocabulary []WordEntry) map[string]string {
	clues := make(map[string]string, len(theme)+len(vocabulary))
	for _, e := range vocabulary {
		if e.Clue != "" {
			clues[normalizeWord(e.Word)] = e.Clue
		}
	}
	for _, e := range theme {
		if e.Clue != "" {
			clues[normalizeWord(e.Word)] = e.Clue
		}
	}
	return clues
}

// wordLists re-extracts the slots of a completed grid and splits them
// into numbered across and down word lists. Words without a curated
// clue get a bracketed placeholder for later editing.
func wordLists(g *Grid, clues map[string]string) (across, down []PlacedWord) {
	g.AssignNumbers()
	for _, slot := range ExtractSlots(g) {
		r, c := slot.CellAt(0)
		clue, ok := clues[slot.Pattern]
		if !ok {
			clue = "[" + slot.Pattern + "]"
		}
		pw := PlacedWord{
			Word:      slot.Pattern,
			Clue:      clue,
			Row:       slot.Row,
			Col:       slot.Col,
			Direction: slot.Direction,
			Number:    g.Cells[r][c].Number,
		}
		if slot.Direction == Across {
			across = append(across, pw)
		} else {
			down = append(down, pw)
		}
	}
	sort.Slice(across, func(i, j int) bool { return across[i].Number < across[j].Number })
	sort.Slice(down, func(i, j int) bool { return down[i].Number < down[j].Number })
	return across, down
}
