package bubble

import "fmt"

// Curve controls how level parameters scale with the level number.
// All growth is stepped: a parameter changes only every N levels, so
// consecutive levels feel similar and jumps land on predictable
// boundaries.
type Curve struct {
	BaseRows       int
	MaxRows        int
	RowsEvery      int
	BaseColors     int
	MaxColors      int
	ColorsEvery    int
	BaseShots      int
	MinShots       int
	ShotsDecEvery  int
	ShotsDecAmount int
}

// DefaultCurve returns the standard progression.
func DefaultCurve() Curve {
	return Curve{
		BaseRows:       4,
		MaxRows:        12,
		RowsEvery:      2,
		BaseColors:     3,
		MaxColors:      int(ColorCount),
		ColorsEvery:    3,
		BaseShots:      30,
		MinShots:       12,
		ShotsDecEvery:  3,
		ShotsDecAmount: 2,
	}
}

// LevelParams are the derived parameters for a single level.
type LevelParams struct {
	Rows   int
	Colors int
	Shots  int
}

// ParamsFor derives the parameters for a 1-based level number.
// Rows and colors grow stepwise and saturate at their maxima; the shot
// budget shrinks stepwise and floors at MinShots.
func (c Curve) ParamsFor(level int) LevelParams {
	if level < 1 {
		level = 1
	}
	step := level - 1

	rows := c.BaseRows + step/c.RowsEvery
	if rows > c.MaxRows {
		rows = c.MaxRows
	}

	colors := c.BaseColors + step/c.ColorsEvery
	if colors > c.MaxColors {
		colors = c.MaxColors
	}

	shots := c.BaseShots - c.ShotsDecAmount*(step/c.ShotsDecEvery)
	if shots < c.MinShots {
		shots = c.MinShots
	}

	return LevelParams{Rows: rows, Colors: colors, Shots: shots}
}

// Layout is a hand-authored starting board as an ASCII map. Each line is
// one grid row; a character is either a color letter or '.' for an empty
// cell.
type Layout struct {
	ID    string
	Name  string
	Lines []string
}

// ParseLayout validates an ASCII map. Every character must be '.' or a
// known color letter, and no line may exceed the given column count.
// Bad layouts are authoring bugs, so validation fails fast rather than
// skipping cells.
func ParseLayout(id, name string, cols int, lines []string) (*Layout, error) {
	for r, line := range lines {
		if len(line) > cols {
			return nil, fmt.Errorf("layout %s: row %d has %d cells, max %d", id, r, len(line), cols)
		}
		for c := 0; c < len(line); c++ {
			ch := line[c]
			if ch == '.' {
				continue
			}
			if _, ok := ParseColorChar(ch); !ok {
				return nil, fmt.Errorf("layout %s: unknown cell %q at row %d col %d", id, ch, r, c)
			}
		}
	}
	return &Layout{ID: id, Name: name, Lines: lines}, nil
}

// Populate places the layout's bubbles on the board. The board should be
// empty; occupied cells are overwritten.
func (l *Layout) Populate(b *Board) {
	for r, line := range l.Lines {
		for c := 0; c < len(line); c++ {
			color, ok := ParseColorChar(line[c])
			if !ok {
				continue
			}
			b.Place(Cell{Row: r, Col: c}, color)
		}
	}
}

// Colors returns the distinct colors the layout uses, in palette order.
func (l *Layout) Colors() []BubbleColor {
	var seen [ColorCount]bool
	for _, line := range l.Lines {
		for c := 0; c < len(line); c++ {
			if color, ok := ParseColorChar(line[c]); ok {
				seen[color] = true
			}
		}
	}
	var colors []BubbleColor
	for i, used := range seen {
		if used {
			colors = append(colors, BubbleColor(i))
		}
	}
	return colors
}

// mustLayout wraps ParseLayout for the built-in set, where a parse error
// is a programming mistake.
func mustLayout(id, name string, cols int, lines []string) *Layout {
	l, err := ParseLayout(id, name, cols, lines)
	if err != nil {
		panic(err)
	}
	return l
}

// BuiltinLayouts returns the hand-authored campaign openers. Levels past
// this set are generated procedurally. Every layout stays within the
// default curve's active palette for its level, so the shot queue can
// always produce a color that matches what is on the board.
func BuiltinLayouts(cols int) []*Layout {
	return []*Layout{
		mustLayout("stripes", "Stripes", cols, []string{
			"RRRRRRRRRR",
			"GGGGGGGGG",
			"BBBBBBBBBB",
			"RRRRRRRRR",
		}),
		mustLayout("columns", "Columns", cols, []string{
			"RGBRGBRGBR",
			"RGBRGBRGB",
			"RGBRGBRGBR",
			"RGBRGBRGB",
		}),
		mustLayout("arch", "Arch", cols, []string{
			"BBBBBBBBBB",
			"BGG...GGB",
			"BG.....GBB",
			"BG.....GB",
		}),
		mustLayout("checker", "Checker", cols, []string{
			"R.B.R.B.R.",
			".G.Y.G.Y.",
			"B.R.B.R.B.",
			".Y.G.Y.G.",
			"R.B.R.B.R.",
		}),
		mustLayout("wedge", "Wedge", cols, []string{
			"YYYYYYYYYY",
			"BYYYYYYYB",
			"BBYYYYYYBB",
			"BBBYYYYBB",
			"BBBBYYBBBB",
			"BBBBBBBBB",
		}),
	}
}

// GenerateBoard fills the board with a procedural starting field. Higher
// rows are denser; the gap probability grows toward the bottom so the
// field tapers off instead of ending in a hard edge.
func GenerateBoard(b *Board, params LevelParams, rng *RNG) {
	palette := Palette(params.Colors)
	for r := 0; r < params.Rows; r++ {
		skip := 0.05 + 0.30*float64(r)/float64(params.Rows)
		for c := 0; c < b.Cols(); c++ {
			if rng.Float() < skip {
				continue
			}
			b.Place(Cell{Row: r, Col: c}, palette[rng.Intn(len(palette))])
		}
	}
}

// PickColor draws a random color from the first n palette colors.
func PickColor(n int, rng *RNG) BubbleColor {
	palette := Palette(n)
	return palette[rng.Intn(len(palette))]
}
