package bubble

import "sort"

// Snapshot contains the complete game state for replay/save/determinism
// checks. Uses primitive types only for stable serialization.
type Snapshot struct {
	Tick            uint64
	Score           int
	Level           int
	ShotsLeft       int
	State           string
	TransitionDelay int

	// Game mode
	Mode int // 0=Campaign, 1=Endless

	// Shooter state (angle and projectile scaled x1000 to stay integral)
	AngleMilli   int
	CurrentColor int
	NextColor    int

	// Projectile state (5 ints: X, Y, VX, VY all x1000, Color); empty
	// when no projectile is in flight
	ProjData []int

	// Board state, row-major sorted (each bubble is 3 ints: Row, Col, Color)
	BubbleCount int
	BubbleData  []int

	// RNG state
	RNGState uint64
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	// Collect and sort bubbles for a stable order
	bubbles := make([]*Bubble, 0, g.board.Size())
	g.board.ForEach(func(b *Bubble) {
		bubbles = append(bubbles, b)
	})
	sort.Slice(bubbles, func(i, j int) bool {
		if bubbles[i].Cell.Row != bubbles[j].Cell.Row {
			return bubbles[i].Cell.Row < bubbles[j].Cell.Row
		}
		return bubbles[i].Cell.Col < bubbles[j].Cell.Col
	})

	bubbleData := make([]int, 0, len(bubbles)*3)
	for _, b := range bubbles {
		bubbleData = append(bubbleData, b.Cell.Row, b.Cell.Col, int(b.Color))
	}

	var projData []int
	if g.proj != nil {
		projData = []int{
			int(g.proj.X * 1000),
			int(g.proj.Y * 1000),
			int(g.proj.VX * 1000),
			int(g.proj.VY * 1000),
			int(g.proj.Color),
		}
	}

	return Snapshot{
		Tick:            uint64(g.tickCount), //#nosec G115 -- tick count is always positive
		Score:           g.score,
		Level:           g.level,
		ShotsLeft:       g.shotsLeft,
		State:           g.state,
		TransitionDelay: g.transitionDelay,

		Mode: int(g.mode),

		AngleMilli:   int(g.angle * 1000),
		CurrentColor: int(g.currentColor),
		NextColor:    int(g.nextColor),

		ProjData: projData,

		BubbleCount: len(bubbles),
		BubbleData:  bubbleData,

		RNGState: g.rng.state,
	}
}

// ApplySnapshot restores game state from a snapshot.
func (g *Game) ApplySnapshot(snap Snapshot) {
	g.tickCount = int(snap.Tick) //#nosec G115 -- tick count fits in int
	g.score = snap.Score
	g.level = snap.Level
	g.params = g.curve.ParamsFor(snap.Level)
	g.shotsLeft = snap.ShotsLeft
	g.state = snap.State
	g.transitionDelay = snap.TransitionDelay

	g.mode = GameMode(snap.Mode)

	g.angle = float64(snap.AngleMilli) / 1000
	g.currentColor = BubbleColor(snap.CurrentColor) //#nosec G115 -- palette index
	g.nextColor = BubbleColor(snap.NextColor)       //#nosec G115 -- palette index

	g.proj = nil
	if len(snap.ProjData) == 5 {
		g.proj = &Projectile{
			X:     float64(snap.ProjData[0]) / 1000,
			Y:     float64(snap.ProjData[1]) / 1000,
			VX:    float64(snap.ProjData[2]) / 1000,
			VY:    float64(snap.ProjData[3]) / 1000,
			Color: BubbleColor(snap.ProjData[4]), //#nosec G115 -- palette index
		}
	}

	g.board.Clear()
	for i := 0; i+2 < len(snap.BubbleData); i += 3 {
		cell := Cell{Row: snap.BubbleData[i], Col: snap.BubbleData[i+1]}
		g.board.Place(cell, BubbleColor(snap.BubbleData[i+2])) //#nosec G115 -- palette index
	}

	g.rng.state = snap.RNGState
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := uint64(snap.Tick)
	h = h*31 + uint64(snap.Score)           //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Level)           //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.ShotsLeft)       //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.TransitionDelay) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Mode)            //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.AngleMilli)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.CurrentColor)    //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.NextColor)       //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.BubbleCount)     //#nosec G115 -- hash computation

	for _, c := range snap.State {
		h = h*31 + uint64(c)
	}

	for _, v := range snap.ProjData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}

	for _, v := range snap.BubbleData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}

	h = h*31 + snap.RNGState

	return h
}
