package bubble

import (
	"github.com/vovakirdan/bubblepop/internal/config"
	"github.com/vovakirdan/bubblepop/internal/core"
	"github.com/vovakirdan/bubblepop/internal/registry"
)

// GameState constants
const (
	StateAim      = "aim"      // Waiting for the player to aim and fire
	StateFlying   = "flying"   // Projectile in flight
	StateGameOver = "gameover" // Lost: shots exhausted or board overflow
	StateWin      = "win"      // All campaign levels cleared (campaign only)
	StatePaused   = "paused"   // Game paused
)

// GameMode represents the game mode.
type GameMode int

const (
	ModeCampaign GameMode = iota // Play through levels, win at end
	ModeEndless                  // Play forever, score until game over
)

// campaignLevels is the number of levels in campaign mode. The first
// levels use hand-authored layouts, the rest are procedural.
const campaignLevels = 12

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// startLevel stores the starting level set via CLI (0 = level 1)
var startLevel int

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetStartLevel sets the level the next game starts at.
func SetStartLevel(level int) {
	startLevel = level
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	switch preset {
	case "easy":
		difficultyPreset = config.DifficultyEasy
	case "normal":
		difficultyPreset = config.DifficultyNormal
	case "hard":
		difficultyPreset = config.DifficultyHard
	case "fixed":
		difficultyPreset = config.DifficultyFixed
	default:
		difficultyPreset = ""
	}
}

// Game implements the bubble shooter game logic.
type Game struct {
	// Game mode
	mode GameMode

	// Game objects
	geom  Geometry
	board *Board
	proj  *Projectile
	rng   *RNG

	// Shooter state
	angle        float64 // Aim angle in radians, 0 = straight up
	currentColor BubbleColor
	nextColor    BubbleColor
	shotsLeft    int

	// Game state
	state           string
	score           int
	level           int // 1-based level number
	params          LevelParams
	tickCount       int
	transitionDelay int // Countdown showing the level banner

	// Configuration
	runtime core.RuntimeConfig
	cfg     config.BubbleConfig
	curve   Curve

	// Layout (computed from screen size)
	gridScreenTop  int // Screen row where grid row 0 renders
	gridScreenLeft int // Screen column where grid column 0 renders
	launcherRow    int // Screen row of the launcher
	lossRow        int // Deepest grid row; a bubble snapping past it loses
	minScreenW     int
	minScreenH     int
	screenTooSmall bool

	// Events accumulated during the current Step
	events []core.Event
}

// New creates a new bubble shooter instance (campaign mode).
func New() *Game {
	return &Game{mode: ModeCampaign}
}

// NewEndless creates a new bubble shooter instance in endless mode.
func NewEndless() *Game {
	return &Game{mode: ModeEndless}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	if g.mode == ModeEndless {
		return "bubblepop_endless"
	}
	return "bubblepop"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	if g.mode == ModeEndless {
		return "Bubble Pop (Endless)"
	}
	return "Bubble Pop"
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	// Load game config
	cfg, err := config.LoadBubble(configPath)
	if err != nil {
		cfg = config.DefaultBubbleConfig()
	}

	// Apply difficulty preset if set
	if difficultyPreset != "" {
		config.ApplyBubblePreset(&cfg, difficultyPreset)
	}

	g.cfg = cfg
	g.curve = curveFromConfig(cfg.Curve)

	g.geom = Geometry{
		Radius:  cfg.Grid.Radius,
		Margin:  cfg.Grid.Margin,
		GridTop: 0,
		Cols:    cfg.Grid.Cols,
	}

	// Calculate layout
	g.calculateLayout()

	// Check screen size
	g.minScreenW = g.geom.Cols*2 + 4
	g.minScreenH = 14
	g.screenTooSmall = runtime.ScreenW < g.minScreenW || runtime.ScreenH < g.minScreenH

	// Initialize game state
	g.score = 0
	g.level = 1
	if startLevel > 1 {
		g.level = startLevel
		if g.mode == ModeCampaign && g.level > campaignLevels {
			g.level = campaignLevels
		}
	}
	g.tickCount = 0
	g.angle = 0
	g.proj = nil
	g.events = nil

	seed := runtime.Seed
	if seed < 0 {
		seed = -seed
	}
	g.rng = NewRNG(uint64(seed))

	g.board = NewBoard(g.geom.Cols)
	g.loadLevel(g.level)
	g.state = StateAim
}

// curveFromConfig converts the YAML curve section to the core curve type.
func curveFromConfig(c config.BubbleCurve) Curve {
	return Curve{
		BaseRows:       c.BaseRows,
		MaxRows:        c.MaxRows,
		RowsEvery:      c.RowsEvery,
		BaseColors:     c.BaseColors,
		MaxColors:      c.MaxColors,
		ColorsEvery:    c.ColorsEvery,
		BaseShots:      c.BaseShots,
		MinShots:       c.MinShots,
		ShotsDecEvery:  c.ShotsDecEvery,
		ShotsDecAmount: c.ShotsDecAmount,
	}
}

// calculateLayout computes grid and launcher positions based on screen size.
func (g *Game) calculateLayout() {
	// HUD takes top 2 rows
	g.gridScreenTop = 2
	g.gridScreenLeft = (g.runtime.ScreenW - g.geom.Cols*2) / 2
	if g.gridScreenLeft < 1 {
		g.gridScreenLeft = 1
	}

	// Launcher at bottom (leave a row for overlay hints)
	g.launcherRow = g.runtime.ScreenH - 2

	// A bubble snapping onto the launcher's row or below is a loss
	g.lossRow = g.launcherRow - g.gridScreenTop - 1
	if g.lossRow < 1 {
		g.lossRow = 1
	}
}

// loadLevel builds the starting board for a 1-based level number and
// reloads the shooter.
func (g *Game) loadLevel(level int) {
	g.params = g.curve.ParamsFor(level)
	g.shotsLeft = g.params.Shots
	g.board.Clear()

	layouts := BuiltinLayouts(g.geom.Cols)
	if g.mode == ModeCampaign && level <= len(layouts) {
		layout := layouts[level-1]
		layout.Populate(g.board)
		// A preset or custom curve may shrink the palette below what
		// the curated board uses; widen it so every board color stays
		// reachable from the shot queue.
		for _, c := range layout.Colors() {
			if int(c) >= g.params.Colors {
				g.params.Colors = int(c) + 1
			}
		}
	} else {
		GenerateBoard(g.board, g.params, g.rng)
	}

	g.currentColor = g.pickShotColor()
	g.nextColor = g.pickShotColor()
	g.angle = 0
	g.proj = nil
	g.transitionDelay = 45

	g.emit(core.EventLevelStarted, level)
}

// CoinsPerBubble reports the per-bubble coin award from the loaded
// config. Valid only after Reset.
func (g *Game) CoinsPerBubble() int {
	return g.cfg.Gameplay.CoinsPerBubble
}

// pickShotColor draws the next shot color uniformly from the level's
// active palette. The queue is the only color source for shots.
func (g *Game) pickShotColor() BubbleColor {
	return PickColor(g.params.Colors, g.rng)
}

// launcherPos returns the world position the projectile launches from.
func (g *Game) launcherPos() (x, y float64) {
	x = g.geom.Width() / 2
	y = g.geom.GridTop + float64(g.lossRow+1)*g.geom.RowHeight() + g.geom.Radius
	return x, y
}

// emit queues an event for the current Step's result.
func (g *Game) emit(kind core.EventKind, value int) {
	g.events = append(g.events, core.Event{Kind: kind, Value: value})
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.screenTooSmall {
		return g.result()
	}

	// Handle restart
	if in.Has(core.ActionRestart) && (g.state == StateGameOver || g.state == StateWin) {
		g.Reset(g.runtime)
		return g.result()
	}

	// Handle pause toggle
	if in.Has(core.ActionPause) {
		switch g.state {
		case StatePaused:
			g.state = StateAim
			if g.proj != nil {
				g.state = StateFlying
			}
		case StateAim, StateFlying:
			g.state = StatePaused
		}
	}

	// Don't update if paused or game over
	if g.state == StatePaused || g.state == StateGameOver || g.state == StateWin {
		return g.result()
	}

	g.tickCount++

	// Level banner countdown
	if g.transitionDelay > 0 {
		g.transitionDelay--
		return g.result()
	}

	g.updateAim(in)

	if g.state == StateAim {
		if in.Has(core.ActionFire) && g.shotsLeft > 0 {
			g.fire()
		}
		return g.result()
	}

	// Projectile in flight
	g.updateProjectile()

	return g.result()
}

// result packages the current state and drains the pending events.
// Events queued by Reset ride out on the next Step.
func (g *Game) result() core.StepResult {
	res := core.StepResult{State: g.State(), Events: g.events}
	g.events = nil
	return res
}

// updateAim rotates the aim angle within the allowed cone.
func (g *Game) updateAim(in core.InputFrame) {
	if in.Has(core.ActionLeft) {
		g.angle -= g.cfg.Physics.AimStep
	}
	if in.Has(core.ActionRight) {
		g.angle += g.cfg.Physics.AimStep
	}
	limit := g.cfg.Physics.MaxAimAngle
	g.angle = core.ClampF(g.angle, -limit, limit)
}

// fire launches the loaded bubble and advances the color queue.
// Exactly one shot is consumed per launch.
func (g *Game) fire() {
	x, y := g.launcherPos()
	g.proj = Launch(g.currentColor, x, y, g.angle, g.cfg.Physics.LaunchSpeed)
	g.shotsLeft--
	g.currentColor = g.nextColor
	g.nextColor = g.pickShotColor()
	g.state = StateFlying
}

// updateProjectile integrates one tick of flight and resolves landing.
func (g *Game) updateProjectile() {
	g.proj.Advance(g.geom)

	// Ceiling beats bubble contact when both happen in the same tick
	if g.proj.HitCeiling(g.geom) || g.proj.HitBubble(g.board, g.geom) {
		g.resolveLanding()
	}
}

// scanRows returns how many grid rows the snap search covers: the
// deepest occupied row plus slack, never less than the starting field.
func (g *Game) scanRows() int {
	deepest := 0
	g.board.ForEach(func(b *Bubble) {
		if b.Cell.Row > deepest {
			deepest = b.Cell.Row
		}
	})
	rows := deepest + 1 + g.cfg.Grid.SearchSlack
	if rows < g.params.Rows+g.cfg.Grid.SearchSlack {
		rows = g.params.Rows + g.cfg.Grid.SearchSlack
	}
	return rows
}

// resolveLanding snaps the projectile to the grid, clears matches, and
// advances game state.
func (g *Game) resolveLanding() {
	proj := g.proj
	g.proj = nil

	cell, ok := g.board.NearestEmptyCell(g.geom, proj.X, proj.Y, g.scanRows())
	if !ok {
		// Every cell occupied: nowhere to snap means the field overflowed
		g.emit(core.EventBoardOverflow, g.level)
		g.state = StateGameOver
		return
	}

	g.board.Place(cell, proj.Color)

	group := g.board.MatchGroup(cell)
	if len(group) >= g.cfg.Gameplay.MinMatch {
		g.board.RemoveGroup(group)
		g.score += len(group) * g.cfg.Gameplay.PointsPerMatch
		g.emit(core.EventMatch, len(group))
	} else if cell.Row >= g.lossRow {
		// The snapped bubble reached the launcher line
		g.emit(core.EventBoardOverflow, g.level)
		g.state = StateGameOver
		return
	}

	if g.board.Size() == 0 {
		g.handleLevelClear()
		return
	}

	if g.shotsLeft <= 0 {
		g.emit(core.EventShotsExhausted, g.level)
		g.state = StateGameOver
		return
	}

	g.state = StateAim
}

// handleLevelClear handles an emptied board.
func (g *Game) handleLevelClear() {
	// Bonus for banked shots
	g.score += g.shotsLeft * g.cfg.Gameplay.PointsPerMatch
	g.emit(core.EventLevelCleared, g.level)

	if g.mode == ModeCampaign && g.level >= campaignLevels {
		g.state = StateWin
		return
	}

	g.level++
	g.loadLevel(g.level)
	g.state = StateAim
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		Level:    g.level,
		GameOver: g.state == StateGameOver || g.state == StateWin,
		Paused:   g.state == StatePaused,
	}
}

// Register the games with the registry
func init() {
	registry.Register("bubblepop", func() registry.Game {
		return New()
	})
	registry.Register("bubblepop_endless", func() registry.Game {
		return NewEndless()
	})
}
