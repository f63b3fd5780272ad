// Package crossy implements a lane-crossing endless runner. The player hops
// forward across an infinitely streaming strip of terrain rows, dodging
// vehicles on roads, trains on rails, and riding logs across water.
package crossy

import (
	"fmt"

	"github.com/davvoz/Ggameplatform-sub015/internal/config"
	"github.com/davvoz/Ggameplatform-sub015/internal/core"
	"github.com/davvoz/Ggameplatform-sub015/internal/registry"
	"github.com/davvoz/Ggameplatform-sub015/internal/terrain"
)

// Visual characters for rendering
const (
	PlayerChar  = '@'
	GrassChar   = '.'
	SafeChar    = '·'
	RailChar    = '═'
	WaterChar   = '~'
	VehicleChar = '█'
	TrainChar   = '█'
	LogChar     = '▓'
	TreeChar    = '♠'
	RockChar    = '◦'
	FlowerChar  = '*'
)

// Game implements the Crossy lane-crossing runner.
type Game struct {
	playerRow int     // terrain coordinate the player stands on
	playerX   float64 // horizontal position, fractional while riding logs
	maxRow    int     // furthest coordinate reached, doubles as score

	factory  *terrain.Factory
	window   *terrain.Window
	director *terrain.Director
	traffic  *trafficManager

	gameOver   bool
	drowned    bool
	paused     bool
	runtime    core.RuntimeConfig
	cfg        config.CrossyConfig
	difficulty *config.DifficultyManager
	tickCount  int
	playerY    int // fixed screen row the player is drawn at
}

// configPath stores the custom config path set via CLI
var configPath string
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
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
		difficultyPreset = "" // Use config default
	}
}

// New creates a new Crossy game instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "crossy"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Crossy Lanes"
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	// Load game config
	cfg, err := config.LoadCrossy(configPath)
	if err != nil {
		cfg = config.DefaultCrossyConfig()
	}

	// Apply difficulty preset if set
	if difficultyPreset != "" {
		config.ApplyCrossyPreset(&cfg, difficultyPreset)
	}

	g.cfg = cfg
	g.difficulty = config.NewDifficultyManager(cfg.Difficulty)

	g.playerRow = 0
	g.playerX = float64(runtime.ScreenW / 2)
	g.maxRow = 0
	g.gameOver = false
	g.drowned = false
	g.paused = false
	g.tickCount = 0

	// Player is drawn near the bottom; rows ahead scroll down toward them.
	g.playerY = runtime.ScreenH - 6
	if g.playerY < 2 {
		g.playerY = runtime.ScreenH - 2
	}

	g.traffic = newTrafficManager(runtime.Seed+1, runtime.ScreenW, &g.cfg.Traffic)
	g.factory = terrain.NewFactory(runtime.Seed, g.terrainParams())
	g.window = terrain.NewWindow(g.traffic.release)
	g.director = terrain.NewDirector(g.factory, g.window, g.terrainParams())
	g.director.Reset(0)
}

// terrainParams maps the YAML terrain section onto generation parameters.
func (g *Game) terrainParams() terrain.Params {
	t := g.cfg.Terrain
	return terrain.Params{
		GenerationDistance: t.GenerationDistance,
		CleanupDistance:    t.CleanupDistance,
		SafeZone:           t.SafeZone,
		Weights: []terrain.TypeWeight{
			{Type: terrain.TypeGrass, Weight: t.GrassWeight},
			{Type: terrain.TypeRoad, Weight: t.RoadWeight},
			{Type: terrain.TypeRail, Weight: t.RailWeight},
			{Type: terrain.TypeWater, Weight: t.WaterWeight},
		},
		RoadLanes:   t.RoadLanes,
		Width:       g.runtime.ScreenW,
		DecorChance: t.DecorChance,
	}
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.gameOver {
		return core.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}

	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.tickCount++

	g.handleMovement(in)
	g.updateTraffic()
	g.checkHazards()

	return core.StepResult{State: g.State()}
}

// handleMovement applies one hop or sidestep per input frame.
func (g *Game) handleMovement(in core.InputFrame) {
	switch {
	case in.Has(core.ActionUp) || in.Has(core.ActionJump):
		g.playerRow++
		if g.playerRow > g.maxRow {
			g.maxRow = g.playerRow
		}
		g.director.Update(g.playerRow)
	case in.Has(core.ActionDown):
		// Hopping back is allowed only onto a row still retained.
		if _, ok := g.window.Get(g.playerRow - 1); ok {
			g.playerRow--
			g.director.Update(g.playerRow)
		}
	case in.Has(core.ActionLeft):
		g.playerX = core.ClampF(g.playerX-1, 0, float64(g.runtime.ScreenW-1))
	case in.Has(core.ActionRight):
		g.playerX = core.ClampF(g.playerX+1, 0, float64(g.runtime.ScreenW-1))
	}
}

// updateTraffic advances every windowed row's hazards. Iteration is in
// coordinate order so lazy traffic creation stays deterministic under a seed.
func (g *Game) updateTraffic() {
	mult := g.difficulty.Speed(1.0, g.maxRow, g.tickCount)

	for _, row := range g.window.Rows() {
		rt := g.traffic.ensure(row)
		drift := rt.advance(g.traffic, mult)

		// A player standing on a log drifts with it.
		if row.Coordinate == g.playerRow && row.Type == terrain.TypeWater {
			g.playerX += drift
		}
	}
}

// checkHazards resolves collisions on the player's current row.
func (g *Game) checkHazards() {
	// Carried off the edge by a log.
	if g.playerX < 0 || g.playerX >= float64(g.runtime.ScreenW) {
		g.gameOver = true
		g.drowned = true
		return
	}

	row, ok := g.window.Get(g.playerRow)
	if !ok {
		// The row under the player was culled; treat as falling behind.
		g.gameOver = true
		return
	}

	rt := g.traffic.ensure(row)
	col := int(g.playerX)

	switch row.Type {
	case terrain.TypeRoad:
		if rt.occupied(col) {
			g.gameOver = true
		}
	case terrain.TypeRail:
		if rt.trainCovers(col) {
			g.gameOver = true
		}
	case terrain.TypeWater:
		if !rt.occupied(col) {
			g.gameOver = true
			g.drowned = true
		}
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.maxRow,
		GameOver: g.gameOver,
		Paused:   g.paused,
	}
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	for _, row := range g.window.Rows() {
		y := g.rowScreenY(row.Coordinate)
		if y < 1 || y >= dst.Height() {
			continue
		}
		g.drawRow(dst, row, y)
	}

	// Draw player
	dst.SetColored(int(g.playerX), g.playerY, PlayerChar, core.ColorBrightWhite)

	// Draw HUD
	dst.DrawText(2, 0, fmt.Sprintf(" Score: %d ", g.maxRow))

	if g.difficulty.IsEnabled() {
		speed := g.difficulty.Speed(g.cfg.Traffic.BaseSpeed, g.maxRow, g.tickCount)
		levelText := fmt.Sprintf(" Spd: %.1f ", speed)
		dst.DrawText(dst.Width()-len(levelText)-2, 0, levelText)
	}

	if g.paused {
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}

	if g.gameOver {
		cause := "SQUISHED"
		if g.drowned {
			cause = "DROWNED"
		}
		g.drawCenteredMessage(dst, cause, fmt.Sprintf("Score: %d  |  Press R to restart", g.maxRow))
	}
}

// rowScreenY maps a terrain coordinate to a screen row. Rows ahead of the
// player appear above the fixed player line.
func (g *Game) rowScreenY(coord int) int {
	return g.playerY - (coord - g.playerRow)
}

// drawRow renders one terrain row with its hazards.
func (g *Game) drawRow(dst *core.Screen, row *terrain.Row, y int) {
	rt := g.traffic.ensure(row)
	w := dst.Width()

	switch row.Type {
	case terrain.TypeGrass:
		dst.DrawHLine(0, y, w, GrassChar, core.ColorGreen)
		g.drawDecorations(dst, row, y)
	case terrain.TypeSafe:
		dst.DrawHLine(0, y, w, SafeChar, core.ColorGray)
		g.drawDecorations(dst, row, y)
	case terrain.TypeRoad:
		for x := 0; x < w; x++ {
			if rt.occupied(x) {
				dst.SetColored(x, y, VehicleChar, core.ColorYellow)
			}
		}
	case terrain.TypeRail:
		railColor := core.ColorGray
		if rt.warning() {
			railColor = core.ColorBrightRed
		}
		dst.DrawHLine(0, y, w, RailChar, railColor)
		if rt.trainActive {
			for x := 0; x < w; x++ {
				if rt.trainCovers(x) {
					dst.SetColored(x, y, TrainChar, core.ColorRed)
				}
			}
		}
	case terrain.TypeWater:
		for x := 0; x < w; x++ {
			if rt.occupied(x) {
				dst.SetColored(x, y, LogChar, core.ColorOrange)
			} else {
				dst.SetColored(x, y, WaterChar, core.ColorBlue)
			}
		}
	}
}

// drawDecorations overlays cosmetic decorations on grass and safe rows.
func (g *Game) drawDecorations(dst *core.Screen, row *terrain.Row, y int) {
	for _, d := range row.Decorations {
		if d.Offset < 0 || d.Offset >= dst.Width() {
			continue
		}
		switch d.Kind {
		case terrain.DecorTree:
			dst.SetColored(d.Offset, y, TreeChar, core.ColorBrightGreen)
		case terrain.DecorRock:
			dst.SetColored(d.Offset, y, RockChar, core.ColorWhite)
		case terrain.DecorFlower:
			dst.SetColored(d.Offset, y, FlowerChar, core.ColorMagenta)
		}
	}
}

// drawCenteredMessage draws a boxed two-line message in the screen center.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	centerY := dst.Height() / 2
	dst.DrawTextCentered(centerY-1, title)
	dst.DrawTextCentered(centerY+1, subtitle)
}

func init() {
	registry.Register("crossy", func() registry.Game {
		return New()
	})
}
