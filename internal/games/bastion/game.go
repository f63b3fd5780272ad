// Package bastion implements a tower defense game. Enemies march along a
// fixed path in waves; the player spends gold on towers that fire at them
// under a selectable targeting policy.
package bastion

import (
	"fmt"
	"math"

	"github.com/davvoz/Ggameplatform-sub015/internal/config"
	"github.com/davvoz/Ggameplatform-sub015/internal/core"
	"github.com/davvoz/Ggameplatform-sub015/internal/registry"
)

// Visual characters for rendering
const (
	PathChar   = '░'
	TowerChar  = '▲'
	EnemyChar  = '●'
	ShotChar   = '•'
	CursorChar = '+'
)

// tower is a placed turret. It keeps its own fire cooldown; targeting is
// re-evaluated every shot under the game's current policy.
type tower struct {
	x, y     int
	cooldown int
	color    core.Color
}

// projectile homes on its target until impact. A shot whose target dies
// mid-flight fizzles instead of retargeting.
type projectile struct {
	x, y   float64
	target *enemy
	color  core.Color
}

// towerColors cycle by placement order so each turret's shots read
// differently once blended with the enemy tint.
var towerColors = []core.Color{
	core.ColorYellow,
	core.ColorBlue,
	core.ColorGreen,
	core.ColorBrightCyan,
}

// Game implements the Bastion tower defense game logic.
type Game struct {
	route   *path
	waves   *waveManager
	towers  []*tower
	enemies []*enemy
	shots   []*projectile
	policy  Policy

	cursorX, cursorY int
	gold             int
	lives            int
	kills            int
	score            int

	gameOver   bool
	paused     bool
	runtime    core.RuntimeConfig
	cfg        config.BastionConfig
	difficulty *config.DifficultyManager
	tickCount  int
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

// New creates a new Bastion game instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "bastion"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Bastion"
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	// Load game config
	cfg, err := config.LoadBastion(configPath)
	if err != nil {
		cfg = config.DefaultBastionConfig()
	}

	// Apply difficulty preset if set
	if difficultyPreset != "" {
		config.ApplyBastionPreset(&cfg, difficultyPreset)
	}

	g.cfg = cfg
	g.difficulty = config.NewDifficultyManager(cfg.Difficulty)

	g.route = buildPath(runtime.ScreenW, runtime.ScreenH)
	g.waves = newWaveManager(&g.cfg.Waves, g.route)
	g.towers = nil
	g.enemies = nil
	g.shots = nil
	g.policy = PolicyFirst

	g.cursorX = runtime.ScreenW / 2
	g.cursorY = runtime.ScreenH / 2
	g.gold = cfg.Economy.StartGold
	g.lives = cfg.Gameplay.Lives
	g.kills = 0
	g.score = 0
	g.gameOver = false
	g.paused = false
	g.tickCount = 0
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

	g.handleInput(in)
	g.spawnEnemies()
	g.advanceEnemies()
	g.fireTowers()
	g.advanceShots()
	g.reapEnemies()

	if g.lives <= 0 {
		g.gameOver = true
	}

	return core.StepResult{State: g.State()}
}

// handleInput moves the build cursor, places towers, and cycles targeting.
func (g *Game) handleInput(in core.InputFrame) {
	switch {
	case in.Has(core.ActionUp):
		g.cursorY = core.Clamp(g.cursorY-1, 2, g.runtime.ScreenH-2)
	case in.Has(core.ActionDown):
		g.cursorY = core.Clamp(g.cursorY+1, 2, g.runtime.ScreenH-2)
	case in.Has(core.ActionLeft):
		g.cursorX = core.Clamp(g.cursorX-1, 1, g.runtime.ScreenW-2)
	case in.Has(core.ActionRight):
		g.cursorX = core.Clamp(g.cursorX+1, 1, g.runtime.ScreenW-2)
	case in.Has(core.ActionJump):
		g.placeTower()
	case in.Has(core.ActionCycle):
		g.policy = g.policy.Next()
	}
}

// placeTower builds a turret at the cursor when the spot is legal and the
// player can afford it.
func (g *Game) placeTower() {
	if g.gold < g.cfg.Economy.TowerCost {
		return
	}
	if g.route.contains(g.cursorX, g.cursorY) {
		return
	}
	for _, t := range g.towers {
		if t.x == g.cursorX && t.y == g.cursorY {
			return
		}
	}

	g.gold -= g.cfg.Economy.TowerCost
	g.towers = append(g.towers, &tower{
		x:     g.cursorX,
		y:     g.cursorY,
		color: towerColors[len(g.towers)%len(towerColors)],
	})
}

func (g *Game) spawnEnemies() {
	fieldClear := len(g.enemies) == 0 && !g.waves.spawning()
	if e := g.waves.update(fieldClear); e != nil {
		g.enemies = append(g.enemies, e)
	}
}

// advanceEnemies marches everything along the path; a breach costs a life.
func (g *Game) advanceEnemies() {
	mult := g.difficulty.Speed(1.0, g.score, g.tickCount)

	kept := g.enemies[:0]
	for _, e := range g.enemies {
		e.advance(mult)
		if e.finished() {
			g.lives--
			continue
		}
		kept = append(kept, e)
	}
	g.enemies = kept
}

// fireTowers acquires targets under the current policy and launches shots.
func (g *Game) fireTowers() {
	for _, t := range g.towers {
		if t.cooldown > 0 {
			t.cooldown--
			continue
		}
		target := acquire(g.policy, g.enemies, float64(t.x), float64(t.y), g.cfg.Towers.Range)
		if target == nil {
			continue
		}
		t.cooldown = g.cfg.Towers.FireCooldown
		g.shots = append(g.shots, &projectile{
			x:      float64(t.x),
			y:      float64(t.y),
			target: target,
			color:  core.Blend(t.color, target.color),
		})
	}
}

// advanceShots homes each projectile on its target and applies damage on
// impact. Kills pay out gold and score.
func (g *Game) advanceShots() {
	kept := g.shots[:0]
	for _, s := range g.shots {
		if !s.target.alive() {
			continue // fizzle
		}

		tx, ty := s.target.position()
		dx, dy := tx-s.x, ty-s.y
		dist := math.Hypot(dx, dy)

		if dist <= g.cfg.Towers.ShotSpeed {
			s.target.hp -= g.cfg.Towers.Damage
			if s.target.hp <= 0 {
				g.gold += g.cfg.Economy.KillReward
				g.kills++
				g.score += s.target.maxHP
			}
			continue
		}

		s.x += dx / dist * g.cfg.Towers.ShotSpeed
		s.y += dy / dist * g.cfg.Towers.ShotSpeed
		kept = append(kept, s)
	}
	g.shots = kept
}

// reapEnemies drops corpses after shots have resolved.
func (g *Game) reapEnemies() {
	kept := g.enemies[:0]
	for _, e := range g.enemies {
		if e.hp > 0 {
			kept = append(kept, e)
		}
	}
	g.enemies = kept
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.gameOver,
		Paused:   g.paused,
	}
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	g.drawPath(dst)

	for _, t := range g.towers {
		dst.SetColored(t.x, t.y, TowerChar, t.color)
	}

	for _, e := range g.enemies {
		x, y := e.position()
		dst.SetColored(int(x), int(y), EnemyChar, e.color)
	}

	for _, s := range g.shots {
		dst.SetColored(int(s.x), int(s.y), ShotChar, s.color)
	}

	// Cursor drawn last so it stays visible over the path.
	dst.SetColored(g.cursorX, g.cursorY, CursorChar, core.ColorBrightWhite)

	// Draw HUD
	hud := fmt.Sprintf(" Gold: %d  Lives: %d  Wave: %d  Aim: %s  Score: %d ",
		g.gold, g.lives, g.waves.wave, g.policy, g.score)
	dst.DrawText(2, 0, hud)

	if g.paused {
		dst.DrawTextCentered(dst.Height()/2, "PAUSED  |  Press P to resume")
	}

	if g.gameOver {
		dst.DrawTextCentered(dst.Height()/2-1, "THE BASTION HAS FALLEN")
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("Score: %d  |  Press R to restart", g.score))
	}
}

// drawPath paints the enemy route cell by cell.
func (g *Game) drawPath(dst *core.Screen) {
	for i := 1; i < len(g.route.points); i++ {
		a, b := g.route.points[i-1], g.route.points[i]
		x0, x1 := int(min(a.x, b.x)), int(max(a.x, b.x))
		y0, y1 := int(min(a.y, b.y)), int(max(a.y, b.y))
		for y := y0; y <= y1; y++ {
			for x := x0; x <= x1; x++ {
				dst.SetColored(x, y, PathChar, core.ColorGray)
			}
		}
	}
}

func init() {
	registry.Register("bastion", func() registry.Game {
		return New()
	})
}
