package crossy

import (
	"testing"

	"github.com/davvoz/Ggameplatform-sub015/internal/config"
	"github.com/davvoz/Ggameplatform-sub015/internal/core"
	"github.com/davvoz/Ggameplatform-sub015/internal/terrain"
)

func testRuntime(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     seed,
	}
}

func TestGameDeterminism(t *testing.T) {
	// Test that given the same seed and inputs, the game produces identical results
	cfg := testRuntime(12345)

	// Hop forward every 20 ticks, sidestep occasionally
	inputSequence := make([]core.InputFrame, 400)
	for i := range inputSequence {
		inputSequence[i] = core.NewInputFrame()
		if i%20 == 0 {
			inputSequence[i].Set(core.ActionUp)
		} else if i%37 == 0 {
			inputSequence[i].Set(core.ActionLeft)
		}
	}

	run := func() (*Game, core.GameState) {
		g := New()
		g.Reset(cfg)
		var state core.GameState
		for _, in := range inputSequence {
			result := g.Step(in)
			state = result.State
			if state.GameOver {
				break
			}
		}
		return g, state
	}

	g1, state1 := run()
	g2, state2 := run()

	if state1.Score != state2.Score {
		t.Errorf("Determinism failed: scores differ. Run1=%d, Run2=%d", state1.Score, state2.Score)
	}
	if g1.tickCount != g2.tickCount {
		t.Errorf("Determinism failed: tick counts differ. Run1=%d, Run2=%d", g1.tickCount, g2.tickCount)
	}
	if g1.window.Frontier() != g2.window.Frontier() {
		t.Errorf("Determinism failed: frontiers differ. Run1=%d, Run2=%d", g1.window.Frontier(), g2.window.Frontier())
	}
	if g1.playerX != g2.playerX {
		t.Errorf("Determinism failed: player positions differ. Run1=%f, Run2=%f", g1.playerX, g2.playerX)
	}
}

func TestGameReset(t *testing.T) {
	cfg := testRuntime(42)

	g := New()
	g.Reset(cfg)

	// Play a few ticks
	for i := 0; i < 60; i++ {
		in := core.NewInputFrame()
		if i%12 == 0 {
			in.Set(core.ActionUp)
		}
		g.Step(in)
	}

	// Reset should clear state
	g.Reset(cfg)

	if g.maxRow != 0 {
		t.Errorf("Reset should clear score, got %d", g.maxRow)
	}
	if g.playerRow != 0 {
		t.Errorf("Reset should return player to spawn, got row %d", g.playerRow)
	}
	if g.gameOver {
		t.Error("Reset should clear gameOver flag")
	}
	if g.paused {
		t.Error("Reset should clear paused flag")
	}
	if g.tickCount != 0 {
		t.Errorf("Reset should clear tickCount, got %d", g.tickCount)
	}

	gen := g.cfg.Terrain.GenerationDistance
	if got := g.window.Frontier(); got != gen {
		t.Errorf("Frontier after reset = %d, want %d", got, gen)
	}
	if got := g.window.Trailing(); got != -g.cfg.Terrain.SafeZone {
		t.Errorf("Trailing after reset = %d, want %d", got, -g.cfg.Terrain.SafeZone)
	}
}

func TestSpawnBandIsSafe(t *testing.T) {
	g := New()
	g.Reset(testRuntime(7))

	safe := g.cfg.Terrain.SafeZone
	for coord := -safe; coord <= safe; coord++ {
		row, ok := g.window.Get(coord)
		if !ok {
			t.Fatalf("Row %d missing from spawn band", coord)
		}
		if row.Type != terrain.TypeSafe {
			t.Errorf("Row %d type = %v, want safe", coord, row.Type)
		}
	}

	// Standing still on the spawn row must never kill the player.
	for i := 0; i < 300; i++ {
		g.Step(core.NewInputFrame())
	}
	if g.gameOver {
		t.Error("Player died while standing in the safe spawn band")
	}
}

func TestHopAdvancesWindow(t *testing.T) {
	g := New()
	g.Reset(testRuntime(99))

	up := core.NewInputFrame()
	up.Set(core.ActionUp)

	for i := 0; i < 15; i++ {
		g.Step(up)
		if g.gameOver {
			break
		}
	}

	gen := g.cfg.Terrain.GenerationDistance
	clean := g.cfg.Terrain.CleanupDistance

	if got, want := g.window.Frontier(), g.playerRow+gen; got != want {
		t.Errorf("Frontier = %d, want %d", got, want)
	}
	if got := g.window.Trailing(); got < g.playerRow-clean {
		t.Errorf("Trailing = %d, rows older than %d should be culled", got, g.playerRow-clean)
	}

	// Every coordinate between the bounds must be present exactly once.
	for coord := g.window.Trailing(); coord <= g.window.Frontier(); coord++ {
		if _, ok := g.window.Get(coord); !ok {
			t.Errorf("Gap in window at coordinate %d", coord)
		}
	}

	// Culled rows must also have lost their traffic state.
	for coord := range g.traffic.rows {
		if coord < g.window.Trailing() {
			t.Errorf("Traffic for culled row %d was not released", coord)
		}
	}
}

func TestHopBackStopsAtRetainedRows(t *testing.T) {
	g := New()
	g.Reset(testRuntime(3))

	down := core.NewInputFrame()
	down.Set(core.ActionDown)

	// The spawn band extends SafeZone rows behind; hopping further must stop.
	for i := 0; i < 20; i++ {
		g.Step(down)
	}

	if g.playerRow < g.window.Trailing() {
		t.Errorf("Player at row %d escaped behind trailing bound %d", g.playerRow, g.window.Trailing())
	}
	if g.playerRow != -g.cfg.Terrain.SafeZone {
		t.Errorf("Player row = %d, want %d", g.playerRow, -g.cfg.Terrain.SafeZone)
	}
}

func TestSidestepClamped(t *testing.T) {
	g := New()
	g.Reset(testRuntime(3))

	left := core.NewInputFrame()
	left.Set(core.ActionLeft)
	for i := 0; i < 100; i++ {
		g.Step(left)
	}
	if g.playerX != 0 {
		t.Errorf("Player X after walking left = %f, want 0", g.playerX)
	}

	right := core.NewInputFrame()
	right.Set(core.ActionRight)
	for i := 0; i < 200; i++ {
		g.Step(right)
	}
	if g.playerX != float64(g.runtime.ScreenW-1) {
		t.Errorf("Player X after walking right = %f, want %d", g.playerX, g.runtime.ScreenW-1)
	}
}

func TestPauseFreezesSimulation(t *testing.T) {
	g := New()
	g.Reset(testRuntime(11))

	pause := core.NewInputFrame()
	pause.Set(core.ActionPause)
	g.Step(pause)

	if !g.State().Paused {
		t.Fatal("Pause action should pause the game")
	}

	before := g.tickCount
	for i := 0; i < 30; i++ {
		g.Step(core.NewInputFrame())
	}
	if g.tickCount != before {
		t.Error("Ticks advanced while paused")
	}

	g.Step(pause)
	if g.State().Paused {
		t.Error("Second pause action should resume")
	}
}

func TestRoadCollision(t *testing.T) {
	g := New()
	g.Reset(testRuntime(5))

	// Build a synthetic road row under the player and park a vehicle on them.
	row := &terrain.Row{Coordinate: g.playerRow, Type: terrain.TypeRoad, Lanes: 2, Direction: terrain.Forward}
	rt := g.traffic.ensure(row)
	rt.spans = []span{{x: g.playerX - 1, length: 3}}

	if !rt.occupied(int(g.playerX)) {
		t.Fatal("Vehicle span should cover the player column")
	}
}

func TestTrafficToleratesEmptyConfig(t *testing.T) {
	// A user config that omits the traffic section arrives as all zeros.
	// Row creation and the full train cycle must still run.
	tm := newTrafficManager(7, 80, &config.CrossyTraffic{})

	rail := tm.ensure(&terrain.Row{Coordinate: 1, Type: terrain.TypeRail, Direction: terrain.Forward})
	if rail.trainRest < 1 {
		t.Errorf("Rail rest period = %d, want at least 1", rail.trainRest)
	}
	// Drive through cooldown, sweep, and the post-pass reset.
	rail.speed = 1
	for i := 0; i < 500; i++ {
		rail.advance(tm, 1.0)
	}

	road := tm.ensure(&terrain.Row{Coordinate: 2, Type: terrain.TypeRoad, Lanes: 2, Direction: terrain.Backward})
	road.advance(tm, 1.0)
	water := tm.ensure(&terrain.Row{Coordinate: 3, Type: terrain.TypeWater, Direction: terrain.Forward})
	water.advance(tm, 1.0)
}

func TestLogCarriesPlayer(t *testing.T) {
	g := New()
	g.Reset(testRuntime(5))

	row := &terrain.Row{Coordinate: 40, Type: terrain.TypeWater, Lanes: 0, Direction: terrain.Forward}
	rt := g.traffic.ensure(row)

	rt.spans = []span{{x: 10, length: 5}}
	before := rt.spans[0].x
	drift := rt.advance(g.traffic, 1.0)

	if drift <= 0 {
		t.Errorf("Forward log drift = %f, want positive", drift)
	}
	if rt.spans[0].x != before+drift {
		t.Errorf("Log moved by %f, want %f", rt.spans[0].x-before, drift)
	}
}

func TestWrappingSpanCoverage(t *testing.T) {
	c := 100.0
	s := span{x: 96, length: 8} // wraps: covers 96..99 and 0..3

	covered := []int{96, 99, 0, 3}
	for _, col := range covered {
		if !spanCovers(s, col, c) {
			t.Errorf("Column %d should be covered by wrapping span", col)
		}
	}
	uncovered := []int{4, 50, 95}
	for _, col := range uncovered {
		if spanCovers(s, col, c) {
			t.Errorf("Column %d should not be covered by wrapping span", col)
		}
	}
}
