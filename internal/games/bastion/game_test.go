package bastion

import (
	"testing"

	"github.com/davvoz/Ggameplatform-sub015/internal/config"
	"github.com/davvoz/Ggameplatform-sub015/internal/core"
)

func testRuntime() core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     1,
	}
}

func testRoute() *path {
	return buildPath(80, 24)
}

func enemyAt(route *path, progress float64, hp int) *enemy {
	return &enemy{progress: progress, speed: 0.1, hp: hp, maxHP: hp, route: route}
}

func TestTargetingPolicies(t *testing.T) {
	route := testRoute()

	// Three enemies near the path start: the tower at the start sees all.
	front := enemyAt(route, 30, 5)
	middle := enemyAt(route, 20, 2)
	back := enemyAt(route, 10, 9)
	enemies := []*enemy{front, middle, back}

	tx, ty := route.pointAt(20)

	tests := []struct {
		policy Policy
		want   *enemy
	}{
		{PolicyFirst, front},
		{PolicyLast, back},
		{PolicyClosest, middle},
		{PolicyWeakest, middle},
		{PolicyStrongest, back},
	}

	for _, tt := range tests {
		got := acquire(tt.policy, enemies, tx, ty, 100)
		if got != tt.want {
			t.Errorf("Policy %s picked enemy at progress %.0f, want %.0f",
				tt.policy, got.progress, tt.want.progress)
		}
	}
}

func TestTargetingRespectsRange(t *testing.T) {
	route := testRoute()
	far := enemyAt(route, route.total-5, 5)

	tx, ty := route.pointAt(0)
	if got := acquire(PolicyFirst, []*enemy{far}, tx, ty, 3); got != nil {
		t.Error("Enemy outside radius should not be targeted")
	}
}

func TestTargetingSkipsDead(t *testing.T) {
	route := testRoute()
	dead := enemyAt(route, 10, 0)
	live := enemyAt(route, 5, 3)

	tx, ty := route.pointAt(8)
	if got := acquire(PolicyFirst, []*enemy{dead, live}, tx, ty, 100); got != live {
		t.Error("Dead enemy should be skipped in target acquisition")
	}
}

func TestPolicyCycleWrapsAround(t *testing.T) {
	p := PolicyFirst
	seen := map[Policy]bool{}
	for i := 0; i < int(policyCount); i++ {
		seen[p] = true
		p = p.Next()
	}
	if p != PolicyFirst {
		t.Errorf("Cycling through all policies should wrap to first, got %s", p)
	}
	if len(seen) != int(policyCount) {
		t.Errorf("Cycle visited %d policies, want %d", len(seen), policyCount)
	}
}

func TestWaveScaling(t *testing.T) {
	cfg := config.DefaultBastionConfig().Waves
	cfg.SpawnInterval = 1
	cfg.Intermission = 1
	route := testRoute()

	wm := newWaveManager(&cfg, route)

	// Drain wave 1 completely.
	var wave1 []*enemy
	for len(wave1) < cfg.BaseCount {
		if e := wm.update(true); e != nil {
			wave1 = append(wave1, e)
		}
	}
	if wm.spawning() {
		t.Fatalf("Wave 1 should be exhausted after %d spawns", cfg.BaseCount)
	}

	// Next wave is bigger, tougher and faster.
	var wave2 []*enemy
	for len(wave2) < cfg.BaseCount+cfg.CountPerWave {
		if e := wm.update(true); e != nil {
			wave2 = append(wave2, e)
		}
	}

	if wave2[0].maxHP != wave1[0].maxHP+cfg.HPPerWave {
		t.Errorf("Wave 2 HP = %d, want %d", wave2[0].maxHP, wave1[0].maxHP+cfg.HPPerWave)
	}
	if wave2[0].speed <= wave1[0].speed {
		t.Errorf("Wave 2 speed = %f should exceed wave 1 speed %f", wave2[0].speed, wave1[0].speed)
	}
}

func TestIntermissionWaitsForClearField(t *testing.T) {
	cfg := config.DefaultBastionConfig().Waves
	cfg.BaseCount = 1
	cfg.SpawnInterval = 1
	cfg.Intermission = 2
	route := testRoute()

	wm := newWaveManager(&cfg, route)

	// Spawn the single enemy of wave 1.
	var spawned *enemy
	for spawned == nil {
		spawned = wm.update(true)
	}

	// While the field is occupied, no countdown and no new spawns.
	for i := 0; i < 50; i++ {
		if e := wm.update(false); e != nil {
			t.Fatal("Spawned during an unfinished wave")
		}
	}
	if wm.wave != 1 {
		t.Errorf("Wave advanced to %d while field was occupied", wm.wave)
	}
}

func TestPathGeometry(t *testing.T) {
	route := testRoute()

	if route.total <= 0 {
		t.Fatal("Path should have positive length")
	}

	// The walk starts at the first point and ends clamped at the last.
	x, y := route.pointAt(0)
	if x != route.points[0].x || y != route.points[0].y {
		t.Errorf("pointAt(0) = (%f, %f), want path start", x, y)
	}
	last := route.points[len(route.points)-1]
	x, y = route.pointAt(route.total + 100)
	if x != last.x || y != last.y {
		t.Errorf("pointAt(beyond end) = (%f, %f), want path exit", x, y)
	}

	// Midpoints lie on the path for placement checks.
	x, y = route.pointAt(route.total / 2)
	if !route.contains(int(x), int(y)) {
		t.Errorf("Path midpoint (%d, %d) not recognized as on-path", int(x), int(y))
	}
}

func TestPathFitsTinyScreens(t *testing.T) {
	// A resize can hand the game a terminal only a few rows tall.
	for _, h := range []int{4, 6, 7, 10} {
		route := buildPath(80, h)
		if len(route.points) < 2 {
			t.Fatalf("buildPath(80, %d) produced %d points, want at least one segment", h, len(route.points))
		}
		if route.total <= 0 {
			t.Errorf("buildPath(80, %d) has non-positive length %f", h, route.total)
		}
		last := route.points[len(route.points)-1]
		if last.x != 78 {
			t.Errorf("buildPath(80, %d) exits at x=%f, want right edge 78", h, last.x)
		}
	}

	g := New()
	rt := testRuntime()
	rt.ScreenH = 6
	g.Reset(rt)
	for i := 0; i < 120; i++ {
		g.Step(core.InputFrame{})
	}
}

func TestTowerPlacementRules(t *testing.T) {
	g := New()
	g.Reset(testRuntime())

	cost := g.cfg.Economy.TowerCost
	goldBefore := g.gold

	// Placing on the path is refused.
	px, py := g.route.pointAt(10)
	g.cursorX, g.cursorY = int(px), int(py)
	g.placeTower()
	if len(g.towers) != 0 || g.gold != goldBefore {
		t.Error("Tower was placed on the path")
	}

	// A legal spot charges gold.
	g.cursorX, g.cursorY = 5, 2
	if g.route.contains(5, 2) {
		t.Skip("Chosen test cell unexpectedly on the path")
	}
	g.placeTower()
	if len(g.towers) != 1 {
		t.Fatal("Tower was not placed on a legal cell")
	}
	if g.gold != goldBefore-cost {
		t.Errorf("Gold after placement = %d, want %d", g.gold, goldBefore-cost)
	}

	// Stacking on an occupied cell is refused.
	g.placeTower()
	if len(g.towers) != 1 {
		t.Error("Second tower stacked on an occupied cell")
	}

	// Placement with insufficient gold is refused.
	g.gold = cost - 1
	g.cursorX = 7
	g.placeTower()
	if len(g.towers) != 1 {
		t.Error("Tower placed without enough gold")
	}
}

func TestBreachCostsLife(t *testing.T) {
	g := New()
	g.Reset(testRuntime())

	livesBefore := g.lives
	g.enemies = append(g.enemies, &enemy{
		progress: g.route.total - 0.01,
		speed:    1,
		hp:       3,
		maxHP:    3,
		route:    g.route,
	})

	g.advanceEnemies()

	if g.lives != livesBefore-1 {
		t.Errorf("Lives after breach = %d, want %d", g.lives, livesBefore-1)
	}
	if len(g.enemies) != 0 {
		t.Error("Breached enemy should leave the field")
	}
}

func TestKillPaysOut(t *testing.T) {
	g := New()
	g.Reset(testRuntime())

	// One tower next to the path start, one weak enemy crawling past it.
	px, py := g.route.pointAt(5)
	g.towers = append(g.towers, &tower{x: int(px), y: int(py) - 1, color: core.ColorYellow})
	g.enemies = append(g.enemies, &enemy{
		progress: 5,
		speed:    0, // pinned in range
		hp:       1,
		maxHP:    1,
		color:    core.ColorRed,
		route:    g.route,
	})

	goldBefore := g.gold
	for i := 0; i < 200 && g.kills == 0; i++ {
		g.fireTowers()
		g.advanceShots()
		g.reapEnemies()
	}

	if g.kills != 1 {
		t.Fatal("Tower never killed the pinned enemy")
	}
	if g.gold != goldBefore+g.cfg.Economy.KillReward {
		t.Errorf("Gold after kill = %d, want %d", g.gold, goldBefore+g.cfg.Economy.KillReward)
	}
	if g.score == 0 {
		t.Error("Kill should award score")
	}
	if len(g.enemies) != 0 {
		t.Error("Dead enemy should be reaped")
	}
}

func TestShotTintBlendsTowerAndTarget(t *testing.T) {
	g := New()
	g.Reset(testRuntime())

	px, py := g.route.pointAt(5)
	g.towers = append(g.towers, &tower{x: int(px), y: int(py) - 1, color: core.ColorYellow})
	g.enemies = append(g.enemies, &enemy{
		progress: 5,
		speed:    0,
		hp:       100,
		maxHP:    100,
		color:    core.ColorRed,
		route:    g.route,
	})

	g.fireTowers()
	if len(g.shots) != 1 {
		t.Fatal("Tower in range should fire")
	}
	if want := core.Blend(core.ColorYellow, core.ColorRed); g.shots[0].color != want {
		t.Errorf("Shot color = %v, want blend %v", g.shots[0].color, want)
	}
}

func TestGameReset(t *testing.T) {
	g := New()
	g.Reset(testRuntime())

	// Play a while and build something.
	for i := 0; i < 100; i++ {
		in := core.NewInputFrame()
		if i == 10 {
			in.Set(core.ActionJump)
		}
		g.Step(in)
	}

	g.Reset(testRuntime())

	if len(g.towers) != 0 || len(g.enemies) != 0 || len(g.shots) != 0 {
		t.Error("Reset should clear the field")
	}
	if g.gold != g.cfg.Economy.StartGold {
		t.Errorf("Reset gold = %d, want %d", g.gold, g.cfg.Economy.StartGold)
	}
	if g.lives != g.cfg.Gameplay.Lives {
		t.Errorf("Reset lives = %d, want %d", g.lives, g.cfg.Gameplay.Lives)
	}
	if g.policy != PolicyFirst {
		t.Errorf("Reset policy = %s, want first", g.policy)
	}
	if g.gameOver || g.paused || g.tickCount != 0 {
		t.Error("Reset should clear flags and tick count")
	}
}
