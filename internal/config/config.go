// Package config provides YAML-based game configuration loading and
// difficulty management for the arcade platform.
package config

// CrossyConfig contains all configuration for the Crossy lane-crossing runner.
type CrossyConfig struct {
	Terrain    CrossyTerrain    `yaml:"terrain"`
	Traffic    CrossyTraffic    `yaml:"traffic"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// CrossyTerrain defines the terrain streaming parameters.
type CrossyTerrain struct {
	GenerationDistance int     `yaml:"generation_distance"`
	CleanupDistance    int     `yaml:"cleanup_distance"`
	SafeZone           int     `yaml:"safe_zone"`
	DecorChance        float64 `yaml:"decor_chance"`
	GrassWeight        int     `yaml:"grass_weight"`
	RoadWeight         int     `yaml:"road_weight"`
	RailWeight         int     `yaml:"rail_weight"`
	WaterWeight        int     `yaml:"water_weight"`
	RoadLanes          []int   `yaml:"road_lanes"`
}

// CrossyTraffic defines the moving hazards that ride on terrain rows.
type CrossyTraffic struct {
	BaseSpeed      float64 `yaml:"base_speed"`       // vehicle cells per tick
	TrainSpeed     float64 `yaml:"train_speed"`      // train cells per tick
	LogSpeed       float64 `yaml:"log_speed"`        // log cells per tick
	MinVehicleLen  int     `yaml:"min_vehicle_len"`  // shortest vehicle
	MaxVehicleLen  int     `yaml:"max_vehicle_len"`  // longest vehicle
	MinGap         int     `yaml:"min_gap"`          // minimum cells between vehicles in a lane
	MaxGap         int     `yaml:"max_gap"`          // maximum cells between vehicles in a lane
	LogLength      int     `yaml:"log_length"`       // cells per log
	TrainWarnTicks int     `yaml:"train_warn_ticks"` // warning flash before a train passes
	TrainCooldown  int     `yaml:"train_cooldown"`   // ticks between trains on a rail row
}

// BastionConfig contains all configuration for the Bastion tower defense game.
type BastionConfig struct {
	Economy    BastionEconomy   `yaml:"economy"`
	Towers     BastionTowers    `yaml:"towers"`
	Waves      BastionWaves     `yaml:"waves"`
	Gameplay   BastionGameplay  `yaml:"gameplay"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// BastionEconomy defines gold income and costs.
type BastionEconomy struct {
	StartGold  int `yaml:"start_gold"`
	TowerCost  int `yaml:"tower_cost"`
	KillReward int `yaml:"kill_reward"`
}

// BastionTowers defines tower combat parameters.
type BastionTowers struct {
	Range        float64 `yaml:"range"`         // targeting radius in cells
	Damage       int     `yaml:"damage"`        // hit points per shot
	FireCooldown int     `yaml:"fire_cooldown"` // ticks between shots
	ShotSpeed    float64 `yaml:"shot_speed"`    // projectile cells per tick
}

// BastionWaves defines wave composition scaling per wave index.
type BastionWaves struct {
	BaseCount     int     `yaml:"base_count"`     // enemies in wave 1
	CountPerWave  int     `yaml:"count_per_wave"` // extra enemies per wave
	BaseHP        int     `yaml:"base_hp"`
	HPPerWave     int     `yaml:"hp_per_wave"`
	BaseSpeed     float64 `yaml:"base_speed"` // cells per tick along the path
	SpeedPerWave  float64 `yaml:"speed_per_wave"`
	SpawnInterval int     `yaml:"spawn_interval"` // ticks between enemies in a wave
	Intermission  int     `yaml:"intermission"`   // ticks between waves
}

// BastionGameplay defines win/lose parameters.
type BastionGameplay struct {
	Lives int `yaml:"lives"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier  float64 `yaml:"speed_multiplier"`  // Multiplier added to speed at max difficulty
	GapReduction     int     `yaml:"gap_reduction"`     // Gap size reduction at max difficulty
	SpacingReduction int     `yaml:"spacing_reduction"` // Spacing reduction at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
