package config

import (
	_ "embed"
)

//go:embed defaults/crossy.yaml
var defaultCrossyYAML []byte

//go:embed defaults/bastion.yaml
var defaultBastionYAML []byte

// DefaultCrossyConfig returns the default Crossy configuration.
func DefaultCrossyConfig() CrossyConfig {
	return CrossyConfig{
		Terrain: CrossyTerrain{
			GenerationDistance: 20,
			CleanupDistance:    6,
			SafeZone:           2,
			DecorChance:        0.08,
			GrassWeight:        4,
			RoadWeight:         4,
			RailWeight:         2,
			WaterWeight:        2,
			RoadLanes:          []int{2, 3, 4},
		},
		Traffic: CrossyTraffic{
			BaseSpeed:      0.25,
			TrainSpeed:     1.6,
			LogSpeed:       0.15,
			MinVehicleLen:  2,
			MaxVehicleLen:  4,
			MinGap:         8,
			MaxGap:         18,
			LogLength:      5,
			TrainWarnTicks: 45,
			TrainCooldown:  240,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 100,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier:  1.2,
				GapReduction:     0,
				SpacingReduction: 6,
			},
		},
	}
}

// DefaultBastionConfig returns the default Bastion configuration.
func DefaultBastionConfig() BastionConfig {
	return BastionConfig{
		Economy: BastionEconomy{
			StartGold:  60,
			TowerCost:  25,
			KillReward: 8,
		},
		Towers: BastionTowers{
			Range:        7.5,
			Damage:       12,
			FireCooldown: 30,
			ShotSpeed:    0.9,
		},
		Waves: BastionWaves{
			BaseCount:     5,
			CountPerWave:  2,
			BaseHP:        30,
			HPPerWave:     12,
			BaseSpeed:     0.08,
			SpeedPerWave:  0.005,
			SpawnInterval: 40,
			Intermission:  300,
		},
		Gameplay: BastionGameplay{
			Lives: 10,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "time",
				MaxAt: 36000, // 10 minutes at 60fps
			},
			Scaling: ScalingConfig{
				SpeedMultiplier:  0.6,
				GapReduction:     0,
				SpacingReduction: 0,
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "crossy":
		return defaultCrossyYAML
	case "bastion":
		return defaultBastionYAML
	default:
		return nil
	}
}
