package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultSnakeConfig returns the built-in configuration.
// It matches defaults/snake.yaml.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Board: BoardConfig{
			Cols:       20,
			Rows:       15,
			CellSize:   64,
			FoodMargin: 2,
		},
		Food: FoodConfig{
			Count: 1,
		},
		Timing: TimingConfig{
			TickMS: 250,
		},
		Sprites: SpritesConfig{
			TileSize: 64,
		},
	}
}
