// Package config provides YAML-based configuration loading for the snake
// board, timing and sprite sheet.
package config

import (
	"errors"
	"fmt"
	"time"
)

// SnakeConfig contains all configuration for a snake session.
type SnakeConfig struct {
	Board   BoardConfig   `yaml:"board"`
	Snake   StartConfig   `yaml:"snake"`
	Food    FoodConfig    `yaml:"food"`
	Timing  TimingConfig  `yaml:"timing"`
	Sprites SpritesConfig `yaml:"sprites"`
}

// BoardConfig defines the playing field.
type BoardConfig struct {
	Cols       int `yaml:"cols"`
	Rows       int `yaml:"rows"`
	CellSize   int `yaml:"cell_size"`
	FoodMargin int `yaml:"food_margin"`
}

// StartConfig defines the snake at the start of a session.
type StartConfig struct {
	InitialBody int `yaml:"initial_body"` // 0 keeps the mode default
}

// FoodConfig defines food placement.
type FoodConfig struct {
	Count int `yaml:"count"`
}

// TimingConfig defines the tick timer.
type TimingConfig struct {
	TickMS int `yaml:"tick_ms"`
}

// SpritesConfig points at an optional sprite sheet.
type SpritesConfig struct {
	Sheet    string `yaml:"sheet"`
	TileSize int    `yaml:"tile_size"`
}

// TickInterval returns the tick period as a duration.
func (c SnakeConfig) TickInterval() time.Duration {
	return time.Duration(c.Timing.TickMS) * time.Millisecond
}

// Validate reports every field that cannot describe a playable board.
func (c SnakeConfig) Validate() error {
	var errs []error
	positive := func(name string, v int) {
		if v <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %d", name, v))
		}
	}
	notNegative := func(name string, v int) {
		if v < 0 {
			errs = append(errs, fmt.Errorf("%s must not be negative, got %d", name, v))
		}
	}

	positive("board.cols", c.Board.Cols)
	positive("board.rows", c.Board.Rows)
	positive("board.cell_size", c.Board.CellSize)
	notNegative("board.food_margin", c.Board.FoodMargin)
	notNegative("snake.initial_body", c.Snake.InitialBody)
	positive("food.count", c.Food.Count)
	positive("timing.tick_ms", c.Timing.TickMS)
	positive("sprites.tile_size", c.Sprites.TileSize)

	if c.Board.Cols > 0 && c.Board.Rows > 0 && c.Food.Count > c.Board.Cols*c.Board.Rows {
		errs = append(errs, fmt.Errorf("food.count %d exceeds the %d cells of the board",
			c.Food.Count, c.Board.Cols*c.Board.Rows))
	}

	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("config: invalid snake config: %w", err)
	}
	return nil
}
