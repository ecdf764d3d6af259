// Package config reads snakes-and-ladders board definitions from TOML.
//
// A document names the board size and lists its shortcuts:
//
//	size = 30
//
//	[[ladders]]
//	start = 2
//	end = 21
//
//	[[snakes]]
//	start = 26
//	end = 0
package config

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/katalvlaran/snakeladder/board"
)

// ErrUnknownKey is returned when a document contains keys Config does not define.
var ErrUnknownKey = errors.New("config: unknown key")

// Shortcut is one [[ladders]] or [[snakes]] entry.
type Shortcut struct {
	Start int `toml:"start"`
	End   int `toml:"end"`
}

// Config is a board definition.
type Config struct {
	Size    int        `toml:"size"`
	Ladders []Shortcut `toml:"ladders"`
	Snakes  []Shortcut `toml:"snakes"`
}

// Default returns the 30-cell demo board.
func Default() Config {
	return Config{
		Size: 30,
		Ladders: []Shortcut{
			{Start: 2, End: 21},
			{Start: 4, End: 7},
			{Start: 10, End: 25},
			{Start: 19, End: 28},
		},
		Snakes: []Shortcut{
			{Start: 26, End: 0},
			{Start: 20, End: 8},
			{Start: 16, End: 3},
			{Start: 18, End: 6},
		},
	}
}

// Load reads a board definition from the TOML file at filename.
func Load(filename string) (Config, error) {
	var c Config
	md, err := toml.DecodeFile(filename, &c)
	if err != nil {
		return Config{}, fmt.Errorf("config: decoding %s: %w", filename, err)
	}

	return c, checkUndecoded(md)
}

// Decode reads a board definition from r.
func Decode(r io.Reader) (Config, error) {
	var c Config
	md, err := toml.NewDecoder(r).Decode(&c)
	if err != nil {
		return Config{}, fmt.Errorf("config: decoding: %w", err)
	}

	return c, checkUndecoded(md)
}

// checkUndecoded rejects keys that did not map onto Config, so a typo
// such as "ladder" for "ladders" is not silently lost.
func checkUndecoded(md toml.MetaData) error {
	keys := md.Undecoded()
	if len(keys) == 0 {
		return nil
	}
	names := make([]string, len(keys))
	for i, k := range keys {
		names[i] = k.String()
	}

	return fmt.Errorf("%w: %s", ErrUnknownKey, strings.Join(names, ", "))
}

// Build constructs a Board from c, registering ladders before snakes in
// document order. With board.WithStrict the first invalid shortcut stops
// the build; otherwise invalid shortcuts are dropped.
func (c Config) Build(opts ...board.Option) (*board.Board, error) {
	b, err := board.NewBoard(c.Size, opts...)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	for i, l := range c.Ladders {
		if err := b.AddLadder(l.Start, l.End); err != nil {
			return nil, fmt.Errorf("config: ladders[%d]: %w", i, err)
		}
	}
	for i, s := range c.Snakes {
		if err := b.AddSnake(s.Start, s.End); err != nil {
			return nil, fmt.Errorf("config: snakes[%d]: %w", i, err)
		}
	}

	return b, nil
}
