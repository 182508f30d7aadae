// Package config loads Liars Game settings and line-ups from HCL files.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/lox/liarsgame/internal/game"
	"github.com/lox/liarsgame/internal/strategy"
)

// Config is the complete configuration file.
type Config struct {
	Game       *GameSettings       `hcl:"game,block"`
	Simulation *SimulationSettings `hcl:"simulation,block"`
	Players    []PlayerConfig      `hcl:"player,block"`
}

// GameSettings apply to every game played.
type GameSettings struct {
	Pool    float64 `hcl:"pool,optional"`
	Seed    int64   `hcl:"seed,optional"`
	Verbose bool    `hcl:"verbose,optional"`
}

// SimulationSettings apply to batches of games.
type SimulationSettings struct {
	Games       int    `hcl:"games,optional"`
	Parallelism int    `hcl:"parallelism,optional"`
	Timeout     string `hcl:"timeout,optional"`
}

// PlayerConfig declares one seat, or Count identical seats.
type PlayerConfig struct {
	Name     string   `hcl:"name,label"`
	Strategy string   `hcl:"strategy"`
	Count    int      `hcl:"count,optional"`
	Fraction *float64 `hcl:"fraction,optional"`
	Rounds   *int     `hcl:"rounds,optional"`
	Bias     *float64 `hcl:"bias,optional"`
	Scale    *float64 `hcl:"scale,optional"`
	Epsilon  *float64 `hcl:"epsilon,optional"`
	Target   *float64 `hcl:"target,optional"`
}

// Entry is a single named seat in a line-up.
type Entry struct {
	Name string
	Spec strategy.Spec
}

const (
	defaultGames       = 1000
	defaultParallelism = 4
	defaultTimeout     = "5s"
)

// DefaultConfig returns a six player line-up with one seat per interesting
// strategy.
func DefaultConfig() *Config {
	cfg := &Config{
		Players: []PlayerConfig{
			{Name: "risky", Strategy: "risky"},
			{Name: "uniform", Strategy: "uniform"},
			{Name: "half", Strategy: "half"},
			{Name: "all-in", Strategy: "all-in"},
			{Name: "undercut", Strategy: "undercut"},
			{Name: "proportional", Strategy: "proportional"},
		},
	}
	cfg.applyDefaults()
	return cfg
}

// Load reads configuration from an HCL file. A missing file yields the
// default configuration.
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}
	return decode(file.Body)
}

// Parse reads configuration from HCL source.
func Parse(src []byte, filename string) (*Config, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL: %s", diags.Error())
	}
	return decode(file.Body)
}

func decode(body hcl.Body) (*Config, error) {
	var cfg Config
	if diags := gohcl.DecodeBody(body, nil, &cfg); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}
	if len(cfg.Players) == 0 {
		cfg.Players = DefaultConfig().Players
	}
	cfg.applyDefaults()
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Game == nil {
		c.Game = &GameSettings{}
	}
	if c.Game.Pool == 0 {
		c.Game.Pool = game.DefaultPool
	}

	if c.Simulation == nil {
		c.Simulation = &SimulationSettings{}
	}
	if c.Simulation.Games == 0 {
		c.Simulation.Games = defaultGames
	}
	if c.Simulation.Parallelism == 0 {
		c.Simulation.Parallelism = defaultParallelism
	}
	if c.Simulation.Timeout == "" {
		c.Simulation.Timeout = defaultTimeout
	}

	for i := range c.Players {
		if c.Players[i].Count == 0 {
			c.Players[i].Count = 1
		}
	}
}

// Validate checks the configuration for consistency.
func (c *Config) Validate() error {
	if c.Game.Pool <= 0 {
		return fmt.Errorf("game: pool must be positive, got %v", c.Game.Pool)
	}
	if c.Simulation.Games < 1 {
		return fmt.Errorf("simulation: games must be at least 1, got %d", c.Simulation.Games)
	}
	if c.Simulation.Parallelism < 1 {
		return fmt.Errorf("simulation: parallelism must be at least 1, got %d", c.Simulation.Parallelism)
	}
	if timeout, err := time.ParseDuration(c.Simulation.Timeout); err != nil {
		return fmt.Errorf("simulation: invalid timeout %q: %w", c.Simulation.Timeout, err)
	} else if timeout <= 0 {
		return fmt.Errorf("simulation: timeout must be positive, got %s", timeout)
	}

	for _, p := range c.Players {
		if p.Count < 1 {
			return fmt.Errorf("player %s: count must be at least 1, got %d", p.Name, p.Count)
		}
		if !strategy.Known(p.Strategy) {
			return fmt.Errorf("player %s: invalid strategy %s", p.Name, p.Strategy)
		}
		if strings.EqualFold(p.Strategy, "constant") && p.Fraction == nil {
			return fmt.Errorf("player %s: constant strategy requires a fraction", p.Name)
		}
	}

	lineup := c.Lineup()
	if len(lineup) < game.MinPlayers {
		return fmt.Errorf("at least %d players must be configured, got %d", game.MinPlayers, len(lineup))
	}
	seen := make(map[string]bool, len(lineup))
	for _, e := range lineup {
		if seen[e.Name] {
			return fmt.Errorf("duplicate player name %s", e.Name)
		}
		seen[e.Name] = true
	}

	return nil
}

// Timeout returns the per-game simulation timeout.
func (c *Config) Timeout() time.Duration {
	d, err := time.ParseDuration(c.Simulation.Timeout)
	if err != nil {
		return 0
	}
	return d
}

// Lineup expands the player blocks into seats, numbering repeated players
// as name-1, name-2, ...
func (c *Config) Lineup() []Entry {
	var entries []Entry
	for _, p := range c.Players {
		spec := strategy.Spec{
			Kind:     p.Strategy,
			Fraction: p.Fraction,
			Rounds:   p.Rounds,
			Bias:     p.Bias,
			Scale:    p.Scale,
			Epsilon:  p.Epsilon,
			Target:   p.Target,
		}
		if p.Count <= 1 {
			entries = append(entries, Entry{Name: p.Name, Spec: spec})
			continue
		}
		for i := 1; i <= p.Count; i++ {
			entries = append(entries, Entry{Name: fmt.Sprintf("%s-%d", p.Name, i), Spec: spec})
		}
	}
	return entries
}
