// Package config loads table configuration from HCL files.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// Config represents the complete game configuration.
type Config struct {
	Table TableSettings `hcl:"table,block"`
	Bots  []BotConfig   `hcl:"bot,block"`
}

// TableSettings contains table-level configuration.
type TableSettings struct {
	Humans          int    `hcl:"humans,optional"`
	Bots            int    `hcl:"bots,optional"`
	StartingStack   int64  `hcl:"starting_stack,optional"`
	SmallBlind      int64  `hcl:"small_blind,optional"`
	PlayerName      string `hcl:"player_name,optional"`
	ThinkDelayMinMs int    `hcl:"think_delay_min_ms,optional"`
	ThinkDelayMaxMs int    `hcl:"think_delay_max_ms,optional"`
	LogLevel        string `hcl:"log_level,optional"`
}

// BotConfig names one bot seat and its difficulty. Bot blocks beyond
// the table's bot count are ignored; missing blocks fall back to
// generated names at medium difficulty.
type BotConfig struct {
	Name       string `hcl:"name,label"`
	Difficulty string `hcl:"difficulty,optional"`
}

// DefaultConfig returns the configuration used when no file is given:
// one human against three medium bots.
func DefaultConfig() *Config {
	return &Config{
		Table: TableSettings{
			Humans:          1,
			Bots:            3,
			StartingStack:   1000,
			SmallBlind:      5,
			PlayerName:      "Player",
			ThinkDelayMinMs: 500,
			ThinkDelayMaxMs: 2000,
			LogLevel:        "warn",
		},
	}
}

// LoadConfig loads configuration from an HCL file. A missing file is
// not an error; defaults are returned instead.
func LoadConfig(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var config Config
	diags = gohcl.DecodeBody(file.Body, nil, &config)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	applyDefaults(&config)
	if err := validate(&config); err != nil {
		return nil, err
	}
	return &config, nil
}

func applyDefaults(config *Config) {
	defaults := DefaultConfig().Table
	t := &config.Table
	if t.Humans == 0 && t.Bots == 0 {
		t.Humans = defaults.Humans
		t.Bots = defaults.Bots
	}
	if t.StartingStack == 0 {
		t.StartingStack = defaults.StartingStack
	}
	if t.SmallBlind == 0 {
		t.SmallBlind = defaults.SmallBlind
	}
	if t.PlayerName == "" {
		t.PlayerName = defaults.PlayerName
	}
	if t.ThinkDelayMinMs == 0 && t.ThinkDelayMaxMs == 0 {
		t.ThinkDelayMinMs = defaults.ThinkDelayMinMs
		t.ThinkDelayMaxMs = defaults.ThinkDelayMaxMs
	}
	if t.LogLevel == "" {
		t.LogLevel = defaults.LogLevel
	}
}

func validate(config *Config) error {
	t := &config.Table
	if t.Humans < 0 || t.Bots < 0 {
		return fmt.Errorf("player counts cannot be negative")
	}
	if t.Humans+t.Bots < 2 {
		return fmt.Errorf("need at least 2 players, have %d", t.Humans+t.Bots)
	}
	if t.Humans+t.Bots > 9 {
		return fmt.Errorf("at most 9 players fit at the table, have %d", t.Humans+t.Bots)
	}
	if t.SmallBlind < 0 {
		return fmt.Errorf("small blind cannot be negative")
	}
	if t.StartingStack < t.SmallBlind*2 {
		return fmt.Errorf("starting stack %d cannot cover the big blind %d",
			t.StartingStack, t.SmallBlind*2)
	}
	if t.ThinkDelayMinMs < 0 || t.ThinkDelayMaxMs < t.ThinkDelayMinMs {
		return fmt.Errorf("invalid think delay range %d-%dms",
			t.ThinkDelayMinMs, t.ThinkDelayMaxMs)
	}
	for _, b := range config.Bots {
		switch b.Difficulty {
		case "", "easy", "medium", "hard":
		default:
			return fmt.Errorf("unknown difficulty %q for bot %q", b.Difficulty, b.Name)
		}
	}
	return nil
}

// ThinkDelayMin returns the lower bound of simulated bot thinking time.
func (t *TableSettings) ThinkDelayMin() time.Duration {
	return time.Duration(t.ThinkDelayMinMs) * time.Millisecond
}

// ThinkDelayMax returns the upper bound of simulated bot thinking time.
func (t *TableSettings) ThinkDelayMax() time.Duration {
	return time.Duration(t.ThinkDelayMaxMs) * time.Millisecond
}
