package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "holdem.hcl")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfigMissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.hcl"))
	require.NoError(t, err)
	require.Equal(t, DefaultConfig(), cfg)
}

func TestLoadConfigFullFile(t *testing.T) {
	path := writeConfig(t, `
table {
  humans             = 1
  bots               = 5
  starting_stack     = 2000
  small_blind        = 10
  player_name        = "Dana"
  think_delay_min_ms = 100
  think_delay_max_ms = 300
}

bot "Rocky" {
  difficulty = "hard"
}

bot "Patsy" {
  difficulty = "easy"
}
`)
	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	require.Equal(t, 1, cfg.Table.Humans)
	require.Equal(t, 5, cfg.Table.Bots)
	require.Equal(t, int64(2000), cfg.Table.StartingStack)
	require.Equal(t, int64(10), cfg.Table.SmallBlind)
	require.Equal(t, "Dana", cfg.Table.PlayerName)
	require.Equal(t, 100*time.Millisecond, cfg.Table.ThinkDelayMin())
	require.Equal(t, 300*time.Millisecond, cfg.Table.ThinkDelayMax())

	require.Len(t, cfg.Bots, 2)
	require.Equal(t, "Rocky", cfg.Bots[0].Name)
	require.Equal(t, "hard", cfg.Bots[0].Difficulty)
	require.Equal(t, "Patsy", cfg.Bots[1].Name)
}

func TestLoadConfigAppliesDefaultsToPartialFile(t *testing.T) {
	path := writeConfig(t, `
table {
  humans = 1
  bots   = 2
}
`)
	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	require.Equal(t, int64(1000), cfg.Table.StartingStack)
	require.Equal(t, int64(5), cfg.Table.SmallBlind)
	require.Equal(t, "Player", cfg.Table.PlayerName)
	require.Equal(t, 500*time.Millisecond, cfg.Table.ThinkDelayMin())
}

func TestLoadConfigRejectsBadValues(t *testing.T) {
	cases := map[string]string{
		"too few players": `
table {
  humans = 1
  bots   = 0
}
`,
		"too many players": `
table {
  humans = 2
  bots   = 8
}
`,
		"stack below big blind": `
table {
  humans         = 1
  bots           = 2
  starting_stack = 5
  small_blind    = 10
}
`,
		"unknown difficulty": `
table {
  humans = 1
  bots   = 1
}

bot "X" {
  difficulty = "impossible"
}
`,
	}
	for name, content := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := LoadConfig(writeConfig(t, content))
			require.Error(t, err)
		})
	}
}

func TestLoadConfigRejectsMalformedHCL(t *testing.T) {
	_, err := LoadConfig(writeConfig(t, `table { humans = `))
	require.Error(t, err)
}
