package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lucasmellon-ops/Baofeng-DM-32/internal/codeplug"
	"github.com/lucasmellon-ops/Baofeng-DM-32/internal/config"
	"github.com/lucasmellon-ops/Baofeng-DM-32/internal/pipeline"
	"github.com/lucasmellon-ops/Baofeng-DM-32/internal/talkgroup"
)

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"ok", nil, exitOK},
		{"generic", errors.New("boom"), exitFailure},
		{"config", fmt.Errorf("load: %w", config.ErrInvalid), exitConfig},
		{"header", fmt.Errorf("read: %w", talkgroup.ErrHeader), exitConfig},
		{"nothing to generate", pipeline.ErrNothingToGenerate, exitConfig},
		{"encoding", &codeplug.EncodingError{Table: "channels", Row: 2, Column: "Name", Value: "Café"}, exitEncoding},
		{"strict", errStrict, exitStrict},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, exitCode(tt.err))
		})
	}
}

func resetState(t *testing.T) {
	t.Helper()
	viper.Reset()
	cfgFile = ""
	t.Cleanup(func() {
		viper.Reset()
		cfgFile = ""
	})
}

func TestLoadDefinitionDefaults(t *testing.T) {
	resetState(t)

	cfg, err := loadDefinition()
	require.NoError(t, err)
	assert.Equal(t, codeplug.DefaultPrefix, cfg.Output.Prefix)
	assert.True(t, cfg.TalkgroupZone.IsHotspot())
}

func TestLoadDefinitionOverrides(t *testing.T) {
	resetState(t)
	dir := t.TempDir()
	path := filepath.Join(dir, "codeplug.yaml")
	require.NoError(t, os.WriteFile(path, []byte("output:\n  prefix: FILE\n  dir: from-file\n"), 0o600))
	cfgFile = path

	viper.Set("output.prefix", "FLAG")
	viper.Set("talkgroups.max_length", 12)

	cfg, err := loadDefinition()
	require.NoError(t, err)
	assert.Equal(t, "FLAG", cfg.Output.Prefix)
	assert.Equal(t, "from-file", cfg.Output.Dir)
	assert.Equal(t, 12, cfg.Talkgroups.MaxLength)
}

func TestLoadDefinitionInvalid(t *testing.T) {
	resetState(t)
	viper.Set("output.encoding", "latin1")

	_, err := loadDefinition()
	require.Error(t, err)
	assert.Equal(t, exitConfig, exitCode(err))
}

func TestLoadDefinitionMissingFile(t *testing.T) {
	resetState(t)
	cfgFile = filepath.Join(t.TempDir(), "missing.yaml")

	_, err := loadDefinition()
	require.Error(t, err)
	assert.Equal(t, exitConfig, exitCode(err))
}

func TestReadTalkgroups(t *testing.T) {
	resetState(t)
	path := filepath.Join(t.TempDir(), "tg.csv")
	require.NoError(t, os.WriteFile(path, []byte("Talkgroup,Name\n91,Worldwide\n3100,USA\n"), 0o600))

	cfg := config.Default()
	rows, err := readTalkgroups(cfg)
	require.NoError(t, err)
	assert.Empty(t, rows)

	cfg.Talkgroups.Source = path
	rows, err = readTalkgroups(cfg)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "91", rows[0].ID)
	assert.Equal(t, "USA", rows[1].Name)
}
