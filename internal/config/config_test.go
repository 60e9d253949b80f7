package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arjun/codequest/internal/sequencer"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadMissingFileYieldsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultSlotName, cfg.DefaultSlot)
	assert.Equal(t, "thirds", cfg.Banding.Policy)
	assert.IsType(t, sequencer.ThirdsPolicy{}, cfg.BandingPolicy())
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	path := writeConfig(t, `
default_slot = "arjun"

[progression]
aggressive = true
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "arjun", cfg.DefaultSlot)
	assert.True(t, cfg.Progression.Aggressive)
	assert.False(t, cfg.Progression.Remediation)
	assert.Equal(t, "thirds", cfg.Banding.Policy)
}

func TestLoadFixedBanding(t *testing.T) {
	path := writeConfig(t, `
[banding]
policy = "fixed"
level = "advanced"
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	policy := cfg.BandingPolicy()
	fixed, ok := policy.(sequencer.FixedPolicy)
	require.True(t, ok, "expected FixedPolicy, got %T", policy)
	assert.Equal(t, sequencer.DifficultyAdvanced, fixed.Level)
}

func TestLoadFixedBandingDefaultsLevel(t *testing.T) {
	path := writeConfig(t, `
[banding]
policy = "fixed"
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, string(sequencer.DifficultyBeginner), cfg.Banding.Level)
}

func TestLoadRejectsBadValues(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"unknown banding policy", "[banding]\npolicy = \"adaptive\"\n"},
		{"unknown banding level", "[banding]\npolicy = \"fixed\"\nlevel = \"expert\"\n"},
		{"negative rate limit", "[llm]\nrequests_per_minute = -1\n"},
		{"malformed toml", "default_slot = [unclosed\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			assert.Error(t, err)
		})
	}
}

func TestLoadLLMSection(t *testing.T) {
	path := writeConfig(t, `
[llm]
provider = "gemini"
model = "gemini-pro"
requests_per_minute = 10
burst = 2
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "gemini", cfg.LLM.Provider)
	assert.Equal(t, "gemini-pro", cfg.LLM.Model)
	assert.Equal(t, 10, cfg.LLM.RequestsPerMinute)
	assert.Equal(t, 2, cfg.LLM.Burst)
}

func TestDefaultPathPrecedence(t *testing.T) {
	t.Setenv("CODEQUEST_CONFIG", "/tmp/explicit.toml")
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")

	path, err := DefaultPath()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/explicit.toml", path)

	t.Setenv("CODEQUEST_CONFIG", "")
	path, err = DefaultPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/tmp/xdg", "codequest", "config.toml"), path)
}
