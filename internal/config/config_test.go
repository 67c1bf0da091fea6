package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAlphabetRoundTrip(t *testing.T) {
	for _, n := range []int{0, 1, 23, 24, 59, 60, 65, 3600, 123456} {
		printed := PrintIndex(n)
		got, ok := ParseIndex(printed)
		require.True(t, ok, "ParseIndex(%q)", printed)
		assert.Equal(t, n, got, "round trip for %d via %q", n, printed)
	}
}

func TestParseIndexRejectsUnknownGlyphs(t *testing.T) {
	_, ok := ParseIndex("a!b")
	assert.False(t, ok)
}

func TestLoadMissingFileYieldsZeroSettings(t *testing.T) {
	s, err := Load(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Settings{}, s)
}

func TestLoadAndResolve(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "church.yaml")
	require.NoError(t, os.WriteFile(path, []byte("strategy: call-by-value\nmax_steps: 42\n"), 0o644))

	s, err := Load(path)
	require.NoError(t, err)
	resolved := s.Resolve()
	assert.Equal(t, CallByValue, resolved.Strategy)
	assert.Equal(t, 42, resolved.MaxSteps)
}

func TestResolveFillsDefaults(t *testing.T) {
	resolved := Settings{}.Resolve()
	assert.Equal(t, DefaultStrategy, resolved.Strategy)
	assert.Equal(t, DefaultMaxSteps, resolved.MaxSteps)
}
