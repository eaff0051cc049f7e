package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, c.DataDir, ".")
	assert.Equal(t, c.LegacyDigests, false)
	assert.Equal(t, c.SupportRecent, 5)
}

func TestLoadConfig_UsesDefaultsBeforeParsing(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	os.Args = []string{"testbin"}

	c := LoadConfig()

	require.NotNil(t, c, "LoadConfig must not return nil")

	assert.Equal(t, c.DataDir, ".")
	assert.Equal(t, c.LegacyDigests, false)
	assert.Equal(t, c.SupportRecent, 5)
}
