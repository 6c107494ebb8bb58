package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kiri/internal/config"
)

func TestRootCmdLoadsConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kiri.toml")
	require.NoError(t, os.WriteFile(path, []byte("[lsp]\nname = \"kiri-test\"\n"), 0o644))

	var got *config.Config
	cmd := newRootCmd(func(cfg *config.Config) error {
		got = cfg
		return nil
	})
	cmd.SetArgs([]string{"--config", path})

	require.NoError(t, cmd.Execute())
	require.NotNil(t, got)
	assert.Equal(t, "kiri-test", got.LSP.Name)
}

func TestRootCmdBadConfig(t *testing.T) {
	served := false
	cmd := newRootCmd(func(*config.Config) error {
		served = true
		return nil
	})
	cmd.SetArgs([]string{"--config", filepath.Join(t.TempDir(), "absent.toml")})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "loading config")
	assert.False(t, served)
}

func TestRootCmdRejectsArgs(t *testing.T) {
	cmd := newRootCmd(func(*config.Config) error { return nil })
	cmd.SetArgs([]string{"stray"})
	assert.Error(t, cmd.Execute())
}
