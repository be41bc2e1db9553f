package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tinytelemetry/sidenav/internal/model"
)

func TestLoadConfig_DefaultsWhenFileMissing(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := loadConfig(filepath.Join(t.TempDir(), "missing.yml"))
	require.NoError(t, err)
	assert.False(t, cfg.HTTPEnabled)
	assert.Equal(t, model.DefaultHTTPAddr, cfg.HTTPAddr)
	assert.Equal(t, model.DefaultSkin, cfg.Skin)
	assert.Equal(t, model.DefaultSidebarWidth, cfg.SidebarWidth)
	assert.True(t, cfg.Mouse)
	assert.Equal(t, "sidenav.log", filepath.Base(cfg.LogFile))
}

func TestLoadConfig_FileAndEnv(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("SIDENAV_SKIN", "mono")

	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte("http-enabled: true\nhttp-addr: 127.0.0.1:9999\nsidebar-width: 30\nmouse: false\n"), 0o644))

	cfg, err := loadConfig(path)
	require.NoError(t, err)
	assert.True(t, cfg.HTTPEnabled)
	assert.Equal(t, "127.0.0.1:9999", cfg.HTTPAddr)
	assert.Equal(t, 30, cfg.SidebarWidth)
	assert.False(t, cfg.Mouse)
	assert.Equal(t, "mono", cfg.Skin)
}

func TestLoadConfig_RejectsNarrowSidebar(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte("sidebar-width: 4\n"), 0o644))

	_, err := loadConfig(path)
	assert.ErrorContains(t, err, "too narrow")
}

func TestRun_NothingToRun(t *testing.T) {
	err := run(appConfig{}, true)
	assert.ErrorContains(t, err, "nothing to run")
}
