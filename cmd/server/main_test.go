package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/justradojko/intellij-community/internal/config"
	"github.com/justradojko/intellij-community/internal/project"
	"github.com/justradojko/intellij-community/pkg/logger"
)

func TestLoadConfig_FlagsOverrideFile(t *testing.T) {
	root := t.TempDir()
	cfgPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("port: 9000\nlog_level: info\n"), 0o644))
	t.Setenv("CONFIG_PATH", "")

	opts := &options{}
	cmd := newCommandWithOptions(opts)
	require.NoError(t, cmd.ParseFlags([]string{
		"--config", cfgPath,
		"--project-root", root,
		"--port", "9100",
	}))

	cfg, err := loadConfig(cmd, opts)
	require.NoError(t, err)

	assert.Equal(t, 9100, cfg.Port)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, root, cfg.Project.Root)
}

func TestLoadConfig_UnsetFlagsKeepFileValues(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("port: 9000\n"), 0o644))
	t.Setenv("CONFIG_PATH", cfgPath)

	opts := &options{}
	cmd := newCommandWithOptions(opts)
	require.NoError(t, cmd.ParseFlags(nil))

	cfg, err := loadConfig(cmd, opts)
	require.NoError(t, err)
	assert.Equal(t, 9000, cfg.Port)
}

func TestLoadConfig_InvalidFlag(t *testing.T) {
	t.Setenv("CONFIG_PATH", "")
	opts := &options{}
	cmd := newCommandWithOptions(opts)
	require.NoError(t, cmd.ParseFlags([]string{"--log-level", "chatty"}))

	_, err := loadConfig(cmd, opts)
	assert.Error(t, err)
}

func TestCommand_RejectsArgs(t *testing.T) {
	cmd := newCommand()
	cmd.SetArgs([]string{"extra"})
	assert.Error(t, cmd.Execute())
}

func TestSwitchProjectRoot(t *testing.T) {
	first, second := t.TempDir(), t.TempDir()
	model, err := project.NewModel(project.Options{Root: first}, logger.NewNop())
	require.NoError(t, err)

	switchProjectRoot(model, second, logger.NewNop())
	root, ok := model.Root()
	assert.True(t, ok)
	assert.Equal(t, second, root)

	// A root whose descriptor cannot be parsed keeps the previous one.
	broken := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(broken, ".locator"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(broken, ".locator", "project.yaml"), []byte("excluded: [unclosed\n"), 0o644))
	switchProjectRoot(model, broken, logger.NewNop())
	root, _ = model.Root()
	assert.Equal(t, second, root)
}

func TestApplyReload_KeepsFlagProjectRoot(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "foo.txt"), []byte("x"), 0o644))
	cfgPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("port: 9000\n"), 0o644))
	t.Setenv("CONFIG_PATH", "")
	t.Setenv("PROJECT_ROOT", "")

	opts := &options{}
	cmd := newCommandWithOptions(opts)
	require.NoError(t, cmd.ParseFlags([]string{"--config", cfgPath, "--project-root", root}))

	cfg, err := loadConfig(cmd, opts)
	require.NoError(t, err)
	model, err := project.NewModel(cfg.ProjectOptions(), logger.NewNop())
	require.NoError(t, err)

	// The file carries no project root; the flag must survive the reload.
	require.NoError(t, os.WriteFile(cfgPath, []byte("port: 9001\n"), 0o644))
	next, err := config.LoadFrom(cfgPath)
	require.NoError(t, err)
	require.Empty(t, next.Project.Root)

	applyReload(model, next, flagOverrides(cmd, opts), logger.NewNop())

	got, ok := model.Root()
	assert.True(t, ok)
	assert.Equal(t, root, got)
	assert.Empty(t, next.Project.Root, "the shared reloaded config is not mutated")
}

func TestApplyReload_FileRootWithoutFlag(t *testing.T) {
	first, second := t.TempDir(), t.TempDir()
	cfgPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("project:\n  root: "+first+"\n"), 0o644))
	t.Setenv("CONFIG_PATH", "")

	opts := &options{}
	cmd := newCommandWithOptions(opts)
	require.NoError(t, cmd.ParseFlags([]string{"--config", cfgPath}))

	cfg, err := loadConfig(cmd, opts)
	require.NoError(t, err)
	model, err := project.NewModel(cfg.ProjectOptions(), logger.NewNop())
	require.NoError(t, err)

	next := config.GetDefaultConfig()
	next.Project.Root = second
	applyReload(model, next, flagOverrides(cmd, opts), logger.NewNop())

	got, _ := model.Root()
	assert.Equal(t, second, got)
}
