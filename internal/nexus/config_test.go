package nexus

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type upstreamConfig struct {
	BaseURL string `env:"TEST_NEXUS_BASE_URL" env-default:"https://randomuser.me/api/" validate:"required,url"`
	Results int    `env:"TEST_NEXUS_RESULTS" env-default:"100" validate:"min=1,max=5000"`
}

type testConfig struct {
	Upstream upstreamConfig
	Host     string `env:"TEST_NEXUS_HOST" env-default:"localhost" validate:"required"`
	Password string `env:"TEST_NEXUS_PASSWORD"`
}

func TestLoader_EnvironmentDefaults(t *testing.T) {
	cfg := &testConfig{}
	err := NewLoader(WithOnlyEnvironment()).Load(cfg)

	require.NoError(t, err)
	assert.Equal(t, "localhost", cfg.Host)
	assert.Equal(t, "https://randomuser.me/api/", cfg.Upstream.BaseURL)
	assert.Equal(t, 100, cfg.Upstream.Results)
}

func TestLoader_EnvironmentOverrides(t *testing.T) {
	t.Setenv("TEST_NEXUS_RESULTS", "25")
	t.Setenv("TEST_NEXUS_HOST", "0.0.0.0")

	cfg := &testConfig{}
	require.NoError(t, NewLoader(WithOnlyEnvironment()).Load(cfg))
	assert.Equal(t, 25, cfg.Upstream.Results)
	assert.Equal(t, "0.0.0.0", cfg.Host)
}

func TestLoader_ValidationFailure(t *testing.T) {
	t.Setenv("TEST_NEXUS_RESULTS", "0")

	cfg := &testConfig{}
	err := NewLoader(WithOnlyEnvironment()).Load(cfg)

	var cfgErr *ConfigError
	require.True(t, errors.As(err, &cfgErr))
	assert.Equal(t, ErrCodeValidation, cfgErr.Code)
}

func TestLoader_SecurityCheck(t *testing.T) {
	t.Setenv("TEST_NEXUS_PASSWORD", "changeme")

	cfg := &testConfig{}
	err := NewLoader(WithOnlyEnvironment()).Load(cfg)

	var cfgErr *ConfigError
	require.True(t, errors.As(err, &cfgErr))
	assert.Equal(t, ErrCodeSecurityCheck, cfgErr.Code)
	assert.Contains(t, err.Error(), "Password")
}

func TestLoader_InvalidType(t *testing.T) {
	err := NewLoader(WithOnlyEnvironment()).Load(testConfig{})

	var cfgErr *ConfigError
	require.True(t, errors.As(err, &cfgErr))
	assert.Equal(t, ErrCodeInvalidType, cfgErr.Code)
}

func TestLoader_FromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "app.env")
	require.NoError(t, os.WriteFile(path, []byte("TEST_NEXUS_HOST=filehost\nTEST_NEXUS_RESULTS=7\n"), 0o600))
	// cleanenv exports .env values into the process environment
	t.Cleanup(func() {
		os.Unsetenv("TEST_NEXUS_HOST")
		os.Unsetenv("TEST_NEXUS_RESULTS")
	})

	cfg := &testConfig{}
	require.NoError(t, NewLoader(WithFileName(path)).Load(cfg))
	assert.Equal(t, "filehost", cfg.Host)
	assert.Equal(t, 7, cfg.Upstream.Results)
}

func TestLoader_MissingFile(t *testing.T) {
	cfg := &testConfig{}
	err := NewLoader(WithFileName(filepath.Join(t.TempDir(), "missing.env"))).Load(cfg)

	var cfgErr *ConfigError
	require.True(t, errors.As(err, &cfgErr))
	assert.Equal(t, ErrCodeFileNotFound, cfgErr.Code)
}

type recordingSource struct {
	name     string
	priority int
	calls    *[]string
	err      error
}

func (s recordingSource) Load(_ context.Context, _ interface{}) error {
	*s.calls = append(*s.calls, s.name)
	return s.err
}

func (s recordingSource) Name() string { return s.name }
func (s recordingSource) Priority() int { return s.priority }

func TestLoader_CustomSourcesByPriority(t *testing.T) {
	var calls []string
	loader := NewLoader(
		WithOnlyEnvironment(),
		WithSources(
			recordingSource{name: "low", priority: 1, calls: &calls},
			recordingSource{name: "high", priority: 10, calls: &calls},
		),
	)

	require.NoError(t, loader.Load(&testConfig{}))
	assert.Equal(t, []string{"high", "low"}, calls)
}

func TestLoader_CustomSourceError(t *testing.T) {
	var calls []string
	loader := NewLoader(
		WithOnlyEnvironment(),
		WithSources(recordingSource{name: "broken", calls: &calls, err: assert.AnError}),
	)

	err := loader.Load(&testConfig{})
	var cfgErr *ConfigError
	require.True(t, errors.As(err, &cfgErr))
	assert.Equal(t, ErrCodeSourceFailed, cfgErr.Code)
	assert.ErrorIs(t, err, assert.AnError)
}

func TestLoader_DefaultFileName(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "defaults.env")
	require.NoError(t, os.WriteFile(path, []byte("TEST_NEXUS_HOST=defaulthost\n"), 0o600))
	t.Cleanup(func() { os.Unsetenv("TEST_NEXUS_HOST") })

	cfg := &testConfig{}
	require.NoError(t, NewLoader(WithDefaultFileName(path)).Load(cfg))
	assert.Equal(t, "defaulthost", cfg.Host)
}

func TestLoader_MissingDefaultFileIgnored(t *testing.T) {
	cfg := &testConfig{}
	err := NewLoader(WithDefaultFileName(filepath.Join(t.TempDir(), "absent.env"))).Load(cfg)

	require.NoError(t, err)
	assert.Equal(t, "localhost", cfg.Host)
}

type blockingSource struct{}

func (blockingSource) Load(ctx context.Context, _ interface{}) error {
	<-ctx.Done()
	return ctx.Err()
}

func (blockingSource) Name() string  { return "blocking" }
func (blockingSource) Priority() int { return 0 }

func TestLoader_Timeout(t *testing.T) {
	loader := NewLoader(
		WithOnlyEnvironment(),
		WithTimeout(20*time.Millisecond),
		WithSources(blockingSource{}),
	)

	err := loader.Load(&testConfig{})
	var cfgErr *ConfigError
	require.True(t, errors.As(err, &cfgErr))
	assert.Equal(t, ErrCodeSourceFailed, cfgErr.Code)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
