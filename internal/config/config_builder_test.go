package config

import (
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

func skipAuthConfig(platform string) *StructuredConfig {
	return &StructuredConfig{Realms: Realms{Platform: platform, SkipAuth: true}}
}

// ── newConfigBuilder ──────────────────────────────────────────────────────────

// TestNewConfigBuilder_InitialState verifies that a freshly created builder
// has no error and an empty configs slice.
func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── build ─────────────────────────────────────────────────────────────────────

// TestBuild_EmptyBuilder verifies that an empty builder defaults to java and
// then fails validation: java credentials are mandatory for "list".
func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, ErrInvalidAuthConfigs)
}

// TestBuild_VersionNeedsNoPlatformOrAuth verifies that the version command
// builds without a platform or credentials.
func TestBuild_VersionNeedsNoPlatformOrAuth(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{Args: []string{CommandVersion}})

	cfg, err := b.build()

	require.NoError(t, err)
	assert.Equal(t, CommandVersion, cfg.Command())
	assert.Equal(t, "java", cfg.Realms.Platform)
}

// TestBuild_AppliesDefaults verifies that unset fields receive defaults.
func TestBuild_AppliesDefaults(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, skipAuthConfig("java"))

	cfg, err := b.build()
	require.NoError(t, err)
	require.NotNil(t, cfg.Realms.MaxRetries)
	assert.Equal(t, 4, *cfg.Realms.MaxRetries)
	assert.Equal(t, time.Second, cfg.Realms.RetryBaseDelay)
	assert.Equal(t, ".", cfg.Download.Dir)
	assert.Equal(t, "info", cfg.Log.Level)
}

// TestBuild_PropagatesBuilderError verifies that a pre-set b.err is wrapped
// and returned, with nil config.
func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_LaterSourcesOverride verifies that non-zero fields of later
// configs win and zero fields keep earlier values.
func TestBuild_LaterSourcesOverride(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{
			Realms:   Realms{Platform: "java", SkipAuth: true, MaxRetries: intPtr(2)},
			Download: Download{Dir: "/from-env"},
		},
		&StructuredConfig{
			Realms: Realms{Platform: "Bedrock", MaxRetries: intPtr(0)},
			Log:    Log{Level: "debug"},
		},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "bedrock", cfg.Realms.Platform)
	assert.True(t, cfg.Realms.SkipAuth)
	assert.Equal(t, 0, *cfg.Realms.MaxRetries)
	assert.Equal(t, "/from-env", cfg.Download.Dir)
	assert.Equal(t, "debug", cfg.Log.Level)
}

// ── withEnv ───────────────────────────────────────────────────────────────────

// TestWithEnv_ReturnsBuilder verifies the fluent interface.
func TestWithEnv_ReturnsBuilder(t *testing.T) {
	b := newConfigBuilder()
	assert.Same(t, b, b.withEnv())
}

// TestWithEnv_ReadsEnvVars verifies that environment variables are picked up.
func TestWithEnv_ReadsEnvVars(t *testing.T) {
	setEnvVars(t, map[string]string{
		"REALMS_PLATFORM":  "java",
		"REALMS_SKIP_AUTH": "true",
	})

	b := newConfigBuilder()
	b.withEnv()

	require.Len(t, b.configs, 1)
	assert.NoError(t, b.err)
	assert.Equal(t, "java", b.configs[0].Realms.Platform)
	assert.True(t, b.configs[0].Realms.SkipAuth)
}

// TestWithEnv_SetsError_WhenInvalid verifies that a bad value sets b.err and
// appends nothing.
func TestWithEnv_SetsError_WhenInvalid(t *testing.T) {
	setEnvVars(t, map[string]string{"REALMS_MAX_RETRIES": "lots"})

	b := newConfigBuilder()
	b.withEnv()

	assert.Error(t, b.err)
	assert.Empty(t, b.configs)
}

// ── withFlags ─────────────────────────────────────────────────────────────────

// TestWithFlags_ReturnsBuilder verifies the fluent interface.
func TestWithFlags_ReturnsBuilder(t *testing.T) {
	b := newConfigBuilder()
	assert.Same(t, b, b.withFlags(nil))
}

// TestWithFlags_SetsError_WhenInvalid verifies that an unknown flag sets b.err.
func TestWithFlags_SetsError_WhenInvalid(t *testing.T) {
	b := newConfigBuilder()
	b.withFlags([]string{"-unknown"})

	assert.Error(t, b.err)
	assert.Empty(t, b.configs)
}

// ── withFile ──────────────────────────────────────────────────────────────────

// TestWithFile_NoOp_WhenNoPathSet verifies that withFile does nothing when
// no config has a FilePath.
func TestWithFile_NoOp_WhenNoPathSet(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{})
	b.withFile()

	assert.Len(t, b.configs, 1)
	assert.NoError(t, b.err)
}

// TestWithFile_AppendsConfig_WhenValidFile verifies that a valid JSON file is
// parsed and appended.
func TestWithFile_AppendsConfig_WhenValidFile(t *testing.T) {
	payload := StructuredFileConfig{}
	payload.Realms.Platform = "bedrock"
	payload.Log.Level = "warn"
	path := writeTempJSONConfig(t, payload)

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{FilePath: path})
	b.withFile()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 2)
	assert.Equal(t, "bedrock", b.configs[1].Realms.Platform)
	assert.Equal(t, "warn", b.configs[1].Log.Level)
}

// TestWithFile_SetsError_WhenFileNotFound verifies that a missing file path
// sets b.err.
func TestWithFile_SetsError_WhenFileNotFound(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{FilePath: "/nonexistent/config.json"})
	b.withFile()

	assert.Error(t, b.err)
}

// TestWithFile_UsesLastPath verifies that when multiple configs have a
// FilePath, the last non-empty one wins.
func TestWithFile_UsesLastPath(t *testing.T) {
	first := StructuredFileConfig{}
	first.Download.Dir = "first"
	last := StructuredFileConfig{}
	last.Download.Dir = "last-wins"

	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{FilePath: writeTempJSONConfig(t, first)},
		&StructuredConfig{FilePath: ""},
		&StructuredConfig{FilePath: writeTempJSONConfig(t, last)},
	)
	b.withFile()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 4)
	assert.Equal(t, "last-wins", b.configs[3].Download.Dir)
}

// ── GetStructuredConfig ───────────────────────────────────────────────────────

// TestGetStructuredConfig_AllSources verifies the env -> flags -> file order.
func TestGetStructuredConfig_AllSources(t *testing.T) {
	file := StructuredFileConfig{}
	file.Auth.XboxUserHash = "uhs"
	file.Auth.XSTSToken = "xsts"
	file.Download.Dir = "/from-file"
	path := writeTempJSONConfig(t, file)

	setEnvVars(t, map[string]string{
		"REALMS_PLATFORM": "java",
		"DOWNLOAD_DIR":    "/from-env",
		"LOG_LEVEL":       "error",
		"CONFIG":          path,
	})

	cfg, err := GetStructuredConfig([]string{"-platform", "bedrock", "list"})

	require.NoError(t, err)
	assert.Equal(t, "bedrock", cfg.Realms.Platform)
	assert.Equal(t, "/from-file", cfg.Download.Dir)
	assert.Equal(t, "error", cfg.Log.Level)
	assert.Equal(t, "uhs", cfg.Auth.XboxUserHash)
	assert.Equal(t, []string{"list"}, cfg.Args)
}

// TestGetStructuredConfig_VersionWithEmptyEnv verifies that "version" works
// with nothing configured, while API commands still demand credentials.
func TestGetStructuredConfig_VersionWithEmptyEnv(t *testing.T) {
	clearEnvVars(t)

	cfg, err := GetStructuredConfig([]string{"version"})
	require.NoError(t, err)
	assert.Equal(t, []string{"version"}, cfg.Args)

	cfg, err = GetStructuredConfig([]string{"-platform", "pocket", "version"})
	require.NoError(t, err, "platform is not checked for version")
	assert.Equal(t, "pocket", cfg.Realms.Platform)

	_, err = GetStructuredConfig([]string{"list"})
	assert.ErrorIs(t, err, ErrInvalidAuthConfigs)

	_, err = GetStructuredConfig([]string{"-platform", "pocket", "list"})
	assert.ErrorIs(t, err, ErrInvalidRealmsConfigs)
}

// TestGetStructuredConfig_DefaultPlatform verifies that -platform is optional.
func TestGetStructuredConfig_DefaultPlatform(t *testing.T) {
	setEnvVars(t, map[string]string{
		"AUTH_JAVA_ACCESS_TOKEN": "access",
		"AUTH_JAVA_PROFILE_ID":   "3333dddd2222cccc1111bbbb0000aaaa",
		"AUTH_JAVA_PROFILE_NAME": "Steve",
	})

	cfg, err := GetStructuredConfig([]string{"list"})

	require.NoError(t, err)
	assert.Equal(t, "java", cfg.Realms.Platform)
	assert.Equal(t, CommandList, cfg.Command())
}

func TestCommand(t *testing.T) {
	assert.Equal(t, CommandList, (&StructuredConfig{}).Command())
	assert.Equal(t, CommandBackup, (&StructuredConfig{Args: []string{"backup", "extra"}}).Command())
}
