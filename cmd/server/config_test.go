package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/rpg-skill-simulator/internal/errors"
)

func defaultFlagConfig() *serverConfig {
	return &serverConfig{
		Port:       50051,
		RequestIDs: "ulid",
		Catalog: catalogOptions{
			Source:         sourceSnapshot,
			ArmorSnapshot:  "data/armor.json",
			WeaponSnapshot: "data/weapons.json",
			RedisAddr:      "localhost:6379",
		},
	}
}

func noFlagsChanged(string) bool { return false }

func writeConfig(t *testing.T, body string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "skillsim.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestResolveServerConfig_FlagsOnly(t *testing.T) {
	cfg, err := resolveServerConfig("", defaultFlagConfig(), noFlagsChanged)
	require.NoError(t, err)

	assert.Equal(t, defaultFlagConfig(), cfg)
}

func TestResolveServerConfig_FileOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
port: 6000
request_ids: uuid
catalog:
  source: redis
  redis_addr: cache:6379
`)

	cfg, err := resolveServerConfig(path, defaultFlagConfig(), noFlagsChanged)
	require.NoError(t, err)

	assert.Equal(t, 6000, cfg.Port)
	assert.Equal(t, "uuid", cfg.RequestIDs)
	assert.Equal(t, sourceRedis, cfg.Catalog.Source)
	assert.Equal(t, "cache:6379", cfg.Catalog.RedisAddr)
	assert.Equal(t, "data/armor.json", cfg.Catalog.ArmorSnapshot)
}

func TestResolveServerConfig_ChangedFlagsWin(t *testing.T) {
	path := writeConfig(t, `
port: 6000
catalog:
  source: redis
  redis_addr: cache:6379
`)
	flags := defaultFlagConfig()
	flags.Port = 7000

	cfg, err := resolveServerConfig(path, flags, func(name string) bool {
		return name == "port" || name == "catalog-source"
	})
	require.NoError(t, err)

	assert.Equal(t, 7000, cfg.Port)
	assert.Equal(t, sourceSnapshot, cfg.Catalog.Source)
	assert.Equal(t, "cache:6379", cfg.Catalog.RedisAddr)
}

func TestResolveServerConfig_SkillSnapshots(t *testing.T) {
	path := writeConfig(t, `
catalog:
  skill_snapshot: data/skill.json
  weapon_skill_snapshot: data/weaponSkill.json
`)

	cfg, err := resolveServerConfig(path, defaultFlagConfig(), noFlagsChanged)
	require.NoError(t, err)

	assert.Equal(t, "data/skill.json", cfg.Catalog.SkillSnapshot)
	assert.Equal(t, "data/weaponSkill.json", cfg.Catalog.WeaponSkillSnapshot)
	assert.Equal(t, "data/skill.json", cfg.Catalog.snapshotFiles().Skills)
}

func TestResolveServerConfig_Invalid(t *testing.T) {
	path := writeConfig(t, `
port: 70000
request_ids: snowflake
catalog:
  source: postgres
`)

	_, err := resolveServerConfig(path, defaultFlagConfig(), noFlagsChanged)
	require.Error(t, err)
	assert.True(t, errors.IsInvalidArgument(err))

	fields := errors.GetMeta(err)["validation_errors"].(map[string][]string)
	assert.Contains(t, fields, "port")
	assert.Contains(t, fields, "request_ids")
	assert.Contains(t, fields, "catalog.source")
}

func TestResolveServerConfig_MissingRedisAddr(t *testing.T) {
	flags := defaultFlagConfig()
	flags.Catalog.Source = sourceRedis
	flags.Catalog.RedisAddr = ""

	_, err := resolveServerConfig("", flags, noFlagsChanged)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "catalog.redis_addr: is required")
}

func TestResolveServerConfig_BadFile(t *testing.T) {
	_, err := resolveServerConfig(filepath.Join(t.TempDir(), "missing.yaml"), defaultFlagConfig(), noFlagsChanged)
	assert.Error(t, err)

	path := writeConfig(t, "port: [not, a, number]\n")
	_, err = resolveServerConfig(path, defaultFlagConfig(), noFlagsChanged)
	assert.Error(t, err)
}
