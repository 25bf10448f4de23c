package main

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	skillsimv1alpha1 "github.com/KirkDiggler/rpg-skill-simulator/internal/api/skillsim/v1alpha1"
	"github.com/KirkDiggler/rpg-skill-simulator/internal/entities/equipment"
	"github.com/KirkDiggler/rpg-skill-simulator/internal/errors"
	"github.com/KirkDiggler/rpg-skill-simulator/internal/repositories/catalog"
	"github.com/KirkDiggler/rpg-skill-simulator/internal/testutils"
)

const testArmor = `[
  {"id": 1, "part": "head", "name": "HeadA", "defense": 30, "slot1": 1, "slot2": 0, "slot3": 0,
   "skills": [{"name": "攻撃", "level": 2}]},
  {"id": 2, "part": "body", "name": "BodyA", "defense": 40, "slot1": 0, "slot2": 0, "slot3": 0,
   "skills": [{"name": "攻撃", "level": 1}]}
]`

const testWeapons = `[
  {"id": 1, "name": "Buster Sword", "furigana": "ばすたー", "type": "大剣", "attack": 200,
   "slot1": 0, "slot2": 0, "slot3": 0, "skills": []}
]`

const testSkills = `[
  {"name": "攻撃", "level": 7, "category": "攻撃系", "furigana": "こうげき"},
  {"name": "会心", "level": 5, "category": "攻撃系", "furigana": "かいしん"}
]`

const testWeaponSkills = `[
  {"name": "匠", "maxLevel": 5, "furigana": "たくみ"}
]`

func writeSkillSnapshots(t *testing.T) (string, string) {
	t.Helper()

	dir := t.TempDir()
	skillPath := filepath.Join(dir, "skill.json")
	weaponSkillPath := filepath.Join(dir, "weaponSkill.json")
	require.NoError(t, os.WriteFile(skillPath, []byte(testSkills), 0o600))
	require.NoError(t, os.WriteFile(weaponSkillPath, []byte(testWeaponSkills), 0o600))

	return skillPath, weaponSkillPath
}

func writeSnapshots(t *testing.T) (string, string) {
	t.Helper()

	dir := t.TempDir()
	armorPath := filepath.Join(dir, "armor.json")
	weaponPath := filepath.Join(dir, "weapons.json")
	require.NoError(t, os.WriteFile(armorPath, []byte(testArmor), 0o600))
	require.NoError(t, os.WriteFile(weaponPath, []byte(testWeapons), 0o600))

	return armorPath, weaponPath
}

func TestNewCatalogRepository_Snapshot(t *testing.T) {
	armorPath, weaponPath := writeSnapshots(t)

	repo, cleanup, err := newCatalogRepository(context.Background(), catalogOptions{
		Source:         sourceSnapshot,
		ArmorSnapshot:  armorPath,
		WeaponSnapshot: weaponPath,
	})
	require.NoError(t, err)
	defer cleanup()

	out, err := repo.GetCatalog(context.Background(), catalog.GetCatalogInput{})
	require.NoError(t, err)
	assert.Len(t, out.Armor, 2)
	assert.Len(t, out.Weapons, 1)
}

func TestNewCatalogRepository_MissingSnapshot(t *testing.T) {
	_, _, err := newCatalogRepository(context.Background(), catalogOptions{
		Source:        sourceSnapshot,
		ArmorSnapshot: filepath.Join(t.TempDir(), "missing.json"),
	})

	require.Error(t, err)
	assert.True(t, errors.IsNotFound(err))
}

func TestNewCatalogRepository_UnknownSource(t *testing.T) {
	_, _, err := newCatalogRepository(context.Background(), catalogOptions{Source: "postgres"})

	assert.Error(t, err)
}

func TestNewCatalogRepository_Redis(t *testing.T) {
	_, mr := testutils.CreateTestRedisClient(t)

	repo, cleanup, err := newCatalogRepository(context.Background(), catalogOptions{
		Source:    sourceRedis,
		RedisAddr: mr.Addr(),
	})
	require.NoError(t, err)
	defer cleanup()

	out, err := repo.GetCatalog(context.Background(), catalog.GetCatalogInput{})
	require.NoError(t, err)
	assert.Empty(t, out.Armor)
	assert.Empty(t, out.Weapons)
}

func TestNewCatalogRepository_RedisUnreachable(t *testing.T) {
	_, mr := testutils.CreateTestRedisClient(t)
	addr := mr.Addr()
	mr.Close()

	_, _, err := newCatalogRepository(context.Background(), catalogOptions{
		Source:    sourceRedis,
		RedisAddr: addr,
	})

	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.CodeUnavailable))
}

func TestImportSnapshots(t *testing.T) {
	armorPath, weaponPath := writeSnapshots(t)
	client, _ := testutils.CreateTestRedisClient(t)

	dest, err := catalog.NewRedis(&catalog.RedisConfig{Client: client})
	require.NoError(t, err)

	skillPath, weaponSkillPath := writeSkillSnapshots(t)

	counts, err := importSnapshots(context.Background(), catalog.SnapshotFiles{
		Armor:        armorPath,
		Weapons:      weaponPath,
		Skills:       skillPath,
		WeaponSkills: weaponSkillPath,
	}, dest)
	require.NoError(t, err)
	assert.Equal(t, 2, counts.armor)
	assert.Equal(t, 1, counts.weapons)
	assert.Equal(t, 3, counts.skills)

	skills, err := dest.ListSkills(context.Background(), catalog.ListSkillsInput{Kind: equipment.SkillKindWeapon})
	require.NoError(t, err)
	require.Len(t, skills.Skills, 1)
	assert.Equal(t, "匠", skills.Skills[0].Name)

	out, err := dest.GetCatalog(context.Background(), catalog.GetCatalogInput{})
	require.NoError(t, err)
	require.Len(t, out.Armor, 2)
	assert.Equal(t, "HeadA", out.Armor[0].Name)
	assert.Equal(t, "BodyA", out.Armor[1].Name)
	require.Len(t, out.Weapons, 1)
	assert.Equal(t, "Buster Sword", out.Weapons[0].Name)
}

func TestNewSearchHandler(t *testing.T) {
	armorPath, weaponPath := writeSnapshots(t)
	skillPath, _ := writeSkillSnapshots(t)
	repo, err := catalog.LoadSnapshotFiles(catalog.SnapshotFiles{Armor: armorPath, Weapons: weaponPath, Skills: skillPath})
	require.NoError(t, err)

	ids, err := newIDGenerator("ulid")
	require.NoError(t, err)

	handler, err := newSearchHandler(repo, ids)
	require.NoError(t, err)

	resp, err := handler.SearchArmor(context.Background(), &skillsimv1alpha1.SearchArmorRequest{
		Requirements: []*skillsimv1alpha1.SkillLevel{{Name: "攻撃", Level: 3}},
	})
	require.NoError(t, err)
	assert.Equal(t, int32(1), resp.TotalFound)
	assert.NotEmpty(t, resp.SearchId)

	skills, err := handler.ListSkills(context.Background(), &skillsimv1alpha1.ListSkillsRequest{Kind: "armor"})
	require.NoError(t, err)
	require.Len(t, skills.Skills, 2)
	assert.Equal(t, "会心", skills.Skills[0].Name)
	assert.Equal(t, int32(7), skills.Skills[1].MaxLevel)
}

func TestNewIDGenerator(t *testing.T) {
	for _, format := range []string{"ulid", "uuid"} {
		t.Run(format, func(t *testing.T) {
			ids, err := newIDGenerator(format)
			require.NoError(t, err)
			assert.True(t, strings.HasPrefix(ids.Generate(), "search_"))
		})
	}

	_, err := newIDGenerator("snowflake")
	assert.Error(t, err)
}
