package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"os"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/KirkDiggler/rpg-skill-simulator/internal/entities/equipment"
	"github.com/KirkDiggler/rpg-skill-simulator/internal/errors"
)

// skillRecord is an entry of the armor skill master snapshot
type skillRecord struct {
	ID       int     `json:"id"`
	Name     string  `json:"name"`
	Level    int     `json:"level"`
	Category *string `json:"category"`
	Furigana *string `json:"furigana"`
}

// weaponSkillRecord is an entry of the weapon skill master snapshot
type weaponSkillRecord struct {
	ID       int     `json:"id"`
	Name     string  `json:"name"`
	MaxLevel int     `json:"maxLevel"`
	Furigana *string `json:"furigana"`
}

// armorRecord is the armor shape found in snapshot files and Redis hashes
type armorRecord struct {
	ID      int             `json:"id"`
	Part    string          `json:"part"`
	Name    string          `json:"name"`
	Defense int             `json:"defense"`
	Slot1   int             `json:"slot1"`
	Slot2   int             `json:"slot2"`
	Slot3   int             `json:"slot3"`
	Series  string          `json:"series"`
	Group   string          `json:"group"`
	Skills  json.RawMessage `json:"skills"`
}

// weaponRecord is the weapon shape found in snapshot files and Redis hashes
type weaponRecord struct {
	ID         int             `json:"id"`
	Name       string          `json:"name"`
	Furigana   *string         `json:"furigana"`
	Type       string          `json:"type"`
	Attack     int             `json:"attack"`
	Affinity   *int            `json:"affinity"`
	Element    *string         `json:"element"`
	ElementAtk *int            `json:"elementAtk"`
	Slot1      int             `json:"slot1"`
	Slot2      int             `json:"slot2"`
	Slot3      int             `json:"slot3"`
	Skills     json.RawMessage `json:"skills"`
}

// DecodeArmorSnapshot reads an armor snapshot (a JSON array of armor records).
// Records without an ID are numbered by position starting at 1. Two records
// with the same ID are rejected.
func DecodeArmorSnapshot(r io.Reader) ([]*equipment.ArmorItem, error) {
	var records []armorRecord
	if err := json.NewDecoder(r).Decode(&records); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to decode armor snapshot")
	}

	items := make([]*equipment.ArmorItem, 0, len(records))
	for i, record := range records {
		if record.ID <= 0 {
			record.ID = i + 1
		}
		item := record.toArmor()
		if !item.Part.IsValid() {
			return nil, errors.InvalidArgumentf("armor[%d] %q has unknown part %q", i, record.Name, record.Part)
		}
		items = append(items, item)
	}

	err := checkUniqueIDs("armor", items,
		func(a *equipment.ArmorItem) int { return a.ID },
		func(a *equipment.ArmorItem) string { return a.Name })
	if err != nil {
		return nil, err
	}

	return items, nil
}

// DecodeWeaponSnapshot reads a weapon snapshot (a JSON array of weapon
// records). Unknown types or elements and repeated IDs are rejected.
func DecodeWeaponSnapshot(r io.Reader) ([]*equipment.WeaponItem, error) {
	var records []weaponRecord
	if err := json.NewDecoder(r).Decode(&records); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to decode weapon snapshot")
	}

	weapons := make([]*equipment.WeaponItem, 0, len(records))
	for i, record := range records {
		if record.ID <= 0 {
			record.ID = i + 1
		}
		weapon := record.toWeapon()
		if !weapon.Type.IsValid() {
			return nil, errors.InvalidArgumentf("weapon[%d] %q has unknown type %q", i, record.Name, record.Type)
		}
		if weapon.Element != nil && !weapon.Element.IsValid() {
			return nil, errors.InvalidArgumentf("weapon[%d] %q has unknown element %q", i, record.Name, *record.Element)
		}
		weapons = append(weapons, weapon)
	}

	err := checkUniqueIDs("weapon", weapons,
		func(w *equipment.WeaponItem) int { return w.ID },
		func(w *equipment.WeaponItem) string { return w.Name })
	if err != nil {
		return nil, err
	}

	return weapons, nil
}

// DecodeSkillSnapshot reads the armor skill master list. level is the
// maximum level of the skill.
func DecodeSkillSnapshot(r io.Reader) ([]*equipment.Skill, error) {
	var records []skillRecord
	if err := json.NewDecoder(r).Decode(&records); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to decode skill snapshot")
	}

	skills := make([]*equipment.Skill, 0, len(records))
	for i, record := range records {
		if record.ID <= 0 {
			record.ID = i + 1
		}
		skill := &equipment.Skill{
			ID:       record.ID,
			Kind:     equipment.SkillKindArmor,
			Name:     record.Name,
			MaxLevel: record.Level,
			Category: equipment.SkillCategory(strings.TrimSpace(deref(record.Category))),
			Furigana: deref(record.Furigana),
		}
		if skill.Name == "" {
			return nil, errors.InvalidArgumentf("skill[%d] has no name", i)
		}
		if skill.Category != "" && !skill.Category.IsValid() {
			return nil, errors.InvalidArgumentf("skill[%d] %q has unknown category %q", i, record.Name, skill.Category)
		}
		skills = append(skills, skill)
	}

	if err := checkUniqueSkillIDs("skill", skills); err != nil {
		return nil, err
	}
	return skills, nil
}

// DecodeWeaponSkillSnapshot reads the weapon skill master list
func DecodeWeaponSkillSnapshot(r io.Reader) ([]*equipment.Skill, error) {
	var records []weaponSkillRecord
	if err := json.NewDecoder(r).Decode(&records); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to decode weapon skill snapshot")
	}

	skills := make([]*equipment.Skill, 0, len(records))
	for i, record := range records {
		if record.ID <= 0 {
			record.ID = i + 1
		}
		if record.Name == "" {
			return nil, errors.InvalidArgumentf("weapon_skill[%d] has no name", i)
		}
		skills = append(skills, &equipment.Skill{
			ID:       record.ID,
			Kind:     equipment.SkillKindWeapon,
			Name:     record.Name,
			MaxLevel: record.MaxLevel,
			Furigana: deref(record.Furigana),
		})
	}

	if err := checkUniqueSkillIDs("weapon_skill", skills); err != nil {
		return nil, err
	}
	return skills, nil
}

func checkUniqueSkillIDs(what string, skills []*equipment.Skill) error {
	return checkUniqueIDs(what, skills,
		func(s *equipment.Skill) int { return s.ID },
		func(s *equipment.Skill) string { return s.Name })
}

// SnapshotFiles names the snapshot files of a catalog. Only Armor is
// required; an empty path leaves that part of the catalog empty.
type SnapshotFiles struct {
	Armor        string
	Weapons      string
	Skills       string
	WeaponSkills string
}

// LoadSnapshotFiles builds an in-memory repository from snapshot files
func LoadSnapshotFiles(files SnapshotFiles) (*InMemoryRepository, error) {
	if files.Armor == "" {
		return nil, errors.InvalidArgument("armor snapshot path is required")
	}

	armor, err := decodeFile(files.Armor, DecodeArmorSnapshot)
	if err != nil {
		return nil, err
	}

	var weapons []*equipment.WeaponItem
	if files.Weapons != "" {
		weapons, err = decodeFile(files.Weapons, DecodeWeaponSnapshot)
		if err != nil {
			return nil, err
		}
	}

	repo, err := NewInMemory(armor, weapons)
	if err != nil {
		return nil, err
	}

	for _, list := range []struct {
		path   string
		decode func(io.Reader) ([]*equipment.Skill, error)
	}{
		{path: files.Skills, decode: DecodeSkillSnapshot},
		{path: files.WeaponSkills, decode: DecodeWeaponSkillSnapshot},
	} {
		if list.path == "" {
			continue
		}
		skills, err := decodeFile(list.path, list.decode)
		if err != nil {
			return nil, err
		}
		if _, err := repo.PutSkills(context.Background(), PutSkillsInput{Skills: skills}); err != nil {
			return nil, err
		}
	}

	return repo, nil
}

func decodeFile[T any](path string, decode func(io.Reader) ([]T, error)) ([]T, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NotFoundf("snapshot %s not found", path)
		}
		return nil, errors.Wrapf(err, "failed to open snapshot %s", path)
	}
	defer func() { _ = f.Close() }()

	items, err := decode(f)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load snapshot %s", path)
	}
	return items, nil
}

// NormalizeSkills turns a raw skills field into a skill list. A JSON array is
// used as-is, a JSON string holding an array is parsed, and anything else
// (null, objects, numbers, malformed text) yields an empty list. Entries
// without a name are dropped.
func NormalizeSkills(raw json.RawMessage) []equipment.SkillLevel {
	skills, _ := ParseSkills(raw)
	return skills
}

// ParseSkills is NormalizeSkills that also reports whether the raw value was
// a well formed skill list, for tools that look for damaged records.
func ParseSkills(raw json.RawMessage) ([]equipment.SkillLevel, bool) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return []equipment.SkillLevel{}, true
	}
	if !gjson.ValidBytes(raw) {
		return []equipment.SkillLevel{}, false
	}

	value := gjson.ParseBytes(raw)
	if value.Type == gjson.Null {
		return []equipment.SkillLevel{}, true
	}
	// older exports store the array as JSON text
	if value.Type == gjson.String {
		if !gjson.Valid(value.Str) {
			return []equipment.SkillLevel{}, false
		}
		value = gjson.Parse(value.Str)
	}
	if !value.IsArray() {
		return []equipment.SkillLevel{}, false
	}

	skills := []equipment.SkillLevel{}
	clean := true
	value.ForEach(func(_, entry gjson.Result) bool {
		name := entry.Get("name").String()
		if name == "" {
			clean = false
			return true
		}
		skills = append(skills, equipment.SkillLevel{Name: name, Level: int(entry.Get("level").Int())})
		return true
	})
	return skills, clean
}

func (r armorRecord) toArmor() *equipment.ArmorItem {
	return &equipment.ArmorItem{
		ID:      r.ID,
		Part:    equipment.Part(r.Part),
		Name:    r.Name,
		Defense: r.Defense,
		Slots:   [equipment.SlotCount]int{r.Slot1, r.Slot2, r.Slot3},
		Series:  r.Series,
		Group:   r.Group,
		Skills:  NormalizeSkills(r.Skills),
	}
}

func (r weaponRecord) toWeapon() *equipment.WeaponItem {
	weapon := &equipment.WeaponItem{
		ID:         r.ID,
		Name:       r.Name,
		Type:       equipment.WeaponType(r.Type),
		Attack:     r.Attack,
		Affinity:   r.Affinity,
		ElementAtk: r.ElementAtk,
		Slots:      [equipment.SlotCount]int{r.Slot1, r.Slot2, r.Slot3},
		Skills:     NormalizeSkills(r.Skills),
	}
	if r.Furigana != nil {
		weapon.Furigana = *r.Furigana
	}
	if r.Element != nil && *r.Element != "" {
		element := equipment.Element(*r.Element)
		weapon.Element = &element
	}
	return weapon
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
