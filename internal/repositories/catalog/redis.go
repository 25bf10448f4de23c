package catalog

import (
	"context"
	"encoding/json"
	"log/slog"
	"strconv"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/rpg-skill-simulator/internal/entities/equipment"
	"github.com/KirkDiggler/rpg-skill-simulator/internal/errors"
	redisclient "github.com/KirkDiggler/rpg-skill-simulator/internal/redis"
	"github.com/KirkDiggler/rpg-toolkit/core"
)

const (
	catalogKeyPrefix = "catalog:"
	indexKeySuffix   = ":index"
)

type redisRepository struct {
	client redisclient.Client
}

// RedisConfig contains configuration for the Redis catalog repository.
type RedisConfig struct {
	Client redisclient.Client
}

// Validate validates the RedisConfig.
func (cfg *RedisConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Client == nil {
		return errors.InvalidArgument("client cannot be nil")
	}
	return nil
}

// NewRedis creates a new Redis-backed catalog repository.
// Every item is a hash under catalog:<type>:<id>; a sorted set per type
// scored by ID keeps catalog order.
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &redisRepository{
		client: cfg.Client,
	}, nil
}

func (r *redisRepository) GetCatalog(ctx context.Context, input GetCatalogInput) (*GetCatalogOutput, error) {
	armorHashes, err := r.loadHashes(ctx, equipment.EntityTypeArmor)
	if err != nil {
		return nil, err
	}

	output := &GetCatalogOutput{
		Armor: make([]*equipment.ArmorItem, 0, len(armorHashes)),
	}
	for _, fields := range armorHashes {
		item, err := armorFromHash(fields)
		if err != nil {
			return nil, err
		}
		output.Armor = append(output.Armor, item)
	}

	if input.SkipWeapons {
		return output, nil
	}

	weaponHashes, err := r.loadHashes(ctx, equipment.EntityTypeWeapon)
	if err != nil {
		return nil, err
	}

	output.Weapons = make([]*equipment.WeaponItem, 0, len(weaponHashes))
	for _, fields := range weaponHashes {
		weapon, err := weaponFromHash(fields)
		if err != nil {
			return nil, err
		}
		output.Weapons = append(output.Weapons, weapon)
	}

	return output, nil
}

func (r *redisRepository) PutArmor(ctx context.Context, input PutArmorInput) (*PutArmorOutput, error) {
	if err := validateArmor(input.Items); err != nil {
		return nil, err
	}
	if len(input.Items) == 0 {
		return &PutArmorOutput{}, nil
	}

	pipe := r.client.TxPipeline()
	for _, item := range input.Items {
		fields, err := armorHash(item)
		if err != nil {
			return nil, err
		}
		r.queuePut(ctx, pipe, item, fields)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrap(err, "failed to store armor")
	}

	return &PutArmorOutput{Stored: len(input.Items)}, nil
}

func (r *redisRepository) PutWeapons(ctx context.Context, input PutWeaponsInput) (*PutWeaponsOutput, error) {
	if err := validateWeapons(input.Weapons); err != nil {
		return nil, err
	}
	if len(input.Weapons) == 0 {
		return &PutWeaponsOutput{}, nil
	}

	pipe := r.client.TxPipeline()
	for _, weapon := range input.Weapons {
		fields, err := weaponHash(weapon)
		if err != nil {
			return nil, err
		}
		r.queuePut(ctx, pipe, weapon, fields)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrap(err, "failed to store weapons")
	}

	return &PutWeaponsOutput{Stored: len(input.Weapons)}, nil
}

func (r *redisRepository) ListSkills(ctx context.Context, input ListSkillsInput) (*ListSkillsOutput, error) {
	if err := validateKind(input.Kind); err != nil {
		return nil, err
	}

	entityType := (&equipment.Skill{Kind: input.Kind}).GetType()
	hashes, err := r.loadHashes(ctx, entityType)
	if err != nil {
		return nil, err
	}

	output := &ListSkillsOutput{
		Skills: make([]*equipment.Skill, 0, len(hashes)),
	}
	for _, fields := range hashes {
		skill, err := skillFromHash(fields, input.Kind, entityType)
		if err != nil {
			return nil, err
		}
		output.Skills = append(output.Skills, skill)
	}

	return output, nil
}

func (r *redisRepository) PutSkills(ctx context.Context, input PutSkillsInput) (*PutSkillsOutput, error) {
	if err := validateSkills(input.Skills); err != nil {
		return nil, err
	}
	if len(input.Skills) == 0 {
		return &PutSkillsOutput{}, nil
	}

	pipe := r.client.TxPipeline()
	for _, skill := range input.Skills {
		r.queuePut(ctx, pipe, skill, skillHash(skill))
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrap(err, "failed to store skills")
	}

	return &PutSkillsOutput{Stored: len(input.Skills)}, nil
}

// queuePut replaces the item hash and records the ID in the type index
func (r *redisRepository) queuePut(ctx context.Context, pipe redis.Pipeliner, entity core.Entity, fields map[string]interface{}) {
	key := ItemKey(entity.GetType(), entity.GetID())
	id, _ := strconv.ParseFloat(entity.GetID(), 64)

	pipe.Del(ctx, key)
	pipe.HSet(ctx, key, fields)
	pipe.ZAdd(ctx, IndexKey(entity.GetType()), redis.Z{Score: id, Member: entity.GetID()})
}

// loadHashes returns the stored hashes for a type in index order
func (r *redisRepository) loadHashes(ctx context.Context, entityType string) ([]map[string]string, error) {
	ids, err := r.client.ZRange(ctx, IndexKey(entityType), 0, -1).Result()
	if err != nil {
		slog.ErrorContext(ctx, "failed to read catalog index",
			"type", entityType,
			"error", err.Error())
		return nil, errors.Wrapf(err, "failed to read %s index", entityType)
	}
	if len(ids) == 0 {
		return nil, nil
	}

	pipe := r.client.Pipeline()
	cmds := make([]*redis.MapStringStringCmd, len(ids))
	for i, id := range ids {
		cmds[i] = pipe.HGetAll(ctx, ItemKey(entityType, id))
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to load %s records", entityType)
	}

	hashes := make([]map[string]string, 0, len(ids))
	for i, cmd := range cmds {
		fields := cmd.Val()
		if len(fields) == 0 {
			slog.WarnContext(ctx, "catalog index references missing item",
				"type", entityType,
				"id", ids[i])
			continue
		}
		hashes = append(hashes, fields)
	}

	slog.DebugContext(ctx, "loaded catalog records",
		"type", entityType,
		"indexed", len(ids),
		"loaded", len(hashes))

	return hashes, nil
}

// ItemKey returns the Redis key holding a catalog item
// Exposed for testing purposes
func ItemKey(entityType, id string) string {
	return catalogKeyPrefix + entityType + ":" + id
}

// IndexKey returns the Redis key of the ordered ID index for a type
// Exposed for testing purposes
func IndexKey(entityType string) string {
	return catalogKeyPrefix + entityType + indexKeySuffix
}

func armorHash(item *equipment.ArmorItem) (map[string]interface{}, error) {
	skills, err := json.Marshal(item.Skills)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal skills for armor %d", item.ID)
	}

	return map[string]interface{}{
		"id":      item.ID,
		"part":    item.Part.String(),
		"name":    item.Name,
		"defense": item.Defense,
		"slot1":   item.Slots[0],
		"slot2":   item.Slots[1],
		"slot3":   item.Slots[2],
		"series":  item.Series,
		"group":   item.Group,
		"skills":  string(skills),
	}, nil
}

func weaponHash(weapon *equipment.WeaponItem) (map[string]interface{}, error) {
	skills, err := json.Marshal(weapon.Skills)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal skills for weapon %d", weapon.ID)
	}

	fields := map[string]interface{}{
		"id":     weapon.ID,
		"name":   weapon.Name,
		"type":   weapon.Type.String(),
		"attack": weapon.Attack,
		"slot1":  weapon.Slots[0],
		"slot2":  weapon.Slots[1],
		"slot3":  weapon.Slots[2],
		"skills": string(skills),
	}
	if weapon.Furigana != "" {
		fields["furigana"] = weapon.Furigana
	}
	if weapon.Affinity != nil {
		fields["affinity"] = *weapon.Affinity
	}
	if weapon.Element != nil {
		fields["element"] = weapon.Element.String()
	}
	if weapon.ElementAtk != nil {
		fields["elementAtk"] = *weapon.ElementAtk
	}

	return fields, nil
}

func armorFromHash(fields map[string]string) (*equipment.ArmorItem, error) {
	p := hashParser{fields: fields, entityType: equipment.EntityTypeArmor}

	record := armorRecord{
		ID:      p.getInt("id"),
		Part:    fields["part"],
		Name:    fields["name"],
		Defense: p.getInt("defense"),
		Slot1:   p.getInt("slot1"),
		Slot2:   p.getInt("slot2"),
		Slot3:   p.getInt("slot3"),
		Series:  fields["series"],
		Group:   fields["group"],
		Skills:  json.RawMessage(fields["skills"]),
	}
	if p.err != nil {
		return nil, p.err
	}

	return record.toArmor(), nil
}

func weaponFromHash(fields map[string]string) (*equipment.WeaponItem, error) {
	p := hashParser{fields: fields, entityType: equipment.EntityTypeWeapon}

	record := weaponRecord{
		ID:         p.getInt("id"),
		Name:       fields["name"],
		Furigana:   p.getOptionalString("furigana"),
		Type:       fields["type"],
		Attack:     p.getInt("attack"),
		Affinity:   p.getOptionalInt("affinity"),
		Element:    p.getOptionalString("element"),
		ElementAtk: p.getOptionalInt("elementAtk"),
		Slot1:      p.getInt("slot1"),
		Slot2:      p.getInt("slot2"),
		Slot3:      p.getInt("slot3"),
		Skills:     json.RawMessage(fields["skills"]),
	}
	if p.err != nil {
		return nil, p.err
	}

	return record.toWeapon(), nil
}

func skillHash(skill *equipment.Skill) map[string]interface{} {
	fields := map[string]interface{}{
		"id":       skill.ID,
		"name":     skill.Name,
		"maxLevel": skill.MaxLevel,
	}
	if skill.Category != "" {
		fields["category"] = skill.Category.String()
	}
	if skill.Furigana != "" {
		fields["furigana"] = skill.Furigana
	}
	return fields
}

func skillFromHash(fields map[string]string, kind equipment.SkillKind, entityType string) (*equipment.Skill, error) {
	p := hashParser{fields: fields, entityType: entityType}

	skill := &equipment.Skill{
		ID:       p.getInt("id"),
		Kind:     kind,
		Name:     fields["name"],
		MaxLevel: p.getInt("maxLevel"),
		Category: equipment.SkillCategory(fields["category"]),
		Furigana: fields["furigana"],
	}
	if p.err != nil {
		return nil, p.err
	}

	return skill, nil
}

// hashParser reads typed fields from a Redis hash and keeps the first error
type hashParser struct {
	fields     map[string]string
	entityType string
	err        error
}

func (p *hashParser) getInt(field string) int {
	value, ok := p.fields[field]
	if !ok || value == "" {
		return 0
	}
	n, err := strconv.Atoi(value)
	if err != nil && p.err == nil {
		p.err = errors.DataLossf("%s %s has non-numeric %s %q", p.entityType, p.fields["id"], field, value)
	}
	return n
}

func (p *hashParser) getOptionalInt(field string) *int {
	if _, ok := p.fields[field]; !ok {
		return nil
	}
	n := p.getInt(field)
	return &n
}

func (p *hashParser) getOptionalString(field string) *string {
	value, ok := p.fields[field]
	if !ok {
		return nil
	}
	return &value
}
