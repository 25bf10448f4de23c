// Package skillsimv1alpha1 defines the SimulatorService wire contract: request
// and response messages, the gRPC service descriptor, and a client. Messages
// travel as JSON through the codec registered in this package.
package skillsimv1alpha1

// SkillLevel is a named skill amount
type SkillLevel struct {
	Name  string `json:"name"`
	Level int32  `json:"level"`
}

// GetName returns the skill name
func (x *SkillLevel) GetName() string {
	if x == nil {
		return ""
	}
	return x.Name
}

// GetLevel returns the skill level
func (x *SkillLevel) GetLevel() int32 {
	if x == nil {
		return 0
	}
	return x.Level
}

// ArmorItem is an armor catalog entry
type ArmorItem struct {
	Id      int32         `json:"id"`
	Part    string        `json:"part"`
	Name    string        `json:"name"`
	Defense int32         `json:"defense"`
	Slots   []int32       `json:"slots"`
	Series  string        `json:"series,omitempty"`
	Group   string        `json:"group,omitempty"`
	Skills  []*SkillLevel `json:"skills"`
}

// ArmorSet is one armor combination in part order
type ArmorSet struct {
	Items        []*ArmorItem  `json:"items"`
	TotalDefense int32         `json:"totalDefense"`
	Skills       []*SkillLevel `json:"skills"`
}

// Weapon is a weapon catalog entry
type Weapon struct {
	Id         int32         `json:"id"`
	Name       string        `json:"name"`
	Furigana   string        `json:"furigana,omitempty"`
	Type       string        `json:"type"`
	Attack     int32         `json:"attack"`
	Affinity   *int32        `json:"affinity"`
	Element    *string       `json:"element"`
	ElementAtk *int32        `json:"elementAtk"`
	Slots      []int32       `json:"slots"`
	Skills     []*SkillLevel `json:"skills"`
}

// WeaponCriteria is the weapon side of a search
type WeaponCriteria struct {
	Name    string        `json:"name,omitempty"`
	Type    string        `json:"type,omitempty"`
	Element string        `json:"element,omitempty"`
	Skills  []*SkillLevel `json:"skills,omitempty"`
}

// GetName returns the selected weapon name
func (x *WeaponCriteria) GetName() string {
	if x == nil {
		return ""
	}
	return x.Name
}

// GetType returns the weapon type filter
func (x *WeaponCriteria) GetType() string {
	if x == nil {
		return ""
	}
	return x.Type
}

// GetElement returns the element filter
func (x *WeaponCriteria) GetElement() string {
	if x == nil {
		return ""
	}
	return x.Element
}

// GetSkills returns the required weapon skills
func (x *WeaponCriteria) GetSkills() []*SkillLevel {
	if x == nil {
		return nil
	}
	return x.Skills
}

// Combination pairs an armor set with a weapon. Weapon is absent when no
// candidate exists and WeaponLabel describes the choice instead.
type Combination struct {
	Armor       *ArmorSet `json:"armor"`
	Weapon      *Weapon   `json:"weapon,omitempty"`
	WeaponLabel string    `json:"weaponLabel"`
}

// SearchArmorRequest asks for armor combinations
type SearchArmorRequest struct {
	Requirements []*SkillLevel `json:"requirements"`
	Deduplicate  bool          `json:"deduplicate,omitempty"`
	MaxSets      int32         `json:"maxSets,omitempty"`
}

// SearchArmorResponse carries armor combinations
type SearchArmorResponse struct {
	SearchId      string        `json:"searchId"`
	Requirements  []*SkillLevel `json:"requirements"`
	Sets          []*ArmorSet   `json:"sets"`
	TotalFound    int32         `json:"totalFound"`
	ElapsedMicros int64         `json:"elapsedMicros"`
}

// SearchWeaponsRequest asks for weapon candidates
type SearchWeaponsRequest struct {
	Criteria *WeaponCriteria `json:"criteria"`
}

// SearchWeaponsResponse carries weapon candidates
type SearchWeaponsResponse struct {
	SearchId      string    `json:"searchId"`
	Mode          string    `json:"mode"`
	Weapons       []*Weapon `json:"weapons"`
	ElapsedMicros int64     `json:"elapsedMicros"`
}

// SearchRequest asks for armor combinations paired with weapons
type SearchRequest struct {
	ArmorSkills []*SkillLevel   `json:"armorSkills"`
	Weapon      *WeaponCriteria `json:"weapon,omitempty"`
	Deduplicate bool            `json:"deduplicate,omitempty"`
	MaxSets     int32           `json:"maxSets,omitempty"`
}

// SearchResponse carries the combined search result
type SearchResponse struct {
	SearchId      string         `json:"searchId"`
	ArmorSets     []*ArmorSet    `json:"armorSets"`
	Weapons       []*Weapon      `json:"weapons"`
	WeaponMode    string         `json:"weaponMode"`
	WeaponLabel   string         `json:"weaponLabel"`
	Combinations  []*Combination `json:"combinations"`
	ElapsedMicros int64          `json:"elapsedMicros"`
}

// ListWeaponNamesRequest asks for weapon name options
type ListWeaponNamesRequest struct {
	Type    string `json:"type,omitempty"`
	Element string `json:"element,omitempty"`
}

// WeaponNameOption is a selectable weapon name
type WeaponNameOption struct {
	Name     string `json:"name"`
	Furigana string `json:"furigana,omitempty"`
}

// ListWeaponNamesResponse carries weapon name options
type ListWeaponNamesResponse struct {
	Options []*WeaponNameOption `json:"options"`
}

// ListSkillsRequest asks for the skills a search can require. kind is
// "armor" or "weapon"; category only applies to armor skills.
type ListSkillsRequest struct {
	Kind     string `json:"kind"`
	Category string `json:"category,omitempty"`
}

// Skill is an entry of a skill master list
type Skill struct {
	Id       int32  `json:"id"`
	Name     string `json:"name"`
	MaxLevel int32  `json:"maxLevel"`
	Category string `json:"category,omitempty"`
	Furigana string `json:"furigana,omitempty"`
}

// ListSkillsResponse carries skills ordered by reading
type ListSkillsResponse struct {
	Skills []*Skill `json:"skills"`
}
