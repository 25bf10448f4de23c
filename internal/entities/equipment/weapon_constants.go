package equipment

// WeaponType is the weapon class a weapon belongs to
type WeaponType string

// Weapon type constants
const (
	WeaponTypeGreatSword     WeaponType = "大剣"
	WeaponTypeLongSword      WeaponType = "太刀"
	WeaponTypeSwordAndShield WeaponType = "片手剣"
	WeaponTypeDualBlades     WeaponType = "双剣"
	WeaponTypeHammer         WeaponType = "ハンマー"
	WeaponTypeHuntingHorn    WeaponType = "狩猟笛"
	WeaponTypeLance          WeaponType = "ランス"
	WeaponTypeGunlance       WeaponType = "ガンランス"
	WeaponTypeSwitchAxe      WeaponType = "スラッシュアックス"
	WeaponTypeChargeBlade    WeaponType = "チャージアックス"
	WeaponTypeInsectGlaive   WeaponType = "操虫棍"
	WeaponTypeLightBowgun    WeaponType = "ライトボウガン"
	WeaponTypeHeavyBowgun    WeaponType = "ヘビィボウガン"
	WeaponTypeBow            WeaponType = "弓"
)

// String returns the string representation of the weapon type
func (t WeaponType) String() string {
	return string(t)
}

// IsValid checks if the weapon type is known
func (t WeaponType) IsValid() bool {
	for _, known := range AllWeaponTypes() {
		if t == known {
			return true
		}
	}
	return false
}

// AllWeaponTypes returns every weapon type in selection order
func AllWeaponTypes() []WeaponType {
	return []WeaponType{
		WeaponTypeGreatSword,
		WeaponTypeLongSword,
		WeaponTypeSwordAndShield,
		WeaponTypeDualBlades,
		WeaponTypeHammer,
		WeaponTypeHuntingHorn,
		WeaponTypeLance,
		WeaponTypeGunlance,
		WeaponTypeSwitchAxe,
		WeaponTypeChargeBlade,
		WeaponTypeInsectGlaive,
		WeaponTypeLightBowgun,
		WeaponTypeHeavyBowgun,
		WeaponTypeBow,
	}
}

// Element is the elemental or status attribute of a weapon
type Element string

// Element constants
const (
	ElementNone      Element = "無属性"
	ElementFire      Element = "火属性"
	ElementWater     Element = "水属性"
	ElementThunder   Element = "雷属性"
	ElementIce       Element = "氷属性"
	ElementDragon    Element = "龍属性"
	ElementPoison    Element = "毒属性"
	ElementParalysis Element = "麻痺属性"
	ElementSleep     Element = "睡眠属性"
	ElementBlast     Element = "爆破属性"
)

// String returns the string representation of the element
func (e Element) String() string {
	return string(e)
}

// IsValid checks if the element is known
func (e Element) IsValid() bool {
	for _, known := range AllElements() {
		if e == known {
			return true
		}
	}
	return false
}

// AllElements returns every element in selection order
func AllElements() []Element {
	return []Element{
		ElementNone,
		ElementFire,
		ElementWater,
		ElementThunder,
		ElementIce,
		ElementDragon,
		ElementPoison,
		ElementParalysis,
		ElementSleep,
		ElementBlast,
	}
}
