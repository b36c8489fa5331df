package game

// Starting character stats.
const (
	InitialHealth    = 100
	InitialMaxHealth = 100
	InitialStrength  = 10
	InitialDexterity = 10
)

// ActiveElixir tracks a temporary stat bonus and its remaining turns.
type ActiveElixir struct {
	Stat      StatType `json:"stat_type"`
	Bonus     int      `json:"bonus"`
	TurnsLeft int      `json:"turns_left"`
}

// Backpack holds the character's items grouped by type, plus collected
// treasure value.
type Backpack struct {
	Items         map[ItemType][]Item
	TreasureValue int
}

// NewBackpack returns an empty backpack with all item slots present.
func NewBackpack() *Backpack {
	return &Backpack{
		Items: map[ItemType][]Item{
			ItemFood:   {},
			ItemElixir: {},
			ItemScroll: {},
			ItemWeapon: {},
			ItemKey:    {},
		},
	}
}

// Add stores an item in its type slot.
func (b *Backpack) Add(item Item) {
	b.Items[item.Type()] = append(b.Items[item.Type()], item)
}

// Remove takes the item at index out of the given slot. It returns nil
// when the index is out of range.
func (b *Backpack) Remove(t ItemType, index int) Item {
	items := b.Items[t]
	if index < 0 || index >= len(items) {
		return nil
	}
	item := items[index]
	b.Items[t] = append(items[:index:index], items[index+1:]...)
	return item
}

// Get returns the items of one type.
func (b *Backpack) Get(t ItemType) []Item { return b.Items[t] }

// Count returns how many items of one type are carried.
func (b *Backpack) Count(t ItemType) int { return len(b.Items[t]) }

// Character is the player: position, stats, equipment and backpack.
type Character struct {
	X, Y int

	Health    int
	MaxHealth int
	Strength  int
	Dexterity int

	CurrentWeapon *Weapon
	Backpack      *Backpack
	ActiveElixirs []ActiveElixir
}

// NewCharacter creates a character at the given position with starting
// stats and an empty backpack.
func NewCharacter(x, y int) *Character {
	return &Character{
		X:         x,
		Y:         y,
		Health:    InitialHealth,
		MaxHealth: InitialMaxHealth,
		Strength:  InitialStrength,
		Dexterity: InitialDexterity,
		Backpack:  NewBackpack(),
	}
}

// CurrentHealth reports health for run statistics.
func (c *Character) CurrentHealth() int { return c.Health }

// CurrentStrength reports strength for run statistics.
func (c *Character) CurrentStrength() int { return c.Strength }

// CurrentDexterity reports dexterity for run statistics.
func (c *Character) CurrentDexterity() int { return c.Dexterity }

// IsAlive reports whether the character has health left.
func (c *Character) IsAlive() bool { return c.Health > 0 }

// TakeDamage reduces health, clamping at zero.
func (c *Character) TakeDamage(damage int) {
	c.Health -= damage
	if c.Health < 0 {
		c.Health = 0
	}
}

// Heal restores health, clamping at max health.
func (c *Character) Heal(amount int) {
	c.Health += amount
	if c.Health > c.MaxHealth {
		c.Health = c.MaxHealth
	}
}

// MoveTo places the character at the given tile.
func (c *Character) MoveTo(x, y int) {
	c.X = x
	c.Y = y
}

// TotalStrength is base strength plus the equipped weapon bonus.
func (c *Character) TotalStrength() int {
	total := c.Strength
	if c.CurrentWeapon != nil {
		total += c.CurrentWeapon.StrengthBonus
	}
	return total
}

// EquipWeapon swaps the current weapon, returning the previous one (nil
// when hands were empty).
func (c *Character) EquipWeapon(w Weapon) *Weapon {
	prev := c.CurrentWeapon
	c.CurrentWeapon = &w
	return prev
}

// UnequipWeapon clears the current weapon and returns it.
func (c *Character) UnequipWeapon() *Weapon {
	prev := c.CurrentWeapon
	c.CurrentWeapon = nil
	return prev
}

// CharacterDoc is the persisted form of a character.
type CharacterDoc struct {
	Position      []int          `json:"position"`
	Health        int            `json:"health"`
	MaxHealth     int            `json:"max_health"`
	Strength      int            `json:"strength"`
	Dexterity     int            `json:"dexterity"`
	CurrentWeapon *WeaponDoc     `json:"current_weapon"`
	Backpack      BackpackDoc    `json:"backpack"`
	ActiveElixirs []ActiveElixir `json:"active_elixirs"`
}

// WeaponDoc is the persisted form of an equipped weapon.
type WeaponDoc struct {
	Name          string `json:"name"`
	StrengthBonus int    `json:"strength_bonus"`
}

// BackpackDoc is the persisted form of a backpack.
type BackpackDoc struct {
	TreasureValue int                    `json:"treasure_value"`
	Items         map[ItemType][]ItemDoc `json:"items"`
}

// EncodeCharacter converts a character to its persisted form.
func EncodeCharacter(c *Character) CharacterDoc {
	doc := CharacterDoc{
		Position:      []int{c.X, c.Y},
		Health:        c.Health,
		MaxHealth:     c.MaxHealth,
		Strength:      c.Strength,
		Dexterity:     c.Dexterity,
		ActiveElixirs: c.ActiveElixirs,
		Backpack: BackpackDoc{
			TreasureValue: c.Backpack.TreasureValue,
			Items:         map[ItemType][]ItemDoc{},
		},
	}
	if c.CurrentWeapon != nil {
		doc.CurrentWeapon = &WeaponDoc{
			Name:          c.CurrentWeapon.Name,
			StrengthBonus: c.CurrentWeapon.StrengthBonus,
		}
	}
	for _, t := range []ItemType{ItemFood, ItemElixir, ItemScroll, ItemWeapon, ItemKey} {
		docs := make([]ItemDoc, 0, len(c.Backpack.Items[t]))
		for _, item := range c.Backpack.Items[t] {
			docs = append(docs, EncodeItem(item))
		}
		doc.Backpack.Items[t] = docs
	}
	return doc
}

// DecodeCharacter reconstructs a character from its persisted form.
func DecodeCharacter(doc CharacterDoc) (*Character, error) {
	x, y := 0, 0
	if len(doc.Position) == 2 {
		x, y = doc.Position[0], doc.Position[1]
	}
	c := NewCharacter(x, y)
	c.Health = doc.Health
	c.MaxHealth = doc.MaxHealth
	c.Strength = doc.Strength
	c.Dexterity = doc.Dexterity
	c.ActiveElixirs = doc.ActiveElixirs

	if doc.CurrentWeapon != nil {
		c.CurrentWeapon = &Weapon{
			Name:          doc.CurrentWeapon.Name,
			StrengthBonus: doc.CurrentWeapon.StrengthBonus,
		}
	}

	c.Backpack.TreasureValue = doc.Backpack.TreasureValue
	for _, docs := range doc.Backpack.Items {
		for _, d := range docs {
			item, err := DecodeItem(d)
			if err != nil {
				return nil, err
			}
			c.Backpack.Add(item)
		}
	}
	return c, nil
}
