package game

import "fmt"

// ItemType discriminates backpack and floor items.
type ItemType string

const (
	ItemFood   ItemType = "food"
	ItemElixir ItemType = "elixir"
	ItemScroll ItemType = "scroll"
	ItemWeapon ItemType = "weapon"
	ItemKey    ItemType = "key"
)

// StatType names the attribute an elixir or scroll boosts.
type StatType string

const (
	StatHealth    StatType = "health"
	StatStrength  StatType = "strength"
	StatDexterity StatType = "dexterity"
)

// KeyColor pairs keys with the doors they open.
type KeyColor string

const (
	KeyRed    KeyColor = "red"
	KeyGreen  KeyColor = "green"
	KeyBlue   KeyColor = "blue"
	KeyYellow KeyColor = "yellow"
)

// Item is anything that can sit on the floor or in the backpack.
type Item interface {
	Type() ItemType
}

// Food restores health when eaten.
type Food struct {
	HealthRestoration int
}

func (Food) Type() ItemType { return ItemFood }

// Weapon grants a strength bonus while equipped.
type Weapon struct {
	Name          string
	StrengthBonus int
}

func (Weapon) Type() ItemType { return ItemWeapon }

// Elixir grants a temporary stat bonus for a number of turns.
type Elixir struct {
	Stat     StatType
	Bonus    int
	Duration int
}

func (Elixir) Type() ItemType { return ItemElixir }

// Scroll grants a permanent stat bonus when read.
type Scroll struct {
	Stat  StatType
	Bonus int
}

func (Scroll) Type() ItemType { return ItemScroll }

// Key opens doors of the matching color.
type Key struct {
	Color KeyColor
}

func (Key) Type() ItemType { return ItemKey }

// ItemDoc is the persisted form of a single item. Only the fields for
// the item's type are populated.
type ItemDoc struct {
	ItemType ItemType `json:"item_type"`

	HealthRestoration int `json:"health_restoration,omitempty"`

	Name          string `json:"name,omitempty"`
	StrengthBonus int    `json:"strength_bonus,omitempty"`

	StatType StatType `json:"stat_type,omitempty"`
	Bonus    int      `json:"bonus,omitempty"`
	Duration int      `json:"duration,omitempty"`

	Color KeyColor `json:"color,omitempty"`

	// Position is set for floor items only.
	Position []int `json:"position,omitempty"`
}

// EncodeItem converts an item to its persisted form.
func EncodeItem(item Item) ItemDoc {
	doc := ItemDoc{ItemType: item.Type()}
	switch it := item.(type) {
	case Food:
		doc.HealthRestoration = it.HealthRestoration
	case Weapon:
		doc.Name = it.Name
		doc.StrengthBonus = it.StrengthBonus
	case Elixir:
		doc.StatType = it.Stat
		doc.Bonus = it.Bonus
		doc.Duration = it.Duration
	case Scroll:
		doc.StatType = it.Stat
		doc.Bonus = it.Bonus
	case Key:
		doc.Color = it.Color
	}
	return doc
}

// DecodeItem reconstructs an item from its persisted form.
func DecodeItem(doc ItemDoc) (Item, error) {
	switch doc.ItemType {
	case ItemFood:
		return Food{HealthRestoration: doc.HealthRestoration}, nil
	case ItemWeapon:
		return Weapon{Name: doc.Name, StrengthBonus: doc.StrengthBonus}, nil
	case ItemElixir:
		return Elixir{Stat: doc.StatType, Bonus: doc.Bonus, Duration: doc.Duration}, nil
	case ItemScroll:
		return Scroll{Stat: doc.StatType, Bonus: doc.Bonus}, nil
	case ItemKey:
		return Key{Color: doc.Color}, nil
	default:
		return nil, fmt.Errorf("unknown item type %q", doc.ItemType)
	}
}
