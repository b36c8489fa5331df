package game

import (
	"encoding/json"
	"testing"
)

func TestItemRoundTripEachType(t *testing.T) {
	items := []Item{
		Food{HealthRestoration: 25},
		Weapon{Name: "mace", StrengthBonus: 4},
		Elixir{Stat: StatHealth, Bonus: 10, Duration: 20},
		Scroll{Stat: StatDexterity, Bonus: 2},
		Key{Color: KeyBlue},
	}
	for _, item := range items {
		doc := EncodeItem(item)
		got, err := DecodeItem(doc)
		if err != nil {
			t.Fatalf("DecodeItem(%v): %v", doc.ItemType, err)
		}
		if got != item {
			t.Fatalf("round trip %v: got %+v, want %+v", doc.ItemType, got, item)
		}
	}
}

func TestDecodeItemUnknownType(t *testing.T) {
	if _, err := DecodeItem(ItemDoc{ItemType: "artifact"}); err == nil {
		t.Fatalf("expected error for unknown item type")
	}
}

func TestCharacterRoundTrip(t *testing.T) {
	c := NewCharacter(7, 3)
	c.Health = 64
	c.Dexterity = 13
	c.EquipWeapon(Weapon{Name: "dagger", StrengthBonus: 2})
	c.Backpack.TreasureValue = 250
	c.Backpack.Add(Food{HealthRestoration: 20})
	c.Backpack.Add(Key{Color: KeyGreen})
	c.ActiveElixirs = []ActiveElixir{{Stat: StatStrength, Bonus: 3, TurnsLeft: 5}}

	got, err := DecodeCharacter(EncodeCharacter(c))
	if err != nil {
		t.Fatalf("DecodeCharacter: %v", err)
	}
	if got.X != 7 || got.Y != 3 || got.Health != 64 || got.Dexterity != 13 {
		t.Fatalf("base fields lost: %+v", got)
	}
	if got.CurrentWeapon == nil || got.CurrentWeapon.Name != "dagger" {
		t.Fatalf("weapon lost: %+v", got.CurrentWeapon)
	}
	if got.TotalStrength() != got.Strength+2 {
		t.Fatalf("TotalStrength=%d, want strength+2", got.TotalStrength())
	}
	if got.Backpack.TreasureValue != 250 {
		t.Fatalf("treasure=%d, want 250", got.Backpack.TreasureValue)
	}
	if got.Backpack.Count(ItemFood) != 1 || got.Backpack.Count(ItemKey) != 1 {
		t.Fatalf("backpack contents lost")
	}
	if len(got.ActiveElixirs) != 1 || got.ActiveElixirs[0].TurnsLeft != 5 {
		t.Fatalf("active elixirs lost: %+v", got.ActiveElixirs)
	}
}

func TestCharacterDocFieldNames(t *testing.T) {
	data, err := json.Marshal(EncodeCharacter(NewCharacter(1, 2)))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	for _, key := range []string{
		"position", "health", "max_health", "strength", "dexterity",
		"current_weapon", "backpack", "active_elixirs",
	} {
		if _, ok := m[key]; !ok {
			t.Fatalf("character doc missing key %q", key)
		}
	}
}

func TestLevelRoundTrip(t *testing.T) {
	l := NewLevel(4)
	room := &Room{X: 2, Y: 2, Width: 6, Height: 5}
	room.AddEnemy(&Enemy{Type: EnemyVampire, X: 3, Y: 3, Health: 30, MaxHealth: 30, Strength: 8, Dexterity: 12})
	room.AddItem(Scroll{Stat: StatStrength, Bonus: 1}, 4, 4)
	l.StartingRoomIndex = l.AddRoom(room)
	l.ExitRoomIndex = l.StartingRoomIndex
	exit := [2]int{7, 6}
	l.ExitPosition = &exit

	corridor := &Corridor{}
	corridor.AddTile(8, 3)
	l.AddCorridor(corridor)
	l.Doors = append(l.Doors, &Door{Color: KeyBlue, X: 8, Y: 4, IsLocked: true})

	got, err := DecodeLevel(EncodeLevel(l))
	if err != nil {
		t.Fatalf("DecodeLevel: %v", err)
	}
	if got.Number != 4 || got.StartingRoomIndex != 0 || got.ExitRoomIndex != 0 {
		t.Fatalf("level metadata lost: %+v", got)
	}
	if got.ExitPosition == nil || *got.ExitPosition != [2]int{7, 6} {
		t.Fatalf("exit position lost: %v", got.ExitPosition)
	}
	if len(got.Rooms) != 1 || len(got.Corridors) != 1 || len(got.Doors) != 1 {
		t.Fatalf("topology lost: %d/%d/%d", len(got.Rooms), len(got.Corridors), len(got.Doors))
	}
	enemy := got.Rooms[0].Enemies[0]
	if enemy.Type != EnemyVampire || enemy.X != 3 || enemy.Health != 30 {
		t.Fatalf("enemy lost: %+v", enemy)
	}
	item := got.Rooms[0].Items[0]
	if item.X != 4 || item.Y != 4 {
		t.Fatalf("floor item position lost: %+v", item)
	}
	if _, ok := item.Item.(Scroll); !ok {
		t.Fatalf("floor item type lost: %T", item.Item)
	}
	if !got.IsWalkable(8, 3) {
		t.Fatalf("corridor tile must stay walkable")
	}
	if got.IsWalkable(8, 4) {
		t.Fatalf("locked door must stay blocked")
	}
}

func TestSelectionRoundTrip(t *testing.T) {
	r := &SelectionRequest{
		SelectionType: ItemElixir,
		Items:         []Item{Elixir{Stat: StatDexterity, Bonus: 2, Duration: 10}},
		Title:         "Drink which?",
		AllowZero:     true,
	}
	got := DecodeSelection(EncodeSelection(r))
	if got == nil || got.SelectionType != ItemElixir || got.Title != "Drink which?" || !got.AllowZero {
		t.Fatalf("selection lost: %+v", got)
	}
	if len(got.Items) != 1 {
		t.Fatalf("selection items lost")
	}
}

func TestSelectionNilPassesThrough(t *testing.T) {
	if EncodeSelection(nil) != nil {
		t.Fatalf("nil request must encode to nil")
	}
	if DecodeSelection(nil) != nil {
		t.Fatalf("nil doc must decode to nil")
	}
}

func TestDecodeSelectionDropsBadItems(t *testing.T) {
	got := DecodeSelection(&SelectionDoc{
		Type:  ItemFood,
		Items: []ItemDoc{{ItemType: "food", HealthRestoration: 5}, {ItemType: "artifact"}},
		Title: "Eat what?",
	})
	if got == nil || len(got.Items) != 1 {
		t.Fatalf("bad items must be dropped, good ones kept: %+v", got)
	}
}

func TestCameraRoundTripAndNil(t *testing.T) {
	if EncodeCamera(nil) != nil {
		t.Fatalf("nil camera must encode to nil")
	}
	if DecodeCamera(nil) != nil {
		t.Fatalf("nil doc must decode to nil")
	}

	got := DecodeCamera(EncodeCamera(NewCamera(3.5, 4.25, 270, 75)))
	if got.X != 3.5 || got.Y != 4.25 || got.Angle != 270 || got.FOV != 75 {
		t.Fatalf("camera lost: %+v", got)
	}
}

func TestNewCameraDefaultsFOV(t *testing.T) {
	c := NewCamera(0, 0, 0, 0)
	if c.FOV != DefaultFOV {
		t.Fatalf("FOV=%v, want default %v", c.FOV, DefaultFOV)
	}
}

func TestCameraRotateNormalizes(t *testing.T) {
	c := NewCamera(0, 0, 350, 60)
	c.Rotate(20)
	if c.Angle != 10 {
		t.Fatalf("Angle=%v, want 10 after wrap", c.Angle)
	}
	c.Rotate(-30)
	if c.Angle != 340 {
		t.Fatalf("Angle=%v, want 340 after negative wrap", c.Angle)
	}
}
