package game

import "sort"

// DefaultVisibilityRange bounds corridor line-of-sight in tiles.
const DefaultVisibilityRange = 5

// FogOfWar tracks which parts of a level the player has discovered and
// which tiles are currently visible. Rooms are revealed whole on entry;
// corridors reveal tiles by line of sight.
type FogOfWar struct {
	level *Level

	DiscoveredRooms     map[int]struct{}
	DiscoveredCorridors map[int]struct{}

	// CurrentRoomIndex / CurrentCorridorIndex are -1 when the player is
	// not inside a room / corridor.
	CurrentRoomIndex     int
	CurrentCorridorIndex int

	VisibleTiles map[[2]int]struct{}
}

// NewFogOfWar returns an undiscovered fog state for the level.
func NewFogOfWar(level *Level) *FogOfWar {
	return &FogOfWar{
		level:                level,
		DiscoveredRooms:      map[int]struct{}{},
		DiscoveredCorridors:  map[int]struct{}{},
		CurrentRoomIndex:     -1,
		CurrentCorridorIndex: -1,
		VisibleTiles:         map[[2]int]struct{}{},
	}
}

// UpdateVisibility recomputes discovery and visible tiles for the
// player's position.
func (f *FogOfWar) UpdateVisibility(x, y int) {
	if roomIdx := f.level.RoomIndexAt(x, y); roomIdx >= 0 {
		f.DiscoveredRooms[roomIdx] = struct{}{}
		f.CurrentRoomIndex = roomIdx
		f.CurrentCorridorIndex = -1
		// Room interiors render whole; no per-tile tracking needed.
		f.VisibleTiles = map[[2]int]struct{}{}
		return
	}
	if corrIdx := f.level.CorridorIndexAt(x, y); corrIdx >= 0 {
		f.DiscoveredCorridors[corrIdx] = struct{}{}
		f.CurrentRoomIndex = -1
		f.CurrentCorridorIndex = corrIdx
		f.VisibleTiles = f.visibleFrom(x, y)
	}
}

// visibleFrom collects walkable tiles with an unbroken Bresenham line
// to the player within the visibility range.
func (f *FogOfWar) visibleFrom(x, y int) map[[2]int]struct{} {
	visible := map[[2]int]struct{}{{x, y}: {}}
	for dx := -DefaultVisibilityRange; dx <= DefaultVisibilityRange; dx++ {
		for dy := -DefaultVisibilityRange; dy <= DefaultVisibilityRange; dy++ {
			tx, ty := x+dx, y+dy
			if dx*dx+dy*dy > DefaultVisibilityRange*DefaultVisibilityRange {
				continue
			}
			if !f.level.IsWalkable(tx, ty) {
				continue
			}
			if f.lineClear(x, y, tx, ty) {
				visible[[2]int{tx, ty}] = struct{}{}
			}
		}
	}
	return visible
}

// lineClear walks the Bresenham line and fails on the first blocked
// intermediate tile.
func (f *FogOfWar) lineClear(x0, y0, x1, y1 int) bool {
	dx := abs(x1 - x0)
	dy := abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx - dy

	x, y := x0, y0
	for x != x1 || y != y1 {
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x += sx
		}
		if e2 < dx {
			err += dx
			y += sy
		}
		if (x != x1 || y != y1) && !f.level.IsWalkable(x, y) {
			return false
		}
	}
	return true
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// IsRoomDiscovered reports whether the room has ever been entered.
func (f *FogOfWar) IsRoomDiscovered(roomIdx int) bool {
	_, ok := f.DiscoveredRooms[roomIdx]
	return ok
}

// IsCorridorDiscovered reports whether the corridor has been entered.
func (f *FogOfWar) IsCorridorDiscovered(corridorIdx int) bool {
	_, ok := f.DiscoveredCorridors[corridorIdx]
	return ok
}

// IsTileVisible reports whether the tile is in the current visible set.
func (f *FogOfWar) IsTileVisible(x, y int) bool {
	_, ok := f.VisibleTiles[[2]int{x, y}]
	return ok
}

// Reset forgets all discovery, for a fresh level.
func (f *FogOfWar) Reset() {
	f.DiscoveredRooms = map[int]struct{}{}
	f.DiscoveredCorridors = map[int]struct{}{}
	f.CurrentRoomIndex = -1
	f.CurrentCorridorIndex = -1
	f.VisibleTiles = map[[2]int]struct{}{}
}

// FogDoc is the persisted form of fog-of-war state.
type FogDoc struct {
	DiscoveredRooms      []int   `json:"discovered_rooms"`
	DiscoveredCorridors  []int   `json:"discovered_corridors"`
	CurrentRoomIndex     *int    `json:"current_room_index"`
	CurrentCorridorIndex *int    `json:"current_corridor_index"`
	VisibleTiles         [][]int `json:"visible_tiles"`
}

// EncodeFog converts fog state to its persisted form.
func EncodeFog(f *FogOfWar) FogDoc {
	doc := FogDoc{
		DiscoveredRooms:     sortedKeys(f.DiscoveredRooms),
		DiscoveredCorridors: sortedKeys(f.DiscoveredCorridors),
		VisibleTiles:        make([][]int, 0, len(f.VisibleTiles)),
	}
	if f.CurrentRoomIndex >= 0 {
		idx := f.CurrentRoomIndex
		doc.CurrentRoomIndex = &idx
	}
	if f.CurrentCorridorIndex >= 0 {
		idx := f.CurrentCorridorIndex
		doc.CurrentCorridorIndex = &idx
	}
	for tile := range f.VisibleTiles {
		doc.VisibleTiles = append(doc.VisibleTiles, []int{tile[0], tile[1]})
	}
	return doc
}

// DecodeFog reconstructs fog state for the level from its persisted
// form. Missing fields leave the fresh undiscovered defaults.
func DecodeFog(level *Level, doc FogDoc) *FogOfWar {
	f := NewFogOfWar(level)
	for _, idx := range doc.DiscoveredRooms {
		f.DiscoveredRooms[idx] = struct{}{}
	}
	for _, idx := range doc.DiscoveredCorridors {
		f.DiscoveredCorridors[idx] = struct{}{}
	}
	if doc.CurrentRoomIndex != nil {
		f.CurrentRoomIndex = *doc.CurrentRoomIndex
	}
	if doc.CurrentCorridorIndex != nil {
		f.CurrentCorridorIndex = *doc.CurrentCorridorIndex
	}
	for _, tile := range doc.VisibleTiles {
		if len(tile) == 2 {
			f.VisibleTiles[[2]int{tile[0], tile[1]}] = struct{}{}
		}
	}
	return f
}

func sortedKeys(set map[int]struct{}) []int {
	out := make([]int, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Ints(out)
	return out
}
