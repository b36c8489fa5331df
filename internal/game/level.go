package game

// EnemyType discriminates enemy behavior and stats.
type EnemyType string

const (
	EnemyZombie   EnemyType = "zombie"
	EnemyVampire  EnemyType = "vampire"
	EnemyGhost    EnemyType = "ghost"
	EnemyOgre     EnemyType = "ogre"
	EnemySnake    EnemyType = "snake_mage"
	EnemyMimic    EnemyType = "mimic"
)

// Enemy is a hostile occupant of a room.
type Enemy struct {
	Type      EnemyType
	X, Y      int
	Health    int
	MaxHealth int
	Strength  int
	Dexterity int
	IsChasing bool
}

// FloorItem is an item lying on the dungeon floor.
type FloorItem struct {
	Item Item
	X, Y int
}

// Room is a rectangular area with its enemies and items.
type Room struct {
	X, Y          int
	Width, Height int
	Enemies       []*Enemy
	Items         []FloorItem
}

// Contains reports whether the tile lies inside the room.
func (r *Room) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

// AddEnemy places an enemy in the room.
func (r *Room) AddEnemy(e *Enemy) { r.Enemies = append(r.Enemies, e) }

// AddItem places an item on the room floor.
func (r *Room) AddItem(item Item, x, y int) {
	r.Items = append(r.Items, FloorItem{Item: item, X: x, Y: y})
}

// Corridor is an ordered run of walkable tiles connecting rooms.
type Corridor struct {
	Tiles [][2]int
}

// AddTile appends one walkable tile.
func (c *Corridor) AddTile(x, y int) {
	c.Tiles = append(c.Tiles, [2]int{x, y})
}

// Contains reports whether the tile belongs to the corridor.
func (c *Corridor) Contains(x, y int) bool {
	for _, t := range c.Tiles {
		if t[0] == x && t[1] == y {
			return true
		}
	}
	return false
}

// Door blocks a tile until opened with the matching key.
type Door struct {
	Color    KeyColor
	X, Y     int
	IsLocked bool
}

// Level is one dungeon floor: rooms, corridors and doors, plus the
// entry and exit layout produced by the generator.
type Level struct {
	Number int

	Rooms     []*Room
	Corridors []*Corridor
	Doors     []*Door

	StartingRoomIndex int
	ExitRoomIndex     int
	// ExitPosition is nil until the generator has placed the exit.
	ExitPosition *[2]int
}

// NewLevel returns an empty level with the given number.
func NewLevel(number int) *Level {
	return &Level{Number: number, StartingRoomIndex: -1, ExitRoomIndex: -1}
}

// AddRoom appends a room and returns its index.
func (l *Level) AddRoom(r *Room) int {
	l.Rooms = append(l.Rooms, r)
	return len(l.Rooms) - 1
}

// AddCorridor appends a corridor and returns its index.
func (l *Level) AddCorridor(c *Corridor) int {
	l.Corridors = append(l.Corridors, c)
	return len(l.Corridors) - 1
}

// RoomIndexAt returns the index of the room containing the tile, or -1.
func (l *Level) RoomIndexAt(x, y int) int {
	for i, r := range l.Rooms {
		if r.Contains(x, y) {
			return i
		}
	}
	return -1
}

// CorridorIndexAt returns the index of the corridor containing the
// tile, or -1.
func (l *Level) CorridorIndexAt(x, y int) int {
	for i, c := range l.Corridors {
		if c.Contains(x, y) {
			return i
		}
	}
	return -1
}

// DoorAt returns the door on the tile, or nil.
func (l *Level) DoorAt(x, y int) *Door {
	for _, d := range l.Doors {
		if d.X == x && d.Y == y {
			return d
		}
	}
	return nil
}

// IsWalkable reports whether the tile is open floor: inside a room, on
// a corridor, or an unlocked door.
func (l *Level) IsWalkable(x, y int) bool {
	if d := l.DoorAt(x, y); d != nil {
		return !d.IsLocked
	}
	if l.RoomIndexAt(x, y) >= 0 {
		return true
	}
	return l.CorridorIndexAt(x, y) >= 0
}

// StartingRoom returns the room the character spawns in, or nil.
func (l *Level) StartingRoom() *Room {
	if l.StartingRoomIndex < 0 || l.StartingRoomIndex >= len(l.Rooms) {
		return nil
	}
	return l.Rooms[l.StartingRoomIndex]
}

// AllEnemies returns every living enemy across all rooms.
func (l *Level) AllEnemies() []*Enemy {
	var out []*Enemy
	for _, r := range l.Rooms {
		out = append(out, r.Enemies...)
	}
	return out
}

// LevelDoc is the persisted form of a level.
type LevelDoc struct {
	LevelNumber       int           `json:"level_number"`
	StartingRoomIndex int           `json:"starting_room_index"`
	ExitRoomIndex     int           `json:"exit_room_index"`
	ExitPosition      []int         `json:"exit_position"`
	Rooms             []RoomDoc     `json:"rooms"`
	Corridors         []CorridorDoc `json:"corridors"`
	Doors             []DoorDoc     `json:"doors"`
}

// RoomDoc is the persisted form of a room.
type RoomDoc struct {
	X       int        `json:"x"`
	Y       int        `json:"y"`
	Width   int        `json:"width"`
	Height  int        `json:"height"`
	Enemies []EnemyDoc `json:"enemies"`
	Items   []ItemDoc  `json:"items"`
}

// EnemyDoc is the persisted form of an enemy.
type EnemyDoc struct {
	EnemyType EnemyType `json:"enemy_type"`
	Position  []int     `json:"position"`
	Health    int       `json:"health"`
	MaxHealth int       `json:"max_health"`
	Strength  int       `json:"strength"`
	Dexterity int       `json:"dexterity"`
	IsChasing bool      `json:"is_chasing"`
}

// CorridorDoc is the persisted form of a corridor.
type CorridorDoc struct {
	Tiles [][]int `json:"tiles"`
}

// DoorDoc is the persisted form of a door.
type DoorDoc struct {
	Color    KeyColor `json:"color"`
	Position []int    `json:"position"`
	IsLocked bool     `json:"is_locked"`
}

// EncodeLevel converts a level to its persisted form.
func EncodeLevel(l *Level) LevelDoc {
	doc := LevelDoc{
		LevelNumber:       l.Number,
		StartingRoomIndex: l.StartingRoomIndex,
		ExitRoomIndex:     l.ExitRoomIndex,
		Rooms:             make([]RoomDoc, 0, len(l.Rooms)),
		Corridors:         make([]CorridorDoc, 0, len(l.Corridors)),
		Doors:             make([]DoorDoc, 0, len(l.Doors)),
	}
	if l.ExitPosition != nil {
		doc.ExitPosition = []int{l.ExitPosition[0], l.ExitPosition[1]}
	}
	for _, r := range l.Rooms {
		rd := RoomDoc{
			X: r.X, Y: r.Y, Width: r.Width, Height: r.Height,
			Enemies: make([]EnemyDoc, 0, len(r.Enemies)),
			Items:   make([]ItemDoc, 0, len(r.Items)),
		}
		for _, e := range r.Enemies {
			rd.Enemies = append(rd.Enemies, EnemyDoc{
				EnemyType: e.Type,
				Position:  []int{e.X, e.Y},
				Health:    e.Health,
				MaxHealth: e.MaxHealth,
				Strength:  e.Strength,
				Dexterity: e.Dexterity,
				IsChasing: e.IsChasing,
			})
		}
		for _, fi := range r.Items {
			id := EncodeItem(fi.Item)
			id.Position = []int{fi.X, fi.Y}
			rd.Items = append(rd.Items, id)
		}
		doc.Rooms = append(doc.Rooms, rd)
	}
	for _, c := range l.Corridors {
		cd := CorridorDoc{Tiles: make([][]int, 0, len(c.Tiles))}
		for _, t := range c.Tiles {
			cd.Tiles = append(cd.Tiles, []int{t[0], t[1]})
		}
		doc.Corridors = append(doc.Corridors, cd)
	}
	for _, d := range l.Doors {
		doc.Doors = append(doc.Doors, DoorDoc{
			Color:    d.Color,
			Position: []int{d.X, d.Y},
			IsLocked: d.IsLocked,
		})
	}
	return doc
}

// DecodeLevel reconstructs a level from its persisted form.
func DecodeLevel(doc LevelDoc) (*Level, error) {
	l := NewLevel(doc.LevelNumber)
	l.StartingRoomIndex = doc.StartingRoomIndex
	l.ExitRoomIndex = doc.ExitRoomIndex
	if len(doc.ExitPosition) == 2 {
		pos := [2]int{doc.ExitPosition[0], doc.ExitPosition[1]}
		l.ExitPosition = &pos
	}
	for _, rd := range doc.Rooms {
		room := &Room{X: rd.X, Y: rd.Y, Width: rd.Width, Height: rd.Height}
		for _, ed := range rd.Enemies {
			e := &Enemy{
				Type:      ed.EnemyType,
				Health:    ed.Health,
				MaxHealth: ed.MaxHealth,
				Strength:  ed.Strength,
				Dexterity: ed.Dexterity,
				IsChasing: ed.IsChasing,
			}
			if len(ed.Position) == 2 {
				e.X, e.Y = ed.Position[0], ed.Position[1]
			}
			room.AddEnemy(e)
		}
		for _, id := range rd.Items {
			item, err := DecodeItem(id)
			if err != nil {
				return nil, err
			}
			if len(id.Position) == 2 {
				room.AddItem(item, id.Position[0], id.Position[1])
			}
		}
		l.AddRoom(room)
	}
	for _, cd := range doc.Corridors {
		corridor := &Corridor{}
		for _, t := range cd.Tiles {
			if len(t) == 2 {
				corridor.AddTile(t[0], t[1])
			}
		}
		l.AddCorridor(corridor)
	}
	for _, dd := range doc.Doors {
		door := &Door{Color: dd.Color, IsLocked: dd.IsLocked}
		if len(dd.Position) == 2 {
			door.X, door.Y = dd.Position[0], dd.Position[1]
		}
		l.Doors = append(l.Doors, door)
	}
	return l, nil
}
