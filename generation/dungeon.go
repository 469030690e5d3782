package generation

import (
	"math/rand"
	"strings"
)

// RangeConfig bounds one room dimension
type RangeConfig struct {
	Min     int  `yaml:"min"`
	Max     int  `yaml:"max"`
	OnlyOdd bool `yaml:"onlyOdd"`
}

// Smallest returns the smallest size the range can produce
func (r RangeConfig) Smallest() int {
	if r.OnlyOdd && r.Min%2 == 0 {
		return r.Min + 1
	}
	return r.Min
}

// Empty reports whether no size satisfies the range, e.g. 8-8 odd only
func (r RangeConfig) Empty() bool {
	return r.Smallest() > r.Max
}

// SmallestArea is the area of the smallest room the config can produce
func (c RoomConfig) SmallestArea() int {
	return c.Width.Smallest() * c.Height.Smallest()
}

// RoomConfig bounds the size of generated rooms
type RoomConfig struct {
	Width   RangeConfig `yaml:"width"`
	Height  RangeConfig `yaml:"height"`
	MaxArea int         `yaml:"maxArea"` // 0 disables the area cap
}

// DungeonConfig drives dungeon generation
type DungeonConfig struct {
	Width       int        `yaml:"width"`
	Height      int        `yaml:"height"`
	DoorPadding int        `yaml:"doorPadding"` // minimum distance between a door and a room corner
	MaxRooms    int        `yaml:"maxRooms"`
	Rooms       RoomConfig `yaml:"rooms"`
}

// DefaultDungeonConfig returns the standard 50x50 layout with odd 7-15 rooms.
// Odd dimensions give every room a center tile; a door padding of 2 leaves
// room for a corner tile on either side of a door.
func DefaultDungeonConfig() DungeonConfig {
	return DungeonConfig{
		Width:       50,
		Height:      50,
		DoorPadding: 2,
		MaxRooms:    50,
		Rooms: RoomConfig{
			Width:   RangeConfig{Min: 7, Max: 15, OnlyOdd: true},
			Height:  RangeConfig{Min: 7, Max: 15, OnlyOdd: true},
			MaxArea: 150,
		},
	}
}

const (
	roomPlacementTries = 150
	extraDoorChance    = 0.2
)

// Dungeon is a grid of non-overlapping rooms joined by doors
type Dungeon struct {
	Width  int
	Height int

	config   DungeonConfig
	rng      *rand.Rand
	rooms    []*Room
	roomGrid [][]*Room
}

// NewDungeon generates a dungeon layout
func NewDungeon(config DungeonConfig, rng *rand.Rand) *Dungeon {
	config = config.normalized()

	d := &Dungeon{
		Width:  config.Width,
		Height: config.Height,
		config: config,
		rng:    rng,
	}
	d.generate()
	return d
}

// normalized clamps options that would stall generation
func (c DungeonConfig) normalized() DungeonConfig {
	if c.DoorPadding < 1 {
		c.DoorPadding = 1
	}
	if c.MaxRooms < 1 {
		c.MaxRooms = 1
	}
	if c.Rooms.Width.Empty() {
		c.Rooms.Width.Max = c.Rooms.Width.Smallest()
	}
	if c.Rooms.Height.Empty() {
		c.Rooms.Height.Max = c.Rooms.Height.Smallest()
	}
	// A cap below the smallest drawable room would never be met
	if c.Rooms.MaxArea > 0 && c.Rooms.MaxArea < c.Rooms.SmallestArea() {
		c.Rooms.MaxArea = c.Rooms.SmallestArea()
	}
	return c
}

// Rooms returns the rooms in generation order. The first room is the seed
// room in the middle of the map.
func (d *Dungeon) Rooms() []*Room {
	return d.rooms
}

// GetRoomAt returns the room covering the tile, or nil
func (d *Dungeon) GetRoomAt(x, y int) *Room {
	if x < 0 || y < 0 || x >= d.Width || y >= d.Height {
		return nil
	}
	return d.roomGrid[y][x]
}

func (d *Dungeon) generate() {
	d.rooms = nil
	d.roomGrid = make([][]*Room, d.Height)
	for y := range d.roomGrid {
		d.roomGrid[y] = make([]*Room, d.Width)
	}

	// Seed room in the center of the map
	room := d.createRandomRoom()
	room.SetPosition(d.Width/2-room.Width/2, d.Height/2-room.Height/2)
	if !d.addRoom(room) {
		return
	}

	// Keep attaching rooms until the cap or until the map is too full to fit more
	for attempts := d.config.MaxRooms * 5; len(d.rooms) < d.config.MaxRooms && attempts > 0; attempts-- {
		d.generateRoom()
	}

	// Randomly add doors between rooms that touch but are not yet connected
	for _, r := range d.rooms {
		for _, target := range d.getPotentiallyTouchingRooms(r) {
			if r.IsConnectedTo(target) {
				continue
			}
			if d.rng.Float64() < extraDoorChance {
				if door1, door2, ok := d.findNewDoorLocation(r, target); ok {
					d.addDoor(door1)
					d.addDoor(door2)
				}
			}
		}
	}
}

func (d *Dungeon) generateRoom() {
	room := d.createRandomRoom()

	for i := 0; i < roomPlacementTries; i++ {
		x, y, target, ok := d.findRoomAttachment(room)
		if !ok {
			continue
		}
		room.SetPosition(x, y)
		if !d.addRoom(room) {
			continue
		}
		if door1, door2, ok := d.findNewDoorLocation(room, target); ok {
			d.addDoor(door1)
			d.addDoor(door2)
		}
		return
	}
}

func (d *Dungeon) createRandomRoom() *Room {
	for {
		w := d.randomDimension(d.config.Rooms.Width)
		h := d.randomDimension(d.config.Rooms.Height)
		if d.config.Rooms.MaxArea == 0 || w*h <= d.config.Rooms.MaxArea {
			return NewRoom(w, h)
		}
	}
}

func (d *Dungeon) randomDimension(r RangeConfig) int {
	if !r.OnlyOdd {
		return randomInteger(d.rng, r.Min, r.Max)
	}
	lo, hi := r.Min, r.Max
	if lo%2 == 0 {
		lo++
	}
	if hi%2 == 0 {
		hi--
	}
	if lo > hi {
		return lo
	}
	return lo + 2*d.rng.Intn((hi-lo)/2+1)
}

// addRoom places the room if it fits inside the map without overlapping
func (d *Dungeon) addRoom(room *Room) bool {
	if !d.canFitRoom(room) {
		return false
	}

	room.ID = len(d.rooms)
	d.rooms = append(d.rooms, room)
	for y := room.Top; y <= room.Bottom; y++ {
		for x := room.Left; x <= room.Right; x++ {
			d.roomGrid[y][x] = room
		}
	}
	return true
}

func (d *Dungeon) canFitRoom(room *Room) bool {
	// The last column and row of the map stay empty
	if room.X < 0 || room.X+room.Width > d.Width-1 {
		return false
	}
	if room.Y < 0 || room.Y+room.Height > d.Height-1 {
		return false
	}
	for _, r := range d.rooms {
		if room.Overlaps(r) {
			return false
		}
	}
	return true
}

// findRoomAttachment picks a random existing room and a random side of it
// where the new room could sit
func (d *Dungeon) findRoomAttachment(room *Room) (x, y int, target *Room, ok bool) {
	target = d.rooms[d.rng.Intn(len(d.rooms))]
	// Both rooms need padding around the shared door
	pad := 2 * d.config.DoorPadding

	alongX := func() (int, bool) {
		return randomIntegerOK(d.rng, target.Left-(room.Width-1)+pad, target.Right-pad)
	}
	alongY := func() (int, bool) {
		return randomIntegerOK(d.rng, target.Top-(room.Height-1)+pad, target.Bottom-pad)
	}

	switch d.rng.Intn(4) {
	case 0: // north
		x, ok = alongX()
		y = target.Top - room.Height
	case 1: // west
		x = target.Left - room.Width
		y, ok = alongY()
	case 2: // east
		x = target.Right + 1
		y, ok = alongY()
	default: // south
		x, ok = alongX()
		y = target.Bottom + 1
	}
	return x, y, target, ok
}

// findNewDoorLocation returns a pair of facing door tiles in map coordinates,
// one on each room's shared edge
func (d *Dungeon) findNewDoorLocation(room1, room2 *Room) (Point, Point, bool) {
	pad := d.config.DoorPadding
	var door1, door2 Point
	var ok bool

	switch {
	case room1.Y == room2.Y-room1.Height: // room1 above room2
		door1.X, ok = randomIntegerOK(d.rng, max(room2.Left, room1.Left)+pad, min(room2.Right, room1.Right)-pad)
		door2.X = door1.X
		door1.Y = room1.Bottom
		door2.Y = room2.Top
	case room1.X == room2.X-room1.Width: // room1 left of room2
		door1.Y, ok = randomIntegerOK(d.rng, max(room2.Top, room1.Top)+pad, min(room2.Bottom, room1.Bottom)-pad)
		door2.Y = door1.Y
		door1.X = room1.Right
		door2.X = room2.Left
	case room1.X == room2.X+room2.Width: // room1 right of room2
		door1.Y, ok = randomIntegerOK(d.rng, max(room2.Top, room1.Top)+pad, min(room2.Bottom, room1.Bottom)-pad)
		door2.Y = door1.Y
		door1.X = room1.Left
		door2.X = room2.Right
	case room1.Y == room2.Y+room2.Height: // room1 below room2
		door1.X, ok = randomIntegerOK(d.rng, max(room2.Left, room1.Left)+pad, min(room2.Right, room1.Right)-pad)
		door2.X = door1.X
		door1.Y = room1.Top
		door2.Y = room2.Bottom
	}
	return door1, door2, ok
}

func (d *Dungeon) addDoor(p Point) {
	if room := d.GetRoomAt(p.X, p.Y); room != nil {
		room.addDoor(p.X, p.Y)
	}
}

// getPotentiallyTouchingRooms lists rooms directly across one of the room's
// walls, skipping neighbours that only meet it at a corner
func (d *Dungeon) getPotentiallyTouchingRooms(room *Room) []*Room {
	var touching []*Room
	seen := map[*Room]bool{room: true}

	check := func(x, y int) {
		r := d.GetRoomAt(x, y)
		if r == nil || seen[r] {
			return
		}
		lx, ly := x-r.X, y-r.Y
		if (lx > 0 && lx < r.Width-1) || (ly > 0 && ly < r.Height-1) {
			seen[r] = true
			touching = append(touching, r)
		}
	}

	for x := room.Left + 1; x < room.Right; x++ {
		check(x, room.Top-1)
		check(x, room.Bottom+1)
	}
	for y := room.Top + 1; y < room.Bottom; y++ {
		check(room.Left-1, y)
		check(room.Right+1, y)
	}
	return touching
}

// String draws the layout as ASCII: '#' wall, '.' floor, '+' door, ' ' void
func (d *Dungeon) String() string {
	var sb strings.Builder
	sb.Grow((d.Width + 1) * d.Height)
	for y := 0; y < d.Height; y++ {
		for x := 0; x < d.Width; x++ {
			sb.WriteByte(d.glyphAt(x, y))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func (d *Dungeon) glyphAt(x, y int) byte {
	r := d.GetRoomAt(x, y)
	switch {
	case r == nil:
		return ' '
	case r.hasDoorAt(x, y):
		return '+'
	case x == r.Left || x == r.Right || y == r.Top || y == r.Bottom:
		return '#'
	default:
		return '.'
	}
}
