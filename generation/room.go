package generation

// Point is an integer tile coordinate
type Point struct {
	X, Y int
}

// Room is a rectangle of tiles whose outer ring is wall. Door locations are
// kept relative to the room's top-left corner.
type Room struct {
	ID     int
	X, Y   int
	Width  int
	Height int

	// Derived bounds, kept in sync by SetPosition
	Left, Right, Top, Bottom int
	CenterX, CenterY         int

	doors []Point
}

// NewRoom creates a room at the origin
func NewRoom(width, height int) *Room {
	r := &Room{Width: width, Height: height}
	r.SetPosition(0, 0)
	return r
}

// SetPosition moves the room and recomputes its derived bounds
func (r *Room) SetPosition(x, y int) {
	r.X = x
	r.Y = y
	r.Left = x
	r.Right = x + r.Width - 1
	r.Top = y
	r.Bottom = y + r.Height - 1
	r.CenterX = x + r.Width/2
	r.CenterY = y + r.Height/2
}

// DoorLocations returns a copy of the room's door offsets
func (r *Room) DoorLocations() []Point {
	doors := make([]Point, len(r.doors))
	copy(doors, r.doors)
	return doors
}

// addDoor records a door given in map coordinates
func (r *Room) addDoor(x, y int) {
	p := Point{X: x - r.X, Y: y - r.Y}
	for _, d := range r.doors {
		if d == p {
			return
		}
	}
	r.doors = append(r.doors, p)
}

// hasDoorAt reports whether the map coordinate is one of this room's doors
func (r *Room) hasDoorAt(x, y int) bool {
	p := Point{X: x - r.X, Y: y - r.Y}
	for _, d := range r.doors {
		if d == p {
			return true
		}
	}
	return false
}

// Contains reports whether the map tile lies inside the room, walls included
func (r *Room) Contains(x, y int) bool {
	return x >= r.Left && x <= r.Right && y >= r.Top && y <= r.Bottom
}

// Overlaps reports whether two rooms share at least one tile
func (r *Room) Overlaps(other *Room) bool {
	if r.Right < other.Left || r.Left > other.Right {
		return false
	}
	if r.Bottom < other.Top || r.Top > other.Bottom {
		return false
	}
	return true
}

// IsConnectedTo reports whether a door of r sits next to a door of other
func (r *Room) IsConnectedTo(other *Room) bool {
	for _, d := range r.doors {
		x, y := r.X+d.X, r.Y+d.Y
		for _, n := range [4]Point{{x, y - 1}, {x, y + 1}, {x - 1, y}, {x + 1, y}} {
			if other.Contains(n.X, n.Y) && other.hasDoorAt(n.X, n.Y) {
				return true
			}
		}
	}
	return false
}
