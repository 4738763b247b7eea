// Package scene defines the floor-plan editor's data model and the pure
// edit functions that mutate it. Every operation takes a Scene (or a
// sub-list) and returns a new value; there is no in-place mutation, so
// the command history in internal/history can hold onto old Scenes
// cheaply.
package scene

import (
	"github.com/google/uuid"
)

// Shape enumerates the furniture silhouettes the render pipeline knows
// how to draw.
type Shape string

const (
	ShapeRect  Shape = "rect"
	ShapeRound Shape = "round"
	ShapeOval  Shape = "oval"
	ShapeL     Shape = "L"
	ShapeBed   Shape = "bed"
)

// SwingDir is the hinge side of a door.
type SwingDir string

const (
	SwingLeft  SwingDir = "left"
	SwingRight SwingDir = "right"
)

// RoomVertex is one corner of the room polygon, in feet.
type RoomVertex struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Room is the closed polygonal footprint. Orientation (CW/CCW) is not
// significant; vertex ordering only defines wall segments.
type Room struct {
	Vertices      []RoomVertex `json:"vertices"`
	WallThickness float64      `json:"wall_thickness"` // feet, rendering only
}

// Wall is a derived (not stored) segment between two consecutive room
// vertices, including the last-to-first edge. Its ID is a geometry hash
// and is NOT stable across vertex insertion/removal, since it embeds
// the segment's index.
type Wall struct {
	ID     string  `json:"id"`
	X1     float64 `json:"x1"`
	Y1     float64 `json:"y1"`
	X2     float64 `json:"x2"`
	Y2     float64 `json:"y2"`
	Length float64 `json:"length"`
	Angle  float64 `json:"angle"`
}

// Door attaches to a wall at a fractional position along its length.
type Door struct {
	ID         string   `json:"id"`
	WallID     string   `json:"wall_id"`
	Position   float64  `json:"position"` // fraction in [0,1]
	Width      float64  `json:"width"`    // feet
	SwingAngle float64  `json:"swing_angle"`
	SwingDir   SwingDir `json:"swing_dir"`
}

// Window attaches to a wall at a fractional position along its length.
type Window struct {
	ID       string  `json:"id"`
	WallID   string  `json:"wall_id"`
	Position float64 `json:"position"`
	Width    float64 `json:"width"`
}

// Furniture is a placed item; (X,Y) is the item's center.
type Furniture struct {
	ID        string  `json:"id"`
	ProductID string  `json:"product_id,omitempty"`
	X         float64 `json:"x"`
	Y         float64 `json:"y"`
	W         float64 `json:"w"`
	H         float64 `json:"h"`
	Rotation  float64 `json:"rotation"`
	Locked    bool    `json:"locked,omitempty"`
	Color     string  `json:"color,omitempty"`
	Shape     Shape   `json:"shape"`
	Label     string  `json:"label,omitempty"`
	Category  string  `json:"category,omitempty"`
}

// Scene is the engine's root value: the room, derived wall cache,
// openings, furniture (back-to-front z-order), viewport state, snap
// settings, and overlay toggles.
type Scene struct {
	Room      Room        `json:"room"`
	Walls     []Wall      `json:"walls"`
	Doors     []Door      `json:"doors"`
	Windows   []Window    `json:"windows"`
	Furniture []Furniture `json:"furniture"`

	Zoom float64 `json:"zoom"`
	PanX float64 `json:"pan_x"`
	PanY float64 `json:"pan_y"`

	GridSize   float64 `json:"grid_size"`
	SnapToGrid bool    `json:"snap_to_grid"`

	ShowGrid        bool `json:"show_grid"`
	ShowDimensions  bool `json:"show_dimensions"`
	ShowClearances  bool `json:"show_clearances"`
	ShowTrafficFlow bool `json:"show_traffic_flow"`
}

// Snapshot is a structural copy of the edit-relevant portion of a Scene
// (furniture, room, doors, windows, walls), used by internal/history for
// undo/redo. Viewport state is intentionally excluded.
type Snapshot struct {
	Room      Room
	Walls     []Wall
	Doors     []Door
	Windows   []Window
	Furniture []Furniture
}

// ToSnapshot captures the edit-relevant state of s.
func (s Scene) ToSnapshot() Snapshot {
	return Snapshot{
		Room:      s.Room,
		Walls:     s.Walls,
		Doors:     s.Doors,
		Windows:   s.Windows,
		Furniture: s.Furniture,
	}
}

// WithSnapshot returns a copy of s with its edit-relevant fields replaced
// from snap, preserving s's viewport and toggle state.
func (s Scene) WithSnapshot(snap Snapshot) Scene {
	next := s
	next.Room = snap.Room
	next.Walls = snap.Walls
	next.Doors = snap.Doors
	next.Windows = snap.Windows
	next.Furniture = snap.Furniture
	return next
}

// NewID returns a fresh, opaque, engine-scoped identifier. IDs are never
// reused.
func NewID() string {
	return uuid.New().String()
}
