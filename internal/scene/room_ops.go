package scene

import "github.com/gofloorplan/editor/internal/geometry"

// RebuildWalls re-derives the wall cache from the room's vertices. It is
// called after any operation that changes vertex positions or count.
func RebuildWalls(room Room) []Wall {
	verts := toGeometryVertices(room.Vertices)
	segs := geometry.SegmentsOf(verts)

	walls := make([]Wall, len(segs))
	for i, s := range segs {
		walls[i] = Wall{
			ID: s.ID,
			X1: s.X1, Y1: s.Y1,
			X2: s.X2, Y2: s.Y2,
			Length: s.Length,
			Angle:  s.Angle,
		}
	}
	return walls
}

func toGeometryVertices(vs []RoomVertex) []geometry.Vertex {
	out := make([]geometry.Vertex, len(vs))
	for i, v := range vs {
		out[i] = geometry.Vertex{X: v.X, Y: v.Y}
	}
	return out
}

// AddVertex inserts a new vertex at the midpoint between index and
// index+1 (wrapping), rebuilds walls, and prunes any opening whose host
// wall no longer exists. If the result would be a self-intersecting
// polygon, s is returned unchanged rather than accepting a self-
// intersecting room.
func AddVertex(s Scene, index int) Scene {
	n := len(s.Room.Vertices)
	if n == 0 || index < 0 || index >= n {
		return s
	}

	a := s.Room.Vertices[index]
	b := s.Room.Vertices[(index+1)%n]
	mid := RoomVertex{X: (a.X + b.X) / 2, Y: (a.Y + b.Y) / 2}

	vertices := make([]RoomVertex, 0, n+1)
	vertices = append(vertices, s.Room.Vertices[:index+1]...)
	vertices = append(vertices, mid)
	vertices = append(vertices, s.Room.Vertices[index+1:]...)

	return applyRoomEdit(s, vertices)
}

// MoveVertex relocates the vertex at index to pos, rebuilds walls, and
// prunes orphaned openings. Refuses (returns s unchanged) if the move
// would make the polygon self-intersecting.
func MoveVertex(s Scene, index int, pos RoomVertex) Scene {
	n := len(s.Room.Vertices)
	if index < 0 || index >= n {
		return s
	}

	vertices := append([]RoomVertex(nil), s.Room.Vertices...)
	vertices[index] = pos

	return applyRoomEdit(s, vertices)
}

// RemoveVertex deletes the vertex at index. Refuses if fewer than 3
// vertices would remain, or if the result is self-intersecting.
func RemoveVertex(s Scene, index int) Scene {
	n := len(s.Room.Vertices)
	if n <= 3 || index < 0 || index >= n {
		return s
	}

	vertices := make([]RoomVertex, 0, n-1)
	vertices = append(vertices, s.Room.Vertices[:index]...)
	vertices = append(vertices, s.Room.Vertices[index+1:]...)

	return applyRoomEdit(s, vertices)
}

// ReplaceRoom swaps in an entirely new room outline — used when applying
// a template or parametric generator. Like the vertex-edit ops,
// it rebuilds walls and prunes openings whose host wall disappeared, and
// refuses (returns s unchanged) if vertices is not a simple polygon.
func ReplaceRoom(s Scene, vertices []RoomVertex, wallThickness float64) Scene {
	next := s
	next.Room.WallThickness = wallThickness
	return applyRoomEdit(next, vertices)
}

// applyRoomEdit validates the candidate vertex list, rebuilds the wall
// cache, prunes orphaned openings, and returns the new scene — or s
// unchanged if the candidate polygon is not simple.
func applyRoomEdit(s Scene, vertices []RoomVertex) Scene {
	if !geometry.IsSimple(toGeometryVertices(vertices)) {
		return s
	}

	next := s
	next.Room = Room{Vertices: vertices, WallThickness: s.Room.WallThickness}
	next.Walls = RebuildWalls(next.Room)
	next.Doors, next.Windows = pruneOrphanOpenings(next.Walls, next.Doors, next.Windows)
	return next
}

// pruneOrphanOpenings drops any door/window whose WallID no longer
// matches a current wall.
func pruneOrphanOpenings(walls []Wall, doors []Door, windows []Window) ([]Door, []Window) {
	valid := make(map[string]bool, len(walls))
	for _, w := range walls {
		valid[w.ID] = true
	}

	keptDoors := make([]Door, 0, len(doors))
	for _, d := range doors {
		if valid[d.WallID] {
			keptDoors = append(keptDoors, d)
		}
	}

	keptWindows := make([]Window, 0, len(windows))
	for _, w := range windows {
		if valid[w.WallID] {
			keptWindows = append(keptWindows, w)
		}
	}

	return keptDoors, keptWindows
}
