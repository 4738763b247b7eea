package clearance

import (
	"container/list"

	"github.com/gofloorplan/editor/internal/geometry"
	"github.com/gofloorplan/editor/internal/scene"
)

// TrafficCellSize is the grid-search cell size in feet.
const TrafficCellSize = 0.5

// Path is an advisory polyline from a door into the room, avoiding
// furniture (Glossary "Traffic path").
type Path struct {
	DoorID string
	Points []geometry.Point
}

// ComputeTrafficPaths returns one advisory Path per door, routed from
// the door's world position toward the room's center via a grid-based
// shortest-path search over free (non-furniture) cells. Doors with no
// reachable route to the target are omitted — paths are advisory only
// and a missing path is not an error.
func ComputeTrafficPaths(furniture []scene.Furniture, doors []scene.Door, segments []geometry.Segment, room scene.Room) []Path {
	bounds := geometry.PolygonBounds(toGeometryVertices(room.Vertices))
	target := geometry.Point{X: bounds.CenterX(), Y: bounds.CenterY()}

	obstacles := make([]geometry.Rect, 0, len(furniture))
	for _, f := range furniture {
		obstacles = append(obstacles, geometry.CenterRect(f.X, f.Y, f.W, f.H))
	}

	var paths []Path
	for _, d := range doors {
		wall := findWall(segments, d.WallID)
		if wall == nil {
			continue
		}
		start := geometry.PointAt(*wall, d.Position)

		route, ok := shortestPath(start, target, bounds, obstacles)
		if !ok {
			continue
		}
		paths = append(paths, Path{DoorID: d.ID, Points: route})
	}
	return paths
}

func toGeometryVertices(vs []scene.RoomVertex) []geometry.Vertex {
	out := make([]geometry.Vertex, len(vs))
	for i, v := range vs {
		out[i] = geometry.Vertex{X: v.X, Y: v.Y}
	}
	return out
}

func findWall(segments []geometry.Segment, id string) *geometry.Segment {
	for i := range segments {
		if segments[i].ID == id {
			return &segments[i]
		}
	}
	return nil
}

type gridCell struct{ cx, cy int }

func toCell(p geometry.Point) gridCell {
	return gridCell{int(p.X / TrafficCellSize), int(p.Y / TrafficCellSize)}
}

func (c gridCell) toPoint() geometry.Point {
	return geometry.Point{X: (float64(c.cx) + 0.5) * TrafficCellSize, Y: (float64(c.cy) + 0.5) * TrafficCellSize}
}

func blocked(c gridCell, obstacles []geometry.Rect) bool {
	p := c.toPoint()
	for _, r := range obstacles {
		if r.Contains(p.X, p.Y) {
			return true
		}
	}
	return false
}

var neighborDirs = [4]gridCell{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}

// shortestPath runs a breadth-first search over the grid of free cells
// within bounds, from start toward target, returning the polyline of
// cell centers. BFS yields a shortest path in unweighted-grid
// edge count, adequate for an advisory overlay.
func shortestPath(start, target geometry.Point, bounds geometry.Bounds, obstacles []geometry.Rect) ([]geometry.Point, bool) {
	startCell := toCell(start)
	targetCell := toCell(target)

	minCX := int(bounds.MinX / TrafficCellSize)
	maxCX := int(bounds.MaxX / TrafficCellSize)
	minCY := int(bounds.MinY / TrafficCellSize)
	maxCY := int(bounds.MaxY / TrafficCellSize)

	inBounds := func(c gridCell) bool {
		return c.cx >= minCX && c.cx <= maxCX && c.cy >= minCY && c.cy <= maxCY
	}

	visited := map[gridCell]gridCell{startCell: startCell}
	queue := list.New()
	queue.PushBack(startCell)

	found := false
	for queue.Len() > 0 {
		front := queue.Remove(queue.Front()).(gridCell)
		if front == targetCell {
			found = true
			break
		}
		for _, d := range neighborDirs {
			next := gridCell{front.cx + d.cx, front.cy + d.cy}
			if !inBounds(next) {
				continue
			}
			if _, seen := visited[next]; seen {
				continue
			}
			if blocked(next, obstacles) {
				continue
			}
			visited[next] = front
			queue.PushBack(next)
		}
	}

	if !found {
		return nil, false
	}

	var cells []gridCell
	for at := targetCell; ; {
		cells = append([]gridCell{at}, cells...)
		if at == startCell {
			break
		}
		at = visited[at]
	}

	points := make([]geometry.Point, len(cells))
	for i, c := range cells {
		points[i] = c.toPoint()
	}
	return points, true
}
