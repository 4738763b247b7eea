package scene

import "github.com/gofloorplan/editor/internal/geometry"

// IssueKind enumerates the reasons ValidatePlacement can flag an item.
type IssueKind string

const (
	IssueOutsideRoom  IssueKind = "outside_room"
	IssueOverlaps     IssueKind = "overlaps"
	IssueStraddlesWall IssueKind = "straddles_wall"
)

// PlacementIssue reports one furniture item's placement problem.
// ValidatePlacement never mutates the scene; it only reports.
type PlacementIssue struct {
	ID    string
	Issue IssueKind
}

// wallStraddleMargin is the distance (ft) within which any corner of an
// item's footprint counts as straddling a wall segment.
const wallStraddleMargin = 0.1

// ValidatePlacement reports every furniture item whose center falls
// outside the room polygon, that overlaps another item (axis-aligned
// rect test), or that straddles a wall segment within
// wallStraddleMargin feet.
func ValidatePlacement(furniture []Furniture, room Room) []PlacementIssue {
	verts := toGeometryVertices(room.Vertices)
	segs := geometry.SegmentsOf(verts)

	var issues []PlacementIssue
	for i, f := range furniture {
		if !geometry.PointInPolygon(f.X, f.Y, verts) {
			issues = append(issues, PlacementIssue{ID: f.ID, Issue: IssueOutsideRoom})
			continue
		}

		if overlapsAnother(furniture, i) {
			issues = append(issues, PlacementIssue{ID: f.ID, Issue: IssueOverlaps})
			continue
		}

		if straddlesWall(f, segs) {
			issues = append(issues, PlacementIssue{ID: f.ID, Issue: IssueStraddlesWall})
		}
	}
	return issues
}

func overlapsAnother(furniture []Furniture, index int) bool {
	a := geometry.CenterRect(furniture[index].X, furniture[index].Y, furniture[index].W, furniture[index].H)
	for j, other := range furniture {
		if j == index {
			continue
		}
		b := geometry.CenterRect(other.X, other.Y, other.W, other.H)
		if geometry.RectsOverlap(a, b) {
			return true
		}
	}
	return false
}

func straddlesWall(f Furniture, segs []geometry.Segment) bool {
	rect := geometry.CenterRect(f.X, f.Y, f.W, f.H)
	for _, seg := range segs {
		if segmentNearRect(seg, rect) {
			return true
		}
	}
	return false
}

// segmentNearRect reports whether any of the rect's four corners lies
// within wallStraddleMargin feet of the segment.
func segmentNearRect(seg geometry.Segment, r geometry.Rect) bool {
	corners := [4][2]float64{
		{r.MinX(), r.MinY()},
		{r.MaxX(), r.MinY()},
		{r.MinX(), r.MaxY()},
		{r.MaxX(), r.MaxY()},
	}
	for _, c := range corners {
		_, dist := projectPointPublic(c[0], c[1], seg)
		if dist <= wallStraddleMargin {
			return true
		}
	}
	return false
}

// projectPointPublic mirrors geometry's unexported projection helper;
// NearestWall already does this internally, but ValidatePlacement needs
// the per-segment distance directly rather than the overall nearest.
func projectPointPublic(x, y float64, seg geometry.Segment) (float64, float64) {
	res, ok := geometry.NearestWall(x, y, []geometry.Segment{seg}, 1<<30)
	if !ok {
		return 0, 1 << 30
	}
	return res.T, res.Dist
}
