package triangulation

// Orientation classifies a query point against a directed reference edge.
// This predicate is the single source of truth for every topological decision
// in the mesh: which side of an edge a point falls, whether a hull edge is
// visible from a new point, whether an insertion is degenerate. Collinear
// results are further split by where the point lands along the segment.
//
// The ordinal values matter. Hull extension accepts any classification that
// is Right or "more collinear than Right" (the point is visible from the
// edge), so the collinear-off-segment values must sort after Right.
type Orientation int

const (
	OnSegment Orientation = iota
	Left
	Right
	InFrontOfA
	BehindB
)

func (o Orientation) String() string {
	switch o {
	case OnSegment:
		return "OnSegment"
	case Left:
		return "Left"
	case Right:
		return "Right"
	case InFrontOfA:
		return "InFrontOfA"
	case BehindB:
		return "BehindB"
	}
	return "Unknown"
}

// Orient classifies r against the directed line a→b using the sign of the 2D
// cross product of (b−a) and (r−a). Pure float64 arithmetic: nearly collinear
// input can misclassify, which is an accepted limitation. The tie-breaking is
// deterministic, which is what actually matters: an inconsistent predicate
// could send legalization into a flip loop.
func Orient(a, b, r Point) Orientation {
	dx := b.X - a.X
	dy := b.Y - a.Y
	res := dy*(r.X-a.X) - dx*(r.Y-a.Y)

	if res < 0 {
		return Left
	}
	if res > 0 {
		return Right
	}

	// Collinear. Classify by the position of r along the segment, using
	// whichever axis the segment actually extends in.
	switch {
	case dx > 0:
		if r.X < a.X {
			return InFrontOfA
		}
		if r.X > b.X {
			return BehindB
		}
	case dx < 0:
		if r.X > a.X {
			return InFrontOfA
		}
		if r.X < b.X {
			return BehindB
		}
	case dy > 0:
		if r.Y < a.Y {
			return InFrontOfA
		}
		if r.Y > b.Y {
			return BehindB
		}
	case dy < 0:
		if r.Y > a.Y {
			return InFrontOfA
		}
		if r.Y < b.Y {
			return BehindB
		}
	}
	// Either r is within the segment, or a == b and the reference edge is
	// degenerate; both collapse to OnSegment.
	return OnSegment
}
