package shapesum

import "math"

// Lattice selects the point lattice used to snap raw pointer coordinates.
// Two families (square, triangular), each at a base spacing and a fine
// variant at half the base spacing. Lattices are always centered on the
// surface, whatever its pixel dimensions.
type Lattice int

const (
	// LatticeSquare is the orthogonal lattice at the base spacing.
	LatticeSquare Lattice = iota

	// LatticeSquareFine is the orthogonal lattice at half spacing.
	LatticeSquareFine

	// LatticeTriangle is the triangular lattice at the base spacing.
	LatticeTriangle

	// LatticeTriangleFine is the triangular lattice at half spacing.
	LatticeTriangleFine
)

// String returns the lattice name.
func (k Lattice) String() string {
	switch k {
	case LatticeSquare:
		return "Square"
	case LatticeSquareFine:
		return "SquareFine"
	case LatticeTriangle:
		return "Triangle"
	case LatticeTriangleFine:
		return "TriangleFine"
	default:
		return "Unknown"
	}
}

// baseSpacing is the lattice spacing in surface units; fine variants use
// half of it.
const baseSpacing = 50.0

// Spacing returns the lattice spacing in surface units.
func (k Lattice) Spacing() float64 {
	switch k {
	case LatticeSquareFine, LatticeTriangleFine:
		return baseSpacing / 2
	default:
		return baseSpacing
	}
}

var sqrt3 = math.Sqrt(3)

// Snap maps (x, y) to the nearest point of the lattice k centered on a
// w-by-h surface. Square lattices round each axis independently to
// spacing multiples measured from the surface center. Triangular lattices
// transform center-relative coordinates into the lattice basis
// (u = x - y/√3, v = 2y/√3), round both basis coordinates independently,
// and transform back. Snap is idempotent.
func Snap(x, y, w, h float64, k Lattice) (float64, float64) {
	s := k.Spacing()
	cx, cy := w/2, h/2
	rx, ry := x-cx, y-cy

	switch k {
	case LatticeTriangle, LatticeTriangleFine:
		u := rx - ry/sqrt3
		v := ry * 2 / sqrt3
		u = math.Round(u/s) * s
		v = math.Round(v/s) * s
		return cx + u + v/2, cy + v*sqrt3/2
	default:
		return cx + math.Round(rx/s)*s, cy + math.Round(ry/s)*s
	}
}
