package geom

import "math"

// Basis is an ordered triple of direction vectors. The vectors need not be
// unit length; ellipsoids assume they are mutually orthogonal.
type Basis [3]Point3

// Lengths holds the semi-axis extents paired positionally with a Basis.
type Lengths [3]float64

// CanonicalBasis is the x, y, z frame.
var CanonicalBasis = Basis{UnitX, UnitY, UnitZ}

// Semiaxis is one ellipsoid axis: a direction and the extent along it.
type Semiaxis struct {
	Dir    Point3  `json:"dir"`
	Length float64 `json:"length"`
}

// Semiaxes is the three (axis, length) pairs that define an ellipsoid.
type Semiaxes [3]Semiaxis

// NewSemiaxes pairs basis[i] with lengths[i].
func NewSemiaxes(basis Basis, lengths Lengths) Semiaxes {
	var s Semiaxes
	for i := range s {
		s[i] = Semiaxis{Dir: basis[i], Length: lengths[i]}
	}
	return s
}

// Aligned returns semi-axes along the canonical frame with extents a, b, c.
func Aligned(a, b, c float64) Semiaxes {
	return NewSemiaxes(CanonicalBasis, Lengths{a, b, c})
}

// Basis returns the three directions.
func (s Semiaxes) Basis() Basis {
	return Basis{s[0].Dir, s[1].Dir, s[2].Dir}
}

// Lengths returns the three extents.
func (s Semiaxes) Lengths() Lengths {
	return Lengths{s[0].Length, s[1].Length, s[2].Length}
}

// Orthogonal reports whether the three directions are pairwise orthogonal
// to within tol, measured as the cosine of the angle between each pair.
// Zero-length directions are never orthogonal.
func (s Semiaxes) Orthogonal(tol float64) bool {
	for i := 0; i < 3; i++ {
		for j := i + 1; j < 3; j++ {
			ni, nj := s[i].Dir.Length(), s[j].Dir.Length()
			if ni == 0 || nj == 0 {
				return false
			}
			if math.Abs(s[i].Dir.Dot(s[j].Dir)/(ni*nj)) > tol {
				return false
			}
		}
	}
	return true
}

// Negative reports whether any extent is below zero.
func (s Semiaxes) Negative() bool {
	for _, a := range s {
		if a.Length < 0 {
			return true
		}
	}
	return false
}
