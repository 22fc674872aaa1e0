// Package geometry provides the 3D coordinate value types shared by the
// structural domain packages.  Positions are plain float64 triples in
// Ångström units; all operations are pure value math.
package geometry

import "math"

// Vec3 is a position or direction in 3D space.
type Vec3 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Add returns v + w.
func (v Vec3) Add(w Vec3) Vec3 {
	return Vec3{X: v.X + w.X, Y: v.Y + w.Y, Z: v.Z + w.Z}
}

// Sub returns v - w.
func (v Vec3) Sub(w Vec3) Vec3 {
	return Vec3{X: v.X - w.X, Y: v.Y - w.Y, Z: v.Z - w.Z}
}

// Scale returns v scaled by s.
func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{X: v.X * s, Y: v.Y * s, Z: v.Z * s}
}

// Dot returns the dot product of v and w.
func (v Vec3) Dot(w Vec3) float64 {
	return v.X*w.X + v.Y*w.Y + v.Z*w.Z
}

// Norm returns the Euclidean length of v.
func (v Vec3) Norm() float64 {
	return math.Sqrt(v.Dot(v))
}

// degenerateNorm is the length below which a vector has no usable direction.
const degenerateNorm = 1e-9

// Unit returns the normalized direction of v.  The second return value is
// false when v is too short to carry a direction.
func (v Vec3) Unit() (Vec3, bool) {
	n := v.Norm()
	if n < degenerateNorm {
		return Vec3{}, false
	}
	return v.Scale(1 / n), true
}

// Distance returns the Euclidean distance between two positions.
func Distance(a, b Vec3) float64 {
	return a.Sub(b).Norm()
}

// AngleBetween returns the angle in degrees between directions v and w.
// A degenerate input yields 0.
func AngleBetween(v, w Vec3) float64 {
	nv := v.Norm()
	nw := w.Norm()
	if nv < degenerateNorm || nw < degenerateNorm {
		return 0
	}
	cos := v.Dot(w) / (nv * nw)
	// Clamp against rounding before acos.
	if cos > 1 {
		cos = 1
	} else if cos < -1 {
		cos = -1
	}
	return math.Acos(cos) * 180 / math.Pi
}

// CosAngle returns the cosine of the angle between directions v and w, and
// false when either direction is degenerate.
func CosAngle(v, w Vec3) (float64, bool) {
	nv := v.Norm()
	nw := w.Norm()
	if nv < degenerateNorm || nw < degenerateNorm {
		return 0, false
	}
	cos := v.Dot(w) / (nv * nw)
	if cos > 1 {
		cos = 1
	} else if cos < -1 {
		cos = -1
	}
	return cos, true
}
