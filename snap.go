package cubesim

import (
	"math"

	"github.com/westphae/quaternion"
)

// Numerical tolerances of the engine.
const (
	// SliceTolerance is how far a coordinate may sit from a slice value and
	// still select it. It must stay well under the 1-unit grid spacing.
	SliceTolerance = 0.1

	// GridTolerance bounds the distance between a snapped coordinate and
	// its integer value.
	GridTolerance = 1e-6

	// AngleTolerance is the largest angle, in radians, treated as no
	// rotation by the solved check.
	AngleTolerance = 0.001
)

// SnapToGrid rounds every component of v to the nearest integer. Every
// rotated position passes through it, so positions stay exact across any
// number of moves.
func SnapToGrid(v quaternion.Vec3) quaternion.Vec3 {
	return quaternion.Vec3{
		X: snap(v.X),
		Y: snap(v.Y),
		Z: snap(v.Z),
	}
}

func snap(f float64) float64 {
	r := math.Round(f)
	if r == 0 {
		// avoid -0 so positions compare equal to their Coord vectors
		return 0
	}
	return r
}

// OnGrid reports whether every component of v is within GridTolerance of
// a value in {-1, 0, 1}.
func OnGrid(v quaternion.Vec3) bool {
	for _, f := range []float64{v.X, v.Y, v.Z} {
		r := math.Round(f)
		if r < -1 || r > 1 || math.Abs(f-r) > GridTolerance {
			return false
		}
	}
	return true
}

// inSlice reports whether coordinate f selects slice.
func inSlice(f float64, slice int) bool {
	return math.Abs(f-float64(slice)) < SliceTolerance
}
