package device

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Ray is a half line used for view and gaze directions.
type Ray struct {
	Position  mgl64.Vec3
	Direction mgl64.Vec3
}

// NaNVec3 is returned where a position cannot be determined.
var NaNVec3 = mgl64.Vec3{math.NaN(), math.NaN(), math.NaN()}

// ClosestPointBetween returns the midpoint of the shortest segment between
// the lines through r1 and r2. Degenerate inputs yield the midpoint of the
// two origins.
func ClosestPointBetween(r1, r2 Ray) mgl64.Vec3 {
	A, B := r1.Position, r2.Position
	mid := A.Add(B).Mul(0.5)
	if r1.Direction.Len() == 0 || r2.Direction.Len() == 0 {
		return mid
	}

	a := r1.Direction.Normalize()
	b := r2.Direction.Normalize()
	c := B.Sub(A)

	aa := a.Dot(a)
	bb := b.Dot(b)
	ab := a.Dot(b)
	denom := aa*bb - ab*ab
	if math.Abs(denom) < 1e-12 {
		return mid
	}

	ac := a.Dot(c)
	bc := b.Dot(c)
	ta := (ac*bb - ab*bc) / denom
	tb := (ab*ac - bc*aa) / denom

	D := A.Add(a.Mul(ta))
	E := B.Add(b.Mul(tb))
	return D.Add(E).Mul(0.5)
}
