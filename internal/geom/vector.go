package geom

import "github.com/go-gl/mathgl/mgl64"

// Vector3 is a point or direction in model space. Every operation returns a
// new value; a Vector3 is never modified in place.
type Vector3 struct {
	X, Y, Z float64
}

// V3 is shorthand for Vector3{x, y, z}.
func V3(x, y, z float64) Vector3 {
	return Vector3{X: x, Y: y, Z: z}
}

// RotateX rotates the vector around the X axis by angle degrees
func (v Vector3) RotateX(angle float64) Vector3 {
	return v.apply(mgl64.Rotate3DX(mgl64.DegToRad(angle)))
}

// RotateY rotates the vector around the Y axis by angle degrees
func (v Vector3) RotateY(angle float64) Vector3 {
	return v.apply(mgl64.Rotate3DY(mgl64.DegToRad(angle)))
}

// RotateZ rotates the vector around the Z axis by angle degrees
func (v Vector3) RotateZ(angle float64) Vector3 {
	return v.apply(mgl64.Rotate3DZ(mgl64.DegToRad(angle)))
}

// RotateXYZ rotates around X, then Y, then Z, each by the matching angle.
func (v Vector3) RotateXYZ(x, y, z float64) Vector3 {
	return v.RotateX(x).RotateY(y).RotateZ(z)
}

// Len returns the magnitude of the vector.
func (v Vector3) Len() float64 {
	return v.vec().Len()
}

func (v Vector3) apply(m mgl64.Mat3) Vector3 {
	r := m.Mul3x1(v.vec())
	return Vector3{X: r.X(), Y: r.Y(), Z: r.Z()}
}

func (v Vector3) vec() mgl64.Vec3 {
	return mgl64.Vec3{v.X, v.Y, v.Z}
}
