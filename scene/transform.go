package scene

import (
	"github.com/lixenwraith/starchart/vmath"
)

// Transform is the live world-space pose of a mounted object. The scene
// node owns it; the ObjectRegistry only holds a back-reference.
//
// Access model is single-threaded cooperative: writes happen in the
// per-frame animator pass, reads in the same frame's camera pass, so no
// locking is needed, only correct pass ordering
type Transform struct {
	position  vmath.Vec3
	rotationY float64
}

// Position returns the current world position
func (t *Transform) Position() vmath.Vec3 {
	return t.position
}

// SetPosition writes the world position
func (t *Transform) SetPosition(p vmath.Vec3) {
	t.position = p
}

// RotationY returns the spin angle around the up axis in radians
func (t *Transform) RotationY() float64 {
	return t.rotationY
}

// SetRotationY writes the spin angle
func (t *Transform) SetRotationY(r float64) {
	t.rotationY = r
}
