package camera

import (
	"github.com/lixenwraith/starchart/vmath"
)

// Pose is the camera output applied each frame by the render layer:
// a world position plus a look-at target
type Pose struct {
	Position vmath.Vec3
	Target   vmath.Vec3
}

// Controls abstracts the user orbit-control surface owned by the input
// layer. The controller disables it for the duration of an animation and
// resynchronizes its home state whenever the camera pose moves under it,
// so user drag-orbiting stays relative to the settled pose
type Controls interface {
	SetEnabled(enabled bool)
	SyncHome(pose Pose)
}

// nullControls is the default no-op implementation
type nullControls struct{}

func (nullControls) SetEnabled(bool) {}
func (nullControls) SyncHome(Pose)   {}
