package game

import "math"

// DefaultFOV is the horizontal field of view in degrees for 3D mode.
const DefaultFOV = 60.0

// Camera is the first-person viewpoint used by the 3D presentation.
// Position is continuous; the grid cell is derived.
type Camera struct {
	X, Y float64
	// Angle is the facing direction in degrees.
	Angle float64
	// FOV is the horizontal field of view in degrees.
	FOV float64
}

// NewCamera places a camera at the given position looking along angle.
func NewCamera(x, y, angle, fov float64) *Camera {
	if fov <= 0 {
		fov = DefaultFOV
	}
	return &Camera{X: x, Y: y, Angle: angle, FOV: fov}
}

// GridPosition returns the integer tile the camera occupies.
func (c *Camera) GridPosition() (int, int) {
	return int(math.Floor(c.X)), int(math.Floor(c.Y))
}

// Rotate turns the camera by delta degrees, normalized to [0, 360).
func (c *Camera) Rotate(delta float64) {
	c.Angle = math.Mod(c.Angle+delta, 360)
	if c.Angle < 0 {
		c.Angle += 360
	}
}

// MoveTo places the camera at the given continuous position.
func (c *Camera) MoveTo(x, y float64) {
	c.X = x
	c.Y = y
}

// CameraDoc is the persisted form of a camera.
type CameraDoc struct {
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Angle float64 `json:"angle"`
	FOV   float64 `json:"fov"`
}

// EncodeCamera converts a camera to its persisted form. A nil camera
// encodes to nil, meaning 2D mode with no active camera.
func EncodeCamera(c *Camera) *CameraDoc {
	if c == nil {
		return nil
	}
	return &CameraDoc{X: c.X, Y: c.Y, Angle: c.Angle, FOV: c.FOV}
}

// DecodeCamera reconstructs a camera, or nil for a nil document.
func DecodeCamera(doc *CameraDoc) *Camera {
	if doc == nil {
		return nil
	}
	return NewCamera(doc.X, doc.Y, doc.Angle, doc.FOV)
}
