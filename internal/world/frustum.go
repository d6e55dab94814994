package world

import (
	"rigidsim/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Frustum holds the six clip planes of a camera: left, right, bottom, top,
// near, far. Normals point inwards.
type Frustum struct {
	planes [6]clipPlane
}

// clipPlane is n·p + d = 0.
type clipPlane struct {
	normal rl.Vector3
	d      float32
}

// Clip distances used for culling; wide enough for the demo scenes.
const (
	nearClip float32 = 0.1
	farClip  float32 = 1000.0
)

// ExtractFrustum builds the frustum for camera at the given aspect ratio.
func ExtractFrustum(camera rl.Camera3D, aspect float32) Frustum {
	view := rl.GetCameraMatrix(camera)

	var proj rl.Matrix
	if camera.Projection == rl.CameraPerspective {
		proj = rl.MatrixPerspective(camera.Fovy*rl.Deg2rad, aspect, nearClip, farClip)
	} else {
		halfH := camera.Fovy / 2
		halfW := halfH * aspect
		proj = rl.MatrixOrtho(-halfW, halfW, -halfH, halfH, nearClip, farClip)
	}
	return frustumFromMatrix(rl.MatrixMultiply(view, proj))
}

// frustumFromMatrix reads the planes off a view-projection matrix
// (Gribb/Hartmann): each plane is the fourth row plus or minus another row.
func frustumFromMatrix(m rl.Matrix) Frustum {
	rows := [4][4]float32{
		{m.M0, m.M4, m.M8, m.M12},
		{m.M1, m.M5, m.M9, m.M13},
		{m.M2, m.M6, m.M10, m.M14},
		{m.M3, m.M7, m.M11, m.M15},
	}
	w := rows[3]

	var f Frustum
	for axis := 0; axis < 3; axis++ {
		r := rows[axis]
		for side, sign := range [2]float32{1, -1} {
			f.planes[axis*2+side] = normalizeClipPlane(clipPlane{
				normal: rl.Vector3{X: w[0] + sign*r[0], Y: w[1] + sign*r[1], Z: w[2] + sign*r[2]},
				d:      w[3] + sign*r[3],
			})
		}
	}
	return f
}

func normalizeClipPlane(p clipPlane) clipPlane {
	length := rl.Vector3Length(p.normal)
	if length == 0 {
		return p
	}
	return clipPlane{normal: rl.Vector3Scale(p.normal, 1/length), d: p.d / length}
}

func (p clipPlane) distance(point rl.Vector3) float32 {
	return rl.Vector3DotProduct(p.normal, point) + p.d
}

// ContainsSphere reports whether any part of the sphere is inside.
func (f *Frustum) ContainsSphere(center rl.Vector3, radius float32) bool {
	for _, p := range f.planes {
		if p.distance(center) < -radius {
			return false
		}
	}
	return true
}

func (f *Frustum) ContainsPoint(point rl.Vector3) bool {
	for _, p := range f.planes {
		if p.distance(point) < 0 {
			return false
		}
	}
	return true
}

// ContainsAABB is a conservative test using the box's bounding sphere.
func (f *Frustum) ContainsAABB(box physics.AABB) bool {
	if box.IsEmpty() {
		return false
	}
	return f.ContainsSphere(box.Center(), box.Radius())
}
