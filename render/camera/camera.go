// This file is part of Babo.
//
// Babo is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Babo is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Babo.  If not, see <https://www.gnu.org/licenses/>.

// Package camera derives the projection and view matrices for a 2D camera.
// The projection maps screen pixels directly to units: (0,0) top-left to
// (width,height) bottom-right, near/far at -1/1.
package camera

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Camera for a 2D scene.
type Camera struct {
	screen   mgl32.Vec2
	position mgl32.Vec2
	zoom     mgl32.Vec2
	rotation float32

	// recomputed only when the screen size changes
	projection mgl32.Mat4
}

// New is the preferred method of initialisation for the Camera type.
func New(width float32, height float32) *Camera {
	cam := &Camera{
		zoom: mgl32.Vec2{1, 1},
	}
	cam.SetScreen(width, height)
	return cam
}

// Projection returns the cached orthographic projection.
func (cam *Camera) Projection() mgl32.Mat4 {
	return cam.projection
}

// View returns the view matrix for the current position, zoom and rotation.
// It is recomputed on every call.
func (cam *Camera) View() mgl32.Mat4 {
	view := mgl32.Ident4()

	// center the camera
	view = view.Mul4(mgl32.Translate3D(cam.screen.X()/2, cam.screen.Y()/2, 0))

	// set the position
	view = view.Mul4(mgl32.Translate3D(-cam.position.X(), -cam.position.Y(), 0))

	// rotate around the camera position. note that the position translation
	// above is repeated here. with a zero rotation the repeat cancels against
	// the translation that follows the rotation, but with a non-zero rotation
	// it shifts the pivot. folding the two translations together changes what
	// existing camera coordinates mean; TestViewDuplicatePositionTranslation
	// pins the current behaviour
	view = view.Mul4(mgl32.Translate3D(-cam.position.X(), -cam.position.Y(), 0))
	view = view.Mul4(mgl32.HomogRotate3DZ(cam.rotation))
	view = view.Mul4(mgl32.Translate3D(cam.position.X(), cam.position.Y(), 0))

	// zoom around the center of the screen
	view = view.Mul4(mgl32.Translate3D(cam.screen.X()/2, cam.screen.Y()/2, 0))
	view = view.Mul4(mgl32.Scale3D(cam.zoom.X(), cam.zoom.Y(), 1))
	view = view.Mul4(mgl32.Translate3D(-cam.screen.X()/2, -cam.screen.Y()/2, 0))

	return view
}

// SetPosition of the camera.
func (cam *Camera) SetPosition(position mgl32.Vec2) {
	cam.position = position
}

// SetZoom factors for the camera. The default is (1,1).
func (cam *Camera) SetZoom(zoom mgl32.Vec2) {
	cam.zoom = zoom
}

// SetRotation of the camera in radians.
func (cam *Camera) SetRotation(rotation float32) {
	cam.rotation = rotation
}

// SetScreen size in pixels. The orthographic projection is recomputed.
func (cam *Camera) SetScreen(width float32, height float32) {
	cam.screen = mgl32.Vec2{width, height}
	cam.projection = mgl32.Ortho(0, width, height, 0, -1, 1)
}
