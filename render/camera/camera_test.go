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

package camera_test

import (
	"testing"

	"github.com/baboengine/babo/render/camera"
	"github.com/baboengine/babo/test"
	"github.com/go-gl/mathgl/mgl32"
)

func TestProjection(t *testing.T) {
	cam := camera.New(800, 600)
	test.EquateMat4(t, cam.Projection(), mgl32.Ortho(0, 800, 600, 0, -1, 1))
}

func TestSetScreenRecomputesProjection(t *testing.T) {
	cam := camera.New(800, 600)
	before := cam.Projection()

	// position changes never touch the projection
	cam.SetPosition(mgl32.Vec2{100, 50})
	test.EquateMat4(t, cam.Projection(), before)

	cam.SetScreen(1280, 720)
	test.EquateMat4(t, cam.Projection(), mgl32.Ortho(0, 1280, 720, 0, -1, 1))
}

func TestViewDefaultIsPureTranslation(t *testing.T) {
	cam := camera.New(800, 600)
	cam.SetPosition(mgl32.Vec2{100, 50})

	// with no rotation and unity zoom the view collapses to a translation by
	// the negated position, offset by the screen-centering translation
	expected := mgl32.Translate3D(400-100, 300-50, 0)
	test.EquateMat4(t, cam.View(), expected)
}

func TestViewDuplicatePositionTranslation(t *testing.T) {
	cam := camera.New(800, 600)
	cam.SetPosition(mgl32.Vec2{100, 50})
	cam.SetRotation(0.5)
	cam.SetZoom(mgl32.Vec2{2, 3})

	pos := mgl32.Vec2{100, 50}

	// the full composition, with the position translation applied twice
	expected := mgl32.Ident4().
		Mul4(mgl32.Translate3D(400, 300, 0)).
		Mul4(mgl32.Translate3D(-pos.X(), -pos.Y(), 0)).
		Mul4(mgl32.Translate3D(-pos.X(), -pos.Y(), 0)).
		Mul4(mgl32.HomogRotate3DZ(0.5)).
		Mul4(mgl32.Translate3D(pos.X(), pos.Y(), 0)).
		Mul4(mgl32.Translate3D(400, 300, 0)).
		Mul4(mgl32.Scale3D(2, 3, 1)).
		Mul4(mgl32.Translate3D(-400, -300, 0))
	test.EquateMat4(t, cam.View(), expected)

	// the composition without the duplicated translation is a different
	// matrix. this test fails if the duplication is ever removed
	single := mgl32.Ident4().
		Mul4(mgl32.Translate3D(400, 300, 0)).
		Mul4(mgl32.Translate3D(-pos.X(), -pos.Y(), 0)).
		Mul4(mgl32.HomogRotate3DZ(0.5)).
		Mul4(mgl32.Translate3D(pos.X(), pos.Y(), 0)).
		Mul4(mgl32.Translate3D(400, 300, 0)).
		Mul4(mgl32.Scale3D(2, 3, 1)).
		Mul4(mgl32.Translate3D(-400, -300, 0))

	if cam.View().ApproxEqualThreshold(single, 1e-4) {
		t.Errorf("view no longer applies the position translation twice")
	}
}

func TestViewPositionComponentUnaffectedBySetScreen(t *testing.T) {
	cam := camera.New(800, 600)
	cam.SetPosition(mgl32.Vec2{100, 50})

	// the position-dependent component of the view is the offset from the
	// screen-centering translation. it must not move when the screen changes
	a := cam.View()
	aOffset := mgl32.Vec2{a.At(0, 3) - 400, a.At(1, 3) - 300}

	cam.SetScreen(1280, 720)
	b := cam.View()
	bOffset := mgl32.Vec2{b.At(0, 3) - 640, b.At(1, 3) - 360}

	test.EquateFloat32(t, aOffset.X(), bOffset.X())
	test.EquateFloat32(t, aOffset.Y(), bOffset.Y())
}
