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

package main

import (
	"flag"
	"fmt"
	"math"
	"os"

	"github.com/baboengine/babo/performance/limiter"
	"github.com/baboengine/babo/render/camera"
	"github.com/baboengine/babo/render/font"
	"github.com/baboengine/babo/render/sprite"
	"github.com/baboengine/babo/render/texture"
	"github.com/baboengine/babo/statsview"
	"github.com/baboengine/babo/window"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/veandco/go-sdl2/sdl"
)

// #mainthread
func main() {
	width := flag.Int("width", 1280, "window width")
	height := flag.Int("height", 720, "window height")
	texturePath := flag.String("texture", "assets/textures/babo.png", "sprite texture")
	fontPath := flag.String("font", "assets/fonts/arcade.ttf", "TTF/OTF font for text")
	fontSize := flag.Uint("fontsize", 24, "font pixel size")
	fps := flag.Int("fps", 60, "frame rate limit")
	stats := flag.Bool("statsview", false, "run stats server")
	flag.Parse()

	if *stats {
		if statsview.Available() {
			statsview.Launch(os.Stdout)
		} else {
			fmt.Println("statsview not supported in this build")
		}
	}

	if err := run(int32(*width), int32(*height), *texturePath, *fontPath,
		uint32(*fontSize), *fps); err != nil {
		fmt.Printf("* %v\n", err)
		os.Exit(10)
	}
}

func run(width int32, height int32, texturePath string, fontPath string,
	fontSize uint32, fps int) error {

	win, err := window.New(width, height, "Babo Engine: v0.0.1")
	if err != nil {
		return err
	}
	defer win.Destroy()

	cam := camera.New(float32(width), float32(height))

	sprites, err := sprite.New()
	if err != nil {
		return err
	}
	defer sprites.Destroy()

	tex, err := texture.NewFromFile(texturePath)
	if err != nil {
		return err
	}
	defer tex.Destroy()

	text, err := font.NewRenderer()
	if err != nil {
		return err
	}
	defer text.Destroy()

	fnt, err := text.LoadFont(fontPath, fontSize)
	if err != nil {
		return err
	}
	defer fnt.Destroy()

	lim, err := limiter.NewFPSLimiter(fps)
	if err != nil {
		return err
	}

	texSize := mgl32.Vec2{float32(tex.Width()), float32(tex.Height())}

	position := mgl32.Vec3{0.0, 0.0, 1.0}
	rotation := float32(0.0)

	bigBoyPosition := mgl32.Vec3{128.0, 0.0, 1.0}
	bigBoyRotation := float32(0.0)

	for win.Running() {
		for _, ev := range win.Events() {
			switch ev := ev.(type) {
			case *sdl.QuitEvent:
				win.Stop()
			case *sdl.KeyboardEvent:
				if ev.Type != sdl.KEYDOWN {
					continue
				}
				switch ev.Keysym.Sym {
				case sdl.K_ESCAPE:
					win.Stop()
				case sdl.K_UP:
					fps++
					lim.SetLimit(fps)
				case sdl.K_DOWN:
					if fps > 1 {
						fps--
						lim.SetLimit(fps)
					}
				}
			}
		}

		position = position.Add(mgl32.Vec3{1.0, 0.4, 0.0})
		rotation += 0.01
		bigBoyRotation -= 0.005

		// keep the camera centered on the sprite
		cam.SetPosition(position.Vec2().Add(texSize.Mul(0.5)))

		win.Clear(float32(math.Sin(float64(rotation)*math.Pi*2.0)), 0.25, 0.25)

		err = sprites.Draw(tex, cam.Projection(), cam.View(),
			bigBoyPosition, mgl32.Vec2{720.0, 720.0}, bigBoyRotation,
			mgl32.Vec3{1.0, 1.0, 1.0})
		if err != nil {
			return err
		}

		err = sprites.Draw(tex, cam.Projection(), cam.View(),
			position, texSize, rotation,
			mgl32.Vec3{1.0, 1.0, 1.0})
		if err != nil {
			return err
		}

		err = text.Draw(fnt, "Babo Engine", 25.0, 50.0, 1.0,
			mgl32.Vec3{1.0, 1.0, 1.0})
		if err != nil {
			return err
		}

		win.Present()

		// don't stall the loop if the frame already took longer than the limit
		if !lim.HasWaited() {
			lim.Wait()
		}
	}

	return nil
}
