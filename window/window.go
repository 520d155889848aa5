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

// Package window owns the SDL window and the GL context. The context is
// created and made current on the calling goroutine, which is locked to its
// OS thread; every rendering call must happen on that thread.
package window

import (
	"fmt"
	"runtime"

	"github.com/baboengine/babo/logger"
	"github.com/go-gl/gl/v3.2-core/gl"
	"github.com/veandco/go-sdl2/sdl"
)

// Window is the host for a GL rendering context.
type Window struct {
	window    *sdl.Window
	glContext sdl.GLContext
	running   bool
}

// New is the preferred method of initialisation for the Window type.
func New(width int32, height int32, title string) (*Window, error) {
	runtime.LockOSThread()

	err := sdl.Init(sdl.INIT_VIDEO)
	if err != nil {
		return nil, fmt.Errorf("window: failed to initialize SDL2: %v", err)
	}

	window, err := sdl.CreateWindow(title,
		sdl.WINDOWPOS_CENTERED, sdl.WINDOWPOS_CENTERED,
		width, height, sdl.WINDOW_OPENGL)
	if err != nil {
		sdl.Quit()
		return nil, fmt.Errorf("window: failed to create window: %v", err)
	}

	win := &Window{
		window:  window,
		running: true,
	}

	_ = sdl.GLSetAttribute(sdl.GL_CONTEXT_MAJOR_VERSION, 3)
	_ = sdl.GLSetAttribute(sdl.GL_CONTEXT_MINOR_VERSION, 2)
	_ = sdl.GLSetAttribute(sdl.GL_CONTEXT_FLAGS, sdl.GL_CONTEXT_FORWARD_COMPATIBLE_FLAG)
	_ = sdl.GLSetAttribute(sdl.GL_CONTEXT_PROFILE_MASK, sdl.GL_CONTEXT_PROFILE_CORE)
	_ = sdl.GLSetAttribute(sdl.GL_DOUBLEBUFFER, 1)

	win.glContext, err = window.GLCreateContext()
	if err != nil {
		win.Destroy()
		return nil, fmt.Errorf("window: failed to create OpenGL context: %v", err)
	}
	err = window.GLMakeCurrent(win.glContext)
	if err != nil {
		win.Destroy()
		return nil, fmt.Errorf("window: failed to set current OpenGL context: %v", err)
	}

	_ = sdl.GLSetSwapInterval(1)

	err = gl.Init()
	if err != nil {
		win.Destroy()
		return nil, fmt.Errorf("window: %v", err)
	}

	// log GPU vendor information
	logger.Logf("window", "vendor: %s", gl.GoStr(gl.GetString(gl.VENDOR)))
	logger.Logf("window", "renderer: %s", gl.GoStr(gl.GetString(gl.RENDERER)))
	logger.Logf("window", "driver: %s", gl.GoStr(gl.GetString(gl.VERSION)))

	return win, nil
}

// Destroy cleans up the window resources.
func (win *Window) Destroy() {
	if win.glContext != nil {
		sdl.GLDeleteContext(win.glContext)
		win.glContext = nil
	}
	if win.window != nil {
		_ = win.window.Destroy()
		win.window = nil
	}
	sdl.Quit()
}

// Size of the window in pixels.
func (win *Window) Size() (int32, int32) {
	return win.window.GetSize()
}

// SetTitle of the window.
func (win *Window) SetTitle(title string) {
	win.window.SetTitle(title)
}

// Running returns false once Stop() has been called.
func (win *Window) Running() bool {
	return win.running
}

// Stop the window's frame loop. The caller's loop is expected to check
// Running() once per frame.
func (win *Window) Stop() {
	win.running = false
}

// Events drains and returns all pending window events since the last call.
// Never blocks.
func (win *Window) Events() []sdl.Event {
	var events []sdl.Event
	for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
		events = append(events, ev)
	}
	return events
}

// Clear the framebuffer to the given color.
func (win *Window) Clear(r float32, g float32, b float32) {
	gl.ClearColor(r, g, b, 1.0)
	gl.Clear(gl.COLOR_BUFFER_BIT)
}

// Present performs the buffer swap.
func (win *Window) Present() {
	win.window.GLSwap()
}
