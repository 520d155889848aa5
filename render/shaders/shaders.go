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

// Package shaders embeds the GLSL sources for the fixed sprite and font
// pipelines. The sources are build-time constants, not runtime-configurable.
package shaders

import _ "embed"

//go:embed "sprite.vert"
var SpriteVertexShader []byte

//go:embed "sprite.frag"
var SpriteFragmentShader []byte

//go:embed "font.vert"
var FontVertexShader []byte

//go:embed "font.frag"
var FontFragmentShader []byte
