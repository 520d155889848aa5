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

package shader

import "fmt"

// CompileError is returned when a shader stage fails to compile. Log is the
// diagnostic text produced by the GLSL compiler.
type CompileError struct {
	Log string
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("compilation failed: %s", e.Log)
}

// LinkError is returned when a program fails to link. Log is the diagnostic
// text produced by the GLSL linker.
type LinkError struct {
	Log string
}

func (e *LinkError) Error() string {
	return fmt.Sprintf("linking failed: %s", e.Log)
}

// UniformNotFoundError is returned when a uniform name cannot be resolved in
// the linked program. This is a reportable rather than fatal condition;
// callers may log it and continue.
type UniformNotFoundError struct {
	Name string
}

func (e *UniformNotFoundError) Error() string {
	return fmt.Sprintf("uniform not found: %s", e.Name)
}
