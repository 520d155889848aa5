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

// Package glcheck wraps raw OpenGL calls so that the error state of the GL
// context is checked after every call. It is the only place in the project
// where a raw GL failure becomes a Go error.
//
// The GL error queue accumulates until it is queried. A call to Check() or
// Call() therefore consumes every error raised since the previous check,
// not just the error (if any) raised by the immediately preceding GL call.
package glcheck
