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

package glcheck

import (
	"fmt"

	"github.com/go-gl/gl/v3.2-core/gl"
)

// Error is the result of a failed GL call. Method is the name of the GL
// function as it appears in the C API, without the gl prefix.
type Error struct {
	Method string
	Code   uint32
	Reason string
}

func (e *Error) Error() string {
	return fmt.Sprintf("graphics error %q (code %d): %s", e.Method, e.Code, e.Reason)
}

// Reason translates a GL error code into a human-readable string. Codes
// outside the closed set defined by the GL specification translate to
// "unknown error".
func Reason(code uint32) string {
	switch code {
	case gl.INVALID_ENUM:
		return "invalid enum"
	case gl.INVALID_VALUE:
		return "invalid value"
	case gl.INVALID_OPERATION:
		return "invalid operation"
	case gl.INVALID_FRAMEBUFFER_OPERATION:
		return "invalid framebuffer operation"
	case gl.OUT_OF_MEMORY:
		return "out of memory"
	}
	return "unknown error"
}

// getError is replaced during testing. there is no other reason for the
// indirection
var getError = gl.GetError

// Check drains the GL error queue. If the queue was not empty an Error
// carrying the first drained code is returned, attributed to method.
func Check(method string) error {
	code := getError()
	if code == gl.NO_ERROR {
		return nil
	}

	// one error may hide others. drain the queue so the next Check starts
	// clean
	for getError() != gl.NO_ERROR {
	}

	return &Error{Method: method, Code: code, Reason: Reason(code)}
}

// Call invokes fn and then checks the GL error queue as described in the
// Check function.
func Call(method string, fn func()) error {
	fn()
	return Check(method)
}
