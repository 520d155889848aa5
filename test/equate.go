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

package test

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

// Equate is used to test equality between one value and another. Generally,
// both values must be of the same type but if a is of type uint32, b can be
// uint32 or int. The reason for this is that a literal number value is of
// type int. It is very convenient to write something like this, without
// having to cast the expected number value:
//
//	var handle uint32
//	handle = someFunction()
//	test.Equate(t, handle, 10)
//
// This is by no means a comprehensive comparison function. It is however,
// good enough.
func Equate(t *testing.T, value, expectedValue interface{}) {
	t.Helper()

	switch v := value.(type) {
	default:
		t.Fatalf("unhandled type for Equate() function (%T))", v)

	case nil:
		if expectedValue != nil {
			t.Errorf("equation of type %T failed (%v  - wanted nil)", v, v)
		}

	case int:
		switch ev := expectedValue.(type) {
		case int:
			if v != ev {
				t.Errorf("equation of type %T failed (%d  - wanted %d)", v, v, ev)
			}
		default:
			t.Fatalf("values for Equate() are not the same type (%T and %T)", v, expectedValue)
		}

	case uint32:
		switch ev := expectedValue.(type) {
		case int:
			if v != uint32(ev) {
				t.Errorf("equation of type %T failed (%d  - wanted %d)", v, v, ev)
			}
		case uint32:
			if v != ev {
				t.Errorf("equation of type %T failed (%d  - wanted %d)", v, v, ev)
			}
		default:
			t.Fatalf("values for Equate() are not compatible (%T and %T)", v, ev)
		}

	case rune:
		switch ev := expectedValue.(type) {
		case rune:
			if v != ev {
				t.Errorf("equation of type %T failed (%q  - wanted %q)", v, v, ev)
			}
		default:
			t.Fatalf("values for Equate() are not the same type (%T and %T)", v, expectedValue)
		}

	case float32:
		switch ev := expectedValue.(type) {
		case float32:
			if v != ev {
				t.Errorf("equation of type %T failed (%f  - wanted %f)", v, v, ev)
			}
		default:
			t.Fatalf("values for Equate() are not the same type (%T and %T)", v, expectedValue)
		}

	case string:
		switch ev := expectedValue.(type) {
		case string:
			if v != ev {
				t.Errorf("equation of type %T failed (%s  - wanted %s)", v, v, ev)
			}
		default:
			t.Fatalf("values for Equate() are not the same type (%T and %T)", v, expectedValue)
		}

	case bool:
		switch ev := expectedValue.(type) {
		case bool:
			if v != ev {
				t.Errorf("equation of type %T failed (%v  - wanted %v)", v, v, ev)
			}
		default:
			t.Fatalf("values for Equate() are not the same type (%T and %T)", v, expectedValue)
		}
	}
}

// tolerance for floating point comparison. products of matrix compositions
// accumulate error beyond float32 epsilon
const tolerance = 1e-4

// EquateFloat32 compares two float32 values within a fixed tolerance.
func EquateFloat32(t *testing.T, value, expectedValue float32) {
	t.Helper()

	if math.Abs(float64(value-expectedValue)) > tolerance {
		t.Errorf("equation of type float32 failed (%f  - wanted %f)", value, expectedValue)
	}
}

// EquateMat4 compares two mgl32 matrices element-wise within a fixed
// tolerance.
func EquateMat4(t *testing.T, value, expectedValue mgl32.Mat4) {
	t.Helper()

	for i := 0; i < 16; i++ {
		if math.Abs(float64(value[i]-expectedValue[i])) > tolerance {
			t.Errorf("matrix equation failed at element %d (%f  - wanted %f)\ngot:\n%v\nwanted:\n%v",
				i, value[i], expectedValue[i], value, expectedValue)
			return
		}
	}
}
