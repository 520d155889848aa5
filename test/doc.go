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

// Package test contains helper functions to remove common boilerplate to make
// testing easier.
//
// The ExpectedFailure and ExpectedSuccess functions test for failure and
// success under generic conditions. The documentation for those functions
// describe the currently supported types.
//
// Note how the "Expected" functions handle the nil type: nil is considered a
// success. Because of how errors work in Go (nil indicating no error) we
// *need* to interpret nil in this way.
//
// The Equate() function compares like-typed variables for equality. The
// EquateMat4() and EquateFloat32() functions compare within a tolerance,
// which is what we want when comparing the products of matrix compositions.
package test
