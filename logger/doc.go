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

// Package logger is the central log for the application. There is only one
// log and the package level functions are used to access it.
//
// Log entries are tagged with the sub-system they originate from (eg.
// "shader", "font") and consecutive identical entries are compressed into a
// single entry with a repeat count.
package logger
