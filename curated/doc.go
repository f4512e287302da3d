// This file is part of Dis64.
//
// Dis64 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Dis64 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Dis64.  If not, see <https://www.gnu.org/licenses/>.

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface and are created with the
// Errorf() function, which takes a formatting pattern and placeholder values.
//
// The pattern is what identifies the error. Patterns that a caller may want to
// test for are stored as exported const strings in the package that creates
// the error. For example, the programloader package:
//
//	const NoSysToken = "programloader: no SYS token in BASIC stub"
//
//	if curated.Is(err, programloader.NoSysToken) {
//		...
//	}
//
// The Has() function is similar to Is() but checks if a pattern occurs
// somewhere in the error chain.
//
// The Error() implementation normalises the error chain so that it does not
// contain duplicate adjacent parts. The practical advantage is that wrapping
// an error with a pattern that begins with the same prefix does not result in
// messages like "d64: d64: track out of range".
package curated
