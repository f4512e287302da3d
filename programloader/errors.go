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

package programloader

// Sentinal error patterns.
const (
	UnsupportedFormat = "programloader: unsupported file format (%s)"
	FileTooSmall      = "programloader: file too small (%d bytes)"
	NoSYS             = "programloader: no SYS command in BASIC stub"
	TooLarge          = "programloader: program does not fit in memory (%d bytes at $%04x)"
)
