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

package d64

// Sentinal error patterns.
const (
	InvalidImage  = "d64: invalid disk image (%d bytes)"
	InvalidSector = "d64: invalid track/sector (%d/%d)"
	FileNotFound  = "d64: file not found (%s)"
	AmbiguousName = "d64: ambiguous file name (%s matches %d files)"
	ChainLoop     = "d64: sector chain loops at %d/%d"
)
