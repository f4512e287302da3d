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

// Package programloader loads C64 program files. A program file starts with
// the two byte load address, in little-endian order, followed by the data to
// be placed in memory at that address.
//
// Most machine code programs begin with a short BASIC program, the stub, that
// starts the machine code with a SYS command. For example:
//
//	10 SYS2061
//
// The Load() function parses the stub and the Program type records where the
// machine code that follows it begins.
//
//	ld, err := programloader.NewLoader("game.prg")
//	if err != nil {
//		return err
//	}
//	prg, err := ld.Load()
//
// Files can be loaded from the local filesystem or over HTTP.
package programloader
