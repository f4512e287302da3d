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

// Package modalflag wraps the flag package of the standard library. It adds
// program modes, where each mode can have its own set of flags and arguments.
//
// Arguments are given to NewArgs() and then consumed by one or more calls to
// Parse(). Between calls to Parse() the NewMode() function resets the flags
// and sub-modes that are expected:
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("DISASM", "MONITOR", "DISK")
//
//	p, err := md.Parse()
//	switch p {
//	case modalflag.ParseHelp:
//		return
//	case modalflag.ParseError:
//		return err
//	}
//
//	switch md.Mode() {
//	case "DISK":
//		md.NewMode()
//		list := md.AddBool("list", false, "list disk directory")
//		...
//	}
//
// The first sub-mode given to AddSubModes() is the default mode. The default
// mode is selected when the first argument after the flags is not one of the
// listed modes. Sub-mode comparisons are case insensitive.
//
// Once a mode has been parsed, the non-flag arguments are available with the
// RemainingArgs() and GetArg() functions.
package modalflag
