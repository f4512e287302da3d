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

// Package symbols keeps track of address symbols for the disassembly. The
// tables are populated with the canonical names of the C64 hardware registers,
// the system vectors and the kernal jump table. Further symbols can be loaded
// from a symbols file with ReadSymbolsFile().
//
// There are separate tables for addresses that are read and addresses that
// are written. Many of the C64 registers have the same meaning when read or
// written but some, like the SID voice registers, are write-only.
package symbols
