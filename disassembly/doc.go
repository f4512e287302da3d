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

// Package disassembly turns a flat memory image of 6502/6510 machine code into
// an annotated list of entries.
//
// The disassembly is produced by a series of passes over the image. The first
// pass decodes the image into entries in address order. Every entry is then
// annotated with a comment where a common idiom is recognised, including the
// installation of an interrupt handler. The linking pass resolves the target
// address of every jump, branch and subroutine call to the entry at that
// address and records a back-reference on the target. Finally every entry
// with at least one back-reference is given a label.
//
// Decoding never fails. Unknown opcodes, truncated operands and targets that
// cannot be resolved are all expressed in the resulting entries.
//
// The Write() function prints the disassembly as assembly source.
package disassembly
