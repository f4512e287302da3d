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

package instructions

import "fmt"

// Definition defines each instruction in the instruction set; one per opcode.
type Definition struct {
	OpCode         uint8
	Mnemonic       Mnemonic
	AddressingMode AddressingMode
	Cycles         int
	PageSensitive  bool
	Undocumented   bool
}

// String returns a single instruction definition as a string.
func (defn Definition) String() string {
	return fmt.Sprintf("%02x %s +%dbytes (%d cycles) [mode=%s pagesens=%t]", defn.OpCode, defn.Mnemonic, defn.Bytes(), defn.Cycles, defn.AddressingMode, defn.PageSensitive)
}

// Bytes returns the total length of the instruction, including the opcode.
func (defn Definition) Bytes() int {
	return 1 + defn.AddressingMode.OperandBytes()
}

// IsBranch returns true if instruction is a branch instruction.
func (defn Definition) IsBranch() bool {
	return defn.AddressingMode == Relative && defn.Mnemonic.IsBranch()
}

// the opcode table. nil entries are opcodes with no definition.
var table [256]*Definition

func init() {
	table = buildTable(definitions)
}

// buildTable indexes a list of definitions by opcode. if a list contains more
// than one definition for an opcode, the last one in the list is used.
func buildTable(defs []Definition) [256]*Definition {
	var t [256]*Definition
	for i := range defs {
		d := defs[i]
		t[d.OpCode] = &d
	}
	return t
}

// Lookup returns the definition for the opcode. The second return value is
// false if there is no definition for the opcode.
func Lookup(opcode uint8) (Definition, bool) {
	d := table[opcode]
	if d == nil {
		return Definition{}, false
	}
	return *d, true
}

// Count returns the number of opcodes with a definition.
func Count() int {
	n := 0
	for _, d := range table {
		if d != nil {
			n++
		}
	}
	return n
}
