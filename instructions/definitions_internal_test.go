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

import (
	"testing"

	"github.com/jetsetilly/dis64/test"
)

// if a list of definitions includes an opcode more than once then the last
// definition is the one that is used
func TestBuildTableLastWins(t *testing.T) {
	defs := []Definition{
		{OpCode: 0x10, Mnemonic: NOP, AddressingMode: Implied},
		{OpCode: 0x10, Mnemonic: BPL, AddressingMode: Relative},
	}

	tab := buildTable(defs)
	test.DemandSuccess(t, tab[0x10] != nil)
	test.ExpectEquality(t, tab[0x10].Mnemonic, BPL)
	test.ExpectEquality(t, tab[0x11] == nil, true)
}
