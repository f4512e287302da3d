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

package instructions_test

import (
	"testing"

	"github.com/jetsetilly/dis64/instructions"
	"github.com/jetsetilly/dis64/test"
)

func TestTableCompleteness(t *testing.T) {
	test.ExpectEquality(t, instructions.Count(), 256)

	for i := range 256 {
		defn, ok := instructions.Lookup(uint8(i))
		test.DemandSuccess(t, ok)
		test.ExpectEquality(t, defn.OpCode, uint8(i))
		test.ExpectEquality(t, defn.Bytes() >= 1 && defn.Bytes() <= 3, true)
	}
}

func TestLookup(t *testing.T) {
	defn, ok := instructions.Lookup(0xa9)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, defn.Mnemonic, instructions.LDA)
	test.ExpectEquality(t, defn.AddressingMode, instructions.Immediate)
	test.ExpectEquality(t, defn.Bytes(), 2)
	test.ExpectFailure(t, defn.Undocumented)

	defn, _ = instructions.Lookup(0x20)
	test.ExpectEquality(t, defn.Mnemonic, instructions.JSR)
	test.ExpectEquality(t, defn.AddressingMode, instructions.Absolute)
	test.ExpectEquality(t, defn.Bytes(), 3)
	test.ExpectEquality(t, defn.Cycles, 6)

	defn, _ = instructions.Lookup(0x6c)
	test.ExpectEquality(t, defn.Mnemonic, instructions.JMP)
	test.ExpectEquality(t, defn.AddressingMode, instructions.Indirect)

	defn, _ = instructions.Lookup(0x90)
	test.ExpectEquality(t, defn.Mnemonic, instructions.BCC)
	test.ExpectSuccess(t, defn.IsBranch())
	test.ExpectEquality(t, defn.Bytes(), 2)

	defn, _ = instructions.Lookup(0x00)
	test.ExpectEquality(t, defn.Mnemonic, instructions.BRK)
	test.ExpectEquality(t, defn.Bytes(), 1)
}

func TestUndocumented(t *testing.T) {
	defn, _ := instructions.Lookup(0x02)
	test.ExpectEquality(t, defn.Mnemonic, instructions.JAM)
	test.ExpectSuccess(t, defn.Undocumented)

	defn, _ = instructions.Lookup(0x07)
	test.ExpectEquality(t, defn.Mnemonic, instructions.SLO)
	test.ExpectSuccess(t, defn.Undocumented)

	// the duplicate of SBC immediate
	defn, _ = instructions.Lookup(0xeb)
	test.ExpectEquality(t, defn.Mnemonic, instructions.SBC)
	test.ExpectSuccess(t, defn.Undocumented)

	// count documented opcodes. the NMOS 6502 has 151 of them
	var documented int
	for i := range 256 {
		defn, _ := instructions.Lookup(uint8(i))
		if !defn.Undocumented {
			documented++
		}
	}
	test.ExpectEquality(t, documented, 151)
}

func TestMnemonics(t *testing.T) {
	test.ExpectEquality(t, instructions.LDA.String(), "LDA")
	test.ExpectEquality(t, instructions.TAS.String(), "TAS")
	test.ExpectEquality(t, instructions.Mnemonic(-1).String(), "???")
	test.ExpectEquality(t, instructions.Mnemonic(1000).String(), "???")

	for _, m := range []instructions.Mnemonic{
		instructions.BCC, instructions.BCS, instructions.BEQ, instructions.BMI,
		instructions.BNE, instructions.BPL, instructions.BVC, instructions.BVS,
	} {
		test.ExpectSuccess(t, m.IsBranch(), m)
		test.ExpectSuccess(t, m.IsJump(), m)
	}

	test.ExpectSuccess(t, instructions.JMP.IsJump())
	test.ExpectSuccess(t, instructions.JSR.IsJump())
	test.ExpectFailure(t, instructions.JMP.IsBranch())
	test.ExpectFailure(t, instructions.BRK.IsJump())
	test.ExpectFailure(t, instructions.RTS.IsJump())

	test.ExpectSuccess(t, instructions.RTS.IsReturn())
	test.ExpectSuccess(t, instructions.RTI.IsReturn())
	test.ExpectFailure(t, instructions.BRK.IsReturn())
}

func TestDecorate(t *testing.T) {
	test.ExpectEquality(t, instructions.Implied.Decorate("$10"), "")
	test.ExpectEquality(t, instructions.Accumulator.Decorate("$10"), "")
	test.ExpectEquality(t, instructions.Immediate.Decorate("$10"), "#$10")
	test.ExpectEquality(t, instructions.ZeroPage.Decorate("$10"), "$10")
	test.ExpectEquality(t, instructions.Absolute.Decorate("$1000"), "$1000")
	test.ExpectEquality(t, instructions.Indirect.Decorate("$1000"), "($1000)")
	test.ExpectEquality(t, instructions.IndexedIndirect.Decorate("$fb"), "($fb,X)")
	test.ExpectEquality(t, instructions.IndirectIndexed.Decorate("$fb"), "($fb),Y")
	test.ExpectEquality(t, instructions.AbsoluteIndexedX.Decorate("$1000"), "$1000,X")
	test.ExpectEquality(t, instructions.ZeroPageIndexedY.Decorate("$10"), "$10,Y")
}

func TestOperandBytes(t *testing.T) {
	test.ExpectEquality(t, instructions.Implied.OperandBytes(), 0)
	test.ExpectEquality(t, instructions.Relative.OperandBytes(), 1)
	test.ExpectEquality(t, instructions.IndirectIndexed.OperandBytes(), 1)
	test.ExpectEquality(t, instructions.Indirect.OperandBytes(), 2)
	test.ExpectEquality(t, instructions.AbsoluteIndexedY.OperandBytes(), 2)
}
