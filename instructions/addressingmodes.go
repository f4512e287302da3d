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

// AddressingMode describes the method data for the instruction should be
// received. The set is closed and every switch over it in the project is
// expected to be exhaustive.
type AddressingMode int

// List of supported addressing modes.
const (
	Implied AddressingMode = iota
	Accumulator
	Immediate
	Relative // relative addressing is used for branch instructions

	Absolute // abs
	ZeroPage // zpg
	Indirect // ind (JMP only)

	IndexedIndirect // (zpg,X)
	IndirectIndexed // (zpg),Y

	AbsoluteIndexedX // abs,X
	AbsoluteIndexedY // abs,Y

	ZeroPageIndexedX // zpg,X
	ZeroPageIndexedY // zpg,Y
)

func (m AddressingMode) String() string {
	switch m {
	case Implied:
		return "Implied"
	case Accumulator:
		return "Accumulator"
	case Immediate:
		return "Immediate"
	case Relative:
		return "Relative"
	case Absolute:
		return "Absolute"
	case ZeroPage:
		return "ZeroPage"
	case Indirect:
		return "Indirect"
	case IndexedIndirect:
		return "IndexedIndirect"
	case IndirectIndexed:
		return "IndirectIndexed"
	case AbsoluteIndexedX:
		return "AbsoluteIndexedX"
	case AbsoluteIndexedY:
		return "AbsoluteIndexedY"
	case ZeroPageIndexedX:
		return "ZeroPageIndexedX"
	case ZeroPageIndexedY:
		return "ZeroPageIndexedY"
	}
	return "unknown addressing mode"
}

// OperandBytes returns the number of bytes that follow the opcode byte for
// an instruction using the addressing mode.
func (m AddressingMode) OperandBytes() int {
	switch m {
	case Implied, Accumulator:
		return 0
	case Immediate, ZeroPage, ZeroPageIndexedX, ZeroPageIndexedY,
		IndexedIndirect, IndirectIndexed, Relative:
		return 1
	case Absolute, AbsoluteIndexedX, AbsoluteIndexedY, Indirect:
		return 2
	}
	return 0
}

// Decorate adds addressing mode indicators to an already formatted operand.
// For example, the operand "$fb" in IndirectIndexed mode is returned as
// "($fb),Y".
//
// Implied and Accumulator instructions have no operand and the empty string
// is returned whatever the value of the operand argument.
func (m AddressingMode) Decorate(operand string) string {
	switch m {
	case Implied, Accumulator:
		return ""
	case Immediate:
		return "#" + operand
	case Relative, Absolute, ZeroPage:
		return operand
	case Indirect:
		return "(" + operand + ")"
	case IndexedIndirect:
		return "(" + operand + ",X)"
	case IndirectIndexed:
		return "(" + operand + "),Y"
	case AbsoluteIndexedX, ZeroPageIndexedX:
		return operand + ",X"
	case AbsoluteIndexedY, ZeroPageIndexedY:
		return operand + ",Y"
	}
	return operand
}
