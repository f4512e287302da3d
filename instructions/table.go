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

// definitions for every opcode understood by the disassembler. the cycle
// counts of some undocumented opcodes differ from published hardware
// references. they are the values used by the dis64 tool since its first
// version and are left as they are.
var definitions = []Definition{
	{OpCode: 0x69, Mnemonic: ADC, AddressingMode: Immediate, Cycles: 2, PageSensitive: true},
	{OpCode: 0x65, Mnemonic: ADC, AddressingMode: ZeroPage, Cycles: 3, PageSensitive: true},
	{OpCode: 0x75, Mnemonic: ADC, AddressingMode: ZeroPageIndexedX, Cycles: 4, PageSensitive: true},
	{OpCode: 0x6d, Mnemonic: ADC, AddressingMode: Absolute, Cycles: 4, PageSensitive: true},
	{OpCode: 0x7d, Mnemonic: ADC, AddressingMode: AbsoluteIndexedX, Cycles: 4, PageSensitive: true},
	{OpCode: 0x79, Mnemonic: ADC, AddressingMode: AbsoluteIndexedY, Cycles: 4, PageSensitive: true},
	{OpCode: 0x61, Mnemonic: ADC, AddressingMode: IndexedIndirect, Cycles: 6, PageSensitive: true},
	{OpCode: 0x71, Mnemonic: ADC, AddressingMode: IndirectIndexed, Cycles: 5, PageSensitive: true},

	{OpCode: 0x29, Mnemonic: AND, AddressingMode: Immediate, Cycles: 2, PageSensitive: true},
	{OpCode: 0x25, Mnemonic: AND, AddressingMode: ZeroPage, Cycles: 3, PageSensitive: true},
	{OpCode: 0x35, Mnemonic: AND, AddressingMode: ZeroPageIndexedX, Cycles: 4, PageSensitive: true},
	{OpCode: 0x2d, Mnemonic: AND, AddressingMode: Absolute, Cycles: 4, PageSensitive: true},
	{OpCode: 0x3d, Mnemonic: AND, AddressingMode: AbsoluteIndexedX, Cycles: 4, PageSensitive: true},
	{OpCode: 0x39, Mnemonic: AND, AddressingMode: AbsoluteIndexedY, Cycles: 4, PageSensitive: true},
	{OpCode: 0x21, Mnemonic: AND, AddressingMode: IndexedIndirect, Cycles: 6, PageSensitive: true},
	{OpCode: 0x31, Mnemonic: AND, AddressingMode: IndirectIndexed, Cycles: 5, PageSensitive: true},

	{OpCode: 0x0a, Mnemonic: ASL, AddressingMode: Accumulator, Cycles: 2, PageSensitive: false},
	{OpCode: 0x06, Mnemonic: ASL, AddressingMode: ZeroPage, Cycles: 5, PageSensitive: false},
	{OpCode: 0x16, Mnemonic: ASL, AddressingMode: ZeroPageIndexedX, Cycles: 6, PageSensitive: false},
	{OpCode: 0x0e, Mnemonic: ASL, AddressingMode: Absolute, Cycles: 6, PageSensitive: false},
	{OpCode: 0x1e, Mnemonic: ASL, AddressingMode: AbsoluteIndexedX, Cycles: 6, PageSensitive: false},

	{OpCode: 0x90, Mnemonic: BCC, AddressingMode: Relative, Cycles: 4, PageSensitive: true},

	{OpCode: 0xb0, Mnemonic: BCS, AddressingMode: Relative, Cycles: 4, PageSensitive: true},

	{OpCode: 0xf0, Mnemonic: BEQ, AddressingMode: Relative, Cycles: 4, PageSensitive: true},

	{OpCode: 0x24, Mnemonic: BIT, AddressingMode: ZeroPage, Cycles: 3, PageSensitive: false},
	{OpCode: 0x2c, Mnemonic: BIT, AddressingMode: Absolute, Cycles: 4, PageSensitive: false},

	{OpCode: 0x30, Mnemonic: BMI, AddressingMode: Relative, Cycles: 4, PageSensitive: true},

	{OpCode: 0xd0, Mnemonic: BNE, AddressingMode: Relative, Cycles: 4, PageSensitive: true},

	{OpCode: 0x10, Mnemonic: BPL, AddressingMode: Relative, Cycles: 4, PageSensitive: true},

	{OpCode: 0x00, Mnemonic: BRK, AddressingMode: Implied, Cycles: 7, PageSensitive: false},

	{OpCode: 0x50, Mnemonic: BVC, AddressingMode: Relative, Cycles: 4, PageSensitive: true},

	{OpCode: 0x70, Mnemonic: BVS, AddressingMode: Relative, Cycles: 4, PageSensitive: true},

	{OpCode: 0x18, Mnemonic: CLC, AddressingMode: Implied, Cycles: 2, PageSensitive: false},

	{OpCode: 0xd8, Mnemonic: CLD, AddressingMode: Implied, Cycles: 2, PageSensitive: false},

	{OpCode: 0x58, Mnemonic: CLI, AddressingMode: Implied, Cycles: 2, PageSensitive: false},

	{OpCode: 0xb8, Mnemonic: CLV, AddressingMode: Implied, Cycles: 2, PageSensitive: false},

	{OpCode: 0xc9, Mnemonic: CMP, AddressingMode: Immediate, Cycles: 2, PageSensitive: false},
	{OpCode: 0xc5, Mnemonic: CMP, AddressingMode: ZeroPage, Cycles: 3, PageSensitive: false},
	{OpCode: 0xd5, Mnemonic: CMP, AddressingMode: ZeroPageIndexedX, Cycles: 4, PageSensitive: false},
	{OpCode: 0xcd, Mnemonic: CMP, AddressingMode: Absolute, Cycles: 4, PageSensitive: false},
	{OpCode: 0xdd, Mnemonic: CMP, AddressingMode: AbsoluteIndexedX, Cycles: 4, PageSensitive: false},
	{OpCode: 0xd9, Mnemonic: CMP, AddressingMode: AbsoluteIndexedY, Cycles: 4, PageSensitive: false},
	{OpCode: 0xc1, Mnemonic: CMP, AddressingMode: IndexedIndirect, Cycles: 6, PageSensitive: false},
	{OpCode: 0xd1, Mnemonic: CMP, AddressingMode: IndirectIndexed, Cycles: 5, PageSensitive: false},

	{OpCode: 0xe0, Mnemonic: CPX, AddressingMode: Immediate, Cycles: 2, PageSensitive: false},
	{OpCode: 0xe4, Mnemonic: CPX, AddressingMode: ZeroPage, Cycles: 3, PageSensitive: false},
	{OpCode: 0xec, Mnemonic: CPX, AddressingMode: Absolute, Cycles: 4, PageSensitive: false},

	{OpCode: 0xc0, Mnemonic: CPY, AddressingMode: Immediate, Cycles: 2, PageSensitive: false},
	{OpCode: 0xc4, Mnemonic: CPY, AddressingMode: ZeroPage, Cycles: 3, PageSensitive: false},
	{OpCode: 0xcc, Mnemonic: CPY, AddressingMode: Absolute, Cycles: 4, PageSensitive: false},

	{OpCode: 0xc6, Mnemonic: DEC, AddressingMode: ZeroPage, Cycles: 5, PageSensitive: false},
	{OpCode: 0xd6, Mnemonic: DEC, AddressingMode: ZeroPageIndexedX, Cycles: 6, PageSensitive: false},
	{OpCode: 0xce, Mnemonic: DEC, AddressingMode: Absolute, Cycles: 6, PageSensitive: false},
	{OpCode: 0xde, Mnemonic: DEC, AddressingMode: AbsoluteIndexedX, Cycles: 6, PageSensitive: false},

	{OpCode: 0xca, Mnemonic: DEX, AddressingMode: Implied, Cycles: 2, PageSensitive: false},

	{OpCode: 0x88, Mnemonic: DEY, AddressingMode: Implied, Cycles: 2, PageSensitive: false},

	{OpCode: 0x49, Mnemonic: EOR, AddressingMode: Immediate, Cycles: 2, PageSensitive: true},
	{OpCode: 0x45, Mnemonic: EOR, AddressingMode: ZeroPage, Cycles: 3, PageSensitive: true},
	{OpCode: 0x55, Mnemonic: EOR, AddressingMode: ZeroPageIndexedX, Cycles: 4, PageSensitive: true},
	{OpCode: 0x4d, Mnemonic: EOR, AddressingMode: Absolute, Cycles: 4, PageSensitive: true},
	{OpCode: 0x5d, Mnemonic: EOR, AddressingMode: AbsoluteIndexedX, Cycles: 4, PageSensitive: true},
	{OpCode: 0x59, Mnemonic: EOR, AddressingMode: AbsoluteIndexedY, Cycles: 4, PageSensitive: true},
	{OpCode: 0x41, Mnemonic: EOR, AddressingMode: IndexedIndirect, Cycles: 6, PageSensitive: true},
	{OpCode: 0x51, Mnemonic: EOR, AddressingMode: IndirectIndexed, Cycles: 5, PageSensitive: true},

	{OpCode: 0xe6, Mnemonic: INC, AddressingMode: ZeroPage, Cycles: 5, PageSensitive: false},
	{OpCode: 0xf6, Mnemonic: INC, AddressingMode: ZeroPageIndexedX, Cycles: 6, PageSensitive: false},
	{OpCode: 0xee, Mnemonic: INC, AddressingMode: Absolute, Cycles: 6, PageSensitive: false},
	{OpCode: 0xfe, Mnemonic: INC, AddressingMode: AbsoluteIndexedX, Cycles: 6, PageSensitive: false},

	{OpCode: 0xe8, Mnemonic: INX, AddressingMode: Implied, Cycles: 2, PageSensitive: false},

	{OpCode: 0xc8, Mnemonic: INY, AddressingMode: Implied, Cycles: 2, PageSensitive: false},

	{OpCode: 0x4c, Mnemonic: JMP, AddressingMode: Absolute, Cycles: 3, PageSensitive: false},
	{OpCode: 0x6c, Mnemonic: JMP, AddressingMode: Indirect, Cycles: 5, PageSensitive: false},

	{OpCode: 0x20, Mnemonic: JSR, AddressingMode: Absolute, Cycles: 6, PageSensitive: false},

	{OpCode: 0xa9, Mnemonic: LDA, AddressingMode: Immediate, Cycles: 2, PageSensitive: true},
	{OpCode: 0xa5, Mnemonic: LDA, AddressingMode: ZeroPage, Cycles: 3, PageSensitive: true},
	{OpCode: 0xb5, Mnemonic: LDA, AddressingMode: ZeroPageIndexedX, Cycles: 4, PageSensitive: true},
	{OpCode: 0xad, Mnemonic: LDA, AddressingMode: Absolute, Cycles: 4, PageSensitive: true},
	{OpCode: 0xbd, Mnemonic: LDA, AddressingMode: AbsoluteIndexedX, Cycles: 4, PageSensitive: true},
	{OpCode: 0xb9, Mnemonic: LDA, AddressingMode: AbsoluteIndexedY, Cycles: 4, PageSensitive: true},
	{OpCode: 0xa1, Mnemonic: LDA, AddressingMode: IndexedIndirect, Cycles: 6, PageSensitive: true},
	{OpCode: 0xb1, Mnemonic: LDA, AddressingMode: IndirectIndexed, Cycles: 5, PageSensitive: true},

	{OpCode: 0xa2, Mnemonic: LDX, AddressingMode: Immediate, Cycles: 2, PageSensitive: true},
	{OpCode: 0xa6, Mnemonic: LDX, AddressingMode: ZeroPage, Cycles: 3, PageSensitive: true},
	{OpCode: 0xb6, Mnemonic: LDX, AddressingMode: ZeroPageIndexedY, Cycles: 4, PageSensitive: true},
	{OpCode: 0xae, Mnemonic: LDX, AddressingMode: Absolute, Cycles: 4, PageSensitive: true},
	{OpCode: 0xbe, Mnemonic: LDX, AddressingMode: AbsoluteIndexedY, Cycles: 4, PageSensitive: true},

	{OpCode: 0xa0, Mnemonic: LDY, AddressingMode: Immediate, Cycles: 2, PageSensitive: true},
	{OpCode: 0xa4, Mnemonic: LDY, AddressingMode: ZeroPage, Cycles: 3, PageSensitive: true},
	{OpCode: 0xb4, Mnemonic: LDY, AddressingMode: ZeroPageIndexedX, Cycles: 4, PageSensitive: true},
	{OpCode: 0xac, Mnemonic: LDY, AddressingMode: Absolute, Cycles: 4, PageSensitive: true},
	{OpCode: 0xbc, Mnemonic: LDY, AddressingMode: AbsoluteIndexedX, Cycles: 4, PageSensitive: true},

	{OpCode: 0x4a, Mnemonic: LSR, AddressingMode: Accumulator, Cycles: 2, PageSensitive: false},
	{OpCode: 0x46, Mnemonic: LSR, AddressingMode: ZeroPage, Cycles: 5, PageSensitive: false},
	{OpCode: 0x56, Mnemonic: LSR, AddressingMode: ZeroPageIndexedX, Cycles: 6, PageSensitive: false},
	{OpCode: 0x4e, Mnemonic: LSR, AddressingMode: Absolute, Cycles: 6, PageSensitive: false},
	{OpCode: 0x5e, Mnemonic: LSR, AddressingMode: AbsoluteIndexedX, Cycles: 6, PageSensitive: false},

	{OpCode: 0xea, Mnemonic: NOP, AddressingMode: Implied, Cycles: 2, PageSensitive: false},

	{OpCode: 0x09, Mnemonic: ORA, AddressingMode: Immediate, Cycles: 2, PageSensitive: false},
	{OpCode: 0x05, Mnemonic: ORA, AddressingMode: ZeroPage, Cycles: 3, PageSensitive: false},
	{OpCode: 0x15, Mnemonic: ORA, AddressingMode: ZeroPageIndexedX, Cycles: 4, PageSensitive: false},
	{OpCode: 0x0d, Mnemonic: ORA, AddressingMode: Absolute, Cycles: 4, PageSensitive: false},
	{OpCode: 0x1d, Mnemonic: ORA, AddressingMode: AbsoluteIndexedX, Cycles: 4, PageSensitive: false},
	{OpCode: 0x19, Mnemonic: ORA, AddressingMode: AbsoluteIndexedY, Cycles: 4, PageSensitive: false},
	{OpCode: 0x01, Mnemonic: ORA, AddressingMode: IndexedIndirect, Cycles: 6, PageSensitive: false},
	{OpCode: 0x11, Mnemonic: ORA, AddressingMode: IndirectIndexed, Cycles: 5, PageSensitive: false},

	{OpCode: 0x48, Mnemonic: PHA, AddressingMode: Implied, Cycles: 3, PageSensitive: false},

	{OpCode: 0x08, Mnemonic: PHP, AddressingMode: Implied, Cycles: 3, PageSensitive: false},

	{OpCode: 0x68, Mnemonic: PLA, AddressingMode: Implied, Cycles: 4, PageSensitive: false},

	{OpCode: 0x28, Mnemonic: PLP, AddressingMode: Implied, Cycles: 4, PageSensitive: false},

	{OpCode: 0x2a, Mnemonic: ROL, AddressingMode: Accumulator, Cycles: 2, PageSensitive: false},
	{OpCode: 0x26, Mnemonic: ROL, AddressingMode: ZeroPage, Cycles: 5, PageSensitive: false},
	{OpCode: 0x36, Mnemonic: ROL, AddressingMode: ZeroPageIndexedX, Cycles: 6, PageSensitive: false},
	{OpCode: 0x2e, Mnemonic: ROL, AddressingMode: Absolute, Cycles: 6, PageSensitive: false},
	{OpCode: 0x3e, Mnemonic: ROL, AddressingMode: AbsoluteIndexedX, Cycles: 6, PageSensitive: false},

	{OpCode: 0x6a, Mnemonic: ROR, AddressingMode: Accumulator, Cycles: 2, PageSensitive: false},
	{OpCode: 0x66, Mnemonic: ROR, AddressingMode: ZeroPage, Cycles: 5, PageSensitive: false},
	{OpCode: 0x76, Mnemonic: ROR, AddressingMode: ZeroPageIndexedX, Cycles: 6, PageSensitive: false},
	{OpCode: 0x6e, Mnemonic: ROR, AddressingMode: Absolute, Cycles: 6, PageSensitive: false},
	{OpCode: 0x7e, Mnemonic: ROR, AddressingMode: AbsoluteIndexedX, Cycles: 6, PageSensitive: false},

	{OpCode: 0x40, Mnemonic: RTI, AddressingMode: Implied, Cycles: 6, PageSensitive: false},

	{OpCode: 0x60, Mnemonic: RTS, AddressingMode: Implied, Cycles: 6, PageSensitive: false},

	{OpCode: 0xe9, Mnemonic: SBC, AddressingMode: Immediate, Cycles: 2, PageSensitive: true},
	{OpCode: 0xe5, Mnemonic: SBC, AddressingMode: ZeroPage, Cycles: 3, PageSensitive: true},
	{OpCode: 0xf5, Mnemonic: SBC, AddressingMode: ZeroPageIndexedX, Cycles: 4, PageSensitive: true},
	{OpCode: 0xed, Mnemonic: SBC, AddressingMode: Absolute, Cycles: 4, PageSensitive: true},
	{OpCode: 0xfd, Mnemonic: SBC, AddressingMode: AbsoluteIndexedX, Cycles: 4, PageSensitive: true},
	{OpCode: 0xf9, Mnemonic: SBC, AddressingMode: AbsoluteIndexedY, Cycles: 4, PageSensitive: true},
	{OpCode: 0xe1, Mnemonic: SBC, AddressingMode: IndexedIndirect, Cycles: 6, PageSensitive: true},
	{OpCode: 0xf1, Mnemonic: SBC, AddressingMode: IndirectIndexed, Cycles: 5, PageSensitive: true},

	{OpCode: 0x38, Mnemonic: SEC, AddressingMode: Implied, Cycles: 2, PageSensitive: false},

	{OpCode: 0xf8, Mnemonic: SED, AddressingMode: Implied, Cycles: 2, PageSensitive: false},

	{OpCode: 0x78, Mnemonic: SEI, AddressingMode: Implied, Cycles: 2, PageSensitive: false},

	{OpCode: 0x85, Mnemonic: STA, AddressingMode: ZeroPage, Cycles: 3, PageSensitive: false},
	{OpCode: 0x95, Mnemonic: STA, AddressingMode: ZeroPageIndexedX, Cycles: 4, PageSensitive: false},
	{OpCode: 0x8d, Mnemonic: STA, AddressingMode: Absolute, Cycles: 4, PageSensitive: false},
	{OpCode: 0x9d, Mnemonic: STA, AddressingMode: AbsoluteIndexedX, Cycles: 4, PageSensitive: false},
	{OpCode: 0x99, Mnemonic: STA, AddressingMode: AbsoluteIndexedY, Cycles: 4, PageSensitive: false},
	{OpCode: 0x81, Mnemonic: STA, AddressingMode: IndexedIndirect, Cycles: 6, PageSensitive: false},
	{OpCode: 0x91, Mnemonic: STA, AddressingMode: IndirectIndexed, Cycles: 5, PageSensitive: false},

	{OpCode: 0x86, Mnemonic: STX, AddressingMode: ZeroPage, Cycles: 3, PageSensitive: false},
	{OpCode: 0x96, Mnemonic: STX, AddressingMode: ZeroPageIndexedY, Cycles: 4, PageSensitive: false},
	{OpCode: 0x8e, Mnemonic: STX, AddressingMode: Absolute, Cycles: 4, PageSensitive: false},

	{OpCode: 0x84, Mnemonic: STY, AddressingMode: ZeroPage, Cycles: 3, PageSensitive: false},
	{OpCode: 0x94, Mnemonic: STY, AddressingMode: ZeroPageIndexedX, Cycles: 4, PageSensitive: false},
	{OpCode: 0x8c, Mnemonic: STY, AddressingMode: Absolute, Cycles: 4, PageSensitive: false},

	{OpCode: 0xaa, Mnemonic: TAX, AddressingMode: Implied, Cycles: 2, PageSensitive: false},

	{OpCode: 0xa8, Mnemonic: TAY, AddressingMode: Implied, Cycles: 2, PageSensitive: false},

	{OpCode: 0xba, Mnemonic: TSX, AddressingMode: Implied, Cycles: 2, PageSensitive: false},

	{OpCode: 0x8a, Mnemonic: TXA, AddressingMode: Implied, Cycles: 2, PageSensitive: false},

	{OpCode: 0x9a, Mnemonic: TXS, AddressingMode: Implied, Cycles: 2, PageSensitive: false},

	{OpCode: 0x98, Mnemonic: TYA, AddressingMode: Implied, Cycles: 2, PageSensitive: false},

	// undocumented. the mnemonics are the commonly used names. some tables in
	// circulation have an extra SBC entry that shifts the names so that JAM
	// prints as LAS and SHA prints as JAM. that is deliberately not followed
	{OpCode: 0x07, Mnemonic: SLO, AddressingMode: ZeroPage, Cycles: 5, PageSensitive: false, Undocumented: true},
	{OpCode: 0x17, Mnemonic: SLO, AddressingMode: ZeroPageIndexedX, Cycles: 6, PageSensitive: false, Undocumented: true},
	{OpCode: 0x03, Mnemonic: SLO, AddressingMode: IndexedIndirect, Cycles: 8, PageSensitive: false, Undocumented: true},
	{OpCode: 0x13, Mnemonic: SLO, AddressingMode: IndirectIndexed, Cycles: 8, PageSensitive: false, Undocumented: true},
	{OpCode: 0x0f, Mnemonic: SLO, AddressingMode: Absolute, Cycles: 6, PageSensitive: false, Undocumented: true},
	{OpCode: 0x1f, Mnemonic: SLO, AddressingMode: AbsoluteIndexedX, Cycles: 7, PageSensitive: false, Undocumented: true},
	{OpCode: 0x1b, Mnemonic: SLO, AddressingMode: AbsoluteIndexedY, Cycles: 7, PageSensitive: false, Undocumented: true},

	{OpCode: 0x27, Mnemonic: RLA, AddressingMode: ZeroPage, Cycles: 5, PageSensitive: false, Undocumented: true},
	{OpCode: 0x37, Mnemonic: RLA, AddressingMode: ZeroPageIndexedX, Cycles: 6, PageSensitive: false, Undocumented: true},
	{OpCode: 0x23, Mnemonic: RLA, AddressingMode: IndexedIndirect, Cycles: 8, PageSensitive: false, Undocumented: true},
	{OpCode: 0x33, Mnemonic: RLA, AddressingMode: IndirectIndexed, Cycles: 8, PageSensitive: false, Undocumented: true},
	{OpCode: 0x2f, Mnemonic: RLA, AddressingMode: Absolute, Cycles: 6, PageSensitive: false, Undocumented: true},
	{OpCode: 0x3f, Mnemonic: RLA, AddressingMode: AbsoluteIndexedX, Cycles: 7, PageSensitive: false, Undocumented: true},
	{OpCode: 0x3b, Mnemonic: RLA, AddressingMode: AbsoluteIndexedY, Cycles: 7, PageSensitive: false, Undocumented: true},

	{OpCode: 0xe7, Mnemonic: ISC, AddressingMode: ZeroPage, Cycles: 5, PageSensitive: false, Undocumented: true},
	{OpCode: 0xf7, Mnemonic: ISC, AddressingMode: ZeroPageIndexedX, Cycles: 6, PageSensitive: false, Undocumented: true},
	{OpCode: 0xe3, Mnemonic: ISC, AddressingMode: IndexedIndirect, Cycles: 8, PageSensitive: false, Undocumented: true},
	{OpCode: 0xf3, Mnemonic: ISC, AddressingMode: IndirectIndexed, Cycles: 8, PageSensitive: false, Undocumented: true},
	{OpCode: 0xef, Mnemonic: ISC, AddressingMode: Absolute, Cycles: 6, PageSensitive: false, Undocumented: true},
	{OpCode: 0xff, Mnemonic: ISC, AddressingMode: AbsoluteIndexedX, Cycles: 7, PageSensitive: false, Undocumented: true},
	{OpCode: 0xfb, Mnemonic: ISC, AddressingMode: AbsoluteIndexedY, Cycles: 7, PageSensitive: false, Undocumented: true},

	{OpCode: 0x47, Mnemonic: SRE, AddressingMode: ZeroPage, Cycles: 5, PageSensitive: false, Undocumented: true},
	{OpCode: 0x57, Mnemonic: SRE, AddressingMode: ZeroPageIndexedX, Cycles: 6, PageSensitive: false, Undocumented: true},
	{OpCode: 0x43, Mnemonic: SRE, AddressingMode: IndexedIndirect, Cycles: 8, PageSensitive: false, Undocumented: true},
	{OpCode: 0x53, Mnemonic: SRE, AddressingMode: IndirectIndexed, Cycles: 8, PageSensitive: false, Undocumented: true},
	{OpCode: 0x4f, Mnemonic: SRE, AddressingMode: Absolute, Cycles: 6, PageSensitive: false, Undocumented: true},
	{OpCode: 0x5f, Mnemonic: SRE, AddressingMode: AbsoluteIndexedX, Cycles: 7, PageSensitive: false, Undocumented: true},
	{OpCode: 0x5b, Mnemonic: SRE, AddressingMode: AbsoluteIndexedY, Cycles: 7, PageSensitive: false, Undocumented: true},

	{OpCode: 0x87, Mnemonic: SAX, AddressingMode: ZeroPage, Cycles: 3, PageSensitive: false, Undocumented: true},
	{OpCode: 0x97, Mnemonic: SAX, AddressingMode: ZeroPageIndexedY, Cycles: 4, PageSensitive: false, Undocumented: true},
	{OpCode: 0x83, Mnemonic: SAX, AddressingMode: IndexedIndirect, Cycles: 6, PageSensitive: false, Undocumented: true},
	{OpCode: 0x8f, Mnemonic: SAX, AddressingMode: Absolute, Cycles: 4, PageSensitive: false, Undocumented: true},

	{OpCode: 0x67, Mnemonic: RRA, AddressingMode: ZeroPage, Cycles: 5, PageSensitive: false, Undocumented: true},
	{OpCode: 0x77, Mnemonic: RRA, AddressingMode: ZeroPageIndexedX, Cycles: 6, PageSensitive: false, Undocumented: true},
	{OpCode: 0x63, Mnemonic: RRA, AddressingMode: IndexedIndirect, Cycles: 8, PageSensitive: false, Undocumented: true},
	{OpCode: 0x73, Mnemonic: RRA, AddressingMode: IndirectIndexed, Cycles: 8, PageSensitive: false, Undocumented: true},
	{OpCode: 0x6f, Mnemonic: RRA, AddressingMode: Absolute, Cycles: 6, PageSensitive: false, Undocumented: true},
	{OpCode: 0x7f, Mnemonic: RRA, AddressingMode: AbsoluteIndexedX, Cycles: 7, PageSensitive: false, Undocumented: true},
	{OpCode: 0x7b, Mnemonic: RRA, AddressingMode: AbsoluteIndexedY, Cycles: 7, PageSensitive: false, Undocumented: true},

	{OpCode: 0xa7, Mnemonic: LAX, AddressingMode: ZeroPage, Cycles: 3, PageSensitive: false, Undocumented: true},
	{OpCode: 0xb7, Mnemonic: LAX, AddressingMode: ZeroPageIndexedY, Cycles: 4, PageSensitive: false, Undocumented: true},
	{OpCode: 0xa3, Mnemonic: LAX, AddressingMode: IndexedIndirect, Cycles: 6, PageSensitive: false, Undocumented: true},
	{OpCode: 0xb3, Mnemonic: LAX, AddressingMode: IndirectIndexed, Cycles: 5, PageSensitive: false, Undocumented: true},
	{OpCode: 0xaf, Mnemonic: LAX, AddressingMode: Absolute, Cycles: 4, PageSensitive: false, Undocumented: true},
	{OpCode: 0xbf, Mnemonic: LAX, AddressingMode: AbsoluteIndexedY, Cycles: 4, PageSensitive: false, Undocumented: true},
	{OpCode: 0xab, Mnemonic: LAX, AddressingMode: Immediate, Cycles: 2, PageSensitive: false, Undocumented: true},

	{OpCode: 0xc7, Mnemonic: DCP, AddressingMode: ZeroPage, Cycles: 5, PageSensitive: false, Undocumented: true},
	{OpCode: 0xd7, Mnemonic: DCP, AddressingMode: ZeroPageIndexedX, Cycles: 6, PageSensitive: false, Undocumented: true},
	{OpCode: 0xc3, Mnemonic: DCP, AddressingMode: IndexedIndirect, Cycles: 8, PageSensitive: false, Undocumented: true},
	{OpCode: 0xd3, Mnemonic: DCP, AddressingMode: IndirectIndexed, Cycles: 8, PageSensitive: false, Undocumented: true},
	{OpCode: 0xcf, Mnemonic: DCP, AddressingMode: Absolute, Cycles: 6, PageSensitive: false, Undocumented: true},
	{OpCode: 0xdf, Mnemonic: DCP, AddressingMode: AbsoluteIndexedX, Cycles: 7, PageSensitive: false, Undocumented: true},
	{OpCode: 0xdb, Mnemonic: DCP, AddressingMode: AbsoluteIndexedY, Cycles: 7, PageSensitive: false, Undocumented: true},

	{OpCode: 0x0b, Mnemonic: ANC, AddressingMode: Immediate, Cycles: 2, PageSensitive: false, Undocumented: true},
	{OpCode: 0x2b, Mnemonic: ANC, AddressingMode: Immediate, Cycles: 2, PageSensitive: false, Undocumented: true},

	{OpCode: 0x4b, Mnemonic: ALR, AddressingMode: Immediate, Cycles: 2, PageSensitive: false, Undocumented: true},

	{OpCode: 0x6b, Mnemonic: ARR, AddressingMode: Immediate, Cycles: 2, PageSensitive: false, Undocumented: true},

	{OpCode: 0xcb, Mnemonic: SBX, AddressingMode: Immediate, Cycles: 2, PageSensitive: false, Undocumented: true},

	{OpCode: 0xeb, Mnemonic: SBC, AddressingMode: Immediate, Cycles: 2, PageSensitive: false, Undocumented: true},

	{OpCode: 0xbb, Mnemonic: LAS, AddressingMode: AbsoluteIndexedY, Cycles: 3, PageSensitive: false, Undocumented: true},

	{OpCode: 0x1a, Mnemonic: NOP, AddressingMode: Implied, Cycles: 2, PageSensitive: false, Undocumented: true},
	{OpCode: 0x3a, Mnemonic: NOP, AddressingMode: Implied, Cycles: 2, PageSensitive: false, Undocumented: true},
	{OpCode: 0x5a, Mnemonic: NOP, AddressingMode: Implied, Cycles: 2, PageSensitive: false, Undocumented: true},
	{OpCode: 0x7a, Mnemonic: NOP, AddressingMode: Implied, Cycles: 2, PageSensitive: false, Undocumented: true},
	{OpCode: 0xda, Mnemonic: NOP, AddressingMode: Implied, Cycles: 2, PageSensitive: false, Undocumented: true},
	{OpCode: 0xfa, Mnemonic: NOP, AddressingMode: Implied, Cycles: 2, PageSensitive: false, Undocumented: true},
	{OpCode: 0x80, Mnemonic: NOP, AddressingMode: Immediate, Cycles: 2, PageSensitive: false, Undocumented: true},
	{OpCode: 0x82, Mnemonic: NOP, AddressingMode: Immediate, Cycles: 2, PageSensitive: false, Undocumented: true},
	{OpCode: 0xc2, Mnemonic: NOP, AddressingMode: Immediate, Cycles: 2, PageSensitive: false, Undocumented: true},
	{OpCode: 0xe2, Mnemonic: NOP, AddressingMode: Immediate, Cycles: 2, PageSensitive: false, Undocumented: true},
	{OpCode: 0x89, Mnemonic: NOP, AddressingMode: Immediate, Cycles: 2, PageSensitive: false, Undocumented: true},
	{OpCode: 0x04, Mnemonic: NOP, AddressingMode: ZeroPage, Cycles: 3, PageSensitive: false, Undocumented: true},
	{OpCode: 0x44, Mnemonic: NOP, AddressingMode: ZeroPage, Cycles: 3, PageSensitive: false, Undocumented: true},
	{OpCode: 0x64, Mnemonic: NOP, AddressingMode: ZeroPage, Cycles: 3, PageSensitive: false, Undocumented: true},

	{OpCode: 0x14, Mnemonic: NOP, AddressingMode: ZeroPageIndexedX, Cycles: 4, PageSensitive: false, Undocumented: true},
	{OpCode: 0x34, Mnemonic: NOP, AddressingMode: ZeroPageIndexedX, Cycles: 4, PageSensitive: false, Undocumented: true},
	{OpCode: 0x54, Mnemonic: NOP, AddressingMode: ZeroPageIndexedX, Cycles: 4, PageSensitive: false, Undocumented: true},
	{OpCode: 0x74, Mnemonic: NOP, AddressingMode: ZeroPageIndexedX, Cycles: 4, PageSensitive: false, Undocumented: true},
	{OpCode: 0xd4, Mnemonic: NOP, AddressingMode: ZeroPageIndexedX, Cycles: 4, PageSensitive: false, Undocumented: true},
	{OpCode: 0xf4, Mnemonic: NOP, AddressingMode: ZeroPageIndexedX, Cycles: 4, PageSensitive: false, Undocumented: true},

	{OpCode: 0x0c, Mnemonic: NOP, AddressingMode: Absolute, Cycles: 4, PageSensitive: false, Undocumented: true},

	{OpCode: 0x1c, Mnemonic: NOP, AddressingMode: AbsoluteIndexedX, Cycles: 4, PageSensitive: false, Undocumented: true},
	{OpCode: 0x3c, Mnemonic: NOP, AddressingMode: AbsoluteIndexedX, Cycles: 4, PageSensitive: false, Undocumented: true},
	{OpCode: 0x5c, Mnemonic: NOP, AddressingMode: AbsoluteIndexedX, Cycles: 4, PageSensitive: false, Undocumented: true},
	{OpCode: 0x7c, Mnemonic: NOP, AddressingMode: AbsoluteIndexedX, Cycles: 4, PageSensitive: false, Undocumented: true},
	{OpCode: 0xdc, Mnemonic: NOP, AddressingMode: AbsoluteIndexedX, Cycles: 4, PageSensitive: false, Undocumented: true},
	{OpCode: 0xfc, Mnemonic: NOP, AddressingMode: AbsoluteIndexedX, Cycles: 4, PageSensitive: false, Undocumented: true},

	{OpCode: 0x02, Mnemonic: JAM, AddressingMode: Implied, Cycles: 1, PageSensitive: false, Undocumented: true},
	{OpCode: 0x12, Mnemonic: JAM, AddressingMode: Implied, Cycles: 1, PageSensitive: false, Undocumented: true},
	{OpCode: 0x22, Mnemonic: JAM, AddressingMode: Implied, Cycles: 1, PageSensitive: false, Undocumented: true},
	{OpCode: 0x32, Mnemonic: JAM, AddressingMode: Implied, Cycles: 1, PageSensitive: false, Undocumented: true},
	{OpCode: 0x42, Mnemonic: JAM, AddressingMode: Implied, Cycles: 1, PageSensitive: false, Undocumented: true},
	{OpCode: 0x52, Mnemonic: JAM, AddressingMode: Implied, Cycles: 1, PageSensitive: false, Undocumented: true},
	{OpCode: 0x62, Mnemonic: JAM, AddressingMode: Implied, Cycles: 1, PageSensitive: false, Undocumented: true},
	{OpCode: 0x72, Mnemonic: JAM, AddressingMode: Implied, Cycles: 1, PageSensitive: false, Undocumented: true},
	{OpCode: 0x92, Mnemonic: JAM, AddressingMode: Implied, Cycles: 1, PageSensitive: false, Undocumented: true},
	{OpCode: 0xb2, Mnemonic: JAM, AddressingMode: Implied, Cycles: 1, PageSensitive: false, Undocumented: true},
	{OpCode: 0xd2, Mnemonic: JAM, AddressingMode: Implied, Cycles: 1, PageSensitive: false, Undocumented: true},
	{OpCode: 0xf2, Mnemonic: JAM, AddressingMode: Implied, Cycles: 1, PageSensitive: false, Undocumented: true},

	{OpCode: 0x93, Mnemonic: SHA, AddressingMode: ZeroPageIndexedY, Cycles: 1, PageSensitive: false, Undocumented: true},
	{OpCode: 0x9f, Mnemonic: SHA, AddressingMode: AbsoluteIndexedY, Cycles: 1, PageSensitive: false, Undocumented: true},

	{OpCode: 0x9e, Mnemonic: SHX, AddressingMode: AbsoluteIndexedY, Cycles: 1, PageSensitive: false, Undocumented: true},

	{OpCode: 0x8b, Mnemonic: XAA, AddressingMode: Immediate, Cycles: 2, PageSensitive: false, Undocumented: true},

	{OpCode: 0x9c, Mnemonic: SHY, AddressingMode: AbsoluteIndexedY, Cycles: 1, PageSensitive: false, Undocumented: true},

	{OpCode: 0x9b, Mnemonic: TAS, AddressingMode: AbsoluteIndexedY, Cycles: 1, PageSensitive: false, Undocumented: true},
}
