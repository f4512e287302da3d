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

// Mnemonic identifies an instruction independently of its addressing mode.
type Mnemonic int

// List of mnemonics. Documented instructions first, in alphabetical order,
// followed by the undocumented instructions.
const (
	ADC Mnemonic = iota
	AND
	ASL
	BCC
	BCS
	BEQ
	BIT
	BMI
	BNE
	BPL
	BRK
	BVC
	BVS
	CLC
	CLD
	CLI
	CLV
	CMP
	CPX
	CPY
	DEC
	DEX
	DEY
	EOR
	INC
	INX
	INY
	JMP
	JSR
	LDA
	LDX
	LDY
	LSR
	NOP
	ORA
	PHA
	PHP
	PLA
	PLP
	ROL
	ROR
	RTI
	RTS
	SBC
	SEC
	SED
	SEI
	STA
	STX
	STY
	TAX
	TAY
	TSX
	TXA
	TXS
	TYA

	// undocumented
	SLO
	RLA
	ISC
	SRE
	SAX
	RRA
	LAX
	DCP
	ANC
	ALR
	ARR
	SBX
	LAS
	JAM
	SHA
	SHX
	XAA
	SHY
	TAS
)

var mnemonicNames = [...]string{
	"ADC", "AND", "ASL", "BCC", "BCS", "BEQ", "BIT", "BMI", "BNE", "BPL",
	"BRK", "BVC", "BVS", "CLC", "CLD", "CLI", "CLV", "CMP", "CPX", "CPY",
	"DEC", "DEX", "DEY", "EOR", "INC", "INX", "INY", "JMP", "JSR", "LDA",
	"LDX", "LDY", "LSR", "NOP", "ORA", "PHA", "PHP", "PLA", "PLP", "ROL",
	"ROR", "RTI", "RTS", "SBC", "SEC", "SED", "SEI", "STA", "STX", "STY",
	"TAX", "TAY", "TSX", "TXA", "TXS", "TYA",

	"SLO", "RLA", "ISC", "SRE", "SAX", "RRA", "LAX", "DCP", "ANC",
	"ALR", "ARR", "SBX", "LAS", "JAM", "SHA", "SHX", "XAA", "SHY",
	"TAS",
}

func (m Mnemonic) String() string {
	if m < 0 || int(m) >= len(mnemonicNames) {
		return "???"
	}
	return mnemonicNames[m]
}

// IsBranch returns true if the mnemonic is one of the eight conditional
// branch instructions.
func (m Mnemonic) IsBranch() bool {
	switch m {
	case BCC, BCS, BEQ, BMI, BNE, BPL, BVC, BVS:
		return true
	}
	return false
}

// IsJump returns true if the instruction transfers control to an address
// encoded in its operand. This is true for branches, JMP and JSR.
//
// Note that BRK, RTS and RTI are not jumps by this definition. The address
// they transfer control to is not part of the instruction.
func (m Mnemonic) IsJump() bool {
	return m.IsBranch() || m == JMP || m == JSR
}

// IsReturn returns true for RTS and RTI.
func (m Mnemonic) IsReturn() bool {
	return m == RTS || m == RTI
}
