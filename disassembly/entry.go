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

package disassembly

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/dis64/instructions"
)

// EntryKind describes how the bytes of an Entry have been interpreted.
type EntryKind int

// List of valid EntryKind values.
const (
	// a decoded instruction
	EntryInstruction EntryKind = iota

	// a run of zero bytes treated as data
	EntryRawRun

	// an opcode with no definition
	EntryUnknown
)

func (k EntryKind) String() string {
	switch k {
	case EntryInstruction:
		return "instruction"
	case EntryRawRun:
		return "raw"
	case EntryUnknown:
		return "unknown"
	}
	return "?"
}

// LabelKind distinguishes the different numbering sequences of labels.
type LabelKind int

// List of valid LabelKind values.
const (
	LabelNone LabelKind = iota
	LabelOrdinary
	LabelIRQ
)

// Label identifies an entry that is the target of one or more control
// transfers. Index is numbered independently for each kind.
type Label struct {
	Kind  LabelKind
	Index int
}

func (l Label) String() string {
	switch l.Kind {
	case LabelOrdinary:
		return fmt.Sprintf("label%d", l.Index)
	case LabelIRQ:
		return fmt.Sprintf("irq%d", l.Index)
	}
	return ""
}

// Entry is a single disassembled statement.
type Entry struct {
	Kind    EntryKind
	Address uint16

	// the opcode byte. always zero for EntryRawRun
	OpCode uint8

	// the instruction definition. only valid for EntryInstruction
	Defn instructions.Definition

	// operand value. operand bytes beyond the end of the image are read as
	// zero
	Operand uint16

	// the bytes of the image covered by the entry. shorter than the length of
	// the instruction if the operand was truncated
	data []byte

	// comment added by the annotation pass
	Comment string

	// a control transfer target created by the annotation pass for
	// instructions that aren't jumps
	override    uint16
	hasOverride bool

	// the entry this entry transfers control to. nil if the entry is not a
	// control transfer or if the target could not be resolved
	Target *Entry

	// the entries that have this entry as their Target
	Refs []*Entry

	Label Label

	// buffer number of EntryRawRun entries. numbered from zero in address
	// order
	DataIndex int
}

func (e *Entry) String() string {
	switch e.Kind {
	case EntryRawRun:
		return fmt.Sprintf("$%04x buffer%d (%d bytes)", e.Address, e.DataIndex, len(e.data))
	case EntryUnknown:
		return fmt.Sprintf("$%04x ??? (%02x)", e.Address, e.OpCode)
	}
	return fmt.Sprintf("$%04x %s %s", e.Address, e.Mnemonic(), e.OperandText())
}

// Bytes returns the bytes in the image covered by the entry.
func (e *Entry) Bytes() []byte {
	return e.data
}

// Mnemonic returns the lower case mnemonic of the instruction. Returns "???"
// for unknown opcodes and "!byte" for raw runs.
func (e *Entry) Mnemonic() string {
	switch e.Kind {
	case EntryInstruction:
		return strings.ToLower(e.Defn.Mnemonic.String())
	case EntryRawRun:
		return "!byte"
	}
	return "???"
}

// Override returns the control transfer target created by the annotation
// pass, if there is one.
func (e *Entry) Override() (uint16, bool) {
	return e.override, e.hasOverride
}

// IsJump returns true if the entry is a branch, JMP or JSR instruction.
func (e *Entry) IsJump() bool {
	return e.Kind == EntryInstruction && e.Defn.Mnemonic.IsJump()
}

// IsReturn returns true if the entry is an RTS or RTI instruction.
func (e *Entry) IsReturn() bool {
	return e.Kind == EntryInstruction && e.Defn.Mnemonic.IsReturn()
}

// isControlTransfer is true for entries that the linking pass considers.
func (e *Entry) isControlTransfer() bool {
	return e.IsJump() || e.hasOverride
}

// TargetAddress returns the address the entry transfers control to. The
// address is calculated whether or not the target could be resolved. The
// second return value is false if the entry is not a control transfer or if
// the calculated address is outside of the 16bit address space.
func (e *Entry) TargetAddress() (uint16, bool) {
	if !e.isControlTransfer() {
		return 0, false
	}

	if e.hasOverride {
		return e.override, true
	}

	if e.Defn.AddressingMode == instructions.Relative {
		// the offset is relative to the address following the instruction.
		// all branch instructions are two bytes long
		addr := int(e.Address) + 2 + int(int8(e.Operand))
		if addr < 0 || addr > 0xffff {
			return 0, false
		}
		return uint16(addr), true
	}

	return e.Operand, true
}

// OperandText returns the operand decorated according to the addressing mode
// of the instruction. Control transfers with a resolved target use the label
// of the target. Relative branches that could not be resolved show the
// absolute address of the branch destination.
func (e *Entry) OperandText() string {
	if e.Kind != EntryInstruction {
		return ""
	}

	if e.IsJump() {
		if e.Target != nil && e.Target.Label.Kind != LabelNone {
			return e.Target.Label.String()
		}
		if e.Defn.AddressingMode == instructions.Relative {
			if addr, ok := e.TargetAddress(); ok {
				return fmt.Sprintf("$%04x", addr)
			}
		}
	}

	return e.Defn.AddressingMode.Decorate(e.numericOperand())
}

// numericOperand is the undecorated operand. for relative branches this is
// the raw offset.
func (e *Entry) numericOperand() string {
	switch e.Defn.AddressingMode.OperandBytes() {
	case 1:
		return fmt.Sprintf("$%02x", e.Operand)
	case 2:
		return fmt.Sprintf("$%04x", e.Operand)
	}
	return ""
}
