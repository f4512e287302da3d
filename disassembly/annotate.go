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
	"github.com/jetsetilly/dis64/instructions"
)

// comments added by the annotation pass.
const (
	commentReturn          = "return"
	commentReturnInterrupt = "return from interrupt"
	commentPush            = "push to stack"
	commentPull            = "pull from stack"
	commentDisableIRQ      = "disable interrupts"
	commentEnableIRQ       = "enable interrupts"
	commentHardwareIRQ     = "set hardware raster irq handler"
	commentKernalIRQ       = "set kernal raster irq handler"
	commentUnknown         = "unknown opcode"
)

// the two interrupt vectors recognised when an interrupt handler is being
// installed. the high byte of the vector is stored at the address following
// the vector.
const (
	vectorHardware = 0xfffe
	vectorKernal   = 0x0314
)

// opcodes used in the installation patterns
const (
	opLDYImm = 0xa0
	opLDXImm = 0xa2
	opLDAImm = 0xa9
	opSTYAbs = 0x8c
	opSTAAbs = 0x8d
	opSTXAbs = 0x8e
)

// window gives bounded access to the image around an entry. offsets are
// relative to the first byte of the entry. reads outside of the image return
// zero.
type window struct {
	image []byte
	ofs   int
}

func (w window) at(i int) uint8 {
	return byteAt(w.image, w.ofs+i)
}

func (w window) word(i int) uint16 {
	return uint16(w.at(i)) | uint16(w.at(i+1))<<8
}

// annotation is the result of annotate().
type annotation struct {
	comment     string
	override    uint16
	hasOverride bool
}

// annotate recognises common idioms starting at the entry. it never links
// control flow, it only records the information needed by the linking pass.
//
// the idioms are tested in a fixed order and only the first match is used.
func annotate(e *Entry, w window) annotation {
	switch e.Kind {
	case EntryUnknown:
		return annotation{comment: commentUnknown}
	case EntryRawRun:
		return annotation{}
	}

	switch e.Defn.Mnemonic {
	case instructions.RTS:
		return annotation{comment: commentReturn}
	case instructions.RTI:
		return annotation{comment: commentReturnInterrupt}
	case instructions.PHA, instructions.PHP:
		return annotation{comment: commentPush}
	case instructions.PLA, instructions.PLP:
		return annotation{comment: commentPull}
	case instructions.SEI:
		return annotation{comment: commentDisableIRQ}
	case instructions.CLI:
		return annotation{comment: commentEnableIRQ}
	}

	// LDX #lo; LDY #hi; STX vec; STY vec+1
	if e.OpCode == opLDXImm && w.at(2) == opLDYImm && w.at(4) == opSTXAbs && w.at(7) == opSTYAbs {
		handler := uint16(w.at(1)) | uint16(w.at(3))<<8
		lo := w.word(5)
		hi := w.word(8)
		if c, ok := vectorComment(lo, hi); ok {
			return annotation{comment: c, override: handler, hasOverride: true}
		}
		return annotation{}
	}

	// STY vec; STA vec+1
	if e.OpCode == opSTYAbs && w.at(3) == opSTAAbs {
		lo := w.word(1)
		hi := w.word(4)
		if c, ok := vectorComment(lo, hi); ok {
			handler, ok := precedingLoad(w)
			if !ok {
				handler = lo
			}
			return annotation{comment: c, override: handler, hasOverride: true}
		}
		return annotation{}
	}

	// pair a load with a store of the same register in the next instruction
	next := e.Defn.Bytes()
	if w.ofs+next < len(w.image) {
		if defn, ok := instructions.Lookup(w.at(next)); ok {
			switch {
			case e.Defn.Mnemonic == instructions.LDA && defn.Mnemonic == instructions.STA:
				return annotation{comment: "load/store A"}
			case e.Defn.Mnemonic == instructions.LDX && defn.Mnemonic == instructions.STX:
				return annotation{comment: "load/store X"}
			case e.Defn.Mnemonic == instructions.LDY && defn.Mnemonic == instructions.STY:
				return annotation{comment: "load/store Y"}
			}
		}
	}

	return annotation{}
}

// vectorComment returns the comment for a store to one of the two interrupt
// vectors. lo and hi are the addresses the two bytes of the handler address
// are stored to.
func vectorComment(lo uint16, hi uint16) (string, bool) {
	if hi != lo+1 {
		return "", false
	}
	switch lo {
	case vectorHardware:
		return commentHardwareIRQ, true
	case vectorKernal:
		return commentKernalIRQ, true
	}
	return "", false
}

// precedingLoad looks for LDY #lo and LDA #hi, in either order, immediately
// before the STY instruction at the start of the window.
func precedingLoad(w window) (uint16, bool) {
	switch {
	case w.at(-4) == opLDYImm && w.at(-2) == opLDAImm:
		return uint16(w.at(-3)) | uint16(w.at(-1))<<8, true
	case w.at(-4) == opLDAImm && w.at(-2) == opLDYImm:
		return uint16(w.at(-1)) | uint16(w.at(-3))<<8, true
	}
	return 0, false
}
