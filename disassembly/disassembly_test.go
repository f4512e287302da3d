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

package disassembly_test

import (
	"strings"
	"testing"

	"github.com/jetsetilly/dis64/disassembly"
	"github.com/jetsetilly/dis64/test"
)

func disasm(t *testing.T, image []byte, origin uint16, cfg disassembly.Config) *disassembly.Disassembly {
	t.Helper()
	dsm, err := disassembly.FromBytes(image, origin, cfg)
	test.DemandSuccess(t, err)
	return dsm
}

func TestContiguous(t *testing.T) {
	// no zero bytes in the image
	image := []byte{
		0xa9, 0x01, // LDA #$01
		0x8d, 0x20, 0xd0, // STA $D020
		0xe8,       // INX
		0xb1, 0xfb, // LDA ($FB),Y
		0x4c, 0x10, 0x10, // JMP $1010
		0xea, // NOP
		0x0a, // ASL A
	}
	const origin = 0x1000

	dsm := disasm(t, image, origin, disassembly.Config{})

	var length int
	for _, e := range dsm.Entries() {
		test.ExpectEquality(t, int(e.Address), origin+length)
		length += len(e.Bytes())
	}
	test.ExpectEquality(t, length, len(image))
	test.ExpectEquality(t, len(dsm.Entries()), 7)
}

func TestRelativeBranch(t *testing.T) {
	// branch backwards out of the image
	dsm := disasm(t, []byte{0xd0, 0xfd}, 0x1000, disassembly.Config{})
	e := dsm.Entries()[0]
	addr, ok := e.TargetAddress()
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, addr, uint16(0x0fff))
	test.ExpectEquality(t, e.Target == nil, true)
	test.ExpectEquality(t, e.OperandText(), "$0fff")
	test.ExpectEquality(t, dsm.Stats().Unresolved, 1)

	// branch forwards out of the image
	dsm = disasm(t, []byte{0xd0, 0x05}, 0x1000, disassembly.Config{})
	addr, _ = dsm.Entries()[0].TargetAddress()
	test.ExpectEquality(t, addr, uint16(0x1007))

	// branch forwards to an instruction in the image
	dsm = disasm(t, []byte{0xd0, 0x02, 0xea, 0xea, 0xe8}, 0x1000, disassembly.Config{})
	e = dsm.Entries()[0]
	test.DemandSuccess(t, e.Target != nil)
	test.ExpectEquality(t, e.Target.Address, uint16(0x1004))
	test.ExpectEquality(t, e.Target, dsm.Find(0x1004))
	test.ExpectEquality(t, e.OperandText(), "label0")

	// branch backwards to an instruction in the image
	dsm = disasm(t, []byte{0xea, 0xea, 0xd0, 0xfc}, 0x1000, disassembly.Config{})
	e = dsm.Find(0x1002)
	test.DemandSuccess(t, e != nil)
	test.DemandSuccess(t, e.Target != nil)
	test.ExpectEquality(t, e.Target.Address, uint16(0x1000))
	test.ExpectEquality(t, len(e.Target.Refs), 1)
}

func TestBranchOutsideAddressSpace(t *testing.T) {
	dsm := disasm(t, []byte{0xd0, 0x80}, 0x0000, disassembly.Config{})
	e := dsm.Entries()[0]
	_, ok := e.TargetAddress()
	test.ExpectFailure(t, ok)
	test.ExpectEquality(t, e.Target == nil, true)
	test.ExpectEquality(t, dsm.Stats().Unresolved, 1)
}

func TestTargetInsideInstruction(t *testing.T) {
	// JMP to the operand of the LDA instruction. there is no entry at that
	// address so the target is not resolved
	image := []byte{
		0xa9, 0xea, // LDA #$EA
		0x4c, 0x01, 0x10, // JMP $1001
	}
	dsm := disasm(t, image, 0x1000, disassembly.Config{})
	test.ExpectEquality(t, dsm.Find(0x1001) == nil, true)
	test.ExpectEquality(t, dsm.Find(0x1002).Target == nil, true)
	test.ExpectEquality(t, dsm.Find(0x1002).OperandText(), "$1001")
}

func TestSharedTarget(t *testing.T) {
	image := []byte{
		0x20, 0x08, 0x20, // JSR $2008
		0x4c, 0x08, 0x20, // JMP $2008
		0xea, // NOP
		0xea, // NOP
		0x60, // RTS
	}
	dsm := disasm(t, image, 0x2000, disassembly.Config{})

	target := dsm.Find(0x2008)
	test.DemandSuccess(t, target != nil)
	test.ExpectEquality(t, len(target.Refs), 2)
	test.ExpectEquality(t, target.Label, disassembly.Label{Kind: disassembly.LabelOrdinary, Index: 0})
	test.ExpectEquality(t, dsm.Stats().Labels, 1)

	// repeated linking makes no difference
	dsm.Link()
	dsm.Link()
	test.ExpectEquality(t, len(target.Refs), 2)
	test.ExpectEquality(t, target.Label, disassembly.Label{Kind: disassembly.LabelOrdinary, Index: 0})
	test.ExpectEquality(t, dsm.Stats().Labels, 1)

	var labelled int
	for _, e := range dsm.Entries() {
		if e.Label.Kind != disassembly.LabelNone {
			labelled++
		}
	}
	test.ExpectEquality(t, labelled, 1)
}

// a program that installs a kernal interrupt handler with the LDX/LDY/STX/STY
// pattern and calls a subroutine
var irqProgram = []byte{
	0x78,       // $0810 SEI
	0xa2, 0x20, // $0811 LDX #$20
	0xa0, 0x08, // $0813 LDY #$08
	0x8e, 0x14, 0x03, // $0815 STX $0314
	0x8c, 0x15, 0x03, // $0818 STY $0315
	0x58,             // $081b CLI
	0x20, 0x24, 0x08, // $081c JSR $0824
	0x60,             // $081f RTS
	0xee, 0x19, 0xd0, // $0820 INC $D019
	0x40, // $0823 RTI
	0xe8, // $0824 INX
	0x60, // $0825 RTS
}

func TestInterruptHandler(t *testing.T) {
	dsm := disasm(t, irqProgram, 0x0810, disassembly.Config{})

	install := dsm.Find(0x0811)
	test.DemandSuccess(t, install != nil)
	test.ExpectEquality(t, install.Comment, "set kernal raster irq handler")
	override, ok := install.Override()
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, override, uint16(0x0820))

	handler := dsm.Find(0x0820)
	test.ExpectEquality(t, handler.Label, disassembly.Label{Kind: disassembly.LabelIRQ, Index: 0})
	test.ExpectEquality(t, handler.Label.String(), "irq0")

	// the counters are independent so the subroutine is also numbered zero
	sub := dsm.Find(0x0824)
	test.ExpectEquality(t, sub.Label, disassembly.Label{Kind: disassembly.LabelOrdinary, Index: 0})
	test.ExpectEquality(t, sub.Label.String(), "label0")

	test.ExpectEquality(t, dsm.Stats().IRQs, 1)
	test.ExpectEquality(t, dsm.Stats().Labels, 1)

	test.ExpectEquality(t, dsm.Find(0x0810).Comment, "disable interrupts")
	test.ExpectEquality(t, dsm.Find(0x081b).Comment, "enable interrupts")
	test.ExpectEquality(t, dsm.Find(0x0823).Comment, "return from interrupt")
	test.ExpectEquality(t, dsm.Find(0x0825).Comment, "return")
}

func TestInterruptHandlerAlsoCalled(t *testing.T) {
	// call the interrupt handler as a subroutine as well as installing it.
	// the JSR $0824 is changed to JSR $0820
	image := append([]byte{}, irqProgram...)
	image[0x0d] = 0x20

	dsm := disasm(t, image, 0x0810, disassembly.Config{})

	handler := dsm.Find(0x0820)
	test.ExpectEquality(t, len(handler.Refs), 2)
	test.ExpectEquality(t, handler.Label, disassembly.Label{Kind: disassembly.LabelOrdinary, Index: 0})
	test.ExpectEquality(t, dsm.Find(0x0824).Label.Kind, disassembly.LabelNone)
	test.ExpectEquality(t, dsm.Stats().IRQs, 0)
}

func TestLabelOrder(t *testing.T) {
	// labels are numbered in address order, not in the order they are
	// discovered. the first instruction refers to the last target
	image := []byte{
		0x4c, 0x08, 0x30, // $3000 JMP $3008
		0x20, 0x07, 0x30, // $3003 JSR $3007
		0x60, // $3006 RTS
		0x60, // $3007 RTS
		0x60, // $3008 RTS
	}
	dsm := disasm(t, image, 0x3000, disassembly.Config{})
	test.ExpectEquality(t, dsm.Find(0x3007).Label.String(), "label0")
	test.ExpectEquality(t, dsm.Find(0x3008).Label.String(), "label1")
	test.ExpectEquality(t, dsm.Find(0x3000).OperandText(), "label1")
	test.ExpectEquality(t, dsm.Find(0x3003).OperandText(), "label0")
}

func TestZeroRun(t *testing.T) {
	image := []byte{0x00, 0x00, 0x00, 0x00, 0xa9, 0x01}

	dsm := disasm(t, image, 0x2000, disassembly.Config{})
	test.DemandEquality(t, len(dsm.Entries()), 2)

	e := dsm.Entries()[0]
	test.ExpectEquality(t, e.Kind, disassembly.EntryRawRun)
	test.ExpectEquality(t, e.Address, uint16(0x2000))
	test.ExpectEquality(t, len(e.Bytes()), 4)

	e = dsm.Entries()[1]
	test.ExpectEquality(t, e.Kind, disassembly.EntryInstruction)
	test.ExpectEquality(t, e.Address, uint16(0x2004))
	test.ExpectEquality(t, e.Mnemonic(), "lda")

	// a run shorter than the minimum length is decoded as BRK instructions
	dsm = disasm(t, image, 0x2000, disassembly.Config{
		ZeroRun: disassembly.ZeroRunPolicy{MinLength: 5},
	})
	test.DemandEquality(t, len(dsm.Entries()), 5)
	for _, e := range dsm.Entries()[:4] {
		test.ExpectEquality(t, e.Kind, disassembly.EntryInstruction)
		test.ExpectEquality(t, e.Mnemonic(), "brk")
	}

	// a run of the minimum length is still data
	dsm = disasm(t, image, 0x2000, disassembly.Config{
		ZeroRun: disassembly.ZeroRunPolicy{MinLength: 4},
	})
	test.ExpectEquality(t, len(dsm.Entries()), 2)

	dsm = disasm(t, image, 0x2000, disassembly.Config{
		ZeroRun: disassembly.ZeroRunPolicy{AsCode: true},
	})
	test.ExpectEquality(t, len(dsm.Entries()), 5)
}

func TestRawRunsAreMaximal(t *testing.T) {
	image := []byte{0x00, 0xea, 0x00, 0x00, 0xe8, 0x00}
	dsm := disasm(t, image, 0x1000, disassembly.Config{})
	test.DemandEquality(t, len(dsm.Entries()), 5)

	var prev *disassembly.Entry
	var dataIndex int
	for _, e := range dsm.Entries() {
		if e.Kind == disassembly.EntryRawRun {
			test.ExpectEquality(t, e.DataIndex, dataIndex)
			dataIndex++
			if prev != nil {
				test.ExpectInequality(t, prev.Kind, disassembly.EntryRawRun)
			}
		}
		prev = e
	}
	test.ExpectEquality(t, dataIndex, 3)
	test.ExpectEquality(t, dsm.Stats().RawRuns, 3)
}

func TestTruncatedOperand(t *testing.T) {
	dsm := disasm(t, []byte{0xea, 0x20, 0x10}, 0x1000, disassembly.Config{})
	test.DemandEquality(t, len(dsm.Entries()), 2)

	e := dsm.Entries()[1]
	test.ExpectEquality(t, e.Mnemonic(), "jsr")
	test.ExpectEquality(t, e.Operand, uint16(0x0010))
	test.ExpectEquality(t, len(e.Bytes()), 2)
	test.ExpectEquality(t, e.OperandText(), "$0010")
}

func TestDocumentedOnly(t *testing.T) {
	image := []byte{0x02, 0xa7, 0x80, 0xea}

	// by default every opcode is decoded
	dsm := disasm(t, image, 0x1000, disassembly.Config{})
	test.DemandEquality(t, len(dsm.Entries()), 3)
	test.ExpectEquality(t, dsm.Entries()[0].Mnemonic(), "jam")
	test.ExpectEquality(t, dsm.Entries()[1].Mnemonic(), "lax")
	test.ExpectEquality(t, dsm.Stats().Unknown, 0)

	dsm = disasm(t, image, 0x1000, disassembly.Config{DocumentedOnly: true})
	test.DemandEquality(t, len(dsm.Entries()), 4)
	for i, e := range dsm.Entries()[:3] {
		test.ExpectEquality(t, e.Kind, disassembly.EntryUnknown, i)
		test.ExpectEquality(t, e.Mnemonic(), "???", i)
		test.ExpectEquality(t, e.Comment, "unknown opcode", i)
		test.ExpectEquality(t, e.Address, uint16(0x1000+i), i)
	}
	test.ExpectEquality(t, dsm.Entries()[3].Mnemonic(), "nop")
	test.ExpectEquality(t, dsm.Stats().Unknown, 3)
}

func TestHardwareVectorInstall(t *testing.T) {
	image := []byte{
		0xa0, 0x10, // $c000 LDY #$10
		0xa9, 0xc0, // $c002 LDA #$c0
		0x8c, 0xfe, 0xff, // $c004 STY $FFFE
		0x8d, 0xff, 0xff, // $c007 STA $FFFF
		0x60,                         // $c00a RTS
		0xea, 0xea, 0xea, 0xea, 0xea, // $c00b NOP
		0x40, // $c010 RTI
	}
	dsm := disasm(t, image, 0xc000, disassembly.Config{})

	install := dsm.Find(0xc004)
	test.ExpectEquality(t, install.Comment, "set hardware raster irq handler")
	override, ok := install.Override()
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, override, uint16(0xc010))

	handler := dsm.Find(0xc010)
	test.ExpectEquality(t, handler.Label.String(), "irq0")
	test.ExpectEquality(t, handler.Refs[0], install)

	// the store is not a jump so the operand is unchanged
	test.ExpectEquality(t, install.OperandText(), "$fffe")

	// loads are not paired with the stores because the next instruction is
	// not a store of the same register
	test.ExpectEquality(t, dsm.Find(0xc000).Comment, "")
	test.ExpectEquality(t, dsm.Find(0xc002).Comment, "")
}

func TestVectorInstallWithoutLoad(t *testing.T) {
	image := []byte{
		0x8c, 0x14, 0x03, // STY $0314
		0x8d, 0x15, 0x03, // STA $0315
	}
	dsm := disasm(t, image, 0xc000, disassembly.Config{})

	install := dsm.Entries()[0]
	test.ExpectEquality(t, install.Comment, "set kernal raster irq handler")
	override, ok := install.Override()
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, override, uint16(0x0314))
	test.ExpectEquality(t, install.Target == nil, true)
	test.ExpectEquality(t, dsm.Stats().Unresolved, 1)
}

func TestLoadStore(t *testing.T) {
	image := []byte{
		0xa9, 0x01, // LDA #$01
		0x8d, 0x20, 0xd0, // STA $D020
		0xa2, 0x02, // LDX #$02
		0x86, 0xfb, // STX $FB
		0xa4, 0xfc, // LDY $FC
		0x94, 0x10, // STY $10,X
		0xa9, 0x03, // LDA #$03
		0x8e, 0x21, 0xd0, // STX $D021
		0x48, // PHA
		0x68, // PLA
		0x08, // PHP
		0x28, // PLP
	}
	dsm := disasm(t, image, 0x1000, disassembly.Config{})
	e := dsm.Entries()
	test.ExpectEquality(t, e[0].Comment, "load/store A")
	test.ExpectEquality(t, e[1].Comment, "")
	test.ExpectEquality(t, e[2].Comment, "load/store X")
	test.ExpectEquality(t, e[4].Comment, "load/store Y")
	test.ExpectEquality(t, e[6].Comment, "")
	test.ExpectEquality(t, e[8].Comment, "push to stack")
	test.ExpectEquality(t, e[9].Comment, "pull from stack")
	test.ExpectEquality(t, e[10].Comment, "push to stack")
	test.ExpectEquality(t, e[11].Comment, "pull from stack")
}

func TestLoadAtEnd(t *testing.T) {
	// a load as the last instruction can't be paired
	dsm := disasm(t, []byte{0xa9, 0x01}, 0x1000, disassembly.Config{})
	test.ExpectEquality(t, dsm.Entries()[0].Comment, "")
}

func TestImageTooLarge(t *testing.T) {
	_, err := disassembly.FromBytes(make([]byte, 0x101), 0xff00, disassembly.Config{})
	test.ExpectFailure(t, err)

	_, err = disassembly.FromBytes(make([]byte, 0x100), 0xff00, disassembly.Config{})
	test.ExpectSuccess(t, err)
}

func TestDeterministic(t *testing.T) {
	attr := disassembly.WriteAttr{ByteCode: true, Comments: true, LabelSuffix: ":"}

	a := &strings.Builder{}
	dsm := disasm(t, irqProgram, 0x0810, disassembly.Config{})
	test.DemandSuccess(t, dsm.Write(a, attr))

	b := &strings.Builder{}
	dsm = disasm(t, irqProgram, 0x0810, disassembly.Config{})
	dsm.Link()
	test.DemandSuccess(t, dsm.Write(b, attr))

	test.ExpectEquality(t, a.String(), b.String())
}

func TestStatsTable(t *testing.T) {
	dsm := disasm(t, []byte{0xa9, 0x01, 0xd0, 0xfc, 0x20, 0x00, 0x20, 0x60}, 0x1000, disassembly.Config{})
	st := dsm.Stats()
	test.ExpectEquality(t, st.Entries, 4)
	test.ExpectEquality(t, st.Labels, 1)
	test.ExpectEquality(t, st.Unresolved, 1)

	w := &test.CompareWriter{}
	st.WriteTable(w, "test.prg")
	s := w.String()
	test.ExpectSuccess(t, strings.Contains(s, "test.prg"))
	test.ExpectSuccess(t, strings.Contains(s, "Unresolved targets"))
	test.ExpectSuccess(t, strings.Contains(s, "IRQ handlers"))
}
