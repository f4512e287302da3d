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
	"io"
	"strings"

	"github.com/jetsetilly/dis64/disassembly/symbols"
	"github.com/jetsetilly/dis64/instructions"
	"github.com/jetsetilly/dis64/programloader"
)

// WriteAttr controls what is printed by the Write*() functions.
type WriteAttr struct {
	// the address and bytes of every instruction
	ByteCode bool

	// comments added by the annotation pass
	Comments bool

	// printed after every label. a colon for GNU style assemblers and the
	// empty string for ACME
	LabelSuffix string

	// operands that have not been resolved to a label are shown as a symbol,
	// if there is one. nil to disable
	Symbols *symbols.Symbols
}

// width of the instruction column.
const instructionWidth = 22

// raw runs are wrapped when the list of bytes reaches this length.
const rawRunWidth = 58

// lineWriter strips trailing space from every line and notes whether the most
// recent line was blank. the first error is kept and further writes are
// ignored.
type lineWriter struct {
	output    io.Writer
	lastBlank bool
	err       error
}

func (lw *lineWriter) line(s string) {
	if lw.err != nil {
		return
	}
	s = strings.TrimRight(s, " \t")
	_, lw.err = io.WriteString(lw.output, s+"\n")
	lw.lastBlank = s == ""
}

func (lw *lineWriter) blank() {
	if !lw.lastBlank {
		lw.line("")
	}
}

// Write the entire disassembly to io.Writer.
func (dsm *Disassembly) Write(output io.Writer, attr WriteAttr) error {
	// the first label is not preceded by a blank line
	lw := &lineWriter{output: output, lastBlank: true}

	for _, e := range dsm.entries {
		if e.Label.Kind != LabelNone {
			lw.blank()
			lw.line(e.Label.String() + attr.LabelSuffix)
		}

		for _, s := range strings.Split(formatEntry(e, attr), "\n") {
			lw.line(s)
		}

		if e.IsReturn() {
			lw.blank()
		}
	}

	return lw.err
}

// WriteLine writes a single entry to io.Writer. The label of the entry is not
// written.
func (dsm *Disassembly) WriteLine(output io.Writer, attr WriteAttr, e *Entry) error {
	lw := &lineWriter{output: output}
	for _, s := range strings.Split(formatEntry(e, attr), "\n") {
		lw.line(s)
	}
	return lw.err
}

// the banner written by WriteHeader().
const banner = "; #############################################################################"

// WriteHeader writes the banner, the origin of the program and the BASIC stub
// of the program as a list of bytes.
func WriteHeader(output io.Writer, prg programloader.Program, attr WriteAttr) error {
	lw := &lineWriter{output: output}

	lw.line(banner)
	lw.line("; #")
	lw.line("; # GENERATED BY DIS64")
	lw.line("; # " + prg.Filename)
	lw.line("; #")
	lw.line(banner)
	lw.line("")

	s := fmt.Sprintf("*=$%04X", prg.LoadAddress)
	if attr.Comments {
		s = fmt.Sprintf("%s ; load address (%d)", s, prg.LoadAddress)
	}
	lw.line(s)

	if prg.Stub != nil {
		b := make([]string, len(prg.Stub.Bytes))
		for i, v := range prg.Stub.Bytes {
			b[i] = fmt.Sprintf("$%02x", v)
		}
		s = fmt.Sprintf("!byte %s", strings.Join(b, ","))
		if attr.Comments {
			s = fmt.Sprintf("%s ; %d SYS%s", s, prg.Stub.LineNumber, prg.Stub.Command)
		}
		lw.line(s)
	}

	lw.line("")

	return lw.err
}

// formatEntry returns the text for the entry. raw runs may be more than one
// line long.
func formatEntry(e *Entry, attr WriteAttr) string {
	switch e.Kind {
	case EntryRawRun:
		return formatRawRun(e)
	case EntryUnknown:
		return formatUnknown(e, attr)
	}
	return formatInstruction(e, attr)
}

func formatInstruction(e *Entry, attr WriteAttr) string {
	s := strings.Builder{}

	stmt := e.Mnemonic()
	if op := operandText(e, attr.Symbols); op != "" {
		stmt = fmt.Sprintf("%s %s", stmt, op)
	}
	s.WriteString(fmt.Sprintf("    %-*s", instructionWidth, stmt))

	if attr.ByteCode {
		// the operand bytes are printed in the order they appear in memory
		hex := fmt.Sprintf("%02X", e.OpCode)
		switch len(e.data) {
		case 2:
			hex = fmt.Sprintf("%s %02X", hex, e.data[1])
		case 3:
			hex = fmt.Sprintf("%s %02X%02X", hex, e.data[1], e.data[2])
		}
		s.WriteString(fmt.Sprintf("; $%04X  %-7s", e.Address, hex))
	}

	if attr.Comments && e.Comment != "" {
		if attr.ByteCode {
			s.WriteString("  ")
		}
		s.WriteString("; ")
		s.WriteString(e.Comment)
	}

	return s.String()
}

func formatUnknown(e *Entry, attr WriteAttr) string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("    %-*s", instructionWidth, e.Mnemonic()))

	if attr.ByteCode {
		s.WriteString(fmt.Sprintf("%-16s", fmt.Sprintf("; $%04X  %02x", e.Address, e.OpCode)))
	}

	if attr.Comments && e.Comment != "" {
		if attr.ByteCode {
			s.WriteString("  ")
		}
		s.WriteString("; ")
		s.WriteString(e.Comment)
	}

	return s.String()
}

func formatRawRun(e *Entry) string {
	lines := []string{}

	prefix := fmt.Sprintf(".buffer%d !byte", e.DataIndex)
	b := strings.Builder{}

	for i, v := range e.data {
		if b.Len() > 0 {
			b.WriteString(" ")
		}
		b.WriteString(fmt.Sprintf("$%02x", v))

		if b.Len() >= rawRunWidth || i == len(e.data)-1 {
			lines = append(lines, fmt.Sprintf("%s %s", prefix, b.String()))
			prefix = strings.Repeat(" ", 14)
			b.Reset()
		}
	}

	return strings.Join(lines, "\n")
}

// operandText is the operand of the entry with symbols substituted for
// numeric addresses that haven't been replaced by a label.
func operandText(e *Entry, sym *symbols.Symbols) string {
	if sym == nil || (e.Target != nil && e.Target.Label.Kind != LabelNone) {
		return e.OperandText()
	}

	// every other addressing mode has an operand that is an address
	switch e.Defn.AddressingMode {
	case instructions.Implied, instructions.Accumulator, instructions.Immediate, instructions.Relative:
		return e.OperandText()
	}

	var s string
	var ok bool
	if isWrite(e.Defn.Mnemonic) {
		s, ok = sym.GetWriteSymbol(e.Operand)
	} else {
		s, ok = sym.GetReadSymbol(e.Operand)
	}
	if !ok {
		return e.OperandText()
	}

	return e.Defn.AddressingMode.Decorate(s)
}

// isWrite is true for instructions that write to memory without reading it
// first.
func isWrite(m instructions.Mnemonic) bool {
	switch m {
	case instructions.STA, instructions.STX, instructions.STY,
		instructions.SAX, instructions.SHA, instructions.SHX,
		instructions.SHY, instructions.TAS:
		return true
	}
	return false
}
