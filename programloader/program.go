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

package programloader

import (
	"strconv"
	"strings"

	"github.com/jetsetilly/dis64/curated"
	"github.com/jetsetilly/dis64/logger"
)

// the BASIC token for the SYS command.
const tokenSYS = 0x9e

// Stub is the BASIC program that starts the machine code.
type Stub struct {
	// pointer to the second line of the BASIC program
	LinePointer uint16

	LineNumber uint16

	// the text following the SYS token. normally the decimal address of the
	// machine code
	Command string

	// pointer following the first line. zero if the BASIC program is only one
	// line long
	NextLine uint16

	// the bytes of the stub as they appear in the file, not including the
	// load address
	Bytes []byte
}

// Address returns the address of the SYS command. Returns false if the
// command is not a decimal number.
func (s Stub) Address() (uint16, bool) {
	v, err := strconv.ParseUint(strings.TrimSpace(s.Command), 10, 16)
	if err != nil {
		return 0, false
	}
	return uint16(v), true
}

// Program is a loaded program file.
type Program struct {
	Filename    string
	LoadAddress uint16

	// nil if the stub was not parsed
	Stub *Stub

	// the machine code and the address of the first byte
	Code        []byte
	CodeAddress uint16
}

// FromBytes creates a Program from the contents of a program file. The
// filename is used only for identification.
func FromBytes(filename string, data []byte, parseStub bool) (Program, error) {
	if len(data) < 2 {
		return Program{}, curated.Errorf(FileTooSmall, len(data))
	}

	prg := Program{
		Filename:    filename,
		LoadAddress: uint16(data[0]) | uint16(data[1])<<8,
	}

	ofs := 2

	if parseStub {
		stub, n, err := parseBASIC(data[ofs:])
		if err != nil {
			return Program{}, err
		}
		prg.Stub = &stub
		ofs += n

		if stub.NextLine != 0x0000 {
			logger.Logf(logger.Allow, "programloader", "basic next line address: $%04x", stub.NextLine)
		}
	}

	ofs = min(ofs, len(data))
	prg.Code = data[ofs:]

	addr := int(prg.LoadAddress) + ofs - 2
	if addr+len(prg.Code) > 0x10000 {
		return Program{}, curated.Errorf(TooLarge, len(prg.Code), addr&0xffff)
	}
	prg.CodeAddress = uint16(addr)

	return prg, nil
}

// parseBASIC parses the first line of the BASIC program. returns the number
// of bytes consumed, which may be greater than the length of the data if the
// final pointer is truncated.
func parseBASIC(data []byte) (Stub, int, error) {
	at := func(i int) uint8 {
		if i >= len(data) {
			return 0
		}
		return data[i]
	}

	stub := Stub{
		LinePointer: uint16(at(0)) | uint16(at(1))<<8,
		LineNumber:  uint16(at(2)) | uint16(at(3))<<8,
	}

	// skip to SYS token
	ofs := 4
	for ofs < len(data) && data[ofs] != tokenSYS {
		ofs++
	}
	if ofs >= len(data) {
		return Stub{}, 0, curated.Errorf(NoSYS)
	}
	ofs++

	// the command text is terminated by a zero byte
	s := strings.Builder{}
	for ofs < len(data) {
		b := data[ofs]
		ofs++
		if b == 0x00 {
			break // for loop
		}
		s.WriteRune(rune(b))
	}
	stub.Command = s.String()

	stub.NextLine = uint16(at(ofs)) | uint16(at(ofs+1))<<8
	ofs += 2

	stub.Bytes = data[:min(ofs, len(data))]

	return stub, ofs, nil
}
