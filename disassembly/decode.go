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

// ZeroRunPolicy decides how zero bytes in the image are decoded. The opcode of
// the BRK instruction is zero but a run of zero bytes in a C64 program is far
// more likely to be unused or padding data than a series of BRK instructions.
// This is a heuristic and there will be programs where it is wrong.
type ZeroRunPolicy struct {
	// the minimum length of a run of zero bytes for it to be treated as data.
	// shorter runs are decoded as BRK instructions. values of less than one
	// are treated as one
	MinLength int

	// zero bytes are always decoded as BRK instructions
	AsCode bool
}

// Config is the configuration of the decoding pass.
type Config struct {
	ZeroRun ZeroRunPolicy

	// undocumented opcodes are decoded as EntryUnknown
	DocumentedOnly bool
}

// decode the image into entries. the first byte of the image is at the origin
// address. the caller must make sure the image fits in the address space.
func decode(image []byte, origin uint16, cfg Config) []*Entry {
	entries := make([]*Entry, 0, len(image)/2)

	minRun := max(cfg.ZeroRun.MinLength, 1)
	dataIndex := 0

	ofs := 0
	for ofs < len(image) {
		addr := origin + uint16(ofs)
		opcode := image[ofs]

		if opcode == 0x00 && !cfg.ZeroRun.AsCode {
			end := ofs
			for end < len(image) && image[end] == 0x00 {
				end++
			}

			if end-ofs >= minRun {
				entries = append(entries, &Entry{
					Kind:      EntryRawRun,
					Address:   addr,
					data:      image[ofs:end],
					DataIndex: dataIndex,
				})
				dataIndex++
				ofs = end
				continue // for loop
			}
		}

		defn, ok := instructions.Lookup(opcode)
		if !ok || (cfg.DocumentedOnly && defn.Undocumented) {
			entries = append(entries, &Entry{
				Kind:    EntryUnknown,
				Address: addr,
				OpCode:  opcode,
				data:    image[ofs : ofs+1],
			})
			ofs++
			continue // for loop
		}

		e := &Entry{
			Kind:    EntryInstruction,
			Address: addr,
			OpCode:  opcode,
			Defn:    defn,
		}

		// operand bytes past the end of the image are read as zero
		n := defn.AddressingMode.OperandBytes()
		if n >= 1 {
			e.Operand = uint16(byteAt(image, ofs+1))
		}
		if n >= 2 {
			e.Operand |= uint16(byteAt(image, ofs+2)) << 8
		}

		end := min(ofs+1+n, len(image))
		e.data = image[ofs:end]

		entries = append(entries, e)
		ofs = end
	}

	return entries
}

// byteAt returns zero for positions outside of the image.
func byteAt(image []byte, pos int) uint8 {
	if pos < 0 || pos >= len(image) {
		return 0
	}
	return image[pos]
}
