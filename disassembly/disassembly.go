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
	"github.com/jetsetilly/dis64/curated"
	"github.com/jetsetilly/dis64/logger"
	"github.com/jetsetilly/dis64/programloader"
)

// Disassembly is the annotated disassembly of a memory image.
type Disassembly struct {
	// address of the first byte of the image
	Origin uint16

	cfg Config

	// in address order. the addresses of the entries form a contiguous and
	// gapless partition of the image
	entries []*Entry

	stats Stats
}

// Stats summarises a Disassembly.
type Stats struct {
	Entries    int
	Unknown    int
	RawRuns    int
	Labels     int
	IRQs       int
	Unresolved int
}

// FromProgram disassembles the machine code of a loaded program.
func FromProgram(prg programloader.Program, cfg Config) (*Disassembly, error) {
	dsm, err := FromBytes(prg.Code, prg.CodeAddress, cfg)
	if err != nil {
		return nil, curated.Errorf("disassembly: %s: %v", prg.Filename, err)
	}
	return dsm, nil
}

// FromBytes disassembles the image. The first byte of the image is at the
// origin address. The only error is an image that doesn't fit in the 16bit
// address space.
func FromBytes(image []byte, origin uint16, cfg Config) (*Disassembly, error) {
	if int(origin)+len(image) > 0x10000 {
		return nil, curated.Errorf("disassembly: image of %d bytes at $%04x does not fit in memory", len(image), origin)
	}

	dsm := &Disassembly{
		Origin: origin,
		cfg:    cfg,
	}

	dsm.entries = decode(image, origin, cfg)

	for _, e := range dsm.entries {
		a := annotate(e, window{image: image, ofs: int(e.Address - origin)})
		e.Comment = a.comment
		e.override = a.override
		e.hasOverride = a.hasOverride

		switch e.Kind {
		case EntryUnknown:
			dsm.stats.Unknown++
		case EntryRawRun:
			dsm.stats.RawRuns++
		}
	}
	dsm.stats.Entries = len(dsm.entries)

	dsm.Link()

	logger.Logf(logger.Allow, "disassembly", "%d entries (%d unknown, %d buffers)",
		dsm.stats.Entries, dsm.stats.Unknown, dsm.stats.RawRuns)
	logger.Logf(logger.Allow, "disassembly", "%d labels, %d irq handlers, %d unresolved targets",
		dsm.stats.Labels, dsm.stats.IRQs, dsm.stats.Unresolved)

	return dsm, nil
}

// Link resolves the targets of all control transfers and allocates labels.
// It is called by FromBytes() and need only be called again if the entries
// have been changed. Repeated calls produce the same result.
func (dsm *Disassembly) Link() {
	dsm.stats.Unresolved = link(dsm.entries)
	dsm.stats.Labels, dsm.stats.IRQs = allocateLabels(dsm.entries)
}

// Entries returns the list of entries in address order. The returned slice
// should not be modified.
func (dsm *Disassembly) Entries() []*Entry {
	return dsm.entries
}

// Find returns the entry that starts at the address. Returns nil if there is
// no such entry.
func (dsm *Disassembly) Find(addr uint16) *Entry {
	return find(dsm.entries, addr)
}

// Stats returns a summary of the disassembly.
func (dsm *Disassembly) Stats() Stats {
	return dsm.stats
}

// Config returns the configuration used to decode the image.
func (dsm *Disassembly) Config() Config {
	return dsm.cfg
}
