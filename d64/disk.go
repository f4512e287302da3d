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

package d64

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jetsetilly/dis64/curated"
	"github.com/jetsetilly/dis64/logger"
)

// FileType is the type of a file in the directory.
type FileType int

// List of valid FileType values.
const (
	DEL FileType = iota
	SEQ
	PRG
	USR
	REL
)

func (t FileType) String() string {
	switch t {
	case DEL:
		return "DEL"
	case SEQ:
		return "SEQ"
	case PRG:
		return "PRG"
	case USR:
		return "USR"
	case REL:
		return "REL"
	}
	return "???"
}

// DirEntry is a single entry in the directory.
type DirEntry struct {
	Name string
	Type FileType

	// flags from the file type byte
	Closed bool
	Locked bool

	// the first sector of the file
	Track  int
	Sector int

	// side sector and record length of REL files
	RelTrack     int
	RelSector    int
	RecordLength int

	// number of sectors used by the file, as reported by the directory
	Blocks int
}

// Disk is an opened disk image.
type Disk struct {
	Filename string

	// from the disk header
	Name        string
	ID          string
	DOSVersion  string
	Format      string
	DoubleSided uint8

	// number of free sectors according to the BAM. sectors on the directory
	// track are not counted
	FreeBlocks int

	Directory []DirEntry

	data []byte
}

// Open the named disk image.
func Open(filename string) (*Disk, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, curated.Errorf("d64: %v", err)
	}
	return FromBytes(filename, data)
}

// FromBytes reads the header and directory of the disk image in data. The
// name is used only for identification.
//
// Images with error information appended are accepted. The error information
// is ignored.
func FromBytes(name string, data []byte) (*Disk, error) {
	if len(data) < ImageSize {
		return nil, curated.Errorf(InvalidImage, len(data))
	}

	dsk := &Disk{
		Filename: name,
		data:     data,
	}

	dirTrack, dirSector, err := dsk.readHeader()
	if err != nil {
		return nil, err
	}

	err = dsk.readDirectory(dirTrack, dirSector)
	if err != nil {
		return nil, err
	}

	logger.Logf(logger.Allow, "d64", "%s: %d directory entries, %d blocks free", name, len(dsk.Directory), dsk.FreeBlocks)

	return dsk, nil
}

// ReadSector returns the 256 bytes of the sector.
func (dsk *Disk) ReadSector(track int, sector int) ([]byte, error) {
	ofs, err := sectorOffset(track, sector)
	if err != nil {
		return nil, err
	}
	return dsk.data[ofs : ofs+SectorSize], nil
}

// readHeader reads the BAM sector. returns the location of the first
// directory sector.
func (dsk *Disk) readHeader() (int, int, error) {
	bam, err := dsk.ReadSector(directoryTrack, 0)
	if err != nil {
		return 0, 0, err
	}

	dsk.Format = petsciiString(bam[0x02:0x03])
	dsk.DoubleSided = bam[0x03]

	// four bytes per track starting at $04. the first byte of each is the
	// number of free sectors in the track
	for t := 1; t <= NumTracks; t++ {
		if t == directoryTrack {
			continue // for loop
		}
		dsk.FreeBlocks += int(bam[0x04+(t-1)*4])
	}

	dsk.Name = petsciiString(bam[0x90:0xa0])
	dsk.ID = petsciiString(bam[0xa2:0xa4])
	dsk.DOSVersion = petsciiString(bam[0xa5:0xa6])

	return int(bam[0x00]), int(bam[0x01]), nil
}

// size of a directory entry. there are eight entries in every directory
// sector. the first two bytes of the first entry link to the next directory
// sector
const dirEntrySize = 32

// readDirectory follows the chain of directory sectors.
func (dsk *Disk) readDirectory(track int, sector int) error {
	visited := make(map[[2]int]bool)

	for track != 0 {
		if visited[[2]int{track, sector}] {
			return curated.Errorf(ChainLoop, track, sector)
		}
		visited[[2]int{track, sector}] = true

		s, err := dsk.ReadSector(track, sector)
		if err != nil {
			return err
		}

		for i := 0; i < SectorSize; i += dirEntrySize {
			d := s[i : i+dirEntrySize]

			e := DirEntry{
				Type:         FileType(d[0x02] & 0x07),
				Locked:       d[0x02]&0x40 == 0x40,
				Closed:       d[0x02]&0x80 == 0x80,
				Track:        int(d[0x03]),
				Sector:       int(d[0x04]),
				Name:         petsciiString(d[0x05:0x15]),
				RelTrack:     int(d[0x15]),
				RelSector:    int(d[0x16]),
				RecordLength: int(d[0x17]),
				Blocks:       int(d[0x1e]) | int(d[0x1f])<<8,
			}

			// unused entries have no name
			if e.Name != "" {
				dsk.Directory = append(dsk.Directory, e)
			}
		}

		track = int(s[0x00])
		sector = int(s[0x01])
	}

	return nil
}

// Find returns every directory entry that matches the pattern. A pattern
// ending with an asterisk matches every name that starts with the text before
// the asterisk.
func (dsk *Disk) Find(pattern string) []DirEntry {
	var m []DirEntry
	for _, e := range dsk.Directory {
		if match(pattern, e.Name) {
			m = append(m, e)
		}
	}
	return m
}

// FindFile returns the directory entry for the named file. It is an error if
// the name matches more than one file. If the name doesn't match any file
// then it is tried again as a prefix.
func (dsk *Disk) FindFile(name string) (DirEntry, error) {
	m := dsk.Find(name)
	if len(m) == 0 && !strings.HasSuffix(name, "*") {
		m = dsk.Find(name + "*")
	}

	switch len(m) {
	case 0:
		return DirEntry{}, curated.Errorf(FileNotFound, name)
	case 1:
		return m[0], nil
	}
	return DirEntry{}, curated.Errorf(AmbiguousName, name, len(m))
}

// ReadFile returns the contents of the file by following its chain of
// sectors. Each sector holds 254 bytes of data. The last sector in the chain
// has a track number of zero and the sector number is the position of the
// last byte of data in that sector.
func (dsk *Disk) ReadFile(e DirEntry) ([]byte, error) {
	var data []byte
	visited := make(map[[2]int]bool)

	track := e.Track
	sector := e.Sector

	for {
		if visited[[2]int{track, sector}] {
			return nil, curated.Errorf(ChainLoop, track, sector)
		}
		visited[[2]int{track, sector}] = true

		s, err := dsk.ReadSector(track, sector)
		if err != nil {
			return nil, curated.Errorf("d64: %s: %v", e.Name, err)
		}

		track = int(s[0x00])
		sector = int(s[0x01])

		if track == 0 {
			n := max(sector-1, 0)
			data = append(data, s[2:2+min(n, SectorSize-2)]...)
			break // for loop
		}

		data = append(data, s[2:]...)
	}

	return data, nil
}

// List writes the directory in the style of the C64 LIST command. Only entries
// matching the pattern are listed. The empty string matches every entry.
func (dsk *Disk) List(output io.Writer, pattern string) {
	fmt.Fprintf(output, "%d \"%-16s\" %s %s%s\n", dsk.DoubleSided, dsk.Name, dsk.ID, dsk.DOSVersion, dsk.Format)

	for _, e := range dsk.Directory {
		if pattern != "" && !match(pattern, e.Name) {
			continue // for loop
		}
		fmt.Fprintf(output, "%-4d %-18s %s\n", e.Blocks, fmt.Sprintf("\"%s\"", e.Name), e.Type)
	}

	fmt.Fprintf(output, "%d blocks free\n", dsk.FreeBlocks)
}

func match(pattern string, name string) bool {
	if prefix, _, ok := strings.Cut(pattern, "*"); ok {
		return strings.HasPrefix(name, prefix)
	}
	return pattern == name
}

// petsciiString converts a padded PETSCII string. the string ends at the first
// shifted space or zero byte.
func petsciiString(b []byte) string {
	s := strings.Builder{}
	for _, c := range b {
		if c == 0xa0 || c == 0x00 {
			break // for loop
		}
		s.WriteRune(petsciiToASCII(c))
	}
	return s.String()
}

func petsciiToASCII(c uint8) rune {
	switch {
	case c >= 0x20 && c <= 0x5f:
		return rune(c)
	case c >= 0xc1 && c <= 0xda:
		return rune(c - 0xc1 + 'A')
	}
	return '?'
}
