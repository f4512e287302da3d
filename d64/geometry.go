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

import "github.com/jetsetilly/dis64/curated"

// Geometry of a 35 track disk.
const (
	NumTracks  = 35
	SectorSize = 256
	NumSectors = 683
	ImageSize  = NumSectors * SectorSize
)

// the track containing the BAM and the directory.
const directoryTrack = 18

// SectorsInTrack returns the number of sectors in the track. The outer tracks
// of the disk have more sectors than the inner tracks. Returns zero for
// tracks that don't exist.
func SectorsInTrack(track int) int {
	switch {
	case track < 1 || track > NumTracks:
		return 0
	case track <= 17:
		return 21
	case track <= 24:
		return 19
	case track <= 30:
		return 18
	}
	return 17
}

// trackOffset is the offset of the first sector of the track in the image.
func trackOffset(track int) int {
	t := track - 1
	switch {
	case t < 17:
		return t * 21 * SectorSize
	case t < 24:
		return 0x16500 + (t-17)*19*SectorSize
	case t < 30:
		return 0x1ea00 + (t-24)*18*SectorSize
	}
	return 0x25600 + (t-30)*17*SectorSize
}

// sectorOffset is the offset of the sector in the image.
func sectorOffset(track int, sector int) (int, error) {
	if sector < 0 || sector >= SectorsInTrack(track) {
		return 0, curated.Errorf(InvalidSector, track, sector)
	}
	return trackOffset(track) + sector*SectorSize, nil
}
