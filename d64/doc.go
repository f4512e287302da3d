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

// Package d64 reads D64 disk images. A D64 image is a sector by sector copy of
// a 35 track disk formatted by the 1541 disk drive.
//
// The disk header and the directory are read when the image is opened. Files
// can be found by name, with an optional trailing wildcard, and read by
// following the chain of sectors that make up the file:
//
//	dsk, err := d64.Open("games.d64")
//	if err != nil {
//		return err
//	}
//	entry, err := dsk.FindFile("HELLO*")
//	if err != nil {
//		return err
//	}
//	data, err := dsk.ReadFile(entry)
//
// Track numbers are one based and sector numbers are zero based, as they are
// on the disk itself.
package d64
