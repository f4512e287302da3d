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
	"crypto/sha1"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/jetsetilly/dis64/curated"
)

// FileExtensions is the list of file extensions that are recognised by the
// programloader package.
var FileExtensions = [...]string{".PRG"}

// Loader specifies the program file to load.
type Loader struct {
	// filename of program to load. can be a http or https URL
	Filename string

	// if false, the machine code is assumed to start immediately after the
	// load address
	ParseStub bool

	// expected hash of the loaded data. empty string indicates that the hash
	// is unknown and need not be validated. after a load operation the value
	// will be the hash of the loaded data
	Hash string

	// copy of the loaded data
	Data []byte
}

// NewLoader is the preferred method of initialisation for the Loader type.
// Filenames without a recognised extension are rejected.
func NewLoader(filename string) (Loader, error) {
	ext := strings.ToUpper(filepath.Ext(filename))

	for _, e := range FileExtensions {
		if e == ext {
			return Loader{
				Filename:  filename,
				ParseStub: true,
			}, nil
		}
	}

	return Loader{}, curated.Errorf(UnsupportedFormat, ext)
}

// ShortName returns the filename without the path or extension.
func (ld Loader) ShortName() string {
	s := filepath.Base(ld.Filename)
	return strings.TrimSuffix(s, filepath.Ext(s))
}

// HasLoaded returns true if Load() has been successfully called.
func (ld Loader) HasLoaded() bool {
	return len(ld.Data) > 0
}

// Load the program file. Loader filenames with a valid scheme will use that
// method to load the data. Currently supported schemes are HTTP and local
// files.
func (ld *Loader) Load() (Program, error) {
	scheme := "file"

	u, err := url.Parse(ld.Filename)
	if err == nil {
		scheme = u.Scheme
	}

	var data []byte

	switch scheme {
	case "http", "https":
		resp, err := http.Get(ld.Filename)
		if err != nil {
			return Program{}, curated.Errorf("programloader: %v", err)
		}
		defer resp.Body.Close()

		data, err = io.ReadAll(resp.Body)
		if err != nil {
			return Program{}, curated.Errorf("programloader: %v", err)
		}

	case "file", "":
		data, err = os.ReadFile(ld.Filename)
		if err != nil {
			return Program{}, curated.Errorf("programloader: %v", err)
		}

	default:
		// a windows drive letter is parsed as a scheme
		if len(scheme) == 1 {
			data, err = os.ReadFile(ld.Filename)
			if err != nil {
				return Program{}, curated.Errorf("programloader: %v", err)
			}
		} else {
			return Program{}, curated.Errorf("programloader: %v", fmt.Sprintf("unsupported URL scheme (%s)", scheme))
		}
	}

	hash := fmt.Sprintf("%x", sha1.Sum(data))
	if ld.Hash != "" && ld.Hash != hash {
		return Program{}, curated.Errorf("programloader: %v", "unexpected hash value")
	}
	ld.Hash = hash
	ld.Data = data

	return FromBytes(ld.Filename, data, ld.ParseStub)
}
