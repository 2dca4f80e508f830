/*
File    : spindle/file/file.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Package file turns a CLI filename argument into the (filename, source)
pair the front end's Input tuple names.
*/
package file

import (
	"fmt"
	"os"
)

// Load reads path and returns its contents alongside the filename to
// attach to every span produced from it.
func Load(path string) (filename string, source string, err error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return path, "", fmt.Errorf("could not read '%s': %w", path, err)
	}
	return path, string(data), nil
}
