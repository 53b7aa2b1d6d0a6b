package config

import "io/fs"

// ApplyUmask does nothing on Windows.
func (p Paths) ApplyUmask() (previous fs.FileMode) {
	return 0
}
