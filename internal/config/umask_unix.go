//go:build !windows

package config

import (
	"io/fs"
	"syscall"
)

// ApplyUmask sets the umask of the program if one is configured,
// and returns the umask in effect before.
func (p Paths) ApplyUmask() (previous fs.FileMode) {
	if p.Umask == nil {
		const tempMask = 0o022
		oldMask := syscall.Umask(tempMask)
		syscall.Umask(oldMask)
		return fs.FileMode(oldMask)
	}
	return fs.FileMode(syscall.Umask(int(*p.Umask)))
}
