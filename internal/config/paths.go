package config

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"strconv"

	"github.com/qdm12/gosettings"
	"github.com/qdm12/gosettings/reader"
	"github.com/qdm12/gosettings/validate"
	"github.com/qdm12/gotree"
)

type Paths struct {
	DataDir *string
	// Storage is the snapshots storage, either json or sqlite.
	Storage string
	// Umask is the umask applied to the program, nil to keep
	// the current one.
	Umask *fs.FileMode
}

func (p *Paths) setDefaults() {
	p.DataDir = gosettings.DefaultPointer(p.DataDir, "./data")
	p.Storage = gosettings.DefaultComparable(p.Storage, "json")
}

func (p Paths) Validate() (err error) {
	err = validate.IsOneOf(p.Storage, "json", "sqlite")
	if err != nil {
		return fmt.Errorf("storage: %w", err)
	}
	return nil
}

// SnapshotsFile returns the path of the file storing the snapshots.
func (p Paths) SnapshotsFile() string {
	name := "snapshots.json"
	if p.Storage == "sqlite" {
		name = "snapshots.db"
	}
	return filepath.Join(*p.DataDir, name)
}

func (p Paths) String() string {
	return p.toLinesNode().String()
}

func (p Paths) toLinesNode() *gotree.Node {
	node := gotree.New("Paths")
	node.Appendf("Data directory: %s", *p.DataDir)
	node.Appendf("Storage: %s", p.Storage)
	if p.Umask != nil {
		node.Appendf("Umask: %04o", *p.Umask)
	}
	return node
}

func (p *Paths) read(r *reader.Reader) (err error) {
	p.DataDir = r.Get("DATADIR", reader.ForceLowercase(false))
	p.Storage = r.String("STORAGE")

	umaskString := r.Get("UMASK")
	if umaskString != nil {
		umask, err := parseUmask(*umaskString)
		if err != nil {
			return fmt.Errorf("environment variable UMASK: %w", err)
		}
		p.Umask = &umask
	}
	return nil
}

func parseUmask(s string) (umask fs.FileMode, err error) {
	const base, bitSize = 8, 32
	umaskUint64, err := strconv.ParseUint(s, base, bitSize)
	if err != nil {
		return 0, err
	}
	return fs.FileMode(umaskUint64), nil
}
