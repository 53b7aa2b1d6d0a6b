package json

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

const (
	fileName = "snapshots.json"
	// DefaultMaxSnapshots is the default number of snapshots kept in the file.
	DefaultMaxSnapshots = 2880
)

type Database struct {
	data         dataModel
	filepath     string
	maxSnapshots int
	sync.RWMutex
}

func (db *Database) Close() error {
	db.Lock() // ensure a write operation finishes
	defer db.Unlock()
	return nil
}

// NewDatabase opens or creates the JSON file database in dataDir.
// Only the last maxSnapshots snapshots are kept in the file.
func NewDatabase(dataDir string, maxSnapshots int) (*Database, error) {
	db := Database{
		filepath:     filepath.Join(dataDir, fileName),
		maxSnapshots: maxSnapshots,
	}

	data, err := os.ReadFile(db.filepath)
	if errors.Is(err, os.ErrNotExist) {
		const perm = 0o700
		err = os.MkdirAll(dataDir, perm)
		if err != nil {
			return nil, fmt.Errorf("creating data directory: %w", err)
		}
		db.data.Snapshots = []snapshot{}
		err = db.write()
		if err != nil {
			return nil, fmt.Errorf("creating %s: %w", db.filepath, err)
		}
		return &db, nil
	} else if err != nil {
		return nil, fmt.Errorf("reading %s: %w", db.filepath, err)
	}

	err = json.Unmarshal(data, &db.data)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", db.filepath, err)
	}

	err = db.Check()
	if err != nil {
		return nil, fmt.Errorf("%s validation error: %w", db.filepath, err)
	}
	return &db, nil
}

var (
	ErrSnapshotIDEmpty       = errors.New("snapshot id is empty")
	ErrSnapshotTimeEmpty     = errors.New("snapshot time is empty")
	ErrSnapshotsMisordered   = errors.New("snapshots are not ordered correctly by time")
	ErrRateNetworkEmpty      = errors.New("rate network is empty")
	ErrRateOutOfRange        = errors.New("rate is out of range")
	ErrFailedSnapshotHasRate = errors.New("failed snapshot has rates")
)

func (db *Database) Check() error {
	var t time.Time
	for i, snapshot := range db.data.Snapshots {
		switch {
		case snapshot.ID == "":
			return fmt.Errorf("%w: snapshot %d of %d",
				ErrSnapshotIDEmpty, i+1, len(db.data.Snapshots))
		case snapshot.Time.IsZero():
			return fmt.Errorf("%w: for snapshot %s", ErrSnapshotTimeEmpty, snapshot.ID)
		case snapshot.Time.Before(t):
			return fmt.Errorf("%w: snapshot %s", ErrSnapshotsMisordered, snapshot.ID)
		case snapshot.Failed && len(snapshot.Rates) > 0:
			return fmt.Errorf("%w: snapshot %s", ErrFailedSnapshotHasRate, snapshot.ID)
		}
		t = snapshot.Time

		for _, rate := range snapshot.Rates {
			switch {
			case rate.NetworkID == "":
				return fmt.Errorf("%w: for snapshot %s", ErrRateNetworkEmpty, snapshot.ID)
			case rate.SuccessRate < 0 || rate.SuccessRate > 100:
				return fmt.Errorf("%w: %g for network %s in snapshot %s",
					ErrRateOutOfRange, rate.SuccessRate, rate.NetworkID, snapshot.ID)
			}
		}
	}
	return nil
}

func (db *Database) write() error {
	data, err := json.MarshalIndent(db.data, "", "  ")
	if err != nil {
		return err
	}
	const perm = 0o600
	return os.WriteFile(db.filepath, data, perm)
}
