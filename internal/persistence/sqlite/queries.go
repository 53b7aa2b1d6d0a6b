package sqlite

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/checker-network/leaderboard/internal/models"
)

// StoreSnapshot stores the snapshot and its rates in a single transaction.
func (db *Database) StoreSnapshot(snapshot models.Snapshot) (err error) {
	db.Lock()
	defer db.Unlock()

	tx, err := db.sqlite.Begin()
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	_, err = tx.Exec(`INSERT INTO snapshots(id, time_ns, failed) VALUES(?, ?, ?);`,
		snapshot.ID, snapshot.Time.UnixNano(), boolToInt(snapshot.Failed))
	if err != nil {
		return fmt.Errorf("inserting snapshot: %w", err)
	}

	for _, rate := range snapshot.Rates {
		_, err = tx.Exec(`INSERT INTO rates(snapshot_id, network, rank, success_rate)
		VALUES(?, ?, ?, ?);`,
			snapshot.ID, rate.NetworkID, rate.Rank, rate.SuccessRate)
		if err != nil {
			return fmt.Errorf("inserting rate for network %s: %w", rate.NetworkID, err)
		}
	}

	err = tx.Commit()
	if err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}

// GetSnapshots returns at most limit snapshots, from newest to oldest.
// A limit of 0 returns all the snapshots.
func (db *Database) GetSnapshots(limit int) (snapshots []models.Snapshot, err error) {
	db.Lock()
	defer db.Unlock()

	if limit <= 0 {
		limit = -1 // no limit for SQLite
	}
	rows, err := db.sqlite.Query(
		`SELECT id, time_ns, failed FROM snapshots
		ORDER BY time_ns DESC
		LIMIT ?;`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying snapshots: %w", err)
	}

	snapshots, err = scanSnapshots(rows)
	if err != nil {
		return nil, err
	}

	for i := range snapshots {
		snapshots[i].Rates, err = db.getRates(snapshots[i].ID)
		if err != nil {
			return nil, fmt.Errorf("getting rates for snapshot %s: %w", snapshots[i].ID, err)
		}
	}
	return snapshots, nil
}

func scanSnapshots(rows *sql.Rows) (snapshots []models.Snapshot, err error) {
	defer func() {
		closeErr := rows.Close()
		if err == nil && closeErr != nil {
			err = fmt.Errorf("closing rows: %w", closeErr)
		}
	}()

	snapshots = []models.Snapshot{}
	for rows.Next() {
		var snapshot models.Snapshot
		var timeNanoseconds int64
		var failed int
		err = rows.Scan(&snapshot.ID, &timeNanoseconds, &failed)
		if err != nil {
			return nil, fmt.Errorf("scanning snapshot: %w", err)
		}
		snapshot.Time = time.Unix(0, timeNanoseconds).UTC()
		snapshot.Failed = failed != 0
		snapshots = append(snapshots, snapshot)
	}
	return snapshots, rows.Err()
}

func (db *Database) getRates(snapshotID string) (rates []models.NetworkRate, err error) {
	rows, err := db.sqlite.Query(
		`SELECT network, rank, success_rate FROM rates
		WHERE snapshot_id = ?
		ORDER BY rank ASC;`, snapshotID)
	if err != nil {
		return nil, err
	}
	defer func() {
		closeErr := rows.Close()
		if err == nil && closeErr != nil {
			err = fmt.Errorf("closing rows: %w", closeErr)
		}
	}()

	for rows.Next() {
		var rate models.NetworkRate
		err = rows.Scan(&rate.NetworkID, &rate.Rank, &rate.SuccessRate)
		if err != nil {
			return nil, err
		}
		rates = append(rates, rate)
	}
	return rates, rows.Err()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
