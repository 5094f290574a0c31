package journal

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/rustyeddy/custodian/ledger"
)

// GetEvent returns a single event record by ID.
func (j *SQLite) GetEvent(eventID string) (Event, error) {
	var (
		rec      Event
		kind     string
		identity string
	)

	row := j.db.QueryRow(`
		SELECT event_id, pool_id, kind, identity, amount, claim_id, time
		FROM events
		WHERE event_id = ?`, eventID)

	err := row.Scan(
		&rec.EventID,
		&rec.PoolID,
		&kind,
		&identity,
		&rec.Amount,
		&rec.ClaimID,
		&rec.Time,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return Event{}, fmt.Errorf("event %q not found", eventID)
		}
		return Event{}, err
	}

	rec.Kind = Kind(kind)
	rec.Identity = ledger.Identity(identity)
	return rec, nil
}

// ListEventsBetween returns events whose time is within [start, end).
func (j *SQLite) ListEventsBetween(start, end time.Time) ([]Event, error) {
	rows, err := j.db.Query(`
		SELECT event_id, pool_id, kind, identity, amount, claim_id, time
		FROM events
		WHERE time >= ? AND time < ?
		ORDER BY time ASC`, start, end)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanEvents(rows)
}

// ListPoolEvents returns every event recorded for one pool, oldest first.
func (j *SQLite) ListPoolEvents(poolID string) ([]Event, error) {
	rows, err := j.db.Query(`
		SELECT event_id, pool_id, kind, identity, amount, claim_id, time
		FROM events
		WHERE pool_id = ?
		ORDER BY time ASC, event_id ASC`, poolID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanEvents(rows)
}

func scanEvents(rows *sql.Rows) ([]Event, error) {
	var out []Event
	for rows.Next() {
		var (
			rec      Event
			kind     string
			identity string
		)
		if err := rows.Scan(
			&rec.EventID,
			&rec.PoolID,
			&kind,
			&identity,
			&rec.Amount,
			&rec.ClaimID,
			&rec.Time,
		); err != nil {
			return nil, err
		}
		rec.Kind = Kind(kind)
		rec.Identity = ledger.Identity(identity)
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
