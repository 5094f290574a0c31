package journal

import (
	"database/sql"

	_ "github.com/mattn/go-sqlite3"
)

type SQLite struct {
	db *sql.DB
}

func NewSQLite(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec(Schema); err != nil {
		return nil, err
	}

	return &SQLite{db: db}, nil
}

func (j *SQLite) RecordEvent(e Event) error {
	_, err := j.db.Exec(`
		INSERT INTO events
		(event_id, pool_id, kind, identity, amount, claim_id, time)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		e.EventID, e.PoolID, string(e.Kind), string(e.Identity),
		e.Amount, e.ClaimID, e.Time,
	)
	return err
}

func (j *SQLite) Close() error {
	return j.db.Close()
}
