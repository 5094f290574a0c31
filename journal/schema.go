// journal/schema.go
package journal

const Schema = `
CREATE TABLE IF NOT EXISTS events (
	event_id TEXT PRIMARY KEY,
	pool_id TEXT NOT NULL,
	kind TEXT NOT NULL,
	identity TEXT NOT NULL,
	amount INTEGER NOT NULL,
	claim_id TEXT NOT NULL DEFAULT '',
	time DATETIME NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_events_time ON events(time);
CREATE INDEX IF NOT EXISTS idx_events_pool ON events(pool_id);
`
