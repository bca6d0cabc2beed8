package sqlite

import "database/sql"

// schema sets up the record table. It runs on startup to ensure tables exist.
// Each row holds one keyed JSON record (see storage.Key* constants).
const schema = `
CREATE TABLE IF NOT EXISTS records (
    key TEXT PRIMARY KEY,
    value TEXT NOT NULL,
    updated_at INTEGER NOT NULL
);
`

// runMigrations executes the schema setup.
func runMigrations(db *sql.DB) error {
	_, err := db.Exec(schema)
	return err
}
