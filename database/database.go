package database

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
)

const schema = `
CREATE TABLE IF NOT EXISTS moods (
    id SERIAL PRIMARY KEY,
    user_name TEXT NOT NULL,
    weather TEXT NOT NULL,
    comment TEXT NOT NULL DEFAULT '',
    entry_date DATE NOT NULL,
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    CONSTRAINT moods_user_day_unique UNIQUE (user_name, entry_date)
)`

func ConnectDB(databaseURL string) (*sql.DB, error) {
	if databaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL not set")
	}

	db, err := sql.Open("postgres", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return db, nil
}

// EnsureSchema creates the moods table if it does not exist yet. The unique
// constraint on (user_name, entry_date) is what makes the one-mood-per-day
// rule hold under concurrent submissions.
func EnsureSchema(db *sql.DB) error {
	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}
	return nil
}
