// Package fallback provides the read-only sample dataset served when the
// remote backend is absent or failing. The data lives in an in-memory SQLite
// database seeded once at construction; nothing is ever written to it
// afterwards, and nothing is persisted to disk.
package fallback

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/example/glass-calendar/internal/calendar"
	"github.com/example/glass-calendar/internal/event"
	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE events (
	id             TEXT PRIMARY KEY,
	title          TEXT NOT NULL,
	description    TEXT NOT NULL DEFAULT '',
	date           TEXT NOT NULL,
	start_time     TEXT NOT NULL,
	end_time       TEXT NOT NULL,
	location       TEXT NOT NULL DEFAULT '',
	color          TEXT NOT NULL,
	organizer      TEXT NOT NULL DEFAULT '',
	attendees      TEXT NOT NULL DEFAULT '[]',
	image_url      TEXT,
	thumbnail_url  TEXT,
	image_filename TEXT,
	created_at     TEXT NOT NULL,
	updated_at     TEXT NOT NULL,
	CHECK (start_time < end_time)
);
CREATE INDEX idx_events_date ON events (date, start_time);
`

// Dataset is the date-range-queryable sample event collection.
type Dataset struct {
	db *sql.DB
}

// Open builds the in-memory database and seeds it with the sample events.
func Open() (*Dataset, error) {
	db, err := sql.Open("sqlite", "file:fallback?mode=memory&cache=shared")
	if err != nil {
		return nil, fmt.Errorf("failed to open fallback database: %w", err)
	}
	// A single connection keeps the shared in-memory database alive for the
	// process lifetime.
	db.SetMaxOpenConns(1)

	ds := &Dataset{db: db}
	if err := ds.seed(context.Background(), SampleEvents()); err != nil {
		_ = db.Close()
		return nil, err
	}
	return ds, nil
}

// Close releases the in-memory database.
func (d *Dataset) Close() error {
	if d == nil || d.db == nil {
		return nil
	}
	return d.db.Close()
}

// QueryRange returns the sample events whose date falls inside the window,
// ordered by date then start time ascending.
func (d *Dataset) QueryRange(ctx context.Context, window calendar.Window) ([]event.Event, error) {
	if d == nil || d.db == nil {
		return nil, fmt.Errorf("fallback dataset not initialised")
	}

	rows, err := d.db.QueryContext(ctx, `
		SELECT id, title, description, date, start_time, end_time,
		       location, color, organizer, attendees,
		       image_url, thumbnail_url, image_filename,
		       created_at, updated_at
		FROM events
		WHERE date BETWEEN ? AND ?
		ORDER BY date ASC, start_time ASC`,
		window.Start.Format(event.DateLayout),
		window.End.Format(event.DateLayout),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query fallback events: %w", err)
	}
	defer rows.Close()

	events := make([]event.Event, 0)
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate fallback events: %w", err)
	}
	return events, nil
}

func (d *Dataset) seed(ctx context.Context, events []event.Event) error {
	if _, err := d.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to create fallback schema: %w", err)
	}

	tx, err := d.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin seed transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO events (id, title, description, date, start_time, end_time,
		                    location, color, organizer, attendees,
		                    image_url, thumbnail_url, image_filename,
		                    created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare seed statement: %w", err)
	}
	defer stmt.Close()

	for _, e := range events {
		attendees, err := json.Marshal(e.Attendees)
		if err != nil {
			return fmt.Errorf("failed to encode attendees for %s: %w", e.ID, err)
		}
		_, err = stmt.ExecContext(ctx,
			e.ID, e.Title, e.Description, e.Date, e.StartTime, e.EndTime,
			e.Location, e.Color, e.Organizer, string(attendees),
			nullable(e.ImageURL), nullable(e.ThumbnailURL), nullable(e.ImageFilename),
			e.CreatedAt.UTC().Format(time.RFC3339),
			e.UpdatedAt.UTC().Format(time.RFC3339),
		)
		if err != nil {
			return fmt.Errorf("failed to seed event %s: %w", e.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit seed transaction: %w", err)
	}
	return nil
}

func scanEvent(rows *sql.Rows) (event.Event, error) {
	var (
		e         event.Event
		attendees string
		imageURL  sql.NullString
		thumbURL  sql.NullString
		filename  sql.NullString
		createdAt string
		updatedAt string
	)
	err := rows.Scan(
		&e.ID, &e.Title, &e.Description, &e.Date, &e.StartTime, &e.EndTime,
		&e.Location, &e.Color, &e.Organizer, &attendees,
		&imageURL, &thumbURL, &filename,
		&createdAt, &updatedAt,
	)
	if err != nil {
		return event.Event{}, fmt.Errorf("failed to scan fallback event: %w", err)
	}

	if err := json.Unmarshal([]byte(attendees), &e.Attendees); err != nil {
		return event.Event{}, fmt.Errorf("failed to decode attendees for %s: %w", e.ID, err)
	}
	if imageURL.Valid {
		e.ImageURL = &imageURL.String
	}
	if thumbURL.Valid {
		e.ThumbnailURL = &thumbURL.String
	}
	if filename.Valid {
		e.ImageFilename = &filename.String
	}
	if e.CreatedAt, err = time.Parse(time.RFC3339, createdAt); err != nil {
		return event.Event{}, fmt.Errorf("failed to parse created_at for %s: %w", e.ID, err)
	}
	if e.UpdatedAt, err = time.Parse(time.RFC3339, updatedAt); err != nil {
		return event.Event{}, fmt.Errorf("failed to parse updated_at for %s: %w", e.ID, err)
	}
	return e, nil
}

func nullable(value *string) any {
	if value == nil {
		return nil
	}
	return *value
}
