package db

import (
	"database/sql"
	"fmt"
	"iter"
	"log/slog"
	"time"

	"github.com/mundomaya/hoteles/model"

	_ "github.com/mattn/go-sqlite3"
)

type SQLiteStorage struct {
	db *sql.DB
}

func InitDBStorage(db *sql.DB) error {
	sqlStmt := `
	create table if not exists modal_events(mount text, kind text, reason text, ts datetime);`

	if _, err := db.Exec(sqlStmt); err != nil {
		return fmt.Errorf("could not create modal_events table: %w", err)
	}

	sqlStmt = `create index if not exists modal_events_tsix on modal_events (ts ASC);`
	if _, err := db.Exec(sqlStmt); err != nil {
		return fmt.Errorf("could not create modal_events index: %w", err)
	}

	return nil
}

// ConnectDB opens (creating if needed) the sqlite impression log at path.
func ConnectDB(path string) (*SQLiteStorage, error) {
	conn, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("could not open %s: %w", path, err)
	}

	// :memory: databases are per connection.
	conn.SetMaxOpenConns(1)

	if err := InitDBStorage(conn); err != nil {
		conn.Close()

		return nil, err
	}

	return &SQLiteStorage{conn}, nil
}

func (s *SQLiteStorage) Store(event *model.ModalEvent) error {
	ts := event.Timestamp
	if ts.IsZero() {
		ts = time.Now()
	}

	_, err := s.db.Exec(`insert into modal_events(mount, kind, reason, ts) values(?, ?, ?, ?)`,
		event.MountID, string(event.Kind), event.Reason, ts.UTC())
	if err != nil {
		return fmt.Errorf("could not store %s event: %w", event.Kind, err)
	}

	return nil
}

func (s *SQLiteStorage) GatherCounts() ([]model.EventCount, error) {
	rows, err := s.db.Query(
		`select kind, reason, count(*) as cnt
        from modal_events
        group by kind, reason
        order by kind, reason`)
	if err != nil {
		return nil, fmt.Errorf("could not query event counts: %w", err)
	}

	defer rows.Close()

	result := make([]model.EventCount, 0)

	for rows.Next() {
		var kind, reason string

		var count int

		if err := rows.Scan(&kind, &reason, &count); err != nil {
			return nil, fmt.Errorf("could not scan event count: %w", err)
		}

		result = append(result, model.EventCount{Kind: model.ModalEventKind(kind), Reason: reason, Count: count})
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("could not read event counts: %w", err)
	}

	return result, nil
}

// AllIterator streams every event in time order. The query only runs once the
// sequence is ranged, and its rows are released when the range stops.
func (s *SQLiteStorage) AllIterator() iter.Seq2[model.ModalEvent, error] {
	return func(yield func(model.ModalEvent, error) bool) {
		rows, err := s.db.Query(`select mount, kind, reason, ts from modal_events order by ts`)
		if err != nil {
			yield(model.ModalEvent{}, fmt.Errorf("could not query events: %w", err))

			return
		}

		defer rows.Close()

		for rows.Next() {
			var e model.ModalEvent

			var kind string

			if err := rows.Scan(&e.MountID, &kind, &e.Reason, &e.Timestamp); err != nil {
				yield(model.ModalEvent{}, fmt.Errorf("could not scan event: %w", err))

				return
			}

			e.Kind = model.ModalEventKind(kind)

			if !yield(e, nil) {
				return
			}
		}

		if err := rows.Err(); err != nil {
			yield(model.ModalEvent{}, fmt.Errorf("could not read events: %w", err))
		}
	}
}

func (s *SQLiteStorage) Close() {
	if err := s.db.Close(); err != nil {
		slog.Error("Failed to close storage", "error", err)
	}
}
