package storage

import (
	"database/sql"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	_ "modernc.org/sqlite"
)

// TimeRange represents different time window options
type TimeRange int

const (
	Range30Min TimeRange = iota
	Range1Hour
	Range6Hour
	Range1Day
	Range1Week
)

func (t TimeRange) String() string {
	switch t {
	case Range30Min:
		return "30min"
	case Range1Hour:
		return "1hour"
	case Range6Hour:
		return "6hours"
	case Range1Day:
		return "1day"
	case Range1Week:
		return "1week"
	default:
		return "unknown"
	}
}

// Duration returns the time duration for the range
func (t TimeRange) Duration() time.Duration {
	switch t {
	case Range30Min:
		return 30 * time.Minute
	case Range1Hour:
		return 1 * time.Hour
	case Range6Hour:
		return 6 * time.Hour
	case Range1Day:
		return 24 * time.Hour
	case Range1Week:
		return 7 * 24 * time.Hour
	default:
		return 30 * time.Minute
	}
}

// ParseTimeRange accepts the String() names and the short forms 30m, 1h, 6h, 1d, 1w
func ParseTimeRange(s string) (TimeRange, error) {
	switch s {
	case "30min", "30m":
		return Range30Min, nil
	case "1hour", "1h":
		return Range1Hour, nil
	case "6hours", "6h":
		return Range6Hour, nil
	case "1day", "1d", "24h":
		return Range1Day, nil
	case "1week", "1w", "7d":
		return Range1Week, nil
	default:
		return Range30Min, fmt.Errorf("unknown time range %q", s)
	}
}

// EventKind classifies journal entries
type EventKind string

const (
	EventLoaded     EventKind = "loaded"
	EventLoadFailed EventKind = "load_failed"
	EventCopied     EventKind = "copied"
)

// Event is one dashboard activity: a load outcome or a copy action.
// Message content is never stored; copies record the row key only.
type Event struct {
	Kind      EventKind
	Timestamp time.Time
	Count     int    // records loaded
	Detail    string // error text or row key
}

const retention = 7 * 24 * time.Hour

// Storage is the persistent activity journal
type Storage struct {
	db        *sql.DB
	writeChan chan *Event
	closeChan chan struct{}
	wg        sync.WaitGroup
	closeOnce sync.Once
	log       logrus.FieldLogger
}

// Option configures Storage behavior
type Option func(*Storage)

// WithLogger sets the logger used to report failed journal writes
func WithLogger(l logrus.FieldLogger) Option {
	return func(s *Storage) {
		s.log = l
	}
}

// NewStorage opens (or creates) the journal database at path
func NewStorage(path string, opts ...Option) (*Storage, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// sqlite serializes writers; one connection avoids SQLITE_BUSY between the writer and queries
	db.SetMaxOpenConns(1)

	if err := createTables(db); err != nil {
		db.Close()
		return nil, err
	}

	discard := logrus.New()
	discard.SetOutput(io.Discard)

	storage := &Storage{
		db:        db,
		writeChan: make(chan *Event, 1000),
		closeChan: make(chan struct{}),
		log:       discard,
	}
	for _, opt := range opts {
		opt(storage)
	}

	storage.wg.Add(2)
	go storage.writer()
	go storage.cleanup()

	return storage, nil
}

// createTables creates the database schema
func createTables(db *sql.DB) error {
	schema := `
	CREATE TABLE IF NOT EXISTS events (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		kind TEXT NOT NULL,
		timestamp INTEGER NOT NULL,
		count INTEGER NOT NULL DEFAULT 0,
		detail TEXT NOT NULL DEFAULT ''
	);

	CREATE INDEX IF NOT EXISTS idx_events_time
	ON events(timestamp);
	`

	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}

// Write queues an event for writing
func (s *Storage) Write(event *Event) {
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}
	select {
	case s.writeChan <- event:
	default:
		// Channel full, drop rather than block the UI
	}
}

// writer runs in background and batch writes to database
func (s *Storage) writer() {
	defer s.wg.Done()

	buffer := make([]*Event, 0, 100)
	ticker := time.NewTicker(5 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case event := <-s.writeChan:
			buffer = append(buffer, event)
			if len(buffer) >= 50 {
				s.flush(buffer)
				buffer = buffer[:0]
			}

		case <-ticker.C:
			if len(buffer) > 0 {
				s.flush(buffer)
				buffer = buffer[:0]
			}

		case <-s.closeChan:
			// Drain whatever is still queued, then final flush
			for {
				select {
				case event := <-s.writeChan:
					buffer = append(buffer, event)
					continue
				default:
				}
				break
			}
			if len(buffer) > 0 {
				s.flush(buffer)
			}
			return
		}
	}
}

// flush writes a batch and logs any failure
func (s *Storage) flush(events []*Event) {
	if err := s.batchWrite(events); err != nil {
		s.log.WithError(err).WithField("events", len(events)).Error("journal write failed")
	}
}

// batchWrite writes a batch of events in one transaction.
// Rows that fail to insert are skipped; the rest are committed and the
// first row error is reported.
func (s *Storage) batchWrite(events []*Event) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`
		INSERT INTO events (kind, timestamp, count, detail)
		VALUES (?, ?, ?, ?)
	`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	var (
		failed   int
		firstErr error
	)
	for _, e := range events {
		if _, err := stmt.Exec(string(e.Kind), e.Timestamp.UnixMilli(), e.Count, e.Detail); err != nil {
			if firstErr == nil {
				firstErr = err
			}
			failed++
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit events: %w", err)
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d events not inserted: %w", failed, len(events), firstErr)
	}
	return nil
}

// Query returns the events inside the time range, oldest first
func (s *Storage) Query(timeRange TimeRange) ([]Event, error) {
	cutoff := time.Now().Add(-timeRange.Duration()).UnixMilli()

	rows, err := s.db.Query(`
		SELECT kind, timestamp, count, detail
		FROM events
		WHERE timestamp > ?
		ORDER BY timestamp ASC, id ASC
	`, cutoff)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []Event
	for rows.Next() {
		var (
			kind string
			ts   int64
			e    Event
		)
		if err := rows.Scan(&kind, &ts, &e.Count, &e.Detail); err != nil {
			return nil, err
		}
		e.Kind = EventKind(kind)
		e.Timestamp = time.UnixMilli(ts)
		events = append(events, e)
	}
	return events, rows.Err()
}

// cleanup removes old events periodically
func (s *Storage) cleanup() {
	defer s.wg.Done()

	ticker := time.NewTicker(1 * time.Hour)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.batchDelete(time.Now().Add(-retention).UnixMilli())
		case <-s.closeChan:
			return
		}
	}
}

// batchDelete removes old records in batches to prevent long-running locks
func (s *Storage) batchDelete(cutoff int64) int64 {
	const batchSize = 1000
	var total int64
	for {
		result, err := s.db.Exec(`
			DELETE FROM events WHERE id IN (
				SELECT id FROM events WHERE timestamp < ? LIMIT ?
			)`,
			cutoff,
			batchSize,
		)
		if err != nil {
			s.log.WithError(err).Warn("journal cleanup failed")
			return total
		}

		n, err := result.RowsAffected()
		if err != nil || n == 0 {
			return total
		}
		total += n
	}
}

// Close flushes queued events and closes the database
func (s *Storage) Close() error {
	s.closeOnce.Do(func() {
		close(s.closeChan)
	})
	s.wg.Wait()
	return s.db.Close()
}
