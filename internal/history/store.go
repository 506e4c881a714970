package history

import (
	"database/sql"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	_ "modernc.org/sqlite"

	"StockTracker/internal/model"
)

// Store is an append-only log of daily price observations backed by a local
// SQLite database. Rows are never updated or deleted; re-tracking a symbol
// on the same day simply appends another row.
type Store struct {
	db *sql.DB
	mu sync.Mutex
}

// Open opens (or creates) the SQLite database at path and ensures the
// schema exists. Safe to call on every process start.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// WAL mode keeps appends cheap when an external tool reads the file.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	log.Printf("[INFO] price history opened: %s", path)
	return s, nil
}

func (s *Store) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS stocks (
			symbol TEXT NOT NULL,
			date   TEXT NOT NULL,
			price  REAL NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_stocks_symbol ON stocks(symbol)`,
	}

	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("exec %q: %w", stmt[:26], err)
		}
	}
	return nil
}

// Append records one observation for symbol with today's date. The insert
// is committed before Append returns; callers may treat a nil error as
// durable. Write errors propagate untouched — local storage is not
// something to retry around.
func (s *Store) Append(symbol string, price float64) error {
	if symbol == "" {
		return errors.New("append: symbol must not be empty")
	}
	if price < 0 {
		return fmt.Errorf("append %s: negative price %v", symbol, price)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	date := time.Now().Format("2006-01-02")
	_, err := s.db.Exec(`INSERT INTO stocks (symbol, date, price) VALUES (?,?,?)`,
		symbol, date, price)
	if err != nil {
		return fmt.Errorf("append %s: %w", symbol, err)
	}
	return nil
}

// Observations returns every recorded row for symbol in chronological
// order. ISO dates sort lexicographically, so ORDER BY date is enough.
func (s *Store) Observations(symbol string) ([]model.PriceObservation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rows, err := s.db.Query(`SELECT symbol, date, price FROM stocks WHERE symbol = ? ORDER BY date`, symbol)
	if err != nil {
		return nil, fmt.Errorf("query %s: %w", symbol, err)
	}
	defer rows.Close()

	var obs []model.PriceObservation
	for rows.Next() {
		var o model.PriceObservation
		if err := rows.Scan(&o.Symbol, &o.Date, &o.Price); err != nil {
			return nil, fmt.Errorf("scan row: %w", err)
		}
		obs = append(obs, o)
	}
	return obs, rows.Err()
}

// Close releases the underlying connection.
func (s *Store) Close() error {
	log.Println("[INFO] closing price history")
	return s.db.Close()
}
