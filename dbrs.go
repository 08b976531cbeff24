// Package dbrs is a minimal single-table record store held in memory.
//
// Rows have a fixed-width layout (id, username, email) and are packed into
// 4096-byte pages. A row is addressed by its zero-based insertion index.
//
// Example usage:
//
//	db := dbrs.Open(nil)
//
//	err := db.Insert(dbrs.Record{ID: 1, Username: "john", Email: "john@example.com"})
//	if err != nil {
//		log.Printf("Insert failed: %v", err)
//	}
//
//	r, err := db.Select(0)
//	if err == nil {
//		fmt.Println(r)
//	}
//
//	for _, r := range db.Rows() {
//		fmt.Println(r)
//	}
package dbrs

import (
	"errors"
	"fmt"
	"iter"

	"github.com/tbrv/dbrs/internal/config"
	"github.com/tbrv/dbrs/internal/record"
	"github.com/tbrv/dbrs/internal/table"
)

// Config is an alias for config.Config, re-exported for user convenience.
type Config = config.Config

// DefaultConfig returns a Config struct populated with default values. Re-exported for user convenience.
var DefaultConfig = config.DefaultConfig

// Record is an alias for record.Record, re-exported for user convenience.
type Record = record.Record

var (
	// ErrTableFull is returned by Insert once every page is used.
	ErrTableFull = table.ErrTableFull
	// ErrRowOutOfRange is returned by Select for a row that was never inserted.
	ErrRowOutOfRange = errors.New("row out of range")
	// ErrInvalidEncoding is returned when a stored text column is not valid UTF-8.
	ErrInvalidEncoding = record.ErrInvalidEncoding
)

// DB is a single in-memory table.
// It is not safe for concurrent use; one owner must serialize all calls.
type DB struct {
	table *table.Table
}

// Open creates an empty database. A nil cfg uses DefaultConfig.
func Open(cfg *Config) *DB {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	cfg.FillDefaults()
	return &DB{table: table.New(cfg.MaxPages)}
}

// Insert appends r as the next row.
// Returns ErrTableFull when the page limit is reached; nothing is written then.
func (db *DB) Insert(r Record) error {
	return db.table.Insert(r)
}

// Select returns the row at the zero-based index rowNum.
// Returns ErrRowOutOfRange unless 0 <= rowNum < RowCount.
func (db *DB) Select(rowNum int) (Record, error) {
	if rowNum < 0 || rowNum >= db.table.RowCount() {
		return Record{}, fmt.Errorf("%w: row %d of %d", ErrRowOutOfRange, rowNum, db.table.RowCount())
	}

	// every row below RowCount lives on an allocated page
	r, _, err := db.table.Select(rowNum)
	if err != nil {
		return Record{}, err
	}
	return r, nil
}

// SelectAll returns every row in insertion order.
// If a row fails to decode, the rows before it are returned with the error.
func (db *DB) SelectAll() ([]Record, error) {
	rows := make([]Record, 0, db.table.RowCount())
	it := db.table.Iterator()
	for it.Next() {
		rows = append(rows, it.Record())
	}
	return rows, it.Err()
}

// Rows returns a sequence over all rows in insertion order.
// Each range over it starts again from the first row.
func (db *DB) Rows() iter.Seq2[int, Record] {
	return db.table.All()
}

// RowCount returns the number of rows inserted.
func (db *DB) RowCount() int {
	return db.table.RowCount()
}

// PageCount returns the number of pages allocated.
func (db *DB) PageCount() int {
	return db.table.PageCount()
}
