package table

import (
	"iter"

	"github.com/tbrv/dbrs/internal/record"
)

// Iterator walks the rows of a table in insertion order.
//
//	it := t.Iterator()
//	for it.Next() {
//		fmt.Println(it.Record())
//	}
//	if err := it.Err(); err != nil {
//		...
//	}
type Iterator struct {
	table *Table
	pos   int
	cur   record.Record
	err   error
}

// Iterator returns a new iterator positioned before the first row.
func (t *Table) Iterator() *Iterator {
	return &Iterator{table: t}
}

// Next advances to the next row and reports whether there is one.
// It stops at the row count observed at the time of the call, or at the
// first decode error.
func (it *Iterator) Next() bool {
	if it.err != nil || it.pos >= it.table.RowCount() {
		return false
	}

	r, ok, err := it.table.Select(it.pos)
	if err != nil {
		it.err = err
		return false
	}
	if !ok {
		return false
	}

	it.cur = r
	it.pos++
	return true
}

// Record returns the row the iterator is positioned on.
func (it *Iterator) Record() record.Record {
	return it.cur
}

// Index returns the row number of the current row.
func (it *Iterator) Index() int {
	return it.pos - 1
}

// Err returns the error that stopped the iteration, if any.
func (it *Iterator) Err() error {
	return it.err
}

// Reset moves the iterator back before the first row.
func (it *Iterator) Reset() {
	it.pos = 0
	it.cur = record.Record{}
	it.err = nil
}

// All returns a sequence of row numbers and records in insertion order.
// Each range over it starts from row 0. Decode errors end the sequence
// early; use Iterator when they must be observed.
func (t *Table) All() iter.Seq2[int, record.Record] {
	return func(yield func(int, record.Record) bool) {
		it := t.Iterator()
		for it.Next() {
			if !yield(it.Index(), it.Record()) {
				return
			}
		}
	}
}
