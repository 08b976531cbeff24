// Package table implements a growable in-memory table of fixed-size pages.
// A row's location is derived from its sequential row number alone:
// pages are the arena and the row number is the index into it.
//
// A Table is not safe for concurrent use. Callers that share one must
// serialize every call themselves.
package table

import (
	"errors"
	"fmt"

	"github.com/tbrv/dbrs/internal/record"
)

// ErrTableFull is returned when an insert would need a page beyond the limit.
var ErrTableFull = errors.New("table full")

// Table is an ordered collection of pages plus the number of rows written.
type Table struct {
	pages    []*Page
	numRows  int
	maxPages int
}

// New creates an empty table that may grow up to maxPages pages.
func New(maxPages int) *Table {
	return &Table{
		pages:    make([]*Page, 0),
		maxPages: maxPages,
	}
}

// RowPosition returns the page index and the byte offset inside that page
// for a row number. It does no bounds checking.
func RowPosition(rowNum int) (pageIdx int, offset int) {
	pageIdx = rowNum / RecordsPerPage
	offset = (rowNum % RecordsPerPage) * record.RecordSize
	return pageIdx, offset
}

// RowCount returns the number of rows inserted so far.
func (t *Table) RowCount() int {
	return t.numRows
}

// PageCount returns the number of allocated pages.
func (t *Table) PageCount() int {
	return len(t.pages)
}

// MaxPages returns the page limit the table was created with.
func (t *Table) MaxPages() int {
	return t.maxPages
}

// Insert appends r after the last row, allocating a new page when the
// row starts one. On error the table is left unchanged.
func (t *Table) Insert(r record.Record) error {
	pageIdx, offset := RowPosition(t.numRows)
	if pageIdx >= t.maxPages {
		return fmt.Errorf("%w: row %d needs page %d of %d", ErrTableFull, t.numRows, pageIdx, t.maxPages)
	}

	if pageIdx >= len(t.pages) {
		t.pages = append(t.pages, new(Page))
	}

	if err := record.SerializeInto(t.pages[pageIdx].slot(offset), r); err != nil {
		return err
	}
	t.numRows++

	return nil
}

// Select reads the record stored at rowNum. It returns false only when the
// row's page has not been allocated; a slot on an allocated page that was
// never written decodes as a zero Record. Callers bound rowNum by RowCount.
func (t *Table) Select(rowNum int) (record.Record, bool, error) {
	if rowNum < 0 {
		return record.Record{}, false, nil
	}

	pageIdx, offset := RowPosition(rowNum)
	if pageIdx >= len(t.pages) {
		return record.Record{}, false, nil
	}

	r, err := record.Deserialize(t.pages[pageIdx].slot(offset))
	if err != nil {
		return record.Record{}, true, fmt.Errorf("row %d: %w", rowNum, err)
	}

	return r, true, nil
}

// Page returns a copy of the page at pageIdx.
func (t *Table) Page(pageIdx int) (Page, bool) {
	if pageIdx < 0 || pageIdx >= len(t.pages) {
		return Page{}, false
	}
	return *t.pages[pageIdx], true
}
