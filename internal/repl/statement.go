// Package repl implements the line-oriented front end of dbrs: it parses
// insert and select statements and meta-commands, runs them against a DB
// and prints the results.
package repl

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/tbrv/dbrs/internal/record"
)

var (
	// ErrUnrecognized is returned for a statement with an unknown keyword.
	ErrUnrecognized = errors.New("unrecognized statement")
	// ErrSyntax is returned when a known statement has bad arguments.
	ErrSyntax = errors.New("syntax error")
)

// StatementType identifies what a Statement does
type StatementType byte

const (
	// InsertStatement appends one row
	InsertStatement StatementType = iota
	// SelectStatement reads one row or the whole table
	SelectStatement
)

// Statement is a parsed command line.
type Statement struct {
	Type StatementType
	// Record is the row to insert
	Record record.Record
	// RowNum is the row to select when All is false
	RowNum int
	// All selects every row
	All bool
}

// ParseStatement parses "insert <id> <username> <email>", "select" or
// "select <row>". Keywords are case-insensitive.
func ParseStatement(line string) (Statement, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return Statement{}, fmt.Errorf("%w: empty statement", ErrUnrecognized)
	}

	args := fields[1:]
	switch strings.ToLower(fields[0]) {
	case "insert":
		r, err := record.Parse(strings.Join(args, " "))
		if err != nil {
			return Statement{}, fmt.Errorf("%w: %w", ErrSyntax, err)
		}
		return Statement{Type: InsertStatement, Record: r}, nil

	case "select":
		switch len(args) {
		case 0:
			return Statement{Type: SelectStatement, All: true}, nil
		case 1:
			n, err := strconv.Atoi(args[0])
			if err != nil || n < 0 {
				return Statement{}, fmt.Errorf("%w: invalid row number %q", ErrSyntax, args[0])
			}
			return Statement{Type: SelectStatement, RowNum: n}, nil
		default:
			return Statement{}, fmt.Errorf("%w: select takes at most one row number", ErrSyntax)
		}
	}

	return Statement{}, fmt.Errorf("%w: %q", ErrUnrecognized, fields[0])
}
