package repl

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/tbrv/dbrs"
)

// MaxLineSize is the longest input line, in bytes, that Run executes.
const MaxLineSize = 64 * 1024

var (
	// ErrExit is returned by Run when the .exit meta-command is read.
	ErrExit = errors.New("exit requested")
	// ErrLineTooLong is reported for an input line longer than MaxLineSize.
	ErrLineTooLong = errors.New("input line too long")
)

// REPL reads statements line by line and executes them against a DB.
type REPL struct {
	db     *dbrs.DB
	out    io.Writer
	prompt string
}

// New creates a REPL writing to out. prompt is printed verbatim before every line.
func New(db *dbrs.DB, out io.Writer, prompt string) *REPL {
	return &REPL{db: db, out: out, prompt: prompt}
}

// Run processes in until it is exhausted or .exit is read.
// Bad statements and over-long lines are reported on out and never stop the loop.
func (r *REPL) Run(in io.Reader) error {
	br := bufio.NewReader(in)
	for {
		fmt.Fprint(r.out, r.prompt)

		line, err := readLine(br)
		if errors.Is(err, ErrLineTooLong) {
			fmt.Fprintf(r.out, "Error: %v, limit is %d bytes\n", err, MaxLineSize)
			continue
		}
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to read input: %w", err)
		}

		if err := r.Handle(line); err != nil {
			return err
		}
	}
}

// readLine returns the next line without its terminator. A line longer than
// MaxLineSize is consumed entirely and reported as ErrLineTooLong.
func readLine(br *bufio.Reader) (string, error) {
	var buf []byte
	tooLong := false
	read := false

	for {
		chunk, isPrefix, err := br.ReadLine()
		if err != nil {
			if !read {
				return "", err
			}
			break
		}
		read = true

		if !tooLong {
			if len(buf)+len(chunk) > MaxLineSize {
				tooLong = true
				buf = nil
			} else {
				buf = append(buf, chunk...)
			}
		}

		if !isPrefix {
			break
		}
	}

	if tooLong {
		return "", ErrLineTooLong
	}
	return string(buf), nil
}

// Handle executes one input line. It only returns ErrExit.
func (r *REPL) Handle(line string) error {
	line = strings.TrimSpace(line)
	if line == "" {
		return nil
	}

	if strings.HasPrefix(line, ".") {
		return r.metaCommand(line)
	}

	stmt, err := ParseStatement(line)
	if err != nil {
		fmt.Fprintf(r.out, "Error: %v\n", err)
		return nil
	}

	r.execute(stmt)
	return nil
}

func (r *REPL) metaCommand(cmd string) error {
	switch cmd {
	case ".exit":
		fmt.Fprintln(r.out, "Exiting...")
		return ErrExit
	default:
		fmt.Fprintf(r.out, "Unrecognized command: %s\n", cmd)
		return nil
	}
}

func (r *REPL) execute(stmt Statement) {
	switch stmt.Type {
	case InsertStatement:
		r.executeInsert(stmt)
	case SelectStatement:
		r.executeSelect(stmt)
	}
}

func (r *REPL) executeInsert(stmt Statement) {
	if err := r.db.Insert(stmt.Record); err != nil {
		if errors.Is(err, dbrs.ErrTableFull) {
			fmt.Fprintln(r.out, "Error: Table full.")
			return
		}
		fmt.Fprintf(r.out, "Error: %v\n", err)
		return
	}
	fmt.Fprintln(r.out, "Executed.")
}

func (r *REPL) executeSelect(stmt Statement) {
	if stmt.All {
		rows, err := r.db.SelectAll()
		for _, row := range rows {
			fmt.Fprintln(r.out, row)
		}
		if err != nil {
			fmt.Fprintf(r.out, "Error: %v\n", err)
			return
		}
		fmt.Fprintln(r.out, "Executed.")
		return
	}

	row, err := r.db.Select(stmt.RowNum)
	if err != nil {
		if errors.Is(err, dbrs.ErrRowOutOfRange) {
			fmt.Fprintf(r.out, "Error: row %d out of range.\n", stmt.RowNum)
			return
		}
		fmt.Fprintf(r.out, "Error: %v\n", err)
		return
	}
	fmt.Fprintln(r.out, row)
	fmt.Fprintln(r.out, "Executed.")
}
