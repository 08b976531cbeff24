package record

import (
	"bytes"
	"fmt"
	"unicode/utf8"
)

// Record is one logical row of the table.
type Record struct {
	ID       uint32
	Username string
	Email    string
}

// Field is a view over a fixed-width text column inside a serialized record.
// Its logical length is found by scanning for the first zero byte; a field
// with no zero byte uses its full width.
type Field []byte

// Len returns the logical length of the field.
func (f Field) Len() int {
	if i := bytes.IndexByte(f, 0); i >= 0 {
		return i
	}
	return len(f)
}

// Bytes returns the logical contents of the field. The slice aliases f.
func (f Field) Bytes() []byte {
	return f[:f.Len()]
}

// Text decodes the logical contents as UTF-8.
func (f Field) Text() (string, error) {
	b := f.Bytes()
	if !utf8.Valid(b) {
		return "", ErrInvalidEncoding
	}
	return string(b), nil
}

// Set copies b into the field, truncating it to the field width byte-exactly,
// and zeroes the remainder. It reports whether b was truncated.
func (f Field) Set(b []byte) bool {
	n := copy(f, b)
	clear(f[n:])
	return n < len(b)
}

func (r Record) String() string {
	return fmt.Sprintf("(%d, %s, %s)", r.ID, r.Username, r.Email)
}
