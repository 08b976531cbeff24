package record

import "errors"

var (
	// ErrMalformedInput is returned when text does not decompose into a record.
	ErrMalformedInput = errors.New("malformed input")
	// ErrSizeMismatch is returned when a buffer is not exactly RecordSize bytes.
	ErrSizeMismatch = errors.New("record size mismatch")
	// ErrInvalidEncoding is returned when a text column is not valid UTF-8.
	ErrInvalidEncoding = errors.New("invalid utf-8 in record")
)
