package record

import (
	"encoding/binary"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Parse builds a Record from whitespace-delimited text: "<id> <username> <email>".
// Username and email must be valid UTF-8 and are otherwise taken as-is;
// oversize values are truncated later by Serialize.
func Parse(text string) (Record, error) {
	fields := strings.Fields(text)
	if len(fields) != 3 {
		return Record{}, fmt.Errorf("%w: expected 3 fields but got %d", ErrMalformedInput, len(fields))
	}

	id, err := strconv.ParseUint(fields[0], 10, 32)
	if err != nil {
		return Record{}, fmt.Errorf("%w: invalid id %q", ErrMalformedInput, fields[0])
	}

	for _, text := range fields[1:] {
		if !utf8.ValidString(text) {
			return Record{}, fmt.Errorf("%w: %q is not valid utf-8", ErrMalformedInput, text)
		}
	}

	return Record{
		ID:       uint32(id),
		Username: fields[1],
		Email:    fields[2],
	}, nil
}

// Serialize converts a Record to its fixed-width layout.
// Text columns longer than their width are silently truncated byte-exactly,
// which can split a multi-byte UTF-8 sequence.
func Serialize(r Record) [RecordSize]byte {
	var buf [RecordSize]byte
	// buf is exactly RecordSize, the error cannot occur
	_ = SerializeInto(buf[:], r)
	return buf
}

// SerializeInto writes r into dst, which must be exactly RecordSize bytes.
// Every byte of dst is overwritten.
func SerializeInto(dst []byte, r Record) error {
	if len(dst) != RecordSize {
		return fmt.Errorf("%w: expected %d bytes but got %d", ErrSizeMismatch, RecordSize, len(dst))
	}

	binary.LittleEndian.PutUint32(dst[IDOffset:UsernameOffset], r.ID)
	Field(dst[UsernameOffset:EmailOffset]).Set([]byte(r.Username))
	Field(dst[EmailOffset:RecordSize]).Set([]byte(r.Email))

	return nil
}

// Deserialize decodes a Record from its fixed-width layout.
func Deserialize(buf []byte) (Record, error) {
	if len(buf) != RecordSize {
		return Record{}, fmt.Errorf("%w: expected %d bytes but got %d", ErrSizeMismatch, RecordSize, len(buf))
	}

	username, err := Field(buf[UsernameOffset:EmailOffset]).Text()
	if err != nil {
		return Record{}, fmt.Errorf("username: %w", err)
	}

	email, err := Field(buf[EmailOffset:RecordSize]).Text()
	if err != nil {
		return Record{}, fmt.Errorf("email: %w", err)
	}

	return Record{
		ID:       binary.LittleEndian.Uint32(buf[IDOffset:UsernameOffset]),
		Username: username,
		Email:    email,
	}, nil
}
