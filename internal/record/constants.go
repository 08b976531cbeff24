// Package record implements the fixed-width binary layout of a table row.
//
// Layout (291 bytes):
//
//	offset 0  : id       (4 bytes, little-endian uint32)
//	offset 4  : username (32 bytes, UTF-8, zero padded)
//	offset 36 : email    (255 bytes, UTF-8, zero padded)
package record

// IDSize is the size in bytes of the id column
const IDSize = 4

// UsernameSize is the fixed width in bytes of the username column
const UsernameSize = 32

// EmailSize is the fixed width in bytes of the email column
const EmailSize = 255

const (
	// IDOffset is where the id column starts
	IDOffset = 0
	// UsernameOffset is where the username column starts
	UsernameOffset = IDOffset + IDSize
	// EmailOffset is where the email column starts
	EmailOffset = UsernameOffset + UsernameSize
)

// RecordSize is the total size of a serialized record
const RecordSize = IDSize + UsernameSize + EmailSize // 291 bytes
