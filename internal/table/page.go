package table

import "github.com/tbrv/dbrs/internal/record"

// PageSize is the size in bytes of a storage page
const PageSize = 4096

// RecordsPerPage is how many serialized records fit in one page
const RecordsPerPage = PageSize / record.RecordSize // 14

// Page is a fixed-size zero-initialized block holding RecordsPerPage records
// packed from offset 0. The trailing PageSize - RecordsPerPage*RecordSize
// bytes are never written.
type Page [PageSize]byte

// slot returns the bytes of the record stored at offset.
func (p *Page) slot(offset int) []byte {
	return p[offset : offset+record.RecordSize]
}
