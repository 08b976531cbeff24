package bench

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/tbrv/dbrs"
	"github.com/tbrv/dbrs/internal/record"
)

const numRows = 10000

func setupBenchDB(b *testing.B, rows int) *dbrs.DB {
	b.Helper()
	db := dbrs.Open(&dbrs.Config{MaxPages: rows/14 + 1})
	for i := range rows {
		if err := db.Insert(generateRecord(i)); err != nil {
			b.Fatalf("Pre-populate insert failed: %v", err)
		}
	}
	return db
}

func generateRecord(i int) dbrs.Record {
	return dbrs.Record{
		ID:       uint32(i),
		Username: fmt.Sprintf("user_%010d", i),
		Email:    fmt.Sprintf("user_%010d@example.com", i),
	}
}

func BenchmarkInsert(b *testing.B) {
	db := dbrs.Open(&dbrs.Config{MaxPages: b.N/14 + 1})
	r := generateRecord(42)

	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if err := db.Insert(r); err != nil {
			b.Fatalf("Insert failed: %v", err)
		}
	}
}

func BenchmarkSelect(b *testing.B) {
	db := setupBenchDB(b, numRows)

	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := db.Select(i % numRows); err != nil {
			b.Fatalf("Select failed: %v", err)
		}
	}
}

func BenchmarkRandomSelect(b *testing.B) {
	db := setupBenchDB(b, numRows)

	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := db.Select(rand.Intn(numRows)); err != nil {
			b.Fatalf("Select failed: %v", err)
		}
	}
}

func BenchmarkScan(b *testing.B) {
	db := setupBenchDB(b, numRows)

	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		n := 0
		for range db.Rows() {
			n++
		}
		if n != numRows {
			b.Fatalf("scanned %d rows, want %d", n, numRows)
		}
	}
}

func BenchmarkSerialize(b *testing.B) {
	r := generateRecord(7)
	buf := make([]byte, record.RecordSize)

	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if err := record.SerializeInto(buf, r); err != nil {
			b.Fatalf("SerializeInto failed: %v", err)
		}
		if _, err := record.Deserialize(buf); err != nil {
			b.Fatalf("Deserialize failed: %v", err)
		}
	}
}
