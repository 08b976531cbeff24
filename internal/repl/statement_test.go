package repl_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tbrv/dbrs/internal/record"
	"github.com/tbrv/dbrs/internal/repl"
)

func TestParseStatement_Insert(t *testing.T) {
	stmt, err := repl.ParseStatement("insert 1 john john@example.com")
	require.NoError(t, err)
	assert.Equal(t, repl.InsertStatement, stmt.Type)
	assert.Equal(t, record.Record{ID: 1, Username: "john", Email: "john@example.com"}, stmt.Record)

	stmt, err = repl.ParseStatement("INSERT 2 jane jane@example.com")
	require.NoError(t, err, "keywords are case-insensitive")
	assert.Equal(t, uint32(2), stmt.Record.ID)
}

func TestParseStatement_InsertMalformed(t *testing.T) {
	_, err := repl.ParseStatement("insert 1 john")
	assert.ErrorIs(t, err, repl.ErrSyntax)
	assert.ErrorIs(t, err, record.ErrMalformedInput)

	_, err = repl.ParseStatement("insert abc john x@y.com")
	assert.ErrorIs(t, err, record.ErrMalformedInput)

	_, err = repl.ParseStatement("insert 2 b\xffad b@x")
	assert.ErrorIs(t, err, record.ErrMalformedInput)
}

func TestParseStatement_Select(t *testing.T) {
	stmt, err := repl.ParseStatement("select")
	require.NoError(t, err)
	assert.Equal(t, repl.SelectStatement, stmt.Type)
	assert.True(t, stmt.All)

	stmt, err = repl.ParseStatement("select 12")
	require.NoError(t, err)
	assert.False(t, stmt.All)
	assert.Equal(t, 12, stmt.RowNum)

	for _, bad := range []string{"select -1", "select x", "select 1 2"} {
		_, err = repl.ParseStatement(bad)
		assert.ErrorIs(t, err, repl.ErrSyntax, bad)
	}
}

func TestParseStatement_Unrecognized(t *testing.T) {
	_, err := repl.ParseStatement("delete 1")
	assert.ErrorIs(t, err, repl.ErrUnrecognized)

	_, err = repl.ParseStatement("   ")
	assert.ErrorIs(t, err, repl.ErrUnrecognized)
}
