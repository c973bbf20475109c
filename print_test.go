package parquet_test

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/google/uuid"
	parquet "github.com/segmentio/parquet-page"
	"github.com/segmentio/parquet-page/format"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrintPage(t *testing.T) {
	column := []parquet.Nullable[int32]{parquet.Some[int32](-4), parquet.Null[int32](), parquet.Some[int32](12)}
	page, err := parquet.WriteDataPage(column, parquet.Optional(format.Int32, "events", "count"), parquet.Compression(format.Gzip))
	require.NoError(t, err)

	output := printPage(t, page)

	for _, row := range [][]string{
		{"Column", "events.count"},
		{"Type", "INT32"},
		{"Page Type", "DATA_PAGE"},
		{"Num Values", "3"},
		{"Encoding", "PLAIN"},
		{"Definition Levels", "RLE"},
		{"Compression", "GZIP"},
		{"Null Count", "1"},
		{"Min", "-4"},
		{"Max", "12"},
	} {
		assert.True(t, containsRow(output, row[0], row[1]), "missing row %q in:\n%s", row, output)
	}
}

func TestPrintPageWithoutStatistics(t *testing.T) {
	page, err := parquet.WriteDataPage([]parquet.Nullable[int32]{}, int32Column, parquet.WriteStatistics(false))
	require.NoError(t, err)

	output := printPage(t, page)
	assert.False(t, strings.Contains(output, "Null Count"))
	assert.True(t, containsRow(output, "Num Values", "0"))
}

func TestPrintPageUUID(t *testing.T) {
	id := uuid.MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8")
	page, err := parquet.WriteDataPage([]parquet.Nullable[uuid.UUID]{parquet.Some(id)}, parquet.FixedLenByteArray(16, "id"))
	require.NoError(t, err)

	output := printPage(t, page)
	assert.True(t, containsRow(output, "Min", id.String()))
	assert.True(t, containsRow(output, "Max", id.String()))
}

func TestPrintPageUnsigned(t *testing.T) {
	column := []parquet.Nullable[uint32]{parquet.Some[uint32](math.MaxUint32), parquet.Some[uint32](1)}
	page, err := parquet.WriteDataPage(column, parquet.Uint(32, "value"))
	require.NoError(t, err)

	output := printPage(t, page)
	assert.True(t, containsRow(output, "Type", "INT32(UINT_32)"), output)
	assert.True(t, containsRow(output, "Min", "1"), output)
	assert.True(t, containsRow(output, "Max", "4294967295"), output)
}

func TestPrintPageWriteError(t *testing.T) {
	page, err := parquet.WriteDataPage([]parquet.Nullable[int32]{}, int32Column)
	require.NoError(t, err)
	assert.ErrorIs(t, parquet.PrintPage(failingWriter{}, page), errWrite)
}

var errWrite = errors.New("write failed")

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errWrite }

func containsRow(output, field, value string) bool {
	for _, line := range strings.Split(output, "\n") {
		cells := strings.Split(line, "|")
		if len(cells) < 3 {
			continue
		}
		if strings.TrimSpace(cells[1]) == field && strings.TrimSpace(cells[2]) == value {
			return true
		}
	}
	return false
}
