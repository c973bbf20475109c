package parquet

import (
	"encoding/binary"
	"encoding/hex"
	"io"
	"math"
	"strconv"

	"github.com/google/uuid"
	"github.com/olekukonko/tablewriter"
	"github.com/segmentio/parquet-page/deprecated"
	"github.com/segmentio/parquet-page/format"
	"github.com/segmentio/parquet-page/internal/ioext"
)

// PrintPage writes a table describing the header and statistics of page to w.
func PrintPage(w io.Writer, page *CompressedPage) error {
	pw := ioext.NewWriter(w)
	header := page.PageHeader()
	data := header.DataPageHeader
	typ := page.descriptor.Type
	unsigned := page.descriptor.Unsigned()

	table := tablewriter.NewWriter(pw)
	table.SetHeader([]string{"Field", "Value"})
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetAlignment(tablewriter.ALIGN_LEFT)

	table.Append([]string{"Column", page.descriptor.String()})
	if t := page.descriptor.ConvertedType; t != nil {
		table.Append([]string{"Type", typ.String() + "(" + t.String() + ")"})
	} else {
		table.Append([]string{"Type", typ.String()})
	}
	table.Append([]string{"Page Type", header.Type.String()})
	table.Append([]string{"Num Values", strconv.Itoa(int(data.NumValues))})
	table.Append([]string{"Encoding", data.Encoding.String()})
	table.Append([]string{"Definition Levels", data.DefinitionLevelEncoding.String()})
	table.Append([]string{"Repetition Levels", data.RepetitionLevelEncoding.String()})
	table.Append([]string{"Compression", page.compression.String()})
	table.Append([]string{"Uncompressed Size", strconv.Itoa(int(header.UncompressedPageSize))})
	table.Append([]string{"Compressed Size", strconv.Itoa(int(header.CompressedPageSize))})
	table.Append([]string{"CRC", strconv.FormatUint(uint64(uint32(header.CRC)), 16)})

	if stats := data.Statistics; stats != nil {
		if stats.NullCount != nil {
			table.Append([]string{"Null Count", strconv.FormatInt(*stats.NullCount, 10)})
		}
		table.Append([]string{"Min", formatPlainValue(typ, unsigned, stats.MinValue)})
		table.Append([]string{"Max", formatPlainValue(typ, unsigned, stats.MaxValue)})
	}

	// tablewriter does not report write errors, they are retained by pw.
	table.Render()
	return pw.Err()
}

func formatPlainValue(typ format.Type, unsigned bool, b []byte) string {
	if b == nil {
		return "null"
	}
	switch {
	case typ == format.Int32 && unsigned && len(b) == 4:
		return strconv.FormatUint(uint64(binary.LittleEndian.Uint32(b)), 10)
	case typ == format.Int64 && unsigned && len(b) == 8:
		return strconv.FormatUint(binary.LittleEndian.Uint64(b), 10)
	case typ == format.Int32 && len(b) == 4:
		return strconv.FormatInt(int64(int32(binary.LittleEndian.Uint32(b))), 10)
	case typ == format.Int64 && len(b) == 8:
		return strconv.FormatInt(int64(binary.LittleEndian.Uint64(b)), 10)
	case typ == format.Float && len(b) == 4:
		return strconv.FormatFloat(float64(math.Float32frombits(binary.LittleEndian.Uint32(b))), 'g', -1, 32)
	case typ == format.Double && len(b) == 8:
		return strconv.FormatFloat(math.Float64frombits(binary.LittleEndian.Uint64(b)), 'g', -1, 64)
	case typ == format.Int96 && len(b) == 12:
		return deprecated.Int96{
			binary.LittleEndian.Uint32(b[0:]),
			binary.LittleEndian.Uint32(b[4:]),
			binary.LittleEndian.Uint32(b[8:]),
		}.String()
	case typ == format.FixedLenByteArray && len(b) == 16:
		u, _ := uuid.FromBytes(b)
		return u.String()
	default:
		return "0x" + hex.EncodeToString(b)
	}
}
