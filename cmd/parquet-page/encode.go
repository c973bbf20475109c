package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/google/uuid"
	parquet "github.com/segmentio/parquet-page"
	"github.com/segmentio/parquet-page/deprecated"
	"github.com/segmentio/parquet-page/format"
	"github.com/segmentio/parquet-page/internal/debug"
)

type encodeFlags struct {
	_           struct{} `help:"Encode the values passed as arguments into a parquet data page, null marks absent values"`
	Type        string   `flag:"-t,--type" help:"Type of values (int32, int64, uint32, uint64, float, double, int96, uuid)" default:"int32"`
	Column      string   `flag:"-c,--column" help:"Dot separated path of the column" default:"value"`
	Compression string   `flag:"-z,--compression" help:"Compression codec of the page payload" default:"none"`
	Statistics  bool     `flag:"--statistics" help:"Embed statistics in the page header, disable with --statistics=false" default:"true"`
	Output      string   `flag:"-o,--output" help:"File receiving the page header and payload" default:"-"`
	Debug       bool     `flag:"--debug" help:"Display debugging logs" default:"false"`
}

func encodeCommand(flags encodeFlags, values ...string) {
	debug.Toggle(flags.Debug)

	page, err := encode(flags, values)
	if err != nil {
		perrorf("%s", err)
		os.Exit(1)
	}

	if flags.Output != "" && flags.Output != "-" {
		if err := writePage(flags.Output, page); err != nil {
			perrorf("could not write page to %s: %s", flags.Output, err)
			os.Exit(1)
		}
		pdebugf("wrote page of %d bytes to %s", len(page.Data()), flags.Output)
	}

	if err := parquet.PrintPage(os.Stdout, page); err != nil {
		perrorf("could not print page: %s", err)
		os.Exit(1)
	}
}

func encode(flags encodeFlags, values []string) (*parquet.CompressedPage, error) {
	codec, err := parquet.LookupCompressionCodecByName(flags.Compression)
	if err != nil {
		return nil, err
	}
	options := []parquet.PageOption{
		parquet.Compression(codec),
		parquet.WriteStatistics(flags.Statistics),
	}
	path := strings.Split(flags.Column, ".")

	pdebugf("encoding %d %s values with %s compression", len(values), flags.Type, codec)

	switch strings.ToLower(flags.Type) {
	case "int32":
		return encodeValues(values, parquet.Optional(format.Int32, path...), parseInt32, options)
	case "int64":
		return encodeValues(values, parquet.Optional(format.Int64, path...), parseInt64, options)
	case "uint32":
		return encodeValues(values, parquet.Uint(32, path...), parseUint32, options)
	case "uint64":
		return encodeValues(values, parquet.Uint(64, path...), parseUint64, options)
	case "float":
		return encodeValues(values, parquet.Optional(format.Float, path...), parseFloat, options)
	case "double":
		return encodeValues(values, parquet.Optional(format.Double, path...), parseDouble, options)
	case "int96":
		return encodeValues(values, parquet.Optional(format.Int96, path...), parseInt96, options)
	case "uuid":
		return encodeValues(values, parquet.FixedLenByteArray(16, path...), uuid.Parse, options)
	default:
		return nil, fmt.Errorf("unsupported type: %q", flags.Type)
	}
}

func encodeValues[T int32 | int64 | uint32 | uint64 | float32 | float64 | deprecated.Int96 | uuid.UUID](values []string, descriptor *parquet.ColumnDescriptor, parse func(string) (T, error), options []parquet.PageOption) (*parquet.CompressedPage, error) {
	column, err := parseColumn(values, parse)
	if err != nil {
		return nil, err
	}
	return parquet.WriteDataPage(column, descriptor, options...)
}

func parseColumn[T any](values []string, parse func(string) (T, error)) ([]parquet.Nullable[T], error) {
	column := make([]parquet.Nullable[T], len(values))
	for i, s := range values {
		if strings.EqualFold(s, "null") {
			continue
		}
		v, err := parse(s)
		if err != nil {
			return nil, fmt.Errorf("value at index %d: %w", i, err)
		}
		column[i] = parquet.Some(v)
	}
	return column, nil
}

func parseInt32(s string) (int32, error) {
	v, err := strconv.ParseInt(s, 10, 32)
	return int32(v), err
}

func parseInt64(s string) (int64, error) {
	return strconv.ParseInt(s, 10, 64)
}

func parseUint32(s string) (uint32, error) {
	v, err := strconv.ParseUint(s, 10, 32)
	return uint32(v), err
}

func parseUint64(s string) (uint64, error) {
	return strconv.ParseUint(s, 10, 64)
}

func parseFloat(s string) (float32, error) {
	v, err := strconv.ParseFloat(s, 32)
	return float32(v), err
}

func parseDouble(s string) (float64, error) {
	return strconv.ParseFloat(s, 64)
}

// parseInt96 accepts values in the range of int64, which covers the legacy
// timestamps that INT96 columns usually hold.
func parseInt96(s string) (deprecated.Int96, error) {
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return deprecated.Int96{}, err
	}
	return deprecated.Int64ToInt96(v), nil
}

func writePage(path string, page *parquet.CompressedPage) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	if _, err := page.WriteTo(f); err != nil {
		return err
	}
	return f.Close()
}
