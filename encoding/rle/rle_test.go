package rle

import (
	"bytes"
	"errors"
	"fmt"
	"testing"

	"github.com/segmentio/parquet-page/encoding"
	"github.com/segmentio/parquet-page/internal/quick"
	"github.com/segmentio/parquet-page/internal/test"
)

var booleanTests = [...][]bool{
	{},
	{true},
	{false},
	{true, false, true, false, true, true, true, false, false, true},
	{ // repeating 32x
		true, true, true, true, true, true, true, true,
		true, true, true, true, true, true, true, true,
		true, true, true, true, true, true, true, true,
		true, true, true, true, true, true, true, true,
	},
	{ // repeating 33x
		true, true, true, true, true, true, true, true,
		true, true, true, true, true, true, true, true,
		true, true, true, true, true, true, true, true,
		true, true, true, true, true, true, true, true,
		true,
	},
	{ // alternating 15x
		false, true, false, true, false, true, false, true,
		false, true, false, true, false, true, false,
	},
	{ // alternating 16x
		false, true, false, true, false, true, false, true,
		false, true, false, true, false, true, false, true,
	},
	{ // runs of both kinds
		true, true, true, true, true, true, true, true,
		false, false, false, false, false, false, false, false,
		true, false, true, true, true, true, true, true,
		true, true, true, true, true, true, true, true,
		true, true, true, false,
	},
}

func TestEncodePresence(t *testing.T) {
	for i, booleans := range booleanTests {
		t.Run(fmt.Sprintf("test#%d", i), func(t *testing.T) {
			enc := &Encoding{BitWidth: 1}
			buf, err := enc.EncodeLevels(nil, levelsOf(booleans))
			if err != nil {
				t.Fatal(err)
			}
			values, err := test.DecodeHybrid(buf, 1, len(booleans))
			if err != nil {
				t.Fatal(err)
			}
			assertBooleansEqual(t, booleans, values)
		})
	}
}

func TestEncodePresenceLayout(t *testing.T) {
	tests := []struct {
		scenario string
		values   []bool
		encoded  []byte
	}{
		{
			scenario: "empty",
			values:   []bool{},
			encoded:  []byte{},
		},

		{
			scenario: "short mixed run",
			values:   []bool{true, false, true},
			encoded: []byte{
				0x02, 0x01, // 1 x true
				0x02, 0x00, // 1 x false
				0x02, 0x01, // 1 x true
			},
		},

		{
			scenario: "repeated groups",
			values: []bool{
				true, true, true, true, true, true, true, true,
				true, true, true, true, true, true, true, true,
			},
			encoded: []byte{0x20, 0x01}, // 16 x true
		},

		{
			scenario: "bit-packed group",
			values:   []bool{true, false, true, false, false, false, false, true},
			encoded: []byte{
				0x03,       // 1 bit-packed group
				0b10000101, // first value in the least significant bit
			},
		},

		{
			scenario: "bit-packed group followed by a repeated group and a tail",
			values: []bool{
				false, true, true, true, true, true, true, true,
				false, false, false, false, false, false, false, false,
				true, true,
			},
			encoded: []byte{
				0x03, 0b11111110, // 1 bit-packed group
				0x10, 0x00, // 8 x false
				0x04, 0x01, // 2 x true
			},
		},
	}

	for _, test := range tests {
		t.Run(test.scenario, func(t *testing.T) {
			enc := &Encoding{BitWidth: 1}
			buf, err := enc.EncodeLevels(nil, levelsOf(test.values))
			if err != nil {
				t.Fatal(err)
			}
			if !bytes.Equal(buf, test.encoded) {
				t.Errorf("wrong encoding:\nwant=%08b\ngot= %08b", test.encoded, buf)
			}
		})
	}
}

func TestEncodeLevelsAppends(t *testing.T) {
	prefix := []byte{0, 0, 0, 0}
	enc := &Encoding{BitWidth: 1}
	buf, err := enc.EncodeLevels(prefix, []byte{1})
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(buf, []byte{0, 0, 0, 0, 0x02, 0x01}) {
		t.Errorf("encoded values were not appended to the input buffer: %x", buf)
	}
}

func TestEncodePresenceQuick(t *testing.T) {
	enc := &Encoding{BitWidth: 1}
	err := quick.Check(func(values []bool) bool {
		buf, err := enc.EncodeLevels(nil, levelsOf(values))
		if err != nil {
			t.Error(err)
			return false
		}
		decoded, err := test.DecodeHybrid(buf, 1, len(values))
		if err != nil {
			t.Error(err)
			return false
		}
		for i := range values {
			if (decoded[i] != 0) != values[i] {
				t.Errorf("value mismatch at index %d", i)
				return false
			}
		}
		return true
	})
	if err != nil {
		t.Error(err)
	}
}

func TestEncodeLevels(t *testing.T) {
	for bitWidth := 1; bitWidth <= 8; bitWidth++ {
		t.Run(fmt.Sprintf("bitWidth=%d", bitWidth), func(t *testing.T) {
			mask := byte(1<<bitWidth - 1)
			enc := &Encoding{BitWidth: bitWidth}

			err := quick.Check(func(levels []byte) bool {
				for i := range levels {
					levels[i] &= mask
				}
				buf, err := enc.EncodeLevels(nil, levels)
				if err != nil {
					t.Error(err)
					return false
				}
				decoded, err := test.DecodeHybrid(buf, uint(bitWidth), len(levels))
				if err != nil {
					t.Error(err)
					return false
				}
				if !bytes.Equal(levels, decoded) {
					t.Errorf("levels mismatch:\nwant=%v\ngot= %v", levels, decoded)
					return false
				}
				return true
			})
			if err != nil {
				t.Error(err)
			}
		})
	}
}

func TestEncodeLevelsInvalidArgument(t *testing.T) {
	tests := []struct {
		scenario string
		bitWidth int
		levels   []byte
	}{
		{scenario: "zero bit-width", bitWidth: 0, levels: []byte{0}},
		{scenario: "bit-width too large", bitWidth: 9, levels: []byte{0}},
		{scenario: "value too large", bitWidth: 1, levels: []byte{0, 1, 2}},
	}

	for _, test := range tests {
		t.Run(test.scenario, func(t *testing.T) {
			enc := &Encoding{BitWidth: test.bitWidth}
			_, err := enc.EncodeLevels(nil, test.levels)
			if !errors.Is(err, encoding.ErrInvalidArgument) {
				t.Errorf("expected an invalid argument error but got %v", err)
			}
		})
	}
}

func levelsOf(values []bool) []byte {
	levels := make([]byte, len(values))
	for i, v := range values {
		if v {
			levels[i] = 1
		}
	}
	return levels
}

func assertBooleansEqual(t *testing.T, want []bool, got []byte) {
	t.Helper()
	if len(want) != len(got) {
		t.Fatalf("number of values mismatch: want=%d got=%d", len(want), len(got))
	}
	for i := range want {
		if want[i] != (got[i] != 0) {
			t.Fatalf("value mismatch at index %d: want=%t got=%d", i, want[i], got[i])
		}
	}
}
