// Package deprecated contains the types of parquet physical types that new
// applications should not use, but which still appear in files written by
// legacy implementations.
package deprecated

import (
	"math/big"
	"math/bits"
)

// Int96 is an implementation of the deprecated INT96 parquet type.
type Int96 [3]uint32

// Int64ToInt96 converts a int64 value to a Int96, extending the sign to the
// upper word.
func Int64ToInt96(i int64) (i96 Int96) {
	if i < 0 {
		i96[2] = 0xFFFFFFFF
	}
	i96[1] = uint32(uint64(i) >> 32)
	i96[0] = uint32(uint64(i))
	return i96
}

// Negative returns true if i is a negative value.
func (i Int96) Negative() bool {
	return (i[2] >> 31) != 0
}

// Less returns true if i < j.
//
// The method implements a signed comparison between the two operands.
func (i Int96) Less(j Int96) bool {
	if i.Negative() {
		if !j.Negative() {
			return true
		}
	} else {
		if j.Negative() {
			return false
		}
	}
	for k := 2; k >= 0; k-- {
		a, b := i[k], j[k]
		switch {
		case a < b:
			return true
		case a > b:
			return false
		}
	}
	return false
}

// Compare returns -1, 0 or +1 depending on whether i is less, equal, or
// greater than j.
func (i Int96) Compare(j Int96) int {
	switch {
	case i.Less(j):
		return -1
	case j.Less(i):
		return +1
	default:
		return 0
	}
}

// Int converts i to a big.Int representation.
func (i Int96) Int() *big.Int {
	z := new(big.Int)
	z.Or(z, big.NewInt(int64(int32(i[2]))))
	z.Lsh(z, 32)
	z.Or(z, big.NewInt(int64(i[1])))
	z.Lsh(z, 32)
	z.Or(z, big.NewInt(int64(i[0])))
	return z
}

// String returns a string representation of i.
func (i Int96) String() string {
	return i.Int().String()
}

// Len returns the minimum length in bits required to store the value of i.
func (i Int96) Len() int {
	n0 := bits.Len32(i[0])
	n1 := bits.Len32(i[1])
	n2 := bits.Len32(i[2])
	switch {
	case n2 != 0:
		return n2 + 64
	case n1 != 0:
		return n1 + 32
	default:
		return n0
	}
}
