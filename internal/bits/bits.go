package bits

import (
	"math/bits"
)

func ByteCount(count uint) int {
	return int((count + 7) / 8)
}

func Len8(i int8) int {
	return bits.Len8(uint8(i))
}
