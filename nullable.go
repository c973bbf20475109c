package parquet

// Nullable is an optional value of a column. Entries with Valid set to false
// are absent: they are recorded in the definition levels of a page but do not
// contribute any value bytes.
type Nullable[T any] struct {
	Value T
	Valid bool
}

// Some returns a present value.
func Some[T any](value T) Nullable[T] {
	return Nullable[T]{Value: value, Valid: true}
}

// Null returns an absent value.
func Null[T any]() Nullable[T] {
	return Nullable[T]{}
}

func countNulls[T any](column []Nullable[T]) int {
	n := 0
	for i := range column {
		if !column[i].Valid {
			n++
		}
	}
	return n
}
