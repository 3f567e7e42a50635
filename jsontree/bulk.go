package jsontree

// Ints reads a JSON array of numbers. Null elements read as zero.
func Ints[T Signed](node any) ([]T, error) {
	return bulk(node, Int[T])
}

// IntPtrs reads a JSON array of numbers, keeping null elements as nil.
func IntPtrs[T Signed](node any) ([]*T, error) {
	return bulkPtr(node, Int[T])
}

// Uints reads a JSON array of non-negative numbers. Null elements read as zero.
func Uints[T Unsigned](node any) ([]T, error) {
	return bulk(node, Uint[T])
}

// UintPtrs reads a JSON array of non-negative numbers, keeping null elements as nil.
func UintPtrs[T Unsigned](node any) ([]*T, error) {
	return bulkPtr(node, Uint[T])
}

// Floats reads a JSON array of numbers. Null elements read as zero.
func Floats[T Floating](node any) ([]T, error) {
	return bulk(node, Float[T])
}

// FloatPtrs reads a JSON array of numbers, keeping null elements as nil.
func FloatPtrs[T Floating](node any) ([]*T, error) {
	return bulkPtr(node, Float[T])
}

// Strings reads a JSON array of strings. Null elements read as "".
func Strings[T ~string](node any) ([]T, error) {
	return bulk(node, String[T])
}

// StringPtrs reads a JSON array of strings, keeping null elements as nil.
func StringPtrs[T ~string](node any) ([]*T, error) {
	return bulkPtr(node, String[T])
}

// Bools reads a JSON array of booleans. Null elements read as false.
func Bools[T ~bool](node any) ([]T, error) {
	return bulk(node, Bool[T])
}

// BoolPtrs reads a JSON array of booleans, keeping null elements as nil.
func BoolPtrs[T ~bool](node any) ([]*T, error) {
	return bulkPtr(node, Bool[T])
}

func bulk[T any](node any, read func(any) (T, error)) ([]T, error) {
	arr, err := Array(node)
	if err != nil {
		return nil, err
	}

	out := make([]T, len(arr))
	for i, item := range arr {
		v, err := read(item)
		if err != nil {
			return nil, Wrap(err, Index(i))
		}
		out[i] = v
	}

	return out, nil
}

func bulkPtr[T any](node any, read func(any) (T, error)) ([]*T, error) {
	arr, err := Array(node)
	if err != nil {
		return nil, err
	}

	out := make([]*T, len(arr))
	for i, item := range arr {
		if item == nil {
			continue
		}

		v, err := read(item)
		if err != nil {
			return nil, Wrap(err, Index(i))
		}
		out[i] = &v
	}

	return out, nil
}
