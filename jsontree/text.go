package jsontree

import "encoding"

// TextPtr is the pointer type of T when it implements encoding.TextUnmarshaler.
type TextPtr[T any] interface {
	*T
	encoding.TextUnmarshaler
}

// Text reads a JSON string through T's UnmarshalText. Null reads as zero.
//
//	addr, err := jsontree.Text[netip.Addr](raw)
func Text[T any, PT TextPtr[T]](node any) (T, error) {
	var v T
	switch s := node.(type) {
	case nil:
		return v, nil
	case string:
		if err := PT(&v).UnmarshalText([]byte(s)); err != nil {
			return v, err
		}
		return v, nil
	default:
		return v, &TypeError{Expected: "string", Got: KindOf(node)}
	}
}
