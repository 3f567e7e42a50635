package custom

// Not a parser file; Discover skips it.
func ParseIgnoredInto(node any, out *struct{}) error { return nil }
