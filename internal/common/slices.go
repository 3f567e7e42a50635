package common

// IsEmpty reports whether s has no elements, such as a config with no roots.
func IsEmpty[S ~[]E, E any](s S) bool {
	return len(s) == 0
}

// IsSingle reports whether s holds exactly one element, such as the one
// argument of a discriminator directive.
func IsSingle[S ~[]E, E any](s S) bool {
	return len(s) == 1
}

// IsMultiple reports whether s holds two or more elements. A doc comment on
// a grouped type declaration is shared by several specs and belongs to none.
func IsMultiple[S ~[]E, E any](s S) bool {
	return len(s) > 1
}

// First returns the head of s. ok is false for an empty s.
func First[S ~[]E, E any](s S) (head E, ok bool) {
	if IsEmpty(s) {
		return head, false
	}

	return s[0], true
}
