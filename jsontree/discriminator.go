package jsontree

// Discriminator reads the string field that selects the concrete subtype of a
// polymorphic value.
func Discriminator(node any, field string) (string, error) {
	obj, err := Object(node)
	if err != nil {
		return "", err
	}

	raw, ok := obj[field]
	if !ok {
		return "", &DiscriminatorError{Field: field, Reason: "missing"}
	}

	value, ok := raw.(string)
	if !ok {
		return "", &DiscriminatorError{Field: field, Reason: "expected string, got " + KindOf(raw)}
	}

	return value, nil
}
