package primitive

// Family groups kinds read by the same jsontree accessor.
type Family int

const (
	_ Family = iota
	FamilyInt
	FamilyUint
	FamilyFloat
	FamilyBool
	FamilyString
)

func (f Family) String() string {
	switch f {
	case FamilyInt:
		return "Int"
	case FamilyUint:
		return "Uint"
	case FamilyFloat:
		return "Float"
	case FamilyBool:
		return "Bool"
	case FamilyString:
		return "String"
	default:
		return ""
	}
}

// Scalar is the name of the generic jsontree function reading one value,
// e.g. "Int" for jsontree.Int[int32].
func (f Family) Scalar() string {
	return f.String()
}

// Bulk is the name of the generic jsontree function reading a whole JSON array.
// Wrapper element slices keep nulls and use the Ptrs variant.
func (f Family) Bulk(wrapper bool) string {
	if f.String() == "" {
		return ""
	}

	if wrapper {
		return f.String() + "Ptrs"
	}

	return f.String() + "s"
}
