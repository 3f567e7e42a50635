package primitive

import (
	"go/types"
	"math"
)

// KindEnum is the basic kind behind a primitive field, wrapper pointer or bulk array element.
type KindEnum int

const (
	_ KindEnum = iota // skip zero value, use it as a default (invalid) value for KindEnum

	KindInt
	KindInt8
	KindInt16
	KindInt32
	KindInt64
	KindUint
	KindUint8
	KindUint16
	KindUint32
	KindUint64
	KindFloat32
	KindFloat64
	KindBool
	KindString

	// KindTotal is a constant that represents the total number of kinds defined
	KindTotal = int(iota)
)

var kindNames = [...]string{
	KindInt:     "int",
	KindInt8:    "int8",
	KindInt16:   "int16",
	KindInt32:   "int32",
	KindInt64:   "int64",
	KindUint:    "uint",
	KindUint8:   "uint8",
	KindUint16:  "uint16",
	KindUint32:  "uint32",
	KindUint64:  "uint64",
	KindFloat32: "float32",
	KindFloat64: "float64",
	KindBool:    "bool",
	KindString:  "string",
}

// String returns the Go spelling of the kind, e.g. "int64".
func (k KindEnum) String() string {
	if k <= 0 || int(k) >= KindTotal {
		return "KindEnum(invalid)"
	}

	return kindNames[k]
}

// IsValid reports whether k is one of the declared kinds.
func (k KindEnum) IsValid() bool {
	return k > 0 && int(k) < KindTotal
}

func (k KindEnum) IsNumber() bool {
	return k.IsInteger() || k.IsFloat()
}

func (k KindEnum) IsInteger() bool {
	return k.IsSigned() || k.IsUnsigned()
}

func (k KindEnum) IsFloat() bool {
	switch k {
	default:
		return false
	case KindFloat32, KindFloat64:
		return true
	}
}

func (k KindEnum) IsSigned() bool {
	switch k {
	default:
		return false
	case KindInt, KindInt8, KindInt16, KindInt32, KindInt64:
		return true
	}
}

func (k KindEnum) IsUnsigned() bool {
	switch k {
	default:
		return false
	case KindUint, KindUint8, KindUint16, KindUint32, KindUint64:
		return true
	}
}

func (k KindEnum) Bits() int {
	switch k {
	default:
		panic("only numeric kinds have a meaningful bit size, but requested for: " + k.String())
	case KindInt, KindUint:
		power := 0
		for n := uint(math.MaxUint); n > 0; n >>= 1 {
			power++
		}
		return power
	case KindInt8, KindUint8:
		return 8
	case KindInt16, KindUint16:
		return 16
	case KindInt32, KindUint32, KindFloat32:
		return 32
	case KindInt64, KindUint64, KindFloat64:
		return 64
	}
}

// Family returns the runtime accessor family reading values of this kind.
func (k KindEnum) Family() Family {
	switch {
	case k.IsSigned():
		return FamilyInt
	case k.IsUnsigned():
		return FamilyUint
	case k.IsFloat():
		return FamilyFloat
	case k == KindBool:
		return FamilyBool
	case k == KindString:
		return FamilyString
	default:
		return 0
	}
}

// FromBasic maps a go/types basic type to its kind.
// Untyped, complex and unsafe kinds have no JSON reading and map to the zero KindEnum.
func FromBasic(b *types.Basic) KindEnum {
	if b == nil {
		return 0
	}

	switch b.Kind() {
	case types.Int:
		return KindInt
	case types.Int8:
		return KindInt8
	case types.Int16:
		return KindInt16
	case types.Int32:
		return KindInt32
	case types.Int64:
		return KindInt64
	case types.Uint:
		return KindUint
	case types.Uint8:
		return KindUint8
	case types.Uint16:
		return KindUint16
	case types.Uint32:
		return KindUint32
	case types.Uint64:
		return KindUint64
	case types.Float32:
		return KindFloat32
	case types.Float64:
		return KindFloat64
	case types.Bool:
		return KindBool
	case types.String:
		return KindString
	default:
		return 0
	}
}

// FromType returns the kind of t's underlying basic type, or zero when t is not basic.
func FromType(t types.Type) KindEnum {
	if t == nil {
		return 0
	}

	b, ok := t.Underlying().(*types.Basic)
	if !ok {
		return 0
	}

	return FromBasic(b)
}
