package analyze

import "strings"

// excludedTypes are library types that look like plain values but have no
// faithful reading from a JSON tree.
var excludedTypes = map[string]string{
	"time.Time":                   "date/time types are not supported",
	"time.Duration":               "date/time types are not supported",
	"time.Location":               "date/time types are not supported",
	"time.Month":                  "date/time types are not supported",
	"time.Weekday":                "date/time types are not supported",
	"math/big.Int":                "arbitrary precision numbers are not supported",
	"math/big.Float":              "arbitrary precision numbers are not supported",
	"math/big.Rat":                "arbitrary precision numbers are not supported",
	"github.com/google/uuid.UUID": "UUID types are not supported",
	"github.com/gofrs/uuid.UUID":  "UUID types are not supported",
}

var excludedPrefixes = []struct {
	prefix string
	reason string
}{
	{"database/sql.Null", "nullable SQL wrappers are not supported"},
	{"container/list.", "linked containers are not supported"},
	{"container/heap.", "linked containers are not supported"},
	{"container/ring.", "linked containers are not supported"},
}

// ExclusionReason reports why a named type is refused, or false if it is not excluded.
func ExclusionReason(id TypeID) (string, bool) {
	name := id.String()
	if reason, ok := excludedTypes[name]; ok {
		return reason, true
	}

	for _, p := range excludedPrefixes {
		if strings.HasPrefix(name, p.prefix) {
			return p.reason, true
		}
	}

	return "", false
}

// IsExcluded reports whether a named type is on the exclusion list.
func IsExcluded(id TypeID) bool {
	_, ok := ExclusionReason(id)
	return ok
}

// Class is the coarse category the analyzer and the field emitter act on
// before looking at the shape of a type.
type Class int

const (
	ClassNone      Class = iota // needs structural handling
	ClassPrimitive              // basic kind or a named type over one
	ClassWrapper                // pointer to a primitive, nullable
	ClassUniversal              // the empty interface
	ClassExcluded               // on the exclusion list
)

// Classify places t into its Class.
func Classify(t *TypeInfo) Class {
	if t == nil {
		return ClassNone
	}

	switch t.Kind {
	case TypeKindExternal:
		return ClassExcluded
	case TypeKindBasic, TypeKindAlias:
		return ClassPrimitive
	case TypeKindPointer:
		if t.Elem != nil && (t.Elem.Kind == TypeKindBasic || t.Elem.Kind == TypeKindAlias) {
			return ClassWrapper
		}
	case TypeKindInterface:
		if !t.IsNamed() && t.Empty {
			return ClassUniversal
		}
	}

	return ClassNone
}

// IsPrimitive reports whether t is read with presence checks only: JSON null
// reads as its zero value.
func IsPrimitive(t *TypeInfo) bool {
	return Classify(t) == ClassPrimitive
}
