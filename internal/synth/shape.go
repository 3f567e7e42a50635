package synth

import (
	"treeparse/internal/analyze"
	"treeparse/primitive"
)

// Shape selects the generator for a type.
type Shape int

const (
	ShapeUnhandled Shape = iota
	ShapeSimple
	ShapeEnum
	ShapeMap
	ShapeCollection
	ShapeArray
	ShapeCustom
)

func (s Shape) String() string {
	switch s {
	case ShapeSimple:
		return "simple"
	case ShapeEnum:
		return "enum"
	case ShapeMap:
		return "map"
	case ShapeCollection:
		return "collection"
	case ShapeArray:
		return "array"
	case ShapeCustom:
		return "custom"
	default:
		return "unhandled"
	}
}

// Classify returns the shape of t. The predicates are tried in the order
// Simple, Enum, Map, Collection, Array, Custom and no two of them accept the
// same type. A pointer to a container has the shape of the container.
func Classify(t *analyze.TypeInfo) Shape {
	switch {
	case t == nil:
		return ShapeUnhandled
	case isSimple(t):
		return ShapeSimple
	case isEnum(t):
		return ShapeEnum
	case isMap(containerOf(t)):
		return ShapeMap
	case isCollection(containerOf(t)):
		return ShapeCollection
	case isBulk(containerOf(t)):
		return ShapeArray
	case isObject(t):
		return ShapeCustom
	default:
		return ShapeUnhandled
	}
}

func isSimple(t *analyze.TypeInfo) bool {
	if t.Kind == analyze.TypeKindPointer {
		return t.Elem != nil && isLeaf(t.Elem)
	}

	return isLeaf(t) || isAny(t)
}

// isLeaf reports whether t is read by a single jsontree scalar call.
func isLeaf(t *analyze.TypeInfo) bool {
	switch {
	case t.IsTextLeaf():
		return true
	case isBytes(t):
		return true
	case t.Kind == analyze.TypeKindBasic, t.Kind == analyze.TypeKindAlias:
		return t.Basic.IsValid()
	default:
		return false
	}
}

func isAny(t *analyze.TypeInfo) bool {
	return t.Kind == analyze.TypeKindInterface && !t.IsNamed() && t.Empty
}

func isBytes(t *analyze.TypeInfo) bool {
	return t.Kind == analyze.TypeKindSlice && t.Elem != nil &&
		t.Elem.Kind == analyze.TypeKindBasic && t.Elem.Basic == primitive.KindUint8
}

func isEnum(t *analyze.TypeInfo) bool {
	if t.Kind == analyze.TypeKindPointer {
		t = t.Elem
	}

	return t != nil && t.Kind == analyze.TypeKindEnum
}

// containerOf returns the map, slice or array t points to, or t itself.
func containerOf(t *analyze.TypeInfo) *analyze.TypeInfo {
	if t.Kind != analyze.TypeKindPointer || t.Elem == nil {
		return t
	}

	switch t.Elem.Kind {
	case analyze.TypeKindMap, analyze.TypeKindSlice, analyze.TypeKindArray:
		return t.Elem
	default:
		return t
	}
}

func isMap(t *analyze.TypeInfo) bool {
	return t.Kind == analyze.TypeKindMap && !isSet(t)
}

// isSet reports whether t is map[T]struct{}, read from a JSON array.
func isSet(t *analyze.TypeInfo) bool {
	return t.Kind == analyze.TypeKindMap && t.Elem != nil && t.Elem.IsInner() && len(t.Elem.Fields) == 0
}

func isCollection(t *analyze.TypeInfo) bool {
	switch {
	case isSet(t):
		return true
	case t.Kind == analyze.TypeKindSlice, t.Kind == analyze.TypeKindArray:
		return t.Elem != nil && !isBulkElem(t.Elem)
	default:
		return false
	}
}

func isBulk(t *analyze.TypeInfo) bool {
	return (t.Kind == analyze.TypeKindSlice || t.Kind == analyze.TypeKindArray) &&
		t.Elem != nil && isBulkElem(t.Elem)
}

// isBulkElem reports whether a slice or array of t is read by one bulk call.
func isBulkElem(t *analyze.TypeInfo) bool {
	if t.Kind == analyze.TypeKindPointer {
		t = t.Elem
	}

	return t != nil && (t.Kind == analyze.TypeKindBasic || t.Kind == analyze.TypeKindAlias) &&
		t.Basic.IsValid() && !t.IsTextLeaf()
}

// isObject reports whether t is read by a Parse function of its own:
// named structs and interfaces, anonymous structs, and pointers to structs.
func isObject(t *analyze.TypeInfo) bool {
	if t.Kind == analyze.TypeKindPointer {
		t = t.Elem
		if t == nil || t.Kind != analyze.TypeKindStruct {
			return false
		}
	}

	switch t.Kind {
	case analyze.TypeKindStruct:
		return t.IsNamed() || t.Enclosing != nil
	case analyze.TypeKindInterface:
		return t.IsNamed()
	default:
		return false
	}
}

// wildcard returns the first interface a map nested in t uses as key or
// value. Polymorphic interfaces have parsers and do not count.
func wildcard(t *analyze.TypeInfo) *analyze.TypeInfo {
	if t == nil || (t.IsNamed() && (t.Kind == analyze.TypeKindStruct || t.Kind == analyze.TypeKindInterface)) {
		return nil
	}

	switch t.Kind {
	case analyze.TypeKindPointer, analyze.TypeKindSlice, analyze.TypeKindArray:
		return wildcard(t.Elem)
	case analyze.TypeKindMap:
		for _, side := range []*analyze.TypeInfo{t.Key, t.Elem} {
			if side != nil && side.Kind == analyze.TypeKindInterface && side.Poly == nil {
				return side
			}
		}
		if w := wildcard(t.Key); w != nil {
			return w
		}
		return wildcard(t.Elem)
	default:
		return nil
	}
}
