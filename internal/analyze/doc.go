// Package analyze provides package loading, type extraction and the type
// graph analysis deciding which parsers get generated.
//
// It uses golang.org/x/tools/go/packages with AST and go/types
// to build a canonical in-memory model of the bean types.
//
// Key types:
//   - TypeID: package import path + type name
//   - TypeInfo: describes kind (struct/enum/map/slice/interface/...), fields,
//     enum constants, polymorphic subtypes
//   - Loader: loads packages and extracts TypeInfo lazily, with a cache that
//     makes recursive types safe
//   - Analyzer: walks fields, embedded structs and subtypes from a root and
//     returns a Closure
//   - Closure: generatable types in discovery order plus their unit names
package analyze
