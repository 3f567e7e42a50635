// Package synth writes the statements of generated parsers.
//
// The Engine classifies every type into a Shape and hands it to the matching
// generator. Generators recurse through the Engine for element, key and value
// types one level deeper, so nested containers get distinct variable names:
//
//	list1, err := jsontree.Array(raw)
//	for idx1, item1 := range list1 {
//		list2, err := jsontree.Array(item1)
//		...
//	}
//
// Shapes, in classification order:
//   - Simple: primitives, wrappers, any, []byte and text leaves
//   - Enum: named constants, matched through generated match functions
//   - Map: JSON objects into Go maps
//   - Collection: slices, arrays and sets of non-primitive elements
//   - Array: slices and arrays of primitives, read in bulk
//   - Custom: structs and interfaces with their own Parse functions
//
// Anything else degrades to a placeholder declaration and a diagnostic rather
// than failing the file.
package synth
