// Package jsontree is the runtime imported by generated parsers.
//
// A document is first decoded into a raw tree: map[string]any for objects,
// []any for arrays, json.Number for numbers, and string, bool or nil for the
// remaining JSON values. Generated code then walks that tree with the typed
// accessors in this package.
//
// Key pieces:
//   - Decode / IsNull: turn bytes into a raw tree
//   - Object / Array: structural assertions returning *TypeError on mismatch
//   - Int, Uint, Float, String, Bool, Bytes, Text: scalar reads (null reads as zero)
//   - Ints, IntPtrs, Strings, ...: bulk reads of whole primitive arrays
//   - Discriminator: polymorphic dispatch support
//   - Wrap / Index: attach the JSON path of the failing value to an error
package jsontree
