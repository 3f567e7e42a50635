// Package match ranks known type names by edit distance so that an
// unresolved root type can be reported with "did you mean" suggestions.
//
// Key functions:
//   - Levenshtein: rune-wise edit distance between two strings
//   - Similarity: distance normalized to a 0..1 score
//   - Suggest: closest candidates for a misspelled qualified type name
package match
