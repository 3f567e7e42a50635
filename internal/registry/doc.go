// Package registry records hand-written parsers that replace generated ones.
//
// A custom parser lives in a *_parser.go file and declares
//
//	func Parse<T>Into(node any, out *T) error
//
// Discover scans a directory for such files. Types found in the Registry are
// not generated; generated code calls the custom Into function instead.
package registry
