// Package gen emits the generated parser package.
//
// Every type of an analyzed closure becomes one file, <unit>_parser.go,
// declaring
//
//	func ParseN(data []byte) (*T, error)
//	func ParseNNode(node any) (*T, error)
//	func ParseNInto(node any, out *T) error
//
// Enum match functions shared by all units go to treeparse_enums.go.
// Generation approach uses text/template + go/format; files are formatted and
// written concurrently once synthesis is done.
package gen
