package synth

import (
	"fmt"
	"regexp"
	"strings"
)

// Fragment is the result of synthesizing one value: the expression holding
// it and, for enums, the boolean that tells whether the raw value matched.
// An empty Guard means the value is always usable.
type Fragment struct {
	Expr  string
	Guard string
}

// Block accumulates the statements of one generated function body, along
// with the JSON path of the value being read so failures can report it.
type Block struct {
	rt    string
	lines []string
	depth int
	path  []string // Go expressions, e.g. `"items"`, `jsontree.Index(idx1)`, `key1`
}

// NewBlock creates a Block whose statements start at depth. rt qualifies
// calls into the runtime package.
func NewBlock(rt string, depth int) *Block {
	return &Block{rt: rt, depth: depth}
}

// Linef appends one statement.
func (b *Block) Linef(format string, args ...any) {
	b.lines = append(b.lines, strings.Repeat("\t", b.depth)+fmt.Sprintf(format, args...))
}

// Comment appends a line comment.
func (b *Block) Comment(format string, args ...any) {
	b.Linef("// "+format, args...)
}

// Open appends a statement opening a brace block.
func (b *Block) Open(format string, args ...any) {
	b.Linef(format+" {", args...)
	b.depth++
}

// Close ends the innermost brace block.
func (b *Block) Close() {
	b.depth--
	b.Linef("}")
}

// Push appends a path segment and returns the func removing it.
func (b *Block) Push(segment string) func() {
	b.path = append(b.path, segment)
	n := len(b.path)
	return func() { b.path = b.path[:n-1] }
}

// Return renders the statement returning errVar with the current path.
func (b *Block) Return(errVar string) string {
	if len(b.path) == 0 {
		return "return " + errVar
	}

	return fmt.Sprintf("return %s.Wrap(%s, %s)", b.rt, errVar, strings.Join(b.path, ", "))
}

// Fail appends the early return taken when errVar is not nil.
func (b *Block) Fail(errVar string) {
	b.Open("if %s != nil", errVar)
	b.Linef("%s", b.Return(errVar))
	b.Close()
}

// Skip appends the continue taken when guard is false.
func (b *Block) Skip(guard string) {
	b.Open("if !%s", guard)
	b.Linef("continue")
	b.Close()
}

// Child returns an empty Block one level deeper sharing the current path,
// for loop bodies whose header depends on what the body uses.
func (b *Block) Child() *Block {
	return &Block{
		rt:    b.rt,
		depth: b.depth + 1,
		path:  append([]string(nil), b.path...),
	}
}

// Append adds the statements of child.
func (b *Block) Append(child *Block) {
	b.lines = append(b.lines, child.lines...)
}

// Uses reports whether any statement mentions the identifier name.
func (b *Block) Uses(name string) bool {
	re := regexp.MustCompile(`\b` + regexp.QuoteMeta(name) + `\b`)
	for _, line := range b.lines {
		if re.MatchString(line) {
			return true
		}
	}

	return false
}

// Empty reports whether no statement was appended.
func (b *Block) Empty() bool {
	return len(b.lines) == 0
}

// Lines returns the statements appended so far.
func (b *Block) Lines() []string {
	return b.lines
}

func (b *Block) String() string {
	return strings.Join(b.lines, "\n")
}
