package synth

import "strconv"

// Names are the variables one nesting level declares. Every level suffixes
// its names with its depth so nested loops never shadow each other.
type Names struct {
	Value    string
	List     string
	Item     string
	Idx      string
	Obj      string
	Key      string
	TypedKey string
	Matched  string
	Enum     string
	Bulk     string
	Scalar   string
	Slot     string
}

// NamesAt returns the names of level.
func NamesAt(level int) Names {
	s := strconv.Itoa(level)
	return Names{
		Value:    "value" + s,
		List:     "list" + s,
		Item:     "item" + s,
		Idx:      "idx" + s,
		Obj:      "obj" + s,
		Key:      "key" + s,
		TypedKey: "typedKey" + s,
		Matched:  "matched" + s,
		Enum:     "enum" + s,
		Bulk:     "bulk" + s,
		Scalar:   "scalar" + s,
		Slot:     "slot" + s,
	}
}
