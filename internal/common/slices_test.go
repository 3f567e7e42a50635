package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSliceCounts(t *testing.T) {
	tests := []struct {
		name                    string
		in                      []string
		empty, single, multiple bool
	}{
		{"nil", nil, true, false, false},
		{"empty", []string{}, true, false, false},
		{"one", []string{"_type"}, false, true, false},
		{"two", []string{"TypeA", "Card"}, false, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.empty, IsEmpty(tt.in))
			assert.Equal(t, tt.single, IsSingle(tt.in))
			assert.Equal(t, tt.multiple, IsMultiple(tt.in))
		})
	}
}

func TestFirst(t *testing.T) {
	head, ok := First([]string{"order.go", "item.go"})
	assert.True(t, ok)
	assert.Equal(t, "order.go", head)

	head, ok = First([]string(nil))
	assert.False(t, ok)
	assert.Empty(t, head)
}
