package logging

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewTo(t *testing.T) {
	tests := []struct {
		name      string
		verbose   bool
		wantDebug bool
	}{
		{name: "quiet", verbose: false, wantDebug: false},
		{name: "verbose", verbose: true, wantDebug: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := NewTo(&buf, tt.verbose)

			logger.Debugw("synthesized unit", "type", "store.Order")
			logger.Infow("generated parsers", "count", 3)
			_ = logger.Sync()

			out := buf.String()
			assert.Contains(t, out, "generated parsers")
			assert.Contains(t, out, `"count": 3`)
			assert.Equal(t, tt.wantDebug, bytes.Contains(buf.Bytes(), []byte("synthesized unit")))
		})
	}
}

func TestNew(t *testing.T) {
	assert.NotNil(t, New(false))
}
