package generation_test

import (
	"strings"
	"testing"

	"github.com/phrazzld/metadesc-api/internal/generation"
	"github.com/stretchr/testify/assert"
)

func TestClassifyLength(t *testing.T) {
	t.Parallel()

	tests := []struct {
		length int
		want   generation.LengthStatus
	}{
		{0, generation.LengthDanger},
		{119, generation.LengthDanger},
		{120, generation.LengthWarning},
		{154, generation.LengthWarning},
		{155, generation.LengthOptimal},
		{160, generation.LengthOptimal},
		{161, generation.LengthWarning},
		{200, generation.LengthWarning},
		{201, generation.LengthDanger},
	}

	for _, tt := range tests {
		n, status := generation.ClassifyLength(strings.Repeat("x", tt.length))
		assert.Equal(t, tt.length, n)
		assert.Equal(t, tt.want, status, "length %d", tt.length)
	}
}
