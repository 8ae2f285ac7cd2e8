//go:build sdl

package sdlpad

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTrigger(t *testing.T) {
	tests := []struct {
		in   int16
		want uint8
	}{
		{0, 0},
		{-100, 0},
		{math.MaxInt16, math.MaxUint8},
		{math.MaxInt16 / 2, 127},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, trigger(tt.in), "trigger(%d)", tt.in)
	}
}

func TestFlipY(t *testing.T) {
	assert.Equal(t, int16(-100), flipY(100))
	assert.Equal(t, int16(math.MaxInt16), flipY(math.MinInt16))
	assert.Equal(t, int16(-math.MaxInt16), flipY(math.MaxInt16))
}
