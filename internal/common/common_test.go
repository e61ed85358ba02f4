package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsInRange(t *testing.T) {
	tests := []struct {
		lo, value, hi int
		want          bool
	}{
		{1, 1, 100, true},
		{1, 100, 100, true},
		{1, 50, 100, true},
		{1, 0, 100, false},
		{1, 101, 100, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, IsInRange(tt.lo, tt.value, tt.hi), "%d in [%d, %d]", tt.value, tt.lo, tt.hi)
	}

	assert.True(t, IsInRange(0.5, 0.75, 1.0))
}

func TestPkgAlias(t *testing.T) {
	assert.Equal(t, "uuid", PkgAlias("github.com/google/uuid"))
	assert.Equal(t, "time", PkgAlias("time"))
	assert.Empty(t, PkgAlias(""))
}
