package foundation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ferrors "git.home.luguber.info/inful/texpress/internal/foundation/errors"
)

type mode int

const (
	modeA mode = iota
	modeB
)

func TestNormalizer(t *testing.T) {
	n := NewNormalizer(map[string]mode{"alpha": modeA, "Beta": modeB, "b": modeB}, modeA)

	tests := []struct {
		in   string
		want mode
	}{
		{"alpha", modeA},
		{"  BETA ", modeB},
		{"b", modeB},
		{"", modeA},
		{"gamma", modeA},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, n.Normalize(tt.in), "input %q", tt.in)
	}

	assert.Equal(t, []string{"alpha", "b", "beta"}, n.Keys())
}

func TestNormalizerStrict(t *testing.T) {
	n := NewNormalizer(map[string]mode{"alpha": modeA}, modeA)

	got, err := n.Strict("ALPHA")
	require.NoError(t, err)
	assert.Equal(t, modeA, got)

	_, err = n.Strict("omega")
	require.Error(t, err)
	assert.True(t, ferrors.HasCategory(err, ferrors.CategoryValidation))
	assert.Contains(t, err.Error(), "omega")
}
