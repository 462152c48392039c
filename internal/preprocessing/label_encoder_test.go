package preprocessing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLabelEncoderKeepsGivenOrder(t *testing.T) {
	le := NewLabelEncoder("Camina", "Conduce")

	idx, ok := le.Index("Conduce")
	require.True(t, ok)
	assert.Equal(t, 1, idx)

	le.Fit([]string{"Conduce", "Bici", "Camina"})
	assert.Equal(t, []string{"Camina", "Conduce", "Bici"}, le.Classes())
}

func TestLabelEncoderFitUsesFirstAppearance(t *testing.T) {
	le := NewLabelEncoder()
	assert.False(t, le.IsFitted)

	le.Fit([]string{"b", "a", "b", "c"})
	assert.True(t, le.IsFitted)

	encoded, err := le.Transform([]string{"b", "a", "b", "c"})
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 0, 2}, encoded)
}

func TestLabelEncoderTransformUnknownLabel(t *testing.T) {
	_, err := NewLabelEncoder().Transform([]string{"a"})
	assert.ErrorIs(t, err, ErrUnknownLabel)

	le := NewLabelEncoder("Camina", "Conduce")
	_, err = le.Transform([]string{"Camina", "Bici"})
	assert.ErrorIs(t, err, ErrUnknownLabel)
	assert.ErrorContains(t, err, `"Bici" at position 1`)

	encoded, err := le.Transform(nil)
	require.NoError(t, err)
	assert.Empty(t, encoded)
}
