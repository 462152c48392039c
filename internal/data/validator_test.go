package data

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateDataset(t *testing.T) {
	dv := NewDataValidator()

	assert.ErrorIs(t, dv.ValidateDataset(nil), ErrEmptyDataset)
	assert.NoError(t, dv.ValidateDataset([]Observation{NewObservation(20, 20000, "Walks")}))
	assert.Error(t, dv.ValidateDataset([]Observation{NewObservation(20, 20000, "")}))
	assert.Error(t, dv.ValidateDataset([]Observation{NewObservation(-1, 20000, "Walks")}))
}

func TestValidateLabels(t *testing.T) {
	dv := NewDataValidator()
	rows := []Observation{
		NewObservation(20, 20000, "Walks"),
		NewObservation(70, 55000, "Drives"),
	}

	assert.NoError(t, dv.ValidateLabels(rows, []string{"Walks", "Drives"}))
	assert.Error(t, dv.ValidateLabels(rows, []string{"Walks", "Bikes"}))
	assert.Error(t, dv.ValidateLabels(rows[:1], nil))
	assert.ErrorIs(t, dv.ValidateLabels(nil, nil), ErrEmptyDataset)
}

func TestGetDatasetStats(t *testing.T) {
	dv := NewDataValidator()
	rows := []Observation{
		NewObservation(20, 20000, "Walks"),
		NewObservation(30, 30000, "Walks"),
		NewObservation(70, 55000, "Drives"),
	}

	stats := dv.GetDatasetStats(rows)
	assert.Equal(t, 3, stats.Samples)
	assert.Equal(t, 2, stats.Classes)
	assert.Equal(t, map[string]int{"Walks": 2, "Drives": 1}, stats.ClassDistribution)
	assert.True(t, stats.Age.Min.Equal(decimal.NewFromInt(20)))
	assert.True(t, stats.Age.Max.Equal(decimal.NewFromInt(70)))
	assert.True(t, stats.Income.Mean.Equal(decimal.NewFromInt(35000)))

	empty := dv.GetDatasetStats(nil)
	require.NotNil(t, empty.ClassDistribution)
	assert.Zero(t, empty.Samples)
}
