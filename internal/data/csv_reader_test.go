package data

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadObservationsSpanishHeaders(t *testing.T) {
	input := `Edad,Ingreso,Clase
25,22000,Camina
64,58000,Conduce
`
	rows, skipped, err := ReadObservations(strings.NewReader(input))
	require.NoError(t, err)
	assert.Zero(t, skipped)
	require.Len(t, rows, 2)
	assert.Equal(t, "25", rows[0].Age.String())
	assert.Equal(t, "22000", rows[0].Income.String())
	assert.Equal(t, "Conduce", rows[1].Class)
}

func TestReadObservationsReorderedColumns(t *testing.T) {
	input := `id,CLASS,income,age
1,Walks,30000,40
2,Drives,, 50
3,Drives,51000,61
`
	rows, skipped, err := ReadObservations(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, 1, skipped)
	require.Len(t, rows, 2)
	assert.Equal(t, "40", rows[0].Age.String())
	assert.Equal(t, "Walks", rows[0].Class)
	assert.Equal(t, "61", rows[1].Age.String())
}

func TestReadObservationsErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"missing column", "Age,Class\n20,Walks\n", "missing income column"},
		{"header only", "Age,Income,Class\n", "insufficient data"},
		{"bad number", "Age,Income,Class\ntwenty,1000,Walks\n", "line 2"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := ReadObservations(strings.NewReader(tc.input))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.want)
		})
	}
}

func TestCSVReaderLoadData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.csv")
	require.NoError(t, os.WriteFile(path, []byte("Age,Income,Class\n30,31000,Walks\n,1,Walks\n"), 0644))

	reader, err := NewCSVReader(path)
	require.NoError(t, err)

	rows, err := reader.LoadData()
	require.NoError(t, err)
	assert.Len(t, rows, 1)
	assert.Equal(t, 1, reader.Skipped())

	_, err = NewCSVReader(" ")
	assert.Error(t, err)
}
