package dimacs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lemaire-dev/yasolve/internal/dimacs"
	"github.com/lemaire-dev/yasolve/internal/sat"
)

func TestLoadInstance(t *testing.T) {
	s := sat.NewDefaultSolver()
	require.NoError(t, dimacs.Load("../sat/testdata/sat_basic.cnf", s))
	assert.Equal(t, 2, s.NumVariables())
	assert.Equal(t, 3, s.NumConstraints())
}

func TestLoadRejectsNonCNFProblem(t *testing.T) {
	s := sat.NewDefaultSolver()
	err := dimacs.Load("testdata/not_cnf.cnf", s)
	require.Error(t, err)
}

func TestReadModels(t *testing.T) {
	got, err := dimacs.ReadModels("../sat/testdata/multi_model.cnf.models")
	require.NoError(t, err)
	want := [][]bool{
		{true, true},
		{true, false},
		{false, true},
	}
	require.Len(t, got, len(want))
	for i := range want {
		assert.Equal(t, want[i], got[i], "model %d", i)
	}
}

func TestReadModelsEmpty(t *testing.T) {
	got, err := dimacs.ReadModels("../sat/testdata/unsat_basic.cnf.models")
	require.NoError(t, err)
	assert.Empty(t, got)
}
