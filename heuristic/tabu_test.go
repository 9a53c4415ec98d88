package heuristic_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvsearch/heuristic"
	"github.com/katalvlaran/lvsearch/search"
)

func TestTabuSearch_EscapesLocalMinimum(t *testing.T) {
	res, err := heuristic.TabuSearch(valleyProblem(), 0, nil, 20, 3)
	require.NoError(t, err)
	assert.True(t, res.Found)
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7}, res.Path)
	assert.Equal(t, 7, res.Epochs)
	assert.Equal(t, 7, res.Expanded)
	assert.Equal(t, 7, res.Best)
	assert.Equal(t, 0.0, res.BestScore)
}

func TestTabuSearch_ShortTenureCycles(t *testing.T) {
	var scores []float64
	res, err := heuristic.TabuSearch(valleyProblem(), 0, nil, 10, 1,
		search.WithOnEpoch(func(_ int, current, _ float64) { scores = append(scores, current) }))
	require.NoError(t, err)
	assert.False(t, res.Found)
	assert.Equal(t, 10, res.Epochs)
	assert.Equal(t, 2, res.Best)
	assert.Equal(t, 3.0, res.BestScore)
	assert.Equal(t, []int{0, 1, 2}, res.BestPath)
	assert.Equal(t, []float64{4, 3, 4, 3, 4, 3, 4, 3, 4, 3}, scores)
}

func TestTabuSearch_AllowedFilter(t *testing.T) {
	noThree := func(n []int) []int {
		out := n[:0:0]
		for _, s := range n {
			if s != 3 {
				out = append(out, s)
			}
		}
		return out
	}
	res, err := heuristic.TabuSearch(valleyProblem(), 0, noThree, 20, 3)
	require.NoError(t, err)
	assert.False(t, res.Found)
	assert.Equal(t, 2, res.Epochs)
	assert.Equal(t, 3, res.Expanded)
	assert.Equal(t, 2, res.Best)
}

func TestTabuSearch_Deterministic(t *testing.T) {
	a, err := heuristic.TabuSearch(valleyProblem(), 10, nil, 20, 2)
	require.NoError(t, err)
	b, err := heuristic.TabuSearch(valleyProblem(), 10, nil, 20, 2)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestTabuSearch_InvalidArguments(t *testing.T) {
	_, err := heuristic.TabuSearch(valleyProblem(), 0, nil, 0, 3)
	assert.ErrorIs(t, err, heuristic.ErrBadEpochs)

	_, err = heuristic.TabuSearch(valleyProblem(), 0, nil, 5, 0)
	assert.ErrorIs(t, err, heuristic.ErrBadTenure)

	p := valleyProblem()
	p.GoalTest = nil
	_, err = heuristic.TabuSearch(p, 0, nil, 5, 3)
	assert.ErrorIs(t, err, search.ErrNilGoalTest)
}

func TestTabuSearch_ArgumentsCheckedBeforeGoalStart(t *testing.T) {
	res, err := heuristic.TabuSearch(valleyProblem(), 7, nil, 0, 3)
	assert.ErrorIs(t, err, heuristic.ErrBadEpochs)
	assert.False(t, res.Found)

	res, err = heuristic.TabuSearch(valleyProblem(), 7, nil, 1, 3)
	require.NoError(t, err)
	assert.True(t, res.Found)
	assert.Equal(t, []int{7}, res.Path)
}
