package uninformed_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/katalvlaran/lvsearch/search"
	"github.com/katalvlaran/lvsearch/search/searchmock"
	"github.com/katalvlaran/lvsearch/uninformed"
)

// chain is 0 → 1 → … → last with goal state goal (-1 for none).
func chain(last, goal int) search.Problem[int] {
	return search.Problem[int]{
		MoveGen: func(n int) []int {
			if n >= last {
				return nil
			}
			return []int{n + 1}
		},
		GoalTest: func(n int) bool { return n == goal },
	}
}

func TestDFID_FindsAtSmallestBound(t *testing.T) {
	res, err := uninformed.DFID(chain(10, 5), 0, 10)
	require.NoError(t, err)
	assert.True(t, res.Found)
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5}, res.Path)
	assert.Equal(t, 5, res.Bound)
	assert.Equal(t, 6, res.Epochs)
	// rounds expand 0+1+2+3+4+5 nodes
	assert.Equal(t, 15, res.Expanded)
}

func TestDFID_PathNeverExceedsBound(t *testing.T) {
	// binary tree over ints: n → 2n+1, 2n+2 (depth ≤ 4)
	p := search.Problem[int]{
		MoveGen: func(n int) []int {
			if n >= 15 {
				return nil
			}
			return []int{2*n + 1, 2*n + 2}
		},
		GoalTest: func(n int) bool { return n == 12 },
	}
	res, err := uninformed.DFID(p, 0, 10)
	require.NoError(t, err)
	require.True(t, res.Found)
	assert.LessOrEqual(t, len(res.Path)-1, res.Bound)
	assert.Equal(t, []int{0, 2, 5, 12}, res.Path)
}

func TestDFID_EpochCapAndEarlyStop(t *testing.T) {
	res, err := uninformed.DFID(chain(10, 5), 0, 3)
	require.NoError(t, err)
	assert.False(t, res.Found)
	assert.Equal(t, 3, res.Epochs)

	// finite space without goal: deepening stops once nothing is cut off
	res, err = uninformed.DFID(chain(3, -1), 0, 100)
	require.NoError(t, err)
	assert.False(t, res.Found)
	assert.Equal(t, 5, res.Epochs)
	assert.Equal(t, 4, res.Bound)

	res, err = uninformed.DFID(chain(3, 2), 0, 0)
	require.NoError(t, err)
	assert.False(t, res.Found)
	assert.Equal(t, 1, res.Epochs, "bound 0 still runs")
	assert.Equal(t, 0, res.Expanded)
}

func TestDFID_ZeroCapStillAcceptsGoalStart(t *testing.T) {
	res, err := uninformed.DFID(chain(3, 0), 0, 0)
	require.NoError(t, err)
	assert.True(t, res.Found)
	assert.Equal(t, []int{0}, res.Path)
	assert.Equal(t, 0, res.Expanded)
	assert.Equal(t, 1, res.Epochs)
	assert.Equal(t, 0, res.Bound)
}

func TestDFID_NegativeBound(t *testing.T) {
	_, err := uninformed.DFID(chain(3, 3), 0, -1)
	assert.ErrorIs(t, err, uninformed.ErrNegativeBound)
	_, err = uninformed.DepthBoundedDFS(chain(3, 3), 0, -2)
	assert.ErrorIs(t, err, uninformed.ErrNegativeBound)
}

func TestDFID_GoalStart(t *testing.T) {
	ctrl := gomock.NewController(t)
	agent := searchmock.NewMockAgent[int](ctrl)
	agent.EXPECT().GoalTest(7).Return(true)

	res, err := uninformed.DFID(search.FromAgent[int](agent), 7, 5)
	require.NoError(t, err)
	assert.Equal(t, []int{7}, res.Path)
	assert.Equal(t, 0, res.Expanded)
	assert.Equal(t, 0, res.Bound)
}

func TestDepthBoundedDFS(t *testing.T) {
	res, err := uninformed.DepthBoundedDFS(chain(10, 4), 0, 3)
	require.NoError(t, err)
	assert.False(t, res.Found)
	assert.Equal(t, 3, res.Bound)

	res, err = uninformed.DepthBoundedDFS(chain(10, 4), 0, 4)
	require.NoError(t, err)
	assert.True(t, res.Found)
	assert.Equal(t, []int{0, 1, 2, 3, 4}, res.Path)
}
