package cycles

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDetectAcyclicChain(t *testing.T) {
	next := map[int][]int{0: {1}, 1: {2}, 2: {3}, 3: nil}
	err := Detect(Config[int]{
		Next:   func(k int) []int { return next[k] },
		Starts: []int{0},
	})
	require.NoError(t, err)
}

func TestDetectReportsCycle(t *testing.T) {
	next := map[int][]int{0: {1}, 1: {2}, 2: {0}}
	err := Detect(Config[int]{
		Next:   func(k int) []int { return next[k] },
		Starts: []int{0},
	})
	var cycleErr CycleError[int]
	require.ErrorAs(t, err, &cycleErr)
}

func TestDetectSelfLoop(t *testing.T) {
	next := map[int][]int{5: {5}}
	err := Detect(Config[int]{
		Next:   func(k int) []int { return next[k] },
		Starts: []int{5},
	})
	require.Error(t, err)
	require.Equal(t, CycleError[int]{Key: 5}, err)
}

func TestDetectHandlesSharedButNonCyclicTargets(t *testing.T) {
	// Two starts converge on the same tail without looping.
	next := map[int][]int{0: {2}, 1: {2}, 2: nil}
	err := Detect(Config[int]{
		Next:   func(k int) []int { return next[k] },
		Starts: []int{0, 1},
	})
	require.NoError(t, err)
}

func TestDetectEmptyGraph(t *testing.T) {
	err := Detect(Config[int]{Next: func(int) []int { return nil }})
	require.NoError(t, err)
}
