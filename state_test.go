package nfa

import (
	"testing"

	"github.com/stretchr/testify/require"

	nfaerr "github.com/jacoelho/nfa/errors"
	"github.com/jacoelho/nfa/internal/cycles"
)

func TestAddStateAllocatesSequentialHandles(t *testing.T) {
	g := New[string, int](false)
	s1 := g.AddState(1)
	s2 := g.AddState(2)
	require.NotEqual(t, s1, s2)
	require.NotEqual(t, Final, s1)
	require.NotEqual(t, Final, s2)
	require.Equal(t, 1, *g.GetData(s1))
	require.Equal(t, 2, *g.GetData(s2))
}

func TestGetDataMutatesInPlace(t *testing.T) {
	g := New[string, int](false)
	s := g.AddState(10)
	*g.GetData(s) = 20
	require.Equal(t, 20, *g.GetData(s))
}

func TestNestedAttachment(t *testing.T) {
	g := New[string, int](false)
	owner := g.AddState(0)
	entry := g.AddState(0)

	_, ok := g.GetNested(owner)
	require.False(t, ok)

	g.SetNested(owner, g.CreateNested(entry))

	nested, ok := g.GetNested(owner)
	require.True(t, ok)
	require.Equal(t, entry, nested.start)
}

func TestAddTransitionFromFinalPanics(t *testing.T) {
	g := New[string, int](false)
	s := g.AddState(0)

	defer func() {
		r := recover()
		require.NotNil(t, r)
		pe, ok := nfaerr.As(r)
		require.True(t, ok)
		require.Equal(t, nfaerr.TransitionFromFinal, pe.Code)
	}()
	g.AddTransition(Final, s, "a")
}

func TestOnNestedExitFromFinalPanics(t *testing.T) {
	g := New[string, int](false)
	s := g.AddState(0)

	defer func() {
		require.NotNil(t, recover())
	}()
	g.OnNestedExit(Final, s, "a")
}

func TestTransitionListsArePrependOrderedAndAcyclic(t *testing.T) {
	g := New[string, int](false)
	a := g.AddState(0)
	b := g.AddState(0)
	c := g.AddState(0)

	g.AddTransition(a, b, "1")
	g.AddTransition(a, c, "2")

	r := g.rec(a)
	require.NotEqual(t, noIndex, r.firstTrans)

	err := cycles.Detect(cycles.Config[int]{
		Next: func(ti int) []int {
			if next := g.trans[ti].next; next != noIndex {
				return []int{next}
			}
			return nil
		},
		Starts: []int{r.firstTrans},
	})
	require.NoError(t, err, "transition list must not cycle")

	var seen []int
	for ti := r.firstTrans; ti != noIndex; ti = g.trans[ti].next {
		seen = append(seen, ti)
	}
	require.Len(t, seen, 2)
	// last add_transition call is at the head: prepend order.
	require.Equal(t, c, g.trans[r.firstTrans].to)
}

// A corrupted arena where a state's transition list loops back on
// itself is exactly what cycles.Detect is meant to catch.
func TestCyclesDetectCatchesCorruptedTransitionList(t *testing.T) {
	g := New[string, int](false)
	a := g.AddState(0)
	g.AddTransition(a, a, "x")

	r := g.rec(a)
	ti := r.firstTrans
	g.trans[ti].next = ti // corrupt: list now points at itself

	err := cycles.Detect(cycles.Config[int]{
		Next: func(ti int) []int {
			if next := g.trans[ti].next; next != noIndex {
				return []int{next}
			}
			return nil
		},
		Starts: []int{ti},
	})
	require.Error(t, err)
}
