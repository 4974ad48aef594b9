package nfa

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// An outer state with nested I accepting a+; on_nested_exit(Start,
// Final, "b") fires once I has reached its own Final and the outer
// symbol doesn't continue I.
func TestOnNestedExitFiresOnceNestedReachesFinal(t *testing.T) {
	g := New[string, int](false)

	entryI := g.AddState(0)
	sinkI := g.AddState(0)
	g.AddTransition(entryI, sinkI, "a")
	g.AddEmptyTransition(sinkI, Final)
	g.Repeat(entryI, sinkI, 1, Unbounded)

	g.SetNested(Start, g.CreateNested(entryI))
	g.OnNestedExit(Start, Final, "b")

	m := StartMatch(g, matchEq, imageID)

	require.True(t, m.Process("a"))
	require.False(t, m.InFinal(), "outer hasn't seen 'b' yet")

	require.True(t, m.Process("a"))
	require.False(t, m.InFinal())

	require.True(t, m.Process("b"), "on-exit transition claims 'b' once nested dies")
	require.True(t, m.InFinal())
}

// A nested automaton that never reaches Final for the given input
// still lets the enclosing state's on_nested_exit transitions fire;
// the enclosing process succeeds even though its nested child failed.
func TestOnNestedExitFiresWhenNestedFails(t *testing.T) {
	g := New[string, int](false)

	entryRP := g.AddState(0)
	g.AddTransition(entryRP, Final, "record")
	g.AddTransition(entryRP, Final, "play")

	g.SetNested(Start, g.CreateNested(entryRP))

	off := g.AddState(0)
	g.OnNestedExit(Start, off, "turn_off")

	m := StartMatch(g, matchEq, imageID)
	require.True(t, m.Process("turn_off"))

	var active []State
	m.ForEachActiveState(false, func(s State) { active = append(active, s) })
	require.Equal(t, []State{off}, active)
}

func TestNestedConsumptionStopsOrdinaryBubbling(t *testing.T) {
	g := New[string, int](false)

	entryI := g.AddState(0)
	g.AddTransition(entryI, Final, "a")
	g.SetNested(Start, g.CreateNested(entryI))

	// If the nested automaton consumes 'a', Start's own ordinary
	// transition on 'a' must not also fire.
	alt := g.AddState(0)
	g.AddTransition(Start, alt, "a")

	m := StartMatch(g, matchEq, imageID)
	require.True(t, m.Process("a"))

	var active []State
	m.ForEachActiveState(false, func(s State) { active = append(active, s) })
	require.Equal(t, []State{Start}, active, "only Start (carrying the advanced nested frontier) should be active")
}

func TestGetNestedReportsAbsence(t *testing.T) {
	g := New[string, int](false)
	s := g.AddState(0)
	_, ok := g.GetNested(s)
	require.False(t, ok)
	_, ok = g.GetNested(Final)
	require.False(t, ok)
}
