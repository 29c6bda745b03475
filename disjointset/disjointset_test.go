package disjointset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSets_SingletonsAfterNew(t *testing.T) {
	s := New(1, 2, 3)

	assert.Equal(t, 3, s.Len())
	assert.Equal(t, 3, s.Size())

	for _, elem := range []int{1, 2, 3} {
		leader, err := s.Leader(elem)
		require.NoError(t, err)
		assert.Equal(t, elem, leader)
	}
}

func TestSets_AddIsIdempotent(t *testing.T) {
	s := New[string]()

	assert.True(t, s.Add("a"))
	assert.False(t, s.Add("a"))
	assert.Equal(t, 1, s.Len())
}

func TestSets_LeaderOfUnknownElement(t *testing.T) {
	s := New(1)

	_, err := s.Leader(42)
	assert.ErrorIs(t, err, ErrElementNotFound)

	_, err = s.Set(42)
	assert.ErrorIs(t, err, ErrElementNotFound)

	assert.ErrorIs(t, s.Union(1, 42), ErrElementNotFound)
	assert.ErrorIs(t, s.Union(42, 1), ErrElementNotFound)
}

func TestSets_UnionKeepsFirstLeader(t *testing.T) {
	s := New(1, 2, 3, 4)

	require.NoError(t, s.Union(1, 2))
	require.NoError(t, s.Union(3, 4))

	leader, err := s.Leader(2)
	require.NoError(t, err)
	assert.Equal(t, 1, leader)

	// Merging set {3,4} into {1,2}: 1 stays leader of everything.
	require.NoError(t, s.Union(2, 3))

	for _, elem := range []int{1, 2, 3, 4} {
		leader, err := s.Leader(elem)
		require.NoError(t, err)
		assert.Equal(t, 1, leader)
	}

	assert.Equal(t, 1, s.Len())
	assert.Equal(t, 4, s.Size())
}

func TestSets_UnionSameSetIsNoOp(t *testing.T) {
	s := New("a", "b")

	require.NoError(t, s.Union("a", "b"))
	require.NoError(t, s.Union("b", "a"))

	leader, err := s.Leader("b")
	require.NoError(t, err)
	assert.Equal(t, "a", leader)
}

func TestSets_SameSet(t *testing.T) {
	s := New(1, 2, 3)

	same, err := s.SameSet(1, 2)
	require.NoError(t, err)
	assert.False(t, same)

	require.NoError(t, s.Union(1, 2))

	same, err = s.SameSet(1, 2)
	require.NoError(t, err)
	assert.True(t, same)

	same, err = s.SameSet(1, 3)
	require.NoError(t, err)
	assert.False(t, same)
}

func TestSets_SetMembers(t *testing.T) {
	s := New(1, 2, 3)
	require.NoError(t, s.Union(1, 2))

	members, err := s.Set(2)
	require.NoError(t, err)
	assert.ElementsMatch(t, []int{1, 2}, members)

	members, err = s.Set(3)
	require.NoError(t, err)
	assert.Equal(t, []int{3}, members)
}
