package schema

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

// colSnapshot mirrors Column's exported fields only, since Column
// carries an unexported hasQualifier bit cmp.Diff would otherwise
// refuse to traverse.
type colSnapshot struct {
	Qualifier string
	Name      string
	Type      DataType
}

func snapshot(s Schema) []colSnapshot {
	out := make([]colSnapshot, len(s))
	for i, c := range s {
		out[i] = colSnapshot{c.Qualifier, c.Name, c.Type}
	}
	return out
}

func TestSchemaContainsAndLookup(t *testing.T) {
	s := NewSchema(
		NewQualifiedColumn("a", "x", Int),
		NewQualifiedColumn("a", "y", Varchar),
	)

	require.True(t, s.Contains("a.x"))
	require.False(t, s.Contains("a.z"))

	col := s.GetColumnByName("y")
	require.NotNil(t, col)
	require.Equal(t, "a", col.Qualifier)

	require.Nil(t, s.GetColumnByName("nope"))
}

func TestSchemaAppendRejectsDuplicate(t *testing.T) {
	s := NewSchema(NewQualifiedColumn("a", "x", Int))
	_, err := s.Append(NewQualifiedColumn("a", "x", Int))
	require.Error(t, err)
	require.True(t, ErrDuplicateColumn.Is(err))

	grown, err := s.Append(NewQualifiedColumn("a", "y", Int))
	require.NoError(t, err)
	require.Len(t, grown, 2)
	require.Len(t, s, 1, "Append must not mutate the receiver")
}

func TestConcat(t *testing.T) {
	left := NewSchema(NewQualifiedColumn("a", "x", Int))
	right := NewSchema(NewQualifiedColumn("b", "y", Int))
	out := Concat(left, right)
	require.Equal(t, []string{"a.x", "b.y"}, out.Names())
}

func TestConcatStructuralDiff(t *testing.T) {
	left := NewSchema(NewQualifiedColumn("a", "x", Int))
	right := NewSchema(NewQualifiedColumn("b", "y", Varchar))
	got := Concat(left, right)

	want := []colSnapshot{{"a", "x", Int}, {"b", "y", Varchar}}
	if diff := cmp.Diff(want, snapshot(got)); diff != "" {
		t.Errorf("Concat mismatch (-want +got):\n%s", diff)
	}
}

func TestColumnEqualsComparesQualifiedName(t *testing.T) {
	a := NewQualifiedColumn("t", "x", Int)
	b := NewColumn("x", Int)
	// Different qualified names ("t.x" vs "x") so not equal.
	require.False(t, a.Equals(b))

	c := NewQualifiedColumn("t", "x", Int)
	require.True(t, a.Equals(c))
}

func TestSchemaCloneIsIndependent(t *testing.T) {
	s := NewSchema(NewQualifiedColumn("a", "x", Int))
	clone := s.Clone()
	clone[0].Type = Varchar
	require.Equal(t, Int, s[0].Type, "mutating a clone must not affect the original")
}
