package diff

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDiff(t *testing.T) {
	tests := []struct {
		name string
		a    []string
		b    []string
		want string
	}{
		{
			name: "left is larger superset",
			a:    []string{"a", "b", "c"},
			b:    []string{"a", "b"},
			want: Header("a") + "c\n",
		},
		{
			name: "right is larger superset",
			a:    []string{"a", "b"},
			b:    []string{"a", "b", "c"},
			want: Header("b") + "c\n",
		},
		{
			name: "identical",
			a:    []string{"a", "b"},
			b:    []string{"a", "b"},
			want: "",
		},
		{
			name: "identical in different order",
			a:    []string{"b", "a"},
			b:    []string{"a", "b"},
			want: "",
		},
		{
			name: "both empty",
			want: "a contains:\nb contains:\n",
		},
		{
			name: "left empty",
			b:    []string{"x.txt"},
			want: "a contains:\nb contains:\nx.txt\n",
		},
		{
			name: "right empty",
			a:    []string{"x.txt"},
			want: "a contains:\nx.txt\nb contains:\n",
		},
		{
			name: "disjoint",
			a:    []string{"b.txt", "a.txt"},
			b:    []string{"c.txt"},
			want: "a contains:\na.txt\nb.txt\nb contains:\nc.txt\n",
		},
		{
			name: "partial overlap",
			a:    []string{"a", "b"},
			b:    []string{"b", "c"},
			want: "a contains:\na\nb\nb contains:\nb\nc\n",
		},
		{
			name: "surplus sorted case-insensitively",
			a:    []string{"a", "D", "c", "B"},
			b:    []string{"a"},
			want: "a contains:\nB\nc\nD\n",
		},
		{
			name: "names differing only in case are distinct",
			a:    []string{"a", "A"},
			b:    []string{"a"},
			want: "a contains:\nA\n",
		},
		{
			name: "duplicate entries count towards size",
			a:    []string{"a", "a"},
			b:    []string{"a"},
			want: "a contains:\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Diff(tt.a, tt.b, "a", "b"))
		})
	}
}

func TestDiffDisjointContainsBothHeaders(t *testing.T) {
	cases := [][2][]string{
		{{"x"}, {"y"}},
		{{"x", "y"}, {"y", "z"}},
		{{"1", "2", "3"}, {"4"}},
	}

	for _, c := range cases {
		out := Diff(c[0], c[1], "left", "right")
		assert.Contains(t, out, Header("left"))
		assert.Contains(t, out, Header("right"))
	}
}

func TestDiffMirrored(t *testing.T) {
	cases := [][2][]string{
		{{"a", "b", "c"}, {"a", "b"}},
		{{"a"}, {"b"}},
		{{}, {"a"}},
		{{"a", "b"}, {"b", "a"}},
	}

	for _, c := range cases {
		forward := Compare(c[0], c[1], "x", "y")
		backward := Compare(c[1], c[0], "y", "x")

		assert.Equal(t, forward.Kind, backward.Kind)
		assert.ElementsMatch(t, forward.Sections, backward.Sections)
	}
}

func TestCompareDoesNotMutateInputs(t *testing.T) {
	a := []string{"c", "b", "a"}
	b := []string{"b", "a"}

	report := Compare(a, b, "a", "b")

	assert.Equal(t, KindSurplus, report.Kind)
	assert.Equal(t, []string{"c", "b", "a"}, a)
	assert.Equal(t, []string{"b", "a"}, b)
}

func TestCompareBothEmptyReportsBothSides(t *testing.T) {
	report := Compare(nil, []string{}, "a", "b")

	assert.Equal(t, KindBoth, report.Kind)
	assert.False(t, report.Empty())
	assert.Equal(t, "a contains:\nb contains:\n", report.String())
}

func TestReportEmpty(t *testing.T) {
	assert.True(t, Compare([]string{"a"}, []string{"a"}, "x", "y").Empty())
	assert.False(t, Compare([]string{"a"}, []string{"b"}, "x", "y").Empty())
}
