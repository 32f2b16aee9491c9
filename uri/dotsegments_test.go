package uri

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRemoveDotSegments(t *testing.T) {
	for _, test := range []struct {
		in   []string
		want []string
	}{
		{[]string{"a", "b", "c", ".", "..", "..", "g"}, []string{"a", "g"}},
		{[]string{"mid", "content=5", "..", "6"}, []string{"mid", "6"}},
		{[]string{"."}, []string{""}},
		{[]string{".."}, []string{""}},
		{[]string{"..", "a"}, []string{"a"}},
		{[]string{"a", "..", ".."}, []string{""}},
		{[]string{"a", "b"}, []string{"a", "b"}},
	} {
		got := RemoveDotSegments(Path{Absolute: true, Segments: test.in})
		require.Equal(t, test.want, got.Segments, "%v", test.in)
	}
}

func TestRemoveDotSegments_Idempotent(t *testing.T) {
	for _, in := range [][]string{
		{"a", "b", "c", ".", "..", "..", "g"},
		{"mid", "content=5", "..", "6"},
		{"", "a", "", "b"},
		{"..", "..", "a"},
	} {
		p := Path{Absolute: true, Segments: in}
		once := RemoveDotSegments(p)
		twice := RemoveDotSegments(once)
		require.Equal(t, once.Segments, twice.Segments, "%v", in)
	}
}
