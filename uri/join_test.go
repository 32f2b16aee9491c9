package uri

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func mustSplit(t *testing.T, s string) Parts {
	t.Helper()
	p, ok := Split(s)
	require.True(t, ok, s)
	return p
}

func mustSplitRef(t *testing.T, s string) Parts {
	t.Helper()
	p, ok := SplitReference(s)
	require.True(t, ok, s)
	return p
}

// RFC 3986 section 5.4.1 normal examples, grounded in spec.md section 8's
// worked example plus the RFC's own table.
func TestJoin_RFC3986NormalExamples(t *testing.T) {
	base := mustSplit(t, "http://a/b/c/d;p?q")
	for _, test := range []struct {
		ref  string
		want string
	}{
		{"g:h", "g:h"},
		{"g", "http://a/b/c/g"},
		{"./g", "http://a/b/c/g"},
		{"g/", "http://a/b/c/g/"},
		{"/g", "http://a/g"},
		{"//g", "http://g"},
		{"?y", "http://a/b/c/d;p?y"},
		{"g?y", "http://a/b/c/g?y"},
		{"#s", "http://a/b/c/d;p?q#s"},
		{"g#s", "http://a/b/c/g#s"},
		{"g?y#s", "http://a/b/c/g?y#s"},
		{";x", "http://a/b/c/;x"},
		{"g;x", "http://a/b/c/g;x"},
		{"g;x?y#s", "http://a/b/c/g;x?y#s"},
		{"", "http://a/b/c/d;p?q"},
		{".", "http://a/b/c/"},
		{"./", "http://a/b/c/"},
		{"..", "http://a/b/"},
		{"../", "http://a/b/"},
		{"../g", "http://a/b/g"},
		{"../..", "http://a/"},
		{"../../", "http://a/"},
		{"../../g", "http://a/g"},
	} {
		t.Run(test.ref, func(t *testing.T) {
			ref := mustSplitRef(t, test.ref)
			got := Join(base, ref)
			want := mustSplit(t, test.want)
			require.Truef(t, want.Equal(got), "join(%q, %q) = %q, want %q", "http://a/b/c/d;p?q", test.ref, Compose(got), test.want)
		})
	}
}

func TestJoin_RFC3986AbnormalExamples(t *testing.T) {
	base := mustSplit(t, "http://a/b/c/d;p?q")
	for _, test := range []struct {
		ref  string
		want string
	}{
		{"../../../g", "http://a/g"},
		{"../../../../g", "http://a/g"},
		{"/./g", "http://a/g"},
		{"/../g", "http://a/g"},
		{"g.", "http://a/b/c/g."},
		{".g", "http://a/b/c/.g"},
		{"g..", "http://a/b/c/g.."},
		{"..g", "http://a/b/c/..g"},
		{"./../g", "http://a/b/g"},
		{"./g/.", "http://a/b/c/g/"},
		{"g/./h", "http://a/b/c/g/h"},
		{"g/../h", "http://a/b/c/h"},
	} {
		t.Run(test.ref, func(t *testing.T) {
			ref := mustSplitRef(t, test.ref)
			got := Join(base, ref)
			want := mustSplit(t, test.want)
			require.True(t, want.Equal(got))
		})
	}
}

func TestJoin_SpecExampleFromSection8(t *testing.T) {
	base := mustSplit(t, "http://a/b/c/d;p?q")
	ref := mustSplitRef(t, "../../../g")
	got := Join(base, ref)
	want := mustSplit(t, "http://a/g")
	require.True(t, want.Equal(got))
}

func TestJoin_AuthorityInReferenceKeepsItsOwnPath(t *testing.T) {
	base := mustSplit(t, "http://a/b/c/d;p?q")
	ref := mustSplitRef(t, "//g/x")
	got := Join(base, ref)
	require.Equal(t, "g", got.Authority.Host)
	require.Equal(t, []string{"x"}, got.Path.Segments)
}
