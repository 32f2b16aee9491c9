package uri

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestSplit_ExampleFromSpec(t *testing.T) {
	p, ok := Split("http://a/b/c/d;p?q")
	require.True(t, ok)
	require.Equal(t, "http", *p.Scheme)
	require.NotNil(t, p.Authority)
	require.Equal(t, "a", p.Authority.Host)
	require.Nil(t, p.Authority.UserInfo)
	require.Nil(t, p.Authority.Port)
	require.Equal(t, []string{"b", "c", "d;p"}, p.Path.Segments)
	require.True(t, p.Path.Absolute)
	require.Equal(t, "q", *p.Query)
	require.Nil(t, p.Fragment)
}

func TestSplit_RequiresScheme(t *testing.T) {
	_, ok := Split("//a/b")
	require.False(t, ok)
}

func TestSplitReference_AllowsNoScheme(t *testing.T) {
	p, ok := SplitReference("../../../g")
	require.True(t, ok)
	require.Nil(t, p.Scheme)
	require.Nil(t, p.Authority)
	require.Equal(t, []string{"..", "..", "..", "g"}, p.Path.Segments)
}

func TestSplit_UserInfoAndPort(t *testing.T) {
	p, ok := Split("ftp://user:pw@host.example:21/a")
	require.True(t, ok)
	require.Equal(t, "user:pw", *p.Authority.UserInfo)
	require.Equal(t, "host.example", p.Authority.Host)
	require.Equal(t, "21", *p.Authority.Port)
}

func TestSplit_IPv6Literal(t *testing.T) {
	p, ok := Split("http://[::1]:8080/x")
	require.True(t, ok)
	require.Equal(t, "[::1]", p.Authority.Host)
	require.Equal(t, "8080", *p.Authority.Port)
}

func TestSplit_FragmentAndEmptyQuery(t *testing.T) {
	p, ok := Split("http://a/b?#frag")
	require.True(t, ok)
	require.NotNil(t, p.Query)
	require.Equal(t, "", *p.Query)
	require.Equal(t, "frag", *p.Fragment)
}

func TestSplit_TrailingSlashGivesEmptySegment(t *testing.T) {
	p, ok := Split("http://a/b/")
	require.True(t, ok)
	require.Equal(t, []string{"b", ""}, p.Path.Segments)
}

func TestSplit_RoundTripsThroughCompose(t *testing.T) {
	for _, s := range []string{
		"http://a/b/c/d;p?q",
		"ftp://user:pw@host.example:21/a",
		"mailto:fred@example.com",
		"http://a/b?#frag",
		"http://a/b/",
		"http://a",
	} {
		p, ok := Split(s)
		require.True(t, ok, s)
		q, ok := Split(Compose(p))
		require.True(t, ok, s)
		if diff := cmp.Diff(p, q); diff != "" {
			t.Errorf("%s: split(compose(split(s))) mismatch (-want +got):\n%s", s, diff)
		}
		require.True(t, p.Equal(q))
	}
}
