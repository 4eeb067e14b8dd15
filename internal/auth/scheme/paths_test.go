package scheme

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRequiresAuth(t *testing.T) {
	excluded := []string{"/api/v1/status/", "/api/v1/unauthorized", "/api/v1/stat*"}

	tests := []struct {
		name     string
		path     string
		excluded []string
		want     bool
	}{
		{"empty path", "", excluded, true},
		{"nil patterns", "/api/v1/users", nil, true},
		{"empty patterns", "/api/v1/users", []string{}, true},
		{"exact with slash", "/api/v1/status/", excluded, false},
		{"exact without slash", "/api/v1/status", excluded, false},
		{"pattern without slash", "/api/v1/unauthorized/", excluded, false},
		{"wildcard prefix", "/api/v1/stats", excluded, false},
		{"wildcard prefix nested", "/api/v1/stat/deep/path", excluded, false},
		{"not excluded", "/api/v1/users", excluded, true},
		{"case sensitive", "/API/V1/STATUS", excluded, true},
		{"prefix of exact is not a match", "/api/v1/unauth", excluded, true},
		{"exact is not a prefix match", "/api/v1/unauthorized/more", excluded, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, RequiresAuth(tt.path, tt.excluded))

			compiled, err := CompilePaths(tt.excluded)
			require.NoError(t, err)
			require.Equal(t, tt.want, compiled.RequiresAuth(tt.path), "compiled set must agree")
		})
	}
}

func TestRequiresAuthIsOrderIndependent(t *testing.T) {
	a := []string{"/a", "/b*", "/c/"}
	b := []string{"/c/", "/a", "/b*"}

	for _, path := range []string{"/a", "/a/", "/b", "/bee/x", "/c", "/d", "/"} {
		require.Equal(t, RequiresAuth(path, a), RequiresAuth(path, b), path)
	}
}

func TestRequiresAuthEveryPathExcludedByItself(t *testing.T) {
	for _, path := range []string{"/", "/x", "/x/", "/deep/nested/path", "/with space", "/q?s=1"} {
		require.False(t, RequiresAuth(path, []string{path}), path)
		require.False(t, MustCompilePaths(path).RequiresAuth(path), path)
		require.False(t, RequiresAuth(path+"/tail", []string{path + "*"}), path)
	}
}

func TestCompilePathsEscapesGlobSyntax(t *testing.T) {
	p := MustCompilePaths("/files/[id]{x}?*")

	require.False(t, p.RequiresAuth("/files/[id]{x}?/1"))
	require.True(t, p.RequiresAuth("/files/i"))
}

func TestBareWildcardExcludesEverything(t *testing.T) {
	p := MustCompilePaths("*")
	require.False(t, p.RequiresAuth("/anything"))
	require.True(t, p.RequiresAuth(""))
}

func TestZeroPathsRequireAuth(t *testing.T) {
	var p Paths
	require.True(t, p.RequiresAuth("/"))
	require.Empty(t, p.Patterns())
}

func TestPatternsIsACopy(t *testing.T) {
	src := []string{"/a"}
	p := MustCompilePaths(src...)
	got := p.Patterns()
	got[0] = "/b"
	require.Equal(t, []string{"/a"}, p.Patterns())
}
