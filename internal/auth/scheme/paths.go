package scheme

import (
	"fmt"
	"strings"

	"github.com/gobwas/glob"
)

const wildcard = "*"

// RequiresAuth reports whether path needs authentication given the excluded
// patterns. An empty path or an empty pattern set always requires it.
//
// Exact patterns match after both sides gain a trailing "/" if missing, so
// "/api" and "/api/" are the same. A pattern ending in "*" matches any path
// starting with the text before the "*". Matching is case-sensitive.
func RequiresAuth(path string, excluded []string) bool {
	if path == "" || len(excluded) == 0 {
		return true
	}

	normalised := withSlash(path)
	for _, pattern := range excluded {
		if prefix, ok := strings.CutSuffix(pattern, wildcard); ok {
			if strings.HasPrefix(path, prefix) {
				return false
			}
			continue
		}
		if withSlash(pattern) == normalised {
			return false
		}
	}
	return true
}

func withSlash(p string) string {
	if strings.HasSuffix(p, "/") {
		return p
	}
	return p + "/"
}

// Paths is a compiled excluded-path set. It answers the same question as
// RequiresAuth without rescanning the pattern list on every request. The
// zero value excludes nothing.
type Paths struct {
	exact     map[string]struct{}
	wildcards []glob.Glob
	patterns  []string
}

// CompilePaths compiles the excluded patterns once at start-up.
func CompilePaths(excluded []string) (Paths, error) {
	p := Paths{
		exact:    make(map[string]struct{}, len(excluded)),
		patterns: append([]string(nil), excluded...),
	}
	for _, pattern := range excluded {
		prefix, ok := strings.CutSuffix(pattern, wildcard)
		if !ok {
			p.exact[withSlash(pattern)] = struct{}{}
			continue
		}
		// No separators: "*" spans "/" so the match is a plain prefix test.
		g, err := glob.Compile(glob.QuoteMeta(prefix) + wildcard)
		if err != nil {
			return Paths{}, fmt.Errorf("compile excluded path %q: %w", pattern, err)
		}
		p.wildcards = append(p.wildcards, g)
	}
	return p, nil
}

// MustCompilePaths is CompilePaths for static pattern lists.
func MustCompilePaths(excluded ...string) Paths {
	p, err := CompilePaths(excluded)
	if err != nil {
		panic(err)
	}
	return p
}

// RequiresAuth reports whether path needs authentication.
func (p Paths) RequiresAuth(path string) bool {
	if path == "" || len(p.patterns) == 0 {
		return true
	}
	if _, ok := p.exact[withSlash(path)]; ok {
		return false
	}
	for _, g := range p.wildcards {
		if g.Match(path) {
			return false
		}
	}
	return true
}

// Patterns returns the patterns the set was compiled from.
func (p Paths) Patterns() []string {
	return append([]string(nil), p.patterns...)
}
