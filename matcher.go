package globwalk

import (
	"context"
	"strings"
)

// Matcher holds a set of compiled include and exclude patterns. A file is
// selected when at least one include pattern matches it and no exclude
// pattern does; a directory is descended into under the same rule, so an
// excluded directory hides its whole subtree.
//
// Add patterns first, then execute. Once patterns are added, Execute and its
// variants may be called from several goroutines: every call works on its
// own traversal state. Adding patterns concurrently with a traversal is not
// supported.
type Matcher struct {
	opts     options
	includes []*Pattern
	excludes []*Pattern
}

// NewMatcher returns an empty Matcher. With no include pattern it matches
// nothing.
func NewMatcher(opts ...Option) *Matcher {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Matcher{opts: o}
}

// AddInclude compiles glob and adds it to the include set.
func (m *Matcher) AddInclude(glob string) error {
	p, err := Compile(glob)
	if err != nil {
		return err
	}
	m.includes = append(m.includes, p)
	return nil
}

// AddExclude compiles glob and adds it to the exclude set.
func (m *Matcher) AddExclude(glob string) error {
	p, err := Compile(glob)
	if err != nil {
		return err
	}
	m.excludes = append(m.excludes, p)
	return nil
}

// AddIncludePattern adds an already compiled pattern to the include set.
func (m *Matcher) AddIncludePattern(p *Pattern) {
	m.includes = append(m.includes, p)
}

// AddExcludePattern adds an already compiled pattern to the exclude set.
func (m *Matcher) AddExcludePattern(p *Pattern) {
	m.excludes = append(m.excludes, p)
}

// Execute walks src depth first and returns the relative paths of the
// selected files. Within a directory, files come before the contents of its
// subdirectories; otherwise the order is that of src.
//
// The first error returned by src aborts the walk. It is returned as is and
// the paths collected so far are discarded.
func (m *Matcher) Execute(src Source) ([]string, error) {
	return m.ExecuteContext(context.Background(), src)
}

// ExecuteContext is like Execute but stops with ctx.Err() once ctx is done.
// The context is checked before each directory is read.
func (m *Matcher) ExecuteContext(ctx context.Context, src Source) ([]string, error) {
	matches, err := m.execute(ctx, src, false)
	if err != nil {
		return nil, err
	}
	return matchPaths(matches), nil
}

// ExecuteMatches is like ExecuteContext but also reports the stem of every
// match.
func (m *Matcher) ExecuteMatches(ctx context.Context, src Source) ([]Match, error) {
	return m.execute(ctx, src, true)
}

func (m *Matcher) execute(ctx context.Context, src Source, stems bool) ([]Match, error) {
	w := m.newWalker(ctx, src, stems)
	if err := w.walk(""); err != nil {
		return nil, err
	}
	return w.matches, nil
}

// Match reports whether the file at path would be selected by a traversal
// that reached it. No directory is read: only the components of path are
// tested, so every directory on the way must be one the traversal would
// descend into. path is relative and may use "/" or "\".
func (m *Matcher) Match(path string) bool {
	parts := strings.FieldsFunc(path, isSeparator)
	if len(parts) == 0 {
		return false
	}

	w := m.newWalker(context.Background(), nil, false)
	w.pushAll()
	for _, dir := range parts[:len(parts)-1] {
		if !w.testDir(dir) {
			return false
		}
		w.trail = append(w.trail, dir)
		w.pushAll()
	}
	_, ok := w.testFile(parts[len(parts)-1])
	return ok
}

// Filter returns the paths from the input that Match selects, in input
// order.
func (m *Matcher) Filter(paths []string) []string {
	if len(paths) == 0 {
		return nil
	}
	var kept []string
	for _, p := range paths {
		if m.Match(p) {
			kept = append(kept, p)
		}
	}
	return kept
}

func matchPaths(matches []Match) []string {
	paths := make([]string, len(matches))
	for i, m := range matches {
		paths[i] = m.Path
	}
	return paths
}
