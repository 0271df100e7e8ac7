package globwalk

import (
	"context"
	"path"
	"strings"

	"github.com/rs/zerolog"
)

// Match is one file selected by a traversal.
type Match struct {
	// Path is relative to the traversal root and uses "/" as separator.
	Path string
	// Stem is the tail of Path matched from the first wildcard onward, or the
	// file name when the matching pattern is made of literals only. It is
	// only filled in by ExecuteMatches.
	Stem string
}

// walker is the state of one traversal. It owns fresh pattern contexts, so
// it must not be shared between goroutines; fork gives a copy for another
// goroutine.
type walker struct {
	ctx      context.Context
	src      Source
	log      zerolog.Logger
	includes []patternContext
	excludes []patternContext
	trail    []string
	stems    bool
	matches  []Match
}

func (m *Matcher) newWalker(ctx context.Context, src Source, stems bool) *walker {
	w := &walker{
		ctx:   ctx,
		src:   src,
		log:   m.opts.logger,
		stems: stems,
	}
	for _, p := range m.includes {
		w.includes = append(w.includes, newPatternContext(p, includeRole, m.opts.caseSensitivity))
	}
	for _, p := range m.excludes {
		w.excludes = append(w.excludes, newPatternContext(p, excludeRole, m.opts.caseSensitivity))
	}
	return w
}

// walk matches the directory at the end of the trail and everything below
// it. dir is its path relative to the root.
func (w *walker) walk(dir string) error {
	subdirs, err := w.enter(dir)
	defer w.leave()
	if err != nil {
		return err
	}

	for _, name := range subdirs {
		w.trail = append(w.trail, name)
		err := w.walk(joinPath(dir, name))
		w.trail = w.trail[:len(w.trail)-1]
		if err != nil {
			return err
		}
	}
	return nil
}

// enter pushes a frame on every context, records the matching files of dir
// and returns the subdirectories worth descending into. leave must be called
// afterwards, also on error.
func (w *walker) enter(dir string) ([]string, error) {
	w.pushAll()

	if w.ctx != nil {
		if err := w.ctx.Err(); err != nil {
			return nil, err
		}
	}

	entries, err := w.src.ReadDir(resolvePath(dir))
	if err != nil {
		return nil, err
	}
	entries = w.addPseudoDirs(entries, dir)

	w.log.Debug().Str("dir", dir).Int("entries", len(entries)).Msg("visiting directory")

	var subdirs []string
	for _, e := range entries {
		if !e.IsDir {
			if stemStart, ok := w.testFile(e.Name); ok {
				w.record(dir, e.Name, stemStart)
			}
			continue
		}
		if w.testDir(e.Name) {
			subdirs = append(subdirs, e.Name)
		} else {
			w.log.Debug().Str("dir", joinPath(dir, e.Name)).Msg("skipping directory")
		}
	}
	return subdirs, nil
}

func (w *walker) leave() {
	for _, c := range w.includes {
		c.pop()
	}
	for _, c := range w.excludes {
		c.pop()
	}
}

func (w *walker) pushAll() {
	for _, c := range w.includes {
		c.push(w.trail)
	}
	for _, c := range w.excludes {
		c.push(w.trail)
	}
}

// testFile applies include-any, exclude-none to a file in the current
// directory.
func (w *walker) testFile(name string) (int, bool) {
	stemStart, ok := 0, false
	for _, c := range w.includes {
		if stemStart, ok = c.testFile(name, w.trail); ok {
			break
		}
	}
	if !ok {
		return 0, false
	}
	for _, c := range w.excludes {
		if _, excluded := c.testFile(name, w.trail); excluded {
			return 0, false
		}
	}
	return stemStart, true
}

// testDir applies include-any, exclude-none to a subdirectory of the current
// directory.
func (w *walker) testDir(name string) bool {
	included := false
	for _, c := range w.includes {
		if c.testDir(name, w.trail) {
			included = true
			break
		}
	}
	if !included {
		return false
	}
	for _, c := range w.excludes {
		if c.testDir(name, w.trail) {
			return false
		}
	}
	return true
}

func (w *walker) record(dir, name string, stemStart int) {
	m := Match{Path: joinPath(dir, name)}
	if w.stems {
		m.Stem = joinPath(strings.Join(w.trail[stemStart:], "/"), name)
	}
	w.log.Trace().Str("path", m.Path).Msg("matched")
	w.matches = append(w.matches, m)
}

// addPseudoDirs appends "." and ".." when an include pattern asks for them
// next. ".." is never offered where it would leave the root.
func (w *walker) addPseudoDirs(entries []Entry, dir string) []Entry {
	var current, parent bool
	for _, c := range w.includes {
		cur, par := c.pseudoDirs()
		current = current || cur
		parent = parent || par
	}
	if current {
		entries = append(entries, Entry{Name: ".", IsDir: true})
	}
	if parent && resolvePath(dir) != "" {
		entries = append(entries, Entry{Name: "..", IsDir: true})
	}
	return entries
}

// fork returns a walker positioned at the same directory with its own copy
// of every frame stack.
func (w *walker) fork() *walker {
	cp := &walker{
		ctx:   w.ctx,
		src:   w.src,
		log:   w.log,
		trail: append([]string(nil), w.trail...),
		stems: w.stems,
	}
	for _, c := range w.includes {
		cp.includes = append(cp.includes, c.clone())
	}
	for _, c := range w.excludes {
		cp.excludes = append(cp.excludes, c.clone())
	}
	return cp
}

func joinPath(dir, name string) string {
	if dir == "" {
		return name
	}
	return dir + "/" + name
}

// resolvePath turns a logical relative path, which may hold "." and ".."
// components, into the path handed to a Source.
func resolvePath(dir string) string {
	if dir == "" {
		return ""
	}
	dir = path.Clean(dir)
	if dir == "." {
		return ""
	}
	return dir
}
