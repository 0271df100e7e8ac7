package globwalk

// role decides how a context answers the directory question: an include
// context asks "can a match still lie below this directory", an exclude
// context asks "is this directory itself excluded".
type role uint8

const (
	includeRole role = iota
	excludeRole
)

// patternContext tracks the matching progress of one pattern during one
// traversal. It keeps one frame per directory level: push on descent, pop on
// ascent, strictly LIFO.
//
// trail is the list of directory names from the root down to the current
// directory. push receives the trail ending with the directory being entered
// (empty for the root); the test methods receive the trail of the directory
// holding the entry under test.
//
// The implementations are linearContext and raggedContext; the interface is
// not meant to be satisfied outside this package.
type patternContext interface {
	push(trail []string)
	pop()

	// testFile reports whether the file matches and, if so, the index in
	// trail where its stem starts (len(trail) when the stem is the name).
	testFile(name string, trail []string) (stemStart int, ok bool)
	testDir(name string, trail []string) bool

	// pseudoDirs reports whether the next component the pattern expects is
	// "." or "..", which no directory listing contains.
	pseudoDirs() (current, parent bool)

	clone() patternContext
}

func newPatternContext(p *Pattern, r role, cs CaseSensitivity) patternContext {
	if p.Ragged() {
		return &raggedContext{pattern: p, role: r, cs: cs}
	}
	return &linearContext{pattern: p, role: r, cs: cs}
}

// matchTrailing reports whether group matches the last len(group) components
// of trail+name, read backwards from name. available bounds how many
// components may take part.
func matchTrailing(group []Segment, trail []string, name string, available int, cs CaseSensitivity) bool {
	n := len(group)
	if available < n {
		return false
	}
	for i := 0; i < n; i++ {
		component := name
		if i > 0 {
			j := len(trail) - i
			if j < 0 {
				return false
			}
			component = trail[j]
		}
		if !group[n-1-i].Match(component, cs) {
			return false
		}
	}
	return true
}

func stemOrName(stemStart int, trail []string) int {
	if stemStart < 0 {
		return len(trail)
	}
	return stemStart
}

func pseudoKind(s Segment) (current, parent bool) {
	switch s.Kind {
	case CurrentDir:
		return true, false
	case ParentDir:
		return false, true
	}
	return false, false
}
