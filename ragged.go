package globwalk

// raggedFrame records where a ragged pattern stands at one directory level.
//
// groupIndex is -1 while the StartsWith segments are consumed one directory
// at a time, 0..len(Contains)-1 while waiting for a Contains group, and
// len(Contains) once only EndsWith is left. backtrack counts the directories
// absorbed by the current "**" since the last satisfied group.
type raggedFrame struct {
	notApplicable bool
	groupIndex    int
	group         []Segment
	backtrack     int
	segmentIndex  int
	stemStart     int
}

// raggedContext matches a pattern containing "**". The walk never revisits a
// directory, so instead of backtracking it checks at every level whether the
// trailing window of directory names equals the next required group. Any
// placement of a "**" followed by a fixed group ends with that window at some
// depth, and the walk passes through every depth.
type raggedContext struct {
	pattern *Pattern
	role    role
	cs      CaseSensitivity
	stack   []raggedFrame
}

func (c *raggedContext) frame() raggedFrame {
	if len(c.stack) == 0 {
		panic("globwalk: pattern context used before the root was pushed")
	}
	return c.stack[len(c.stack)-1]
}

func (c *raggedContext) starting(f raggedFrame) bool {
	return f.groupIndex == -1
}

func (c *raggedContext) ending(f raggedFrame) bool {
	return f.groupIndex == len(c.pattern.Contains)
}

func (c *raggedContext) push(trail []string) {
	var f raggedFrame
	if len(c.stack) == 0 {
		f = raggedFrame{groupIndex: -1, group: c.pattern.StartsWith, stemStart: -1}
	} else {
		f = c.frame()
		if !f.notApplicable {
			c.advance(&f, trail)
		}
	}

	for !f.notApplicable && f.segmentIndex == len(f.group) && !c.ending(f) {
		f.groupIndex++
		f.segmentIndex = 0
		if f.groupIndex < len(c.pattern.Contains) {
			f.group = c.pattern.Contains[f.groupIndex]
		} else {
			f.group = c.pattern.EndsWith
		}
	}
	c.stack = append(c.stack, f)
}

// advance applies the directory at the end of trail to f.
func (c *raggedContext) advance(f *raggedFrame, trail []string) {
	name := trail[len(trail)-1]

	if c.starting(*f) {
		if !f.group[f.segmentIndex].Match(name, c.cs) {
			f.notApplicable = true
			return
		}
		if f.stemStart < 0 && f.group[f.segmentIndex].stem() {
			f.stemStart = len(trail) - 1
		}
		f.segmentIndex++
		return
	}

	// "**" never walks into "." or ".." on the include side. An exclude
	// pattern sees them as ordinary components so they cannot hide a subtree
	// from it.
	if isDotName(name) && c.role == includeRole {
		f.notApplicable = true
		return
	}
	if f.stemStart < 0 {
		f.stemStart = len(trail) - 1
	}
	if !c.ending(*f) && matchTrailing(f.group, trail[:len(trail)-1], name, f.backtrack+1, c.cs) {
		f.segmentIndex = len(f.group)
		f.backtrack = 0
		return
	}
	f.backtrack++
}

func (c *raggedContext) pop() {
	c.stack = c.stack[:len(c.stack)-1]
}

func (c *raggedContext) testFile(name string, trail []string) (int, bool) {
	f := c.frame()
	if f.notApplicable || !c.ending(f) {
		return 0, false
	}
	if !matchTrailing(c.pattern.EndsWith, trail, name, f.backtrack+1, c.cs) {
		return 0, false
	}
	return stemOrName(f.stemStart, trail), true
}

func (c *raggedContext) testDir(name string, trail []string) bool {
	f := c.frame()
	if f.notApplicable {
		return false
	}
	if c.role == excludeRole {
		return c.excludesDir(f, name, trail)
	}
	if c.starting(f) {
		return f.group[f.segmentIndex].Match(name, c.cs)
	}
	// past StartsWith, "**" lets any real directory through
	return !isDotName(name)
}

// excludesDir reports whether the directory itself is excluded, which prunes
// its whole subtree: either it completes the pattern like a file would, or
// the pattern ends in "**" and the directory completes everything before it.
func (c *raggedContext) excludesDir(f raggedFrame, name string, trail []string) bool {
	p := c.pattern
	switch {
	case c.ending(f):
		return matchTrailing(p.EndsWith, trail, name, f.backtrack+1, c.cs)
	case len(p.EndsWith) != 0:
		return false
	case c.starting(f):
		return len(p.Contains) == 0 &&
			f.segmentIndex == len(f.group)-1 &&
			f.group[f.segmentIndex].Match(name, c.cs)
	case f.groupIndex == len(p.Contains)-1:
		return matchTrailing(f.group, trail, name, f.backtrack+1, c.cs)
	}
	return false
}

func (c *raggedContext) pseudoDirs() (current, parent bool) {
	f := c.frame()
	if f.notApplicable || !c.starting(f) {
		return false, false
	}
	return pseudoKind(f.group[f.segmentIndex])
}

func (c *raggedContext) clone() patternContext {
	cp := *c
	cp.stack = append([]raggedFrame(nil), c.stack...)
	return &cp
}
