package globwalk

type linearFrame struct {
	notApplicable bool
	segmentIndex  int
	stemStart     int
}

// linearContext matches a pattern without "**": every directory level
// consumes exactly one segment.
type linearContext struct {
	pattern *Pattern
	role    role
	cs      CaseSensitivity
	stack   []linearFrame
}

func (c *linearContext) frame() linearFrame {
	if len(c.stack) == 0 {
		panic("globwalk: pattern context used before the root was pushed")
	}
	return c.stack[len(c.stack)-1]
}

func (c *linearContext) lastSegment(f linearFrame) bool {
	return f.segmentIndex == len(c.pattern.Segments)-1
}

func (c *linearContext) push(trail []string) {
	if len(c.stack) == 0 {
		c.stack = append(c.stack, linearFrame{stemStart: -1})
		return
	}

	f := c.frame()
	if !f.notApplicable {
		name := trail[len(trail)-1]
		// a directory can only consume a segment that is not the last one
		if f.segmentIndex >= len(c.pattern.Segments)-1 {
			f.notApplicable = true
		} else if seg := c.pattern.Segments[f.segmentIndex]; !seg.Match(name, c.cs) {
			f.notApplicable = true
		} else {
			if f.stemStart < 0 && seg.stem() {
				f.stemStart = len(trail) - 1
			}
			f.segmentIndex++
		}
	}
	c.stack = append(c.stack, f)
}

func (c *linearContext) pop() {
	c.stack = c.stack[:len(c.stack)-1]
}

func (c *linearContext) testFile(name string, trail []string) (int, bool) {
	f := c.frame()
	if f.notApplicable || !c.lastSegment(f) {
		return 0, false
	}
	if !c.pattern.Segments[f.segmentIndex].Match(name, c.cs) {
		return 0, false
	}
	return stemOrName(f.stemStart, trail), true
}

func (c *linearContext) testDir(name string, _ []string) bool {
	f := c.frame()
	if f.notApplicable {
		return false
	}
	if c.role == excludeRole {
		return c.lastSegment(f) && c.pattern.Segments[f.segmentIndex].Match(name, c.cs)
	}
	return f.segmentIndex < len(c.pattern.Segments)-1 &&
		c.pattern.Segments[f.segmentIndex].Match(name, c.cs)
}

func (c *linearContext) pseudoDirs() (current, parent bool) {
	f := c.frame()
	if f.notApplicable || f.segmentIndex >= len(c.pattern.Segments)-1 {
		return false, false
	}
	return pseudoKind(c.pattern.Segments[f.segmentIndex])
}

func (c *linearContext) clone() patternContext {
	cp := *c
	cp.stack = append([]linearFrame(nil), c.stack...)
	return &cp
}
