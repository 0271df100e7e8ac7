package globwalk

import "strings"

// CaseSensitivity selects how names are compared against pattern text.
type CaseSensitivity int

const (
	// CaseSensitive compares names byte for byte (ordinal comparison).
	CaseSensitive CaseSensitivity = iota
	// CaseInsensitive compares names under Unicode simple case folding.
	CaseInsensitive
)

func (c CaseSensitivity) String() string {
	switch c {
	case CaseSensitive:
		return "case-sensitive"
	case CaseInsensitive:
		return "case-insensitive"
	}
	return "unknown"
}

// SegmentKind tags the variant held by a Segment.
type SegmentKind uint8

const (
	// Literal matches one path component exactly.
	Literal SegmentKind = iota
	// Wildcard matches one path component against a "*" template.
	Wildcard
	// CurrentDir is the "." component.
	CurrentDir
	// ParentDir is the ".." component.
	ParentDir
	// RecursiveWildcard is "**": zero or more whole path components.
	RecursiveWildcard
)

func (k SegmentKind) String() string {
	switch k {
	case Literal:
		return "literal"
	case Wildcard:
		return "wildcard"
	case CurrentDir:
		return "current-dir"
	case ParentDir:
		return "parent-dir"
	case RecursiveWildcard:
		return "recursive-wildcard"
	}
	return "invalid"
}

// Segment is one path component of a compiled pattern. Which fields are
// meaningful depends on Kind: Text for Literal; BeginsWith, Contains and
// EndsWith for Wildcard; none for the rest.
type Segment struct {
	Kind       SegmentKind
	Text       string
	BeginsWith string
	Contains   []string
	EndsWith   string

	// case-folded copies for case-insensitive matching
	foldText     string
	foldBegins   string
	foldContains []string
	foldEnds     string
}

func literalSegment(text string) Segment {
	return Segment{Kind: Literal, Text: text, foldText: foldCase(text)}
}

func wildcardSegment(begins string, contains []string, ends string) Segment {
	s := Segment{
		Kind:       Wildcard,
		BeginsWith: begins,
		Contains:   contains,
		EndsWith:   ends,
		foldBegins: foldCase(begins),
		foldEnds:   foldCase(ends),
	}
	if len(contains) > 0 {
		s.foldContains = make([]string, len(contains))
		for i, c := range contains {
			s.foldContains[i] = foldCase(c)
		}
	}
	return s
}

// stem reports whether a directory matched by this segment belongs to the
// stem of a match.
func (s Segment) stem() bool {
	return s.Kind == Wildcard || s.Kind == RecursiveWildcard
}

// Match reports whether name, a single path component, satisfies the segment.
// RecursiveWildcard never matches here; it is resolved structurally by the
// ragged context.
func (s Segment) Match(name string, cs CaseSensitivity) bool {
	switch s.Kind {
	case Literal:
		if cs == CaseInsensitive {
			return foldCase(name) == s.foldText
		}
		return name == s.Text
	case Wildcard:
		if isDotName(name) {
			return false
		}
		if cs == CaseInsensitive {
			return matchWildcard(foldCase(name), s.foldBegins, s.foldContains, s.foldEnds)
		}
		return matchWildcard(name, s.BeginsWith, s.Contains, s.EndsWith)
	case CurrentDir:
		return name == "."
	case ParentDir:
		return name == ".."
	case RecursiveWildcard:
		return false
	}
	return false
}

func matchWildcard(value, begins string, contains []string, ends string) bool {
	if len(value) < len(begins)+len(ends) {
		return false
	}
	if !strings.HasPrefix(value, begins) || !strings.HasSuffix(value, ends) {
		return false
	}
	// contains entries are searched left to right, without overlap, in the
	// window between the prefix and the suffix
	start, end := len(begins), len(value)-len(ends)
	for _, c := range contains {
		i := strings.Index(value[start:end], c)
		if i < 0 {
			return false
		}
		start += i + len(c)
	}
	return true
}

func (s Segment) String() string {
	switch s.Kind {
	case Literal:
		return s.Text
	case Wildcard:
		var b strings.Builder
		b.WriteString(s.BeginsWith)
		b.WriteByte('*')
		for _, c := range s.Contains {
			b.WriteString(c)
			b.WriteByte('*')
		}
		b.WriteString(s.EndsWith)
		return b.String()
	case CurrentDir:
		return "."
	case ParentDir:
		return ".."
	case RecursiveWildcard:
		return "**"
	}
	return ""
}

// foldCase maps s to a canonical case so that literals and wildcards agree
// on which names are equal: upper-casing first merges forms such as "ſ" and
// "s" that lower-casing alone keeps apart.
func foldCase(s string) string {
	return strings.ToLower(strings.ToUpper(s))
}

func isDotName(name string) bool {
	return name == "." || name == ".."
}
