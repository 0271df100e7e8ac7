package globwalk

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidPattern is returned by Compile, AddInclude and AddExclude for a
// glob that is empty or has no path components.
var ErrInvalidPattern = errors.New("invalid pattern")

// Pattern is a compiled glob. It holds no traversal state and may be shared
// freely between goroutines and Matchers.
//
// Segments lists every component in order. When the glob contains "**" the
// pattern is ragged and is additionally decomposed around each "**": the
// components before the first one (StartsWith), the runs between two of them
// (Contains) and the components after the last one (EndsWith).
type Pattern struct {
	glob string

	Segments   []Segment
	StartsWith []Segment
	Contains   [][]Segment
	EndsWith   []Segment
}

// Compile parses glob into a Pattern. Both "/" and "\" separate components;
// empty components produced by leading, trailing or repeated separators are
// ignored.
func Compile(glob string) (*Pattern, error) {
	if glob == "" {
		return nil, fmt.Errorf("globwalk: %w: empty glob", ErrInvalidPattern)
	}

	p := &Pattern{glob: glob}
	for _, raw := range strings.FieldsFunc(glob, isSeparator) {
		seg := parseSegment(raw)

		if seg.Kind == RecursiveWildcard {
			switch {
			case p.StartsWith == nil:
				p.StartsWith = append([]Segment{}, p.Segments...)
				p.EndsWith = []Segment{}
				p.Contains = [][]Segment{}
			case len(p.EndsWith) != 0:
				p.Contains = append(p.Contains, p.EndsWith)
				p.EndsWith = []Segment{}
			}
		} else if p.EndsWith != nil {
			p.EndsWith = append(p.EndsWith, seg)
		}
		p.Segments = append(p.Segments, seg)
	}

	if len(p.Segments) == 0 {
		return nil, fmt.Errorf("globwalk: %w: %q has no path components", ErrInvalidPattern, glob)
	}
	return p, nil
}

// MustCompile is like Compile but panics on error.
func MustCompile(glob string) *Pattern {
	p, err := Compile(glob)
	if err != nil {
		panic(err)
	}
	return p
}

func parseSegment(raw string) Segment {
	if raw == "*.*" {
		raw = "*"
	}
	switch raw {
	case "**":
		return Segment{Kind: RecursiveWildcard}
	case "..":
		return Segment{Kind: ParentDir}
	case ".":
		return Segment{Kind: CurrentDir}
	}
	if !strings.Contains(raw, "*") {
		return literalSegment(raw)
	}

	parts := strings.Split(raw, "*")
	var contains []string
	for _, part := range parts[1 : len(parts)-1] {
		// adjacent stars leave empty parts behind; they constrain nothing
		if part != "" {
			contains = append(contains, part)
		}
	}
	return wildcardSegment(parts[0], contains, parts[len(parts)-1])
}

func isSeparator(r rune) bool {
	return r == '/' || r == '\\'
}

// Ragged reports whether the pattern contains a recursive wildcard.
func (p *Pattern) Ragged() bool {
	return p.StartsWith != nil
}

// String returns the glob the pattern was compiled from.
func (p *Pattern) String() string {
	return p.glob
}
