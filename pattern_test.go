package globwalk

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---------------------------------------------------------------------------
// Compile
// ---------------------------------------------------------------------------

func TestCompileEmpty(t *testing.T) {
	for _, glob := range []string{"", "/", "//", `\`, `/\/`} {
		_, err := Compile(glob)
		require.ErrorIs(t, err, ErrInvalidPattern, "glob %q", glob)
	}
}

func TestCompileSegmentKinds(t *testing.T) {
	p, err := Compile(`./../src\*.go/*.*/name`)
	require.NoError(t, err)

	kinds := make([]SegmentKind, len(p.Segments))
	for i, s := range p.Segments {
		kinds[i] = s.Kind
	}
	assert.Equal(t, []SegmentKind{CurrentDir, ParentDir, Literal, Wildcard, Wildcard, Literal}, kinds)
	assert.Equal(t, "src", p.Segments[2].Text)
	assert.Equal(t, "*.go", p.Segments[3].String())
	assert.Equal(t, "*", p.Segments[4].String(), "*.* is normalised to *")
	assert.False(t, p.Ragged())
}

func TestCompileSkipsEmptySegments(t *testing.T) {
	p, err := Compile("/a//b/")
	require.NoError(t, err)
	require.Len(t, p.Segments, 2)
	assert.Equal(t, "a", p.Segments[0].Text)
	assert.Equal(t, "b", p.Segments[1].Text)
}

func TestCompileWildcardParts(t *testing.T) {
	tests := []struct {
		raw      string
		begins   string
		contains []string
		ends     string
	}{
		{"*", "", nil, ""},
		{"*.txt", "", nil, ".txt"},
		{"report*", "report", nil, ""},
		{"a*b*c", "a", []string{"b"}, "c"},
		{"a**b", "a", nil, "b"},
		{"*x*y*", "", []string{"x", "y"}, ""},
		{"a*b**c*d", "a", []string{"b", "c"}, "d"},
	}
	for _, tc := range tests {
		s := parseSegment(tc.raw)
		require.Equal(t, Wildcard, s.Kind, tc.raw)
		assert.Equal(t, tc.begins, s.BeginsWith, tc.raw)
		assert.Equal(t, tc.contains, s.Contains, tc.raw)
		assert.Equal(t, tc.ends, s.EndsWith, tc.raw)
	}
}

func TestCompileRaggedDecomposition(t *testing.T) {
	tests := []struct {
		glob       string
		startsWith []string
		contains   [][]string
		endsWith   []string
	}{
		{"**", []string{}, [][]string{}, []string{}},
		{"**/*.cs", []string{}, [][]string{}, []string{"*.cs"}},
		{"a/**/z", []string{"a"}, [][]string{}, []string{"z"}},
		{"a/b/**", []string{"a", "b"}, [][]string{}, []string{}},
		{"**/bin/**", []string{}, [][]string{{"bin"}}, []string{}},
		{"a/**/b/c/**/d/**/e", []string{"a"}, [][]string{{"b", "c"}, {"d"}}, []string{"e"}},
		{"a/**/**/z", []string{"a"}, [][]string{}, []string{"z"}},
	}
	for _, tc := range tests {
		p, err := Compile(tc.glob)
		require.NoError(t, err, tc.glob)
		require.True(t, p.Ragged(), tc.glob)

		assert.Equal(t, tc.startsWith, segmentStrings(p.StartsWith), tc.glob)
		contains := [][]string{}
		for _, g := range p.Contains {
			contains = append(contains, segmentStrings(g))
		}
		assert.Equal(t, tc.contains, contains, tc.glob)
		assert.Equal(t, tc.endsWith, segmentStrings(p.EndsWith), tc.glob)
	}
}

func TestCompileLinearHasNoDecomposition(t *testing.T) {
	p := MustCompile("src/*/main.go")
	assert.False(t, p.Ragged())
	assert.Nil(t, p.StartsWith)
	assert.Nil(t, p.Contains)
	assert.Nil(t, p.EndsWith)
	assert.Equal(t, "src/*/main.go", p.String())
}

func TestMustCompilePanics(t *testing.T) {
	assert.Panics(t, func() { MustCompile("") })
}

// ---------------------------------------------------------------------------
// Segment.Match
// ---------------------------------------------------------------------------

func TestLiteralMatch(t *testing.T) {
	s := parseSegment("file.txt")
	assert.True(t, s.Match("file.txt", CaseSensitive))
	assert.False(t, s.Match("File.txt", CaseSensitive))
	assert.True(t, s.Match("File.txt", CaseInsensitive))
	assert.False(t, s.Match("file.txt2", CaseInsensitive))
}

func TestWildcardMatch(t *testing.T) {
	tests := []struct {
		raw  string
		name string
		want bool
	}{
		{"*.txt", "report.txt", true},
		{"*.txt", ".txt", true},
		{"*.txt", "report.md", false},
		{"*.txt", "txt", false},
		{"a*a", "a", false},
		{"a*a", "aa", true},
		{"a*b*c", "abc", true},
		{"a*b*c", "axxbyyc", true},
		{"a*b*c", "ac", false},
		{"a*b*b*c", "abc", false},
		{"a*b*b*c", "abbc", true},
		{"*ab*ba*", "aba", false},
		{"*ab*ba*", "abba", true},
		{"*x*", "x", true},
		{"*x*", "yyy", false},
		{"*", "anything", true},
		{"*", ".hidden", true},
		{"*", ".", false},
		{"*", "..", false},
	}
	for _, tc := range tests {
		got := parseSegment(tc.raw).Match(tc.name, CaseSensitive)
		assert.Equal(t, tc.want, got, "%q vs %q", tc.raw, tc.name)
	}
}

func TestWildcardMatchCaseInsensitive(t *testing.T) {
	s := parseSegment("Read*Me*.TXT")
	assert.False(t, s.Match("readme.txt", CaseSensitive))
	assert.True(t, s.Match("readme.txt", CaseInsensitive))
	assert.True(t, s.Match("READ-the-ME-now.txt", CaseInsensitive))
	assert.False(t, s.Match("readme.md", CaseInsensitive))
}

func TestCaseFoldingAgreesAcrossKinds(t *testing.T) {
	tests := []struct {
		raw  string
		name string
	}{
		{"ſrc", "SRC"},
		{"ſrc*", "SRC"},
		{"*ſrc", "SRC"},
		{"a*ſ*b", "ASB"},
		{"Kelvin", "\u212Aelvin"},
		{"K*", "\u212Aelvin"},
	}
	for _, tc := range tests {
		assert.True(t, parseSegment(tc.raw).Match(tc.name, CaseInsensitive), "%q vs %q", tc.raw, tc.name)
		assert.False(t, parseSegment(tc.raw).Match(tc.name, CaseSensitive), "%q vs %q", tc.raw, tc.name)
	}
}

func TestSpecialSegmentsMatch(t *testing.T) {
	assert.True(t, parseSegment(".").Match(".", CaseSensitive))
	assert.False(t, parseSegment(".").Match("..", CaseSensitive))
	assert.True(t, parseSegment("..").Match("..", CaseSensitive))
	assert.False(t, parseSegment("..").Match("x", CaseInsensitive))
	assert.False(t, parseSegment("**").Match("anything", CaseSensitive))
}

func TestSegmentKindString(t *testing.T) {
	assert.Equal(t, "literal", Literal.String())
	assert.Equal(t, "recursive-wildcard", RecursiveWildcard.String())
	assert.Equal(t, "invalid", SegmentKind(42).String())
	assert.Equal(t, "case-insensitive", CaseInsensitive.String())
}

func segmentStrings(segs []Segment) []string {
	out := make([]string, len(segs))
	for i, s := range segs {
		out[i] = s.String()
	}
	return out
}
