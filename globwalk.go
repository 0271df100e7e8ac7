// Package globwalk selects files from a directory tree with include and
// exclude glob patterns, evaluating every pattern during a single top-down
// walk.
//
// Patterns are compiled once into a list of path segments. Patterns without
// "**" advance one segment per directory level; patterns with "**" are split
// around each recursive wildcard and matched by checking, at every level,
// whether the trailing directory names complete the next fixed group. Both
// kinds keep one small frame per directory level, so subtrees that no include
// pattern can reach, or that an exclude pattern covers, are never read.
//
// # Quick Start
//
//	m := globwalk.NewMatcher()
//	if err := m.AddInclude("**/*.go"); err != nil {
//	    log.Fatal(err)
//	}
//	if err := m.AddExclude("**/vendor/**"); err != nil {
//	    log.Fatal(err)
//	}
//
//	paths, err := m.Execute(globwalk.Dir("."))
//	// paths == []string{"main.go", "internal/walk/walk.go", ...}
//
//	fmt.Println(m.Match("cmd/tool/main.go"))  // true
//	fmt.Println(m.Match("vendor/x/y.go"))     // false
//
// # Sources
//
// The walk reads directories through a Source. FS adapts any io/fs.FS,
// Afero any afero.Fs and Dir the host file system; the sandbox subpackage
// lists a host directory through wazero's WASI file system layer.
//
// # Concurrency
//
// Compiled Patterns are immutable and may be shared. A Matcher may run
// several traversals at once after its patterns have been added; each
// traversal keeps its own frame stacks. ExecuteParallel walks the top-level
// subtrees on separate goroutines and merges the results in sequential order.
//
// # Pattern Syntax
//
//   - "/" and "\" both separate path components
//   - "*" matches any run of characters within one component
//   - "*.*" is the same as "*"
//   - "**" as a whole component matches zero or more components
//   - "." and ".." match the current and parent directory
//   - anything else matches literally, case-sensitively unless
//     WithCaseSensitivity(CaseInsensitive) is given
package globwalk
