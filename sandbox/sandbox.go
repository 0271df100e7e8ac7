// Package sandbox lists a host directory the way a WebAssembly guest sees a
// preopened directory: through wazero's WASI file system layer, confined to
// the root it was opened with.
package sandbox

import (
	"fmt"
	"os"

	experimentalsys "github.com/tetratelabs/wazero/experimental/sys"
	"github.com/tetratelabs/wazero/experimental/sysfs"

	globwalk "github.com/armn3t/go-globwalk"
)

// readdirBatch is the number of entries requested per Readdir call.
const readdirBatch = 128

// Source is a globwalk.Source backed by a wazero sys.FS. It holds no open
// files between calls and is safe for concurrent use.
type Source struct {
	root string
	fs   experimentalsys.FS
}

var _ globwalk.Source = (*Source)(nil)

// New returns a Source rooted at the host directory root.
func New(root string) (*Source, error) {
	st, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("sandbox: %w", err)
	}
	if !st.IsDir() {
		return nil, fmt.Errorf("sandbox: %s is not a directory", root)
	}
	return &Source{root: root, fs: sysfs.DirFS(root)}, nil
}

// Root returns the host directory the Source is confined to.
func (s *Source) Root() string {
	return s.root
}

// ReadDir lists dir, relative to the root.
func (s *Source) ReadDir(dir string) ([]globwalk.Entry, error) {
	name := dir
	if name == "" {
		name = "."
	}

	f, errno := s.fs.OpenFile(name, experimentalsys.O_RDONLY|experimentalsys.O_DIRECTORY, 0)
	if errno != 0 {
		return nil, &Error{Op: "open", Path: dir, Errno: errno}
	}
	defer f.Close()

	var entries []globwalk.Entry
	for {
		dirents, errno := f.Readdir(readdirBatch)
		if errno != 0 {
			return nil, &Error{Op: "readdir", Path: dir, Errno: errno}
		}
		if len(dirents) == 0 {
			break
		}
		for _, d := range dirents {
			if d.Name == "." || d.Name == ".." {
				continue
			}
			entries = append(entries, globwalk.Entry{Name: d.Name, IsDir: d.IsDir()})
		}
	}
	return entries, nil
}

// Error records a failed file system call and the WASI errno it produced.
type Error struct {
	Op    string
	Path  string
	Errno experimentalsys.Errno
}

func (e *Error) Error() string {
	return fmt.Sprintf("sandbox: %s %q: %v", e.Op, e.Path, e.Errno)
}

// Unwrap returns the errno, so errors.Is works with the experimentalsys
// constants such as ENOENT.
func (e *Error) Unwrap() error {
	return e.Errno
}
