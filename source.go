package globwalk

import (
	"io/fs"
	"path/filepath"

	"github.com/spf13/afero"
)

// Entry is one item of a directory listing.
type Entry struct {
	Name  string
	IsDir bool
}

// Source lists directories for a traversal. dir is relative to the root of
// the traversal, uses "/" as separator and is "" for the root itself. The
// order of the returned entries is up to the Source; Matcher output follows
// it. Entries named "." or ".." must not be returned.
//
// A Source used with ExecuteParallel must be safe for concurrent use.
type Source interface {
	ReadDir(dir string) ([]Entry, error)
}

// SourceFunc adapts a function to a Source.
type SourceFunc func(dir string) ([]Entry, error)

// ReadDir calls f(dir).
func (f SourceFunc) ReadDir(dir string) ([]Entry, error) {
	return f(dir)
}

// FS returns a Source listing fsys. Symbolic links are reported as files.
func FS(fsys fs.FS) Source {
	return fsSource{fsys: fsys}
}

type fsSource struct {
	fsys fs.FS
}

func (s fsSource) ReadDir(dir string) ([]Entry, error) {
	if dir == "" {
		dir = "."
	}
	des, err := fs.ReadDir(s.fsys, dir)
	if err != nil {
		return nil, err
	}
	entries := make([]Entry, len(des))
	for i, de := range des {
		entries[i] = Entry{Name: de.Name(), IsDir: de.IsDir()}
	}
	return entries, nil
}

// Afero returns a Source listing the directory root of afs.
func Afero(afs afero.Fs, root string) Source {
	return aferoSource{fs: afs, root: root}
}

// Dir returns a read-only Source over the host directory root.
func Dir(root string) Source {
	return Afero(afero.NewReadOnlyFs(afero.NewOsFs()), root)
}

type aferoSource struct {
	fs   afero.Fs
	root string
}

func (s aferoSource) ReadDir(dir string) ([]Entry, error) {
	name := filepath.Join(s.root, filepath.FromSlash(dir))
	if name == "" {
		name = "."
	}
	infos, err := afero.ReadDir(s.fs, name)
	if err != nil {
		return nil, err
	}
	entries := make([]Entry, len(infos))
	for i, fi := range infos {
		entries[i] = Entry{Name: fi.Name(), IsDir: fi.IsDir()}
	}
	return entries, nil
}
