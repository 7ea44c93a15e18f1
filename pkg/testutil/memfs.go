// pkg/testutil/memfs.go
// DEPENDENCIES: synthfs test filesystem
// PURPOSE: In-memory types.FS for tests that only create and inspect directories and files

package testutil

import (
	"io/fs"
	"strings"

	"github.com/arthur-debert/dotctl/pkg/types"
	"github.com/arthur-debert/synthfs/pkg/synthfs/filesystem"
)

// MemFS is an in-memory filesystem. Absolute paths are stored relative to
// the root. It has no symlink or ownership semantics: Lstat is Stat and
// Lchown does nothing.
type MemFS struct {
	mem *filesystem.TestFileSystem
}

var _ types.FS = (*MemFS)(nil)

// NewMemFS creates an empty in-memory filesystem
func NewMemFS() *MemFS {
	return &MemFS{mem: filesystem.NewTestFileSystem()}
}

func rel(name string) string {
	name = strings.TrimPrefix(name, "/")
	if name == "" {
		return "."
	}
	return name
}

func (m *MemFS) Stat(name string) (fs.FileInfo, error) {
	return m.mem.Stat(rel(name))
}

func (m *MemFS) Lstat(name string) (fs.FileInfo, error) {
	return m.mem.Stat(rel(name))
}

func (m *MemFS) ReadFile(name string) ([]byte, error) {
	return m.mem.ReadFile(rel(name))
}

func (m *MemFS) WriteFile(name string, data []byte, perm fs.FileMode) error {
	return m.mem.WriteFile(rel(name), data, perm)
}

// ReadDir is not supported by the in-memory filesystem
func (m *MemFS) ReadDir(name string) ([]fs.DirEntry, error) {
	return nil, &fs.PathError{Op: "readdir", Path: name, Err: fs.ErrInvalid}
}

func (m *MemFS) MkdirAll(path string, perm fs.FileMode) error {
	return m.mem.MkdirAll(rel(path), perm)
}

func (m *MemFS) Symlink(oldname, newname string) error {
	return m.mem.Symlink(oldname, rel(newname))
}

func (m *MemFS) Readlink(name string) (string, error) {
	return m.mem.Readlink(rel(name))
}

func (m *MemFS) Remove(name string) error {
	return m.mem.Remove(rel(name))
}

func (m *MemFS) Lchown(string, int, int) error {
	return nil
}
