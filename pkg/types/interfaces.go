package types

import (
	"context"
	"io"
	"io/fs"
)

// FS is the filesystem surface used by activation steps and the validator
type FS interface {
	// File operations
	Stat(name string) (fs.FileInfo, error)
	ReadFile(name string) ([]byte, error)
	WriteFile(name string, data []byte, perm fs.FileMode) error
	ReadDir(name string) ([]fs.DirEntry, error)

	// Directory operations
	MkdirAll(path string, perm fs.FileMode) error

	// Symlink operations
	Symlink(oldname, newname string) error
	Readlink(name string) (string, error)
	Lstat(name string) (fs.FileInfo, error)

	// Other operations
	Remove(name string) error
	Lchown(name string, uid, gid int) error
}

// Command describes one external process invocation
type Command struct {
	Name string
	Args []string
	Dir  string
	Env  []string

	// Stdin, Stdout and Stderr default to the process streams when nil
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// Commander runs external tools. The exit code of the tool is returned
// unchanged; err is only set when the tool could not be started at all.
type Commander interface {
	Run(ctx context.Context, cmd Command) (int, error)
}
