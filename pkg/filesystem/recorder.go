package filesystem

import (
	"fmt"
	"io/fs"
	"sync"

	"github.com/arthur-debert/dotctl/pkg/types"
)

// Op names a mutating filesystem call
type Op string

const (
	OpWrite   Op = "write"
	OpMkdir   Op = "mkdir"
	OpSymlink Op = "symlink"
	OpRemove  Op = "remove"
	OpChown   Op = "chown"
	OpClone   Op = "clone"
)

// Change is one recorded mutation
type Change struct {
	Op     Op
	Path   string
	Target string
}

func (c Change) String() string {
	if c.Target != "" {
		return fmt.Sprintf("%s %s -> %s", c.Op, c.Path, c.Target)
	}
	return fmt.Sprintf("%s %s", c.Op, c.Path)
}

// Recorder wraps a types.FS and records every successful mutation.
// Read-only calls pass straight through.
type Recorder struct {
	types.FS

	mu      sync.Mutex
	changes []Change
}

// NewRecorder wraps fs
func NewRecorder(fs types.FS) *Recorder {
	return &Recorder{FS: fs}
}

// Record adds a change made outside the wrapped filesystem, such as a
// directory created by a subprocess.
func (r *Recorder) Record(c Change) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.changes = append(r.changes, c)
}

// Changes returns a copy of everything recorded so far
func (r *Recorder) Changes() []Change {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Change, len(r.changes))
	copy(out, r.changes)
	return out
}

// Drain returns the recorded changes and resets the log
func (r *Recorder) Drain() []Change {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := r.changes
	r.changes = nil
	return out
}

func (r *Recorder) WriteFile(name string, data []byte, perm fs.FileMode) error {
	if err := r.FS.WriteFile(name, data, perm); err != nil {
		return err
	}
	r.Record(Change{Op: OpWrite, Path: name})
	return nil
}

// MkdirAll only records when the directory did not exist before
func (r *Recorder) MkdirAll(path string, perm fs.FileMode) error {
	_, statErr := r.FS.Stat(path)
	if err := r.FS.MkdirAll(path, perm); err != nil {
		return err
	}
	if statErr != nil {
		r.Record(Change{Op: OpMkdir, Path: path})
	}
	return nil
}

func (r *Recorder) Symlink(oldname, newname string) error {
	if err := r.FS.Symlink(oldname, newname); err != nil {
		return err
	}
	r.Record(Change{Op: OpSymlink, Path: newname, Target: oldname})
	return nil
}

func (r *Recorder) Remove(name string) error {
	if err := r.FS.Remove(name); err != nil {
		return err
	}
	r.Record(Change{Op: OpRemove, Path: name})
	return nil
}

func (r *Recorder) Lchown(name string, uid, gid int) error {
	if err := r.FS.Lchown(name, uid, gid); err != nil {
		return err
	}
	r.Record(Change{Op: OpChown, Path: name, Target: fmt.Sprintf("%d:%d", uid, gid)})
	return nil
}

var _ types.FS = (*Recorder)(nil)
