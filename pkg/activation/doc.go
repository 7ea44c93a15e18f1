// Package activation runs the post-build activation sequence: the effects a
// declarative system configuration cannot express by itself, such as
// creating document folders, cloning the dotfiles checkout and linking plugin
// binaries out of the managed store.
//
// Every step is idempotent. A step first checks whether any work is needed
// and only then applies it, so running the sequence against an already
// activated home performs no filesystem mutations. Steps run strictly in
// declaration order; the first failure aborts the remaining steps and nothing
// is rolled back. Re-running the whole sequence after fixing the cause is the
// recovery path.
//
// All mutations go through a filesystem.Recorder, which makes the set of
// changes each step performed observable in the run Report.
package activation
