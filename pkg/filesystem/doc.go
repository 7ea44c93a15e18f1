// Package filesystem provides filesystem implementations for dotctl.
//
// This package contains the OS implementation of types.FS and a Recorder
// that wraps any types.FS and keeps a log of every mutating call. The
// activation runner uses the Recorder to report exactly which filesystem
// entries a step touched, which is how idempotence is observed.
package filesystem
