// Package testutil provides utilities for testing dotctl components.
//
// Key components:
//   - TestEnvironment: an isolated home, dotfiles and config tree under
//     t.TempDir() with the matching environment variables set
//   - FakeCommander: a types.Commander that records invocations instead of
//     starting processes
//   - file helpers and filesystem assertions built on testify
//
// Tests use the real filesystem: activation and validation depend on
// symlinks, permissions and ownership.
package testutil
