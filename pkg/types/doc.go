// Package types holds the small set of interfaces shared across dotctl
// packages. Keeping them here avoids import cycles between the activation
// runner, the filesystem implementations and the test helpers.
package types
