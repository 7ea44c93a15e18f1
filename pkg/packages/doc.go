// Package packages composes the package lists handed to the declarative
// package manager.
//
// A base catalog holds lists for every platform (common), for one platform
// (darwin, linux) and for the per-user home environment. External sources,
// typically flake inputs, contribute extra references to either target.
// Compose merges all of these into one ordered, duplicate-free list per
// target:
//
//	system = common + <platform> + sources targeting "system"
//	user   = home + sources targeting "user"
//
// The first occurrence of a reference fixes its position. References named
// in the catalog's exclude list are dropped after merging, which replaces
// the habit of commenting entries out.
//
// Nothing here knows whether a package exists. Resolving a reference is the
// package index's job, and an unknown name surfaces there.
package packages
