// Package registry provides a generic, thread-safe registry of named items
// with alias support. Aliases are pure name redirection: an alias resolves
// to exactly one registered name and can never shadow a name or another
// alias.
package registry
