// Package modules aggregates named configuration fragments (system defaults,
// homebrew, shell, environment) into one configuration tree.
//
// Fragments are overlaid in order: nested tables merge, while scalars and
// lists written by a later fragment replace what an earlier one wrote at the
// same key. The tree remembers which fragments wrote each leaf key so that
// `dotctl modules --explain <key>` can show where a value came from.
//
// A sub-tree can be rendered as an Apple property list for `defaults import`.
package modules
